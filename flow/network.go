// File: network.go
// Role: FlowNetwork construction and the mutation CRUD surface —
// AddVertex/RemoveVertex/AddEdge/RemoveEdge/SetSource/SetSink/ResetNetwork.
// Every method here sets n.prompt to a human-readable outcome, updates
// the dirty flags per spec.md §6's table, and notifies subscribers
// exactly once before returning.
package flow

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mfacore/maxflow/core"
)

// FlowNetwork owns a core.Graph plus the designated source/sink ids, the
// last computed maximum-flow value, a human-readable status prompt, and
// the change-notification/dirty-flag machinery external views consume.
type FlowNetwork struct {
	graph *core.Graph

	sourceID int
	sinkID   int

	maxFlow int
	prompt  string

	updateGraph bool
	drawGraph   bool

	subscribers      map[int]func(Event)
	nextSubscriberID int

	logger  zerolog.Logger
	verbose bool
}

// NewFlowNetwork returns an empty FlowNetwork with source and sink unset.
func NewFlowNetwork(opts ...Option) *FlowNetwork {
	n := &FlowNetwork{
		graph:       core.NewGraph(),
		sourceID:    unsetID,
		sinkID:      unsetID,
		subscribers: make(map[int]func(Event)),
		logger:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(n)
	}

	return n
}

// AddVertex inserts a vertex with the given id.
func (n *FlowNetwork) AddVertex(id int) error {
	if err := n.graph.AddVertex(id); err != nil {
		n.prompt = fmt.Sprintf("addVertex(%d): %v", id, err)
		n.notify("AddVertex", true, true)

		return err
	}
	n.prompt = fmt.Sprintf("vertex %d added.", id)
	n.notify("AddVertex", true, true)

	return nil
}

// RemoveVertex deletes a vertex and all its incident edges. If the
// removed vertex was the source or sink, that designation is cleared.
func (n *FlowNetwork) RemoveVertex(id int) error {
	if err := n.graph.RemoveVertex(id); err != nil {
		n.prompt = fmt.Sprintf("removeVertex(%d): %v", id, err)
		n.notify("RemoveVertex", true, true)

		return err
	}
	if n.sourceID == id {
		n.sourceID = unsetID
	}
	if n.sinkID == id {
		n.sinkID = unsetID
	}
	n.prompt = fmt.Sprintf("vertex %d removed.", id)
	n.notify("RemoveVertex", true, true)

	return nil
}

// AddEdge inserts a directed edge u->v with the given capacity.
func (n *FlowNetwork) AddEdge(u, v, capacity int) error {
	if err := n.graph.AddEdge(u, v, capacity); err != nil {
		n.prompt = fmt.Sprintf("addEdge(%d,%d,%d): %v", u, v, capacity, err)
		n.notify("AddEdge", true, true)

		return err
	}
	n.prompt = fmt.Sprintf("edge (%d,%d) added with capacity %d.", u, v, capacity)
	n.notify("AddEdge", true, true)

	return nil
}

// RemoveEdge removes the directed edge u->v.
func (n *FlowNetwork) RemoveEdge(u, v int) error {
	if err := n.graph.RemoveEdge(u, v); err != nil {
		n.prompt = fmt.Sprintf("removeEdge(%d,%d): %v", u, v, err)
		n.notify("RemoveEdge", true, true)

		return err
	}
	n.prompt = fmt.Sprintf("edge (%d,%d) removed.", u, v)
	n.notify("RemoveEdge", true, true)

	return nil
}

// SetSource designates id as the source. If id equals the current sink,
// the sink is cleared (spec.md §3's sourceId != sinkId invariant).
func (n *FlowNetwork) SetSource(id int) error {
	if id < 0 {
		err := fmt.Errorf("flow: SetSource(%d): %w", id, core.ErrNegativeID)
		n.prompt = err.Error()
		n.notify("SetSource", true, true)

		return err
	}
	if !n.graph.HasVertex(id) {
		n.prompt = fmt.Sprintf("setSource(%d): %v", id, ErrSourceNotFound)
		n.notify("SetSource", true, true)

		return ErrSourceNotFound
	}
	n.sourceID = id
	if n.sinkID == id {
		n.sinkID = unsetID
	}
	n.prompt = fmt.Sprintf("source set to %d.", id)
	n.notify("SetSource", true, true)

	return nil
}

// SetSink designates id as the sink. If id equals the current source,
// the source is cleared (spec.md §3's sourceId != sinkId invariant).
func (n *FlowNetwork) SetSink(id int) error {
	if id < 0 {
		err := fmt.Errorf("flow: SetSink(%d): %w", id, core.ErrNegativeID)
		n.prompt = err.Error()
		n.notify("SetSink", true, true)

		return err
	}
	if !n.graph.HasVertex(id) {
		n.prompt = fmt.Sprintf("setSink(%d): %v", id, ErrSinkNotFound)
		n.notify("SetSink", true, true)

		return ErrSinkNotFound
	}
	n.sinkID = id
	if n.sourceID == id {
		n.sourceID = unsetID
	}
	n.prompt = fmt.Sprintf("sink set to %d.", id)
	n.notify("SetSink", true, true)

	return nil
}

// ResetNetwork discards the graph entirely: an empty graph, source and
// sink cleared, maxFlow reset to 0.
func (n *FlowNetwork) ResetNetwork() {
	n.graph = core.NewGraph()
	n.sourceID = unsetID
	n.sinkID = unsetID
	n.maxFlow = 0
	n.prompt = "network reset."
	n.notify("ResetNetwork", true, true)
}
