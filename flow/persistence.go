// File: persistence.go
// Role: SaveNetwork/LoadNetwork — an opaque YAML round-tripping codec for
// the full data model. Load validates the invariants in spec.md §3
// before installing the decoded result, and leaves the receiver
// untouched on any failure. Both methods set n.prompt and notify
// subscribers on every return path, win or lose, mirroring every other
// mutator in flow/network.go.
package flow

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mfacore/maxflow/core"
)

// snapshotEdge is the on-disk shape of one edge.
type snapshotEdge struct {
	From     int `yaml:"from"`
	To       int `yaml:"to"`
	Capacity int `yaml:"capacity"`
	Flow     int `yaml:"flow"`
}

// snapshot is the on-disk shape of a FlowNetwork: the full data model
// named in spec.md §3 minus the transient dirty flags, which are not
// stored; LoadNetwork sets both to true.
type snapshot struct {
	Vertices []int          `yaml:"vertices"`
	Edges    []snapshotEdge `yaml:"edges"`
	SourceID int            `yaml:"sourceId"`
	SinkID   int            `yaml:"sinkId"`
	MaxFlow  int            `yaml:"maxFlow"`
	Prompt   string         `yaml:"prompt"`
}

// SaveNetwork writes the network's full state to path as YAML. The
// format is opaque to callers and is meant only to be read back by
// LoadNetwork. Per spec.md §6's table, saveNetwork always notifies with
// both dirty flags false, whether it succeeds or fails.
func (n *FlowNetwork) SaveNetwork(path string) error {
	snap := snapshot{
		Vertices: n.graph.VertexIDs(),
		SourceID: n.sourceID,
		SinkID:   n.sinkID,
		MaxFlow:  n.maxFlow,
		Prompt:   n.prompt,
	}
	for _, e := range n.graph.Edges() {
		snap.Edges = append(snap.Edges, snapshotEdge{
			From:     e.From,
			To:       e.To,
			Capacity: e.Capacity,
			Flow:     e.Flow,
		})
	}

	data, err := yaml.Marshal(&snap)
	if err != nil {
		n.prompt = fmt.Sprintf("flow network not saved (%v).", err)
		n.notify("SaveNetwork", false, false)

		return fmt.Errorf("flow: SaveNetwork(%q): %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		n.prompt = fmt.Sprintf("flow network not saved (%v).", err)
		n.notify("SaveNetwork", false, false)

		return fmt.Errorf("flow: SaveNetwork(%q): %w: %v", path, ErrIOFailure, err)
	}

	n.prompt = fmt.Sprintf("flow network saved (%s).", path)
	n.notify("SaveNetwork", false, false)

	return nil
}

// LoadNetwork reads path and replaces the receiver's state with the
// decoded network, provided every invariant in spec.md §3 holds.
// On any failure — I/O, decode, or invariant violation — the receiver's
// graph/source/sink/maxFlow are left exactly as they were, though
// n.prompt and the dirty flags are still updated per spec.md §6's table
// (resetNetwork/loadNetwork always notify true/true).
func (n *FlowNetwork) LoadNetwork(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		n.prompt = fmt.Sprintf("flow network not loaded (%v).", err)
		n.notify("LoadNetwork", true, true)

		return fmt.Errorf("flow: LoadNetwork(%q): %w: %v", path, ErrIOFailure, err)
	}

	var snap snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		n.prompt = fmt.Sprintf("flow network not loaded (%v).", err)
		n.notify("LoadNetwork", true, true)

		return fmt.Errorf("flow: LoadNetwork(%q): %w: %v", path, ErrIOFailure, err)
	}

	g := core.NewGraph()
	for _, id := range snap.Vertices {
		if err := g.AddVertex(id); err != nil {
			n.prompt = fmt.Sprintf("flow network not loaded (%v).", err)
			n.notify("LoadNetwork", true, true)

			return fmt.Errorf("flow: LoadNetwork(%q): %w", path, err)
		}
	}

	seen := make(map[[2]int]bool, len(snap.Edges))
	for _, e := range snap.Edges {
		if seen[[2]int{e.From, e.To}] {
			err := fmt.Errorf("duplicate edge (%d,%d)", e.From, e.To)
			n.prompt = fmt.Sprintf("flow network not loaded (%v).", err)
			n.notify("LoadNetwork", true, true)

			return fmt.Errorf("flow: LoadNetwork(%q): %w", path, err)
		}
		seen[[2]int{e.From, e.To}] = true

		if err := g.AddEdge(e.From, e.To, e.Capacity); err != nil {
			n.prompt = fmt.Sprintf("flow network not loaded (%v).", err)
			n.notify("LoadNetwork", true, true)

			return fmt.Errorf("flow: LoadNetwork(%q): %w", path, err)
		}
		if err := g.SetEdgeFlow(e.From, e.To, e.Flow); err != nil {
			n.prompt = fmt.Sprintf("flow network not loaded (%v).", err)
			n.notify("LoadNetwork", true, true)

			return fmt.Errorf("flow: LoadNetwork(%q): edge (%d,%d): %w", path, e.From, e.To, err)
		}
	}

	if snap.SourceID != unsetID && !g.HasVertex(snap.SourceID) {
		n.prompt = fmt.Sprintf("flow network not loaded (%v).", ErrSourceNotFound)
		n.notify("LoadNetwork", true, true)

		return fmt.Errorf("flow: LoadNetwork(%q): %w", path, ErrSourceNotFound)
	}
	if snap.SinkID != unsetID && !g.HasVertex(snap.SinkID) {
		n.prompt = fmt.Sprintf("flow network not loaded (%v).", ErrSinkNotFound)
		n.notify("LoadNetwork", true, true)

		return fmt.Errorf("flow: LoadNetwork(%q): %w", path, ErrSinkNotFound)
	}
	if snap.SourceID != unsetID && snap.SourceID == snap.SinkID {
		n.prompt = fmt.Sprintf("flow network not loaded (%v).", ErrSameSourceSink)
		n.notify("LoadNetwork", true, true)

		return fmt.Errorf("flow: LoadNetwork(%q): %w", path, ErrSameSourceSink)
	}

	for _, id := range g.VertexIDs() {
		if id == snap.SourceID || id == snap.SinkID {
			continue
		}
		if g.InFlow(id) != g.OutFlow(id) {
			err := fmt.Errorf("vertex %d: flow conservation violated", id)
			n.prompt = fmt.Sprintf("flow network not loaded (%v).", err)
			n.notify("LoadNetwork", true, true)

			return fmt.Errorf("flow: LoadNetwork(%q): %w", path, err)
		}
	}

	n.graph = g
	n.sourceID = snap.SourceID
	n.sinkID = snap.SinkID
	n.maxFlow = snap.MaxFlow
	n.prompt = fmt.Sprintf("flow network loaded (%s).", path)
	n.notify("LoadNetwork", true, true)

	return nil
}
