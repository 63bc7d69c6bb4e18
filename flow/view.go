// File: view.go
// Role: Read-only views of FlowNetwork state — edge/vertex listings, the
// textual dump, prompt, source/sink, and dirty-flag accessors.
package flow

import (
	"fmt"
	"strings"

	"github.com/mfacore/maxflow/core"
)

// EdgeData is a read-only snapshot of one edge: its endpoints, capacity,
// and current flow. It is a direct alias of core.EdgeRecord so callers
// never need to import core just to read GetGraphData's result.
type EdgeData = core.EdgeRecord

// GetGraphData returns every edge as (u, v, capacity, flow), in
// insertion order of vertices and, within each vertex, insertion order
// of its outgoing edges.
func (n *FlowNetwork) GetGraphData() []EdgeData {
	return n.graph.Edges()
}

// GetVertexIndices returns every vertex id in insertion order.
func (n *FlowNetwork) GetVertexIndices() []int {
	return n.graph.VertexIDs()
}

// GetSource returns the current source id, or -1 if unset.
func (n *FlowNetwork) GetSource() int { return n.sourceID }

// GetSink returns the current sink id, or -1 if unset.
func (n *FlowNetwork) GetSink() int { return n.sinkID }

// GetMaxFlow returns the value computed by the last successful algorithm
// run, or 0 after a reset or before any run.
func (n *FlowNetwork) GetMaxFlow() int { return n.maxFlow }

// GetPrompt returns the human-readable outcome of the most recent
// mutation or algorithm invocation.
func (n *FlowNetwork) GetPrompt() string { return n.prompt }

// IsUpdateGraph reports whether external text views must re-render.
func (n *FlowNetwork) IsUpdateGraph() bool { return n.updateGraph }

// IsDrawGraph reports whether an external drawing must re-render.
func (n *FlowNetwork) IsDrawGraph() bool { return n.drawGraph }

// UpdateGraph marks the text-view dirty flag and notifies subscribers,
// independent of any mutation. Exposed for callers (e.g. a UI) that need
// to force a re-render outside the normal mutation path.
func (n *FlowNetwork) UpdateGraph() {
	n.notify("UpdateGraph", true, n.drawGraph)
}

// DrawGraph marks the drawing dirty flag and notifies subscribers,
// independent of any mutation.
func (n *FlowNetwork) DrawGraph() {
	n.notify("DrawGraph", n.updateGraph, true)
}

// DisplayFlowNetwork renders the stable textual dump format spec.md §6
// specifies: a header with source, sink, and maxFlow, followed by one
// line per vertex in insertion order enumerating its outgoing edges as
// (u,v,c:<capacity>,f:<flow>).
func (n *FlowNetwork) DisplayFlowNetwork() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Source: %d\n", n.sourceID)
	fmt.Fprintf(&b, "Sink: %d\n", n.sinkID)
	fmt.Fprintf(&b, "MaxFlow: %d\n", n.maxFlow)

	for _, id := range n.graph.VertexIDs() {
		v := n.graph.Vertex(id)
		fmt.Fprintf(&b, "Vertex %d (label %d):  ", id, v.Label())
		for _, e := range v.Neighbors() {
			fmt.Fprintf(&b, "(%d,%d,c:%d,f:%d)  ", e.StartVertex().ID(), e.EndVertex().ID(), e.Capacity(), e.Flow())
		}
		b.WriteByte('\n')
	}

	return b.String()
}
