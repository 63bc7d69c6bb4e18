// Package flow implements FlowNetwork, a facade that owns a *core.Graph
// plus a designated source and sink, and exposes the two classical
// maximum-flow algorithms:
//
//   - Dinic
//
//   - Method: layered BFS (blocking-flow phase boundary) + cursor-driven
//     DFS over the layered network, applying the minimum residual
//     capacity along each augmenting path found.
//
//   - Time:   O(V²E) worst case.
//
//   - Memory: O(V + E) for layers, cursors, and the DFS path stack.
//
//   - Goldberg–Tarjan push–relabel
//
//   - Method: FIFO active-vertex queue; each discharge pushes along
//     admissible arcs until the vertex's excess is zero or a relabel
//     fires.
//
//   - Time:   O(V³) worst case.
//
//   - Memory: O(V + E) for labels, excesses, and the active queue.
//
// # API
//
// FlowNetwork is constructed with NewFlowNetwork(opts ...Option). The
// mutation surface (AddVertex, RemoveVertex, AddEdge, RemoveEdge,
// SetSource, SetSink, ResetNetwork) updates FlowNetwork.prompt with a
// human-readable outcome, sets the updateGraph/drawGraph dirty flags per
// the table in spec.md §6, and notifies every live Subscribe callback
// exactly once before returning.
//
// Dinic() and GoldbergTarjan() return the same maximum-flow value for a
// given network (spec.md §8 property 3) and leave the graph's edges
// carrying a concrete flow realizing it.
//
// # Persistence
//
// SaveNetwork/LoadNetwork serialize the full data model (vertices, edges
// with capacity and flow, source, sink, maxFlow, prompt) as YAML. The
// format is opaque to callers and stable within a major version; a
// failed load leaves the network unchanged.
//
// # Errors
//
//	ErrSourceNotFound, ErrSinkNotFound, ErrSourceSinkUnset, ErrSameSourceSink
//	ErrIOFailure - marks a failed file write/read or YAML decode on save/load.
//
// See core.Graph for the underlying data model and algorithm primitives.
package flow
