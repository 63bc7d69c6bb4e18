// Package maxflow is a maximum-flow computation engine: a directed
// capacitated graph plus two classical algorithms for solving it.
//
// What's here?
//
//	A single-threaded, in-memory engine that brings together:
//		• A cursor-driven Vertex/Edge/Graph model (core/) shared by both algorithms
//		• Dinic's blocking-flow algorithm (layered BFS + cursor-driven DFS)
//		• Goldberg–Tarjan push–relabel with a FIFO active-vertex queue
//		• A FlowNetwork facade (flow/) with mutation CRUD, change notification,
//		  and opaque save/load
//
// Why two algorithms?
//
//   - Dinic is the workhorse: O(V²E) worst case, fast in practice on most
//     topologies thanks to blocking flows over a layered residual graph.
//   - Goldberg–Tarjan is the fallback on adversarial topologies where the
//     layered structure degenerates; its discharge loop converges in O(V³).
//
// Everything is organized under two subpackages:
//
//	core/ — Vertex, Edge, Graph: the data model and graph-engine primitives
//	flow/ — FlowNetwork: owns a core.Graph plus source/sink/maxFlow/prompt,
//	        exposes Dinic()/GoldbergTarjan(), mutation CRUD, Subscribe, and
//	        SaveNetwork/LoadNetwork
//
// This package does not itself export anything; it exists to document the
// module as a whole. See core.Graph and flow.FlowNetwork for the API.
package maxflow
