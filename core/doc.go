// Package core provides the Vertex/Edge/Graph data model shared by the
// flow package's two maximum-flow algorithms (Dinic and Goldberg–Tarjan
// push–relabel), plus the graph-engine primitives both algorithms build on:
// residual-graph construction, layered BFS, cursor-driven augmenting-path
// DFS, and push–relabel discharge.
//
// The Graph G = (V,E) is a directed, integer-capacitated network:
//
//   - Vertices are identified by non-negative int ids, unique within a Graph.
//   - Edges are directed, single (no parallel edges between the same ordered
//     pair), capacitated, and carry a concrete integer flow in [0, capacity].
//   - There is exactly one Edge object per ordered pair (u,v); the "residual
//     edge" traversed against its natural direction is the same object, not
//     a second allocation. A Vertex's resNeighbors is a non-owning reverse
//     adjacency view populated by BuildResidualGraph.
//
// Why no sync.RWMutex here, unlike a general-purpose graph library?
//
// The core is deliberately single-threaded: an algorithm run must see a
// stable graph from start to finish, and the two max-flow algorithms below
// mutate per-vertex bookkeeping (label, layer, excess, cursor, deadEnd) on
// every step. Callers needing concurrent access must serialize externally.
//
// Core Methods:
//
//	// Vertex/edge lifecycle
//	AddVertex(id int) error
//	RemoveVertex(id int) error
//	AddEdge(u, v, capacity int) error
//	RemoveEdge(u, v int) error
//
//	// Algorithm primitives (used by flow.FlowNetwork.Dinic / GoldbergTarjan)
//	ResetFlow()
//	BuildResidualGraph()
//	ResetExcess(sourceID int)
//	InitializeLabels(sourceID int)
//	BuildLayeredNetwork(sourceID, sinkID int) int
//	SearchAugmentingPath(sourceID, sinkID int) bool
//	UpdateMinFlowIncrement() int
//	InitialPush(sourceID, sinkID int) int
//	DischargeQueue() int
//
// See flow.FlowNetwork for the orchestrating facade.
package core
