// File: methods_graph.go
// Role: Graph-level vertex/edge CRUD plus the shared algorithm primitives
// both Dinic and Goldberg–Tarjan push–relabel build on: residual-graph
// construction, layered BFS, cursor-driven augmenting-path search, flow
// update, initial push, and FIFO discharge.
package core

import "fmt"

// AddVertex inserts a vertex with the given id. Idempotent in the sense
// required by spec.md property 8: a duplicate id is rejected rather than
// silently accepted, so the caller's prompt can report it.
//
// Complexity: O(1).
func (g *Graph) AddVertex(id int) error {
	if id < 0 {
		return fmt.Errorf("core: AddVertex(%d): %w", id, ErrNegativeID)
	}
	if _, exists := g.vertices[id]; exists {
		return fmt.Errorf("core: AddVertex(%d): %w", id, ErrDuplicateVertex)
	}
	g.vertices[id] = newVertex(id)
	g.order = append(g.order, id)

	return nil
}

// HasVertex reports whether id is present.
func (g *Graph) HasVertex(id int) bool {
	_, ok := g.vertices[id]

	return ok
}

// Vertex returns the vertex for id, or nil if absent.
func (g *Graph) Vertex(id int) *Vertex {
	return g.vertices[id]
}

// VertexCount returns the number of vertices currently in the graph.
func (g *Graph) VertexCount() int {
	return len(g.vertices)
}

// VertexIDs returns all vertex ids in insertion order.
func (g *Graph) VertexIDs() []int {
	out := make([]int, len(g.order))
	copy(out, g.order)

	return out
}

// RemoveVertex deletes the vertex id and all its incident edges, in both
// directions: its outgoing edges are dropped from the corresponding end
// vertices' resNeighbors (if a residual graph has been built), and any
// edge terminating at id is dropped from its start vertex's neighbors.
// This ordering — clear both adjacency directions before the vertex is
// deallocated — is the shared-resource policy spec.md §5 requires, since
// an Edge is aliased between its start vertex's owning neighbors list and
// its end vertex's non-owning resNeighbors list.
//
// Complexity: O(V + E).
func (g *Graph) RemoveVertex(id int) error {
	v, ok := g.vertices[id]
	if !ok {
		return fmt.Errorf("core: RemoveVertex(%d): %w", id, ErrVertexNotFound)
	}

	// Drop edges terminating at v from every other vertex's neighbors list.
	for _, other := range g.vertices {
		if other == v {
			continue
		}
		other.removeEdge(v)
		other.removeResEdge(v)
	}

	delete(g.vertices, id)
	for i, vid := range g.order {
		if vid == id {
			g.order = append(g.order[:i], g.order[i+1:]...)

			break
		}
	}

	return nil
}

// AddEdge inserts a directed edge u->v with the given capacity. Rejects
// negative endpoints, self-loops, missing endpoints, non-positive
// capacity, and a duplicate (u,v) pair, per spec.md §4.4's validation
// rules and global invariants 4–5.
//
// Complexity: O(deg(u)) for the duplicate check.
func (g *Graph) AddEdge(u, v, capacity int) error {
	if u < 0 || v < 0 {
		return fmt.Errorf("core: AddEdge(%d,%d,%d): %w", u, v, capacity, ErrNegativeID)
	}
	if u == v {
		return fmt.Errorf("core: AddEdge(%d,%d,%d): %w", u, v, capacity, ErrSelfLoop)
	}
	if capacity < 1 {
		return fmt.Errorf("core: AddEdge(%d,%d,%d): %w", u, v, capacity, ErrNonPositiveCapacity)
	}
	uv, ok := g.vertices[u]
	if !ok {
		return fmt.Errorf("core: AddEdge(%d,%d,%d): %w", u, v, capacity, ErrVertexNotFound)
	}
	vv, ok := g.vertices[v]
	if !ok {
		return fmt.Errorf("core: AddEdge(%d,%d,%d): %w", u, v, capacity, ErrVertexNotFound)
	}
	if e := uv.addEdge(vv, capacity); e == nil {
		return fmt.Errorf("core: AddEdge(%d,%d,%d): %w", u, v, capacity, ErrDuplicateEdge)
	}

	return nil
}

// SetEdgeFlow sets the flow on the directed edge u->v. Used by
// LoadNetwork to restore a saved flow assignment after AddEdge has
// (re)created the edge with flow 0.
func (g *Graph) SetEdgeFlow(u, v, flow int) error {
	uv, ok := g.vertices[u]
	if !ok {
		return fmt.Errorf("core: SetEdgeFlow(%d,%d,%d): %w", u, v, flow, ErrVertexNotFound)
	}
	vv, ok := g.vertices[v]
	if !ok {
		return fmt.Errorf("core: SetEdgeFlow(%d,%d,%d): %w", u, v, flow, ErrVertexNotFound)
	}
	for _, e := range uv.neighbors {
		if e.endVertex == vv {
			return e.SetFlow(flow)
		}
	}

	return fmt.Errorf("core: SetEdgeFlow(%d,%d,%d): %w", u, v, flow, ErrEdgeNotFound)
}

// RemoveEdge removes the directed edge u->v, if present.
func (g *Graph) RemoveEdge(u, v int) error {
	uv, ok := g.vertices[u]
	if !ok {
		return fmt.Errorf("core: RemoveEdge(%d,%d): %w", u, v, ErrVertexNotFound)
	}
	vv, ok := g.vertices[v]
	if !ok {
		return fmt.Errorf("core: RemoveEdge(%d,%d): %w", u, v, ErrVertexNotFound)
	}
	if !uv.containsEdge(vv) {
		return fmt.Errorf("core: RemoveEdge(%d,%d): %w", u, v, ErrEdgeNotFound)
	}
	uv.removeEdge(vv)
	vv.removeResEdge(uv)

	return nil
}

// ResetFlow sets flow to 0 on every edge.
//
// Complexity: O(E).
func (g *Graph) ResetFlow() {
	for _, v := range g.vertices {
		for _, e := range v.neighbors {
			e.flow = 0
		}
	}
}

// BuildResidualGraph clears every vertex's resNeighbors and deadEnd flag,
// then reinstalls the reverse-adjacency view from every edge's natural
// direction, visiting start vertices in insertion order so each
// resNeighbors list has a deterministic order.
//
// Complexity: O(V + E).
func (g *Graph) BuildResidualGraph() {
	for _, v := range g.vertices {
		v.clearResNeighbors()
		v.deadEnd = false
	}
	for _, id := range g.order {
		v := g.vertices[id]
		for _, e := range v.neighbors {
			e.endVertex.resNeighbors = append(e.endVertex.resNeighbors, e)
		}
	}
}

// ResetExcess zeroes every vertex's excess, then installs the source
// sentinel (-1) on sourceID, marking it as an infinite supply for the
// push–relabel initial push.
func (g *Graph) ResetExcess(sourceID int) {
	for _, v := range g.vertices {
		v.excess = 0
	}
	if src, ok := g.vertices[sourceID]; ok {
		src.excess = sourceExcessSentinel
	}
}

// InitializeLabels zeroes every vertex's label, then sets the source's
// label to n, the number of vertices — the standard valid labeling that
// blocks back-flow into the source for the duration of the run.
func (g *Graph) InitializeLabels(sourceID int) {
	n := len(g.vertices)
	for _, v := range g.vertices {
		v.label = 0
	}
	if src, ok := g.vertices[sourceID]; ok {
		src.label = n
	}
}

// BuildLayeredNetwork runs a BFS over the residual graph from sourceID,
// assigning each discovered vertex its BFS layer and clearing blocked on
// the discovering edge (every edge starts blocked). It terminates as soon
// as sinkID is discovered; any other vertex that entered that same layer
// has its layer reset to -1 (spec.md §9's open question 4 — kept as
// specified since the testable properties in spec.md §8 pass with this
// behavior).
//
// Returns the sink's layer (>= 1), or -1 if the sink is unreachable.
//
// Complexity: O(V + E).
func (g *Graph) BuildLayeredNetwork(sourceID, sinkID int) int {
	for _, v := range g.vertices {
		v.layer = unsetLayer
		v.deadEnd = false
		v.resetCursor()
		for _, e := range v.neighbors {
			e.blocked = true
		}
	}

	source, ok := g.vertices[sourceID]
	if !ok {
		return -1
	}
	sink, sinkOK := g.vertices[sinkID]
	if !sinkOK {
		return -1
	}

	source.layer = 0
	queue := []*Vertex{source}
	sinkLayer := -1

	for i := 0; i < len(queue) && sinkLayer == -1; i++ {
		u := queue[i]
		for _, e := range u.neighbors {
			if sinkLayer != -1 {
				break
			}
			if e.capacity > e.flow {
				w := e.endVertex
				if w.layer == unsetLayer {
					w.layer = u.layer + 1
					w.deadEnd = false
					e.blocked = false
					queue = append(queue, w)
					if w == sink {
						sinkLayer = w.layer
					}
				}
			}
		}
		for _, e := range u.resNeighbors {
			if sinkLayer != -1 {
				break
			}
			if e.flow > 0 {
				w := e.startVertex
				if w.layer == unsetLayer {
					w.layer = u.layer + 1
					w.deadEnd = false
					e.blocked = false
					queue = append(queue, w)
					if w == sink {
						sinkLayer = w.layer
					}
				}
			}
		}
	}

	if sinkLayer == -1 {
		return -1
	}

	for _, v := range g.vertices {
		if v != sink && v.layer == sinkLayer {
			v.layer = unsetLayer
		}
	}
	sink.layer = sinkLayer

	return sinkLayer
}

// SearchAugmentingPath runs a cursor-driven DFS from sourceID over the
// current layered network, recording the edges traversed in
// g.augmentingPath (with a parallel direction flag). At a dead-end vertex
// it pops the last edge, marks it blocked, and steps back; at the source
// dead-end it reports no path.
//
// Complexity: O(V + E) amortized across all calls within one
// blocking-flow phase, since the cursor discipline never revisits a
// fully-explored edge within the same phase.
func (g *Graph) SearchAugmentingPath(sourceID, sinkID int) bool {
	source, ok := g.vertices[sourceID]
	if !ok {
		return false
	}
	sink, ok := g.vertices[sinkID]
	if !ok {
		return false
	}

	g.augmentingPath = g.augmentingPath[:0]
	g.augmentingPathFwd = g.augmentingPathFwd[:0]

	current := source
	for {
		if current == sink {
			return true
		}

		if current.deadEnd {
			if current == source {
				return false
			}
			last := g.augmentingPath[len(g.augmentingPath)-1]
			lastFwd := g.augmentingPathFwd[len(g.augmentingPathFwd)-1]
			g.augmentingPath = g.augmentingPath[:len(g.augmentingPath)-1]
			g.augmentingPathFwd = g.augmentingPathFwd[:len(g.augmentingPathFwd)-1]
			last.blocked = true
			if lastFwd {
				current = last.startVertex
			} else {
				current = last.endVertex
			}

			continue
		}

		edge, forward, ok := current.getNextEdge()
		if !ok {
			continue
		}

		if forward {
			if edge.endVertex.layer == current.layer+1 && edge.capacity > edge.flow {
				g.augmentingPath = append(g.augmentingPath, edge)
				g.augmentingPathFwd = append(g.augmentingPathFwd, true)
				current = edge.endVertex
			}
		} else {
			if edge.startVertex.layer == current.layer+1 && edge.flow > 0 {
				g.augmentingPath = append(g.augmentingPath, edge)
				g.augmentingPathFwd = append(g.augmentingPathFwd, false)
				current = edge.startVertex
			}
		}
	}
}

// UpdateMinFlowIncrement computes the minimum residual capacity along the
// current augmentingPath and applies it to every edge on the path:
// forward edges gain it, backward (residual) edges lose it. An edge that
// saturates (forward) or empties (backward) as a result is marked
// blocked; otherwise the cursor of the vertex that originated that step
// is rewound so the edge can be reused on the next DFS pass.
//
// Returns the applied increment, or 0 if the path is empty.
func (g *Graph) UpdateMinFlowIncrement() int {
	if len(g.augmentingPath) == 0 {
		return 0
	}

	delta := -1
	for i, e := range g.augmentingPath {
		var residual int
		if g.augmentingPathFwd[i] {
			residual = e.capacity - e.flow
		} else {
			residual = e.flow
		}
		if delta == -1 || residual < delta {
			delta = residual
		}
	}

	for i, e := range g.augmentingPath {
		forward := g.augmentingPathFwd[i]
		var origin *Vertex
		if forward {
			origin = e.startVertex
			e.flow += delta
			if e.flow == e.capacity {
				e.blocked = true
			} else {
				origin.setPreviousEdge()
			}
		} else {
			origin = e.endVertex
			e.flow -= delta
			if e.flow == 0 {
				e.blocked = true
			} else {
				origin.setPreviousEdge()
			}
		}
	}

	return delta
}

// InitialPush saturates every outgoing edge of the source, caching source
// and sink as g.pushSource/g.pushSink for the subsequent DischargeQueue
// calls, and seeds the FIFO active-vertex queue with every endpoint that
// became active (excluding source and sink themselves).
//
// Returns the queue length after all pushes.
func (g *Graph) InitialPush(sourceID, sinkID int) int {
	source, ok := g.vertices[sourceID]
	if !ok {
		return 0
	}
	sink := g.vertices[sinkID]

	g.pushSource = source
	g.pushSink = sink
	g.queue = g.queue[:0]

	for _, e := range source.neighbors {
		activated := e.PushForward()
		if activated != nil && activated != source && activated != sink {
			g.enqueue(activated)
		}
	}

	return len(g.queue)
}

// DischargeQueue dequeues the head of the active-vertex queue, resets its
// cursor, and repeatedly performs push–relabel steps until its excess is
// zero or a relabel fired during this pass. If excess remains positive
// after relabeling, the vertex's increasedLabel flag is cleared and it is
// re-enqueued for another discharge pass at its new label.
//
// Returns the queue length after the call.
func (g *Graph) DischargeQueue() int {
	h := g.dequeue()
	if h == nil {
		return len(g.queue)
	}
	h.resetCursor()

	for {
		activated := h.PushRelabel()
		if activated != nil && activated != g.pushSource && activated != g.pushSink {
			g.enqueue(activated)
		}
		if h.excess == 0 || h.increasedLabel {
			break
		}
	}

	if h.excess > 0 {
		h.increasedLabel = false
		g.enqueue(h)
	}

	return len(g.queue)
}

func (g *Graph) enqueue(v *Vertex) {
	g.queue = append(g.queue, v)
}

func (g *Graph) dequeue() *Vertex {
	if len(g.queue) == 0 {
		return nil
	}
	h := g.queue[0]
	g.queue = g.queue[1:]

	return h
}
