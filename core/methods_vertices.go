// File: methods_vertices.go
// Role: Vertex adjacency lifecycle, cursor bookkeeping, and the
// push–relabel per-vertex step (RelabelVertex, PushRelabel).
package core

// ID returns the vertex's identifier.
func (v *Vertex) ID() int { return v.id }

// Label returns the push–relabel height currently assigned to v.
func (v *Vertex) Label() int { return v.label }

// Layer returns the Dinic BFS layer currently assigned to v, or unsetLayer
// (-1) if v is not part of the current layered network.
func (v *Vertex) Layer() int { return v.layer }

// Excess returns v's current push–relabel excess, or the source sentinel
// (-1) if v is the source mid initial-push.
func (v *Vertex) Excess() int { return v.excess }

// DeadEnd reports whether v's cursor has been exhausted during the
// current Dinic DFS or push–relabel discharge pass.
func (v *Vertex) DeadEnd() bool { return v.deadEnd }

// Neighbors returns v's outgoing edges in insertion order. The returned
// slice is a copy; mutating it does not affect v.
func (v *Vertex) Neighbors() []*Edge {
	out := make([]*Edge, len(v.neighbors))
	copy(out, v.neighbors)

	return out
}

// ResNeighbors returns the edges for which v is the head, in the order
// installed by the last BuildResidualGraph call.
func (v *Vertex) ResNeighbors() []*Edge {
	out := make([]*Edge, len(v.resNeighbors))
	copy(out, v.resNeighbors)

	return out
}

// containsEdge reports whether v already has an outgoing edge to end.
// Linear scan of neighbors, per the data model's insertion-ordered list.
func (v *Vertex) containsEdge(end *Vertex) bool {
	for _, e := range v.neighbors {
		if e.endVertex == end {
			return true
		}
	}

	return false
}

// addEdge inserts a new edge v->end with the given capacity if (v,end) is
// not already present. No-op on duplicate, mirroring Vertex.addEdge's
// contract in §4.2.
func (v *Vertex) addEdge(end *Vertex, capacity int) *Edge {
	if v.containsEdge(end) {
		return nil
	}
	e := newEdge(v, end, capacity)
	v.neighbors = append(v.neighbors, e)

	return e
}

// removeEdge removes the outgoing edge v->end, if present.
func (v *Vertex) removeEdge(end *Vertex) {
	for i, e := range v.neighbors {
		if e.endVertex == end {
			v.neighbors = append(v.neighbors[:i], v.neighbors[i+1:]...)

			return
		}
	}
}

// removeResEdge removes the resNeighbors entry whose edge originates at start.
func (v *Vertex) removeResEdge(start *Vertex) {
	for i, e := range v.resNeighbors {
		if e.startVertex == start {
			v.resNeighbors = append(v.resNeighbors[:i], v.resNeighbors[i+1:]...)

			return
		}
	}
}

// clearResNeighbors empties v's reverse-adjacency view ahead of a residual
// rebuild.
func (v *Vertex) clearResNeighbors() {
	v.resNeighbors = v.resNeighbors[:0]
}

// cursorTotal is the combined length of the forward/residual sequence the
// cursor ranges over.
func (v *Vertex) cursorTotal() int {
	return len(v.neighbors) + len(v.resNeighbors)
}

// cursorPos decodes the encoded cursor into a 0-based absolute index over
// neighbors++resNeighbors, or -1 if the cursor is at "before first".
func (v *Vertex) cursorPos() int {
	switch {
	case v.cursor == 0:
		return -1
	case v.cursor > 0:
		return v.cursor - 1
	default:
		return len(v.neighbors) + (-v.cursor - 1)
	}
}

// setCursorPos encodes a 0-based absolute index back into the cursor field.
func (v *Vertex) setCursorPos(pos int) {
	if pos < len(v.neighbors) {
		v.cursor = pos + 1
	} else {
		v.cursor = -(pos - len(v.neighbors) + 1)
	}
}

// resetCursor rewinds v's cursor to "before first".
func (v *Vertex) resetCursor() {
	v.cursor = 0
}

// getNextEdge advances v's cursor by one position and returns the edge
// found there: forward edges (from v.neighbors) first, in insertion
// order, then residual edges (from v.resNeighbors), in insertion order.
// When the cursor is already exhausted, it sets v.deadEnd and returns
// ok=false.
func (v *Vertex) getNextEdge() (edge *Edge, forward bool, ok bool) {
	total := v.cursorTotal()
	next := v.cursorPos() + 1
	if next >= total {
		v.deadEnd = true

		return nil, false, false
	}
	v.setCursorPos(next)
	if next < len(v.neighbors) {
		return v.neighbors[next], true, true
	}

	return v.resNeighbors[next-len(v.neighbors)], false, true
}

// setPreviousEdge rewinds v's cursor by one position, the inverse of
// getNextEdge. Used by non-saturating pushes (Edge.PushForward /
// Edge.PushBackward) and by Dinic's UpdateMinFlowIncrement so a
// not-yet-exhausted edge can be retried on the next pass.
func (v *Vertex) setPreviousEdge() {
	pos := v.cursorPos()
	if pos <= 0 {
		v.cursor = 0

		return
	}
	v.setCursorPos(pos - 1)
}

// admissibleForward reports whether the forward edge e, viewed from its
// current vertex e.startVertex, is admissible for push–relabel:
// label(u) = label(v) + 1 and flow < capacity.
func admissibleForward(e *Edge) bool {
	return e.startVertex.label == e.endVertex.label+1 && e.flow < e.capacity
}

// admissibleResidual reports whether the residual traversal of e, viewed
// from its current vertex e.endVertex, is admissible for push–relabel:
// label(v) = label(u) + 1 and flow > 0, where u = e.startVertex is the
// vertex being traversed toward.
func admissibleResidual(e *Edge) bool {
	return e.endVertex.label == e.startVertex.label+1 && e.flow > 0
}

// RelabelVertex sets v.label to 1 + the minimum label among vertices
// reachable from v via an edge with positive residual capacity (a
// forward edge with capacity > flow, or a residual edge with flow > 0).
// If no such neighbor exists, v.label is left unchanged and
// increasedLabel is NOT set — the original MFA implementation's write of
// a sentinel MAX_VALUE height in this case was flagged in spec.md §9 as
// almost certainly wrong and is not reproduced here.
func (v *Vertex) RelabelVertex() {
	minLabel := -1
	for _, e := range v.neighbors {
		if e.capacity > e.flow {
			if minLabel == -1 || e.endVertex.label < minLabel {
				minLabel = e.endVertex.label
			}
		}
	}
	for _, e := range v.resNeighbors {
		if e.flow > 0 {
			if minLabel == -1 || e.startVertex.label < minLabel {
				minLabel = e.startVertex.label
			}
		}
	}
	if minLabel == -1 {
		return
	}
	v.label = minLabel + 1
	v.increasedLabel = true
}

// PushRelabel performs one step of push–relabel discharge for v: fetch the
// next edge via the cursor; if none remain, relabel and clear deadEnd;
// otherwise, if the edge is admissible, execute the corresponding push;
// otherwise, if v was already marked deadEnd, relabel and clear the flag;
// otherwise advance silently (the cursor already moved via getNextEdge).
//
// Returns any vertex newly activated by a push, so the caller can enqueue
// it; nil otherwise.
func (v *Vertex) PushRelabel() *Vertex {
	edge, forward, ok := v.getNextEdge()
	if !ok {
		v.RelabelVertex()
		v.deadEnd = false

		return nil
	}

	if forward {
		if admissibleForward(edge) {
			return edge.PushForward()
		}
	} else {
		if admissibleResidual(edge) {
			return edge.PushBackward()
		}
	}

	if v.deadEnd {
		v.RelabelVertex()
		v.deadEnd = false
	}

	return nil
}
