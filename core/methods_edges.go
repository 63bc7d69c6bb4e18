// File: methods_edges.go
// Role: Edge read-only accessors and the push–relabel push primitives.
package core

// StartVertex returns the edge's tail vertex.
func (e *Edge) StartVertex() *Vertex { return e.startVertex }

// EndVertex returns the edge's head vertex.
func (e *Edge) EndVertex() *Vertex { return e.endVertex }

// Capacity returns the edge's immutable capacity.
func (e *Edge) Capacity() int { return e.capacity }

// Flow returns the edge's current flow.
func (e *Edge) Flow() int { return e.flow }

// Blocked reports whether Dinic has marked this edge outside the current
// layered network.
func (e *Edge) Blocked() bool { return e.blocked }

// SetFlow assigns flow directly, rejecting values outside [0, capacity].
// Used by persistence (LoadNetwork) to restore a saved flow without
// replaying an algorithm run.
func (e *Edge) SetFlow(flow int) error {
	if flow < 0 || flow > e.capacity {
		return ErrFlowOutOfRange
	}
	e.flow = flow

	return nil
}

// PushForward applies push–relabel's forward push across e: traversing e
// in its natural direction from e.startVertex.
//
// delta = min(capacity-flow, excess(startVertex)), except when startVertex
// carries the source sentinel excess (-1): there delta = capacity-flow and
// the source's excess is left untouched (it represents infinite supply).
//
// Returns e.endVertex iff this push moved it from zero excess to positive,
// clearing its deadEnd flag; otherwise nil. A non-saturating push (one that
// leaves residual capacity on e) rewinds startVertex's cursor by one so e
// can be retried once startVertex is active again.
func (e *Edge) PushForward() *Vertex {
	u, v := e.startVertex, e.endVertex
	fromSource := u.excess == sourceExcessSentinel

	available := e.capacity - e.flow
	if available <= 0 {
		return nil
	}

	var delta int
	if fromSource {
		delta = available
	} else {
		delta = available
		if u.excess < delta {
			delta = u.excess
		}
		if delta <= 0 {
			return nil
		}
	}

	wasZero := v.excess == 0
	e.flow += delta
	if !fromSource {
		u.excess -= delta
	}
	v.excess += delta

	if e.flow < e.capacity {
		// Non-saturating: excess was the binding constraint, e still has
		// residual capacity. Retry it once u is active again.
		u.setPreviousEdge()
	}

	if wasZero && v.excess > 0 {
		v.deadEnd = false

		return v
	}

	return nil
}

// PushBackward applies push–relabel's backward (residual) push across e:
// traversing e against its natural direction, from e.endVertex toward
// e.startVertex.
//
// delta = min(flow, excess(endVertex)). e's flow decreases by delta;
// startVertex's excess increases by delta, unless startVertex carries the
// source sentinel (-1), in which case it is left untouched. endVertex's
// excess decreases by delta.
//
// Returns e.startVertex iff this push moved it from zero excess to
// positive, clearing its deadEnd flag; otherwise nil. A non-saturating
// push (one that leaves flow > 0 on e) rewinds endVertex's cursor by one
// so e can be retried once endVertex is active again.
func (e *Edge) PushBackward() *Vertex {
	u, v := e.startVertex, e.endVertex

	delta := e.flow
	if v.excess < delta {
		delta = v.excess
	}
	if delta <= 0 {
		return nil
	}

	fromSourceSink := u.excess == sourceExcessSentinel
	wasZero := !fromSourceSink && u.excess == 0

	e.flow -= delta
	if !fromSourceSink {
		u.excess += delta
	}
	v.excess -= delta

	if e.flow > 0 {
		// Non-saturating: excess(v) was the binding constraint, e still
		// carries residual flow. Retry it once v is active again.
		v.setPreviousEdge()
	}

	if !fromSourceSink && wasZero && u.excess > 0 {
		u.deadEnd = false

		return u
	}

	return nil
}
