// File: events.go
// Role: The change-notification surface — Subscribe/unsubscribe and the
// synchronous fan-out every mutating call performs exactly once.
//
// This realizes spec.md §9's redesign note ("re-architect as an explicit
// change-event emitter") in place of the source's ambient-observer
// pattern, generalized from the teacher's one-shot dfs.Option hooks
// (OnVisit/OnExit) to a multi-subscriber fan-out.
package flow

// Subscribe registers fn to be called once, synchronously, after every
// subsequent mutating FlowNetwork call. It returns an unsubscribe
// function that removes fn; calling it more than once is a no-op.
func (n *FlowNetwork) Subscribe(fn func(Event)) (unsubscribe func()) {
	id := n.nextSubscriberID
	n.nextSubscriberID++
	n.subscribers[id] = fn

	removed := false

	return func() {
		if removed {
			return
		}
		removed = true
		delete(n.subscribers, id)
	}
}

// notify sets the dirty flags and emits op to every live subscriber. It
// is called exactly once at the end of every mutating operation, never
// mid-algorithm (spec.md §5).
func (n *FlowNetwork) notify(op string, updateGraph, drawGraph bool) {
	n.updateGraph = updateGraph
	n.drawGraph = drawGraph

	evt := Event{Op: op, UpdateGraph: updateGraph, DrawGraph: drawGraph}
	for _, fn := range n.subscribers {
		fn(evt)
	}
}
