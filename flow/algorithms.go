// File: algorithms.go
// Role: The two orchestrating algorithms, Dinic and GoldbergTarjan, built
// entirely out of core.Graph's primitives. Neither algorithm reports
// errors directly: an invalid precondition (source/sink unset or
// missing) yields maxFlow=0 and leaves the graph's flows untouched,
// per spec.md §7.
package flow

import "fmt"

// Dinic computes a maximum s–t flow via layered BFS plus a cursor-driven
// blocking-flow DFS, repeating until the sink becomes unreachable in the
// residual graph. It returns the computed flow value and leaves every
// edge carrying a concrete flow realizing it.
func (n *FlowNetwork) Dinic() int {
	if n.sourceID == unsetID || n.sinkID == unsetID {
		n.prompt = ErrSourceSinkUnset.Error()
		n.notify("Dinic", false, false)

		return 0
	}

	n.graph.ResetFlow()
	n.graph.BuildResidualGraph()

	distance := n.graph.BuildLayeredNetwork(n.sourceID, n.sinkID)
	maxFlow := 0
	for distance > 0 {
		if n.graph.SearchAugmentingPath(n.sourceID, n.sinkID) {
			inc := n.graph.UpdateMinFlowIncrement()
			maxFlow += inc
			if n.verbose {
				n.logger.Debug().
					Int("increment", inc).
					Int("total", maxFlow).
					Msg("dinic: augmenting path applied")
			}
		} else {
			distance = n.graph.BuildLayeredNetwork(n.sourceID, n.sinkID)
			if n.verbose {
				n.logger.Debug().Int("distance", distance).Msg("dinic: layered network rebuilt")
			}
		}
	}

	n.maxFlow = maxFlow
	n.prompt = fmt.Sprintf("Dinic: maximum flow F=%d.", maxFlow)
	n.notify("Dinic", true, false)

	return maxFlow
}

// GoldbergTarjan computes a maximum s–t flow via the FIFO push–relabel
// discharge loop: source/sink labels and excesses are initialized, the
// source's outgoing edges are saturated by the initial push, and every
// active vertex is discharged until the queue drains. The resulting flow
// value is read back as outflow(source) - inflow(source).
func (n *FlowNetwork) GoldbergTarjan() int {
	if n.sourceID == unsetID || n.sinkID == unsetID {
		n.prompt = ErrSourceSinkUnset.Error()
		n.notify("GoldbergTarjan", false, false)

		return 0
	}

	n.graph.ResetFlow()
	n.graph.BuildResidualGraph()
	n.graph.ResetExcess(n.sourceID)
	n.graph.InitializeLabels(n.sourceID)

	q := n.graph.InitialPush(n.sourceID, n.sinkID)
	for q > 0 {
		q = n.graph.DischargeQueue()
		if n.verbose {
			n.logger.Debug().Int("queueLen", q).Msg("goldberg-tarjan: discharge step")
		}
	}

	maxFlow := n.graph.OutFlow(n.sourceID) - n.graph.InFlow(n.sourceID)
	n.maxFlow = maxFlow
	n.prompt = fmt.Sprintf("Goldberg-Tarjan: maximum flow F=%d.", maxFlow)
	n.notify("GoldbergTarjan", true, false)

	return maxFlow
}
