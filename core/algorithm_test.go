package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/mfacore/maxflow/core"
)

// AlgorithmPrimitivesSuite drives the Dinic and push–relabel building
// blocks directly, independent of the flow package's orchestration, to
// pin down each primitive's contract in isolation.
type AlgorithmPrimitivesSuite struct {
	suite.Suite
}

func thesisGraph(t require.TestingT) *core.Graph {
	g := core.NewGraph()
	for i := 0; i <= 5; i++ {
		require.NoError(t, g.AddVertex(i))
	}
	edges := [][3]int{
		{0, 1, 7}, {0, 2, 4},
		{1, 3, 5}, {1, 4, 3},
		{2, 4, 2}, {2, 5, 4},
		{3, 5, 8}, {4, 5, 3},
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1], e[2]))
	}

	return g
}

func (s *AlgorithmPrimitivesSuite) TestBuildLayeredNetworkAssignsBFSDistances() {
	g := thesisGraph(s.T())
	g.BuildResidualGraph()

	sinkLayer := g.BuildLayeredNetwork(0, 5)
	require.Equal(s.T(), 3, sinkLayer)
	require.Equal(s.T(), 0, g.Vertex(0).Layer())
	require.Equal(s.T(), 1, g.Vertex(1).Layer())
	require.Equal(s.T(), 1, g.Vertex(2).Layer())
	require.Equal(s.T(), 3, g.Vertex(5).Layer())
}

func (s *AlgorithmPrimitivesSuite) TestBuildLayeredNetworkUnreachableSink() {
	g := core.NewGraph()
	require.NoError(s.T(), g.AddVertex(0))
	require.NoError(s.T(), g.AddVertex(1))
	g.BuildResidualGraph()

	require.Equal(s.T(), -1, g.BuildLayeredNetwork(0, 1))
}

// TestDinicBlockingFlowDrivesMaxFlowToSeven replays Dinic's outer loop
// using only core.Graph's exported primitives, pinning the thesis
// network's expected maximum flow.
func (s *AlgorithmPrimitivesSuite) TestDinicBlockingFlowDrivesMaxFlowToSeven() {
	g := thesisGraph(s.T())
	g.ResetFlow()
	g.BuildResidualGraph()

	maxFlow := 0
	distance := g.BuildLayeredNetwork(0, 5)
	for distance > 0 {
		if g.SearchAugmentingPath(0, 5) {
			maxFlow += g.UpdateMinFlowIncrement()
		} else {
			distance = g.BuildLayeredNetwork(0, 5)
		}
	}

	require.Equal(s.T(), 7, maxFlow)
	for _, e := range g.Edges() {
		require.GreaterOrEqual(s.T(), e.Flow, 0)
		require.LessOrEqual(s.T(), e.Flow, e.Capacity)
	}
	for _, id := range []int{1, 2, 3, 4} {
		require.Equal(s.T(), g.InFlow(id), g.OutFlow(id), "vertex %d must conserve flow", id)
	}
}

// TestGoldbergTarjanDischargeDrivesMaxFlowToSeven replays the
// push–relabel discharge loop using only core.Graph's exported
// primitives, on the same network as the Dinic replay above.
func (s *AlgorithmPrimitivesSuite) TestGoldbergTarjanDischargeDrivesMaxFlowToSeven() {
	g := thesisGraph(s.T())
	g.ResetFlow()
	g.BuildResidualGraph()
	g.ResetExcess(0)
	g.InitializeLabels(0)

	q := g.InitialPush(0, 5)
	for q > 0 {
		q = g.DischargeQueue()
	}

	maxFlow := g.OutFlow(0) - g.InFlow(0)
	require.Equal(s.T(), 7, maxFlow)
	for _, id := range []int{1, 2, 3, 4} {
		require.Equal(s.T(), g.InFlow(id), g.OutFlow(id), "vertex %d must conserve flow", id)
	}
}

// TestSearchAugmentingPathExhaustsSourceOnSecondCall pins the cursor
// discipline's observable effect at the Graph level: once a layered
// network's only path has been found and saturated, a second search
// within the same phase reports no path and leaves deadEnd set on the
// source.
func (s *AlgorithmPrimitivesSuite) TestSearchAugmentingPathExhaustsSourceOnSecondCall() {
	g := core.NewGraph()
	for i := 0; i <= 1; i++ {
		require.NoError(s.T(), g.AddVertex(i))
	}
	require.NoError(s.T(), g.AddEdge(0, 1, 5))
	g.BuildResidualGraph()
	g.BuildLayeredNetwork(0, 1)

	require.True(s.T(), g.SearchAugmentingPath(0, 1))
	require.Equal(s.T(), 5, g.UpdateMinFlowIncrement())

	require.False(s.T(), g.SearchAugmentingPath(0, 1))
	require.True(s.T(), g.Vertex(0).DeadEnd())
}

// TestGoldbergTarjanLabelsAreMonotonicallyNonDecreasing pins push–relabel's
// central correctness invariant: RelabelVertex only ever raises a vertex's
// height, so across the whole discharge loop no vertex's Label() may ever
// be observed lower than it was on a previous snapshot.
func (s *AlgorithmPrimitivesSuite) TestGoldbergTarjanLabelsAreMonotonicallyNonDecreasing() {
	g := thesisGraph(s.T())
	g.ResetFlow()
	g.BuildResidualGraph()
	g.ResetExcess(0)
	g.InitializeLabels(0)

	ids := g.VertexIDs()
	last := make(map[int]int, len(ids))
	for _, id := range ids {
		last[id] = g.Vertex(id).Label()
	}

	q := g.InitialPush(0, 5)
	for q > 0 {
		q = g.DischargeQueue()
		for _, id := range ids {
			current := g.Vertex(id).Label()
			require.GreaterOrEqual(s.T(), current, last[id], "vertex %d label decreased", id)
			last[id] = current
		}
	}

	require.Equal(s.T(), 7, g.OutFlow(0)-g.InFlow(0))
}

func TestAlgorithmPrimitivesSuite(t *testing.T) {
	suite.Run(t, new(AlgorithmPrimitivesSuite))
}
