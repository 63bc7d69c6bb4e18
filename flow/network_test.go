package flow_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/mfacore/maxflow/flow"
)

// ScenarioSuite replays the concrete end-to-end scenarios the library's
// design is pinned against: both algorithms must agree on every network.
type ScenarioSuite struct {
	suite.Suite
}

func buildNetwork(t require.TestingT, edges [][3]int, source, sink int) *flow.FlowNetwork {
	n := flow.NewFlowNetwork()
	vertices := map[int]bool{source: true, sink: true}
	for _, e := range edges {
		vertices[e[0]] = true
		vertices[e[1]] = true
	}
	for id := range vertices {
		_ = n.AddVertex(id)
	}
	for _, e := range edges {
		require.NoError(t, n.AddEdge(e[0], e[1], e[2]))
	}
	require.NoError(t, n.SetSource(source))
	require.NoError(t, n.SetSink(sink))

	return n
}

// TestScenarioA_ThesisExample pins the library's reference network.
func (s *ScenarioSuite) TestScenarioA_ThesisExample() {
	edges := [][3]int{
		{0, 1, 7}, {0, 2, 4},
		{1, 3, 5}, {1, 4, 3},
		{2, 4, 2}, {2, 5, 4},
		{3, 5, 8}, {4, 5, 3},
	}

	nd := buildNetwork(s.T(), edges, 0, 5)
	require.Equal(s.T(), 7, nd.Dinic())

	ng := buildNetwork(s.T(), edges, 0, 5)
	require.Equal(s.T(), 7, ng.GoldbergTarjan())
}

// TestScenarioB_ParallelPaths pins two disjoint 10-capacity paths.
func (s *ScenarioSuite) TestScenarioB_ParallelPaths() {
	edges := [][3]int{{0, 1, 10}, {0, 2, 10}, {1, 3, 10}, {2, 3, 10}}

	nd := buildNetwork(s.T(), edges, 0, 3)
	require.Equal(s.T(), 20, nd.Dinic())

	ng := buildNetwork(s.T(), edges, 0, 3)
	require.Equal(s.T(), 20, ng.GoldbergTarjan())
}

// TestScenarioC_Bottleneck pins a single narrow edge capping the chain.
func (s *ScenarioSuite) TestScenarioC_Bottleneck() {
	edges := [][3]int{{0, 1, 100}, {1, 2, 1}, {2, 3, 100}}

	nd := buildNetwork(s.T(), edges, 0, 3)
	require.Equal(s.T(), 1, nd.Dinic())

	ng := buildNetwork(s.T(), edges, 0, 3)
	require.Equal(s.T(), 1, ng.GoldbergTarjan())
}

// TestScenarioD_CrossEdge pins a network with a cross edge 1->2 between
// the two source-to-sink paths; the maximum of 6 is reached by the
// direct paths 0-1-3 and 0-2-3, whatever flow an algorithm routes
// through the cross edge.
func (s *ScenarioSuite) TestScenarioD_CrossEdge() {
	edges := [][3]int{{0, 1, 3}, {0, 2, 3}, {1, 2, 2}, {1, 3, 3}, {2, 3, 3}}

	nd := buildNetwork(s.T(), edges, 0, 3)
	require.Equal(s.T(), 6, nd.Dinic())

	ng := buildNetwork(s.T(), edges, 0, 3)
	require.Equal(s.T(), 6, ng.GoldbergTarjan())
}

// TestScenarioE_SourceSinkUnset pins the unset-source/sink short-circuit.
func (s *ScenarioSuite) TestScenarioE_SourceSinkUnset() {
	n := flow.NewFlowNetwork()
	require.NoError(s.T(), n.AddVertex(0))
	require.NoError(s.T(), n.AddVertex(1))
	require.NoError(s.T(), n.AddEdge(0, 1, 5))

	require.Equal(s.T(), 0, n.Dinic())
	for _, e := range n.GetGraphData() {
		require.Equal(s.T(), 0, e.Flow)
	}

	require.Equal(s.T(), 0, n.GoldbergTarjan())
	for _, e := range n.GetGraphData() {
		require.Equal(s.T(), 0, e.Flow)
	}
}

// TestScenarioF_SelfLoopRejection pins self-loop rejection: the vertex
// survives, no edge is added, and the prompt records the rejection.
func (s *ScenarioSuite) TestScenarioF_SelfLoopRejection() {
	n := flow.NewFlowNetwork()
	require.NoError(s.T(), n.AddVertex(0))

	err := n.AddEdge(0, 0, 5)
	require.Error(s.T(), err)
	require.Empty(s.T(), n.GetGraphData())
	require.Contains(s.T(), n.GetPrompt(), "0")
}

// TestScenarioG_RemoveSourceVertex pins source-designation clearing on
// removal, plus incident-edge cleanup in both directions.
func (s *ScenarioSuite) TestScenarioG_RemoveSourceVertex() {
	n := flow.NewFlowNetwork()
	require.NoError(s.T(), n.AddVertex(0))
	require.NoError(s.T(), n.AddVertex(1))
	require.NoError(s.T(), n.AddEdge(0, 1, 5))
	require.NoError(s.T(), n.SetSource(0))

	require.NoError(s.T(), n.RemoveVertex(0))
	require.Equal(s.T(), -1, n.GetSource())
	require.Empty(s.T(), n.GetGraphData())
}

// TestSetSourceEqualToSinkClearsSink pins the sourceId != sinkId
// invariant as enforced by SetSource/SetSink rather than rejected
// outright.
func (s *ScenarioSuite) TestSetSourceEqualToSinkClearsSink() {
	n := flow.NewFlowNetwork()
	require.NoError(s.T(), n.AddVertex(0))
	require.NoError(s.T(), n.AddVertex(1))
	require.NoError(s.T(), n.SetSink(1))
	require.NoError(s.T(), n.SetSource(1))

	require.Equal(s.T(), 1, n.GetSource())
	require.Equal(s.T(), -1, n.GetSink())
}

func (s *ScenarioSuite) TestSetSourceUnknownVertex() {
	n := flow.NewFlowNetwork()
	err := n.SetSource(9)
	require.True(s.T(), errors.Is(err, flow.ErrSourceNotFound))
}

func TestScenarioSuite(t *testing.T) {
	suite.Run(t, new(ScenarioSuite))
}
