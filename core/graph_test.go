package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/mfacore/maxflow/core"
)

// GraphSuite exercises Graph's CRUD surface and the validation rules
// behind AddVertex/AddEdge/RemoveVertex/RemoveEdge.
type GraphSuite struct {
	suite.Suite
}

func (s *GraphSuite) TestAddVertexRejectsNegativeID() {
	g := core.NewGraph()
	err := g.AddVertex(-1)
	require.True(s.T(), errors.Is(err, core.ErrNegativeID))
}

func (s *GraphSuite) TestAddVertexRejectsDuplicate() {
	g := core.NewGraph()
	require.NoError(s.T(), g.AddVertex(0))
	err := g.AddVertex(0)
	require.True(s.T(), errors.Is(err, core.ErrDuplicateVertex))
}

func (s *GraphSuite) TestAddEdgeRejectsSelfLoop() {
	g := core.NewGraph()
	require.NoError(s.T(), g.AddVertex(0))
	err := g.AddEdge(0, 0, 5)
	require.True(s.T(), errors.Is(err, core.ErrSelfLoop))
	require.Equal(s.T(), 1, g.VertexCount())
	require.Empty(s.T(), g.Edges())
}

func (s *GraphSuite) TestAddEdgeRejectsNonPositiveCapacity() {
	g := core.NewGraph()
	require.NoError(s.T(), g.AddVertex(0))
	require.NoError(s.T(), g.AddVertex(1))
	err := g.AddEdge(0, 1, 0)
	require.True(s.T(), errors.Is(err, core.ErrNonPositiveCapacity))
}

func (s *GraphSuite) TestAddEdgeRejectsDuplicate() {
	g := core.NewGraph()
	require.NoError(s.T(), g.AddVertex(0))
	require.NoError(s.T(), g.AddVertex(1))
	require.NoError(s.T(), g.AddEdge(0, 1, 5))
	err := g.AddEdge(0, 1, 3)
	require.True(s.T(), errors.Is(err, core.ErrDuplicateEdge))
}

func (s *GraphSuite) TestAddEdgeRejectsMissingEndpoint() {
	g := core.NewGraph()
	require.NoError(s.T(), g.AddVertex(0))
	err := g.AddEdge(0, 1, 5)
	require.True(s.T(), errors.Is(err, core.ErrVertexNotFound))
}

// TestRemoveVertexClearsIncidentEdgesBothDirections covers global
// invariant 3: no dangling resNeighbors entry survives a vertex removal.
func (s *GraphSuite) TestRemoveVertexClearsIncidentEdgesBothDirections() {
	g := core.NewGraph()
	for i := 0; i <= 2; i++ {
		require.NoError(s.T(), g.AddVertex(i))
	}
	require.NoError(s.T(), g.AddEdge(0, 1, 5))
	require.NoError(s.T(), g.AddEdge(1, 2, 5))
	g.BuildResidualGraph()

	require.NoError(s.T(), g.RemoveVertex(1))
	require.Equal(s.T(), 2, g.VertexCount())
	require.Empty(s.T(), g.Edges())
	require.Empty(s.T(), g.Vertex(0).Neighbors())
	require.Empty(s.T(), g.Vertex(2).ResNeighbors())
}

func (s *GraphSuite) TestVertexIDsPreservesInsertionOrder() {
	g := core.NewGraph()
	for _, id := range []int{3, 1, 2} {
		require.NoError(s.T(), g.AddVertex(id))
	}
	require.Equal(s.T(), []int{3, 1, 2}, g.VertexIDs())
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}
