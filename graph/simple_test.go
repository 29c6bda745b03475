package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimpleWeighted_InsertAndQuery(t *testing.T) {
	g := NewSimpleWeighted[string, float64]()

	g.InsertVertex("a")
	g.InsertVertex("b")
	g.InsertVertex("c")

	require.NoError(t, g.InsertEdge(Edge[string, float64]{From: "a", Label: 1.5, To: "b"}))
	require.NoError(t, g.InsertEdge(Edge[string, float64]{From: "a", Label: 2.5, To: "c"}))

	neighbours, err := g.Neighbours("a")
	require.NoError(t, err)
	assert.ElementsMatch(t, []Neighbour[string, float64]{
		{Edge: 1.5, Vertex: "b"},
		{Edge: 2.5, Vertex: "c"},
	}, neighbours)

	byWeight, err := g.NeighboursByEdge("a", 1.5)
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, byWeight)

	assert.Equal(t, 3, g.Len())
}

func TestSimpleWeighted_InsertVertexIsIdempotent(t *testing.T) {
	g := NewSimpleWeighted[int, int]()

	g.InsertVertex(1)
	g.InsertVertex(2)
	require.NoError(t, g.InsertEdge(Edge[int, int]{From: 1, Label: 10, To: 2}))

	// Re-inserting must not wipe the adjacency.
	g.InsertVertex(1)

	neighbours, err := g.Neighbours(1)
	require.NoError(t, err)
	assert.Len(t, neighbours, 1)
}

func TestSimpleWeighted_InsertEdgeRequiresVertices(t *testing.T) {
	g := NewSimpleWeighted[string, int]()
	g.InsertVertex("a")

	err := g.InsertEdge(Edge[string, int]{From: "a", Label: 1, To: "ghost"})
	assert.ErrorIs(t, err, ErrVertexNotFound)

	err = g.InsertEdge(Edge[string, int]{From: "ghost", Label: 1, To: "a"})
	assert.ErrorIs(t, err, ErrVertexNotFound)
}

func TestSimpleWeighted_DuplicateEdgeIsNoOp(t *testing.T) {
	g := NewSimpleWeighted[string, int]()
	g.InsertVertex("a")
	g.InsertVertex("b")

	require.NoError(t, g.InsertEdge(Edge[string, int]{From: "a", Label: 1, To: "b"}))
	require.NoError(t, g.InsertEdge(Edge[string, int]{From: "a", Label: 1, To: "b"}))

	neighbours, err := g.Neighbours("a")
	require.NoError(t, err)
	assert.Len(t, neighbours, 1)

	// One incoming edge: deleting it frees "b" for removal.
	require.NoError(t, g.DeleteEdge(Edge[string, int]{From: "a", Label: 1, To: "b"}))
	assert.NoError(t, g.DeleteVertex("b"))
}

func TestSimpleWeighted_DeleteVertexGuardsConnections(t *testing.T) {
	g := NewSimpleWeighted[string, int]()
	g.InsertVertex("a")
	g.InsertVertex("b")
	require.NoError(t, g.InsertEdge(Edge[string, int]{From: "a", Label: 1, To: "b"}))

	// Both endpoints are connected: "a" has an outgoing edge, "b" an
	// incoming one.
	assert.ErrorIs(t, g.DeleteVertex("a"), ErrVertexConnected)
	assert.ErrorIs(t, g.DeleteVertex("b"), ErrVertexConnected)

	require.NoError(t, g.DeleteEdge(Edge[string, int]{From: "a", Label: 1, To: "b"}))
	assert.NoError(t, g.DeleteVertex("a"))
	assert.NoError(t, g.DeleteVertex("b"))
	assert.Equal(t, 0, g.Len())
}

func TestSimpleWeighted_DeleteEdgeErrors(t *testing.T) {
	g := NewSimpleWeighted[string, int]()
	g.InsertVertex("a")
	g.InsertVertex("b")
	require.NoError(t, g.InsertEdge(Edge[string, int]{From: "a", Label: 1, To: "b"}))

	err := g.DeleteEdge(Edge[string, int]{From: "a", Label: 1, To: "ghost"})
	assert.ErrorIs(t, err, ErrVertexNotFound)

	// Vertices exist but no edge of weight 2 connects them.
	err = g.DeleteEdge(Edge[string, int]{From: "a", Label: 2, To: "b"})
	assert.ErrorIs(t, err, ErrEdgeNotFound)
}

func TestSimpleWeighted_EdgesAndVertices(t *testing.T) {
	g := NewSimpleWeighted[int, int]()
	for v := 1; v <= 3; v++ {
		g.InsertVertex(v)
	}
	require.NoError(t, g.InsertEdge(Edge[int, int]{From: 1, Label: 5, To: 2}))
	require.NoError(t, g.InsertEdge(Edge[int, int]{From: 2, Label: 7, To: 3}))

	assert.ElementsMatch(t, []int{1, 2, 3}, g.Vertices())
	assert.ElementsMatch(t, []Edge[int, int]{
		{From: 1, Label: 5, To: 2},
		{From: 2, Label: 7, To: 3},
	}, g.Edges())
}
