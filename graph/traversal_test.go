package graph

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func diamondGraph(t *testing.T) *SimpleWeightedGraph[string, int] {
	t.Helper()

	//     a
	//    / \
	//   b   c
	//    \ /
	//     d --- e
	g := NewSimpleWeighted[string, int]()
	for _, v := range []string{"a", "b", "c", "d", "e"} {
		g.InsertVertex(v)
	}
	for _, e := range []Edge[string, int]{
		{From: "a", Label: 1, To: "b"},
		{From: "a", Label: 1, To: "c"},
		{From: "b", Label: 1, To: "d"},
		{From: "c", Label: 1, To: "d"},
		{From: "d", Label: 1, To: "e"},
	} {
		require.NoError(t, g.InsertEdge(e))
	}
	return g
}

func TestBFS_VisitsEachVertexOnceInLevelOrder(t *testing.T) {
	g := diamondGraph(t)

	levels := map[string]int{}
	parents := map[string]string{}

	err := BFS[string, int](g, "a", func(parent *string, vertex string) error {
		if parent == nil {
			levels[vertex] = 0
			return nil
		}
		parents[vertex] = *parent
		levels[vertex] = levels[*parent] + 1
		return nil
	})
	require.NoError(t, err)

	assert.Len(t, levels, 5)
	assert.Equal(t, 0, levels["a"])
	assert.Equal(t, 1, levels["b"])
	assert.Equal(t, 1, levels["c"])
	assert.Equal(t, 2, levels["d"]) // visited once despite two paths
	assert.Equal(t, 3, levels["e"])

	assert.Contains(t, []string{"b", "c"}, parents["d"])
	assert.Equal(t, "d", parents["e"])
}

func TestBFS_UnknownStart(t *testing.T) {
	g := NewSimpleWeighted[string, int]()

	err := BFS[string, int](g, "ghost", func(parent *string, vertex string) error {
		t.Fatal("visit must not be called")
		return nil
	})
	assert.ErrorIs(t, err, ErrVertexNotFound)
}

func TestBFS_StopsOnVisitError(t *testing.T) {
	g := diamondGraph(t)

	stop := errors.New("stop")
	visited := 0
	err := BFS[string, int](g, "a", func(parent *string, vertex string) error {
		visited++
		if visited == 2 {
			return stop
		}
		return nil
	})

	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 2, visited)
}

func TestBFS_RespectsEdgeDirection(t *testing.T) {
	g := NewSimpleWeighted[string, int]()
	g.InsertVertex("a")
	g.InsertVertex("b")
	require.NoError(t, g.InsertEdge(Edge[string, int]{From: "a", Label: 1, To: "b"}))

	var visited []string
	err := BFS[string, int](g, "b", func(parent *string, vertex string) error {
		visited = append(visited, vertex)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, visited)
}
