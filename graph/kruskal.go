package graph

import (
	"cmp"
	"slices"

	"github.com/sigabrtio/gosoup/disjointset"
)

// MinimumSpanningForest computes a minimum spanning forest of g using
// Kruskal's algorithm, treating every directed edge as undirected. One tree
// is returned per connected component, so a disconnected graph yields
// len(vertices) - len(components) edges in total.
func MinimumSpanningForest[V comparable, W cmp.Ordered](g *SimpleWeightedGraph[V, W]) []Edge[V, W] {
	edges := g.Edges()
	slices.SortStableFunc(edges, func(a, b Edge[V, W]) int {
		return cmp.Compare(a.Label, b.Label)
	})

	components := disjointset.New(g.Vertices()...)

	forest := make([]Edge[V, W], 0, g.Len())
	for _, edge := range edges {
		same, err := components.SameSet(edge.From, edge.To)
		if err != nil || same {
			continue
		}
		if err := components.Union(edge.From, edge.To); err != nil {
			continue
		}
		forest = append(forest, edge)
	}

	return forest
}
