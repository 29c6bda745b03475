package graph

import (
	"cmp"
)

// SimpleWeightedGraph is a directed graph whose edge labels are ordered
// weights. Vertices and weights are stored directly, without interning, which
// suits primitive payloads and path or spanning tree analysis.
//
// SimpleWeightedGraph is not safe for concurrent use.
type SimpleWeightedGraph[V comparable, W cmp.Ordered] struct {
	adjacency map[V]map[Neighbour[V, W]]struct{}
	incoming  map[V]int
}

var _ Graph[string, float64] = (*SimpleWeightedGraph[string, float64])(nil)

// NewSimpleWeighted creates an empty graph.
func NewSimpleWeighted[V comparable, W cmp.Ordered]() *SimpleWeightedGraph[V, W] {
	return &SimpleWeightedGraph[V, W]{
		adjacency: make(map[V]map[Neighbour[V, W]]struct{}),
		incoming:  make(map[V]int),
	}
}

// InsertVertex adds a disconnected vertex. Inserting an existing vertex is a
// no-op.
func (g *SimpleWeightedGraph[V, W]) InsertVertex(vertex V) {
	if _, ok := g.adjacency[vertex]; !ok {
		g.adjacency[vertex] = make(map[Neighbour[V, W]]struct{})
		g.incoming[vertex] = 0
	}
}

// InsertEdge connects two existing vertices. Inserting an edge that already
// exists is a no-op.
func (g *SimpleWeightedGraph[V, W]) InsertEdge(edge Edge[V, W]) error {
	if _, ok := g.adjacency[edge.From]; !ok {
		return ErrVertexNotFound
	}
	if _, ok := g.adjacency[edge.To]; !ok {
		return ErrVertexNotFound
	}

	n := Neighbour[V, W]{Edge: edge.Label, Vertex: edge.To}
	if _, ok := g.adjacency[edge.From][n]; !ok {
		g.adjacency[edge.From][n] = struct{}{}
		g.incoming[edge.To]++
	}
	return nil
}

// Neighbours returns every outgoing neighbour with its edge weight.
func (g *SimpleWeightedGraph[V, W]) Neighbours(vertex V) ([]Neighbour[V, W], error) {
	set, ok := g.adjacency[vertex]
	if !ok {
		return nil, ErrVertexNotFound
	}

	neighbours := make([]Neighbour[V, W], 0, len(set))
	for n := range set {
		neighbours = append(neighbours, n)
	}
	return neighbours, nil
}

// NeighboursByEdge returns the vertices connected by edges of exactly the
// given weight.
func (g *SimpleWeightedGraph[V, W]) NeighboursByEdge(vertex V, weight W) ([]V, error) {
	set, ok := g.adjacency[vertex]
	if !ok {
		return nil, ErrVertexNotFound
	}

	var vertices []V
	for n := range set {
		if n.Edge == weight {
			vertices = append(vertices, n.Vertex)
		}
	}
	return vertices, nil
}

// DeleteVertex removes a vertex. Vertices with any incoming or outgoing
// edges cannot be deleted.
func (g *SimpleWeightedGraph[V, W]) DeleteVertex(vertex V) error {
	set, ok := g.adjacency[vertex]
	if !ok {
		return ErrVertexNotFound
	}
	if len(set) > 0 || g.incoming[vertex] > 0 {
		return ErrVertexConnected
	}

	delete(g.adjacency, vertex)
	delete(g.incoming, vertex)
	return nil
}

// DeleteEdge removes one edge. Both vertices must exist and be connected by
// an edge of exactly the given weight.
func (g *SimpleWeightedGraph[V, W]) DeleteEdge(edge Edge[V, W]) error {
	if _, ok := g.adjacency[edge.From]; !ok {
		return ErrVertexNotFound
	}
	if _, ok := g.adjacency[edge.To]; !ok {
		return ErrVertexNotFound
	}

	n := Neighbour[V, W]{Edge: edge.Label, Vertex: edge.To}
	if _, ok := g.adjacency[edge.From][n]; !ok {
		return ErrEdgeNotFound
	}

	delete(g.adjacency[edge.From], n)
	g.incoming[edge.To]--
	return nil
}

// Vertices returns all vertices in unspecified order.
func (g *SimpleWeightedGraph[V, W]) Vertices() []V {
	vertices := make([]V, 0, len(g.adjacency))
	for v := range g.adjacency {
		vertices = append(vertices, v)
	}
	return vertices
}

// Edges returns all edges in unspecified order.
func (g *SimpleWeightedGraph[V, W]) Edges() []Edge[V, W] {
	var edges []Edge[V, W]
	for from, set := range g.adjacency {
		for n := range set {
			edges = append(edges, Edge[V, W]{From: from, Label: n.Edge, To: n.Vertex})
		}
	}
	return edges
}

// Len returns the number of vertices.
func (g *SimpleWeightedGraph[V, W]) Len() int { return len(g.adjacency) }
