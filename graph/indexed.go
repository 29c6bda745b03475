package graph

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// IndexedPropertyDiGraph is a directed property graph that interns vertex
// and edge type payloads behind uint32 IDs. All traversal operations work on
// IDs; payloads are recovered through the hydration methods. This keeps the
// adjacency structures compact when vertices and edge types are large
// structs, the classic case being RDF style data where predicates repeat
// heavily.
//
// Live vertex IDs are tracked in a roaring bitmap, so membership checks and
// whole-graph sweeps stay cheap even with a long deletion history.
//
// IndexedPropertyDiGraph is not safe for concurrent use.
type IndexedPropertyDiGraph[V comparable, E comparable] struct {
	vertexPayloads map[uint32]V
	vertexIDs      map[V]uint32
	edgePayloads   map[uint32]E
	edgeIDs        map[E]uint32

	outgoing map[uint32]map[Neighbour[uint32, uint32]]struct{}
	incoming map[uint32]map[Neighbour[uint32, uint32]]struct{}

	live *roaring.Bitmap

	nextVertexID uint32
	nextEdgeID   uint32
}

var _ Graph[uint32, uint32] = (*IndexedPropertyDiGraph[string, string])(nil)

// NewIndexedPropertyDiGraph creates an empty graph.
func NewIndexedPropertyDiGraph[V comparable, E comparable]() *IndexedPropertyDiGraph[V, E] {
	return &IndexedPropertyDiGraph[V, E]{
		vertexPayloads: make(map[uint32]V),
		vertexIDs:      make(map[V]uint32),
		edgePayloads:   make(map[uint32]E),
		edgeIDs:        make(map[E]uint32),
		outgoing:       make(map[uint32]map[Neighbour[uint32, uint32]]struct{}),
		incoming:       make(map[uint32]map[Neighbour[uint32, uint32]]struct{}),
		live:           roaring.New(),
	}
}

// RegisterEdgeType interns an edge type and returns its ID. Registering the
// same payload again returns the previous ID. Edge types cannot be
// unregistered; dangling type IDs would leave the graph inconsistent.
func (g *IndexedPropertyDiGraph[V, E]) RegisterEdgeType(edgeType E) uint32 {
	if id, ok := g.edgeIDs[edgeType]; ok {
		return id
	}

	id := g.nextEdgeID
	g.nextEdgeID++
	g.edgeIDs[edgeType] = id
	g.edgePayloads[id] = edgeType
	return id
}

// InsertVertex interns a vertex payload and returns its ID. Inserting the
// same payload again returns the previous ID.
func (g *IndexedPropertyDiGraph[V, E]) InsertVertex(vertex V) uint32 {
	if id, ok := g.vertexIDs[vertex]; ok {
		return id
	}

	id := g.nextVertexID
	g.nextVertexID++
	g.vertexIDs[vertex] = id
	g.vertexPayloads[id] = vertex
	g.outgoing[id] = make(map[Neighbour[uint32, uint32]]struct{})
	g.incoming[id] = make(map[Neighbour[uint32, uint32]]struct{})
	g.live.Add(id)
	return id
}

// HydrateVertex returns the payload behind a vertex ID.
func (g *IndexedPropertyDiGraph[V, E]) HydrateVertex(id uint32) (V, error) {
	if !g.live.Contains(id) {
		var zero V
		return zero, ErrVertexNotFound
	}
	return g.vertexPayloads[id], nil
}

// HydrateEdgeType returns the payload behind an edge type ID.
func (g *IndexedPropertyDiGraph[V, E]) HydrateEdgeType(id uint32) (E, error) {
	payload, ok := g.edgePayloads[id]
	if !ok {
		var zero E
		return zero, ErrEdgeTypeNotRegistered
	}
	return payload, nil
}

// InsertEdge connects two existing vertices with a registered edge type.
// Duplicate insertions are no-ops.
func (g *IndexedPropertyDiGraph[V, E]) InsertEdge(edge Edge[uint32, uint32]) error {
	if !g.live.Contains(edge.From) || !g.live.Contains(edge.To) {
		return ErrVertexNotFound
	}
	if _, ok := g.edgePayloads[edge.Label]; !ok {
		return ErrEdgeTypeNotRegistered
	}

	g.outgoing[edge.From][Neighbour[uint32, uint32]{Edge: edge.Label, Vertex: edge.To}] = struct{}{}
	g.incoming[edge.To][Neighbour[uint32, uint32]{Edge: edge.Label, Vertex: edge.From}] = struct{}{}
	return nil
}

// DeleteEdge removes one edge. The edge type stays registered.
func (g *IndexedPropertyDiGraph[V, E]) DeleteEdge(edge Edge[uint32, uint32]) error {
	if !g.live.Contains(edge.From) || !g.live.Contains(edge.To) {
		return ErrVertexNotFound
	}
	if _, ok := g.edgePayloads[edge.Label]; !ok {
		return ErrEdgeTypeNotRegistered
	}

	out := Neighbour[uint32, uint32]{Edge: edge.Label, Vertex: edge.To}
	if _, ok := g.outgoing[edge.From][out]; !ok {
		return ErrEdgeNotFound
	}

	delete(g.outgoing[edge.From], out)
	delete(g.incoming[edge.To], Neighbour[uint32, uint32]{Edge: edge.Label, Vertex: edge.From})
	return nil
}

// DeleteVertex removes a vertex from the graph and the index. Vertices with
// any incoming or outgoing edges cannot be deleted.
func (g *IndexedPropertyDiGraph[V, E]) DeleteVertex(id uint32) error {
	if !g.live.Contains(id) {
		return ErrVertexNotFound
	}
	if len(g.outgoing[id]) > 0 || len(g.incoming[id]) > 0 {
		return ErrVertexConnected
	}

	payload := g.vertexPayloads[id]
	delete(g.vertexIDs, payload)
	delete(g.vertexPayloads, id)
	delete(g.outgoing, id)
	delete(g.incoming, id)
	g.live.Remove(id)
	return nil
}

// Neighbours returns every outgoing neighbour as (edge type ID, vertex ID).
func (g *IndexedPropertyDiGraph[V, E]) Neighbours(id uint32) ([]Neighbour[uint32, uint32], error) {
	if !g.live.Contains(id) {
		return nil, ErrVertexNotFound
	}
	return collectNeighbours(g.outgoing[id]), nil
}

// NeighboursByEdge returns the vertex IDs reachable over outgoing edges of
// the given type.
func (g *IndexedPropertyDiGraph[V, E]) NeighboursByEdge(id uint32, edgeType uint32) ([]uint32, error) {
	if !g.live.Contains(id) {
		return nil, ErrVertexNotFound
	}
	if _, ok := g.edgePayloads[edgeType]; !ok {
		return nil, ErrEdgeTypeNotRegistered
	}
	return filterNeighbours(g.outgoing[id], edgeType), nil
}

// IncomingEdges returns every incoming neighbour as (edge type ID, source
// vertex ID). Useful for querying a property graph by object.
func (g *IndexedPropertyDiGraph[V, E]) IncomingEdges(id uint32) ([]Neighbour[uint32, uint32], error) {
	if !g.live.Contains(id) {
		return nil, ErrVertexNotFound
	}
	return collectNeighbours(g.incoming[id]), nil
}

// IncomingEdgesByType returns the source vertex IDs of incoming edges of the
// given type.
func (g *IndexedPropertyDiGraph[V, E]) IncomingEdgesByType(id uint32, edgeType uint32) ([]uint32, error) {
	if !g.live.Contains(id) {
		return nil, ErrVertexNotFound
	}
	if _, ok := g.edgePayloads[edgeType]; !ok {
		return nil, ErrEdgeTypeNotRegistered
	}
	return filterNeighbours(g.incoming[id], edgeType), nil
}

// Vertices returns a snapshot of the live vertex ID set.
func (g *IndexedPropertyDiGraph[V, E]) Vertices() *roaring.Bitmap {
	return g.live.Clone()
}

// Len returns the number of live vertices.
func (g *IndexedPropertyDiGraph[V, E]) Len() int {
	return int(g.live.GetCardinality())
}

func collectNeighbours(set map[Neighbour[uint32, uint32]]struct{}) []Neighbour[uint32, uint32] {
	neighbours := make([]Neighbour[uint32, uint32], 0, len(set))
	for n := range set {
		neighbours = append(neighbours, n)
	}
	return neighbours
}

func filterNeighbours(set map[Neighbour[uint32, uint32]]struct{}, edgeType uint32) []uint32 {
	var vertices []uint32
	for n := range set {
		if n.Edge == edgeType {
			vertices = append(vertices, n.Vertex)
		}
	}
	return vertices
}
