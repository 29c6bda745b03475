// Package graph provides directed graph containers and algorithms: a simple
// weighted graph for numeric analysis, an indexed property digraph for large
// vertex and edge payloads, breadth-first traversal and minimum spanning
// forests.
package graph

import (
	"errors"
)

var (
	// ErrVertexNotFound is returned when an operation references a vertex
	// that does not exist.
	ErrVertexNotFound = errors.New("vertex does not exist")

	// ErrEdgeNotFound is returned when an operation references an edge that
	// does not exist between two existing vertices.
	ErrEdgeNotFound = errors.New("edge does not exist")

	// ErrEdgeTypeNotRegistered is returned when an edge references an edge
	// type ID that was never registered.
	ErrEdgeTypeNotRegistered = errors.New("edge type is not registered")

	// ErrVertexConnected is returned by vertex deletion while the vertex
	// still has incoming or outgoing edges.
	ErrVertexConnected = errors.New("vertex still has edges attached")
)

// Neighbour pairs an adjacent vertex with the label of the edge leading to
// it. The vertex and label are IDs in implementations that intern their
// payloads, and the payloads themselves in implementations that do not.
type Neighbour[VID comparable, EID comparable] struct {
	Edge   EID
	Vertex VID
}

// Edge is a directed, labelled connection. In a weighted graph the label is
// the weight.
type Edge[VID comparable, EID comparable] struct {
	From  VID
	Label EID
	To    VID
}

// Graph is the query and mutation contract shared by the graph
// implementations. Vertex insertion is implementation specific (interning
// implementations return an ID) and therefore not part of the interface.
type Graph[VID comparable, EID comparable] interface {
	// Neighbours returns every vertex reachable from vertex over one
	// outgoing edge, with the connecting edge label.
	Neighbours(vertex VID) ([]Neighbour[VID, EID], error)

	// NeighboursByEdge returns the vertices reachable from vertex over
	// outgoing edges with the given label.
	NeighboursByEdge(vertex VID, edge EID) ([]VID, error)

	// InsertEdge connects two existing vertices.
	InsertEdge(edge Edge[VID, EID]) error

	// DeleteVertex removes a fully disconnected vertex.
	DeleteVertex(vertex VID) error

	// DeleteEdge removes one edge.
	DeleteEdge(edge Edge[VID, EID]) error
}
