// Package graph provides a directed weighted multigraph over dense integer
// vertices, used as input by the shortest-path algorithms of this module.
package graph

import (
	"errors"
	"fmt"
	"iter"
)

// ErrInvalidEdge is returned when an edge cannot be added to a graph, either
// because one of its endpoints is not a vertex of the graph or because its
// weight is not a non-negative number.
var ErrInvalidEdge = errors.New("graph: invalid edge")

// Edge represents a directed weighted edge between two vertices.
type Edge struct {
	From   int
	To     int
	Weight float64
}

// Digraph is a directed weighted multigraph over vertices [0, VertexCount).
// Parallel edges and self-loops are allowed. Edges are stored in a single
// slice and adjacency is kept as per-vertex lists of edge indices, so that
// the outgoing edges of a vertex are enumerated in insertion order.
//
// A Digraph is not safe for concurrent mutation, but once construction is
// done it can be shared read-only by any number of concurrent shortest-path
// runs.
type Digraph struct {
	nexts [][]int
	edges []Edge
}

// New returns an empty graph with nVertices vertices and no edges.
func New(nVertices int) *Digraph {
	return &Digraph{nexts: make([][]int, nVertices)}
}

// FromEdges builds a graph with nVertices vertices from the given edges. It
// returns an ErrInvalidEdge error if one of the edges has an endpoint outside
// [0, nVertices) or a weight that is not a non-negative number.
func FromEdges(edges []Edge, nVertices int) (*Digraph, error) {
	g := New(nVertices)
	for _, e := range edges {
		if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// AddEdge adds a directed edge from vertex from to vertex to with the given
// weight. It returns an ErrInvalidEdge error if an endpoint is not a vertex
// of the graph or if the weight is negative (or NaN), in which case the graph
// is left unchanged.
func (g *Digraph) AddEdge(from int, to int, weight float64) error {
	if from < 0 || len(g.nexts) <= from {
		return fmt.Errorf("%w: vertex %d is not in [0, %d)", ErrInvalidEdge, from, len(g.nexts))
	}
	if to < 0 || len(g.nexts) <= to {
		return fmt.Errorf("%w: vertex %d is not in [0, %d)", ErrInvalidEdge, to, len(g.nexts))
	}
	if !(weight >= 0) { // also rejects NaN
		return fmt.Errorf("%w: edge %d->%d has weight %v", ErrInvalidEdge, from, to, weight)
	}
	g.edges = append(g.edges, Edge{From: from, To: to, Weight: weight})
	g.nexts[from] = append(g.nexts[from], len(g.edges)-1)
	return nil
}

// VertexCount returns the number of vertices in the graph.
func (g *Digraph) VertexCount() int {
	return len(g.nexts)
}

// EdgeCount returns the number of edges in the graph.
func (g *Digraph) EdgeCount() int {
	return len(g.edges)
}

// Edge returns the edge with index i. Edge indices are attributed
// sequentially from 0 in the order edges were added.
func (g *Digraph) Edge(i int) Edge {
	return g.edges[i]
}

// Neighbors returns an iterator over the outgoing edges of vertex u, yielding
// (to, weight) pairs in the order the edges were added. The iterator can be
// ranged over any number of times. Vertex u must be in [0, VertexCount).
func (g *Digraph) Neighbors(u int) iter.Seq2[int, float64] {
	return func(yield func(int, float64) bool) {
		for _, e := range g.nexts[u] {
			if !yield(g.edges[e].To, g.edges[e].Weight) {
				return
			}
		}
	}
}

// OutEdges returns the indices of the edges leaving vertex u, in the order
// the edges were added. Vertex u must be in [0, VertexCount).
//
// Important: the slice is a view on one of the graph's internal structures
// and should only be used in read-only operations. Modifying the slice will
// most likely result in incorrect behavior.
func (g *Digraph) OutEdges(u int) []int {
	return g.nexts[u]
}
