package dijkstra

import (
	"fmt"
	"math"
	"slices"

	"github.com/rhartert/shortestpaths/graph"
	"github.com/rhartert/sparsesets"
	"github.com/rhartert/yagh"
)

// ShortestPathDAG computes the DAG of all the shortest paths from the source
// vertex. It returns a slice that maps each vertex v to the indices of the
// edges (u, v) that lie on a minimum-cost path from source to v, in ascending
// order. The lists of the source vertex and of unreachable vertices are
// empty. Self-loops are never part of a shortest path and are ignored. The
// result is acyclic even when the graph has zero-weight cycles: equal-cost
// ties follow the order in which vertices are finalized.
//
// Unlike ShortestPaths, which keeps a single predecessor per vertex, the DAG
// retains every equal-cost alternative. The run is backed by an indexed heap
// with in-place cost updates instead of the lazy frontier.
func ShortestPathDAG(g *graph.Digraph, source int) ([][]int, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.VertexCount()
	if source < 0 || n <= source {
		return nil, fmt.Errorf("%w: source %d is not in [0, %d)", ErrInvalidVertex, source, n)
	}

	prevs := make([][]int, n)
	costs := make([]float64, n)
	for v := range costs {
		costs[v] = math.Inf(1)
	}

	h := yagh.New[float64](n)
	h.Put(source, 0)
	costs[source] = 0

	finalized := sparsesets.New(n)
	for h.Size() > 0 {
		next, _ := h.Pop() // Size() > 0, so an entry is always returned
		u, c := next.Elem, next.Cost
		finalized.Insert(u)

		for _, e := range g.OutEdges(u) {
			v := g.Edge(e).To
			if v == u {
				continue // self-loop
			}
			newCost := c + g.Edge(e).Weight

			// Path source -> u -> v is worse than the best known path.
			if costs[v] < newCost {
				continue
			}

			// Path source -> u -> v is one of the best paths to v so far.
			// A zero-weight tie into an already finalized vertex (the source
			// included) would close a cycle: ties are only kept from earlier
			// finalized vertices to later ones.
			if costs[v] == newCost {
				if !finalized.Contains(v) {
					prevs[v] = append(prevs[v], e)
				}
				continue
			}

			// Path source -> u -> v is better than the best path to v so far.
			costs[v] = newCost
			prevs[v] = []int{e}
			h.Put(v, newCost)
		}
	}

	for v := range prevs {
		slices.Sort(prevs[v])
	}
	return prevs, nil
}
