// Package dijkstra implements single-source shortest paths on directed
// weighted graphs with non-negative edge weights.
package dijkstra

import (
	"container/heap"
	"errors"
	"fmt"
	"math"

	"github.com/rhartert/shortestpaths/graph"
	"github.com/rhartert/sparsesets"
)

var (
	// ErrNilGraph is returned when a nil graph is passed to one of the
	// shortest-path functions.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrInvalidVertex is returned when a source or target vertex is not a
	// vertex of the graph.
	ErrInvalidVertex = errors.New("dijkstra: vertex is not in the graph")

	// ErrCorruptPredecessors is returned by path reconstruction if the
	// predecessor table contains a cycle. It indicates a defect in the code
	// that produced the table, not an invalid input.
	ErrCorruptPredecessors = errors.New("dijkstra: predecessor cycle")
)

// NoPredecessor marks a vertex with no predecessor in a Tree, that is, the
// source vertex or a vertex that is not reachable from it.
const NoPredecessor = -1

// Tree is the result of a shortest-path run: a shortest-path tree rooted at
// Source. Dist[v] is the minimum cost of a path from Source to v, or +Inf if
// v is not reachable. Prev[v] is the vertex preceding v on such a path, or
// NoPredecessor.
//
// Each run returns a fresh Tree; trees are never shared between runs.
type Tree struct {
	Source int
	Dist   []float64
	Prev   []int
}

// Reachable returns true if target is a vertex of the tree's graph and a path
// from the source to target exists.
func (t *Tree) Reachable(target int) bool {
	return 0 <= target && target < len(t.Dist) && !math.IsInf(t.Dist[target], 1)
}

// ShortestPaths computes the shortest paths from the source vertex to all
// other vertices of g. Unreachable vertices have a distance of +Inf and no
// predecessor in the returned tree.
//
// The graph must not be mutated while the function runs. Several runs may
// share the same graph concurrently: all mutable state is owned by the run.
func ShortestPaths(g *graph.Digraph, source int) (*Tree, error) {
	return run(g, source, -1)
}

// ShortestPathsTo is a variant of ShortestPaths that stops as soon as the
// shortest path to target is known. It is cheaper when only one destination
// matters, but the returned tree only covers the vertices that were finalized
// before (and including) target: distances and predecessors of the remaining
// vertices are those of unreached vertices.
func ShortestPathsTo(g *graph.Digraph, source int, target int) (*Tree, error) {
	if g != nil {
		if n := g.VertexCount(); target < 0 || n <= target {
			return nil, fmt.Errorf("%w: target %d is not in [0, %d)", ErrInvalidVertex, target, n)
		}
	}
	return run(g, source, target)
}

// run is the label-setting loop shared by ShortestPaths and ShortestPathsTo.
// A target of -1 means "finalize everything reachable".
func run(g *graph.Digraph, source int, target int) (*Tree, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.VertexCount()
	if source < 0 || n <= source {
		return nil, fmt.Errorf("%w: source %d is not in [0, %d)", ErrInvalidVertex, source, n)
	}

	t := &Tree{
		Source: source,
		Dist:   make([]float64, n),
		Prev:   make([]int, n),
	}
	for v := range t.Dist {
		t.Dist[v] = math.Inf(1)
		t.Prev[v] = NoPredecessor
	}
	t.Dist[source] = 0

	visited := sparsesets.New(n)
	pq := frontier{{dist: 0, vertex: source}}

	for pq.Len() > 0 {
		e := heap.Pop(&pq).(entry)
		if visited.Contains(e.vertex) {
			continue // stale entry, a shorter distance was already finalized
		}
		visited.Insert(e.vertex)
		if e.vertex == target {
			break
		}

		for v, w := range g.Neighbors(e.vertex) {
			if visited.Contains(v) {
				continue
			}
			if d := e.dist + w; d < t.Dist[v] {
				t.Dist[v] = d
				t.Prev[v] = e.vertex
				heap.Push(&pq, entry{dist: d, vertex: v})
			}
		}
	}

	return t, nil
}

// entry is a (tentative distance, vertex) pair in the frontier. The frontier
// may hold several entries for the same vertex: distances are never updated
// in place, a shorter distance is pushed as a new entry and older entries are
// skipped when popped.
type entry struct {
	dist   float64
	vertex int
}

// frontier is a min-heap of entries ordered by distance, with ties broken by
// ascending vertex index so that runs are reproducible.
type frontier []entry

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].dist != f[j].dist {
		return f[i].dist < f[j].dist
	}
	return f[i].vertex < f[j].vertex
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) { *f = append(*f, x.(entry)) }

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	e := old[n-1]
	*f = old[:n-1]
	return e
}
