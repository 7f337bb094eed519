package dijkstra

import (
	"fmt"
	"math"
	"slices"
)

// PathTo reconstructs the shortest path from the tree's source to target by
// walking the predecessor table backward. The path is returned in forward
// order: its first vertex is the source and its last vertex is target. The
// second return value is false if target is not reachable from the source,
// which is a legitimate outcome and not an error.
//
// An ErrCorruptPredecessors error is returned if the walk does not reach the
// source within VertexCount steps. This cannot happen on a tree returned by
// ShortestPaths and indicates that the predecessor table was corrupted.
func (t *Tree) PathTo(target int) ([]int, bool, error) {
	if target < 0 || len(t.Dist) <= target {
		return nil, false, fmt.Errorf("%w: target %d is not in [0, %d)", ErrInvalidVertex, target, len(t.Dist))
	}
	if math.IsInf(t.Dist[target], 1) {
		return nil, false, nil
	}

	path := []int{target}
	for v := target; v != t.Source; {
		if len(path) > len(t.Prev) {
			return nil, false, fmt.Errorf("%w: walk from %d exceeded %d steps", ErrCorruptPredecessors, target, len(t.Prev))
		}
		v = t.Prev[v]
		if v < 0 || len(t.Prev) <= v {
			return nil, false, fmt.Errorf("%w: walk from %d never reached source %d", ErrCorruptPredecessors, target, t.Source)
		}
		path = append(path, v)
	}

	slices.Reverse(path)
	return path, true, nil
}
