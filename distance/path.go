package distance

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/grid"
)

// Between computes distances from root and returns one shortest path from
// origin to root. Each step moves to the first linked neighbor whose
// distance is exactly one less.
//
// An unreachable origin yields a Path with no cells and a nil error.
// A step with no closer neighbor returns an error wrapping
// grid.ErrCorruptGraph.
func Between(g *grid.Grid, root, origin int) (*Path, error) {
	if err := checkCell(g, origin, "origin"); err != nil {
		return nil, err
	}
	d, err := From(g, root)
	if err != nil {
		return nil, err
	}
	return d.PathTo(g, origin)
}

// PathTo walks from origin down the gradient of d to d.Root. The table must
// have been computed against g's current links; otherwise ErrStaleDistances
// is returned.
// Complexity: O(path length).
func (d *Distances) PathTo(g *grid.Grid, origin int) (*Path, error) {
	if err := checkCell(g, origin, "origin"); err != nil {
		return nil, err
	}
	if !d.Valid(g) {
		return nil, fmt.Errorf("%w: rooted at %d", ErrStaleDistances, d.Root)
	}

	p := &Path{Distances: d}
	if d.Dist[origin] == Unreached {
		return p, nil
	}

	p.Cells = make([]int, 0, d.Dist[origin]+1)
	cur := origin
	p.Cells = append(p.Cells, cur)
	for cur != d.Root {
		next, ok := d.closerNeighbor(g, cur)
		if !ok {
			return nil, fmt.Errorf("%w: no neighbor of %v at distance %d",
				grid.ErrCorruptGraph, g.Coordinate(cur), d.Dist[cur]-1)
		}
		cur = next
		p.Cells = append(p.Cells, cur)
	}
	return p, nil
}

// closerNeighbor returns the first linked neighbor of cur one step closer
// to the root.
func (d *Distances) closerNeighbor(g *grid.Grid, cur int) (int, bool) {
	want := d.Dist[cur] - 1
	next, found := -1, false
	g.EachLink(cur, func(l grid.Link) bool {
		if d.Dist[l.To] == want {
			next, found = l.To, true
			return false
		}
		return true
	})
	return next, found
}
