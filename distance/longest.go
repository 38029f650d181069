package distance

import "github.com/katalvlaran/labyrinth/grid"

// Longest finds the longest path in the tree containing root by double BFS:
// a is the cell farthest from root, b the cell farthest from a, and the
// result is the path from b back to a.
//
// On a spanning tree this is a diameter of the maze. On a graph with cycles
// the result is a long shortest path, not necessarily the longest.
func Longest(g *grid.Grid, root int) (*Path, error) {
	return longest(root, func(r int) (*Distances, error) { return From(g, r) }, g)
}

// longest is shared by Longest and Cache.Longest; from supplies tables.
func longest(root int, from func(int) (*Distances, error), g *grid.Grid) (*Path, error) {
	d, err := from(root)
	if err != nil {
		return nil, err
	}
	a, _ := d.Max()
	da, err := from(a)
	if err != nil {
		return nil, err
	}
	b, _ := da.Max()
	return da.PathTo(g, b)
}
