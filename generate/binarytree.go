package generate

import "github.com/katalvlaran/labyrinth/grid"

// BinaryTree visits every cell in row-major order and links it to its north
// or east neighbor, chosen by a fair coin when both exist. The top-right
// cell links nowhere. The top row and the east column always end up as
// straight corridors.
//
// Complexity: O(R×C) time, O(1) extra memory.
func BinaryTree(g *grid.Grid, opts ...Option) error {
	c, err := newCarver(g, opts)
	if err != nil {
		return err
	}
	for i := 0; i < g.Size(); i++ {
		north, hasNorth := g.Neighbor(i, grid.North)
		east, hasEast := g.Neighbor(i, grid.East)
		switch {
		case hasNorth && hasEast:
			if c.heads() {
				err = c.link(i, east, grid.East)
			} else {
				err = c.link(i, north, grid.North)
			}
		case hasNorth:
			err = c.link(i, north, grid.North)
		case hasEast:
			err = c.link(i, east, grid.East)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
