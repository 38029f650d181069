package generate

import "github.com/katalvlaran/labyrinth/grid"

// AldousBroder performs a random walk from a random cell. Each time the walk
// enters a cell with no links yet, the step is carved as a link. The walk
// ends once every cell has been entered.
//
// The result is a uniform spanning tree. Expected running time is the cover
// time of the walk, which grows faster than the cell count.
func AldousBroder(g *grid.Grid, opts ...Option) error {
	c, err := newCarver(g, opts)
	if err != nil {
		return err
	}

	cur := g.RandomCell(c.cfg.src)
	unvisited := g.Size() - 1
	for unvisited > 0 {
		next, err := c.step(cur)
		if err != nil {
			return err
		}
		if g.Degree(next) == 0 {
			if err := c.linkNeighbors(cur, next); err != nil {
				return err
			}
			unvisited--
		}
		cur = next
	}
	return nil
}
