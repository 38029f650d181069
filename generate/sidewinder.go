package generate

import "github.com/katalvlaran/labyrinth/grid"

// Sidewinder carves each row left to right as a sequence of runs. A coin is
// flipped for every cell; the run closes when the cell has no east neighbor,
// or when it has a north neighbor and the coin shows heads. An open run
// extends east. A closed run tunnels north from one uniformly chosen member
// (if a north neighbor exists) and a new run starts.
//
// The top row never closes early, so it becomes one corridor.
//
// Complexity: O(R×C) time, O(C) extra memory.
func Sidewinder(g *grid.Grid, opts ...Option) error {
	c, err := newCarver(g, opts)
	if err != nil {
		return err
	}
	run := make([]int, 0, g.Columns())
	for y := 0; y < g.Rows(); y++ {
		run = run[:0]
		for x := 0; x < g.Columns(); x++ {
			i := y*g.Columns() + x
			run = append(run, i)

			east, hasEast := g.Neighbor(i, grid.East)
			_, hasNorth := g.Neighbor(i, grid.North)
			heads := c.heads()

			if hasEast && !(hasNorth && heads) {
				if err := c.link(i, east, grid.East); err != nil {
					return err
				}
				continue
			}

			member := run[c.cfg.src.Intn(len(run))]
			if north, ok := g.Neighbor(member, grid.North); ok {
				if err := c.link(member, north, grid.North); err != nil {
					return err
				}
			}
			run = run[:0]
		}
	}
	return nil
}
