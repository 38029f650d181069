package generate

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/grid"
)

// carver wraps the grid and options shared by every generator.
type carver struct {
	g   *grid.Grid
	cfg config
}

// newCarver validates the preconditions common to all generators.
func newCarver(g *grid.Grid, opts []Option) (*carver, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	if n := g.LinkCount(); n > 0 {
		return nil, fmt.Errorf("%w: %d links present", ErrGridNotEmpty, n)
	}
	return &carver{g: g, cfg: newConfig(opts)}, nil
}

// link joins a to its neighbor b in direction d and notifies the hook.
func (c *carver) link(a, b int, d grid.Direction) error {
	if err := c.g.Link(a, b, d); err != nil {
		return err
	}
	c.cfg.onLink(a, b, d)
	return nil
}

// linkNeighbors links a to b using the direction derived from their
// coordinates. A pair that is not orthogonally adjacent is a corrupt step.
func (c *carver) linkNeighbors(a, b int) error {
	d, ok := c.g.NeighborDirection(a, b)
	if !ok {
		return fmt.Errorf("%w: %v and %v are not orthogonal neighbors",
			grid.ErrCorruptGraph, c.g.Coordinate(a), c.g.Coordinate(b))
	}
	return c.link(a, b, d)
}

// step picks a uniformly random neighbor of i under the configured
// connectivity. Every cell of a grid with more than one cell has at least
// one neighbor.
func (c *carver) step(i int) (int, error) {
	nbrs := c.g.NeighborsWith(i, c.cfg.conn)
	if len(nbrs) == 0 {
		return -1, fmt.Errorf("%w: cell %v has no neighbors", grid.ErrCorruptGraph, c.g.Coordinate(i))
	}
	return nbrs[c.cfg.src.Intn(len(nbrs))], nil
}

// heads flips a fair coin.
func (c *carver) heads() bool {
	return c.cfg.src.Intn(2) == 1
}
