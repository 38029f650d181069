package distance

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/labyrinth/grid"
)

// Unreached marks a cell the root cannot reach.
const Unreached = -1

// Sentinel errors for distance queries.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("distance: grid is nil")

	// ErrCellOutOfRange is returned when a root or origin is not a cell of the grid.
	ErrCellOutOfRange = errors.New("distance: cell index out of range")

	// ErrStaleDistances is returned when a table is used against a grid whose
	// links changed after the table was computed.
	ErrStaleDistances = errors.New("distance: distance table is stale")
)

// Distances is a BFS distance table rooted at Root. Dist has one entry per
// cell in row-major order. Treat it as read-only; tables handed out by a
// Cache are shared.
type Distances struct {
	Root int
	Dist []int

	// version is the grid link version the table was computed against.
	version uint64
}

// At returns the distance of cell i from the root, or Unreached for cells
// that are unreachable or out of range.
func (d *Distances) At(i int) int {
	if i < 0 || i >= len(d.Dist) {
		return Unreached
	}
	return d.Dist[i]
}

// Reached reports whether cell i is connected to the root.
func (d *Distances) Reached(i int) bool {
	return d.At(i) != Unreached
}

// Max returns the cell farthest from the root and its distance. Ties go to
// the lowest index.
// Complexity: O(N).
func (d *Distances) Max() (cell, dist int) {
	cell, dist = d.Root, 0
	for i, v := range d.Dist {
		if v > dist {
			cell, dist = i, v
		}
	}
	return cell, dist
}

// Valid reports whether the table still matches g's current links.
func (d *Distances) Valid(g *grid.Grid) bool {
	return g != nil && len(d.Dist) == g.Size() && d.version == g.Version()
}

// Path is an ordered walk from an origin back to the root of its distance
// table. Cells is empty when the origin is unreachable.
type Path struct {
	Distances *Distances
	Cells     []int
}

// Len returns the number of cells on the path, distance+1 for a reachable
// origin.
func (p *Path) Len() int {
	return len(p.Cells)
}

// Origin returns the first cell of the path, or false for an empty path.
func (p *Path) Origin() (int, bool) {
	if len(p.Cells) == 0 {
		return -1, false
	}
	return p.Cells[0], true
}

// Root returns the last cell of the path, or false for an empty path.
func (p *Path) Root() (int, bool) {
	if len(p.Cells) == 0 {
		return -1, false
	}
	return p.Cells[len(p.Cells)-1], true
}

// checkCell validates g and a cell index for any query.
func checkCell(g *grid.Grid, i int, role string) error {
	if g == nil {
		return ErrGridNil
	}
	if i < 0 || i >= g.Size() {
		return fmt.Errorf("%w: %s %d not in [0,%d)", ErrCellOutOfRange, role, i, g.Size())
	}
	return nil
}
