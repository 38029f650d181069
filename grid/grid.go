package grid

import (
	"fmt"
	"slices"
)

// cell is the arena entry behind an index. Links keep insertion order so
// that traversals are reproducible.
type cell struct {
	coord Coordinate
	links []Link
}

// Grid is a fixed-size rectangular board of cells. Dimensions never change
// after New; only the links between cells are mutable.
type Grid struct {
	rows, columns int
	cells         []cell
	version       uint64
	conn4         [][2]int
	conn8         [][2]int
}

// New allocates a rows×columns grid of unlinked cells in row-major order.
// Returns ErrInvalidDimensions if either dimension is not positive.
// Complexity: O(R×C) time and memory.
func New(rows, columns int) (*Grid, error) {
	if rows <= 0 || columns <= 0 {
		return nil, fmt.Errorf("%w: rows=%d columns=%d", ErrInvalidDimensions, rows, columns)
	}
	cells := make([]cell, rows*columns)
	for y := 0; y < rows; y++ {
		for x := 0; x < columns; x++ {
			cells[y*columns+x] = cell{coord: Coordinate{X: x, Y: y}}
		}
	}

	// Precompute neighbor offsets once; Conn4 follows Directions() order.
	conn4 := make([][2]int, 0, 4)
	for _, d := range Directions() {
		dx, dy := d.Offset()
		conn4 = append(conn4, [2]int{dx, dy})
	}
	conn8 := make([][2]int, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			conn8 = append(conn8, [2]int{dx, dy})
		}
	}

	return &Grid{
		rows:    rows,
		columns: columns,
		cells:   cells,
		conn4:   conn4,
		conn8:   conn8,
	}, nil
}

// Rows returns the number of rows (the Y extent).
func (g *Grid) Rows() int { return g.rows }

// Columns returns the number of columns (the X extent).
func (g *Grid) Columns() int { return g.columns }

// Size returns the number of cells, Rows()*Columns().
func (g *Grid) Size() int { return len(g.cells) }

// InBounds reports whether c lies within [0,Columns) × [0,Rows).
// Complexity: O(1).
func (g *Grid) InBounds(c Coordinate) bool {
	return c.X >= 0 && c.X < g.columns && c.Y >= 0 && c.Y < g.rows
}

// Index maps a coordinate to its row-major index. The boolean is false when
// c is off the grid.
func (g *Grid) Index(c Coordinate) (int, bool) {
	if !g.InBounds(c) {
		return -1, false
	}
	return c.Y*g.columns + c.X, true
}

// Coordinate converts a row-major index back to (x,y). The index is not
// range-checked.
func (g *Grid) Coordinate(i int) Coordinate {
	return Coordinate{X: i % g.columns, Y: i / g.columns}
}

func (g *Grid) valid(i int) bool {
	return i >= 0 && i < len(g.cells)
}

func (g *Grid) checkIndex(i int) error {
	if !g.valid(i) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, i, len(g.cells))
	}
	return nil
}

// CellAt returns a snapshot of the cell at c, or false if c is off the grid.
func (g *Grid) CellAt(c Coordinate) (Cell, bool) {
	i, ok := g.Index(c)
	if !ok {
		return Cell{}, false
	}
	return g.snapshot(i), true
}

// CellAtIndex returns a snapshot of the cell at row-major index i, or false
// if i is outside [0, Size()).
func (g *Grid) CellAtIndex(i int) (Cell, bool) {
	if !g.valid(i) {
		return Cell{}, false
	}
	return g.snapshot(i), true
}

// Cells returns snapshots of every cell in row-major order.
// Complexity: O(R×C) time and memory.
func (g *Grid) Cells() []Cell {
	out := make([]Cell, len(g.cells))
	for i := range g.cells {
		out[i] = g.snapshot(i)
	}
	return out
}

func (g *Grid) snapshot(i int) Cell {
	return Cell{
		Index:      i,
		Coordinate: g.cells[i].coord,
		Links:      slices.Clone(g.cells[i].links),
	}
}

// Neighbor returns the index of the cell one step from i in direction d,
// or false when that step leaves the grid.
// Complexity: O(1).
func (g *Grid) Neighbor(i int, d Direction) (int, bool) {
	if !g.valid(i) || !d.Valid() {
		return -1, false
	}
	dx, dy := d.Offset()
	return g.Index(g.cells[i].coord.Add(dx, dy))
}

// Neighbors returns the existing cells of the 3×3 block centered on i,
// excluding i itself. Diagonal cells are included; see NeighborsWith.
func (g *Grid) Neighbors(i int) []int {
	return g.NeighborsWith(i, Conn8)
}

// NeighborsWith returns the existing neighbors of i under conn. Conn4 lists
// them in N, S, E, W order, Conn8 in row-major scan order of the 3×3 block.
// An invalid index yields nil.
// Complexity: O(d), d = 4 or 8.
func (g *Grid) NeighborsWith(i int, conn Connectivity) []int {
	if !g.valid(i) {
		return nil
	}
	offsets := g.conn4
	if conn == Conn8 {
		offsets = g.conn8
	}
	c := g.cells[i].coord
	out := make([]int, 0, len(offsets))
	for _, d := range offsets {
		if j, ok := g.Index(c.Add(d[0], d[1])); ok {
			out = append(out, j)
		}
	}
	return out
}

// RandomCell returns a uniformly chosen cell index drawn from src. The grid
// is never empty, so this always succeeds.
func (g *Grid) RandomCell(src Source) int {
	return src.Intn(len(g.cells))
}
