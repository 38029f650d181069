package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrInvalidDimensions indicates rows or columns ≤ 0 at construction.
	ErrInvalidDimensions = errors.New("grid: rows and columns must be positive")
	// ErrIndexOutOfRange indicates a cell index outside [0, Size()).
	ErrIndexOutOfRange = errors.New("grid: cell index out of range")
	// ErrNotAdjacent indicates an attempt to link cells that are not
	// neighbors in the given direction.
	ErrNotAdjacent = errors.New("grid: cells are not adjacent in that direction")
	// ErrCorruptGraph indicates a violated link-graph invariant. A grid that
	// produced it should be treated as unusable.
	ErrCorruptGraph = errors.New("grid: corrupt link graph")
)

// Coordinate is an (X, Y) cell position. X grows eastward, Y grows northward.
type Coordinate struct {
	X, Y int
}

// String renders the coordinate as "(x,y)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns c shifted by (dx, dy).
func (c Coordinate) Add(dx, dy int) Coordinate {
	return Coordinate{X: c.X + dx, Y: c.Y + dy}
}

// Direction is the compass tag carried by each half of a link.
type Direction uint8

const (
	North Direction = iota
	South
	East
	West
)

// Directions returns the four directions in their canonical order.
func Directions() []Direction {
	return []Direction{North, South, East, West}
}

// Opposite returns the direction pointing back: North↔South, East↔West.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	default:
		return East
	}
}

// Offset returns the coordinate delta of one step in direction d.
func (d Direction) Offset() (dx, dy int) {
	switch d {
	case North:
		return 0, 1
	case South:
		return 0, -1
	case East:
		return 1, 0
	default:
		return -1, 0
	}
}

// Valid reports whether d is one of the four compass directions.
func (d Direction) Valid() bool {
	return d <= West
}

func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case South:
		return "S"
	case East:
		return "E"
	case West:
		return "W"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// Connectivity selects the neighborhood used by neighbor queries:
// orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses the four orthogonal neighbors in N, S, E, W order.
	Conn4 Connectivity = iota
	// Conn8 uses the 3×3 Moore block around a cell, scanned row by row
	// from (-1,-1) to (1,1), excluding the cell itself.
	Conn8
)

func (c Connectivity) String() string {
	if c == Conn8 {
		return "conn8"
	}
	return "conn4"
}

// ParseConnectivity accepts "4", "conn4", "8" or "conn8".
func ParseConnectivity(s string) (Connectivity, error) {
	switch s {
	case "4", "conn4":
		return Conn4, nil
	case "8", "conn8":
		return Conn8, nil
	}
	return Conn4, fmt.Errorf("grid: unknown connectivity %q", s)
}

// Link is one half of an undirected edge: the neighbor's index and the
// direction pointing at it.
type Link struct {
	To  int
	Dir Direction
}

// Cell is a read-only snapshot of a grid cell and its links. Links are in
// insertion order.
type Cell struct {
	Index      int
	Coordinate Coordinate
	Links      []Link
}

// Linked reports whether the snapshot holds a link toward d.
func (c Cell) Linked(d Direction) bool {
	for _, l := range c.Links {
		if l.Dir == d {
			return true
		}
	}
	return false
}

// Source yields uniform integers in [0, n). *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}
