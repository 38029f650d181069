// Package render draws a linked grid as text: corners are '+', closed walls
// are "---" and '|', north is at the top.
package render

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/labyrinth/distance"
	"github.com/katalvlaran/labyrinth/grid"
)

// Options controls what is drawn inside each cell.
type Options struct {
	// Path cells are marked with '*', or with their distance label when
	// Distances is set.
	Path []int
	// Distances, when set, labels every reached cell with its distance in
	// base 36.
	Distances *distance.Distances
	// Style decorates the body of marked cells. Nil leaves them plain.
	Style func(string) string
}

// Text renders g. Only the query surface of the grid is used: the cell
// enumeration and each cell's link directions.
func Text(g *grid.Grid, opts Options) string {
	cells := g.Cells()
	onPath := make(map[int]bool, len(opts.Path))
	for _, i := range opts.Path {
		onPath[i] = true
	}

	var b strings.Builder
	b.WriteString("+")
	b.WriteString(strings.Repeat("---+", g.Columns()))
	b.WriteString("\n")

	for y := g.Rows() - 1; y >= 0; y-- {
		row := cells[y*g.Columns() : (y+1)*g.Columns()]

		b.WriteString("|")
		for _, c := range row {
			b.WriteString(body(c.Index, onPath[c.Index], opts))
			if c.Linked(grid.East) {
				b.WriteString(" ")
			} else {
				b.WriteString("|")
			}
		}
		b.WriteString("\n")

		b.WriteString("+")
		for _, c := range row {
			if c.Linked(grid.South) {
				b.WriteString("   ")
			} else {
				b.WriteString("---")
			}
			b.WriteString("+")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// body returns the three-character interior of cell i.
func body(i int, marked bool, opts Options) string {
	s := "   "
	switch {
	case opts.Distances != nil && opts.Distances.Reached(i):
		s = label(opts.Distances.At(i))
	case marked:
		s = " * "
	}
	if marked && opts.Style != nil {
		s = opts.Style(s)
	}
	return s
}

// label centers v in base 36 within three columns, keeping the low-order
// digits if it does not fit.
func label(v int) string {
	s := strconv.FormatInt(int64(v), 36)
	switch len(s) {
	case 1:
		return " " + s + " "
	case 2:
		return s + " "
	default:
		return s[len(s)-3:]
	}
}
