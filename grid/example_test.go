package grid_test

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/grid"
)

// ExampleGrid_Link carves a 2×2 "U" and lists every cell with the
// directions of its links.
func ExampleGrid_Link() {
	g, _ := grid.New(2, 2)
	_ = g.Link(0, 2, grid.North)
	_ = g.Link(0, 1, grid.East)
	_ = g.Link(1, 3, grid.North)

	for _, c := range g.Cells() {
		fmt.Printf("%v:", c.Coordinate)
		for _, l := range c.Links {
			fmt.Printf(" %v", l.Dir)
		}
		fmt.Println()
	}
	fmt.Println("spanning tree:", g.ValidateSpanningTree() == nil)

	// Output:
	// (0,0): N E
	// (1,0): W N
	// (0,1): S
	// (1,1): S
	// spanning tree: true
}
