package grid

import (
	"fmt"
	"slices"
)

// Link joins a and b, where b must be the neighbor of a in direction d.
// (b, d) is appended to a's links and (a, d.Opposite()) to b's.
// Re-linking an existing pair is not deduplicated.
// Returns ErrIndexOutOfRange or ErrNotAdjacent on bad input.
// Complexity: O(1) amortized.
func (g *Grid) Link(a, b int, d Direction) error {
	if err := g.checkPair(a, b, d); err != nil {
		return err
	}
	g.cells[a].links = append(g.cells[a].links, Link{To: b, Dir: d})
	g.cells[b].links = append(g.cells[b].links, Link{To: a, Dir: d.Opposite()})
	g.version++
	return nil
}

// Unlink removes both halves of the a–b link in direction d. Removing a link
// that does not exist is a no-op. The adjacency check still applies.
func (g *Grid) Unlink(a, b int, d Direction) error {
	if err := g.checkPair(a, b, d); err != nil {
		return err
	}
	removedA := g.remove(a, Link{To: b, Dir: d})
	removedB := g.remove(b, Link{To: a, Dir: d.Opposite()})
	if removedA || removedB {
		g.version++
	}
	return nil
}

func (g *Grid) remove(i int, l Link) bool {
	before := len(g.cells[i].links)
	g.cells[i].links = slices.DeleteFunc(g.cells[i].links, func(x Link) bool { return x == l })
	return len(g.cells[i].links) != before
}

func (g *Grid) checkPair(a, b int, d Direction) error {
	if err := g.checkIndex(a); err != nil {
		return err
	}
	if err := g.checkIndex(b); err != nil {
		return err
	}
	if n, ok := g.Neighbor(a, d); !ok || n != b {
		return fmt.Errorf("%w: %v→%v via %v", ErrNotAdjacent, g.cells[a].coord, g.cells[b].coord, d)
	}
	return nil
}

// NeighborDirection returns the direction from a to b when b is an
// orthogonal neighbor of a.
func (g *Grid) NeighborDirection(a, b int) (Direction, bool) {
	if !g.valid(a) || !g.valid(b) {
		return 0, false
	}
	ca, cb := g.cells[a].coord, g.cells[b].coord
	switch {
	case cb.X == ca.X && cb.Y == ca.Y+1:
		return North, true
	case cb.X == ca.X && cb.Y == ca.Y-1:
		return South, true
	case cb.X == ca.X+1 && cb.Y == ca.Y:
		return East, true
	case cb.X == ca.X-1 && cb.Y == ca.Y:
		return West, true
	}
	return 0, false
}

// Links returns a copy of i's links in insertion order, or nil for an
// invalid index.
func (g *Grid) Links(i int) []Link {
	if !g.valid(i) {
		return nil
	}
	return slices.Clone(g.cells[i].links)
}

// Linked reports whether a holds a link to b.
func (g *Grid) Linked(a, b int) bool {
	if !g.valid(a) {
		return false
	}
	for _, l := range g.cells[a].links {
		if l.To == b {
			return true
		}
	}
	return false
}

// Degree returns the number of links held by i.
func (g *Grid) Degree(i int) int {
	if !g.valid(i) {
		return 0
	}
	return len(g.cells[i].links)
}

// LinkCount returns the number of undirected links, i.e. half the total
// number of link entries.
// Complexity: O(R×C).
func (g *Grid) LinkCount() int {
	total := 0
	for i := range g.cells {
		total += len(g.cells[i].links)
	}
	return total / 2
}

// Version changes whenever a link is added or removed. Derived data such as
// distance tables stays valid only while Version is unchanged.
func (g *Grid) Version() uint64 {
	return g.version
}

// EachLink calls fn once per link entry of cell i, in insertion order,
// without copying. Iteration stops early when fn returns false.
func (g *Grid) EachLink(i int, fn func(Link) bool) {
	if !g.valid(i) {
		return
	}
	for _, l := range g.cells[i].links {
		if !fn(l) {
			return
		}
	}
}
