package grid

import "fmt"

// ValidateSpanningTree checks that the link graph is a spanning tree: every
// link is symmetric and joins true orthogonal neighbors, the graph is
// connected, and it has exactly Size()-1 undirected links. Any violation is
// reported wrapped in ErrCorruptGraph.
//
// Complexity: O(R×C) time and memory.
func (g *Grid) ValidateSpanningTree() error {
	if err := g.validateLinks(); err != nil {
		return err
	}
	if got, want := g.LinkCount(), len(g.cells)-1; got != want {
		return fmt.Errorf("%w: %d links, want %d", ErrCorruptGraph, got, want)
	}

	// BFS reachability from cell 0
	seen := make([]bool, len(g.cells))
	seen[0] = true
	queue := []int{0}
	for qi := 0; qi < len(queue); qi++ {
		for _, l := range g.cells[queue[qi]].links {
			if !seen[l.To] {
				seen[l.To] = true
				queue = append(queue, l.To)
			}
		}
	}
	if len(queue) != len(g.cells) {
		return fmt.Errorf("%w: %d of %d cells reachable", ErrCorruptGraph, len(queue), len(g.cells))
	}
	return nil
}

// validateLinks checks symmetry and adjacency of every link entry.
func (g *Grid) validateLinks() error {
	for i := range g.cells {
		for _, l := range g.cells[i].links {
			if n, ok := g.Neighbor(i, l.Dir); !ok || n != l.To {
				return fmt.Errorf("%w: link %v→%d via %v joins non-neighbors",
					ErrCorruptGraph, g.cells[i].coord, l.To, l.Dir)
			}
			if !g.hasLink(l.To, Link{To: i, Dir: l.Dir.Opposite()}) {
				return fmt.Errorf("%w: link %v→%v via %v has no reverse half",
					ErrCorruptGraph, g.cells[i].coord, g.cells[l.To].coord, l.Dir)
			}
		}
	}
	return nil
}

func (g *Grid) hasLink(i int, want Link) bool {
	for _, l := range g.cells[i].links {
		if l == want {
			return true
		}
	}
	return false
}
