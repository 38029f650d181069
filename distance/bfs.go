package distance

import "github.com/katalvlaran/labyrinth/grid"

// walker encapsulates mutable BFS state over the grid's links.
type walker struct {
	g     *grid.Grid
	queue []int
	dist  []int
}

// From runs breadth-first search over g's links starting at root.
// Cells outside root's component keep Unreached; calling From before a
// generator finished yields such a partial table, not an error.
// Returns ErrGridNil or ErrCellOutOfRange for invalid input.
// Complexity: O(N) time and memory.
func From(g *grid.Grid, root int) (*Distances, error) {
	if err := checkCell(g, root, "root"); err != nil {
		return nil, err
	}
	n := g.Size()
	w := &walker{
		g:     g,
		queue: make([]int, 0, n),
		dist:  make([]int, n),
	}
	for i := range w.dist {
		w.dist[i] = Unreached
	}

	w.enqueue(root, 0)
	w.loop()

	return &Distances{Root: root, Dist: w.dist, version: g.Version()}, nil
}

// enqueue records the distance of i and schedules it for expansion.
func (w *walker) enqueue(i, d int) {
	w.dist[i] = d
	w.queue = append(w.queue, i)
}

// loop expands cells in FIFO order until the queue drains.
func (w *walker) loop() {
	for qi := 0; qi < len(w.queue); qi++ {
		cur := w.queue[qi]
		next := w.dist[cur] + 1
		w.g.EachLink(cur, func(l grid.Link) bool {
			if w.dist[l.To] == Unreached {
				w.enqueue(l.To, next)
			}
			return true
		})
	}
}
