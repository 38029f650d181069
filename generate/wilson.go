package generate

import "github.com/katalvlaran/labyrinth/grid"

// Wilson builds a uniform spanning tree from loop-erased random walks.
//
// One random cell seeds the tree. Then, while cells remain outside it, a walk
// starts from a random unvisited cell and wanders until it touches the tree.
// Whenever the walk returns to a cell already on its path, the loop back to
// that cell is erased. The surviving path is carved link by link and its
// cells join the tree.
//
// Complexity: expected O(mean hitting time) steps; O(R×C) extra memory.
func Wilson(g *grid.Grid, opts ...Option) error {
	c, err := newCarver(g, opts)
	if err != nil {
		return err
	}
	w := newWilsonWalker(g.Size())

	w.remove(w.unvisited[c.cfg.src.Intn(len(w.unvisited))])

	for len(w.unvisited) > 0 {
		start := w.unvisited[c.cfg.src.Intn(len(w.unvisited))]
		path, err := w.walk(c, start)
		if err != nil {
			return err
		}
		for k := 0; k+1 < len(path); k++ {
			if err := c.linkNeighbors(path[k], path[k+1]); err != nil {
				return err
			}
			w.remove(path[k])
		}
	}
	return nil
}

// wilsonWalker holds the unvisited set and the current walk.
//
// unvisited is a dense list with pos as its inverse (pos[i] == -1 once i
// joined the tree), giving O(1) uniform sampling and removal. onPath[i] is
// the position of i in path, or -1.
type wilsonWalker struct {
	unvisited []int
	pos       []int
	path      []int
	onPath    []int
}

func newWilsonWalker(n int) *wilsonWalker {
	w := &wilsonWalker{
		unvisited: make([]int, n),
		pos:       make([]int, n),
		path:      make([]int, 0, n),
		onPath:    make([]int, n),
	}
	for i := 0; i < n; i++ {
		w.unvisited[i] = i
		w.pos[i] = i
		w.onPath[i] = -1
	}
	return w
}

func (w *wilsonWalker) inTree(i int) bool {
	return w.pos[i] < 0
}

// remove moves i into the tree. Swap-with-last keeps removal O(1).
func (w *wilsonWalker) remove(i int) {
	p := w.pos[i]
	if p < 0 {
		return
	}
	last := w.unvisited[len(w.unvisited)-1]
	w.unvisited[p] = last
	w.pos[last] = p
	w.unvisited = w.unvisited[:len(w.unvisited)-1]
	w.pos[i] = -1
}

// walk runs one loop-erased random walk from start until it reaches a tree
// cell. The returned path ends at that tree cell and is only valid until the
// next call.
func (w *wilsonWalker) walk(c *carver, start int) ([]int, error) {
	for _, i := range w.path {
		w.onPath[i] = -1
	}
	w.path = append(w.path[:0], start)
	w.onPath[start] = 0

	cur := start
	for !w.inTree(cur) {
		next, err := c.step(cur)
		if err != nil {
			return nil, err
		}
		if at := w.onPath[next]; at >= 0 {
			// erase the loop: drop everything after next's first visit
			for _, i := range w.path[at+1:] {
				w.onPath[i] = -1
			}
			w.path = w.path[:at+1]
		} else {
			w.onPath[next] = len(w.path)
			w.path = append(w.path, next)
		}
		cur = next
	}
	return w.path, nil
}
