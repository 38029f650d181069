// Package distance answers reachability and shortest-path questions over the
// links of a grid.Grid.
//
// What
//
//   - From:    breadth-first distance table from a root cell. Every entry
//     holds the link count to the root, or Unreached.
//   - Between: one shortest path from an origin back to a root, found by
//     gradient descent over the distance table.
//   - Longest: the diameter of a spanning tree by double BFS. The farthest
//     cell a from the root is found first, then the farthest cell b from a;
//     the result is the path from b to a.
//   - Cache:   memoizes tables per root and drops them as soon as the grid's
//     link version changes.
//
// Tie-breaking
//
//	When several linked neighbors are one step closer to the root, Between
//	takes the first in the cell's link order. The path is a shortest path,
//	not a canonical one. Max and Longest break distance ties toward the
//	lowest cell index.
//
// Trees only
//
//	Longest relies on the link graph being a tree. On a graph with cycles
//	double BFS does not guarantee the true diameter.
//
// Complexity (N = cells, every cell has at most 4 links)
//
//   - From:    O(N) time and memory.
//   - Between: O(N) for the table plus O(path length).
//   - Longest: three BFS passes, O(N).
//
// Errors
//
//   - ErrGridNil           if the grid pointer is nil.
//   - ErrCellOutOfRange    if a root or origin index is outside the grid.
//   - ErrStaleDistances    if a table is used after the grid's links changed.
//   - grid.ErrCorruptGraph if a path step finds no closer neighbor.
//
// An origin that the root cannot reach is not an error: the returned path
// has no cells.
package distance
