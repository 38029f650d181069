// Package generate carves perfect mazes (spanning trees) into a link-free
// grid.Grid.
//
// Algorithms:
//
//   - BinaryTree:   one pass in row-major order; each cell links north or
//     east. Strong diagonal bias, O(R×C).
//   - Sidewinder:   row-wise runs closed by a coin flip; each run tunnels
//     north from one random member. O(R×C).
//   - AldousBroder: random walk that links every first entry into an
//     unvisited cell. Uniform spanning tree, expected cover time
//     superlinear in the number of cells.
//   - Wilson:       loop-erased random walks from unvisited cells until they
//     hit the tree. Uniform spanning tree.
//
// Options:
//
//   - WithSeed(s) / WithRand(src): deterministic randomness. Without either,
//     the process-wide math/rand source is used.
//   - WithConnectivity(c): walk neighborhood for AldousBroder and Wilson.
//     Conn4 (default) steps orthogonally. Conn8 samples the full Moore
//     block; a diagonal step that has to become a link fails with
//     grid.ErrCorruptGraph.
//   - WithOnLink(fn): observe every carved link in order.
//
// Errors:
//
//   - ErrGridNil:          nil grid.
//   - ErrGridNotEmpty:     the grid already carries links.
//   - ErrUnknownAlgorithm: Run or ParseAlgorithm got an unknown name.
//   - grid.ErrCorruptGraph (wrapped): a neighbor used for linking is not an
//     orthogonal neighbor.
//
// Usage:
//
//	g, _ := grid.New(20, 30)
//	if err := generate.Wilson(g, generate.WithSeed(42)); err != nil {
//		// handle
//	}
package generate
