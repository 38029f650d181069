// Package labyrinth is a small toolkit for carving and analyzing mazes on
// rectangular grids.
//
// Everything is organized under three subpackages:
//
//	grid/     — cells, compass directions, symmetric links, neighbor queries
//	generate/ — Binary Tree, Sidewinder, Aldous-Broder and Wilson's algorithm
//	distance/ — BFS distance tables, shortest paths, longest path (diameter)
//
// Quick ASCII example of a 2×3 maze and its longest path:
//
//	+---+---+---+
//	| *   *   * |
//	+---+---+   +
//	| *   *   * |
//	+---+---+---+
//
// The mazegen command (cmd/mazegen) wires the packages into a CLI.
//
//	go install github.com/katalvlaran/labyrinth/cmd/mazegen@latest
package labyrinth
