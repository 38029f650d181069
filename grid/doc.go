// Package grid models a rectangular maze board as a graph of cells joined by
// symmetric, direction-tagged links.
//
// What:
//
//   - Grid owns rows×columns cells in row-major order (index = y*Columns + x).
//   - Links connect orthogonal neighbors only and are always stored on both
//     endpoints: (b, d) on a and (a, d.Opposite()) on b.
//   - Neighbor queries come in two flavors: Conn4 (N, S, E, W) and Conn8
//     (the full 3×3 Moore block around a cell).
//   - Cells enumerates read-only snapshots for renderers and printers.
//
// Why:
//
//   - Maze generators carve a spanning tree by linking neighbors.
//   - Distance and path analysis walks the links, never the raw neighborhood.
//
// Orientation:
//
//	North increases y, South decreases y, East increases x, West decreases x.
//
// Complexity:
//
//   - New:               O(R×C) time and memory.
//   - Neighbor, Index:   O(1).
//   - Link, Unlink:      O(deg) ≤ O(4).
//   - ValidateSpanningTree: O(R×C).
//
// Errors:
//
//   - ErrInvalidDimensions: rows or columns not positive.
//   - ErrIndexOutOfRange:   cell index outside [0, Size()).
//   - ErrNotAdjacent:       link direction disagrees with the cell coordinates.
//   - ErrCorruptGraph:      a structural invariant of the link graph is broken.
//
// A Grid is not safe for concurrent mutation.
package grid
