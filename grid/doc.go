// Package grid models a small 2D cell grid as a search arena for
// path planning: rectangular bounds, an obstacle mask, and a fixed
// neighbor-enumeration order.
//
// What:
//
//   - Cell is an integer (X,Y) coordinate pair; a comparable value type
//     usable directly as a map key.
//   - Connectivity selects 4- or 8-directional adjacency (Conn8 default)
//     with a fixed, documented offset order.
//   - Field wraps positive Width×Height bounds plus a blocked-cell mask.
//     It is immutable once built; constructors own their data.
//
// Why:
//
//   - Robot motion planning: pick the shortest collision-free route
//     between two cells.
//   - Game maps and tile worlds: walkability queries and neighbor
//     iteration with deterministic ordering.
//
// Determinism:
//
//   - Offsets() enumerates neighbors in one fixed order (up, down, left,
//     right, down-left, up-left, down-right, up-right for Conn8). Search
//     algorithms inherit their tie-breaking from this order, so it is
//     part of the public contract and never changes between calls.
//
// Complexity:
//
//   - New:                O(W×H) time and memory for the mask.
//   - Contains/Blocked/Free/Index/CellAt: O(1).
//   - Neighbors/PartitionNeighbors: O(d), d = 4 or 8.
//   - Obstacles:          O(W×H).
//
// Errors:
//
//   - ErrBadBounds:       width or height below 1.
//   - ErrCellOutOfBounds: an obstacle lies outside the bounds.
//   - ErrBadConnectivity: connectivity other than Conn4 or Conn8.
package grid
