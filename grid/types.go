// Package grid defines core types, options, and sentinel errors
// for the grid subpackage of github.com/katalvlaran/gridnav.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction.
var (
	// ErrBadBounds indicates non-positive width or height.
	ErrBadBounds = errors.New("grid: width and height must be at least 1")
	// ErrCellOutOfBounds indicates a cell outside the field bounds.
	ErrCellOutOfBounds = errors.New("grid: cell outside field bounds")
	// ErrBadConnectivity indicates an unknown Connectivity value.
	ErrBadConnectivity = errors.New("grid: connectivity must be Conn4 or Conn8")
)

// Cell identifies one grid position by its integer coordinates.
// Cells compare by value and may key maps directly.
type Cell struct {
	X, Y int
}

// String renders the cell as "(x,y)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns the cell displaced by (dx,dy).
func (c Cell) Add(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// ChebyshevDistance returns the chessboard distance to o: the number of
// 8-directional unit moves needed to cover the gap on an empty grid.
func (c Cell) ChebyshevDistance(o Cell) int {
	dx := c.X - o.X
	if dx < 0 {
		dx = -dx
	}
	dy := c.Y - o.Y
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return dx
	}
	return dy
}

// Step reports whether o is exactly one move away under 8-directional
// adjacency: distinct cells differing by at most 1 in each coordinate.
func (c Cell) Step(o Cell) bool {
	return c != o && c.ChebyshevDistance(o) == 1
}

// Connectivity selects neighbor connectivity: 8-directional including
// diagonals (Conn8, the default) or orthogonal only (Conn4).
type Connectivity int

const (
	// Conn8 uses 8-directional connectivity: the 4 orthogonal neighbors
	// plus the 4 diagonals, all costing one move.
	Conn8 Connectivity = iota
	// Conn4 uses 4-directional connectivity: up, down, left, right.
	Conn4
)

// conn8Offsets fixes the neighbor-enumeration order for Conn8. Searches
// break ties between equally short paths by this order, so it is part of
// the public contract.
var conn8Offsets = [][2]int{
	{0, 1},   // up
	{0, -1},  // down
	{-1, 0},  // left
	{1, 0},   // right
	{-1, -1}, // down-left
	{-1, 1},  // up-left
	{1, -1},  // down-right
	{1, 1},   // up-right
}

// Offsets returns the (dx,dy) neighbor offsets for the connectivity, in
// the fixed enumeration order. The slice is a fresh copy on every call.
// Unknown connectivity values yield nil.
func (cn Connectivity) Offsets() [][2]int {
	var src [][2]int
	switch cn {
	case Conn8:
		src = conn8Offsets
	case Conn4:
		src = conn8Offsets[:4]
	default:
		return nil
	}
	out := make([][2]int, len(src))
	copy(out, src)
	return out
}

// Valid reports whether cn is a known connectivity mode.
func (cn Connectivity) Valid() bool {
	return cn == Conn4 || cn == Conn8
}

// String names the connectivity mode.
func (cn Connectivity) String() string {
	switch cn {
	case Conn8:
		return "Conn8"
	case Conn4:
		return "Conn4"
	default:
		return fmt.Sprintf("Connectivity(%d)", int(cn))
	}
}

// Options contains tunable parameters for field construction.
type Options struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultOptions returns an Options with default settings:
// Conn=Conn8 (diagonal moves allowed).
func DefaultOptions() Options {
	return Options{
		Conn: Conn8,
	}
}
