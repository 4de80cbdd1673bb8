package grid

import (
	"fmt"
	"sort"
)

// Field treats a Width×Height cell grid as a search arena. It is
// immutable once built: the constructor copies the obstacle set into an
// internal row-major mask and nothing mutates it afterwards, so one
// Field may serve any number of concurrent searches.
type Field struct {
	width, height int
	blocked       [][]bool // blocked[y][x]
	conn          Connectivity
	offsets       [][2]int
}

// New constructs a Field with the given bounds and obstacle cells.
// Duplicate obstacles collapse; the input slice is not retained.
// Returns ErrBadBounds if width or height is below 1,
// ErrBadConnectivity for an unknown opts.Conn, and ErrCellOutOfBounds
// (wrapped with the offending cell) if an obstacle lies outside bounds.
// Algorithmic complexity: O(W×H + len(obstacles)) time, O(W×H) memory.
func New(width, height int, obstacles []Cell, opts Options) (*Field, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrBadBounds, width, height)
	}
	if !opts.Conn.Valid() {
		return nil, fmt.Errorf("%w: got %v", ErrBadConnectivity, opts.Conn)
	}
	mask := make([][]bool, height)
	for y := 0; y < height; y++ {
		mask[y] = make([]bool, width)
	}
	f := &Field{
		width:   width,
		height:  height,
		blocked: mask,
		conn:    opts.Conn,
		offsets: opts.Conn.Offsets(),
	}
	for _, c := range obstacles {
		if !f.Contains(c) {
			return nil, fmt.Errorf("%w: obstacle %v in %d×%d field", ErrCellOutOfBounds, c, width, height)
		}
		mask[c.Y][c.X] = true
	}
	return f, nil
}

// Width returns the horizontal cell count; valid X range is [0,Width).
func (f *Field) Width() int { return f.width }

// Height returns the vertical cell count; valid Y range is [0,Height).
func (f *Field) Height() int { return f.height }

// Size returns the total cell count Width×Height.
func (f *Field) Size() int { return f.width * f.height }

// Connectivity returns the adjacency mode fixed at construction.
func (f *Field) Connectivity() Connectivity { return f.conn }

// Offsets returns the neighbor-enumeration order in effect, as a copy.
func (f *Field) Offsets() [][2]int {
	out := make([][2]int, len(f.offsets))
	copy(out, f.offsets)
	return out
}

// Contains reports whether c lies within the field boundaries.
// Complexity: O(1).
func (f *Field) Contains(c Cell) bool {
	return c.X >= 0 && c.X < f.width && c.Y >= 0 && c.Y < f.height
}

// Blocked reports whether c is an in-bounds obstacle cell.
// Out-of-bounds cells are neither Blocked nor Free.
func (f *Field) Blocked(c Cell) bool {
	return f.Contains(c) && f.blocked[c.Y][c.X]
}

// Free reports whether c is inside the field and not an obstacle,
// i.e. whether a robot may occupy it.
func (f *Field) Free(c Cell) bool {
	return f.Contains(c) && !f.blocked[c.Y][c.X]
}

// Obstacles returns the obstacle cells in row-major order (y ascending,
// then x). The slice is freshly allocated on every call.
func (f *Field) Obstacles() []Cell {
	var out []Cell
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			if f.blocked[y][x] {
				out = append(out, Cell{X: x, Y: y})
			}
		}
	}
	return out
}

// Neighbors returns the free neighbors of c in enumeration order.
// Out-of-bounds and obstacle candidates are skipped.
// Complexity: O(d), d = 4 or 8.
func (f *Field) Neighbors(c Cell) []Cell {
	out := make([]Cell, 0, len(f.offsets))
	for _, d := range f.offsets {
		if n := c.Add(d[0], d[1]); f.Free(n) {
			out = append(out, n)
		}
	}
	return out
}

// PartitionNeighbors splits the in-bounds neighbors of c into free cells
// and blocked cells, both in enumeration order. Out-of-bounds candidates
// appear in neither slice. This is the per-step survey a movement log
// reports: where the robot could go and which cells barred it.
func (f *Field) PartitionNeighbors(c Cell) (free, blocked []Cell) {
	for _, d := range f.offsets {
		n := c.Add(d[0], d[1])
		switch {
		case f.Free(n):
			free = append(free, n)
		case f.Blocked(n):
			blocked = append(blocked, n)
		}
	}
	return free, blocked
}

// Index maps c to its row-major index: Y*Width + X.
// The caller must ensure c is in bounds. Complexity: O(1).
func (f *Field) Index(c Cell) int {
	return c.Y*f.width + c.X
}

// CellAt converts a row-major index back to a Cell.
// Complexity: O(1).
func (f *Field) CellAt(idx int) Cell {
	return Cell{X: idx % f.width, Y: idx / f.width}
}

// SortCells orders cells row-major in place (y ascending, then x) and
// returns the slice. Useful for stable display of cell sets.
func SortCells(cells []Cell) []Cell {
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Y != cells[j].Y {
			return cells[i].Y < cells[j].Y
		}
		return cells[i].X < cells[j].X
	})
	return cells
}
