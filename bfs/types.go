// Package bfs defines tunable options, sentinel errors, and the Result
// type for breadth-first path search over a grid.Field.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/gridnav/grid"
)

// Sentinel errors for FindPath execution.
var (
	// ErrNilField is returned if a nil field pointer is passed.
	ErrNilField = errors.New("bfs: field is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrStartOutOfBounds is returned when the start cell lies outside the field.
	ErrStartOutOfBounds = errors.New("bfs: start cell out of bounds")

	// ErrGoalOutOfBounds is returned when the goal cell lies outside the field.
	ErrGoalOutOfBounds = errors.New("bfs: goal cell out of bounds")

	// ErrStartBlocked is returned when the start cell is an obstacle.
	ErrStartBlocked = errors.New("bfs: start cell is blocked")

	// ErrGoalBlocked is returned when the goal cell is an obstacle.
	ErrGoalBlocked = errors.New("bfs: goal cell is blocked")

	// ErrNoPath is returned when the goal is unreachable from the start.
	// This is an expected, plannable outcome, not a fault: callers branch
	// on it with errors.Is(err, bfs.ErrNoPath).
	ErrNoPath = errors.New("bfs: no path between start and goal")
)

// Option configures FindPath behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded
// internally and surfaced as ErrOptionViolation when FindPath is invoked.
type Option func(*FindOptions)

// FindOptions holds parameters and callbacks to customize the search.
type FindOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a cell is enqueued, before visiting.
	// Receives the cell and its depth (moves) from the start.
	OnEnqueue func(c grid.Cell, depth int)

	// OnDequeue is called immediately before visiting a cell.
	OnDequeue func(c grid.Cell, depth int)

	// OnVisit is called when visiting a cell. If it returns an error,
	// the search aborts and propagates that error.
	OnVisit func(c grid.Cell, depth int) error

	// OnExpand is called once per expanded cell with its in-bounds
	// neighbor candidates partitioned into free and blocked, in
	// enumeration order. Out-of-bounds candidates appear in neither
	// slice. Purely observational: the slices are shared with the
	// walker and must not be mutated or retained.
	OnExpand func(cur grid.Cell, free, blocked []grid.Cell)

	// MaxDepth, if > 0, stops exploring beyond this many moves from the
	// start. A value of 0 explicitly disables any depth limit. A goal
	// beyond the limit yields ErrNoPath.
	MaxDepth int

	// FilterNeighbor can veto moves by returning false.
	// Called for each candidate move from→to.
	FilterNeighbor func(from, to grid.Cell) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a FindOptions with sane defaults:
//   - context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no filtering (all moves allowed)
//   - no-op hooks (OnEnqueue, OnDequeue, OnVisit, OnExpand)
//   - error channel clear.
func DefaultOptions() FindOptions {
	return FindOptions{
		Ctx:            context.Background(),
		OnEnqueue:      func(grid.Cell, int) {},
		OnDequeue:      func(grid.Cell, int) {},
		OnVisit:        func(grid.Cell, int) error { return nil },
		OnExpand:       func(grid.Cell, []grid.Cell, []grid.Cell) {},
		MaxDepth:       0,
		FilterNeighbor: func(_, _ grid.Cell) bool { return true },
		err:            nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *FindOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(c grid.Cell, depth int)) Option {
	return func(o *FindOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(c grid.Cell, depth int)) Option {
	return func(o *FindOptions) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the search.
func WithOnVisit(fn func(c grid.Cell, depth int) error) Option {
	return func(o *FindOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithOnExpand registers a callback to observe each expansion step:
// the cell being expanded and its free/blocked neighbor candidates.
func WithOnExpand(fn func(cur grid.Cell, free, blocked []grid.Cell)) Option {
	return func(o *FindOptions) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithMaxDepth stops the search at the given move count (exclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *FindOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no limit"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterNeighbor skips moves when fn returns false.
func WithFilterNeighbor(fn func(from, to grid.Cell) bool) Option {
	return func(o *FindOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of one successful search:
//   - Path:   the shortest route, start through goal inclusive.
//   - Order:  cells expanded, in dequeue sequence.
//   - Depth:  map from cell to its move distance from the start.
//   - Parent: map from cell to the cell it was first discovered from
//     (the start cell has no entry).
type Result struct {
	Path   []grid.Cell
	Order  []grid.Cell
	Depth  map[grid.Cell]int
	Parent map[grid.Cell]grid.Cell
}

// Moves returns the number of moves along the path: len(Path)-1.
// A start==goal search has zero moves.
func (r *Result) Moves() int {
	if len(r.Path) == 0 {
		return 0
	}
	return len(r.Path) - 1
}

// Expanded returns the number of cells dequeued before the goal was found.
func (r *Result) Expanded() int {
	return len(r.Order)
}
