package bfs

import (
	"fmt"

	"github.com/katalvlaran/gridnav/grid"
)

// queueItem pairs a cell with its move distance from the start.
type queueItem struct {
	cell  grid.Cell
	depth int
}

// walker encapsulates mutable search state for one FindPath call.
type walker struct {
	field   *grid.Field
	opts    FindOptions
	goal    grid.Cell
	queue   []queueItem
	visited []bool // row-major, indexed by field.Index
	found   bool
	res     *Result
}

// FindPath computes the shortest collision-free path from start to goal
// on f, applying any number of functional Options. All moves cost one
// regardless of direction, so the FIFO frontier guarantees minimality.
//
// Preconditions are validated in order:
//  1. f must be non-nil (ErrNilField).
//  2. Options must be valid (ErrOptionViolation).
//  3. start must lie within bounds (ErrStartOutOfBounds).
//  4. goal must lie within bounds (ErrGoalOutOfBounds).
//  5. start must not be an obstacle (ErrStartBlocked).
//  6. goal must not be an obstacle (ErrGoalBlocked).
//
// An unreachable goal is an expected outcome, surfaced as ErrNoPath.
// Inputs are never mutated; each call allocates fresh state, so one
// Field may serve many concurrent FindPath calls.
//
// Complexity over N = Width×Height cells:
//   - Time:   O(N) (each cell enqueued at most once, ≤8 edges each)
//   - Memory: O(N) (queue, visited mask, Depth and Parent maps)
func FindPath(f *grid.Field, start, goal grid.Cell, opts ...Option) (*Result, error) {
	// 1) Reject a nil field before touching it.
	if f == nil {
		return nil, ErrNilField
	}

	// 2) Build options and catch any invalid ones immediately.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// 3)-6) Validate endpoints: in bounds first, then unblocked.
	if !f.Contains(start) {
		return nil, fmt.Errorf("%w: %v in %d×%d field", ErrStartOutOfBounds, start, f.Width(), f.Height())
	}
	if !f.Contains(goal) {
		return nil, fmt.Errorf("%w: %v in %d×%d field", ErrGoalOutOfBounds, goal, f.Width(), f.Height())
	}
	if f.Blocked(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartBlocked, start)
	}
	if f.Blocked(goal) {
		return nil, fmt.Errorf("%w: %v", ErrGoalBlocked, goal)
	}

	// Prepare walker state sized to the field.
	n := f.Size()
	w := &walker{
		field:   f,
		opts:    o,
		goal:    goal,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		res: &Result{
			Order:  make([]grid.Cell, 0, n),
			Depth:  make(map[grid.Cell]int, n),
			Parent: make(map[grid.Cell]grid.Cell, n),
		},
	}

	// Seed the frontier with the start cell (no parent entry).
	w.enqueue(start, 0)
	if err := w.loop(); err != nil {
		return nil, err
	}
	if !w.found {
		return nil, ErrNoPath
	}
	w.res.Path = w.reconstruct(start)
	return w.res, nil
}

// enqueue marks c visited at depth d, records it, calls OnEnqueue,
// and appends it to the frontier. The caller records the parent link.
func (w *walker) enqueue(c grid.Cell, d int) {
	w.visited[w.field.Index(c)] = true
	w.res.Depth[c] = d
	w.opts.OnEnqueue(c, d)
	w.queue = append(w.queue, queueItem{cell: c, depth: d})
}

// loop processes the frontier until the goal is dequeued, the queue
// drains, a hook aborts, or the context is cancelled.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per expansion)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		// Goal test on dequeue: its depth is now final, stop expanding.
		if item.cell == w.goal {
			w.found = true
			return nil
		}
		w.expand(item)
	}
	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.cell, item.depth)
	return item
}

// visit records the cell in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.cell)
	if err := w.opts.OnVisit(item.cell, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.cell, err)
	}
	return nil
}

// expand surveys the in-bounds neighbors of item, reports them to
// OnExpand, and enqueues each free, unseen, unfiltered cell within the
// depth limit with item as its parent.
func (w *walker) expand(item queueItem) {
	free, blocked := w.field.PartitionNeighbors(item.cell)
	w.opts.OnExpand(item.cell, free, blocked)

	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nbr := range free {
		if w.visited[w.field.Index(nbr)] {
			continue
		}
		if !w.opts.FilterNeighbor(item.cell, nbr) {
			continue
		}
		w.res.Parent[nbr] = item.cell
		w.enqueue(nbr, nextDepth)
	}
}

// reconstruct walks parent links from the goal back to start, then
// reverses the collected cells in place so the path runs start → goal.
func (w *walker) reconstruct(start grid.Cell) []grid.Cell {
	path := []grid.Cell{w.goal}
	for cur := w.goal; cur != start; {
		cur = w.res.Parent[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
