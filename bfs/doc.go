// Package bfs is the grid search engine: breadth-first shortest-path
// search over a grid.Field, returning the minimal collision-free route
// between two cells together with the full discovery record.
//
// What
//
//   - Explore cells in non-decreasing move distance from a start cell,
//     under the field's 4- or 8-directional adjacency; every move costs
//     one, diagonals included.
//   - Returns a Result containing:
//   - Path:   the shortest route, start through goal inclusive
//   - Order:  expansion sequence (cells dequeued)
//   - Depth:  map from cell → move distance from start
//   - Parent: map from cell → the cell it was first discovered from
//   - Supports functional hooks at four stages:
//   - OnEnqueue (before a cell joins the frontier)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - OnExpand  (per expansion: free/blocked neighbor candidates)
//   - Allows vetoing individual moves via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Why
//
//   - Unit-cost moves mean the FIFO frontier dequeues cells in level
//     order, so the first time the goal is dequeued its depth is the
//     true graph distance: BFS is exact here, no priority queue needed.
//   - The Parent map doubles as the visited set, and walking it from
//     the goal reconstructs one canonical shortest path.
//
// Determinism
//
//	Neighbors are enumerated in the field's fixed offset order
//	(grid.Connectivity.Offsets), so ties between equally short paths
//	always break the same way and the returned Path is reproducible
//	across calls, processes, and platforms.
//
// Complexity (N = Width×Height cells)
//
//   - Time:   O(N)   (each cell enqueued at most once, ≤8 edges each)
//   - Memory: O(N)   (queue, visited mask, Depth map, Parent map)
//
// Usage
//
//	// Basic search with no options:
//	res, err := bfs.FindPath(f, start, goal)
//	switch {
//	case errors.Is(err, bfs.ErrNoPath):
//	    // expected outcome: report "no path exists"
//	case err != nil:
//	    // invalid input or aborted hook
//	default:
//	    // res.Path runs start → goal, res.Moves() moves long
//	}
//
//	// With functional options:
//	res, err := bfs.FindPath(
//	    f, start, goal,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(6),
//	    bfs.WithOnExpand(func(cur grid.Cell, free, blocked []grid.Cell) { /* ... */ }),
//	    bfs.WithFilterNeighbor(func(from, to grid.Cell) bool { return true }),
//	)
//
// Options
//
//   - DefaultOptions(): background Context, no-op hooks, no depth limit, no filtering.
//   - WithContext(ctx):       set a custom context for cancellation.
//   - WithMaxDepth(d):        stop exploring beyond d moves (>0).
//   - WithFilterNeighbor(fn): veto moves for which fn(from,to)==false.
//   - WithOnEnqueue(fn):      hook before a cell joins the frontier.
//   - WithOnDequeue(fn):      hook immediately before visiting a cell.
//   - WithOnVisit(fn):        hook during visit; returning error aborts.
//   - WithOnExpand(fn):       hook per expansion with neighbor survey.
//
// Errors
//
//   - ErrNilField           if the field pointer is nil.
//   - ErrOptionViolation    if an invalid Option (e.g. negative MaxDepth).
//   - ErrStartOutOfBounds / ErrGoalOutOfBounds  endpoint outside the field.
//   - ErrStartBlocked / ErrGoalBlocked          endpoint on an obstacle.
//   - ErrNoPath             if the goal is unreachable (expected outcome).
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
