// Package scenario loads and stores one path-planning problem instance
// as YAML: arena dimensions, start, goal, and obstacle cells.
//
// What:
//
//   - Scenario is the wire form of one problem instance; Coord marshals
//     cells as compact two-element [x, y] sequences.
//   - Two spellings: explicit coordinate fields, or an ASCII "map" block
//     where '.' is free, '#' an obstacle, 'S' the start, 'G' the goal,
//     one row per line with the top line at the highest y. The two are
//     mutually exclusive.
//   - Default() is the built-in canonical instance: a 4×4 arena, start
//     (0,0), goal (3,3), obstacles (1,1), (1,2), (2,2).
//   - Validate checks every precondition before any search runs, and
//     Field builds the grid.Field the engine consumes.
//
// Wire example:
//
//	name: canonical
//	width: 4
//	height: 4
//	start: [0, 0]
//	goal: [3, 3]
//	obstacles: [[1, 1], [1, 2], [2, 2]]
//
// Errors:
//
//   - ErrBadDimensions:      width or height below 1.
//   - ErrMissingEndpoint:    start or goal absent.
//   - ErrStartOutOfBounds, ErrGoalOutOfBounds, ErrObstacleOutOfBounds.
//   - ErrStartBlocked, ErrGoalBlocked: endpoint on an obstacle.
//   - ErrMapConflict: map block combined with coordinate fields.
//   - ErrMapMarker:   not exactly one S and one G in the map block.
//   - ErrMapShape:    ragged rows or an unknown map character.
package scenario
