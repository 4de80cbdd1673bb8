// Package gridnav plans shortest collision-free routes for a point
// robot on small 2D grids — a breadth-first search engine with a PNG
// renderer, a slog tracer, and YAML scenario files around it.
//
// 🚀 What is gridnav?
//
//	A small, deterministic path-planning toolkit:
//		• grid:     Cell, Connectivity (Conn4/Conn8) & the immutable Field arena
//		• bfs:      the search engine — FindPath, hooks, depth limits, filters
//		• render:   the arena and route as a PNG (tiles, markers, legend)
//		• trace:    structured per-step search logs over log/slog
//		• scenario: problem instances as YAML (coordinates or ASCII maps)
//
// ✨ Why gridnav?
//
//   - Deterministic – one fixed neighbor order, one reproducible path
//   - Exact – unit-cost BFS returns provably minimal move counts
//   - Pure core – the engine never touches a file, a logger, or a pixel
//   - Extensible – hooks (OnVisit, OnEnqueue, OnExpand…) for custom logic
//
// Quick ASCII example (the canonical 4×4 instance, y grows upward):
//
//	G = goal, S = start, # = obstacle, * = the 4-move route
//
//	    . . . G
//	    . # # *
//	    . # * .
//	    S * . .
//
// The cmd/gridnav CLI ties it together: solve a scenario, print the
// movement log, and save the rendered route.
//
//	go get github.com/katalvlaran/gridnav
package gridnav
