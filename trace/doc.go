// Package trace bridges the bfs hook surface to structured logging:
// a Tracer turns enqueue, dequeue, and expansion events into slog
// records so a search run can be followed step by step.
//
// What:
//
//   - Tracer binds a *slog.Logger and a level to the bfs hooks.
//   - Options() returns ready-made bfs.Option values to splice into a
//     FindPath call.
//   - WithLogger / FromContext pass a logger through context.Context,
//     falling back to slog.Default when none is set.
//
// Why:
//
//   - The search engine stays pure: it never imports a logger. Tracing
//     is an observer the caller opts into, and it cannot change the
//     computed path.
//
// Record shapes:
//
//	enqueue cell=(x,y) depth=d
//	dequeue cell=(x,y) depth=d
//	expand  cell=(x,y) free=[...] blocked=[...]
package trace
