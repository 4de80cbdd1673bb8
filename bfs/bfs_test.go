package bfs_test

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"reflect"
	"sync"
	"testing"

	"github.com/katalvlaran/gridnav/bfs"
	"github.com/katalvlaran/gridnav/grid"
)

// canonicalField builds the 4×4 arena with the three center obstacles
// that the default problem instance uses.
func canonicalField(t testing.TB) *grid.Field {
	t.Helper()
	f, err := grid.New(4, 4,
		[]grid.Cell{{X: 1, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 2}},
		grid.DefaultOptions())
	if err != nil {
		t.Fatalf("building canonical field: %v", err)
	}
	return f
}

// emptyField builds an obstacle-free w×h arena.
func emptyField(t testing.TB, w, h int) *grid.Field {
	t.Helper()
	f, err := grid.New(w, h, nil, grid.DefaultOptions())
	if err != nil {
		t.Fatalf("building %d×%d field: %v", w, h, err)
	}
	return f
}

// assertValidPath checks the structural path invariants: endpoints,
// free cells only, and exactly one 8-directional move per step.
func assertValidPath(t *testing.T, f *grid.Field, start, goal grid.Cell, path []grid.Cell) {
	t.Helper()
	if len(path) == 0 {
		t.Fatal("empty path")
	}
	if path[0] != start {
		t.Errorf("path starts at %v; want %v", path[0], start)
	}
	if path[len(path)-1] != goal {
		t.Errorf("path ends at %v; want %v", path[len(path)-1], goal)
	}
	for i, c := range path {
		if !f.Free(c) {
			t.Errorf("path[%d] = %v is not a free cell", i, c)
		}
		if i > 0 && !path[i-1].Step(c) {
			t.Errorf("path[%d-1]→path[%d]: %v→%v is not one move", i, i, path[i-1], c)
		}
	}
}

// TestFindPath_Errors verifies that invalid inputs and options are rejected.
func TestFindPath_Errors(t *testing.T) {
	f := canonicalField(t)
	start, goal := grid.Cell{X: 0, Y: 0}, grid.Cell{X: 3, Y: 3}

	// nil field
	if _, err := bfs.FindPath(nil, start, goal); !errors.Is(err, bfs.ErrNilField) {
		t.Errorf("nil field: want ErrNilField, got %v", err)
	}
	// negative MaxDepth is a violation
	if _, err := bfs.FindPath(f, start, goal, bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
	// endpoints outside bounds
	if _, err := bfs.FindPath(f, grid.Cell{X: -1, Y: 0}, goal); !errors.Is(err, bfs.ErrStartOutOfBounds) {
		t.Errorf("start out of bounds: want ErrStartOutOfBounds, got %v", err)
	}
	if _, err := bfs.FindPath(f, start, grid.Cell{X: 4, Y: 4}); !errors.Is(err, bfs.ErrGoalOutOfBounds) {
		t.Errorf("goal out of bounds: want ErrGoalOutOfBounds, got %v", err)
	}
	// endpoints on obstacles
	if _, err := bfs.FindPath(f, grid.Cell{X: 1, Y: 1}, goal); !errors.Is(err, bfs.ErrStartBlocked) {
		t.Errorf("blocked start: want ErrStartBlocked, got %v", err)
	}
	if _, err := bfs.FindPath(f, start, grid.Cell{X: 2, Y: 2}); !errors.Is(err, bfs.ErrGoalBlocked) {
		t.Errorf("blocked goal: want ErrGoalBlocked, got %v", err)
	}
}

// TestFindPath_Canonical pins the exact route of the default instance:
// with the fixed enumeration order the tie among 4-move paths always
// resolves to the same cells.
func TestFindPath_Canonical(t *testing.T) {
	f := canonicalField(t)
	start, goal := grid.Cell{X: 0, Y: 0}, grid.Cell{X: 3, Y: 3}

	res, err := bfs.FindPath(f, start, goal)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []grid.Cell{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 1}, {X: 3, Y: 2}, {X: 3, Y: 3},
	}
	if !reflect.DeepEqual(res.Path, want) {
		t.Errorf("Path = %v; want %v", res.Path, want)
	}
	if res.Moves() != 4 {
		t.Errorf("Moves() = %d; want 4", res.Moves())
	}
	assertValidPath(t, f, start, goal, res.Path)
}

// TestFindPath_ObstacleFree verifies diagonal moves cost the same as
// orthogonal ones: the empty 4×4 corner-to-corner route is the pure
// diagonal, 3 moves.
func TestFindPath_ObstacleFree(t *testing.T) {
	f := emptyField(t, 4, 4)
	res, err := bfs.FindPath(f, grid.Cell{X: 0, Y: 0}, grid.Cell{X: 3, Y: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []grid.Cell{
		{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3},
	}
	if !reflect.DeepEqual(res.Path, want) {
		t.Errorf("Path = %v; want %v", res.Path, want)
	}
}

// TestFindPath_StartEqualsGoal covers the degenerate zero-move path.
func TestFindPath_StartEqualsGoal(t *testing.T) {
	f := canonicalField(t)
	c := grid.Cell{X: 3, Y: 0}
	res, err := bfs.FindPath(f, c, c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []grid.Cell{c}; !reflect.DeepEqual(res.Path, want) {
		t.Errorf("Path = %v; want %v", res.Path, want)
	}
	if res.Moves() != 0 {
		t.Errorf("Moves() = %d; want 0", res.Moves())
	}
}

// TestFindPath_WallNoPath spans rows 1 and 2 with obstacles so no
// 8-connected gap remains between (0,0) and (0,3).
func TestFindPath_WallNoPath(t *testing.T) {
	wall := make([]grid.Cell, 0, 8)
	for x := 0; x < 4; x++ {
		wall = append(wall, grid.Cell{X: x, Y: 1}, grid.Cell{X: x, Y: 2})
	}
	f, err := grid.New(4, 4, wall, grid.DefaultOptions())
	if err != nil {
		t.Fatalf("building walled field: %v", err)
	}
	_, err = bfs.FindPath(f, grid.Cell{X: 0, Y: 0}, grid.Cell{X: 0, Y: 3})
	if !errors.Is(err, bfs.ErrNoPath) {
		t.Errorf("walled field: want ErrNoPath, got %v", err)
	}
}

// TestFindPath_EnclosedGoal rings the goal with obstacles.
func TestFindPath_EnclosedGoal(t *testing.T) {
	ring := []grid.Cell{
		{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 1},
		{X: 1, Y: 2}, {X: 3, Y: 2},
		{X: 1, Y: 3}, {X: 2, Y: 3}, {X: 3, Y: 3},
	}
	f, err := grid.New(5, 5, ring, grid.DefaultOptions())
	if err != nil {
		t.Fatalf("building ringed field: %v", err)
	}
	_, err = bfs.FindPath(f, grid.Cell{X: 0, Y: 0}, grid.Cell{X: 2, Y: 2})
	if !errors.Is(err, bfs.ErrNoPath) {
		t.Errorf("enclosed goal: want ErrNoPath, got %v", err)
	}
}

// TestFindPath_Determinism re-runs the canonical search and expects the
// identical path every time.
func TestFindPath_Determinism(t *testing.T) {
	f := canonicalField(t)
	start, goal := grid.Cell{X: 0, Y: 0}, grid.Cell{X: 3, Y: 3}

	first, err := bfs.FindPath(f, start, goal)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 20; i++ {
		res, err := bfs.FindPath(f, start, goal)
		if err != nil {
			t.Fatalf("run %d: unexpected error: %v", i, err)
		}
		if !reflect.DeepEqual(res.Path, first.Path) {
			t.Fatalf("run %d: Path = %v; want %v", i, res.Path, first.Path)
		}
	}
}

// oracleDistance computes the exact move distance by exhaustive unit-weight
// relaxation to a fixpoint, independent of the frontier discipline under
// test. Returns -1 when the goal is unreachable.
func oracleDistance(f *grid.Field, start, goal grid.Cell) int {
	const inf = int(^uint(0) >> 2)
	dist := make([]int, f.Size())
	for i := range dist {
		dist[i] = inf
	}
	dist[f.Index(start)] = 0
	for changed := true; changed; {
		changed = false
		for i := range dist {
			c := f.CellAt(i)
			if dist[i] == inf || !f.Free(c) {
				continue
			}
			for _, n := range f.Neighbors(c) {
				if dist[i]+1 < dist[f.Index(n)] {
					dist[f.Index(n)] = dist[i] + 1
					changed = true
				}
			}
		}
	}
	if dist[f.Index(goal)] == inf {
		return -1
	}
	return dist[f.Index(goal)]
}

// TestFindPath_RandomLayouts cross-checks optimality and validity against
// the relaxation oracle over random obstacle layouts on grids up to 12×12.
func TestFindPath_RandomLayouts(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 300; trial++ {
		w := 2 + rng.Intn(11) // 2..12
		h := 2 + rng.Intn(11)
		start := grid.Cell{X: 0, Y: 0}
		goal := grid.Cell{X: w - 1, Y: h - 1}

		var obstacles []grid.Cell
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				c := grid.Cell{X: x, Y: y}
				if c == start || c == goal {
					continue
				}
				if rng.Float64() < 0.3 {
					obstacles = append(obstacles, c)
				}
			}
		}
		f, err := grid.New(w, h, obstacles, grid.DefaultOptions())
		if err != nil {
			t.Fatalf("trial %d: building %d×%d field: %v", trial, w, h, err)
		}

		want := oracleDistance(f, start, goal)
		res, err := bfs.FindPath(f, start, goal)
		switch {
		case want < 0:
			if !errors.Is(err, bfs.ErrNoPath) {
				t.Fatalf("trial %d (%d×%d): oracle says unreachable, FindPath returned %v", trial, w, h, err)
			}
		case err != nil:
			t.Fatalf("trial %d (%d×%d): oracle distance %d, FindPath error %v", trial, w, h, want, err)
		default:
			if res.Moves() != want {
				t.Fatalf("trial %d (%d×%d): Moves() = %d; oracle says %d", trial, w, h, res.Moves(), want)
			}
			assertValidPath(t, f, start, goal, res.Path)
		}
	}
}

// TestFindPath_MaxDepth bounds the canonical search: the goal sits 4
// moves out, so a limit of 3 excludes it and 4 admits it.
func TestFindPath_MaxDepth(t *testing.T) {
	f := canonicalField(t)
	start, goal := grid.Cell{X: 0, Y: 0}, grid.Cell{X: 3, Y: 3}

	if _, err := bfs.FindPath(f, start, goal, bfs.WithMaxDepth(3)); !errors.Is(err, bfs.ErrNoPath) {
		t.Errorf("MaxDepth=3: want ErrNoPath, got %v", err)
	}
	res, err := bfs.FindPath(f, start, goal, bfs.WithMaxDepth(4))
	if err != nil {
		t.Fatalf("MaxDepth=4: unexpected error: %v", err)
	}
	if res.Moves() != 4 {
		t.Errorf("MaxDepth=4: Moves() = %d; want 4", res.Moves())
	}
}

// TestFindPath_FilterNeighbor vetoes diagonal moves, forcing the empty
// 4×4 corner-to-corner route up to its Manhattan length.
func TestFindPath_FilterNeighbor(t *testing.T) {
	f := emptyField(t, 4, 4)
	orthogonalOnly := func(from, to grid.Cell) bool {
		return from.X == to.X || from.Y == to.Y
	}
	res, err := bfs.FindPath(f,
		grid.Cell{X: 0, Y: 0}, grid.Cell{X: 3, Y: 3},
		bfs.WithFilterNeighbor(orthogonalOnly))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Moves() != 6 {
		t.Errorf("Moves() = %d; want 6 (orthogonal moves only)", res.Moves())
	}
	for i := 1; i < len(res.Path); i++ {
		if !orthogonalOnly(res.Path[i-1], res.Path[i]) {
			t.Errorf("step %v→%v slipped past the filter", res.Path[i-1], res.Path[i])
		}
	}
}

// TestFindPath_Conn4 checks the 4-directional field yields the same
// Manhattan-length route without any filter.
func TestFindPath_Conn4(t *testing.T) {
	f, err := grid.New(4, 4, nil, grid.Options{Conn: grid.Conn4})
	if err != nil {
		t.Fatalf("building Conn4 field: %v", err)
	}
	res, err := bfs.FindPath(f, grid.Cell{X: 0, Y: 0}, grid.Cell{X: 3, Y: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Moves() != 6 {
		t.Errorf("Moves() = %d; want 6", res.Moves())
	}
}

// TestFindPath_Hooks checks hook ordering and payloads on the canonical
// instance, and that an OnVisit error aborts the search.
func TestFindPath_Hooks(t *testing.T) {
	f := canonicalField(t)
	start, goal := grid.Cell{X: 0, Y: 0}, grid.Cell{X: 3, Y: 3}

	var enq, deq []grid.Cell
	expanded := 0
	res, err := bfs.FindPath(f, start, goal,
		bfs.WithOnEnqueue(func(c grid.Cell, _ int) { enq = append(enq, c) }),
		bfs.WithOnDequeue(func(c grid.Cell, _ int) { deq = append(deq, c) }),
		bfs.WithOnExpand(func(cur grid.Cell, free, blocked []grid.Cell) {
			expanded++
			for _, n := range free {
				if !f.Free(n) {
					t.Errorf("expand %v: %v reported free but is not", cur, n)
				}
			}
			for _, n := range blocked {
				if !f.Blocked(n) {
					t.Errorf("expand %v: %v reported blocked but is not", cur, n)
				}
			}
		}),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(enq) == 0 || enq[0] != start {
		t.Errorf("first enqueue = %v; want %v", enq, start)
	}
	if len(enq) != len(res.Depth) {
		t.Errorf("enqueued %d cells; Depth records %d", len(enq), len(res.Depth))
	}
	if !reflect.DeepEqual(deq, res.Order) {
		t.Errorf("dequeue sequence %v differs from Order %v", deq, res.Order)
	}
	// the goal is dequeued but never expanded
	if expanded != len(res.Order)-1 {
		t.Errorf("expanded %d cells; want %d", expanded, len(res.Order)-1)
	}

	// OnVisit error aborts and propagates wrapped
	boom := fmt.Errorf("halt here")
	visits := 0
	_, err = bfs.FindPath(f, start, goal,
		bfs.WithOnVisit(func(grid.Cell, int) error {
			visits++
			if visits == 2 {
				return boom
			}
			return nil
		}),
	)
	if !errors.Is(err, boom) {
		t.Errorf("OnVisit abort: want wrapped %v, got %v", boom, err)
	}
	if visits != 2 {
		t.Errorf("visits after abort = %d; want 2", visits)
	}
}

// TestFindPath_Cancellation aborts immediately on a cancelled context.
func TestFindPath_Cancellation(t *testing.T) {
	f := canonicalField(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.FindPath(f,
		grid.Cell{X: 0, Y: 0}, grid.Cell{X: 3, Y: 3},
		bfs.WithContext(ctx))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("cancelled context: want context.Canceled, got %v", err)
	}
}

// TestFindPath_ConcurrentSafety runs many searches over one shared Field.
func TestFindPath_ConcurrentSafety(t *testing.T) {
	f := canonicalField(t)
	start, goal := grid.Cell{X: 0, Y: 0}, grid.Cell{X: 3, Y: 3}
	want, err := bfs.FindPath(f, start, goal)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := bfs.FindPath(f, start, goal)
			if err != nil {
				t.Errorf("concurrent run: %v", err)
				return
			}
			if !reflect.DeepEqual(res.Path, want.Path) {
				t.Errorf("concurrent run: Path = %v; want %v", res.Path, want.Path)
			}
		}()
	}
	wg.Wait()
}
