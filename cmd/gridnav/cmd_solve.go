package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridnav/bfs"
	"github.com/katalvlaran/gridnav/grid"
	"github.com/katalvlaran/gridnav/render"
	"github.com/katalvlaran/gridnav/scenario"
	"github.com/katalvlaran/gridnav/trace"
)

// runSolve loads the scenario, runs the search, prints the route with
// its movement log, and renders the PNG artifact.
func runSolve(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	sc, err := loadScenario(solveScenario)
	if err != nil {
		return err
	}
	field, err := sc.Field(grid.DefaultOptions())
	if err != nil {
		return err
	}
	start, goal := sc.Start.Cell(), sc.Goal.Cell()

	var opts []bfs.Option
	if solveTrace {
		opts = trace.New(slog.Default()).Options()
	}

	res, err := bfs.FindPath(field, start, goal, opts...)
	if errors.Is(err, bfs.ErrNoPath) {
		fmt.Fprintf(out, "no path exists from %v to %v in this arena\n", start, goal)
		return err
	}
	if err != nil {
		return err
	}

	if !solveQuiet {
		printReport(out, sc, field, res)
	}

	if solveNoRender {
		return nil
	}
	ropts := render.DefaultOptions()
	ropts.CellSize = solveCellSize
	ropts.Title = sc.Name
	if err := render.SavePNG(solveOut, field, start, goal, res.Path, ropts); err != nil {
		return err
	}
	slog.Info("rendered path image", "file", solveOut, "moves", res.Moves())
	return nil
}

// loadScenario reads the named file, or falls back to the canonical
// built-in instance.
func loadScenario(path string) (*scenario.Scenario, error) {
	if path == "" {
		return scenario.Default(), nil
	}
	return scenario.Load(path)
}

// printReport writes the banner, the step list with START/GOAL labels,
// and the per-step movement log.
func printReport(w io.Writer, sc *scenario.Scenario, field *grid.Field, res *bfs.Result) {
	name := sc.Name
	if name == "" {
		name = "scenario"
	}
	fmt.Fprintf(w, "=== %s: %d×%d arena, %d obstacles ===\n",
		name, field.Width(), field.Height(), len(field.Obstacles()))
	fmt.Fprintf(w, "shortest path: %d moves, %d cells expanded\n\n", res.Moves(), res.Expanded())

	last := len(res.Path) - 1
	for i, c := range res.Path {
		switch i {
		case 0:
			fmt.Fprintf(w, "  step %d: %v  [START]\n", i, c)
		case last:
			fmt.Fprintf(w, "  step %d: %v  [GOAL]\n", i, c)
		default:
			fmt.Fprintf(w, "  step %d: %v\n", i, c)
		}
	}

	fmt.Fprintln(w, "\nmovement log:")
	for i, c := range res.Path {
		if i == last {
			fmt.Fprintf(w, "  at %v: goal reached\n", c)
			break
		}
		free, blocked := field.PartitionNeighbors(c)
		fmt.Fprintf(w, "  at %v: free neighbours %v, blocked %v\n", c, free, blocked)
		fmt.Fprintf(w, "    -> moves to %v\n", res.Path[i+1])
	}
}
