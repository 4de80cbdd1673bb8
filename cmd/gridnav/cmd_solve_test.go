package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags restores every bound flag variable to its default. The
// command tree is a shared package-level var and pflag keeps parsed
// values across Execute calls, so each test must start from a clean
// flag state.
func resetFlags() {
	logLevel = "info"
	logFormat = "text"
	solveScenario = ""
	solveOut = "robot_path.png"
	solveCellSize = 96
	solveTrace = false
	solveNoRender = false
	solveQuiet = false
	initScenario = ""
	checkScenario = ""
}

// execute runs the root command with args and returns captured stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

// TestSolve_Canonical runs the built-in instance and checks the step
// list and movement log.
func TestSolve_Canonical(t *testing.T) {
	out, err := execute(t, "solve", "--no-render")
	require.NoError(t, err)

	assert.Contains(t, out, "canonical: 4×4 arena, 3 obstacles")
	assert.Contains(t, out, "shortest path: 4 moves")
	assert.Contains(t, out, "step 0: (0,0)  [START]")
	assert.Contains(t, out, "step 1: (1,0)")
	assert.Contains(t, out, "step 2: (2,1)")
	assert.Contains(t, out, "step 3: (3,2)")
	assert.Contains(t, out, "step 4: (3,3)  [GOAL]")
	assert.Contains(t, out, "movement log:")
	assert.Contains(t, out, "at (0,0): free neighbours [(0,1) (1,0)], blocked [(1,1)]")
	assert.Contains(t, out, "-> moves to (1,0)")
	assert.Contains(t, out, "at (3,3): goal reached")
}

// TestSolve_RendersArtifact writes the PNG next to a temp dir.
func TestSolve_RendersArtifact(t *testing.T) {
	png := filepath.Join(t.TempDir(), "route.png")
	_, err := execute(t, "solve", "--quiet", "--out", png)
	require.NoError(t, err)

	info, err := os.Stat(png)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

// TestSolve_FlagStateIsolated runs solve with --no-render and then
// without it: the second run must not inherit the suppressed rendering
// from the first.
func TestSolve_FlagStateIsolated(t *testing.T) {
	_, err := execute(t, "solve", "--quiet", "--no-render")
	require.NoError(t, err)

	png := filepath.Join(t.TempDir(), "after.png")
	_, err = execute(t, "solve", "--quiet", "--out", png)
	require.NoError(t, err)

	info, err := os.Stat(png)
	require.NoError(t, err, "second run must render despite the earlier --no-render")
	assert.Positive(t, info.Size())
}

// TestSolve_NoPath reports the unreachable outcome and fails the run.
func TestSolve_NoPath(t *testing.T) {
	doc := []byte(`name: walled
width: 4
height: 4
start: [0, 0]
goal: [0, 3]
obstacles: [[0, 1], [1, 1], [2, 1], [3, 1], [0, 2], [1, 2], [2, 2], [3, 2]]
`)
	path := filepath.Join(t.TempDir(), "walled.yaml")
	require.NoError(t, os.WriteFile(path, doc, 0o644))

	out, err := execute(t, "solve", "--no-render", "--scenario", path)
	require.Error(t, err)
	assert.Contains(t, out, "no path exists from (0,0) to (0,3)")
}

// TestScenarioInitAndCheck round-trips init → check.
func TestScenarioInitAndCheck(t *testing.T) {
	path := filepath.Join(t.TempDir(), "canonical.yaml")
	out, err := execute(t, "scenario", "init", "--scenario", path)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote")

	out, err = execute(t, "scenario", "check", "--scenario", path)
	require.NoError(t, err)
	assert.Contains(t, out, "canonical: valid")
	assert.Contains(t, out, "arena:     4×4")
	assert.Contains(t, out, "start:     (0,0)")
	assert.Contains(t, out, "goal:      (3,3)")
}
