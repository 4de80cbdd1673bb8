package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	logLevel  string
	logFormat string

	solveScenario string
	solveOut      string
	solveCellSize int
	solveTrace    bool
	solveNoRender bool
	solveQuiet    bool

	initScenario  string
	checkScenario string

	rootCmd = &cobra.Command{
		Use:   "gridnav",
		Short: "Plan shortest collision-free grid routes and render them",
		Long: `gridnav runs breadth-first search over a small 2D grid to find the
shortest collision-free route between two cells under 8-directional
adjacency, then renders the arena and the route to a PNG image.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setupLogging,
	}

	solveCmd = &cobra.Command{
		Use:   "solve",
		Short: "Search the scenario's arena and render the shortest route",
		RunE:  runSolve,
	}

	scenarioCmd = &cobra.Command{
		Use:   "scenario",
		Short: "Create and inspect scenario files",
	}
	scenarioInitCmd = &cobra.Command{
		Use:   "init",
		Short: "Write the canonical scenario as YAML",
		RunE:  runScenarioInit,
	}
	scenarioCheckCmd = &cobra.Command{
		Use:   "check",
		Short: "Validate a scenario file and summarize it",
		RunE:  runScenarioCheck,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format: text or json")

	solveCmd.Flags().StringVar(&solveScenario, "scenario", "", "scenario YAML file (canonical instance when omitted)")
	solveCmd.Flags().StringVar(&solveOut, "out", "robot_path.png", "output PNG file")
	solveCmd.Flags().IntVar(&solveCellSize, "cell-size", 96, "pixel size of one rendered cell")
	solveCmd.Flags().BoolVar(&solveTrace, "trace", false, "log every search expansion step")
	solveCmd.Flags().BoolVar(&solveNoRender, "no-render", false, "skip writing the PNG artifact")
	solveCmd.Flags().BoolVar(&solveQuiet, "quiet", false, "suppress the step list and movement log")

	scenarioInitCmd.Flags().StringVar(&initScenario, "scenario", "", "destination file (stdout when omitted)")
	scenarioCheckCmd.Flags().StringVar(&checkScenario, "scenario", "", "scenario YAML file to validate")
	_ = scenarioCheckCmd.MarkFlagRequired("scenario")

	scenarioCmd.AddCommand(scenarioInitCmd, scenarioCheckCmd)
	rootCmd.AddCommand(solveCmd, scenarioCmd)
}

// setupLogging installs the process-wide slog logger from the
// persistent flags. Logs go to stderr so stdout stays parseable.
func setupLogging(cmd *cobra.Command, args []string) error {
	var level slog.Level
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("unknown log level %q", logLevel)
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	switch strings.ToLower(logFormat) {
	case "text":
		handler = slog.NewTextHandler(os.Stderr, opts)
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, opts)
	default:
		return fmt.Errorf("unknown log format %q", logFormat)
	}
	slog.SetDefault(slog.New(handler))
	return nil
}
