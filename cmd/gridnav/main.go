// Command gridnav plans a shortest collision-free route for a point
// robot on a small 2D grid and renders the arena and path to a PNG.
package main

import (
	"fmt"
	"log/slog"
	"os"
)

func main() {
	// Minimal logger until the persistent flags configure the real one.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
