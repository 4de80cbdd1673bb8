package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridnav/grid"
	"github.com/katalvlaran/gridnav/scenario"
)

// runScenarioInit writes the canonical instance as YAML, to the named
// file or to stdout.
func runScenarioInit(cmd *cobra.Command, args []string) error {
	out, err := scenario.Default().Encode()
	if err != nil {
		return err
	}
	if initScenario == "" {
		_, err = cmd.OutOrStdout().Write(out)
		return err
	}
	if err := os.WriteFile(initScenario, out, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", initScenario, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", initScenario)
	return nil
}

// runScenarioCheck validates the file and prints a one-look summary.
func runScenarioCheck(cmd *cobra.Command, args []string) error {
	sc, err := scenario.Load(checkScenario)
	if err != nil {
		return err
	}
	field, err := sc.Field(grid.DefaultOptions())
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	name := sc.Name
	if name == "" {
		name = checkScenario
	}
	fmt.Fprintf(w, "%s: valid\n", name)
	fmt.Fprintf(w, "  arena:     %d×%d\n", field.Width(), field.Height())
	fmt.Fprintf(w, "  start:     %v\n", sc.Start.Cell())
	fmt.Fprintf(w, "  goal:      %v\n", sc.Goal.Cell())
	fmt.Fprintf(w, "  obstacles: %v\n", field.Obstacles())
	return nil
}
