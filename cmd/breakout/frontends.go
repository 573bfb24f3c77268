package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BlueyDragon/mdn-breakout-game/internal/registry"
)

var frontendsCmd = &cobra.Command{
	Use:   "frontends",
	Short: "List all available frontends",
	Long:  `Shows a list of all frontends the game can be played with.`,
	Args:  cobra.NoArgs,
	Run:   runFrontends,
}

func runFrontends(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	frontends := registry.List()

	if len(frontends) == 0 {
		fmt.Fprintln(out, "No frontends available.")
		return
	}

	fmt.Fprintln(out, "Available frontends:")
	fmt.Fprintln(out)

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, f := range frontends {
		maxNameLen = max(maxNameLen, len(f.Name))
	}

	// Print header
	fmt.Fprintf(out, "  %-*s  %s\n", maxNameLen, "Name", "Description")
	fmt.Fprintf(out, "  %-*s  %s\n", maxNameLen, "----", "-----------")

	for _, f := range frontends {
		fmt.Fprintf(out, "  %-*s  %s\n", maxNameLen, f.Name, f.Description)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'breakout play --frontend <name>' to play.")
}
