package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/learning-adventure/internal/player"
	"github.com/vovakirdan/learning-adventure/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List players and activities",
	Long:  `Shows the players and every activity registered in the game.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	fmt.Println("Players:")
	for _, p := range player.All {
		fmt.Printf("  %-6s  %s\n", p, p.Name())
	}
	fmt.Println()

	activities := registry.List()
	if len(activities) == 0 {
		fmt.Println("No activities available.")
		return
	}

	fmt.Println("Activities:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, a := range activities {
		if len(a.ID) > maxIDLen {
			maxIDLen = len(a.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Menu label")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "----------")
	for _, a := range activities {
		fmt.Printf("  %-*s  %s\n", maxIDLen, a.ID, a.Label)
	}

	fmt.Println()
	fmt.Println("Run 'adventure scores <player> <id>' to see scores.")
}
