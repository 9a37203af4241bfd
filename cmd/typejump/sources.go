package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/typejump/internal/registry"
)

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "List all word sources",
	Long:  `Shows every word source that can be selected with --words or words.source.`,
	Args:  cobra.NoArgs,
	Run:   runSources,
}

func runSources(_ *cobra.Command, _ []string) {
	sources := registry.List()

	if len(sources) == 0 {
		fmt.Println("No word sources available.")
		return
	}

	fmt.Println("Available word sources:")
	fmt.Println()

	maxNameLen := 4 // "Name" header
	for _, s := range sources {
		if len(s.Name) > maxNameLen {
			maxNameLen = len(s.Name)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxNameLen, "Name", "Description")
	fmt.Printf("  %-*s  %s\n", maxNameLen, "----", "-----------")

	for _, s := range sources {
		fmt.Printf("  %-*s  %s\n", maxNameLen, s.Name, s.Description)
	}

	fmt.Println()
	fmt.Println("Run 'typejump play --words <name>' to use one.")
}
