package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all levels",
	Long:  `Shows the levels of --levels, or the built-in levels, with their size and best record.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	all, err := levelLoader().LoadAll()
	if err != nil {
		fail("%v", err)
	}
	if len(all) == 0 {
		fmt.Println("No levels found.")
		return
	}

	var best map[string]int
	if store := openStore(); store != nil {
		defer store.Close()
		if stats, err := store.AllLevelStats(); err == nil {
			best = make(map[string]int, len(stats))
			for id, s := range stats {
				best[id] = s.BestMoves
			}
		}
	}

	maxIDLen := 2 // "ID" header
	for _, l := range all {
		maxIDLen = max(maxIDLen, len(l.ID))
	}

	fmt.Println("Levels:")
	fmt.Println()
	fmt.Printf("  %-*s  %-24s  %-7s  %s\n", maxIDLen, "ID", "Name", "Size", "Best")
	fmt.Printf("  %-*s  %-24s  %-7s  %s\n", maxIDLen, "--", "----", "----", "----")
	for _, l := range all {
		record := "-"
		if moves, ok := best[l.ID]; ok {
			record = fmt.Sprintf("%d moves", moves)
		}
		fmt.Printf("  %-*s  %-24s  %-7s  %s\n", maxIDLen, l.ID, l.Title(), fmt.Sprintf("%dx%d", l.Width, l.Height), record)
	}

	fmt.Println()
	fmt.Println("Run 'bulbs play <id>' to play a level.")
}
