package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bulbs/internal/platform/tui"
	"github.com/vovakirdan/tui-bulbs/internal/storage"
)

var (
	flagLimit       int
	flagClear       bool
	flagInteractive bool
)

var recordsCmd = &cobra.Command{
	Use:   "records [level]",
	Short: "Show best completions",
	Long: `Display the best completions of a level, fewest moves first.
Without a level, a summary of every solved level is shown.

Examples:
  bulbs records
  bulbs records 02-shove
  bulbs records 02-shove --limit 3
  bulbs records 02-shove -i
  bulbs records 02-shove --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRecords,
}

func init() {
	recordsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of completions to show")
	recordsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the records of the level")
	recordsCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse records in a table")
}

func runRecords(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening records database: %v", err)
	}
	defer store.Close()

	if len(args) == 0 {
		if flagInteractive {
			browseRecords(store, "")
			return
		}
		printSummary(store)
		return
	}

	levelID := args[0]
	switch {
	case flagClear:
		if err := store.ClearCompletions(levelID); err != nil {
			fail("%v", err)
		}
		fmt.Printf("Records of %s cleared.\n", levelID)
	case flagInteractive:
		browseRecords(store, levelID)
	default:
		printLevelRecords(store, levelID)
	}
}

func browseRecords(store *storage.Store, levelID string) {
	entries, err := tui.LevelEntries(levelLoader(), store)
	if err != nil {
		fail("%v", err)
	}
	if _, err := tui.RunRecords(store, entries, levelID, runtimeConfig()); err != nil {
		fail("%v", err)
	}
}

func printSummary(store *storage.Store) {
	stats, err := store.AllLevelStats()
	if err != nil {
		fail("%v", err)
	}
	if len(stats) == 0 {
		fmt.Println("No levels solved yet.")
		return
	}

	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-20s  %-6s  %-6s  %-6s  %s\n", "Level", "Solves", "Moves", "Pushes", "Last played")
	fmt.Printf("  %-20s  %-6s  %-6s  %-6s  %s\n", "-----", "------", "-----", "------", "-----------")
	for _, id := range ids {
		s := stats[id]
		fmt.Printf("  %-20s  %-6d  %-6d  %-6d  %s\n", id, s.Completions, s.BestMoves, s.BestPushes, s.LastPlayed.Format("2006-01-02 15:04"))
	}
}

func printLevelRecords(store *storage.Store, levelID string) {
	records, err := store.BestCompletions(levelID, flagLimit)
	if err != nil {
		fail("%v", err)
	}

	fmt.Printf("Records - %s\n", levelID)
	fmt.Println()

	if len(records) == 0 {
		fmt.Println("No completions recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'bulbs play %s' to set the first record!\n", levelID)
		return
	}

	fmt.Printf("  %-4s  %-5s  %-6s  %-5s  %-8s  %-12s  %s\n", "Rank", "Moves", "Pushes", "Score", "Policy", "Player", "Date")
	fmt.Printf("  %-4s  %-5s  %-6s  %-5s  %-8s  %-12s  %s\n", "----", "-----", "------", "-----", "------", "------", "----")
	for i, c := range records {
		fmt.Printf("  %-4d  %-5d  %-6d  %-5d  %-8s  %-12s  %s\n",
			i+1, c.Moves, c.Pushes, c.Score, c.PushPolicy, c.Player, c.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.LevelStats(levelID); err == nil {
		fmt.Println()
		fmt.Printf("Solved %d times. Best: %d moves, %d pushes, score %d.\n",
			stats.Completions, stats.BestMoves, stats.BestPushes, stats.BestScore)
	}
}
