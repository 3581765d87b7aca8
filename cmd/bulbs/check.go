package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bulbs/internal/games/bulbs/core"
	"github.com/vovakirdan/tui-bulbs/internal/games/bulbs/levels"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Validate level files",
	Long: `Parse each level file and report problems with their line number.
Exits with status 1 if any file is invalid.

Examples:
  bulbs check ./levels/*.skb`,
	Args: cobra.MinimumNArgs(1),
	Run:  runCheck,
}

func runCheck(_ *cobra.Command, args []string) {
	failed := 0
	for _, path := range args {
		lvl, err := levels.LoadPath(path)
		if err != nil {
			failed++
			var fe *core.LevelFormatError
			if errors.As(err, &fe) && fe.Line > 0 {
				fmt.Printf("FAIL  %s: grid line %d: %v\n", path, fe.Line, fe.Reason)
			} else {
				fmt.Printf("FAIL  %s: %v\n", path, err)
			}
			continue
		}

		built, err := lvl.Build()
		if err != nil {
			failed++
			fmt.Printf("FAIL  %s: %v\n", path, err)
			continue
		}
		fmt.Printf("ok    %s  %s (%dx%d, %d entities)\n", path, lvl.ID, lvl.Width, lvl.Height, len(built.Entities))
	}

	if failed > 0 {
		fmt.Printf("\n%d of %d files invalid\n", failed, len(args))
		os.Exit(1)
	}
}
