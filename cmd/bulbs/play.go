package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-bulbs/internal/games/bulbs"
	"github.com/vovakirdan/tui-bulbs/internal/games/bulbs/levels"
	"github.com/vovakirdan/tui-bulbs/internal/platform/tui"
	"github.com/vovakirdan/tui-bulbs/internal/registry"
)

var (
	flagFile  string
	flagWatch bool
	flagSpeed string
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play a level",
	Long: `Start playing a level in the terminal. Without a level the picker
opens first.

Controls:
  Arrows/WASD/HJKL - Walk (hold to keep walking)
  R                - Restart the level
  P/Space          - Pause
  Ctrl+S           - Save a text screenshot
  Esc/Q            - Quit

Speed presets: relaxed, normal, fast.

Examples:
  bulbs play
  bulbs play 03-lights-out
  bulbs play --speed fast 04-long-hall
  bulbs play --file ./draft.skb --watch`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagFile, "file", "", "Play a level file instead of a level ID")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the level when its file changes")
	playCmd.Flags().StringVar(&flagSpeed, "speed", "", "Speed preset: relaxed, normal, fast")
}

// selectLevel applies the level arguments to the registry factory and
// returns the watcher asked for, if any. It reports false when the user
// left the picker.
func selectLevel(args []string, loader *levels.Loader) (*levels.Watcher, bool) {
	bulbs.SetStartLoader(loader)

	if flagFile != "" {
		if _, err := levels.LoadPath(flagFile); err != nil {
			fail("%v", err)
		}
		bulbs.SetStartFile(flagFile)
		if flagWatch {
			w, err := levels.WatchFile(flagFile)
			if err != nil {
				fail("%v", err)
			}
			return w, true
		}
		return nil, true
	}

	var id string
	switch {
	case len(args) == 1:
		id = args[0]
		if _, err := loader.LoadByID(id); err != nil {
			fail("%v\nRun 'bulbs list' to see available levels.", err)
		}
	case term.IsTerminal(int(os.Stdin.Fd())):
		entries, err := tui.LevelEntries(loader, nil)
		if err != nil {
			fail("%v", err)
		}
		sel, err := tui.RunLevelSelector(entries, runtimeConfig())
		if err != nil {
			fail("%v", err)
		}
		if sel == nil {
			return nil, false
		}
		id = sel.LevelID
	}
	bulbs.SetStartLevel(id)

	if !flagWatch {
		return nil, true
	}
	if flagLevels == "" {
		fail("--watch needs --file or --levels; built-in levels cannot change")
	}
	w, err := levels.WatchTree(flagLevels)
	if err != nil {
		fail("%v", err)
	}
	return w, true
}

func runPlay(_ *cobra.Command, args []string) {
	cfg := loadConfig(flagSpeed)
	bulbs.SetStartConfig(cfg)

	watcher, ok := selectLevel(args, levelLoader())
	if !ok {
		return
	}
	if watcher != nil {
		defer watcher.Close()
	}

	game, err := registry.Create(bulbs.ID)
	if err != nil {
		fail("creating game: %v", err)
	}

	store := openStore()
	runErr := tui.Run(game, store, runtimeConfig(), cfg, tui.Options{
		Player:  playerName(),
		Watcher: watcher,
		Logger:  logger,
	})
	if store != nil {
		store.Close()
	}
	if runErr != nil {
		fail("running game: %v", runErr)
	}
}
