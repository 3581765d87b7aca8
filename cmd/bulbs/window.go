package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bulbs/internal/games/bulbs"
	"github.com/vovakirdan/tui-bulbs/internal/platform/gl"
	"github.com/vovakirdan/tui-bulbs/internal/platform/gl/atlas"
	"github.com/vovakirdan/tui-bulbs/internal/registry"
)

var (
	flagScale     int
	flagAtlasPath string
)

var windowCmd = &cobra.Command{
	Use:   "window [level]",
	Short: "Play in a graphical window",
	Long: `Open the level in a window. Keys are read directly, so holding a
direction keeps walking without terminal key repeat.

Examples:
  bulbs window 01-first-steps
  bulbs window --scale 4 --file ./draft.skb --watch
  bulbs window --export-atlas sprites.png`,
	Args: cobra.MaximumNArgs(1),
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagScale, "scale", 3, "Window scale of the view")
	windowCmd.Flags().StringVar(&flagFile, "file", "", "Play a level file instead of a level ID")
	windowCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the level when its file changes")
	windowCmd.Flags().StringVar(&flagSpeed, "speed", "", "Speed preset: relaxed, normal, fast")
	windowCmd.Flags().StringVar(&flagAtlasPath, "export-atlas", "", "Write the sprite atlas as PNG and exit")
}

func runWindow(_ *cobra.Command, args []string) {
	if flagAtlasPath != "" {
		exportAtlas(flagAtlasPath)
		return
	}

	bulbs.SetStartConfig(loadConfig(flagSpeed))

	watcher, ok := selectLevel(args, levelLoader())
	if !ok {
		return
	}
	if watcher != nil {
		defer watcher.Close()
	}

	created, err := registry.Create(bulbs.ID)
	if err != nil {
		fail("creating game: %v", err)
	}
	game, ok := created.(*bulbs.Game)
	if !ok {
		fail("game %q has no window frontend", bulbs.ID)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	err = gl.Run(game, gl.Options{
		Scale:    flagScale,
		TickRate: flagFPS,
		Player:   playerName(),
		Store:    store,
		Watcher:  watcher,
		Logger:   logger,
	})
	if err != nil {
		fail("%v", err)
	}
}

func exportAtlas(path string) {
	f, err := os.Create(path)
	if err != nil {
		fail("%v", err)
	}
	if err := atlas.Encode(f); err != nil {
		f.Close()
		fail("encoding atlas: %v", err)
	}
	if err := f.Close(); err != nil {
		fail("%v", err)
	}
	logger.Info("atlas written", "path", path)
}
