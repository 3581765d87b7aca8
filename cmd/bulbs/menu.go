package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bulbs/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Interactive level picker",
	Long: `Pick levels, play them and browse records in one session.
Leaving a level returns to the picker.`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagSpeed, "speed", "", "Speed preset: relaxed, normal, fast")
}

func runMenu(_ *cobra.Command, _ []string) {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	err := tui.RunSession(tui.SessionDeps{
		Store:  store,
		Levels: levelLoader(),
		Game:   loadConfig(flagSpeed),
		Logger: logger,
	}, runtimeConfig(), playerName())
	if err != nil {
		fail("%v", err)
	}
}
