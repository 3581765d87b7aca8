// bulbs is a tile push puzzle for the terminal: walk to the exit and
// shove blocks out of the way.
//
// Usage:
//
//	bulbs list               - List levels
//	bulbs play [level]       - Play a level (picker when omitted)
//	bulbs menu               - Level picker, records and play in one session
//	bulbs records [level]    - Show best completions
//	bulbs check <file>...    - Validate level files
//	bulbs serve              - Start SSH server for remote play
//	bulbs window [level]     - Play in a graphical window
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 60)
//	--db <path>       - Set database path (default: ~/.bulbs/records.db)
//	--config <path>   - Game config YAML
//	--levels <dir>    - Level directory (default: built-in levels)
//	--policy <name>   - Push policy override: overlap or strict
//	--verbose         - Debug logging
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-bulbs/internal/config"
	"github.com/vovakirdan/tui-bulbs/internal/core"
	"github.com/vovakirdan/tui-bulbs/internal/games/bulbs/levels"
	"github.com/vovakirdan/tui-bulbs/internal/platform/tui"
	"github.com/vovakirdan/tui-bulbs/internal/storage"
)

var (
	// Global flags
	flagFPS     int
	flagDBPath  string
	flagConfig  string
	flagLevels  string
	flagPolicy  string
	flagMono    bool
	flagVerbose bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "bulbs"})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bulbs",
	Short: "Bulbs - a tile push puzzle for your terminal",
	Long: `Bulbs is a grid puzzle: walk to the exit, pushing blocks out of
your way. Blocks move one cell per push and never push each other;
lightbulbs cannot be moved at all.

Available commands:
  list     - Show all levels
  play     - Play a level in the terminal
  menu     - Interactive level picker
  records  - View best completions
  check    - Validate level files
  serve    - Start SSH server for remote play
  window   - Play in a graphical window

Examples:
  bulbs list
  bulbs play 02-shove
  bulbs play --file ./my-level.skb --watch
  bulbs menu --levels ./levels
  bulbs serve --ssh :2222`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagVerbose {
			logger.SetLevel(log.DebugLevel)
		}
		if flagMono {
			tui.SetTheme(tui.MonochromeTheme())
		}
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.bulbs/records.db", "Path to records database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Level directory (default: built-in levels)")
	rootCmd.PersistentFlags().StringVar(&flagPolicy, "policy", "", "Push policy override: overlap or strict")
	rootCmd.PersistentFlags().BoolVar(&flagMono, "mono", false, "Monochrome menus")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(recordsCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(windowCmd)
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// loadConfig reads the game config and applies command line overrides.
func loadConfig(speed string) config.BulbsConfig {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fail("%v", err)
	}
	if speed != "" {
		if err := config.ApplySpeedPreset(&cfg, config.SpeedPreset(speed)); err != nil {
			fail("%v", err)
		}
	}
	if flagPolicy != "" {
		cfg.Movement.PushPolicy = flagPolicy
		if err := cfg.Validate(); err != nil {
			fail("%v", err)
		}
	}
	logger.Debug("config loaded",
		"step", cfg.Movement.StepDuration,
		"policy", cfg.Movement.PushPolicy,
		"hold", cfg.Movement.HoldWindow,
	)
	return cfg
}

// levelLoader returns the loader for --levels, or the built-in levels.
func levelLoader() *levels.Loader {
	l := levels.Builtin()
	if flagLevels != "" {
		l = levels.NewLoader(flagLevels)
	}
	l.Logger = logger
	return l
}

// openStore opens the records database. Failure is not fatal: the game
// runs without records.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open records database", "error", err)
		return nil
	}
	return store
}

// runtimeConfig sizes the game to the terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}
}

func playerName() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "player"
}
