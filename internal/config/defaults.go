package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/bulbs.yaml
var defaultBulbsYAML []byte

// DefaultBulbsConfig returns the built-in configuration. It matches
// defaults/bulbs.yaml and is used when even the embedded file fails.
func DefaultBulbsConfig() BulbsConfig {
	return BulbsConfig{
		Display: DisplayConfig{
			ViewWidth:   200,
			ViewHeight:  200,
			CellColumns: 2,
			ShowHUD:     true,
		},
		Movement: MovementConfig{
			StepDuration: 150 * time.Millisecond,
			PushPolicy:   "overlap",
			HoldWindow:   100 * time.Millisecond,
		},
		Keys: KeyConfig{
			Up:      []string{"up", "w", "k"},
			Down:    []string{"down", "s", "j"},
			Left:    []string{"left", "a", "h"},
			Right:   []string{"right", "d", "l"},
			Restart: []string{"r"},
			Pause:   []string{"p", " "},
			Back:    []string{"esc", "b"},
			Quit:    []string{"q", "ctrl+c"},
		},
		Scoring: ScoringConfig{
			Base:        1000,
			MovePenalty: 10,
			PushPenalty: 5,
			Minimum:     1,
		},
	}
}

// DefaultYAML returns the embedded default file, for `bulbs config`-style
// dumps and for tests.
func DefaultYAML() []byte {
	return defaultBulbsYAML
}
