// Package config loads the YAML game configuration with embedded defaults.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-bulbs/internal/games/bulbs/core"
)

// BulbsConfig is the full game configuration.
type BulbsConfig struct {
	Display  DisplayConfig  `yaml:"display"`
	Movement MovementConfig `yaml:"movement"`
	Keys     KeyConfig      `yaml:"keys"`
	Scoring  ScoringConfig  `yaml:"scoring"`
}

// DisplayConfig controls the viewport.
type DisplayConfig struct {
	ViewWidth   int  `yaml:"view_width"`  // pixel units
	ViewHeight  int  `yaml:"view_height"` // pixel units
	CellColumns int  `yaml:"cell_columns"`
	ShowHUD     bool `yaml:"show_hud"`
}

// MovementConfig controls walking and pushing.
type MovementConfig struct {
	StepDuration time.Duration `yaml:"step_duration"`
	PushPolicy   string        `yaml:"push_policy"`
	HoldWindow   time.Duration `yaml:"hold_window"`
}

// KeyConfig lists the key names bound to each action, in bubbletea
// key.String() form ("up", "w", "ctrl+c").
type KeyConfig struct {
	Up      []string `yaml:"up"`
	Down    []string `yaml:"down"`
	Left    []string `yaml:"left"`
	Right   []string `yaml:"right"`
	Restart []string `yaml:"restart"`
	Pause   []string `yaml:"pause"`
	Back    []string `yaml:"back"`
	Quit    []string `yaml:"quit"`
}

// ScoringConfig turns a finished level into a score.
type ScoringConfig struct {
	Base        int `yaml:"base"`
	MovePenalty int `yaml:"move_penalty"`
	PushPenalty int `yaml:"push_penalty"`
	Minimum     int `yaml:"minimum"`
}

// Score returns the score for a level finished in moves steps, pushes of
// which moved a block.
func (s ScoringConfig) Score(moves, pushes int) int {
	score := s.Base - s.MovePenalty*moves - s.PushPenalty*pushes
	if score < s.Minimum {
		return s.Minimum
	}
	return score
}

// Policy returns the parsed push policy. Validate guarantees it parses.
func (m MovementConfig) Policy() core.PushPolicy {
	p, _ := core.ParsePushPolicy(m.PushPolicy)
	return p
}

// Validate reports every invalid setting.
func (c BulbsConfig) Validate() error {
	var errs []error

	if c.Display.ViewWidth <= 0 || c.Display.ViewHeight <= 0 {
		errs = append(errs, fmt.Errorf("display: view size must be positive, got %dx%d",
			c.Display.ViewWidth, c.Display.ViewHeight))
	}
	if c.Display.CellColumns < 1 || c.Display.CellColumns > 4 {
		errs = append(errs, fmt.Errorf("display: cell_columns must be 1-4, got %d", c.Display.CellColumns))
	}
	if c.Movement.StepDuration <= 0 {
		errs = append(errs, fmt.Errorf("movement: step_duration must be positive, got %v", c.Movement.StepDuration))
	}
	if c.Movement.HoldWindow <= 0 {
		errs = append(errs, fmt.Errorf("movement: hold_window must be positive, got %v", c.Movement.HoldWindow))
	}
	if _, err := core.ParsePushPolicy(c.Movement.PushPolicy); err != nil {
		errs = append(errs, fmt.Errorf("movement: %w", err))
	}
	for name, keys := range map[string][]string{
		"up": c.Keys.Up, "down": c.Keys.Down, "left": c.Keys.Left, "right": c.Keys.Right, "quit": c.Keys.Quit,
	} {
		if len(keys) == 0 {
			errs = append(errs, fmt.Errorf("keys: %s has no binding", name))
		}
	}
	if c.Scoring.Minimum < 0 {
		errs = append(errs, fmt.Errorf("scoring: minimum must not be negative, got %d", c.Scoring.Minimum))
	}

	return errors.Join(errs...)
}
