package config

import (
	"fmt"
	"time"
)

// SpeedPreset is a named movement speed.
type SpeedPreset string

const (
	SpeedRelaxed SpeedPreset = "relaxed"
	SpeedNormal  SpeedPreset = "normal"
	SpeedFast    SpeedPreset = "fast"
)

// StepDurationForPreset returns the step duration of a preset.
func StepDurationForPreset(preset SpeedPreset) (time.Duration, error) {
	switch preset {
	case SpeedRelaxed:
		return 240 * time.Millisecond, nil
	case SpeedNormal:
		return 150 * time.Millisecond, nil
	case SpeedFast:
		return 90 * time.Millisecond, nil
	default:
		return 0, fmt.Errorf("unknown speed preset %q (want relaxed, normal or fast)", preset)
	}
}

// ApplySpeedPreset sets the step duration from preset. The hold window is
// shortened when needed to stay below two thirds of a step, so a single
// tap never walks twice.
func ApplySpeedPreset(cfg *BulbsConfig, preset SpeedPreset) error {
	d, err := StepDurationForPreset(preset)
	if err != nil {
		return err
	}
	cfg.Movement.StepDuration = d
	if ceiling := d * 2 / 3; cfg.Movement.HoldWindow > ceiling {
		cfg.Movement.HoldWindow = ceiling
	}
	return nil
}
