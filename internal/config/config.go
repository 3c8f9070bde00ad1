// Package config provides YAML-based game configuration loading and
// difficulty presets for Color Switch.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ColorSwitchConfig contains all tunable parameters of the game.
type ColorSwitchConfig struct {
	Physics ColorSwitchPhysics `yaml:"physics"`
	Timing  ColorSwitchTiming  `yaml:"timing"`
	Audio   AudioConfig        `yaml:"audio"`
}

// ColorSwitchPhysics defines the fall parameters.
type ColorSwitchPhysics struct {
	BaseGravity float64 `yaml:"base_gravity"`  // Vertical acceleration at run start (negative = down)
	GravityStep float64 `yaml:"gravity_step"`  // Subtracted from gravity on every even score
	RowsPerUnit float64 `yaml:"rows_per_unit"` // Screen rows per second² for one unit of gravity
}

// ColorSwitchTiming defines animation durations in milliseconds.
type ColorSwitchTiming struct {
	RotationMS int `yaml:"rotation_ms"` // Quarter turn of the wheel
	FadeMS     int `yaml:"fade_ms"`     // Fade-out of a matched ball before the next spawns
}

// AudioConfig holds the sound preference.
type AudioConfig struct {
	SoundEnabled bool `yaml:"sound_enabled"`
}

// RotationDuration returns the wheel quarter-turn duration.
func (t ColorSwitchTiming) RotationDuration() time.Duration {
	return time.Duration(t.RotationMS) * time.Millisecond
}

// FadeDuration returns the ball fade-out duration.
func (t ColorSwitchTiming) FadeDuration() time.Duration {
	return time.Duration(t.FadeMS) * time.Millisecond
}

// Validate reports every parameter that would make the game unplayable.
func (c ColorSwitchConfig) Validate() error {
	var errs []error
	if c.Physics.BaseGravity >= 0 {
		errs = append(errs, fmt.Errorf("physics.base_gravity must be negative, got %g", c.Physics.BaseGravity))
	}
	if c.Physics.GravityStep <= 0 {
		errs = append(errs, fmt.Errorf("physics.gravity_step must be positive, got %g", c.Physics.GravityStep))
	}
	if c.Physics.RowsPerUnit <= 0 {
		errs = append(errs, fmt.Errorf("physics.rows_per_unit must be positive, got %g", c.Physics.RowsPerUnit))
	}
	if c.Timing.RotationMS <= 0 {
		errs = append(errs, fmt.Errorf("timing.rotation_ms must be positive, got %d", c.Timing.RotationMS))
	}
	if c.Timing.FadeMS <= 0 {
		errs = append(errs, fmt.Errorf("timing.fade_ms must be positive, got %d", c.Timing.FadeMS))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid colorswitch config: %w", errors.Join(errs...))
	}
	return nil
}
