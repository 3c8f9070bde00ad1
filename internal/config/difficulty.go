package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficultyPreset validates a preset name. The empty string means
// "keep the config file as is" and maps to DifficultyNormal.
func ParseDifficultyPreset(name string) (DifficultyPreset, error) {
	switch DifficultyPreset(name) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyHard:
		return DifficultyPreset(name), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", name)
	}
}

// ApplyColorSwitchPreset scales the fall parameters for a preset.
// Normal leaves the loaded values untouched.
func ApplyColorSwitchPreset(cfg *ColorSwitchConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Physics.BaseGravity *= 0.75
		cfg.Physics.GravityStep *= 0.5
	case DifficultyHard:
		cfg.Physics.BaseGravity *= 1.5
		cfg.Physics.GravityStep *= 1.5
	}
}
