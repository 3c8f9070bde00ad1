package config

import (
	_ "embed"
)

//go:embed defaults/colorswitch.yaml
var defaultColorSwitchYAML []byte

// DefaultColorSwitchConfig returns the hardcoded Color Switch configuration.
// Used when the embedded YAML cannot be parsed.
func DefaultColorSwitchConfig() ColorSwitchConfig {
	return ColorSwitchConfig{
		Physics: ColorSwitchPhysics{
			BaseGravity: -1.0,
			GravityStep: 0.5,
			RowsPerUnit: 6.0,
		},
		Timing: ColorSwitchTiming{
			RotationMS: 100,
			FadeMS:     250,
		},
		Audio: AudioConfig{
			SoundEnabled: true,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultColorSwitchYAML
}
