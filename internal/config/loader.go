package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-colorswitch/internal/paths"
)

// LoadColorSwitch loads the game configuration.
// Search order: customPath -> ~/.colorswitch/configs/colorswitch.yaml ->
// ./configs/colorswitch.yaml -> embedded default.
// Fields missing from a file keep their default values.
func LoadColorSwitch(customPath string) (ColorSwitchConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return ColorSwitchConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseColorSwitch(data)
		if err != nil {
			return ColorSwitchConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("colorswitch.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseColorSwitch(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "colorswitch.yaml")); err == nil {
		if cfg, err := parseColorSwitch(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := parseColorSwitch(defaultColorSwitchYAML)
	if err != nil {
		return DefaultColorSwitchConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseColorSwitch decodes YAML over the hardcoded defaults and validates
// the result.
func parseColorSwitch(data []byte) (ColorSwitchConfig, error) {
	cfg := DefaultColorSwitchConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ColorSwitchConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return ColorSwitchConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	path, err := paths.UserFile("configs", filename)
	if err != nil {
		return ""
	}
	return path
}
