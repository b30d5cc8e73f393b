package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadLaunch loads the launcher configuration.
// Search order: customPath -> ~/.launcher/configs/launch.yaml -> ./configs/launch.yaml -> embedded default.
// Files are decoded over the defaults, so a partial file only changes what it names.
func LoadLaunch(customPath string) (LaunchConfig, error) {
	cfg := DefaultLaunchConfig()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return DefaultLaunchConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("launch.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = DefaultLaunchConfig()
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "launch.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = DefaultLaunchConfig()
	}

	if err := yaml.Unmarshal(defaultLaunchYAML, &cfg); err != nil {
		return DefaultLaunchConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".launcher", "configs", filename)
}

// ApplyLaunchPreset modifies the config based on a difficulty preset.
func ApplyLaunchPreset(cfg *LaunchConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Scoring.Lives = 15
	case DifficultyNormal:
		cfg.Scoring.Lives = 10
	case DifficultyHard:
		cfg.Scoring.Lives = 5
		cfg.Physics.Gravity.X *= 1.2
		cfg.Physics.Gravity.Y *= 1.2
	}
}
