package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// load resolves a game config.
// Search order: customPath -> ~/.arcade/configs/<id>.yaml -> ./configs/<id>.yaml -> embedded default
// Files are decoded over the built-in defaults, so a partial file only overrides what it names.
func load[T any](gameID, customPath string, defaults func() T) (T, error) {
	cfg := defaults()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	filename := gameID + ".yaml"

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = defaults()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join(LocalConfigDir, filename)); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = defaults()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(GetDefaultYAML(gameID), &cfg); err != nil {
		return defaults(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LocalConfigDir is the project-relative directory searched after the user directory.
const LocalConfigDir = "configs"

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// LoadFifteen loads the 15-puzzle configuration.
func LoadFifteen(customPath string) (FifteenConfig, error) {
	return load("fifteen", customPath, DefaultFifteenConfig)
}

// LoadSnake loads Snake configuration.
func LoadSnake(customPath string) (SnakeConfig, error) {
	return load("snake", customPath, DefaultSnakeConfig)
}

// LoadPacman loads maze chase configuration.
func LoadPacman(customPath string) (PacmanConfig, error) {
	return load("pacman", customPath, DefaultPacmanConfig)
}

// LoadArkanoid loads brick breaker configuration.
func LoadArkanoid(customPath string) (ArkanoidConfig, error) {
	return load("arkanoid", customPath, DefaultArkanoidConfig)
}

// ApplySnakePreset modifies the config based on a difficulty preset.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Timing.IntervalMs = 200
	case DifficultyHard:
		cfg.Timing.IntervalMs = 110
		cfg.Timing.DecrementMs = 3
	case DifficultyFixed:
		cfg.Timing.DecrementMs = 0
	}
}

// ApplyPacmanPreset modifies the config based on a difficulty preset.
func ApplyPacmanPreset(cfg *PacmanConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
	}
}

// ApplyArkanoidPreset modifies the config based on a difficulty preset.
func ApplyArkanoidPreset(cfg *ArkanoidConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Paddle.Width = 130
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Paddle.Width = 80
		cfg.Physics.BallSpeedX *= 1.3
		cfg.Physics.BallSpeedY *= 1.3
	}
}
