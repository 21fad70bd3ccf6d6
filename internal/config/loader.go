package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-fruits/internal/core"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

// LoadFruits loads the fruits configuration.
// Search order: customPath -> ~/.fruits/configs/fruits.yaml -> ./configs/fruits.yaml -> embedded default
// Keys missing from a file keep their default values.
func LoadFruits(customPath string) (FruitsConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return FruitsConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return FruitsConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("fruits.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/fruits.yaml"); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultFruitsYAML)
	if err != nil {
		return DefaultFruitsConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (FruitsConfig, error) {
	cfg := DefaultFruitsConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return FruitsConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return FruitsConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the config as YAML.
func Marshal(cfg FruitsConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// Validate checks ranges and color names.
func (c FruitsConfig) Validate() error {
	if c.Tick.InitialMS <= 0 {
		return fmt.Errorf("%w: tick.initial_ms must be positive, got %d", ErrInvalid, c.Tick.InitialMS)
	}
	if c.Tick.StepMS < 0 {
		return fmt.Errorf("%w: tick.step_ms must not be negative, got %d", ErrInvalid, c.Tick.StepMS)
	}
	if c.Tick.ThresholdMS < 0 {
		return fmt.Errorf("%w: tick.threshold_ms must not be negative, got %d", ErrInvalid, c.Tick.ThresholdMS)
	}
	if c.Loop.PollSleepMS < 0 {
		return fmt.Errorf("%w: loop.poll_sleep_ms must not be negative, got %d", ErrInvalid, c.Loop.PollSleepMS)
	}

	colors := map[string]string{
		"colors.fruit":     c.Colors.Fruit,
		"colors.basket":    c.Colors.Basket,
		"colors.score":     c.Colors.Score,
		"colors.game_over": c.Colors.GameOver,
	}
	for key, name := range colors {
		if _, err := core.ParseColor(name); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalid, key, err)
		}
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".fruits", "configs", filename)
}
