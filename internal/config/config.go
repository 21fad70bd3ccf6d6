// Package config provides YAML-based game configuration loading and
// the tick schedule that drives the difficulty ramp.
package config

import (
	"time"

	"github.com/vovakirdan/tui-fruits/internal/core"
)

// FruitsConfig contains all configuration for the fruits game.
// Playfield geometry is fixed and not part of the config.
type FruitsConfig struct {
	Tick   TickConfig  `yaml:"tick"`
	Loop   LoopConfig  `yaml:"loop"`
	Colors ColorConfig `yaml:"colors"`
}

// TickConfig defines the tick interval and its reduction per catch.
type TickConfig struct {
	InitialMS   int `yaml:"initial_ms"`
	StepMS      int `yaml:"step_ms"`
	ThresholdMS int `yaml:"threshold_ms"`
}

// LoopConfig defines the raw game loop's polling behavior.
type LoopConfig struct {
	PollSleepMS int `yaml:"poll_sleep_ms"` // 0 = pure busy wait
}

// ColorConfig names the display color of each element.
// "none" draws the element without styling.
type ColorConfig struct {
	Fruit    string `yaml:"fruit"`
	Basket   string `yaml:"basket"`
	Score    string `yaml:"score"`
	GameOver string `yaml:"game_over"`
}

// Palette is ColorConfig resolved to color codes.
type Palette struct {
	Fruit    core.Color
	Basket   core.Color
	Score    core.Color
	GameOver core.Color
}

// Palette resolves the color names. Unknown names fall back to no styling;
// Validate reports them.
func (c ColorConfig) Palette() Palette {
	parse := func(name string) core.Color {
		col, err := core.ParseColor(name)
		if err != nil {
			return core.ColorIgnore
		}
		return col
	}
	return Palette{
		Fruit:    parse(c.Fruit),
		Basket:   parse(c.Basket),
		Score:    parse(c.Score),
		GameOver: parse(c.GameOver),
	}
}

// PollSleep returns the pause between input polls.
func (l LoopConfig) PollSleep() time.Duration {
	return time.Duration(l.PollSleepMS) * time.Millisecond
}
