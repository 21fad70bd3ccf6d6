package config

import (
	_ "embed"
)

//go:embed defaults/fruits.yaml
var defaultFruitsYAML []byte

// DefaultFruitsConfig returns the default fruits configuration.
func DefaultFruitsConfig() FruitsConfig {
	return FruitsConfig{
		Tick: TickConfig{
			InitialMS:   100,
			StepMS:      3,
			ThresholdMS: 50,
		},
		Loop: LoopConfig{
			PollSleepMS: 1,
		},
		Colors: ColorConfig{
			Fruit:    "green",
			Basket:   "none",
			Score:    "none",
			GameOver: "red",
		},
	}
}
