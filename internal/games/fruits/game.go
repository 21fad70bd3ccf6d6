// Package fruits implements a fruit-catching game.
// A single fruit falls down one of seven lanes; the player slides a basket
// under it. Every catch scores a point and shortens the tick, a miss ends
// the game.
package fruits

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-fruits/internal/config"
	"github.com/vovakirdan/tui-fruits/internal/core"
	"github.com/vovakirdan/tui-fruits/internal/registry"
)

// Game implements the fruit-catching game logic.
type Game struct {
	fruit     Fruit
	basket    Basket
	score     Score
	interval  time.Duration // current tick interval
	phase     core.Phase
	tickCount int // ticks simulated since Reset
	lanes     LaneSource
	cfg       config.FruitsConfig
	schedule  config.TickSchedule
	palette   config.Palette
	runtime   core.RuntimeConfig
}

// factoryConfig is used by games created through the registry.
var factoryConfig = config.DefaultFruitsConfig()

// SetConfig sets the configuration for games created through the registry.
// Call it before registry.Create.
func SetConfig(cfg config.FruitsConfig) {
	factoryConfig = cfg
}

// New creates a game with the default configuration.
func New() *Game {
	return NewWithConfig(config.DefaultFruitsConfig())
}

// NewWithConfig creates a game with the given configuration.
func NewWithConfig(cfg config.FruitsConfig) *Game {
	return &Game{
		cfg:      cfg,
		schedule: cfg.Tick.Schedule(),
		palette:  cfg.Colors.Palette(),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "fruits"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Fruit Catch"
}

// Reset initializes or restarts the game with a lane source seeded from cfg.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	seed := core.ResolveSeed(cfg.Seed)
	g.ResetWithSource(cfg, rand.New(rand.NewSource(seed)))
}

// ResetWithSource restarts the game drawing lanes from src.
func (g *Game) ResetWithSource(cfg core.RuntimeConfig, src LaneSource) {
	g.runtime = cfg
	g.lanes = src
	g.fruit = NewFruit(src, g.palette.Fruit)
	g.basket = NewBasket(g.palette.Basket)
	g.score = Score{Color: g.palette.Score}
	g.interval = g.schedule.Initial
	g.phase = core.PhaseRunning
	g.tickCount = 0
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.phase != core.PhaseRunning {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionQuit) {
		g.phase = core.PhaseQuit
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	MoveBasketFrame(&g.basket, in)

	if OnCatchRow(g.fruit) {
		if !IsCaught(g.fruit, g.basket) {
			g.phase = core.PhaseOver
			return core.StepResult{State: g.State()}
		}
		ResetFruit(&g.fruit, g.lanes)
		IncrementScore(&g.score)
		g.interval = g.schedule.Next(g.interval)
		return core.StepResult{State: g.State(), Caught: true}
	}

	AdvanceFruit(&g.fruit)
	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score.Value,
		Phase:    g.phase,
		Interval: g.interval,
	}
}

// Fruit returns a copy of the falling fruit.
func (g *Game) Fruit() Fruit {
	return g.fruit
}

// Basket returns a copy of the basket.
func (g *Game) Basket() Basket {
	return g.basket
}

// Score returns a copy of the score.
func (g *Game) Score() Score {
	return g.score
}

// GameOverColor returns the color of the game-over banner.
func (g *Game) GameOverColor() core.Color {
	return g.palette.GameOver
}

// Register the game with the registry
func init() {
	registry.Register("fruits", func() registry.Game {
		return NewWithConfig(factoryConfig)
	})
}
