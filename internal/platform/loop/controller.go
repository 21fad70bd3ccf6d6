// Package loop runs the fruits game against a raw terminal: a single
// goroutine polls for keys without blocking and steps the simulation
// whenever the tick interval has elapsed.
package loop

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-fruits/internal/core"
	"github.com/vovakirdan/tui-fruits/internal/games/fruits"
)

// noKey marks "nothing pending". It maps to no action.
const noKey byte = 0

// Terminal delivers single keystrokes without blocking.
type Terminal interface {
	// ReadKey returns the next byte, or ok == false when none is waiting.
	ReadKey() (key byte, ok bool)
}

// Renderer draws the screens the controller needs.
type Renderer interface {
	DrawOpening(g *fruits.Game)
	DrawFrame(g *fruits.Game)
	DrawFinal(g *fruits.Game)
}

// Clock supplies monotonic time and waits.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

type systemClock struct{}

func (systemClock) Now() time.Time        { return time.Now() }
func (systemClock) Sleep(d time.Duration) { time.Sleep(d) }

// Outcome summarizes a finished session.
type Outcome struct {
	Phase    core.Phase
	Score    int
	Ticks    int
	Interval time.Duration // tick interval when the game ended
}

// Controller owns the poll/tick loop for one game session.
type Controller struct {
	game      *fruits.Game
	term      Terminal
	render    Renderer
	clock     Clock
	logger    *log.Logger
	pollSleep time.Duration
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock replaces the system clock.
func WithClock(c Clock) Option {
	return func(ctl *Controller) { ctl.clock = c }
}

// WithPollSleep pauses between polls. Zero spins without sleeping.
func WithPollSleep(d time.Duration) Option {
	return func(ctl *Controller) { ctl.pollSleep = d }
}

// WithLogger sets the diagnostic logger.
func WithLogger(l *log.Logger) Option {
	return func(ctl *Controller) {
		if l != nil {
			ctl.logger = l
		}
	}
}

// NewController creates a controller for a game that has already been Reset.
func NewController(game *fruits.Game, term Terminal, render Renderer, opts ...Option) *Controller {
	c := &Controller{
		game:   game,
		term:   term,
		render: render,
		clock:  systemClock{},
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run plays until the fruit is missed, the quit key is read, or ctx is
// cancelled. The closing screen is drawn before it returns.
func (c *Controller) Run(ctx context.Context) Outcome {
	c.render.DrawOpening(c.game)

	pending := noKey
	ticks := 0
	start := c.clock.Now()

	for {
		if ctx.Err() != nil {
			c.logger.Debug("loop cancelled", "error", ctx.Err())
			c.game.Step(core.FrameForKey(core.KeyQuit))
			break
		}
		if core.ActionForKey(pending) == core.ActionQuit {
			c.game.Step(core.FrameForKey(pending))
			break
		}

		now := c.clock.Now()
		elapsed := now.Sub(start)
		if elapsed >= c.game.State().Interval {
			ticks++
			res := c.game.Step(core.FrameForKey(pending))
			if res.Caught {
				c.logger.Info("caught", "score", res.State.Score, "interval", res.State.Interval)
			}
			if res.State.Phase == core.PhaseOver {
				c.logger.Debug("missed", "state", c.game.Snapshot())
				break
			}
			c.render.DrawFrame(c.game)
			c.logger.Debug("tick", "elapsed", elapsed, "key", keyName(pending), "state", c.game.Snapshot())

			start = now
			pending = noKey
		}

		// A pending move waits for its tick rather than being overwritten.
		if !core.ActionForKey(pending).IsMove() {
			if key, ok := c.term.ReadKey(); ok {
				pending = key
			} else {
				pending = noKey
			}
		}

		if c.pollSleep > 0 {
			c.clock.Sleep(c.pollSleep)
		}
	}

	c.render.DrawFinal(c.game)

	state := c.game.State()
	return Outcome{
		Phase:    state.Phase,
		Score:    state.Score,
		Ticks:    ticks,
		Interval: state.Interval,
	}
}

func keyName(b byte) string {
	if b == noKey {
		return "none"
	}
	if b < 0x20 || b == 0x7f {
		return "ctrl"
	}
	return string(rune(b))
}
