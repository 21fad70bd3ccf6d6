package core

import (
	crand "crypto/rand"
	"encoding/binary"
	"time"
)

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for lane selection
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means pick one with ResolveSeed
	}
}

// ResolveSeed returns seed unchanged unless it is 0, in which case a
// seed is drawn from the system entropy source (falling back to the clock).
func ResolveSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	var b [8]byte
	if _, err := crand.Read(b[:]); err == nil {
		if s := int64(binary.LittleEndian.Uint64(b[:])); s != 0 {
			return s
		}
	}
	return time.Now().UnixNano()
}

// Phase is the coarse state of a game session.
type Phase int

const (
	PhaseRunning Phase = iota
	PhaseOver          // fruit missed
	PhaseQuit          // player pressed quit
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseOver:
		return "over"
	case PhaseQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int           // Current score
	Phase    Phase         // Running, Over or Quit
	Interval time.Duration // Current tick interval
}

// Done reports whether the session has reached a terminal phase.
func (s GameState) Done() bool {
	return s.Phase != PhaseRunning
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Caught bool // a fruit was caught this tick
}
