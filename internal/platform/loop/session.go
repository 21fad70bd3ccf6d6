package loop

import (
	"context"
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-fruits/internal/core"
	"github.com/vovakirdan/tui-fruits/internal/games/fruits"
)

// ErrTerminalTooSmall is returned when the window cannot fit the playfield
// and the score label.
var ErrTerminalTooSmall = errors.New("terminal too small")

// MinTerminalSize is the smallest window the game runs in.
var MinTerminalSize = core.NewPosition(20, 38)

// TooSmallMessage is shown when the size check fails.
const TooSmallMessage = "Terminal window must be at least 20 by 38 to run this game"

// Session is a terminal held in raw mode.
type Session interface {
	Terminal
	QuerySize() (core.Position, error)
	SetNonBlocking(enabled bool)
	Restore() error
}

// Screen is the full set of drawing operations Play uses.
type Screen interface {
	Renderer
	ShowCursor()
	Newline()
	Message(lines ...string)
}

// CheckSize reports whether size can hold the game.
func CheckSize(size core.Position) error {
	if !size.AtLeast(MinTerminalSize) {
		return fmt.Errorf("%w: got %d rows by %d columns, need %d by %d",
			ErrTerminalTooSmall, size.Row, size.Col, MinTerminalSize.Row, MinTerminalSize.Col)
	}
	return nil
}

// Play measures the terminal, runs the game and hands the terminal back in
// its original mode on every path.
func Play(ctx context.Context, sess Session, screen Screen, game *fruits.Game, opts ...Option) (Outcome, error) {
	//nolint:errcheck // Restore is idempotent; the explicit call below reports errors
	defer sess.Restore()

	size, err := sess.QuerySize()
	if err != nil {
		screen.ShowCursor()
		return Outcome{}, fmt.Errorf("measure terminal: %w", err)
	}
	if err := CheckSize(size); err != nil {
		screen.ShowCursor()
		//nolint:errcheck // Best-effort, the size error is the one reported
		sess.Restore()
		screen.Message(TooSmallMessage)
		return Outcome{}, err
	}

	sess.SetNonBlocking(true)
	outcome := NewController(game, sess, screen, opts...).Run(ctx)
	sess.SetNonBlocking(false)

	restoreErr := sess.Restore()
	screen.Newline()
	if restoreErr != nil {
		return outcome, restoreErr
	}
	return outcome, nil
}
