//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package rawterm

import (
	"errors"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-fruits/internal/core"
)

// ErrUnsupported is returned on platforms without termios.
var ErrUnsupported = errors.New("rawterm: raw terminal mode is not supported on this platform")

// Session is unavailable on this platform.
type Session struct{}

// EnterRawMode always fails on this platform.
func EnterRawMode(in *os.File, out io.Writer, logger *log.Logger) (*Session, error) {
	return nil, ErrUnsupported
}

func (s *Session) SetNonBlocking(enabled bool)       {}
func (s *Session) ReadKey() (byte, bool)             { return 0, false }
func (s *Session) QuerySize() (core.Position, error) { return core.Position{}, ErrUnsupported }
func (s *Session) Size() (core.Position, error)      { return core.Position{}, ErrUnsupported }
func (s *Session) Restore() error                    { return nil }
func (s *Session) Close() error                      { return nil }
