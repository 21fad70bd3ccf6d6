//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package rawterm

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-fruits/internal/core"
)

// Session holds the terminal in raw mode until Restore is called.
// Restore is safe to call from every exit path; only the first call acts.
type Session struct {
	in     *os.File
	out    io.Writer
	fd     int
	saved  unix.Termios
	logger *log.Logger

	mu          sync.Mutex
	nonBlocking bool

	restoreOnce sync.Once
	restoreErr  error
}

// EnterRawMode saves the attributes of in and switches it to
// non-canonical, no-echo input returning after every byte. A failure to
// apply the new attributes is logged and the session is still returned.
func EnterRawMode(in *os.File, out io.Writer, logger *log.Logger) (*Session, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	// Fd puts the file into blocking mode, so take it once up front.
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return nil, ErrNotTerminal
	}

	saved, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return nil, fmt.Errorf("rawterm: get terminal attributes: %w", err)
	}

	s := &Session{
		in:     in,
		out:    out,
		fd:     fd,
		saved:  *saved,
		logger: logger,
	}

	raw := *saved
	raw.Lflag &^= unix.ICANON | unix.ECHO
	raw.Cc[unix.VMIN] = 1
	if err := unix.IoctlSetTermios(fd, ioctlWriteTermios, &raw); err != nil {
		logger.Error("error setting terminal attributes", "error", err)
	} else {
		logger.Debug("raw mode enabled", "fd", fd)
	}
	return s, nil
}

// SetNonBlocking selects whether ReadKey returns immediately when no key
// is waiting. Errors are logged and otherwise ignored.
func (s *Session) SetNonBlocking(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := unix.SetNonblock(s.fd, enabled); err != nil {
		s.logger.Error("error setting non-blocking read state", "enabled", enabled, "error", err)
		return
	}
	s.nonBlocking = enabled
	s.logger.Debug("non-blocking read state", "enabled", enabled)
}

// ReadKey reads at most one byte. ok is false when nothing was available.
func (s *Session) ReadKey() (key byte, ok bool) {
	var b [1]byte
	n, err := unix.Read(s.fd, b[:])
	if n == 1 {
		return b[0], true
	}
	if err != nil && !errors.Is(err, unix.EAGAIN) && !errors.Is(err, unix.EINTR) {
		s.logger.Debug("read failed", "error", err)
	}
	return 0, false
}

// QuerySize runs the cursor position handshake on the session's terminal.
func (s *Session) QuerySize() (core.Position, error) {
	return QuerySize(s.in, s.out)
}

// Size returns the window size reported by the kernel.
func (s *Session) Size() (core.Position, error) {
	cols, rows, err := term.GetSize(s.fd)
	if err != nil {
		return core.Position{}, fmt.Errorf("rawterm: get window size: %w", err)
	}
	return core.NewPosition(rows, cols), nil
}

// Restore turns off non-blocking reads and reapplies the saved attributes.
func (s *Session) Restore() error {
	s.restoreOnce.Do(func() {
		s.mu.Lock()
		if s.nonBlocking {
			if err := unix.SetNonblock(s.fd, false); err != nil {
				s.logger.Error("error clearing non-blocking read state", "error", err)
			} else {
				s.logger.Debug("non-blocking read state", "enabled", false)
			}
			s.nonBlocking = false
		}
		s.mu.Unlock()

		if err := unix.IoctlSetTermios(s.fd, ioctlWriteTermios, &s.saved); err != nil {
			s.restoreErr = fmt.Errorf("rawterm: restore terminal attributes: %w", err)
			return
		}
		s.logger.Debug("terminal attributes restored", "fd", s.fd)
	})
	return s.restoreErr
}

// Close is Restore, for use with defer.
func (s *Session) Close() error {
	return s.Restore()
}
