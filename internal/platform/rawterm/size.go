// Package rawterm puts the controlling terminal into per-keystroke input
// mode and talks to it directly: non-blocking single-byte reads and the
// cursor-position handshake used to measure the window.
package rawterm

import (
	"errors"
	"fmt"
	"io"

	"github.com/vovakirdan/tui-fruits/internal/core"
	"github.com/vovakirdan/tui-fruits/internal/platform/ansi"
)

var (
	// ErrNotTerminal is returned when stdin is not a terminal.
	ErrNotTerminal = errors.New("rawterm: not a terminal")
	// ErrBadSizeReport is returned when the cursor position report cannot be parsed.
	ErrBadSizeReport = errors.New("rawterm: malformed cursor position report")
)

// maxReportLen bounds the bytes read while waiting for the report terminator.
const maxReportLen = 64

// offscreen is far past any real terminal; the cursor is clamped to the
// bottom-right cell, whose position is then reported back.
var offscreen = core.NewPosition(999, 999)

// QuerySize measures the terminal by parking the cursor in the bottom-right
// corner and asking for its position. It blocks until the terminal replies,
// so it must run before non-blocking mode is enabled.
func QuerySize(r io.Reader, w io.Writer) (core.Position, error) {
	if _, err := io.WriteString(w, ansi.CursorTo(offscreen)+ansi.DeviceStatusReport); err != nil {
		return core.Position{}, fmt.Errorf("rawterm: request cursor position: %w", err)
	}

	report := make([]byte, 0, 16)
	var b [1]byte
	for {
		n, err := r.Read(b[:])
		if n == 1 {
			if b[0] == ansi.CursorReportEnd {
				break
			}
			report = append(report, b[0])
			if len(report) > maxReportLen {
				return core.Position{}, fmt.Errorf("%w: no terminator after %d bytes", ErrBadSizeReport, len(report))
			}
			continue
		}
		if err != nil {
			return core.Position{}, fmt.Errorf("rawterm: read cursor position: %w", err)
		}
	}

	size, ok := ansi.ParseCursorReport(string(report))
	if !ok {
		return core.Position{}, fmt.Errorf("%w: %q", ErrBadSizeReport, report)
	}
	return size, nil
}
