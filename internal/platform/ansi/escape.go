// Package ansi draws the fruits playfield with raw ANSI escape sequences.
package ansi

import (
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-fruits/internal/core"
)

// Escape sequences.
const (
	CSI                = "\x1b["
	ClearScreen        = CSI + "2J"
	HideCursorSeq      = CSI + "?25l"
	ShowCursorSeq      = CSI + "?25h"
	DeviceStatusReport = CSI + "6n"
	ResetStyle         = CSI + "0m"
	boldPrefix         = "1;"
)

// CursorReportEnd terminates a cursor position report.
const CursorReportEnd byte = 'R'

// CursorTo returns the sequence that moves the cursor to p.
func CursorTo(p core.Position) string {
	return CSI + strconv.Itoa(p.Row) + ";" + strconv.Itoa(p.Col) + "H"
}

// Colour wraps text in a bold SGR foreground and optional background.
// A background of core.ColorIgnore leaves the background untouched.
func Colour(text string, fg, bg core.Color) string {
	var sb strings.Builder
	sb.WriteString(CSI)
	sb.WriteString(boldPrefix)
	sb.WriteString(strconv.Itoa(int(fg)))
	if bg != core.ColorIgnore {
		sb.WriteByte(';')
		sb.WriteString(strconv.Itoa(bg.Background()))
	}
	sb.WriteByte('m')
	sb.WriteString(text)
	sb.WriteString(ResetStyle)
	return sb.String()
}

// paint colours text unless c is core.ColorIgnore.
func paint(text string, c core.Color) string {
	if c == core.ColorIgnore {
		return text
	}
	return Colour(text, c, core.ColorIgnore)
}

// ParseCursorReport parses a cursor position report of the form
// ESC[rows;cols (the terminating 'R' already stripped or still present).
func ParseCursorReport(report string) (core.Position, bool) {
	report = strings.TrimSuffix(report, "R")
	i := strings.LastIndex(report, CSI)
	if i < 0 {
		return core.Position{}, false
	}
	body := report[i+len(CSI):]

	rowsStr, colsStr, ok := strings.Cut(body, ";")
	if !ok {
		return core.Position{}, false
	}
	rows, err := strconv.Atoi(rowsStr)
	if err != nil || rows <= 0 {
		return core.Position{}, false
	}
	cols, err := strconv.Atoi(colsStr)
	if err != nil || cols <= 0 {
		return core.Position{}, false
	}
	return core.NewPosition(rows, cols), true
}
