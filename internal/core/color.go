package core

import (
	"fmt"
	"strings"
)

// Color is an ANSI SGR foreground code (30-37).
// Background codes are derived by adding 10.
type Color uint8

// ColorIgnore suppresses styling when used as a background.
const ColorIgnore Color = 0

// Standard 3-bit colors.
const (
	ColorBlack Color = iota + 30
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
)

var colorNames = map[Color]string{
	ColorIgnore:  "none",
	ColorBlack:   "black",
	ColorRed:     "red",
	ColorGreen:   "green",
	ColorYellow:  "yellow",
	ColorBlue:    "blue",
	ColorMagenta: "magenta",
	ColorCyan:    "cyan",
	ColorWhite:   "white",
}

// String returns the lowercase color name.
func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return fmt.Sprintf("color(%d)", uint8(c))
}

// Background returns the SGR background code for c.
func (c Color) Background() int {
	return int(c) + 10
}

// Index returns the 0-7 palette index, or -1 for ColorIgnore.
func (c Color) Index() int {
	if c < ColorBlack || c > ColorWhite {
		return -1
	}
	return int(c - ColorBlack)
}

// ParseColor converts a color name (case-insensitive) to a Color.
func ParseColor(name string) (Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for c, n := range colorNames {
		if n == name {
			return c, nil
		}
	}
	return ColorIgnore, fmt.Errorf("unknown color %q", name)
}
