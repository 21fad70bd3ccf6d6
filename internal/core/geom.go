// Package core provides fundamental types and utilities for the fruits game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "fmt"

// Position is a 1-based terminal coordinate.
// Bounds are enforced by whoever mutates it, not by the type.
type Position struct {
	Row int
	Col int
}

// NewPosition creates a position at the given row and column.
func NewPosition(row, col int) Position {
	return Position{Row: row, Col: col}
}

// String returns the position as "row;col", the order ANSI cursor
// sequences use.
func (p Position) String() string {
	return fmt.Sprintf("%d;%d", p.Row, p.Col)
}

// AtLeast reports whether p is at least min in both dimensions.
func (p Position) AtLeast(min Position) bool {
	return p.Row >= min.Row && p.Col >= min.Col
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
