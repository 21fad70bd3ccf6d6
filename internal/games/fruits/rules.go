package fruits

import "github.com/vovakirdan/tui-fruits/internal/core"

// AdvanceFruit moves the fruit down one row. There is no lower bound;
// the caller checks for the catch row.
func AdvanceFruit(f *Fruit) {
	f.Pos.Row++
}

// MoveBasket shifts the basket one lane in the direction of the action and
// clamps it to [MinBasketColumn, MaxBasketColumn]. Non-movement actions
// only clamp.
func MoveBasket(b *Basket, a core.Action) {
	delta := 0
	switch a {
	case core.ActionLeft:
		delta = -LaneWidth
	case core.ActionRight:
		delta = LaneWidth
	}
	b.Pos.Col = core.Clamp(b.Pos.Col+delta, MinBasketColumn, MaxBasketColumn)
}

// MoveBasketFrame applies the lateral input of a frame. Left and right
// together cancel out.
func MoveBasketFrame(b *Basket, in core.InputFrame) {
	left, right := in.Has(core.ActionLeft), in.Has(core.ActionRight)
	switch {
	case left && !right:
		MoveBasket(b, core.ActionLeft)
	case right && !left:
		MoveBasket(b, core.ActionRight)
	default:
		MoveBasket(b, core.ActionNone)
	}
}

// IsCaught reports whether the fruit lines up with the basket opening.
// Exact equality: one column off is a miss.
func IsCaught(f Fruit, b Basket) bool {
	return f.Pos.Col-catchOffset == b.Pos.Col
}

// OnCatchRow reports whether the fruit has reached the basket row.
func OnCatchRow(f Fruit) bool {
	return f.Pos.Row == CatchRow
}

// ResetFruit puts the fruit back on the spawn row in a random lane.
func ResetFruit(f *Fruit, src LaneSource) {
	lane := src.Intn(LaneCount) + 1
	f.Pos = core.NewPosition(SpawnRow, LaneColumn(lane))
}

// IncrementScore records one catch.
func IncrementScore(s *Score) {
	s.Value++
}
