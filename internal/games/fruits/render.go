package fruits

import "github.com/vovakirdan/tui-fruits/internal/core"

// Render draws the current game state to the screen buffer.
// Terminal positions are 1-based; the buffer is 0-based.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	drawBorder(dst)
	drawAt(dst, g.fruit.Pos, FruitGlyph, g.fruit.Color)
	drawAt(dst, g.basket.Pos, BasketGlyph, g.basket.Color)
	drawAt(dst, ScoreLabelPos, g.score.ScoreLabel(), g.score.Color)

	if g.phase == core.PhaseOver {
		drawAt(dst, GameOverPos, GameOverText, g.palette.GameOver)
		drawAt(dst, FinalScorePos, g.score.FinalLabel(), core.ColorIgnore)
	}
}

func drawBorder(dst *core.Screen) {
	width := EndColumn - StartColumn + 1
	dst.DrawHLine(StartColumn-1, StartRow-1, width, BorderHorizontal)
	dst.DrawHLine(StartColumn-1, EndRow-1, width, BorderHorizontal)

	inner := EndRow - StartRow - 1
	dst.DrawVLine(StartColumn-1, StartRow, inner, BorderVertical)
	dst.DrawVLine(EndColumn-1, StartRow, inner, BorderVertical)
}

func drawAt(dst *core.Screen, p core.Position, text string, c core.Color) {
	dst.DrawTextColored(p.Col-1, p.Row-1, text, c)
}
