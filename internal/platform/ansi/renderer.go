package ansi

import (
	"io"
	"strings"

	"github.com/vovakirdan/tui-fruits/internal/core"
	"github.com/vovakirdan/tui-fruits/internal/games/fruits"
)

type flusher interface {
	Flush() error
}

// Renderer writes the playfield to a terminal.
// Each write is flushed on its own so the screen always reflects the last
// sequence sent. The first write error is kept and later writes are dropped;
// wrap terminal output in a RetryWriter so EAGAIN is not such an error.
type Renderer struct {
	w   io.Writer
	err error
}

// NewRenderer creates a renderer writing to w.
func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

// Err returns the first write or flush error.
func (r *Renderer) Err() error {
	return r.err
}

func (r *Renderer) write(s string) {
	if r.err != nil {
		return
	}
	if _, err := io.WriteString(r.w, s); err != nil {
		r.err = err
		return
	}
	if f, ok := r.w.(flusher); ok {
		if err := f.Flush(); err != nil {
			r.err = err
		}
	}
}

// Clear erases the whole screen.
func (r *Renderer) Clear() { r.write(ClearScreen) }

// HideCursor hides the terminal cursor.
func (r *Renderer) HideCursor() { r.write(HideCursorSeq) }

// ShowCursor shows the terminal cursor.
func (r *Renderer) ShowCursor() { r.write(ShowCursorSeq) }

// MoveTo places the cursor at p.
func (r *Renderer) MoveTo(p core.Position) { r.write(CursorTo(p)) }

// Newline writes a line break for the shell that takes over the terminal.
func (r *Renderer) Newline() { r.write("\n") }

// DrawBorder draws the horizontal rules on the first and last row and the
// vertical bars on every row between them.
func (r *Renderer) DrawBorder() {
	horizontal := string(fruits.BorderHorizontal)
	vertical := string(fruits.BorderVertical)

	for row := fruits.StartRow; row <= fruits.EndRow; row++ {
		if row == fruits.StartRow || row == fruits.EndRow {
			for col := fruits.StartColumn; col <= fruits.EndColumn; col++ {
				r.MoveTo(core.NewPosition(row, col))
				r.write(horizontal)
			}
			continue
		}
		r.MoveTo(core.NewPosition(row, fruits.StartColumn))
		r.write(vertical)
		r.MoveTo(core.NewPosition(row, fruits.EndColumn))
		r.write(vertical)
	}
}

// DrawFruit draws the fruit glyph.
func (r *Renderer) DrawFruit(f fruits.Fruit) {
	r.MoveTo(f.Pos)
	r.write(paint(fruits.FruitGlyph, f.Color))
}

// DrawBasket draws the basket glyph.
func (r *Renderer) DrawBasket(b fruits.Basket) {
	r.MoveTo(b.Pos)
	r.write(paint(fruits.BasketGlyph, b.Color))
}

// DrawScore writes the score label just right of the border.
func (r *Renderer) DrawScore(s fruits.Score) {
	r.MoveTo(fruits.ScoreLabelPos)
	r.write(paint(s.ScoreLabel(), s.Color))
}

// DrawGameOver writes the banner and final score inside the playfield and
// leaves the cursor below it.
func (r *Renderer) DrawGameOver(s fruits.Score, banner core.Color) {
	r.MoveTo(fruits.GameOverPos)
	r.write(paint(fruits.GameOverText, banner))
	r.MoveTo(fruits.FinalScorePos)
	r.write(s.FinalLabel())
	r.MoveTo(fruits.HandoffPos)
}

// DrawFrame renders one tick.
func (r *Renderer) DrawFrame(g *fruits.Game) {
	r.Clear()
	r.HideCursor()
	r.DrawBorder()
	r.DrawFruit(g.Fruit())
	r.DrawBasket(g.Basket())
	r.DrawScore(g.Score())
}

// DrawOpening renders the screen shown before the first tick.
func (r *Renderer) DrawOpening(g *fruits.Game) {
	r.Clear()
	r.HideCursor()
	r.DrawBorder()
	r.DrawScore(g.Score())
}

// DrawFinal renders the closing screen and restores the cursor.
func (r *Renderer) DrawFinal(g *fruits.Game) {
	r.Clear()
	r.DrawBorder()
	r.DrawFruit(g.Fruit())
	r.DrawBasket(g.Basket())
	r.DrawGameOver(g.Score(), g.GameOverColor())
	r.ShowCursor()
}

// Message writes plain text lines starting on a fresh line.
func (r *Renderer) Message(lines ...string) {
	r.write("\n" + strings.Join(lines, "\n") + "\n")
}
