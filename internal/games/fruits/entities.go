package fruits

import (
	"strconv"

	"github.com/vovakirdan/tui-fruits/internal/core"
)

// Playfield geometry in 1-based terminal coordinates.
const (
	StartRow     = 1
	EndRow       = 16
	StartColumn  = 1
	MiddleColumn = 17
	EndColumn    = 37

	SpawnRow = StartRow + 1 // row a fruit appears on
	CatchRow = EndRow - 1   // row the basket sits on

	LaneWidth   = 5
	LaneCount   = 7
	BasketWidth = 5

	// catchOffset re-centers the 1-wide fruit over the 5-wide,
	// left-aligned basket glyph.
	catchOffset = 2
)

// Basket column bounds.
const (
	MinBasketColumn = StartColumn + 1
	MaxBasketColumn = EndColumn - BasketWidth
)

// Glyphs drawn for each entity.
const (
	FruitGlyph       = "O"
	BasketGlyph      = `\___/`
	BorderHorizontal = '-'
	BorderVertical   = '|'
	GameOverText     = "GAME OVER :("
)

// Fixed screen positions of the text elements.
var (
	ScoreLabelPos = core.NewPosition(StartRow, EndColumn+2)
	GameOverPos   = core.NewPosition(8, 14)
	FinalScorePos = core.NewPosition(9, 16)
	HandoffPos    = core.NewPosition(EndRow, StartColumn) // cursor after game over
)

// LaneSource picks lanes. *rand.Rand satisfies it.
type LaneSource interface {
	// Intn returns a value in [0, n).
	Intn(n int) int
}

// Fruit is the single falling object.
type Fruit struct {
	Pos   core.Position
	Color core.Color
}

// Basket is the player-controlled catcher.
type Basket struct {
	Pos   core.Position
	Color core.Color
}

// Score counts catches.
type Score struct {
	Value int
	Color core.Color
}

// LaneColumn returns the column of a 1-based lane index.
func LaneColumn(lane int) int {
	return lane*LaneWidth - 1
}

// NewFruit creates a fruit on the spawn row in a random lane.
func NewFruit(src LaneSource, color core.Color) Fruit {
	f := Fruit{Color: color}
	ResetFruit(&f, src)
	return f
}

// NewBasket creates a basket on the catch row in the middle column.
func NewBasket(color core.Color) Basket {
	return Basket{
		Pos:   core.NewPosition(CatchRow, MiddleColumn),
		Color: color,
	}
}

// ScoreLabel returns the in-game score text.
func (s Score) ScoreLabel() string {
	return "score: " + strconv.Itoa(s.Value)
}

// FinalLabel returns the game-over score text.
func (s Score) FinalLabel() string {
	return "Score: " + strconv.Itoa(s.Value)
}
