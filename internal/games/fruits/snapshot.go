package fruits

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-fruits/internal/core"
)

// Snapshot is a plain copy of the game state for tests and the loop's
// debug log.
type Snapshot struct {
	Tick      int
	FruitRow  int
	FruitCol  int
	BasketCol int
	Score     int
	Interval  time.Duration
	Phase     core.Phase
}

// Snapshot captures the current state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:      g.tickCount,
		FruitRow:  g.fruit.Pos.Row,
		FruitCol:  g.fruit.Pos.Col,
		BasketCol: g.basket.Pos.Col,
		Score:     g.score.Value,
		Interval:  g.interval,
		Phase:     g.phase,
	}
}

// String formats the snapshot for log lines.
func (s Snapshot) String() string {
	return fmt.Sprintf("tick=%d fruit=%d;%d basket=%d score=%d interval=%v phase=%v",
		s.Tick, s.FruitRow, s.FruitCol, s.BasketCol, s.Score, s.Interval, s.Phase)
}
