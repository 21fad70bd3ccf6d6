package fruits

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-fruits/internal/config"
	"github.com/vovakirdan/tui-fruits/internal/core"
	"github.com/vovakirdan/tui-fruits/internal/registry"
)

func newTestGame(lanes ...int) *Game {
	g := New()
	g.ResetWithSource(core.DefaultConfig(), &fixedLanes{idx: lanes})
	return g
}

func input(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestInitialState(t *testing.T) {
	g := newTestGame(3) // lane 4 -> column 19
	snap := g.Snapshot()

	if snap.FruitRow != 2 || snap.FruitCol != 19 {
		t.Errorf("fruit at %d;%d, expected 2;19", snap.FruitRow, snap.FruitCol)
	}
	if snap.BasketCol != 17 {
		t.Errorf("basket column = %d, expected 17", snap.BasketCol)
	}
	if snap.Score != 0 || snap.Tick != 0 {
		t.Errorf("score/tick = %d/%d, expected 0/0", snap.Score, snap.Tick)
	}
	if snap.Interval != 100*time.Millisecond {
		t.Errorf("interval = %v, expected 100ms", snap.Interval)
	}
	if snap.Phase != core.PhaseRunning {
		t.Errorf("phase = %v, expected running", snap.Phase)
	}
}

// No input and the fruit falls into a lane the basket is not under.
func TestMissEndsGame(t *testing.T) {
	g := newTestGame(0) // column 4, basket at 17 needs column 19

	for row := SpawnRow; row < CatchRow; row++ {
		if g.Fruit().Pos.Row != row {
			t.Fatalf("fruit row = %d, expected %d", g.Fruit().Pos.Row, row)
		}
		res := g.Step(core.NewInputFrame())
		if res.State.Done() {
			t.Fatalf("game ended early at row %d", row)
		}
	}
	if g.Fruit().Pos.Row != CatchRow {
		t.Fatalf("fruit should be on catch row, got %d", g.Fruit().Pos.Row)
	}

	res := g.Step(core.NewInputFrame())
	if res.State.Phase != core.PhaseOver {
		t.Fatalf("phase = %v, expected over", res.State.Phase)
	}
	if res.State.Score != 0 || res.Caught {
		t.Errorf("score = %d caught = %v, expected 0/false", res.State.Score, res.Caught)
	}
	if g.Fruit().Pos.Row != CatchRow {
		t.Errorf("fruit should stay on catch row after a miss, got %d", g.Fruit().Pos.Row)
	}

	// Terminal state: further steps change nothing
	before := g.Snapshot()
	g.Step(input(core.ActionRight))
	if g.Snapshot() != before {
		t.Error("Step after game over should be a no-op")
	}
}

// The player lines the basket up and catches the fruit.
func TestCatchScoresAndSpeedsUp(t *testing.T) {
	g := newTestGame(4, 1) // column 24 then column 9; basket needs 22

	g.Step(input(core.ActionRight)) // 17 -> 22
	if g.Basket().Pos.Col != 22 {
		t.Fatalf("basket column = %d, expected 22", g.Basket().Pos.Col)
	}
	for g.Fruit().Pos.Row < CatchRow {
		g.Step(core.NewInputFrame())
	}

	res := g.Step(core.NewInputFrame())
	if !res.Caught {
		t.Fatal("expected a catch")
	}
	if res.State.Score != 1 {
		t.Errorf("score = %d, expected 1", res.State.Score)
	}
	if res.State.Interval != 97*time.Millisecond {
		t.Errorf("interval = %v, expected 97ms", res.State.Interval)
	}
	if res.State.Phase != core.PhaseRunning {
		t.Errorf("phase = %v, expected running", res.State.Phase)
	}
	if f := g.Fruit(); f.Pos.Row != SpawnRow || f.Pos.Col != 9 {
		t.Errorf("fruit reset to %v, expected 2;9", f.Pos)
	}
}

func TestScoreOnlyChangesOnCatch(t *testing.T) {
	// Basket stays at 17, fruit always in column 19: every drop is a catch
	g := newTestGame(3)

	prevScore := 0
	prevInterval := g.State().Interval
	catches := 0
	for i := 0; i < 2000 && catches < 40; i++ {
		res := g.Step(core.NewInputFrame())
		if res.Caught {
			catches++
			if res.State.Score != prevScore+1 {
				t.Fatalf("catch %d: score %d, expected %d", catches, res.State.Score, prevScore+1)
			}
		} else if res.State.Score != prevScore {
			t.Fatalf("tick %d: score changed without a catch", i)
		}
		if res.State.Interval > prevInterval {
			t.Fatalf("interval increased from %v to %v", prevInterval, res.State.Interval)
		}
		if res.State.Interval < 50*time.Millisecond {
			t.Fatalf("interval %v dropped below 50ms", res.State.Interval)
		}
		prevScore = res.State.Score
		prevInterval = res.State.Interval
	}
	if catches != 40 {
		t.Fatalf("expected 40 catches, got %d", catches)
	}
	if g.State().Interval != 50*time.Millisecond {
		t.Errorf("interval after 40 catches = %v, expected 50ms", g.State().Interval)
	}
}

func TestQuit(t *testing.T) {
	g := newTestGame(0)
	res := g.Step(input(core.ActionQuit))
	if res.State.Phase != core.PhaseQuit {
		t.Fatalf("phase = %v, expected quit", res.State.Phase)
	}
	if g.Snapshot().Tick != 0 {
		t.Errorf("quit should not count as a tick")
	}
	if g.Fruit().Pos.Row != SpawnRow {
		t.Errorf("quit should not advance the fruit")
	}
}

func TestGameDeterminism(t *testing.T) {
	cfg := core.RuntimeConfig{Seed: 12345}
	inputs := []core.Action{core.ActionRight, core.ActionNone, core.ActionLeft, core.ActionLeft}

	run := func() Snapshot {
		g := New()
		g.Reset(cfg)
		for i := 0; i < 300; i++ {
			res := g.Step(input(inputs[i%len(inputs)]))
			if res.State.Done() {
				break
			}
		}
		return g.Snapshot()
	}

	if s1, s2 := run(), run(); s1 != s2 {
		t.Errorf("Determinism failed: %+v vs %+v", s1, s2)
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(3)
	screen := core.NewScreen(60, 20)
	g.Render(screen)

	if row := screen.Row(0); !strings.HasPrefix(row, strings.Repeat("-", 37)) {
		t.Errorf("top border = %q", row)
	}
	if row := screen.Row(15); !strings.HasPrefix(row, strings.Repeat("-", 37)) {
		t.Errorf("bottom border = %q", row)
	}
	if screen.Get(0, 5) != '|' || screen.Get(36, 5) != '|' {
		t.Error("side borders missing")
	}
	if cell := screen.GetCell(18, 1); cell.Rune != 'O' || cell.Color != core.ColorGreen {
		t.Errorf("fruit cell = %+v, expected green 'O' at column 19", cell)
	}
	if got := screen.Row(14)[16:21]; got != BasketGlyph {
		t.Errorf("basket = %q, expected %q", got, BasketGlyph)
	}
	if got := screen.Row(0)[38:46]; got != "score: 0" {
		t.Errorf("score label = %q", got)
	}
	if strings.Contains(screen.String(), "GAME OVER") {
		t.Error("game over banner drawn while running")
	}
}

func TestRenderGameOver(t *testing.T) {
	g := newTestGame(0)
	for !g.State().Done() {
		g.Step(core.NewInputFrame())
	}

	screen := core.NewScreen(60, 20)
	g.Render(screen)

	if got := screen.Row(7)[13:25]; got != GameOverText {
		t.Errorf("banner = %q, expected %q", got, GameOverText)
	}
	if cell := screen.GetCell(13, 7); cell.Color != core.ColorRed {
		t.Errorf("banner color = %v, expected red", cell.Color)
	}
	if got := screen.Row(8)[15:23]; got != "Score: 0" {
		t.Errorf("final score = %q", got)
	}
}

func TestRegistryFactoryUsesConfig(t *testing.T) {
	t.Cleanup(func() { SetConfig(config.DefaultFruitsConfig()) })

	cfg := config.DefaultFruitsConfig()
	cfg.Tick.InitialMS = 80
	cfg.Colors.Fruit = "yellow"
	SetConfig(cfg)

	g, err := registry.Create("fruits")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	g.Reset(core.RuntimeConfig{Seed: 1})

	if got := g.State().Interval; got != 80*time.Millisecond {
		t.Errorf("interval = %v, expected 80ms", got)
	}
	fg, ok := g.(*Game)
	if !ok {
		t.Fatalf("registry returned %T, expected *Game", g)
	}
	if fg.Fruit().Color != core.ColorYellow {
		t.Errorf("fruit color = %v, expected yellow", fg.Fruit().Color)
	}
}
