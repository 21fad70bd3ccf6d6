package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-fruits/internal/core"
	"github.com/vovakirdan/tui-fruits/internal/games/fruits"
)

func newModel(t *testing.T) (Model, *fruits.Game) {
	t.Helper()
	g := fruits.New()
	cfg := core.DefaultConfig()
	cfg.Seed = 7
	return NewModel(g, cfg), g
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

func tick(t *testing.T, m Model) (Model, tea.Cmd) {
	t.Helper()
	return update(t, m, TickMsg(time.Now()))
}

func TestNewModelResetsGame(t *testing.T) {
	m, g := newModel(t)

	if m.State().Phase != core.PhaseRunning {
		t.Errorf("phase = %v, expected running", m.State().Phase)
	}
	if m.State().Interval != 100*time.Millisecond {
		t.Errorf("interval = %v, expected 100ms", m.State().Interval)
	}
	if g.Fruit().Pos.Row != fruits.SpawnRow {
		t.Errorf("fruit row = %d, expected %d", g.Fruit().Pos.Row, fruits.SpawnRow)
	}
	if m.Init() == nil {
		t.Error("Init should schedule the first tick")
	}
}

func TestTickAdvancesFruit(t *testing.T) {
	m, g := newModel(t)

	_, cmd := tick(t, m)
	if g.Fruit().Pos.Row != fruits.SpawnRow+1 {
		t.Errorf("fruit row = %d, expected %d", g.Fruit().Pos.Row, fruits.SpawnRow+1)
	}
	if cmd == nil {
		t.Error("running game should schedule another tick")
	}
}

func TestMoveAppliedOnTick(t *testing.T) {
	m, g := newModel(t)

	m, _ = update(t, m, runeKey('d'))
	if g.Basket().Pos.Col != fruits.MiddleColumn {
		t.Fatalf("basket moved before the tick: %d", g.Basket().Pos.Col)
	}

	// A second press in the same tick does not replace the first
	m, _ = update(t, m, runeKey('a'))
	m, _ = tick(t, m)
	if g.Basket().Pos.Col != fruits.MiddleColumn+fruits.LaneWidth {
		t.Errorf("basket = %d, expected %d", g.Basket().Pos.Col, fruits.MiddleColumn+fruits.LaneWidth)
	}

	// The pending move is consumed by the tick
	_, _ = tick(t, m)
	if g.Basket().Pos.Col != fruits.MiddleColumn+fruits.LaneWidth {
		t.Errorf("basket moved again without input: %d", g.Basket().Pos.Col)
	}
}

func TestQuitKey(t *testing.T) {
	m, _ := newModel(t)

	m, cmd := update(t, m, runeKey('q'))
	if m.State().Phase != core.PhaseQuit {
		t.Errorf("phase = %v, expected quit", m.State().Phase)
	}
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("view should be empty while quitting")
	}
}

func TestMissStopsTicking(t *testing.T) {
	m, _ := newModel(t)

	var cmd tea.Cmd
	for i := 0; i < 10000 && !m.State().Done(); i++ {
		m, cmd = tick(t, m)
	}
	if m.State().Phase != core.PhaseOver {
		t.Fatalf("phase = %v, expected over", m.State().Phase)
	}
	if cmd != nil {
		t.Error("no tick should be scheduled after the miss")
	}

	// Late ticks are ignored
	before := m.State()
	m, cmd = tick(t, m)
	if cmd != nil || m.State() != before {
		t.Error("tick after game over changed the model")
	}

	view := m.View()
	if !strings.Contains(view, fruits.GameOverText) {
		t.Error("view should show the game over banner")
	}
	if !strings.Contains(view, gameOverHint) {
		t.Error("view should show the exit hint")
	}

	// Any key leaves once the game is over
	_, cmd = update(t, m, runeKey('x'))
	if cmd == nil {
		t.Fatal("key after game over should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestWindowResize(t *testing.T) {
	m, _ := newModel(t)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 25})
	if m.screen.Width() != 60 || m.screen.Height() != 24 {
		t.Errorf("screen = %dx%d, expected 60x24", m.screen.Width(), m.screen.Height())
	}
}

func TestViewShowsField(t *testing.T) {
	m, _ := newModel(t)

	view := m.View()
	for _, want := range []string{fruits.BasketGlyph, "score: 0", "quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestRenderScreenPlainCells(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.DrawText(0, 0, "ab")
	s.DrawText(1, 1, "cd")

	if got, want := RenderScreen(s), s.String(); got != want {
		t.Errorf("RenderScreen = %q, expected %q", got, want)
	}
}
