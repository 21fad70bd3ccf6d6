package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-fruits/internal/core"
	"github.com/vovakirdan/tui-fruits/internal/registry"
)

// gameOverHint is shown under the help line once the game has ended.
const gameOverHint = "press any key to exit"

// Model is the Bubble Tea model for running a game.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	pending  core.InputFrame
	state    core.GameState
	quitting bool
}

// NewModel resets game with cfg and wraps it in a model.
// The screen buffer is sized from cfg.ScreenW and cfg.ScreenH.
func NewModel(game registry.Game, cfg core.RuntimeConfig) Model {
	game.Reset(cfg)

	return Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		pending: core.NewInputFrame(),
		state:   game.State(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.state.Interval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// One line is kept for help.
		m.screen.Resize(msg.Width, core.Max(msg.Height-1, 0))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// State returns the game state as of the last handled message.
func (m Model) State() core.GameState {
	return m.state
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.state.Done() {
		m.quitting = true
		return m, tea.Quit
	}

	action := m.keys.MapKey(msg)
	switch {
	case action == core.ActionQuit:
		m.state = m.game.Step(core.FrameForKey(core.KeyQuit)).State
		m.quitting = true
		return m, tea.Quit

	case action.IsMove():
		// The first move of a tick is kept until that tick runs.
		if !m.pending.Has(core.ActionLeft) && !m.pending.Has(core.ActionRight) {
			m.pending.Set(action)
		}
	}

	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.state.Done() {
		return m, nil
	}

	result := m.game.Step(m.pending)
	m.state = result.State
	m.pending.Clear()

	// Over stops the clock and leaves the banner up until a key is pressed.
	if m.state.Done() {
		return m, nil
	}
	return m, tickCmd(m.state.Interval)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	view := RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
	if m.state.Phase == core.PhaseOver {
		view += "  " + gameOverHint
	}
	return view
}

// Run plays game in an alternate screen and returns the final state.
func Run(game registry.Game, cfg core.RuntimeConfig) (core.GameState, error) {
	p := tea.NewProgram(NewModel(game, cfg), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return core.GameState{}, err
	}
	if m, ok := final.(Model); ok {
		return m.state, nil
	}
	return game.State(), nil
}
