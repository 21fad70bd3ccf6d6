package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-fruits/internal/core"
)

// KeyMap holds the bindings shown in the help line.
type KeyMap struct {
	Left  key.Binding
	Right key.Binding
	Quit  key.Binding
}

// DefaultKeyMap binds the same keys the raw terminal loop reads.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys(string(core.KeyLeft)),
			key.WithHelp(string(core.KeyLeft), "left"),
		),
		Right: key.NewBinding(
			key.WithKeys(string(core.KeyRight)),
			key.WithHelp(string(core.KeyRight), "right"),
		),
		Quit: key.NewBinding(
			key.WithKeys(string(core.KeyQuit), "ctrl+c"),
			key.WithHelp(string(core.KeyQuit), "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// MapKey translates a key message to a game action.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	}
	return core.ActionNone
}
