package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hersh/blockdrop/internal/game"
)

type KeyMap struct {
	Left      key.Binding
	Right     key.Binding
	Down      key.Binding
	RotateCCW key.Binding
	RotateCW  key.Binding
	Play      key.Binding
	Mute      key.Binding
	Quit      key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "move left")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "move right")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "soft drop")),
		RotateCCW: key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "rotate left")),
		RotateCW:  key.NewBinding(key.WithKeys("w", "up"), key.WithHelp("w/↑", "rotate right")),
		Play:      key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "play music")),
		Mute:      key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "mute")),
		Quit:      key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
	}
}

// Command maps a key press to a game command.
func (k KeyMap) Command(msg tea.KeyMsg) (game.Command, bool) {
	switch {
	case key.Matches(msg, k.Left):
		return game.MoveLeft, true
	case key.Matches(msg, k.Right):
		return game.MoveRight, true
	case key.Matches(msg, k.Down):
		return game.SoftDrop, true
	case key.Matches(msg, k.RotateCCW):
		return game.RotateCCW, true
	case key.Matches(msg, k.RotateCW):
		return game.RotateCW, true
	}
	return 0, false
}

// Help lists the bindings in display order.
func (k KeyMap) Help() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Down, k.RotateCCW, k.RotateCW, k.Play, k.Mute, k.Quit}
}
