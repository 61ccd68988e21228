package actions

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Command is an abstract navigation request decoded from a keypress.
type Command int

const (
	Ignore Command = iota
	Next
	Previous
	Quit
)

func (c Command) String() string {
	switch c {
	case Next:
		return "next"
	case Previous:
		return "previous"
	case Quit:
		return "quit"
	default:
		return "ignore"
	}
}

type KeyMap struct {
	Next     key.Binding
	Previous key.Binding
	Quit     key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "next post"),
		),
		Previous: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "previous post"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Decode maps a keypress to a Command. Unbound keys decode to Ignore.
func (k KeyMap) Decode(msg tea.KeyMsg) Command {
	switch {
	case key.Matches(msg, k.Quit):
		return Quit
	case key.Matches(msg, k.Next):
		return Next
	case key.Matches(msg, k.Previous):
		return Previous
	default:
		return Ignore
	}
}
