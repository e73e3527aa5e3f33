package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/wpmtest/internal/session"
)

type keyMap struct {
	Quit      key.Binding
	Backspace key.Binding
	Boundary  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace", "ctrl+h"),
			key.WithHelp("⌫", "delete"),
		),
		Boundary: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "next word"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Boundary, k.Backspace, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// translateKey maps a terminal key press to engine events. Pasted or
// buffered runes become one event each.
func (k keyMap) translateKey(msg tea.KeyMsg) []session.Key {
	switch {
	case key.Matches(msg, k.Quit):
		return []session.Key{session.Cancel()}
	case key.Matches(msg, k.Backspace):
		return []session.Key{session.Backspace()}
	case key.Matches(msg, k.Boundary):
		return []session.Key{session.Boundary()}
	}
	if msg.Type != tea.KeyRunes {
		return nil
	}
	keys := make([]session.Key, 0, len(msg.Runes))
	for _, r := range msg.Runes {
		if r == ' ' {
			keys = append(keys, session.Boundary())
			continue
		}
		keys = append(keys, session.Append(r))
	}
	return keys
}
