package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/nadiff/nadiff/internal/session"
)

type KeyMap struct {
	NextDiff key.Binding
	PrevDiff key.Binding
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	OldUp    key.Binding
	OldDown  key.Binding
	NewUp    key.Binding
	NewDown  key.Binding
	Quit     key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextDiff: key.NewBinding(
			key.WithKeys("n", "tab"),
			key.WithHelp("n/tab", "next file"),
		),
		PrevDiff: key.NewBinding(
			key.WithKeys("N", "shift+tab"),
			key.WithHelp("N/shift+tab", "previous file"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up", "d"),
			key.WithHelp("k/↑", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down", "c"),
			key.WithHelp("j/↓", "scroll down"),
		),
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/←", "scroll left"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/→", "scroll right"),
		),
		OldUp: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "scroll old side up"),
		),
		OldDown: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z", "scroll old side down"),
		),
		NewUp: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "scroll new side up"),
		),
		NewDown: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "scroll new side down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp is what the footer shows.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextDiff, k.PrevDiff, k.Up, k.Down, k.Left, k.Right, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextDiff, k.PrevDiff, k.Quit},
		{k.Up, k.Down, k.Left, k.Right},
		{k.OldUp, k.OldDown, k.NewUp, k.NewDown},
	}
}

// Action decodes a key press. Unbound keys map to session.ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) session.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return session.ActionQuit
	case key.Matches(msg, k.NextDiff):
		return session.ActionNextDiff
	case key.Matches(msg, k.PrevDiff):
		return session.ActionPrevDiff
	case key.Matches(msg, k.Up):
		return session.ActionScrollUp
	case key.Matches(msg, k.Down):
		return session.ActionScrollDown
	case key.Matches(msg, k.Left):
		return session.ActionScrollLeft
	case key.Matches(msg, k.Right):
		return session.ActionScrollRight
	case key.Matches(msg, k.OldUp):
		return session.ActionScrollOldUp
	case key.Matches(msg, k.OldDown):
		return session.ActionScrollOldDown
	case key.Matches(msg, k.NewUp):
		return session.ActionScrollNewUp
	case key.Matches(msg, k.NewDown):
		return session.ActionScrollNewDown
	}
	return session.ActionNone
}

// Describe lists every binding with all of its keys, one per line, for
// the command line help.
func (k KeyMap) Describe() string {
	var sb strings.Builder
	for _, group := range k.FullHelp() {
		for _, b := range group {
			fmt.Fprintf(&sb, "  %-22s %s\n", strings.Join(b.Keys(), ", "), b.Help().Desc)
		}
	}
	return sb.String()
}
