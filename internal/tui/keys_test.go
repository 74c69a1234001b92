package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nadiff/nadiff/internal/session"
	"github.com/stretchr/testify/assert"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapAction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want session.Action
	}{
		{"n", runeKey('n'), session.ActionNextDiff},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, session.ActionNextDiff},
		{"N", runeKey('N'), session.ActionPrevDiff},
		{"shift+tab", tea.KeyMsg{Type: tea.KeyShiftTab}, session.ActionPrevDiff},
		{"k", runeKey('k'), session.ActionScrollUp},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, session.ActionScrollUp},
		{"d", runeKey('d'), session.ActionScrollUp},
		{"j", runeKey('j'), session.ActionScrollDown},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, session.ActionScrollDown},
		{"c", runeKey('c'), session.ActionScrollDown},
		{"h", runeKey('h'), session.ActionScrollLeft},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, session.ActionScrollRight},
		{"a", runeKey('a'), session.ActionScrollOldUp},
		{"z", runeKey('z'), session.ActionScrollOldDown},
		{"s", runeKey('s'), session.ActionScrollNewUp},
		{"x", runeKey('x'), session.ActionScrollNewDown},
		{"q", runeKey('q'), session.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, session.ActionQuit},
		{"unbound", runeKey('w'), session.ActionNone},
	}

	keys := DefaultKeyMap()
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, keys.Action(tt.msg))
		})
	}
}

func TestKeyMapDescribe(t *testing.T) {
	t.Parallel()

	out := DefaultKeyMap().Describe()
	assert.Contains(t, out, "n, tab")
	assert.Contains(t, out, "next file")
	assert.Contains(t, out, "q, ctrl+c")
	assert.Contains(t, out, "scroll new side down")
}
