package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"default", "frappe", "latte", "macchiato", "mocha"}, Names())
}

func TestGet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		lookup  string
		removed lipgloss.TerminalColor
		wantErr bool
	}{
		{name: "default", lookup: "default", removed: lipgloss.ANSIColor(1)},
		{name: "case insensitive", lookup: "Mocha", removed: lipgloss.Color("#f38ba8")},
		{name: "unknown", lookup: "solarized", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			th, err := Get(tt.lookup)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "mocha")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.removed, th.Removed)
			assert.NotNil(t, th.Added)
		})
	}
}

func TestGetSuggestsSimilarNames(t *testing.T) {
	t.Parallel()

	_, err := Get("mch")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "did you mean macchiato or mocha?")
}
