// Package styles turns a theme into the lipgloss styles used for drawing.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/nadiff/nadiff/internal/theme"
)

type Styles struct {
	// Pane rows
	Old            lipgloss.Style
	New            lipgloss.Style
	Context        lipgloss.Style
	Section        lipgloss.Style
	LineNumber     lipgloss.Style
	OldPlaceholder lipgloss.Style
	NewPlaceholder lipgloss.Style

	// Chrome
	Title    lipgloss.Style
	Rule     lipgloss.Style
	Selected lipgloss.Style
	Muted    lipgloss.Style
	Warning  lipgloss.Style

	// File list markers
	StatusChanged lipgloss.Style
	StatusNew     lipgloss.Style
	StatusDeleted lipgloss.Style
}

func New(t theme.Theme) Styles {
	base := lipgloss.NewStyle()
	return Styles{
		Old:            base.Foreground(t.Removed),
		New:            base.Foreground(t.Added),
		Context:        base.Foreground(t.Context),
		Section:        base.Foreground(t.Section).Underline(true),
		LineNumber:     base.Foreground(t.LineNumber),
		OldPlaceholder: base.Foreground(t.Removed).Faint(true),
		NewPlaceholder: base.Foreground(t.Added).Faint(true),

		Title:    base.Foreground(t.Title).Bold(true),
		Rule:     base.Foreground(t.Border),
		Selected: base.Foreground(t.Selected).Reverse(true),
		Muted:    base.Foreground(t.Muted).Italic(true),
		Warning:  base.Foreground(t.Warning).Bold(true),

		StatusChanged: base.Foreground(t.Section),
		StatusNew:     base.Foreground(t.Added),
		StatusDeleted: base.Foreground(t.Removed),
	}
}
