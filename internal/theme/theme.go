// Package theme provides the named color sets of the diff view.
package theme

import (
	"fmt"
	"slices"
	"strings"

	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Theme is the color set used to draw panes and the file list.
type Theme struct {
	Name string

	// Diff view colors
	Removed    lipgloss.TerminalColor
	Added      lipgloss.TerminalColor
	Context    lipgloss.TerminalColor
	Section    lipgloss.TerminalColor
	LineNumber lipgloss.TerminalColor

	// Chrome colors
	Title    lipgloss.TerminalColor
	Border   lipgloss.TerminalColor
	Selected lipgloss.TerminalColor
	Muted    lipgloss.TerminalColor
	Warning  lipgloss.TerminalColor
}

var registry = map[string]Theme{}

// Register adds t under its name, replacing any theme of the same name.
func Register(t Theme) {
	registry[strings.ToLower(t.Name)] = t
}

// Get looks a theme up by name, ignoring case.
func Get(name string) (Theme, error) {
	t, ok := registry[strings.ToLower(name)]
	if ok {
		return t, nil
	}
	if similar := fuzzy.FindFold(name, Names()); len(similar) > 0 {
		return Theme{}, fmt.Errorf("theme %q not found, did you mean %s?", name, strings.Join(similar, " or "))
	}
	return Theme{}, fmt.Errorf("theme %q not found (available: %s)", name, strings.Join(Names(), ", "))
}

// Names lists the registered themes in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func init() {
	// The default theme sticks to the 16 ANSI colors so it follows the
	// terminal's own palette.
	Register(Theme{
		Name:       "default",
		Removed:    lipgloss.ANSIColor(1),
		Added:      lipgloss.ANSIColor(2),
		Context:    lipgloss.NoColor{},
		Section:    lipgloss.ANSIColor(6),
		LineNumber: lipgloss.ANSIColor(8),
		Title:      lipgloss.ANSIColor(4),
		Border:     lipgloss.ANSIColor(8),
		Selected:   lipgloss.ANSIColor(4),
		Muted:      lipgloss.ANSIColor(8),
		Warning:    lipgloss.ANSIColor(3),
	})

	Register(fromCatppuccin(catppuccin.Latte))
	Register(fromCatppuccin(catppuccin.Frappe))
	Register(fromCatppuccin(catppuccin.Macchiato))
	Register(fromCatppuccin(catppuccin.Mocha))
}

func fromCatppuccin(f catppuccin.Flavor) Theme {
	hex := func(c catppuccin.Color) lipgloss.Color { return lipgloss.Color(c.Hex) }
	return Theme{
		Name:       f.Name(),
		Removed:    hex(f.Red()),
		Added:      hex(f.Green()),
		Context:    hex(f.Text()),
		Section:    hex(f.Mauve()),
		LineNumber: hex(f.Overlay0()),
		Title:      hex(f.Blue()),
		Border:     hex(f.Surface2()),
		Selected:   hex(f.Lavender()),
		Muted:      hex(f.Overlay1()),
		Warning:    hex(f.Yellow()),
	}
}
