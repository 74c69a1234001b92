// Package filelist draws the list of files on the left of the screen.
package filelist

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/nadiff/nadiff/internal/diff"
	"github.com/nadiff/nadiff/internal/tui/canvas"
	"github.com/nadiff/nadiff/internal/tui/layout"
	"github.com/nadiff/nadiff/internal/tui/styles"
)

type Model struct {
	Diffs    []diff.Diff
	Selected int
	// Start and End bound the visible window of Diffs.
	Start, End int
}

// Draw paints the list into r. The selected entry is shown in reverse video.
func Draw(s canvas.Surface, r layout.Rect, m Model, st styles.Styles) {
	width := r.Width - 1
	if width <= 0 || r.Height <= 0 {
		return
	}

	s.MoveTo(r.X, r.Y)
	s.Write(st.Title, fit(fmt.Sprintf("Files %d/%d", m.Selected+1, len(m.Diffs)), width))
	if r.Height > 1 {
		s.MoveTo(r.X, r.Y+1)
		s.Write(st.Rule, strings.Repeat("─", width))
	}

	top := r.Y + layout.HeaderRows
	for i := m.Start; i < m.End && i-m.Start < r.ContentRows(); i++ {
		d := &m.Diffs[i]
		icon, iconStyle := marker(d, st)

		s.MoveTo(r.X, top+i-m.Start)
		s.Write(iconStyle, icon)
		s.Write(lipgloss.NewStyle(), " ")

		name := fit(d.DisplayName(), width-2)
		if i == m.Selected {
			name += strings.Repeat(" ", max(width-2-lipgloss.Width(name), 0))
			s.Write(st.Selected, name)
		} else {
			s.Write(lipgloss.NewStyle(), name)
		}
	}
}

func marker(d *diff.Diff, st styles.Styles) (string, lipgloss.Style) {
	switch {
	case d.Status == diff.StatusNew:
		return styles.NewIcon, st.StatusNew
	case d.Status == diff.StatusDeleted:
		return styles.DeletedIcon, st.StatusDeleted
	case d.OldName != d.NewName:
		return styles.RenamedIcon, st.StatusChanged
	default:
		return styles.ChangedIcon, st.StatusChanged
	}
}

func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	return truncate.StringWithTail(s, uint(width), "…")
}
