// Package pane draws one side of the side-by-side diff.
package pane

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/nadiff/nadiff/internal/diff"
	"github.com/nadiff/nadiff/internal/tui/canvas"
	"github.com/nadiff/nadiff/internal/tui/layout"
	"github.com/nadiff/nadiff/internal/tui/styles"
)

const (
	gutterWidth   = 6
	sectionIndent = 8
	rule          = "─"
)

// Model is everything needed to draw a pane.
type Model struct {
	Title   string
	Lines   []diff.RenderLine
	Offset  int
	HOffset int
	// Empty is shown when Lines is empty.
	Empty string
}

// Draw paints the pane into r. The rightmost column of r is left blank to
// separate neighbouring panes. An unknown row kind is an error.
func Draw(s canvas.Surface, r layout.Rect, m Model, st styles.Styles) error {
	width := r.Width - 1
	if width <= 0 || r.Height <= 0 {
		return nil
	}

	s.MoveTo(r.X, r.Y)
	s.Write(st.Title, ansi.Truncate(m.Title, width, "…"))
	if r.Height > 1 {
		s.MoveTo(r.X, r.Y+1)
		s.Write(st.Rule, strings.Repeat(rule, width))
	}

	rows := r.ContentRows()
	top := r.Y + layout.HeaderRows
	if len(m.Lines) == 0 && m.Empty != "" && rows > 0 {
		s.MoveTo(r.X+gutterWidth, top)
		s.Write(st.Muted, m.Empty)
		return nil
	}

	for i := 0; i < rows && m.Offset+i < len(m.Lines); i++ {
		s.MoveTo(r.X, top+i)
		if err := drawLine(s, m.Lines[m.Offset+i], width, m.HOffset, st); err != nil {
			return err
		}
	}
	return nil
}

func drawLine(s canvas.Surface, l diff.RenderLine, width, hOffset int, st styles.Styles) error {
	avail := max(width-gutterWidth, 0)

	switch l.Kind {
	case diff.RenderBlank:
	case diff.RenderSection:
		s.Write(st.Muted, strings.Repeat(" ", sectionIndent))
		s.Write(st.Section, cut(l.Text, hOffset, max(width-sectionIndent, 0)))
	case diff.RenderContext:
		writeNumbered(s, l, st.LineNumber, st.Context, avail, hOffset)
	case diff.RenderOld:
		writeNumbered(s, l, st.LineNumber, st.Old, avail, hOffset)
	case diff.RenderNew:
		writeNumbered(s, l, st.LineNumber, st.New, avail, hOffset)
	case diff.RenderOldPlaceholder:
		s.Write(st.OldPlaceholder, strings.Repeat(styles.OldPlaceholderFill, width))
	case diff.RenderNewPlaceholder:
		s.Write(st.NewPlaceholder, strings.Repeat(styles.NewPlaceholderFill, width))
	default:
		return fmt.Errorf("cannot draw render line of kind %v", l.Kind)
	}
	return nil
}

func writeNumbered(s canvas.Surface, l diff.RenderLine, numStyle, textStyle lipgloss.Style, avail, hOffset int) {
	s.Write(numStyle, fmt.Sprintf("%*d ", gutterWidth-1, l.LineNo))
	s.Write(textStyle, cut(l.Text, hOffset, avail))
}

// cut returns the cells [left, left+width) of text, measured the same way
// as RenderLine.Width.
func cut(text string, left, width int) string {
	return diff.CutCells(text, left, width)
}
