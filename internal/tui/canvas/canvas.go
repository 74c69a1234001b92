// Package canvas is an in-memory drawing surface that renders to a string
// frame for bubbletea.
package canvas

import (
	"cmp"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Surface is the narrow screen capability the drawing code relies on.
type Surface interface {
	Size() (width, height int)
	MoveTo(x, y int)
	Write(style lipgloss.Style, text string)
}

type span struct {
	x     int
	width int
	text  string
	style lipgloss.Style
}

// Canvas records styled spans per row. Text written past the right edge
// is clipped.
type Canvas struct {
	width, height int
	x, y          int
	rows          [][]span
}

var _ Surface = (*Canvas)(nil)

func New(width, height int) *Canvas {
	width, height = max(width, 0), max(height, 0)
	return &Canvas{
		width:  width,
		height: height,
		rows:   make([][]span, height),
	}
}

func (c *Canvas) Size() (int, int) {
	return c.width, c.height
}

// MoveTo positions the cursor used by the next Write.
func (c *Canvas) MoveTo(x, y int) {
	c.x, c.y = max(x, 0), y
}

// Write draws text at the cursor and advances it by the text's width.
func (c *Canvas) Write(style lipgloss.Style, text string) {
	if text == "" || c.y < 0 || c.y >= c.height || c.x >= c.width {
		return
	}
	text = ansi.Truncate(text, c.width-c.x, "")
	w := ansi.StringWidth(text)
	if w == 0 {
		return
	}
	c.rows[c.y] = append(c.rows[c.y], span{x: c.x, width: w, text: text, style: style})
	c.x += w
}

// String renders the frame. Gaps between spans are filled with spaces and
// a span overlapping an earlier one is dropped.
func (c *Canvas) String() string {
	lines := make([]string, c.height)
	for y, row := range c.rows {
		slices.SortStableFunc(row, func(a, b span) int { return cmp.Compare(a.x, b.x) })

		var sb strings.Builder
		col := 0
		for _, s := range row {
			if s.x < col {
				continue
			}
			sb.WriteString(strings.Repeat(" ", s.x-col))
			sb.WriteString(s.style.Render(s.text))
			col = s.x + s.width
		}
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}

// Plain renders the frame without any styling.
func (c *Canvas) Plain() string {
	return ansi.Strip(c.String())
}
