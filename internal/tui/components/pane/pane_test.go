package pane

import (
	"strings"
	"testing"

	"github.com/nadiff/nadiff/internal/diff"
	"github.com/nadiff/nadiff/internal/theme"
	"github.com/nadiff/nadiff/internal/tui/canvas"
	"github.com/nadiff/nadiff/internal/tui/layout"
	"github.com/nadiff/nadiff/internal/tui/styles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStyles(t *testing.T) styles.Styles {
	t.Helper()
	th, err := theme.Get("default")
	require.NoError(t, err)
	return styles.New(th)
}

func rows(c *canvas.Canvas) []string {
	return strings.Split(c.Plain(), "\n")
}

func TestDrawRows(t *testing.T) {
	t.Parallel()

	lines := []diff.RenderLine{
		{Kind: diff.RenderSection, Text: "func main()"},
		{Kind: diff.RenderContext, Text: "foo", LineNo: 1},
		{Kind: diff.RenderOld, Text: "bar", LineNo: 2},
		{Kind: diff.RenderNewPlaceholder},
		{Kind: diff.RenderBlank},
	}

	c := canvas.New(21, 8)
	err := Draw(c, layout.Rect{Width: 21, Height: 8}, Model{Title: "a/x", Lines: lines}, testStyles(t))
	require.NoError(t, err)

	got := rows(c)
	assert.Equal(t, "a/x", got[0])
	assert.Equal(t, strings.Repeat("─", 20), got[1])
	assert.Equal(t, "        func main()", got[2])
	assert.Equal(t, "    1 foo", got[3])
	assert.Equal(t, "    2 bar", got[4])
	assert.Equal(t, strings.Repeat("+", 20), got[5])
	assert.Equal(t, "", got[6])
}

func TestDrawScrolled(t *testing.T) {
	t.Parallel()

	var lines []diff.RenderLine
	for i := 1; i <= 10; i++ {
		lines = append(lines, diff.RenderLine{Kind: diff.RenderNew, Text: "abcdefghij", LineNo: uint(i)})
	}

	c := canvas.New(13, 5)
	m := Model{Title: "b/x", Lines: lines, Offset: 4, HOffset: 3}
	require.NoError(t, Draw(c, layout.Rect{Width: 13, Height: 5}, m, testStyles(t)))

	got := rows(c)
	require.Len(t, got, 5)
	assert.Equal(t, "    5 defghi", got[2])
	assert.Equal(t, "    7 defghi", got[4])
}

func TestDrawEmpty(t *testing.T) {
	t.Parallel()

	c := canvas.New(40, 4)
	m := Model{Title: "b/img.png", Empty: "no line changes"}
	require.NoError(t, Draw(c, layout.Rect{Width: 40, Height: 4}, m, testStyles(t)))
	assert.Equal(t, "      no line changes", rows(c)[2])
}

func TestDrawUnknownKind(t *testing.T) {
	t.Parallel()

	c := canvas.New(40, 4)
	m := Model{Title: "x", Lines: []diff.RenderLine{{Kind: diff.RenderKind(99)}}}
	err := Draw(c, layout.Rect{Width: 40, Height: 4}, m, testStyles(t))
	assert.Error(t, err)
}
