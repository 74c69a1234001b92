package filelist

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

func TestDraw(t *testing.T) {
	t.Parallel()

	th, err := theme.Get("default")
	require.NoError(t, err)

	diffs := []diff.Diff{
		{OldName: "main.go", NewName: "main.go"},
		{OldName: "a.txt", NewName: "b.txt"},
		{OldName: "logo.png", NewName: "logo.png", Status: diff.StatusNew},
		{OldName: "gone.c", NewName: "gone.c", Status: diff.StatusDeleted},
		{OldName: "averyveryverylongname.go", NewName: "averyveryverylongname.go"},
	}

	c := canvas.New(17, 6)
	m := Model{Diffs: diffs, Selected: 1, Start: 1, End: 5}
	Draw(c, layout.Rect{Width: 17, Height: 6}, m, styles.New(th))

	got := strings.Split(c.Plain(), "\n")
	assert.Equal(t, []string{
		"Files 2/5",
		strings.Repeat("─", 16),
		"R a.txt -> b.txt",
		"A logo.png",
		"D gone.c",
		"M averyveryvery…",
	}, got)
}

func TestDrawSelectedIsPadded(t *testing.T) {
	t.Parallel()

	th, err := theme.Get("default")
	require.NoError(t, err)

	c := canvas.New(12, 3)
	m := Model{Diffs: []diff.Diff{{OldName: "x", NewName: "x"}}, Start: 0, End: 1}
	Draw(c, layout.Rect{Width: 12, Height: 3}, m, styles.New(th))

	got := strings.Split(c.Plain(), "\n")
	assert.Equal(t, "M x"+strings.Repeat(" ", 8), got[2])
}
