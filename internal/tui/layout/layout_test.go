package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompute(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		width    int
		height   int
		list     Rect
		old      Rect
		new      Rect
		tooSmall bool
	}{
		{
			name:  "even split",
			width: 120, height: 30,
			list: Rect{X: 0, Width: 12, Height: 29},
			old:  Rect{X: 12, Width: 54, Height: 29},
			new:  Rect{X: 66, Width: 54, Height: 29},
		},
		{
			name:  "odd column goes to the list",
			width: 101, height: 21,
			list: Rect{X: 0, Width: 11, Height: 20},
			old:  Rect{X: 11, Width: 45, Height: 20},
			new:  Rect{X: 56, Width: 45, Height: 20},
		},
		{
			name:  "wide screen hits both caps",
			width: 1000, height: 50,
			list: Rect{X: 0, Width: 40, Height: 49},
			old:  Rect{X: 40, Width: 200, Height: 49},
			new:  Rect{X: 240, Width: 200, Height: 49},
		},
		{
			name:  "too narrow",
			width: 100, height: 21, tooSmall: true,
			list: Rect{X: 0, Width: 10, Height: 20},
			old:  Rect{X: 10, Width: 45, Height: 20},
			new:  Rect{X: 55, Width: 45, Height: 20},
		},
		{
			name:  "too short",
			width: 101, height: 20, tooSmall: true,
			list: Rect{X: 0, Width: 11, Height: 19},
			old:  Rect{X: 11, Width: 45, Height: 19},
			new:  Rect{X: 56, Width: 45, Height: 19},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			l := Compute(tt.width, tt.height, DefaultLimits())
			assert.Equal(t, tt.list, l.List)
			assert.Equal(t, tt.old, l.Old)
			assert.Equal(t, tt.new, l.New)
			assert.Equal(t, tt.tooSmall, l.TooSmall)
			assert.Equal(t, Rect{Y: tt.height - 1, Width: tt.width, Height: 1}, l.Footer)
		})
	}
}

func TestComputeZeroSize(t *testing.T) {
	t.Parallel()

	l := Compute(0, 0, DefaultLimits())
	assert.True(t, l.TooSmall)
	assert.Equal(t, Rect{}, l.Footer)
	assert.Zero(t, l.Old.ContentRows())
}

func TestContentRows(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 27, Rect{Height: 29}.ContentRows())
	assert.Equal(t, 0, Rect{Height: 1}.ContentRows())
}
