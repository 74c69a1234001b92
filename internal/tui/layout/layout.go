// Package layout splits the screen into the file list, the two diff panes
// and the footer.
package layout

// HeaderRows is the number of rows each region spends on its title and rule.
const HeaderRows = 2

type Rect struct {
	X, Y          int
	Width, Height int
}

// ContentRows is the number of rows left under the region's header.
func (r Rect) ContentRows() int {
	return max(r.Height-HeaderRows, 0)
}

// Limits bound the layout. Below MinWidth x MinHeight nothing but an
// advisory is drawn.
type Limits struct {
	MinWidth     int
	MinHeight    int
	ListMaxWidth int
	PaneMaxWidth int
}

func DefaultLimits() Limits {
	return Limits{
		MinWidth:     101,
		MinHeight:    21,
		ListMaxWidth: 40,
		PaneMaxWidth: 200,
	}
}

type Layout struct {
	Width, Height int
	List          Rect
	Old           Rect
	New           Rect
	Footer        Rect
	TooSmall      bool
}

// Compute gives the list a tenth of the width, capped, and splits the rest
// between the panes. A column left over by an odd split goes to the list;
// space beyond the pane cap stays empty.
func Compute(width, height int, lim Limits) Layout {
	width, height = max(width, 0), max(height, 0)
	l := Layout{
		Width:    width,
		Height:   height,
		TooSmall: width < lim.MinWidth || height < lim.MinHeight,
	}

	body := max(height-1, 0)
	list := min(width/10, lim.ListMaxWidth)
	half := (width - list) / 2
	pane := min(half, lim.PaneMaxWidth)
	if pane == half {
		list += width - list - 2*pane
	}

	l.List = Rect{X: 0, Y: 0, Width: list, Height: body}
	l.Old = Rect{X: list, Y: 0, Width: pane, Height: body}
	l.New = Rect{X: list + pane, Y: 0, Width: pane, Height: body}
	if height > 0 {
		l.Footer = Rect{X: 0, Y: body, Width: width, Height: 1}
	}
	return l
}
