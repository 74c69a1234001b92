// Package session holds the navigation state of one viewing session: which
// diff is selected, how far each pane is scrolled, and whether the screen
// needs repainting.
package session

import (
	"log/slog"

	"github.com/nadiff/nadiff/internal/diff"
)

// Action is a navigation request decoded from a key press.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionNextDiff
	ActionPrevDiff
	ActionScrollUp
	ActionScrollDown
	ActionScrollLeft
	ActionScrollRight
	ActionScrollOldUp
	ActionScrollOldDown
	ActionScrollNewUp
	ActionScrollNewDown
)

// Pane selects one side of the side-by-side view.
type Pane int

const (
	PaneOld Pane = iota
	PaneNew
)

const (
	DefaultScrollStep  = 5
	DefaultHScrollStep = 1
)

// Viewport is the number of content rows available to the file list and
// to each pane.
type Viewport struct {
	ListRows int
	PaneRows int
}

type Session struct {
	diffs   []diff.Diff
	pairs   []diff.RenderLinePair
	aligner *diff.Aligner

	selected  int
	offsets   [2]int
	hOffset   int
	listStart int
	viewport  Viewport

	scrollStep  int
	hScrollStep int

	redraw bool
	done   bool
}

type Option func(*Session)

func WithScrollStep(rows int) Option {
	return func(s *Session) {
		if rows > 0 {
			s.scrollStep = rows
		}
	}
}

func WithHScrollStep(cols int) Option {
	return func(s *Session) {
		if cols > 0 {
			s.hScrollStep = cols
		}
	}
}

func WithAligner(a *diff.Aligner) Option {
	return func(s *Session) {
		if a != nil {
			s.aligner = a
		}
	}
}

// WithSelected starts the session on diff i instead of the first one.
// Out of range values are ignored.
func WithSelected(i int) Option {
	return func(s *Session) {
		if i >= 0 && i < len(s.diffs) {
			s.selected = i
		}
	}
}

// New starts a session on the first diff. diffs must not be empty.
func New(diffs []diff.Diff, opts ...Option) *Session {
	s := &Session{
		diffs:       diffs,
		pairs:       make([]diff.RenderLinePair, len(diffs)),
		aligner:     diff.NewAligner(),
		scrollStep:  DefaultScrollStep,
		hScrollStep: DefaultHScrollStep,
		redraw:      true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) Len() int {
	return len(s.diffs)
}

func (s *Session) Selected() int {
	return s.selected
}

// Diffs returns every diff of the session in input order.
func (s *Session) Diffs() []diff.Diff {
	return s.diffs
}

// Diff returns the diff at index i.
func (s *Session) Diff(i int) *diff.Diff {
	return &s.diffs[i]
}

// Current returns the selected diff and its render lines, building them on
// first use.
func (s *Session) Current() (*diff.Diff, *diff.RenderLinePair) {
	return &s.diffs[s.selected], s.pair()
}

func (s *Session) pair() *diff.RenderLinePair {
	p := &s.pairs[s.selected]
	if !p.Populated() {
		s.aligner.Populate(p, &s.diffs[s.selected])
		slog.Debug("aligned diff", "index", s.selected, "path", s.diffs[s.selected].NewPath, "rows", p.Rows())
	}
	return p
}

// Offset is the first visible row of a pane.
func (s *Session) Offset(p Pane) int {
	return s.offsets[p]
}

// HOffset is the number of columns scrolled off the left edge of both panes.
func (s *Session) HOffset() int {
	return s.hOffset
}

// ListWindow is the half-open range of diff indexes shown in the file list.
func (s *Session) ListWindow() (start, end int) {
	end = len(s.diffs)
	if s.viewport.ListRows > 0 {
		end = min(end, s.listStart+s.viewport.ListRows)
	}
	return s.listStart, end
}

func (s *Session) Viewport() Viewport {
	return s.viewport
}

func (s *Session) NeedsRedraw() bool {
	return s.redraw
}

func (s *Session) ClearRedraw() {
	s.redraw = false
}

// Done reports whether the user asked to quit.
func (s *Session) Done() bool {
	return s.done
}

// Resize records new dimensions. It always requests a repaint.
func (s *Session) Resize(v Viewport) {
	s.viewport = v
	s.keepSelectionVisible()
	s.clampOffsets()
	s.redraw = true
}

// Apply performs a navigation action and reports whether anything changed.
// Changes also set the redraw flag.
func (s *Session) Apply(a Action) bool {
	var changed bool
	switch a {
	case ActionQuit:
		s.done = true
		return true
	case ActionNextDiff:
		changed = s.selectDiff(s.selected + 1)
	case ActionPrevDiff:
		changed = s.selectDiff(s.selected - 1)
	case ActionScrollUp:
		changed = s.scroll(PaneOld, -s.scrollStep)
		changed = s.scroll(PaneNew, -s.scrollStep) || changed
	case ActionScrollDown:
		changed = s.scroll(PaneOld, s.scrollStep)
		changed = s.scroll(PaneNew, s.scrollStep) || changed
	case ActionScrollOldUp:
		changed = s.scroll(PaneOld, -s.scrollStep)
	case ActionScrollOldDown:
		changed = s.scroll(PaneOld, s.scrollStep)
	case ActionScrollNewUp:
		changed = s.scroll(PaneNew, -s.scrollStep)
	case ActionScrollNewDown:
		changed = s.scroll(PaneNew, s.scrollStep)
	case ActionScrollLeft:
		changed = s.scrollH(-s.hScrollStep)
	case ActionScrollRight:
		changed = s.scrollH(s.hScrollStep)
	}
	if changed {
		s.redraw = true
	}
	return changed
}

func (s *Session) selectDiff(i int) bool {
	if i < 0 || i >= len(s.diffs) || i == s.selected {
		return false
	}
	s.selected = i
	s.offsets = [2]int{}
	s.hOffset = 0
	s.keepSelectionVisible()
	return true
}

func (s *Session) keepSelectionVisible() {
	rows := s.viewport.ListRows
	if rows <= 0 {
		return
	}
	if s.selected < s.listStart {
		s.listStart = s.selected
	}
	if s.selected >= s.listStart+rows {
		s.listStart = s.selected - rows + 1
	}
	// Grow the window back when the list gets taller.
	s.listStart = max(0, min(s.listStart, len(s.diffs)-rows))
}

func (s *Session) maxOffset() int {
	return max(0, s.pair().Rows()-s.viewport.PaneRows)
}

func (s *Session) scroll(p Pane, delta int) bool {
	next := min(max(s.offsets[p]+delta, 0), s.maxOffset())
	if next == s.offsets[p] {
		return false
	}
	s.offsets[p] = next
	return true
}

func (s *Session) scrollH(delta int) bool {
	next := min(max(s.hOffset+delta, 0), s.pair().MaxWidth())
	if next == s.hOffset {
		return false
	}
	s.hOffset = next
	return true
}

func (s *Session) clampOffsets() {
	limit := s.maxOffset()
	for i := range s.offsets {
		s.offsets[i] = min(s.offsets[i], limit)
	}
}
