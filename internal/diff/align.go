package diff

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// -------------------------------------------------------------------------
// Render Lines
// -------------------------------------------------------------------------

// RenderKind says how a pane row is drawn.
type RenderKind int

const (
	RenderBlank RenderKind = iota
	RenderSection
	RenderContext
	RenderOld
	RenderNew
	// RenderOldPlaceholder pads the new pane opposite removed lines.
	RenderOldPlaceholder
	// RenderNewPlaceholder pads the old pane opposite added lines.
	RenderNewPlaceholder
)

func (k RenderKind) String() string {
	switch k {
	case RenderBlank:
		return "blank"
	case RenderSection:
		return "section"
	case RenderContext:
		return "context"
	case RenderOld:
		return "old"
	case RenderNew:
		return "new"
	case RenderOldPlaceholder:
		return "old-placeholder"
	case RenderNewPlaceholder:
		return "new-placeholder"
	default:
		return "unknown"
	}
}

// RenderLine is one row of one pane. Text has tabs expanded and control
// characters escaped. Width is its display width in cells.
type RenderLine struct {
	Kind   RenderKind
	Text   string
	Width  int
	LineNo uint
}

// RenderLinePair holds the two panes of a diff. Row i of Old is drawn
// beside row i of New.
type RenderLinePair struct {
	Old      []RenderLine
	New      []RenderLine
	OldWidth int
	NewWidth int

	populated bool
}

func (p *RenderLinePair) Populated() bool {
	return p.populated
}

// Rows is the number of rows in each pane.
func (p *RenderLinePair) Rows() int {
	return max(len(p.Old), len(p.New))
}

// MaxWidth is the widest row across both panes.
func (p *RenderLinePair) MaxWidth() int {
	return max(p.OldWidth, p.NewWidth)
}

func (p *RenderLinePair) appendOld(l RenderLine) {
	p.Old = append(p.Old, l)
	p.OldWidth = max(p.OldWidth, l.Width)
}

func (p *RenderLinePair) appendNew(l RenderLine) {
	p.New = append(p.New, l)
	p.NewWidth = max(p.NewWidth, l.Width)
}

func (p *RenderLinePair) appendBoth(l RenderLine) {
	p.appendOld(l)
	p.appendNew(l)
}

// flush pads the shorter side of an add/remove run so both panes stay in step.
func (p *RenderLinePair) flush(runOld, runNew *int) {
	for ; *runOld < *runNew; *runOld++ {
		p.appendOld(RenderLine{Kind: RenderNewPlaceholder})
	}
	for ; *runNew < *runOld; *runNew++ {
		p.appendNew(RenderLine{Kind: RenderOldPlaceholder})
	}
	*runOld, *runNew = 0, 0
}

// -------------------------------------------------------------------------
// Aligner
// -------------------------------------------------------------------------

// DefaultTabMarker is drawn in the first cell of an expanded tab.
const DefaultTabMarker = "→"

const tabWidth = 4

// cells measures and cuts render text. Ambiguous-width runes take one cell.
var cells = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// CutCells returns the cells [left, left+width) of text as measured by the
// aligner. A wide rune split by either edge is replaced by spaces on the
// left and dropped on the right.
func CutCells(text string, left, width int) string {
	if width <= 0 {
		return ""
	}
	if left > 0 {
		text = cells.TruncateLeft(text, left, "")
	}
	return cells.Truncate(text, width, "")
}

// Aligner turns parsed diffs into side-by-side render lines.
type Aligner struct {
	tabMarker string
}

// AlignOption configures an Aligner.
type AlignOption func(*Aligner)

func WithTabMarker(marker string) AlignOption {
	return func(a *Aligner) {
		if marker != "" {
			a.tabMarker = marker
		}
	}
}

func NewAligner(opts ...AlignOption) *Aligner {
	a := &Aligner{tabMarker: DefaultTabMarker}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Populate fills p from d. It does nothing if p was already populated.
func (a *Aligner) Populate(p *RenderLinePair, d *Diff) {
	if p.populated {
		return
	}
	for i := range d.Hunks {
		a.appendHunk(p, &d.Hunks[i], i == 0)
	}
	p.populated = true
}

func (a *Aligner) appendHunk(p *RenderLinePair, h *Hunk, first bool) {
	if h.Section != "" {
		if !first {
			p.appendBoth(RenderLine{Kind: RenderBlank})
			p.appendBoth(RenderLine{Kind: RenderBlank})
		}
		p.appendBoth(a.line(RenderSection, h.Section, 0))
	}

	oldNo, newNo := h.OldStart, h.NewStart
	var runOld, runNew int
	for _, l := range h.Lines {
		switch l.Kind {
		case LineContext:
			p.flush(&runOld, &runNew)
			p.appendOld(a.line(RenderContext, l.Text, oldNo))
			p.appendNew(a.line(RenderContext, l.Text, newNo))
			oldNo++
			newNo++
		case LineOldOnly:
			p.appendOld(a.line(RenderOld, l.Text, oldNo))
			oldNo++
			runOld++
		case LineNewOnly:
			p.appendNew(a.line(RenderNew, l.Text, newNo))
			newNo++
			runNew++
		}
	}
	p.flush(&runOld, &runNew)
}

func (a *Aligner) line(kind RenderKind, text string, lineNo uint) RenderLine {
	text = escapeControls(a.ExpandTabs(text))
	return RenderLine{
		Kind:   kind,
		Text:   text,
		Width:  cells.StringWidth(text),
		LineNo: lineNo,
	}
}

// ExpandTabs replaces each tab with the marker followed by spaces up to a
// four-cell unit. Text without tabs is returned as is.
func (a *Aligner) ExpandTabs(text string) string {
	if !strings.ContainsRune(text, '\t') {
		return text
	}
	pad := strings.Repeat(" ", tabWidth-1)
	return strings.ReplaceAll(text, "\t", a.tabMarker+pad)
}

// escapeControls makes control characters visible so they cannot move the
// cursor or restyle the terminal. C0 and DEL use caret notation and C1 is
// replaced with U+FFFD.
func escapeControls(text string) string {
	if !strings.ContainsFunc(text, isControl) {
		return text
	}
	var b strings.Builder
	b.Grow(len(text) + 8)
	for _, r := range text {
		switch {
		case r < 0x20:
			b.WriteByte('^')
			b.WriteRune(r + 0x40)
		case r == 0x7f:
			b.WriteString("^?")
		case r >= 0x80 && r < 0xa0:
			b.WriteRune('\uFFFD')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isControl(r rune) bool {
	return r < 0x20 || (r >= 0x7f && r < 0xa0)
}
