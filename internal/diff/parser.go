package diff

import (
	"fmt"
	"io"
	"strings"

	"github.com/nadiff/nadiff/internal/lineio"
)

const (
	diffHeaderPrefix = "diff --git "
	hunkHeaderPrefix = "@@"
)

// ParseError reports malformed diff input at a given input row.
type ParseError struct {
	Row int
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Row, e.Msg)
}

type parseState int

const (
	expectDiffHeader parseState = iota
	expectHunkHeader
	inHunkBody
)

type parser struct {
	lines *lineio.Reader
	state parseState
	diffs []Diff
}

// Parse reads a whole "git diff" stream. It fails on the first malformed
// line and on input that holds no diff at all.
func Parse(r io.Reader) ([]Diff, error) {
	p := &parser{lines: lineio.NewReader(r)}
	err := p.run()
	if readErr := p.lines.Err(); readErr != nil {
		return nil, fmt.Errorf("reading diff: %w", readErr)
	}
	if err != nil {
		return nil, err
	}
	return p.diffs, nil
}

func (p *parser) run() error {
	for {
		var (
			done bool
			err  error
		)
		switch p.state {
		case expectDiffHeader:
			done, err = p.parseDiff()
		case expectHunkHeader:
			err = p.parseHunkHeader()
		case inHunkBody:
			done, err = p.parseHunkBody()
		}
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

func (p *parser) errorf(l lineio.Line, format string, args ...any) error {
	return &ParseError{Row: l.Row, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) current() *Diff {
	return &p.diffs[len(p.diffs)-1]
}

func (p *parser) parseDiff() (bool, error) {
	l := p.lines.Next()
	if l.EOF() || !strings.HasPrefix(l.Text, diffHeaderPrefix) {
		return false, p.errorf(l, "expected diff header")
	}

	paths := l.Text[len(diffHeaderPrefix):]
	sp := strings.IndexByte(paths, ' ')
	if sp < 0 {
		return false, p.errorf(l, "diff header has no new path: %q", l.Text)
	}
	d := Diff{
		OldPath: paths[:sp],
		NewPath: paths[sp+1:],
	}
	d.OldName = shortName(d.OldPath)
	d.NewName = shortName(d.NewPath)

	if err := p.parseExtendedHeaders(&d); err != nil {
		return false, err
	}
	p.diffs = append(p.diffs, d)

	if !d.HasLineChanges {
		return p.lines.Peek().EOF(), nil
	}

	for _, marker := range []string{"---", "+++"} {
		if next := p.lines.Next(); next.EOF() {
			return false, p.errorf(next, "expected %s line", marker)
		}
	}
	p.state = expectHunkHeader
	return false, nil
}

func (p *parser) parseExtendedHeaders(d *Diff) error {
	for {
		l := p.lines.Next()
		if l.EOF() {
			p.lines.Backup()
			return nil
		}

		switch text := l.Text; {
		case strings.HasPrefix(text, "old mode"):
			if err := p.expect("new mode"); err != nil {
				return err
			}
		case strings.HasPrefix(text, "copy from"):
			if err := p.expect("copy to"); err != nil {
				return err
			}
		case strings.HasPrefix(text, "new file"):
			d.Status = StatusNew
		case strings.HasPrefix(text, "delete"):
			d.Status = StatusDeleted
		case strings.HasPrefix(text, "similarity index"), strings.HasPrefix(text, "dissimilarity index"):
			if err := p.expectRenameOrCopy(); err != nil {
				return err
			}
		case strings.HasPrefix(text, "index "):
			p.parseIndexTrailer(d)
			return nil
		case strings.HasPrefix(text, "--- "):
			// Some producers skip the index line.
			p.lines.Backup()
			d.HasLineChanges = true
			return nil
		default:
			p.lines.Backup()
			return nil
		}
	}
}

// parseIndexTrailer decides from the line after "index" whether hunks follow.
func (p *parser) parseIndexTrailer(d *Diff) {
	next := p.lines.Next()
	switch {
	case !next.EOF() && strings.HasPrefix(next.Text, "Binary files "):
	case next.EOF(), strings.HasPrefix(next.Text, diffHeaderPrefix):
		p.lines.Backup()
	default:
		d.HasLineChanges = true
		p.lines.Backup()
	}
}

func (p *parser) expect(prefix string) error {
	l := p.lines.Next()
	if l.EOF() || !strings.HasPrefix(l.Text, prefix) {
		return p.errorf(l, "expected %q header", prefix)
	}
	return nil
}

// expectRenameOrCopy reads the pair that follows a similarity index. Besides
// renames, git emits "copy from"/"copy to" here for copies detected with -C.
func (p *parser) expectRenameOrCopy() error {
	l := p.lines.Next()
	switch {
	case l.EOF():
	case strings.HasPrefix(l.Text, "rename from"):
		return p.expect("rename to")
	case strings.HasPrefix(l.Text, "copy from"):
		return p.expect("copy to")
	}
	return p.errorf(l, "expected \"rename from\" header")
}

func (p *parser) parseHunkHeader() error {
	l := p.lines.Next()
	if l.EOF() || !strings.HasPrefix(l.Text, hunkHeaderPrefix) {
		return p.errorf(l, "expected hunk header")
	}
	h, err := ParseHunkHeader(l.Text)
	if err != nil {
		return p.errorf(l, "%v", err)
	}
	d := p.current()
	d.Hunks = append(d.Hunks, h)
	p.state = inHunkBody
	return nil
}

func (p *parser) parseHunkBody() (bool, error) {
	d := p.current()
	h := &d.Hunks[len(d.Hunks)-1]

	for {
		l := p.lines.Next()
		var next parseState
		switch {
		case l.EOF():
			if len(h.Lines) == 0 {
				return false, p.errorf(l, "hunk has no lines")
			}
			return true, nil
		case strings.HasPrefix(l.Text, diffHeaderPrefix):
			next = expectDiffHeader
		case strings.HasPrefix(l.Text, hunkHeaderPrefix):
			next = expectHunkHeader
		default:
			h.Lines = append(h.Lines, parseHunkLine(l.Text))
			continue
		}

		if len(h.Lines) == 0 {
			return false, p.errorf(l, "hunk has no lines")
		}
		p.lines.Backup()
		p.state = next
		return false, nil
	}
}

func parseHunkLine(text string) HunkLine {
	if text == "" {
		return HunkLine{Kind: LineContext}
	}
	kind := LineContext
	switch text[0] {
	case '-':
		kind = LineOldOnly
	case '+':
		kind = LineNewOnly
	}
	return HunkLine{Kind: kind, Text: text[1:]}
}

// ParseHunkHeader parses "@@ -s[,c] +s[,c] @@[ section]". The layout is
// fixed: any deviation, including a missing number, is an error.
func ParseHunkHeader(text string) (Hunk, error) {
	sc := headerScanner{s: text}

	var (
		h   Hunk
		err error
	)
	if err = sc.literal("@@ -"); err != nil {
		return Hunk{}, err
	}
	if h.OldStart, h.OldCount, err = sc.rangeSpec(); err != nil {
		return Hunk{}, err
	}
	if err = sc.literal(" +"); err != nil {
		return Hunk{}, err
	}
	if h.NewStart, h.NewCount, err = sc.rangeSpec(); err != nil {
		return Hunk{}, err
	}
	if err = sc.literal(" @@"); err != nil {
		return Hunk{}, err
	}

	if rest := text[sc.pos:]; rest != "" {
		if rest[0] != ' ' {
			return Hunk{}, fmt.Errorf("unexpected %q after hunk range", rest)
		}
		h.Section = rest[1:]
	}
	return h, nil
}

type headerScanner struct {
	s   string
	pos int
}

func (sc *headerScanner) literal(lit string) error {
	if !strings.HasPrefix(sc.s[sc.pos:], lit) {
		return fmt.Errorf("malformed hunk header: expected %q at column %d", lit, sc.pos+1)
	}
	sc.pos += len(lit)
	return nil
}

func (sc *headerScanner) rangeSpec() (start, count uint, err error) {
	if start, err = sc.number(); err != nil {
		return 0, 0, err
	}
	if sc.pos < len(sc.s) && sc.s[sc.pos] == ',' {
		sc.pos++
		if count, err = sc.number(); err != nil {
			return 0, 0, err
		}
	}
	return start, count, nil
}

// number reads decimal digits greedily. Values wrap instead of failing on overflow.
func (sc *headerScanner) number() (uint, error) {
	begin := sc.pos
	var n uint
	for sc.pos < len(sc.s) && sc.s[sc.pos] >= '0' && sc.s[sc.pos] <= '9' {
		n = n*10 + uint(sc.s[sc.pos]-'0')
		sc.pos++
	}
	if sc.pos == begin {
		return 0, fmt.Errorf("malformed hunk header: expected number at column %d", begin+1)
	}
	return n, nil
}
