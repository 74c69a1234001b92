// Package lineio reads text one line at a time with a single line of push-back.
package lineio

import (
	"bufio"
	"errors"
	"io"
)

// MaxLineLength is the longest line Reader returns. Longer lines are
// truncated and the rest of the physical line is dropped.
const MaxLineLength = 4096

// Line is one line of input. The zero-content line and the end-of-stream
// line are distinct: check EOF before looking at Text.
type Line struct {
	Row  int
	Text string
	eof  bool
}

// EOF reports whether l marks the end of the stream.
func (l Line) EOF() bool {
	return l.eof
}

// Reader hands out lines with 1-based row numbers.
type Reader struct {
	br      *bufio.Reader
	row     int
	last    Line
	replay  bool
	err     error
	drained bool
}

func NewReader(r io.Reader) *Reader {
	return &Reader{br: bufio.NewReaderSize(r, MaxLineLength)}
}

// Next returns the next line, or the pushed-back line after Backup.
// Once the stream is exhausted every call returns an EOF line.
func (r *Reader) Next() Line {
	if r.replay {
		r.replay = false
		return r.last
	}
	r.last = r.read()
	return r.last
}

// Backup pushes the most recently returned line back so the following Next
// returns it again. Only one line of push-back exists.
func (r *Reader) Backup() {
	if r.replay {
		panic("lineio: Backup called twice without Next")
	}
	r.replay = true
}

// Peek returns the next line without consuming it.
func (r *Reader) Peek() Line {
	l := r.Next()
	r.Backup()
	return l
}

// Err returns the first read error other than io.EOF.
func (r *Reader) Err() error {
	return r.err
}

func (r *Reader) read() Line {
	if r.drained {
		return Line{Row: r.row + 1, eof: true}
	}

	buf, isPrefix, err := r.br.ReadLine()
	if err != nil {
		r.drained = true
		if !errors.Is(err, io.EOF) {
			r.err = err
		}
		return Line{Row: r.row + 1, eof: true}
	}
	text := string(buf)

	// Drop whatever remains of an over-long line.
	for isPrefix {
		_, isPrefix, err = r.br.ReadLine()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				r.err = err
			}
			r.drained = true
			break
		}
	}

	r.row++
	return Line{Row: r.row, Text: text}
}
