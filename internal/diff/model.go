// Package diff parses git-style unified diffs and lines them up for
// side-by-side display.
package diff

import (
	"fmt"
	"strings"
)

// -------------------------------------------------------------------------
// Core Types
// -------------------------------------------------------------------------

// Status is the file-level change recorded by the extended headers.
type Status int

const (
	StatusChanged Status = iota
	StatusNew
	StatusDeleted
)

func (s Status) String() string {
	switch s {
	case StatusNew:
		return "new"
	case StatusDeleted:
		return "deleted"
	default:
		return "changed"
	}
}

// LineKind classifies one line of a hunk body.
type LineKind int

const (
	LineContext LineKind = iota
	LineOldOnly
	LineNewOnly
)

// HunkLine is a hunk body line with its leading marker removed. Lines
// without a "-" or "+" marker, including git's "\ No newline at end of
// file", are context.
type HunkLine struct {
	Kind LineKind
	Text string
}

// Len returns the content length in bytes.
func (l HunkLine) Len() int {
	return len(l.Text)
}

// Hunk is one @@ block. Counts omitted from the header are zero.
type Hunk struct {
	OldStart, OldCount uint
	NewStart, NewCount uint
	Section            string
	Lines              []HunkLine
}

// Diff is everything between two "diff --git" headers.
type Diff struct {
	OldPath string
	NewPath string
	OldName string
	NewName string
	Status  Status
	// HasLineChanges is false for mode-only, rename-only and binary diffs.
	HasLineChanges bool
	Hunks          []Hunk
}

// DisplayName is the label shown in the file list.
func (d *Diff) DisplayName() string {
	if d.OldName == d.NewName {
		return d.OldName
	}
	return fmt.Sprintf("%s -> %s", d.OldName, d.NewName)
}

// Stats counts added and removed lines across all hunks.
func (d *Diff) Stats() (added, removed int) {
	for _, h := range d.Hunks {
		for _, l := range h.Lines {
			switch l.Kind {
			case LineNewOnly:
				added++
			case LineOldOnly:
				removed++
			}
		}
	}
	return added, removed
}

func shortName(path string) string {
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		return path[i+1:]
	}
	return path
}
