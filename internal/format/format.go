package format

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/nadiff/nadiff/internal/diff"
)

// OutputFormat represents the format for summary output
type OutputFormat string

const (
	// TextFormat is one line per file plus a totals line (default)
	TextFormat OutputFormat = "text"

	// JSONFormat is the summary as a JSON object
	JSONFormat OutputFormat = "json"
)

// IsValid checks if the output format is valid
func (f OutputFormat) IsValid() bool {
	return f == TextFormat || f == JSONFormat
}

// String returns the string representation of the output format
func (f OutputFormat) String() string {
	return string(f)
}

// FileSummary describes one diff of the input.
type FileSummary struct {
	OldPath string `json:"oldPath"`
	NewPath string `json:"newPath"`
	Status  string `json:"status"`
	// LineChanges is false for mode-only, rename-only and binary diffs.
	LineChanges bool `json:"lineChanges"`
	Hunks       int  `json:"hunks"`
	Added       int  `json:"added"`
	Removed     int  `json:"removed"`
}

// Totals sums the per-file counts.
type Totals struct {
	Files   int `json:"files"`
	Added   int `json:"added"`
	Removed int `json:"removed"`
}

type Summary struct {
	Files  []FileSummary `json:"files"`
	Totals Totals        `json:"totals"`
}

// Summarize collects per-file counts from parsed diffs.
func Summarize(diffs []diff.Diff) Summary {
	s := Summary{Files: make([]FileSummary, 0, len(diffs))}
	for i := range diffs {
		d := &diffs[i]
		added, removed := d.Stats()
		s.Files = append(s.Files, FileSummary{
			OldPath:     d.OldPath,
			NewPath:     d.NewPath,
			Status:      d.Status.String(),
			LineChanges: d.HasLineChanges,
			Hunks:       len(d.Hunks),
			Added:       added,
			Removed:     removed,
		})
		s.Totals.Added += added
		s.Totals.Removed += removed
	}
	s.Totals.Files = len(s.Files)
	return s
}

// FormatSummary renders s according to the specified format
func FormatSummary(s Summary, format OutputFormat) (string, error) {
	switch format {
	case TextFormat:
		return formatText(s), nil
	case JSONFormat:
		jsonBytes, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal JSON: %w", err)
		}
		return string(jsonBytes), nil
	default:
		return "", fmt.Errorf("unsupported output format: %s", format)
	}
}

func formatText(s Summary) string {
	var sb strings.Builder
	for _, f := range s.Files {
		path := f.NewPath
		if strings.TrimPrefix(f.OldPath, "a/") != strings.TrimPrefix(f.NewPath, "b/") {
			path = fmt.Sprintf("%s -> %s", f.OldPath, f.NewPath)
		}
		fmt.Fprintf(&sb, "%-8s +%-4d -%-4d %s\n", f.Status, f.Added, f.Removed, path)
	}
	fmt.Fprintf(&sb, "%d files, %d insertions(+), %d deletions(-)", s.Totals.Files, s.Totals.Added, s.Totals.Removed)
	return sb.String()
}
