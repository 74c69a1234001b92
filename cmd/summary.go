package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/nadiff/nadiff/internal/diff"
	"github.com/nadiff/nadiff/internal/format"
	"github.com/nadiff/nadiff/internal/logging"
)

// handleSummaryMode prints a per-file summary of diffs instead of starting
// the viewer.
func handleSummaryMode(out io.Writer, diffs []diff.Diff, outputFormat format.OutputFormat, logLevel string, verbose bool) error {
	if verbose {
		if err := logging.SetupStderr(logLevel); err != nil {
			return err
		}
	} else {
		slog.SetDefault(slog.New(slog.DiscardHandler))
	}

	summary := format.Summarize(diffs)
	slog.Info("Summarized diffs", "files", summary.Totals.Files, "added", summary.Totals.Added, "removed", summary.Totals.Removed)

	text, err := format.FormatSummary(summary, outputFormat)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, text)
	return err
}
