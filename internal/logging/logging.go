// Package logging wires log/slog to charmbracelet/log.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/nadiff/nadiff/internal/config"
)

const prefix = "nadiff"

// New returns a slog logger that writes through charmbracelet/log.
func New(w io.Writer, level string, formatter charmlog.Formatter) (*slog.Logger, error) {
	lvl, err := charmlog.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}
	charmLogger := charmlog.NewWithOptions(w, charmlog.Options{
		Level:           lvl,
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Formatter:       formatter,
		Prefix:          prefix,
	})
	return slog.New(charmLogger), nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Setup installs the default slog logger for the interactive viewer. Records
// go to the configured log file in logfmt; without a file they are dropped,
// since the terminal belongs to the viewer. The returned Closer closes the file.
func Setup(cfg *config.Config) (io.Closer, error) {
	if cfg.Log.File == "" {
		slog.SetDefault(slog.New(slog.DiscardHandler))
		return nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Log.File), 0o755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}

	logger, err := New(f, cfg.Log.Level, charmlog.LogfmtFormatter)
	if err != nil {
		f.Close()
		return nil, err
	}
	slog.SetDefault(logger)
	return f, nil
}

// SetupStderr installs a human-readable logger on stderr, used when no
// full-screen UI is running.
func SetupStderr(level string) error {
	logger, err := New(os.Stderr, level, charmlog.TextFormatter)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)
	return nil
}

// RecoverPanic is a common function to handle panics gracefully.
// It logs the error, creates a panic log file with stack trace,
// and executes an optional cleanup function.
func RecoverPanic(name string, cleanup func()) {
	if r := recover(); r != nil {
		slog.Error("panic", "in", name, "value", r)

		timestamp := time.Now().Format("20060102-150405")
		filename := filepath.Join(os.TempDir(), fmt.Sprintf("%s-panic-%s-%s.log", prefix, name, timestamp))

		file, err := os.Create(filename)
		if err != nil {
			slog.Error("failed to create panic log file", "path", filename, "error", err)
		} else {
			defer file.Close()
			fmt.Fprintf(file, "Panic in %s: %v\n\n", name, r)
			fmt.Fprintf(file, "Time: %s\n\n", time.Now().Format(time.RFC3339))
			fmt.Fprintf(file, "Stack Trace:\n%s\n", string(debug.Stack()))
			slog.Info("panic details written", "path", filename)
		}

		if cleanup != nil {
			cleanup()
		}
	}
}
