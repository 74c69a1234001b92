package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	charmlog "github.com/charmbracelet/log"
	"github.com/go-logfmt/logfmt"
	"github.com/nadiff/nadiff/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decode returns the key/value pairs of each logfmt record in data.
func decode(t *testing.T, data []byte) []map[string]string {
	t.Helper()

	var records []map[string]string
	d := logfmt.NewDecoder(bytes.NewReader(data))
	for d.ScanRecord() {
		rec := make(map[string]string)
		for d.ScanKeyval() {
			rec[string(d.Key())] = string(d.Value())
		}
		records = append(records, rec)
	}
	require.NoError(t, d.Err())
	return records
}

func TestNewWritesLogfmt(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := New(&buf, "info", charmlog.LogfmtFormatter)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("parsed input", "diffs", 3, "path", "b/main.go")

	records := decode(t, buf.Bytes())
	require.Len(t, records, 1)
	assert.Equal(t, "parsed input", records[0]["msg"])
	assert.Equal(t, "info", records[0]["level"])
	assert.Equal(t, "3", records[0]["diffs"])
	assert.Equal(t, "b/main.go", records[0]["path"])
	assert.NotEmpty(t, records[0]["time"])
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(&bytes.Buffer{}, "chatty", charmlog.LogfmtFormatter)
	assert.Error(t, err)
}

func TestSetupWritesToFile(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	path := filepath.Join(t.TempDir(), "logs", "nadiff.log")
	closer, err := Setup(&config.Config{Log: config.LogConfig{File: path, Level: "debug"}})
	require.NoError(t, err)

	slog.Debug("aligned diff", "rows", 12)
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	records := decode(t, data)
	require.Len(t, records, 1)
	assert.Equal(t, "aligned diff", records[0]["msg"])
	assert.Equal(t, "12", records[0]["rows"])
}

func TestSetupWithoutFileDiscards(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	closer, err := Setup(&config.Config{Log: config.LogConfig{Level: "info"}})
	require.NoError(t, err)
	assert.NoError(t, closer.Close())
	assert.NoError(t, closer.Close(), "closing again is harmless")
	assert.IsType(t, nopCloser{}, closer)
	assert.False(t, slog.Default().Enabled(t.Context(), slog.LevelError))
}

func TestRecoverPanicRunsCleanup(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
	slog.SetDefault(slog.New(slog.DiscardHandler))

	cleaned := false
	func() {
		defer RecoverPanic("test", func() { cleaned = true })
		panic("boom")
	}()
	assert.True(t, cleaned)

	matches, err := filepath.Glob(filepath.Join(os.TempDir(), "nadiff-panic-test-*.log"))
	require.NoError(t, err)
	assert.NotEmpty(t, matches)
	for _, m := range matches {
		os.Remove(m)
	}
}
