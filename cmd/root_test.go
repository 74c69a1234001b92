package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/creack/pty"
	"github.com/nadiff/nadiff/internal/diff"
	"github.com/nadiff/nadiff/internal/format"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoFiles = "diff --git a/main.go b/main.go\n" +
	"index abc..def 100644\n" +
	"--- a/main.go\n" +
	"+++ b/main.go\n" +
	"@@ -1,2 +1,3 @@\n" +
	" package main\n" +
	"-func a() {}\n" +
	"+func b() {}\n" +
	"+func c() {}\n" +
	"diff --git a/README.md b/README.md\n" +
	"index 123..456 100644\n" +
	"--- a/README.md\n" +
	"+++ b/README.md\n" +
	"@@ -1 +1 @@\n" +
	"-old\n" +
	"+new\n"

func TestIsInputPiped(t *testing.T) {
	t.Run("WithPipe", func(t *testing.T) {
		r, w, err := os.Pipe()
		require.NoError(t, err)
		defer r.Close()
		defer w.Close()

		assert.True(t, isInputPiped(r))
	})

	t.Run("WithRedirectedFile", func(t *testing.T) {
		f, err := os.CreateTemp(t.TempDir(), "input.diff")
		require.NoError(t, err)
		defer f.Close()

		assert.True(t, isInputPiped(f))
	})

	t.Run("WithTerminal", func(t *testing.T) {
		ptmx, tty, err := pty.Open()
		if err != nil {
			t.Skipf("no pseudo terminal available: %v", err)
		}
		defer ptmx.Close()
		defer tty.Close()

		assert.False(t, isInputPiped(tty))
	})

	t.Run("WithReader", func(t *testing.T) {
		assert.True(t, isInputPiped(strings.NewReader("")))
	})
}

// execute runs a fresh root command with input on stdin. HOME points at an
// empty directory so no user config is picked up.
func execute(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Chdir(t.TempDir())

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSummaryText(t *testing.T) {
	out, err := execute(t, twoFiles, "--summary")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "main.go")
	assert.Contains(t, lines[0], "+2")
	assert.Contains(t, lines[0], "-1")
	assert.Contains(t, lines[1], "README.md")
	assert.Equal(t, "2 files, 3 insertions(+), 2 deletions(-)", lines[2])
}

func TestSummaryJSONWithFilter(t *testing.T) {
	out, err := execute(t, twoFiles, "--summary", "-f", "json", "--filter", "*.md")
	require.NoError(t, err)

	var s format.Summary
	require.NoError(t, json.Unmarshal([]byte(out), &s))
	require.Len(t, s.Files, 1)
	assert.Equal(t, "b/README.md", s.Files[0].NewPath)
	assert.Equal(t, format.Totals{Files: 1, Added: 1, Removed: 1}, s.Totals)
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		args    []string
		wantErr string
	}{
		{
			name:    "invalid output format",
			input:   twoFiles,
			args:    []string{"--summary", "-f", "xml"},
			wantErr: "invalid output format",
		},
		{
			name:    "filter matches nothing",
			input:   twoFiles,
			args:    []string{"--summary", "--filter", "*.rs"},
			wantErr: "none of the 2 files match",
		},
		{
			name:    "bad filter pattern",
			input:   twoFiles,
			args:    []string{"--summary", "--filter", "[a"},
			wantErr: "[a",
		},
		{
			name:    "unknown theme",
			input:   twoFiles,
			args:    []string{"--theme", "nope"},
			wantErr: `theme "nope" not found`,
		},
		{
			name:    "select matches nothing",
			input:   twoFiles,
			args:    []string{"--select", "zzz"},
			wantErr: `no file matches "zzz"`,
		},
		{
			name:    "malformed diff",
			input:   "diff --git a/x b/x\nindex 1..2\n--- a/x\n+++ b/x\n@@ -1 +1 oops\n",
			args:    []string{"--summary"},
			wantErr: "line 5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.input, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseErrorIsTyped(t *testing.T) {
	_, err := execute(t, "not a diff\n", "--summary")
	require.Error(t, err)

	var perr *diff.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 1, perr.Row)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "--version")
	require.NoError(t, err)
	assert.NotEmpty(t, strings.TrimSpace(out))
}

func TestHelpListsKeyBindings(t *testing.T) {
	out, err := execute(t, "", "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "Key bindings:")
	assert.Contains(t, out, "next file")
	assert.Contains(t, out, "--summary")
}
