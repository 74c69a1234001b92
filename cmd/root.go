package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/nadiff/nadiff/internal/config"
	"github.com/nadiff/nadiff/internal/diff"
	"github.com/nadiff/nadiff/internal/format"
	"github.com/nadiff/nadiff/internal/logging"
	"github.com/nadiff/nadiff/internal/session"
	"github.com/nadiff/nadiff/internal/theme"
	"github.com/nadiff/nadiff/internal/tui"
	"github.com/nadiff/nadiff/internal/tui/layout"
	"github.com/nadiff/nadiff/internal/version"
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nadiff",
		Short: "A side-by-side viewer for unified diffs",
		Long: `nadiff reads a unified diff, as produced by git diff, from standard input and
shows it side by side in the terminal: a list of files on the left and the old
and new versions of the selected file next to each other.

Key bindings:
` + tui.DefaultKeyMap().Describe(),
		Example: `  git diff | nadiff
  git show HEAD | nadiff --filter '**/*.go'
  git diff | nadiff --select parser
  git diff main | nadiff --summary -f json`,
		SilenceUsage: true,
		RunE:         run,
	}

	cmd.Flags().BoolP("help", "h", false, "Help")
	cmd.Flags().BoolP("version", "v", false, "Version")
	cmd.Flags().BoolP("debug", "d", false, "Debug")
	cmd.Flags().String("config", "", "Config file (default is $HOME/.nadiff.json)")
	cmd.Flags().String("theme", "", fmt.Sprintf("Color theme (%v)", theme.Names()))
	cmd.Flags().StringSlice("filter", nil, "Only show files matching the glob pattern (repeatable)")
	cmd.Flags().StringP("select", "s", "", "Open the viewer on the file whose path best fuzzy-matches the query")
	cmd.Flags().Bool("summary", false, "Print a per-file summary instead of starting the viewer")
	cmd.Flags().StringP("output-format", "f", format.TextFormat.String(), "Output format for summary mode (text, json)")
	cmd.Flags().Bool("verbose", false, "Display logs to stderr in summary mode")
	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	// If the help flag is set, show the help message
	if cmd.Flag("help").Changed {
		return cmd.Help()
	}
	if cmd.Flag("version").Changed {
		fmt.Fprintln(cmd.OutOrStdout(), version.Version)
		return nil
	}

	summary, _ := cmd.Flags().GetBool("summary")
	in := cmd.InOrStdin()
	if !isInputPiped(in) {
		if summary {
			return errors.New("--summary needs a diff on standard input, e.g. git diff | nadiff --summary")
		}
		return cmd.Help()
	}

	outputFormatStr, _ := cmd.Flags().GetString("output-format")
	outputFormat := format.OutputFormat(outputFormatStr)
	if !outputFormat.IsValid() {
		return fmt.Errorf("invalid output format: %s", outputFormatStr)
	}

	// Load the config
	debug, _ := cmd.Flags().GetBool("debug")
	configFile, _ := cmd.Flags().GetString("config")
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current working directory: %w", err)
	}
	cfg, err := config.Load(cwd, configFile, debug)
	if err != nil {
		return err
	}
	if name, _ := cmd.Flags().GetString("theme"); name != "" {
		cfg.TUI.Theme = name
	}

	diffs, err := diff.Parse(in)
	if err != nil {
		return err
	}
	patterns, _ := cmd.Flags().GetStringSlice("filter")
	if len(patterns) > 0 {
		total := len(diffs)
		diffs, err = diff.Filter(diffs, patterns)
		if err != nil {
			return err
		}
		if len(diffs) == 0 {
			return fmt.Errorf("none of the %d files match %v", total, patterns)
		}
	}

	if summary {
		verbose, _ := cmd.Flags().GetBool("verbose")
		return handleSummaryMode(cmd.OutOrStdout(), diffs, outputFormat, cfg.Log.Level, verbose)
	}

	selected := 0
	if query, _ := cmd.Flags().GetString("select"); query != "" {
		i, ok := diff.Find(diffs, query)
		if !ok {
			return fmt.Errorf("no file matches %q", query)
		}
		selected = i
	}
	return runViewer(cfg, diffs, selected)
}

func runViewer(cfg *config.Config, diffs []diff.Diff, selected int) error {
	th, err := theme.Get(cfg.TUI.Theme)
	if err != nil {
		return err
	}

	logFile, err := logging.Setup(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	s := session.New(diffs,
		session.WithScrollStep(cfg.TUI.ScrollStep),
		session.WithHScrollStep(cfg.TUI.HScrollStep),
		session.WithAligner(diff.NewAligner(diff.WithTabMarker(cfg.TUI.TabMarker))),
		session.WithSelected(selected),
	)
	model := tui.New(s,
		tui.WithTheme(th),
		tui.WithLimits(layout.Limits{
			MinWidth:     cfg.TUI.MinWidth,
			MinHeight:    cfg.TUI.MinHeight,
			ListMaxWidth: cfg.TUI.ListMaxWidth,
			PaneMaxWidth: cfg.TUI.PaneMaxWidth,
		}),
	)

	// Standard input holds the diff, so keys are read from the terminal.
	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithInputTTY(),
	)
	slog.Info("Starting viewer", "files", len(diffs), "theme", th.Name)

	if _, err := program.Run(); err != nil {
		slog.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}
	if err := model.Err(); err != nil {
		return fmt.Errorf("rendering diff: %w", err)
	}
	slog.Info("Viewer exited")
	return nil
}

// isInputPiped reports whether r carries data rather than an interactive
// terminal. Readers that are not files, as used in tests, count as piped.
func isInputPiped(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return true
	}
	return !term.IsTerminal(int(f.Fd()))
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
