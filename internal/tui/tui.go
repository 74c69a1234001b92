package tui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nadiff/nadiff/internal/config"
	"github.com/nadiff/nadiff/internal/session"
	"github.com/nadiff/nadiff/internal/theme"
	"github.com/nadiff/nadiff/internal/tui/canvas"
	"github.com/nadiff/nadiff/internal/tui/components/filelist"
	"github.com/nadiff/nadiff/internal/tui/components/pane"
	"github.com/nadiff/nadiff/internal/tui/layout"
	"github.com/nadiff/nadiff/internal/tui/styles"
)

const (
	tooSmallMessage = "Increase terminal size.."
	noChangesText   = "no line changes"
)

// Model is the bubbletea model of the viewer. All state lives in the
// session; the model only translates messages and paints frames.
type Model struct {
	session *session.Session
	keys    KeyMap
	styles  styles.Styles
	help    help.Model
	limits  layout.Limits

	width, height int
	frame         string
	err           error
}

var _ tea.Model = (*Model)(nil)

type Option func(*Model)

func WithTheme(t theme.Theme) Option {
	return func(m *Model) {
		m.styles = styles.New(t)
	}
}

func WithLimits(l layout.Limits) Option {
	return func(m *Model) {
		m.limits = l
	}
}

func WithKeyMap(k KeyMap) Option {
	return func(m *Model) {
		m.keys = k
	}
}

func New(s *session.Session, opts ...Option) *Model {
	th, err := theme.Get(config.DefaultTheme)
	if err != nil {
		slog.Error("default theme missing", "error", err)
	}
	m := &Model{
		session: s,
		keys:    DefaultKeyMap(),
		styles:  styles.New(th),
		help:    help.New(),
		limits:  layout.DefaultLimits(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		l := layout.Compute(msg.Width, msg.Height, m.limits)
		m.session.Resize(session.Viewport{
			ListRows: l.List.ContentRows(),
			PaneRows: l.Old.ContentRows(),
		})
	case tea.KeyMsg:
		m.session.Apply(m.keys.Action(msg))
	}

	if m.session.Done() {
		return m, tea.Quit
	}
	// Nothing can be drawn before the first size message.
	if m.width == 0 || m.height == 0 || !m.session.NeedsRedraw() {
		return m, nil
	}
	if err := m.repaint(); err != nil {
		slog.Error("Failed to draw the diff", "error", err)
		m.err = err
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) View() string {
	return m.frame
}

// Err is the render error that ended the program, if any.
func (m *Model) Err() error {
	return m.err
}

func (m *Model) repaint() error {
	l := layout.Compute(m.width, m.height, m.limits)
	c := canvas.New(m.width, m.height)
	if l.TooSmall {
		c.MoveTo(0, 0)
		c.Write(m.styles.Warning, tooSmallMessage)
	} else if err := m.draw(c, l); err != nil {
		return err
	}
	m.frame = c.String()
	m.session.ClearRedraw()
	return nil
}

func (m *Model) draw(c canvas.Surface, l layout.Layout) error {
	start, end := m.session.ListWindow()
	filelist.Draw(c, l.List, filelist.Model{
		Diffs:    m.session.Diffs(),
		Selected: m.session.Selected(),
		Start:    start,
		End:      end,
	}, m.styles)

	d, pair := m.session.Current()
	var empty string
	if !d.HasLineChanges {
		empty = noChangesText
	}
	old := pane.Model{
		Title:   d.OldPath,
		Lines:   pair.Old,
		Offset:  m.session.Offset(session.PaneOld),
		HOffset: m.session.HOffset(),
		Empty:   empty,
	}
	if err := pane.Draw(c, l.Old, old, m.styles); err != nil {
		return err
	}
	neu := pane.Model{
		Title:   d.NewPath,
		Lines:   pair.New,
		Offset:  m.session.Offset(session.PaneNew),
		HOffset: m.session.HOffset(),
		Empty:   empty,
	}
	if err := pane.Draw(c, l.New, neu, m.styles); err != nil {
		return err
	}

	if l.Footer.Height > 0 {
		c.MoveTo(l.Footer.X, l.Footer.Y)
		c.Write(lipgloss.NewStyle(), m.help.ShortHelpView(m.keys.ShortHelp()))
	}
	return nil
}
