// Package tui hosts a segbar widget in a bubbletea program.
//
// The bar is rasterized onto a termcanvas.Grid and printed as runs of
// full-block characters colored with lipgloss. Arrow keys move the
// progress, +/- change the segment count and s cycles the style.
// Rejected changes are reported in the status line and leave the widget
// as it was.
package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/segbar"
	"github.com/gogpu/segbar/termcanvas"
)

// DefaultColumns is the bar width used before the terminal size is known.
const DefaultColumns = 40

// Model is the bubbletea model driving one widget.
type Model struct {
	widget  *segbar.Widget
	keys    keyMap
	help    help.Model
	printer *message.Printer
	lang    language.Tag

	cols int
	err  error
}

// Option configures a Model.
type Option func(*Model)

// WithLanguage selects the status line language. Unsupported languages
// fall back to the closest match.
func WithLanguage(tag language.Tag) Option {
	return func(m *Model) {
		m.lang = matchLanguage(tag)
	}
}

// WithColumns sets the initial bar width in cells.
func WithColumns(cols int) Option {
	return func(m *Model) {
		if cols > 0 {
			m.cols = cols
		}
	}
}

// New creates a Model for w.
func New(w *segbar.Widget, opts ...Option) Model {
	m := Model{
		widget: w,
		keys:   defaultKeyMap(),
		help:   help.New(),
		lang:   language.English,
		cols:   DefaultColumns,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.printer = message.NewPrinter(m.lang)
	return m
}

// Run starts an interactive program for w and blocks until the user quits.
func Run(w *segbar.Widget, opts ...Option) error {
	p := tea.NewProgram(New(w, opts...), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Widget returns the hosted widget.
func (m Model) Widget() *segbar.Widget {
	return m.widget
}

// Err returns the error from the last rejected change, if any.
func (m Model) Err() error {
	return m.err
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		h, _ := appStyle.GetFrameSize()
		m.cols = max(msg.Width-h, 1)
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cfg := m.widget.Config()
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Increase):
		m.err = m.widget.SetProgress(cfg.Progress + 1)
	case key.Matches(msg, m.keys.Decrease):
		m.err = m.widget.SetProgress(cfg.Progress - 1)
	case key.Matches(msg, m.keys.More):
		m.err = m.widget.SetSegmentCount(cfg.SegmentCount + 1)
	case key.Matches(msg, m.keys.Fewer):
		if cfg.SegmentCount > 1 {
			m.err = m.widget.SetSegmentCount(cfg.SegmentCount - 1)
		}
	case key.Matches(msg, m.keys.Style):
		m.widget.SetStyle(cfg.Style.Next())
		m.err = nil
	}
	if m.err != nil {
		segbar.Logger().Debug("tui: change rejected", "err", m.err)
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.printer.Sprintf(msgTitle)))
	b.WriteByte('\n')
	b.WriteString(m.bar())
	b.WriteString("\n\n")
	b.WriteString(m.status())
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	return appStyle.Render(b.String())
}

// bar renders the widget as one line of colored block runes.
func (m Model) bar() string {
	g := termcanvas.NewGrid(m.cols, 1, termcanvas.DefaultCellWidth, termcanvas.DefaultCellHeight)
	termcanvas.RenderGrid(g, m.widget)

	var b strings.Builder
	col := 0
	for col < g.Cols() {
		c, painted := g.At(col, 0)
		run := 1
		for col+run < g.Cols() {
			next, ok := g.At(col+run, 0)
			if ok != painted || next != c {
				break
			}
			run++
		}
		if painted {
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(opaque(c).String()))
			b.WriteString(style.Render(strings.Repeat(string(termcanvas.Block), run)))
		} else {
			b.WriteString(strings.Repeat(" ", run))
		}
		col += run
	}
	return b.String()
}

func opaque(c segbar.RGBA) segbar.RGBA {
	c.A = 1
	return c
}

func (m Model) status() string {
	if m.err != nil {
		return errorStyle.Render(m.errorText(m.err))
	}
	cfg := m.widget.Config()
	return statusStyle.Render(m.printer.Sprintf(msgStatus, cfg.Progress, cfg.SegmentCount, cfg.Style))
}

func (m Model) errorText(err error) string {
	var pe *segbar.ProgressError
	if !errors.As(err, &pe) {
		return err.Error()
	}
	switch {
	case errors.Is(err, segbar.ErrNegativeProgress):
		return m.printer.Sprintf(msgNegative)
	case pe.Value > pe.SegmentCount && pe.SegmentCount < m.widget.Config().SegmentCount:
		// Segment count change below the current progress.
		return m.printer.Sprintf(msgCountBelow, pe.SegmentCount, pe.Value)
	default:
		return m.printer.Sprintf(msgOutOfBounds, pe.Value, pe.SegmentCount)
	}
}
