// Package tui hosts the marquee in a terminal with bubbletea: one line of
// scrolling text plus an optional status line.
package tui

import (
	"fmt"
	"image/color"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/edward-ap/marquee/internal/marquee"
	"github.com/edward-ap/marquee/internal/metrics"
)

const (
	frameInterval = time.Second / 30
	idleInterval  = 250 * time.Millisecond
	speedStep     = 5
)

type tickMsg time.Time

const (
	cellScrollSpeed  = 8
	cellLabelSpacing = 4
	cellFadeLength   = 3
)

// DefaultConfig is marquee.DefaultConfig scaled from pixels to cells.
func DefaultConfig() marquee.Config {
	cfg := marquee.DefaultConfig()
	cfg.ScrollSpeed = cellScrollSpeed
	cfg.LabelSpacing = cellLabelSpacing
	cfg.FadeLength = cellFadeLength
	return cfg
}

// CellConfig converts a pixel configuration to cells. Each length scales by
// the ratio between its cell and pixel defaults, so marquee.DefaultConfig maps
// to DefaultConfig. Pause, direction, alignment and mode carry over.
func CellConfig(px marquee.Config) marquee.Config {
	cfg := px
	cfg.ScrollSpeed = px.ScrollSpeed * cellScrollSpeed / marquee.DefaultScrollSpeed
	cfg.LabelSpacing = px.LabelSpacing * cellLabelSpacing / marquee.DefaultLabelSpacing
	cfg.FadeLength = px.FadeLength * cellFadeLength / marquee.DefaultFadeLength
	return cfg
}

// Options configures the terminal model.
type Options struct {
	Config     marquee.Config
	Foreground color.Color
	Background color.Color
	ShowStatus bool
	Logger     *zerolog.Logger
	Renderer   *lipgloss.Renderer
	Clock      func() time.Time
}

// Model is a bubbletea model that drives a marquee on the terminal frame
// loop. The terminal counts as a live display while it has focus.
type Model struct {
	mq       *marquee.Marquee
	re       *lipgloss.Renderer
	bg       color.Color
	status   bool
	now      func() time.Time
	quitting bool
}

// New builds a model showing text.
func New(text string, opts Options) Model {
	if opts.Renderer == nil {
		opts.Renderer = lipgloss.DefaultRenderer()
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Config == (marquee.Config{}) {
		opts.Config = DefaultConfig()
	}
	if opts.Foreground == nil {
		opts.Foreground = color.White
	}
	if opts.Background == nil {
		opts.Background = color.Black
	}
	mq := marquee.New(metrics.Cells{}, marquee.Options{Config: opts.Config, Logger: opts.Logger, Clock: opts.Clock})
	mq.SetTextColor(opts.Foreground)
	mq.SetText(text)
	mq.OnAttachedToLiveDisplay()
	return Model{mq: mq, re: opts.Renderer, bg: opts.Background, status: opts.ShowStatus, now: opts.Clock}
}

// Marquee exposes the underlying marquee, mainly for hosts feeding new text.
func (m Model) Marquee() *marquee.Marquee { return m.mq }

func (m Model) Init() tea.Cmd { return m.scheduleTick() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.mq.OnGeometryChanged(float32(msg.Width), 1)
	case tea.FocusMsg:
		m.mq.OnAttachedToLiveDisplay()
	case tea.BlurMsg:
		m.mq.OnDetachedOrBackgrounded()
	case tickMsg:
		m.mq.Tick(time.Time(msg))
		return m, m.scheduleTick()
	case SetTextMsg:
		m.mq.SetText(string(msg))
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// SetTextMsg replaces the marquee text from outside the program.
type SetTextMsg string

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cfg := m.mq.Config()
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit
	case "d":
		if cfg.Direction == marquee.Forward {
			m.mq.SetScrollDirection(marquee.Backward)
		} else {
			m.mq.SetScrollDirection(marquee.Forward)
		}
	case "m":
		if cfg.Mode == marquee.Alternate {
			m.mq.SetMode(marquee.Continuous)
		} else {
			m.mq.SetMode(marquee.Alternate)
		}
	case "+", "=":
		m.mq.SetScrollSpeed(cfg.ScrollSpeed + speedStep)
	case "-":
		if cfg.ScrollSpeed > speedStep {
			m.mq.SetScrollSpeed(cfg.ScrollSpeed - speedStep)
		}
	case "s":
		m.status = !m.status
	}
	return m, nil
}

// scheduleTick ticks every frame while scrolling and sleeps through pauses.
func (m Model) scheduleTick() tea.Cmd {
	wait := idleInterval
	switch m.mq.Phase() {
	case marquee.PhaseAnimating:
		wait = frameInterval
	case marquee.PhasePaused:
		if deadline, ok := m.mq.NextDeadline(); ok {
			wait = min(max(deadline.Sub(m.now()), frameInterval), idleInterval)
		}
	}
	return tea.Tick(wait, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	line := renderLine(m.re, m.mq, m.bg)
	if !m.status {
		return line
	}
	cfg := m.mq.Config()
	status := m.re.NewStyle().Faint(true).Render(fmt.Sprintf(
		"%s · offset %.0f · %.0f cells/s · %s · %s  [d]irection [m]ode [+/-] speed [q]uit",
		m.mq.Phase(), m.mq.CurrentOffset(), cfg.ScrollSpeed, cfg.Direction, cfg.Mode))
	return lipgloss.JoinVertical(lipgloss.Left, line, status)
}
