package tui

import (
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edward-ap/marquee/internal/marquee"
)

const longText = "hello world this is long"

type testClock struct{ t time.Time }

func (c *testClock) Now() time.Time { return c.t }

func newTestModel(t *testing.T, text string, width int, cfg marquee.Config) (Model, *testClock) {
	t.Helper()
	clock := &testClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	m := New(text, Options{
		Config:   cfg,
		Renderer: lipgloss.NewRenderer(io.Discard),
		Clock:    clock.Now,
	})
	next, _ := m.Update(tea.WindowSizeMsg{Width: width, Height: 1})
	return next.(Model), clock
}

func firstLine(m Model) string {
	line, _, _ := strings.Cut(ansi.Strip(m.View()), "\n")
	return line
}

func TestViewRendersVisibleWindow(t *testing.T) {
	m, _ := newTestModel(t, longText, 10, DefaultConfig())
	require.True(t, m.Marquee().CurrentLayout().Overflowing)
	assert.Equal(t, marquee.PhasePaused, m.Marquee().Phase())
	assert.Equal(t, "hello worl", firstLine(m))
}

func TestTickAdvancesOffset(t *testing.T) {
	m, clock := newTestModel(t, longText, 10, DefaultConfig())
	next, cmd := m.Update(tickMsg(clock.t.Add(marquee.DefaultPause + time.Second)))
	require.NotNil(t, cmd)
	m = next.(Model)
	assert.Equal(t, marquee.PhaseAnimating, m.Marquee().Phase())
	assert.InDelta(t, 8, m.Marquee().CurrentOffset(), 0.01)
	assert.Equal(t, "rld this i", firstLine(m))
}

func TestFittingTextIsAligned(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Alignment = marquee.AlignCenter
	m, _ := newTestModel(t, "hi", 10, cfg)
	assert.Equal(t, "    hi    ", firstLine(m))
	assert.Equal(t, marquee.PhaseIdle, m.Marquee().Phase())
	assert.Nil(t, m.Marquee().CurrentMask())
}

func TestWideRunesTakeTwoCells(t *testing.T) {
	m, _ := newTestModel(t, "日本", 10, DefaultConfig())
	assert.Equal(t, "日本      ", firstLine(m))
}

func TestKeysAdjustConfig(t *testing.T) {
	m, _ := newTestModel(t, longText, 10, DefaultConfig())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")})
	m = next.(Model)
	assert.Equal(t, marquee.Backward, m.Marquee().Config().Direction)
	assert.Equal(t, float32(28), m.Marquee().CurrentOffset(), "backward rests at the far edge")

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("+")})
	m = next.(Model)
	assert.Equal(t, float32(13), m.Marquee().Config().ScrollSpeed)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("m")})
	m = next.(Model)
	assert.Equal(t, marquee.Continuous, m.Marquee().Config().Mode)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	m = next.(Model)
	assert.Contains(t, ansi.Strip(m.View()), "paused")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestFocusDrivesVisibility(t *testing.T) {
	m, _ := newTestModel(t, longText, 10, DefaultConfig())

	next, _ := m.Update(tea.BlurMsg{})
	m = next.(Model)
	assert.Equal(t, marquee.PhaseIdle, m.Marquee().Phase())

	next, _ = m.Update(tea.FocusMsg{})
	m = next.(Model)
	assert.Equal(t, marquee.PhasePaused, m.Marquee().Phase())

	next, _ = m.Update(SetTextMsg("short"))
	m = next.(Model)
	assert.Equal(t, marquee.PhaseIdle, m.Marquee().Phase())
	assert.Equal(t, "short     ", firstLine(m))
}

func TestCellConfigScalesPixelLengths(t *testing.T) {
	assert.Equal(t, DefaultConfig(), CellConfig(marquee.DefaultConfig()))

	px := marquee.DefaultConfig()
	px.ScrollSpeed = 60
	px.LabelSpacing = 0
	px.FadeLength = 14
	px.Pause = 0
	px.Direction = marquee.Backward
	got := CellConfig(px)
	assert.InDelta(t, 16, got.ScrollSpeed, 1e-4)
	assert.Zero(t, got.LabelSpacing)
	assert.InDelta(t, 6, got.FadeLength, 1e-4)
	assert.Zero(t, got.Pause)
	assert.Equal(t, marquee.Backward, got.Direction)
}
