package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"

	"github.com/edward-ap/marquee/internal/marquee"
)

func TestMarqueeLabelScrollsOnlyWhenNarrow(t *testing.T) {
	test.NewTempApp(t)

	l := NewMarqueeLabel("a headline that is far too long for a narrow strip", marquee.DefaultConfig(), nil)
	var phases []marquee.Phase
	l.OnPhaseChanged = func(p marquee.Phase) { phases = append(phases, p) }
	w := test.NewWindow(l)
	defer w.Close()

	l.Resize(fyne.NewSize(80, 30))
	l.OnAttachedToLiveDisplay()
	assert.Equal(t, marquee.PhasePaused, l.Phase())

	l.Resize(fyne.NewSize(2000, 30))
	assert.Equal(t, marquee.PhaseIdle, l.Phase())

	l.OnDetachedOrBackgrounded()
	assert.Equal(t, marquee.PhaseIdle, l.Phase())
	assert.Equal(t, []marquee.Phase{marquee.PhasePaused, marquee.PhaseIdle}, phases)
}

func TestMarqueeLabelMinSizeIsTextHeight(t *testing.T) {
	test.NewTempApp(t)

	l := NewMarqueeLabel("short", marquee.DefaultConfig(), nil)
	min := l.MinSize()
	assert.Zero(t, min.Width)
	assert.Positive(t, min.Height)
}

func TestMarqueeLabelIgnoresIdenticalText(t *testing.T) {
	test.NewTempApp(t)

	l := NewMarqueeLabel("a headline that is far too long for a narrow strip", marquee.DefaultConfig(), nil)
	l.Resize(fyne.NewSize(80, 30))
	l.OnAttachedToLiveDisplay()
	defer l.OnDetachedOrBackgrounded()

	var phases []marquee.Phase
	l.OnPhaseChanged = func(p marquee.Phase) { phases = append(phases, p) }
	l.SetText("a headline that is far too long for a narrow strip")
	assert.Empty(t, phases)
	assert.Equal(t, marquee.PhasePaused, l.Phase())
}

func TestMarqueeLabelFramesOnlyWhileScrolling(t *testing.T) {
	test.NewTempApp(t)

	l := NewMarqueeLabel("short", marquee.DefaultConfig(), nil)
	w := test.NewWindow(l)
	defer w.Close()

	l.Resize(fyne.NewSize(2000, 30))
	l.OnAttachedToLiveDisplay()
	assert.Equal(t, marquee.PhaseIdle, l.Phase())
	assert.False(t, l.framesRunning(), "fitting text needs no frames")

	l.SetText("a headline that is far too long for a narrow strip")
	l.Resize(fyne.NewSize(80, 30))
	assert.Equal(t, marquee.PhasePaused, l.Phase())
	assert.True(t, l.framesRunning())

	l.Resize(fyne.NewSize(2000, 30))
	assert.False(t, l.framesRunning())

	l.Resize(fyne.NewSize(80, 30))
	assert.True(t, l.framesRunning())
	l.OnDetachedOrBackgrounded()
	assert.False(t, l.framesRunning())
}
