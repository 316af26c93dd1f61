package ui

import (
	"image/color"
	"math"
	"sync/atomic"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"

	"github.com/edward-ap/marquee/internal/marquee"
)

var (
	idleColor   = color.NRGBA{0x80, 0x80, 0x80, 0xFF}
	pausedColor = color.NRGBA{0xE0, 0xA0, 0x30, 0xFF}
)

// PhaseIndicator is a small dot showing the scroll phase: gray when idle,
// amber while paused, and cycling through green hues while scrolling.
type PhaseIndicator struct {
	wrap      *fyne.Container
	circle    *canvas.Circle
	animating atomic.Bool
	hue       float64 // 0..360
}

// NewPhaseIndicator constructs a PhaseIndicator with the given diameter.
func NewPhaseIndicator(diameter float32) *PhaseIndicator {
	c := canvas.NewCircle(idleColor)
	c.StrokeColor = color.NRGBA{0, 0, 0, 0}
	inner := container.New(layout.NewGridWrapLayout(fyne.NewSize(diameter, diameter)), c)
	return &PhaseIndicator{wrap: container.NewCenter(inner), circle: c}
}

// CanvasObject returns the fyne object suitable for embedding in layouts.
func (p *PhaseIndicator) CanvasObject() fyne.CanvasObject { return p.wrap }

// SetPhase switches the indicator to reflect phase.
func (p *PhaseIndicator) SetPhase(phase marquee.Phase) {
	animating := phase == marquee.PhaseAnimating
	was := p.animating.Swap(animating)
	if animating {
		if !was {
			go p.pulse()
		}
		return
	}
	col := phaseColor(phase)
	CallOnMain(func() {
		p.circle.FillColor = col
		p.circle.Refresh()
	})
}

func phaseColor(phase marquee.Phase) color.NRGBA {
	if phase == marquee.PhasePaused {
		return pausedColor
	}
	return idleColor
}

func (p *PhaseIndicator) pulse() {
	t := time.NewTicker(90 * time.Millisecond)
	defer t.Stop()
	for p.animating.Load() {
		<-t.C
		p.hue += 8
		if p.hue >= 360 {
			p.hue = 0
		}
		// keep to the green band
		col := hsvToNRGBA(90+math.Mod(p.hue, 60), 0.65, 0.95)
		CallOnMain(func() {
			if !p.animating.Load() {
				return
			}
			p.circle.FillColor = col
			p.circle.Refresh()
		})
	}
}

// hsvToNRGBA converts HSV (0..360, 0..1, 0..1) to color.NRGBA.
func hsvToNRGBA(h, s, v float64) color.NRGBA {
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60.0, 2)-1))
	m := v - c
	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return color.NRGBA{
		R: uint8((r+m)*255 + 0.5),
		G: uint8((g+m)*255 + 0.5),
		B: uint8((b+m)*255 + 0.5),
		A: 0xFF,
	}
}
