package ui

import (
	"image"
	"image/color"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/edward-ap/marquee/internal/marquee"
	"github.com/edward-ap/marquee/internal/metrics"
)

// rasterDPI makes one point of font size equal one fyne unit at scale 1.
const rasterDPI = 72

// MarqueeLabel is a single-line label that scrolls its text when it does not
// fit. Setters are safe to call from any goroutine: fyne runs animation ticks
// and raster generation off the caller's goroutine, so every access to the
// marquee state goes through mu.
type MarqueeLabel struct {
	widget.BaseWidget

	mu      sync.Mutex
	core    *marquee.Marquee
	faces   *metrics.Faces
	dirty   bool
	phase   marquee.Phase
	raster  *canvas.Raster
	anim    *fyne.Animation
	running bool

	// OnPhaseChanged, when set, is called after the scroll phase changes.
	OnPhaseChanged func(marquee.Phase)
}

// NewMarqueeLabel creates a label showing text with the given scroll
// configuration. It stays still until OnAttachedToLiveDisplay is called.
func NewMarqueeLabel(text string, cfg marquee.Config, logger *zerolog.Logger) *MarqueeLabel {
	faces, err := metrics.NewGoFaces(rasterDPI, 1)
	if err != nil {
		if logger != nil {
			logger.Warn().Err(err).Msg("go fonts unavailable, using bitmap face")
		}
		faces, _ = metrics.NewFaces(nil, rasterDPI, 1)
	}
	l := &MarqueeLabel{faces: faces}
	l.core = marquee.New(faces, marquee.Options{
		Config:   cfg,
		Logger:   logger,
		OnChange: func() { l.dirty = true },
	})
	l.core.SetFont(marquee.Font{Size: theme.TextSize()})
	l.core.SetTextColor(theme.ForegroundColor())
	l.core.SetText(text)
	l.anim = fyne.NewAnimation(time.Second, func(float32) { l.tick() })
	l.anim.RepeatCount = fyne.AnimationRepeatForever
	l.anim.Curve = fyne.AnimationLinear
	l.ExtendBaseWidget(l)
	return l
}

// update runs f against the marquee under the lock, then redraws, starts or
// stops the frame driver, and reports phase changes outside of it. Frames
// only run while the marquee is attached and not idle.
func (l *MarqueeLabel) update(f func(m *marquee.Marquee)) {
	l.mu.Lock()
	f(l.core)
	dirty := l.dirty
	l.dirty = false
	phase := l.core.Phase()
	phaseChanged := phase != l.phase
	l.phase = phase
	run := l.core.Attached() && phase != marquee.PhaseIdle
	start, stop := run && !l.running, !run && l.running
	l.running = run
	raster := l.raster
	onPhase := l.OnPhaseChanged
	l.mu.Unlock()

	switch {
	case start:
		l.anim.Start()
	case stop:
		l.anim.Stop()
	}
	if dirty && raster != nil {
		raster.Refresh()
	}
	if phaseChanged && onPhase != nil {
		onPhase(phase)
	}
}

// SetText replaces the text; an identical text is ignored.
func (l *MarqueeLabel) SetText(text string) {
	CallOnMain(func() { l.update(func(m *marquee.Marquee) { m.SetText(text) }) })
}

// SetStyledText replaces the text with styled spans.
func (l *MarqueeLabel) SetStyledText(spans []marquee.Span) {
	CallOnMain(func() { l.update(func(m *marquee.Marquee) { m.SetStyledText(spans) }) })
}

// SetFont changes size and style of the text.
func (l *MarqueeLabel) SetFont(f marquee.Font) {
	CallOnMain(func() { l.update(func(m *marquee.Marquee) { m.SetFont(f) }) })
}

// SetTextColor changes the text colour.
func (l *MarqueeLabel) SetTextColor(c color.Color) {
	CallOnMain(func() { l.update(func(m *marquee.Marquee) { m.SetTextColor(c) }) })
}

// SetShadow changes the text shadow.
func (l *MarqueeLabel) SetShadow(s marquee.Shadow) {
	CallOnMain(func() { l.update(func(m *marquee.Marquee) { m.SetShadow(s) }) })
}

// SetAlignment changes where fitting text sits.
func (l *MarqueeLabel) SetAlignment(a marquee.Alignment) {
	CallOnMain(func() { l.update(func(m *marquee.Marquee) { m.SetAlignment(a) }) })
}

// SetConfig applies a whole scroll configuration.
func (l *MarqueeLabel) SetConfig(cfg marquee.Config) {
	CallOnMain(func() { l.update(func(m *marquee.Marquee) { m.SetConfig(cfg) }) })
}

// Config returns the active scroll configuration.
func (l *MarqueeLabel) Config() marquee.Config {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.core.Config()
}

// Phase reports the current scroll phase.
func (l *MarqueeLabel) Phase() marquee.Phase {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.core.Phase()
}

// OnAttachedToLiveDisplay starts the scroll cycle; the frame driver runs
// while the text overflows.
func (l *MarqueeLabel) OnAttachedToLiveDisplay() {
	l.update(func(m *marquee.Marquee) { m.OnAttachedToLiveDisplay() })
}

// OnDetachedOrBackgrounded stops the frame driver; scrolling restarts from
// the beginning on the next attach.
func (l *MarqueeLabel) OnDetachedOrBackgrounded() {
	l.update(func(m *marquee.Marquee) { m.OnDetachedOrBackgrounded() })
}

// framesRunning reports whether the frame driver is active.
func (l *MarqueeLabel) framesRunning() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.running
}

func (l *MarqueeLabel) tick() {
	now := time.Now()
	l.update(func(m *marquee.Marquee) {
		if m.Tick(now) {
			l.dirty = true
		}
	})
}

func (l *MarqueeLabel) CreateRenderer() fyne.WidgetRenderer {
	r := &marqueeRenderer{l: l}
	r.raster = canvas.NewRaster(r.draw)
	l.mu.Lock()
	l.raster = r.raster
	l.mu.Unlock()
	return r
}

type marqueeRenderer struct {
	l      *MarqueeLabel
	raster *canvas.Raster
}

func (r *marqueeRenderer) Layout(sz fyne.Size) {
	r.raster.Resize(sz)
	r.l.update(func(m *marquee.Marquee) { m.OnGeometryChanged(sz.Width, sz.Height) })
}

// MinSize reports the natural text height and no width requirement.
func (r *marqueeRenderer) MinSize() fyne.Size {
	r.l.mu.Lock()
	defer r.l.mu.Unlock()
	sz := r.l.core.IntrinsicSize()
	return fyne.NewSize(sz.Width, sz.Height)
}

func (r *marqueeRenderer) Refresh() { r.raster.Refresh() }

func (r *marqueeRenderer) Destroy() {
	r.l.OnDetachedOrBackgrounded()
	r.l.mu.Lock()
	defer r.l.mu.Unlock()
	_ = r.l.faces.Close()
}

func (r *marqueeRenderer) Objects() []fyne.CanvasObject { return []fyne.CanvasObject{r.raster} }

// draw is the raster generator; w and h are device pixels.
func (r *marqueeRenderer) draw(w, h int) image.Image {
	r.l.mu.Lock()
	defer r.l.mu.Unlock()
	scale := currentScale()
	if vw := r.l.core.CurrentLayout().Viewport.Width; vw > 0 {
		scale = float64(w) / float64(vw)
	}
	return renderFrame(snapshot(r.l.core), r.l.faces, w, h, scale)
}
