package marquee

import (
	"image/color"
	"time"

	"github.com/rs/zerolog"
)

// Options configures a Marquee. Zero values pick sensible defaults.
type Options struct {
	// Config is the initial scroll configuration; the zero value means
	// DefaultConfig.
	Config Config
	// Logger receives configuration warnings and debug traces.
	Logger *zerolog.Logger
	// Clock returns the current time; defaults to time.Now.
	Clock func() time.Time
	// OnChange is called after anything a renderer draws has changed.
	OnChange func()
}

// Marquee ties the label pair, layout, animator and fade mask together. Every
// setter compares against the current value first, so repeated identical
// writes never restart the scroll cycle.
type Marquee struct {
	labels   *LabelSet
	cfg      Config
	viewport Viewport
	layout   Layout
	anim     *Animator
	attached bool
	active   bool

	now      func() time.Time
	onChange func()
	log      zerolog.Logger
}

// New creates a detached, empty marquee measured with m.
func New(m TextMetrics, opts Options) *Marquee {
	mq := &Marquee{
		labels:   NewLabelSet(m),
		now:      opts.Clock,
		onChange: opts.OnChange,
		log:      zerolog.Nop(),
	}
	if opts.Logger != nil {
		mq.log = opts.Logger.With().Str("component", "marquee").Logger()
	}
	if mq.now == nil {
		mq.now = time.Now
	}
	mq.anim = NewAnimator(mq.scrollActiveChanged)
	cfg := opts.Config
	if cfg == (Config{}) {
		cfg = DefaultConfig()
	}
	mq.cfg = mq.normalize(cfg)
	mq.labels.SetAlignment(mq.cfg.Alignment)
	mq.layout = mq.compute()
	return mq
}

// SetText replaces the text with unstyled content.
func (m *Marquee) SetText(text string) {
	if m.labels.SetContent(PlainContent(text)) {
		m.relayout("text")
	}
}

// SetStyledText replaces the text with styled spans.
func (m *Marquee) SetStyledText(spans []Span) {
	if m.labels.SetContent(StyledContent(spans)) {
		m.relayout("styled text")
	}
}

// Text returns the current plain text.
func (m *Marquee) Text() string { return m.labels.Main().Content.Text }

// SetFont changes the face used for both labels.
func (m *Marquee) SetFont(f Font) {
	if m.labels.SetFont(f) {
		m.relayout("font")
	}
}

// SetTextColor changes the label colour. Geometry is unaffected.
func (m *Marquee) SetTextColor(c color.Color) {
	if m.labels.SetColor(c) {
		m.notify()
	}
}

// SetShadow changes the text shadow. Geometry is unaffected.
func (m *Marquee) SetShadow(s Shadow) {
	if m.labels.SetShadow(s) {
		m.notify()
	}
}

// SetAlignment changes how fitting text is placed in the viewport.
func (m *Marquee) SetAlignment(a Alignment) {
	if !m.labels.SetAlignment(a) {
		return
	}
	m.cfg.Alignment = a
	if m.layout.Overflowing {
		// alignment only positions a fitting label
		m.notify()
		return
	}
	m.relayout("alignment")
}

// SetScrollSpeed sets the speed in units per second. Non-positive values are
// a configuration error and fall back to DefaultScrollSpeed.
func (m *Marquee) SetScrollSpeed(speed float32) {
	next := m.cfg
	next.ScrollSpeed = speed
	next = m.normalize(next)
	if next.ScrollSpeed == m.cfg.ScrollSpeed {
		return
	}
	m.cfg = next
	m.rearm("speed")
}

// SetScrollDirection flips the travel direction and restarts the cycle.
func (m *Marquee) SetScrollDirection(d Direction) {
	if d != Backward {
		d = Forward
	}
	if d == m.cfg.Direction {
		return
	}
	m.cfg.Direction = d
	m.rearm("direction")
}

// SetMode switches between ping-pong and continuous cycles.
func (m *Marquee) SetMode(mode Mode) {
	if mode != Continuous {
		mode = Alternate
	}
	if mode == m.cfg.Mode {
		return
	}
	m.cfg.Mode = mode
	m.rearm("mode")
}

// SetPauseDuration sets the rest interval; it applies from the next pause.
func (m *Marquee) SetPauseDuration(d time.Duration) {
	next := m.cfg
	next.Pause = d
	next = m.normalize(next)
	if next.Pause == m.cfg.Pause {
		return
	}
	m.cfg = next
	m.anim.SetPause(next.Pause)
}

// SetLabelSpacing sets the gap between the two labels.
func (m *Marquee) SetLabelSpacing(spacing float32) {
	next := m.cfg
	next.LabelSpacing = spacing
	next = m.normalize(next)
	if next.LabelSpacing == m.cfg.LabelSpacing {
		return
	}
	m.cfg = next
	m.relayout("spacing")
}

// SetFadeLength sets the edge fade width. Only the mask changes.
func (m *Marquee) SetFadeLength(length float32) {
	next := m.cfg
	next.FadeLength = length
	next = m.normalize(next)
	if next.FadeLength == m.cfg.FadeLength {
		return
	}
	m.cfg = next
	m.notify()
}

// SetConfig applies a whole configuration at once with a single relayout.
func (m *Marquee) SetConfig(cfg Config) {
	cfg = m.normalize(cfg)
	if cfg == m.cfg {
		return
	}
	m.cfg = cfg
	m.labels.SetAlignment(cfg.Alignment)
	m.relayout("config")
}

// Config returns the active configuration.
func (m *Marquee) Config() Config { return m.cfg }

// OnGeometryChanged relays out for a new viewport size. An unchanged size
// is ignored.
func (m *Marquee) OnGeometryChanged(width, height float32) {
	vp := Viewport{Width: max(width, 0), Height: max(height, 0)}
	if vp == m.viewport {
		return
	}
	m.viewport = vp
	m.relayout("geometry")
}

// OnAttachedToLiveDisplay starts scrolling if the content overflows and no
// cycle is running yet.
func (m *Marquee) OnAttachedToLiveDisplay() {
	m.attached = true
	if m.anim.Phase() != PhaseIdle {
		return
	}
	m.arm()
	m.notify()
}

// OnDetachedOrBackgrounded stops scrolling until the next attach.
func (m *Marquee) OnDetachedOrBackgrounded() {
	m.attached = false
	if m.anim.Phase() == PhaseIdle {
		return
	}
	m.anim.Cancel()
	m.log.Debug().Msg("scroll cycle suspended")
	m.notify()
}

// Attached reports whether the host signalled a live display.
func (m *Marquee) Attached() bool { return m.attached }

// Tick advances the scroll cycle to now. It reports whether the renderer
// needs to redraw.
func (m *Marquee) Tick(now time.Time) bool {
	prev := m.anim.Phase()
	changed := m.anim.Tick(now)
	if p := m.anim.Phase(); p != prev {
		m.log.Debug().Stringer("from", prev).Stringer("to", p).Msg("scroll phase")
	}
	return changed
}

// CurrentLayout is the geometry to draw.
func (m *Marquee) CurrentLayout() Layout { return m.layout }

// CurrentOffset is the horizontal scroll translation; 0 when idle.
func (m *Marquee) CurrentOffset() float32 { return m.anim.Offset() }

// CurrentMask is the edge fade, or nil when no mask applies.
func (m *Marquee) CurrentMask() *Mask {
	return ComputeMask(m.layout.Overflowing, m.cfg.Direction, m.cfg.FadeLength, m.viewport.Width, m.active)
}

// Phase reports the animator state.
func (m *Marquee) Phase() Phase { return m.anim.Phase() }

// LegDuration is the duration of one leg, 0 while idle.
func (m *Marquee) LegDuration() time.Duration { return m.anim.LegDuration() }

// NextDeadline is when the current pause or leg ends.
func (m *Marquee) NextDeadline() (time.Time, bool) { return m.anim.NextDeadline() }

// Labels returns the style state of both labels.
func (m *Marquee) Labels() [labelCount]Label { return m.labels.Labels() }

// IntrinsicSize is the preferred size for auto-sizing hosts: zero width and
// the natural text height.
func (m *Marquee) IntrinsicSize() Size { return m.labels.IntrinsicSize() }

func (m *Marquee) compute() Layout {
	main := m.labels.Main()
	return ComputeLayout(m.labels.metrics, main.Content, main.Font, m.cfg, m.viewport)
}

// relayout cancels any running leg before recomputing, so no stale tick can
// write an offset for the old geometry, then restarts from the rest edge.
func (m *Marquee) relayout(reason string) {
	m.anim.Cancel()
	m.layout = m.compute()
	m.log.Debug().
		Str("reason", reason).
		Bool("overflowing", m.layout.Overflowing).
		Float32("labelWidth", m.layout.LabelWidth()).
		Float32("contentWidth", m.layout.ContentWidth).
		Msg("layout recomputed")
	m.arm()
	m.notify()
}

func (m *Marquee) rearm(reason string) {
	m.log.Debug().Str("reason", reason).Msg("scroll cycle restarted")
	m.anim.Cancel()
	m.arm()
	m.notify()
}

func (m *Marquee) arm() {
	if !m.attached || !m.layout.Overflowing {
		return
	}
	m.anim.Arm(m.layout, m.cfg, m.now())
}

func (m *Marquee) normalize(cfg Config) Config {
	out, issues := cfg.normalized()
	for _, is := range issues {
		m.log.Warn().
			Str("field", is.field).
			Interface("value", is.got).
			Interface("using", is.used).
			Msg("invalid marquee configuration")
	}
	return out
}

func (m *Marquee) scrollActiveChanged(active bool) {
	m.active = active
	m.notify()
}

func (m *Marquee) notify() {
	if m.onChange != nil {
		m.onChange()
	}
}
