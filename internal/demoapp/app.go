// Package demoapp wires configuration, logging, and the marquee widget into a
// small desktop window with live controls.
package demoapp

import (
	"fmt"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/edward-ap/marquee/internal/config"
	"github.com/edward-ap/marquee/internal/marquee"
	"github.com/edward-ap/marquee/internal/ui"
)

const (
	speedStep   = 10
	maxSpeed    = 240
	maxFade     = 40
	maxSpacing  = 80
	indicatorSz = 10
)

// App owns the fyne application, the main window, and the marquee strip.
type App struct {
	fa     fyne.App
	w      fyne.Window
	config *config.Config
	log    zerolog.Logger

	label     *ui.MarqueeLabel
	ind       *ui.PhaseIndicator
	stripBg   *canvas.Rectangle
	entry     *widget.Entry
	speed     *widget.Slider
	fade      *widget.Slider
	spacing   *widget.Slider
	direction *widget.Select
	mode      *widget.Select
	align     *widget.Select
	status    *widget.Label

	// paused is set while the user has stopped scrolling with the space key.
	paused bool
}

// New builds the window from cfg. The caller owns logger.
func New(cfg *config.Config, logger zerolog.Logger) *App {
	return newApp(app.NewWithID(config.AppID), cfg, logger)
}

func newApp(fa fyne.App, cfg *config.Config, logger zerolog.Logger) *App {
	if cfg == nil {
		cfg = config.Default()
	}
	fa.Settings().SetTheme(theme.DarkTheme())
	w := fa.NewWindow("Marquee")
	w.SetMaster()

	a := &App{
		fa:     fa,
		w:      w,
		config: cfg,
		log:    logger.With().Str("component", "demoapp").Logger(),
	}
	a.buildUI()

	lc := fa.Lifecycle()
	lc.SetOnEnteredForeground(func() {
		if !a.paused {
			a.label.OnAttachedToLiveDisplay()
		}
	})
	lc.SetOnExitedForeground(func() { a.label.OnDetachedOrBackgrounded() })

	w.SetCloseIntercept(func() {
		a.label.OnDetachedOrBackgrounded()
		w.Close()
		fa.Quit()
	})
	w.Canvas().SetOnTypedKey(a.handleShortcutKey)
	return a
}

// Run shows the window and blocks until it is closed.
func (a *App) Run() {
	a.log.Info().Str("text", a.config.Text).Msg("starting marquee demo")
	a.label.OnAttachedToLiveDisplay()
	a.w.ShowAndRun()
}

// Label exposes the marquee widget.
func (a *App) Label() *ui.MarqueeLabel { return a.label }

func (a *App) buildUI() {
	a.label = ui.NewMarqueeLabel(a.config.Text, a.config.MarqueeConfig(), &a.log)
	a.ind = ui.NewPhaseIndicator(indicatorSz)
	a.status = widget.NewLabel("")
	a.label.OnPhaseChanged = func(p marquee.Phase) {
		a.ind.SetPhase(p)
		a.status.SetText(a.statusText(p))
	}

	a.stripBg = canvas.NewRectangle(theme.InputBackgroundColor())
	a.stripBg.CornerRadius = 4
	strip := container.NewStack(a.stripBg, container.NewPadded(a.label))
	top := container.NewBorder(nil, nil, container.NewCenter(a.ind.CanvasObject()), nil, strip)

	a.w.SetContent(container.NewBorder(top, a.status, nil, nil, a.buildControls()))
	a.w.Resize(a.windowSize())
	a.status.SetText(a.statusText(a.label.Phase()))
}

// windowSize is the configured size, grown to fit the content if needed.
func (a *App) windowSize() fyne.Size {
	content := a.w.Content().MinSize()
	return fyne.NewSize(
		max(float32(a.config.Window.Width), content.Width),
		max(float32(a.config.Window.Height), content.Height),
	)
}

// buildControls lays out the editors that feed the marquee configuration.
func (a *App) buildControls() fyne.CanvasObject {
	mc := a.config.MarqueeConfig()

	a.entry = widget.NewEntry()
	a.entry.SetText(a.config.Text)
	a.entry.OnChanged = func(s string) { a.label.SetText(s) }

	a.speed = newSlider(1, maxSpeed, float64(mc.ScrollSpeed), a.applyControls)
	a.fade = newSlider(0, maxFade, float64(mc.FadeLength), a.applyControls)
	a.spacing = newSlider(0, maxSpacing, float64(mc.LabelSpacing), a.applyControls)

	a.direction = widget.NewSelect(
		[]string{marquee.Forward.String(), marquee.Backward.String()},
		func(string) { a.applyControls() })
	a.direction.SetSelected(mc.Direction.String())
	a.mode = widget.NewSelect(
		[]string{marquee.Alternate.String(), marquee.Continuous.String()},
		func(string) { a.applyControls() })
	a.mode.SetSelected(mc.Mode.String())
	a.align = widget.NewSelect(
		[]string{marquee.AlignLeading.String(), marquee.AlignCenter.String(), marquee.AlignTrailing.String()},
		func(s string) { a.label.SetAlignment(parseAlignment(s)) })
	a.align.SetSelected(mc.Alignment.String())

	form := widget.NewForm(
		widget.NewFormItem("Text", a.entry),
		widget.NewFormItem("Speed", a.speed),
		widget.NewFormItem("Fade", a.fade),
		widget.NewFormItem("Spacing", a.spacing),
		widget.NewFormItem("Direction", a.direction),
		widget.NewFormItem("Mode", a.mode),
		widget.NewFormItem("Alignment", a.align),
	)
	return container.NewVScroll(form)
}

func newSlider(min, max, value float64, onChange func()) *widget.Slider {
	s := widget.NewSlider(min, max)
	s.Step = 1
	s.SetValue(value)
	s.OnChanged = func(float64) { onChange() }
	return s
}

// applyControls rebuilds the configuration from the editors in one step so
// the label relayouts at most once.
func (a *App) applyControls() {
	if a.label == nil || a.mode == nil || a.align == nil {
		return
	}
	cfg := a.label.Config()
	cfg.ScrollSpeed = float32(a.speed.Value)
	cfg.FadeLength = float32(a.fade.Value)
	cfg.LabelSpacing = float32(a.spacing.Value)
	cfg.Direction = parseDirection(a.direction.Selected)
	cfg.Mode = parseMode(a.mode.Selected)
	a.label.SetConfig(cfg)
}

// handleShortcutKey maps keys to marquee controls regardless of focus.
func (a *App) handleShortcutKey(ke *fyne.KeyEvent) {
	if ke == nil {
		return
	}
	switch ke.Name {
	case fyne.KeySpace:
		a.togglePaused()
	case fyne.KeyUp:
		a.speed.SetValue(a.speed.Value + speedStep)
	case fyne.KeyDown:
		a.speed.SetValue(a.speed.Value - speedStep)
	case fyne.KeyLeft:
		a.direction.SetSelected(marquee.Forward.String())
	case fyne.KeyRight:
		a.direction.SetSelected(marquee.Backward.String())
	}
}

func (a *App) togglePaused() {
	a.paused = !a.paused
	if a.paused {
		a.label.OnDetachedOrBackgrounded()
	} else {
		a.label.OnAttachedToLiveDisplay()
	}
	a.log.Debug().Bool("paused", a.paused).Msg("scrolling toggled")
}

func (a *App) statusText(p marquee.Phase) string {
	cfg := a.label.Config()
	return fmt.Sprintf("%s · %s · %.0f pt/s · pause %s",
		p, cfg.Direction, cfg.ScrollSpeed, cfg.Pause.Round(100*time.Millisecond))
}

func parseDirection(s string) marquee.Direction {
	if strings.EqualFold(s, marquee.Backward.String()) {
		return marquee.Backward
	}
	return marquee.Forward
}

func parseMode(s string) marquee.Mode {
	if strings.EqualFold(s, marquee.Continuous.String()) {
		return marquee.Continuous
	}
	return marquee.Alternate
}

func parseAlignment(s string) marquee.Alignment {
	switch strings.ToLower(s) {
	case marquee.AlignCenter.String():
		return marquee.AlignCenter
	case marquee.AlignTrailing.String():
		return marquee.AlignTrailing
	}
	return marquee.AlignLeading
}
