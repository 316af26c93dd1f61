package marquee

import "math"

// Viewport is the visible area supplied by the host on every layout pass.
type Viewport struct {
	Width  float32
	Height float32
}

// LabelFrame positions one label inside the scrollable content. TextX and
// TextY place the text run inside the frame.
type LabelFrame struct {
	X, Y          float32
	Width, Height float32
	TextX, TextY  float32
	Visible       bool
}

// Layout is the derived geometry the renderer draws. When Overflowing is
// false only Labels[0] is visible and it fills the viewport; otherwise both
// labels sit back to back separated by the configured spacing.
type Layout struct {
	Overflowing  bool
	Viewport     Viewport
	TextSize     Size
	ContentWidth float32
	Labels       [labelCount]LabelFrame
	Visible      int
}

// LabelWidth is the measured width of one label's text.
func (l Layout) LabelWidth() float32 { return l.TextSize.Width }

// Travel is the distance of one leg: far offset minus rest offset.
func (l Layout) Travel() float32 {
	if !l.Overflowing {
		return 0
	}
	return l.Labels[1].X
}

// needsScroll decides whether marquee scrolling is required: any text wider
// than a non-empty viewport overflows.
func needsScroll(textWidth, viewportWidth float32) bool {
	if textWidth <= 0 || viewportWidth <= 0 {
		return false
	}
	return textWidth > viewportWidth
}

// ComputeLayout measures content and lays out the label pair. It has no
// hidden state: the same inputs always give the same Layout.
func ComputeLayout(m TextMetrics, c Content, f Font, cfg Config, vp Viewport) Layout {
	return layoutForSize(measureContent(m, c, f), cfg, vp)
}

func layoutForSize(text Size, cfg Config, vp Viewport) Layout {
	if vp.Width < 0 {
		vp.Width = 0
	}
	if vp.Height < 0 {
		vp.Height = 0
	}
	spacing := cfg.LabelSpacing
	if spacing < 0 {
		spacing = 0
	}
	out := Layout{Viewport: vp, TextSize: text}
	textY := centeredY(vp.Height, text.Height)

	if !needsScroll(text.Width, vp.Width) {
		out.ContentWidth = vp.Width
		out.Visible = 1
		out.Labels[0] = LabelFrame{
			Width:   vp.Width,
			Height:  vp.Height,
			TextX:   alignedX(cfg.Alignment, vp.Width, text.Width),
			TextY:   textY,
			Visible: true,
		}
		out.Labels[1] = LabelFrame{X: text.Width + spacing, Width: text.Width, Height: vp.Height, TextY: textY}
		return out
	}

	out.Overflowing = true
	out.Visible = labelCount
	out.ContentWidth = text.Width + vp.Width + spacing
	var x float32
	for i := range out.Labels {
		out.Labels[i] = LabelFrame{X: x, Width: text.Width, Height: vp.Height, TextY: textY, Visible: true}
		x += text.Width + spacing
	}
	return out
}

func alignedX(a Alignment, frameWidth, textWidth float32) float32 {
	free := frameWidth - textWidth
	if free <= 0 {
		return 0
	}
	switch a {
	case AlignCenter:
		return free / 2
	case AlignTrailing:
		return free
	default:
		return 0
	}
}

// centeredY vertically centres text, snapped to whole units.
func centeredY(frameHeight, textHeight float32) float32 {
	return float32(math.Round(float64(frameHeight-textHeight) / 2))
}
