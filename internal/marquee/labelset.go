package marquee

import "image/color"

// Size is a width/height pair in host units (pixels, or cells for terminals).
type Size struct {
	Width  float32
	Height float32
}

// TextMetrics measures rendered text. It is supplied by the host so the core
// never depends on a particular font stack.
type TextMetrics interface {
	MeasureText(text string, font Font) Size
}

// labelCount is fixed: the content label plus one spacer for wrap-around.
const labelCount = 2

// Label is the style state of one label instance.
type Label struct {
	Content   Content
	Font      Font
	Color     color.NRGBA
	Shadow    Shadow
	Alignment Alignment
}

// LabelSet holds the content label and its spacer duplicate. Every mutation
// fans out to both labels and is ignored when nothing would change.
type LabelSet struct {
	labels  [labelCount]Label
	metrics TextMetrics
}

// NewLabelSet creates two empty labels measured with m.
func NewLabelSet(m TextMetrics) *LabelSet {
	s := &LabelSet{metrics: m}
	s.fanOut(func(l *Label) { l.Color = color.NRGBA{A: 0xff} })
	return s
}

// Main returns the content label, the source of truth for queries.
func (s *LabelSet) Main() Label { return s.labels[0] }

// Labels returns both label instances in draw order.
func (s *LabelSet) Labels() [labelCount]Label { return s.labels }

func (s *LabelSet) fanOut(f func(*Label)) {
	for i := range s.labels {
		f(&s.labels[i])
	}
}

// SetContent replaces the text and reports whether it changed.
func (s *LabelSet) SetContent(c Content) bool {
	if s.labels[0].Content.Equal(c) {
		return false
	}
	s.fanOut(func(l *Label) { l.Content = c })
	return true
}

// SetFont reports whether the font changed.
func (s *LabelSet) SetFont(f Font) bool {
	if s.labels[0].Font == f {
		return false
	}
	s.fanOut(func(l *Label) { l.Font = f })
	return true
}

// SetColor reports whether the text colour changed.
func (s *LabelSet) SetColor(c color.Color) bool {
	nc := toNRGBA(c)
	if s.labels[0].Color == nc {
		return false
	}
	s.fanOut(func(l *Label) { l.Color = nc })
	return true
}

// SetShadow reports whether the shadow changed.
func (s *LabelSet) SetShadow(sh Shadow) bool {
	if s.labels[0].Shadow == sh {
		return false
	}
	s.fanOut(func(l *Label) { l.Shadow = sh })
	return true
}

// SetAlignment reports whether the alignment changed.
func (s *LabelSet) SetAlignment(a Alignment) bool {
	if s.labels[0].Alignment == a {
		return false
	}
	s.fanOut(func(l *Label) { l.Alignment = a })
	return true
}

// NaturalSize measures the content label without any width constraint.
func (s *LabelSet) NaturalSize() Size {
	return measureContent(s.metrics, s.labels[0].Content, s.labels[0].Font)
}

// IntrinsicSize reports a zero width, since the marquee fills whatever width
// it is given, and the content label's natural height.
func (s *LabelSet) IntrinsicSize() Size {
	return Size{Height: s.NaturalSize().Height}
}

// measureContent sums span widths; the height is the tallest span. Empty
// content keeps the line height so hosts can size an empty marquee.
func measureContent(m TextMetrics, c Content, f Font) Size {
	if m == nil {
		return Size{}
	}
	runs := c.Runs()
	if len(runs) == 0 {
		return Size{Height: m.MeasureText("", f).Height}
	}
	var out Size
	for _, r := range runs {
		rf := f
		rf.Bold = rf.Bold || r.Bold
		rf.Italic = rf.Italic || r.Italic
		sz := m.MeasureText(r.Text, rf)
		out.Width += sz.Width
		if sz.Height > out.Height {
			out.Height = sz.Height
		}
	}
	return out
}
