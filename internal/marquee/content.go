package marquee

import (
	"image/color"
	"slices"
	"strings"
)

// Font describes how text is measured and drawn. The zero value means the
// host's default size and a regular face.
type Font struct {
	Size      float32
	Bold      bool
	Italic    bool
	Monospace bool
}

// Shadow is drawn beneath the text at Offset; a transparent Color disables it.
type Shadow struct {
	Color   color.NRGBA
	OffsetX float32
	OffsetY float32
}

// Enabled reports whether the shadow would be visible.
func (s Shadow) Enabled() bool { return s.Color.A > 0 }

// Span is one run of styled text. A zero Color inherits the label colour.
type Span struct {
	Text   string
	Bold   bool
	Italic bool
	Color  color.NRGBA
}

// Content is the text a label shows: either plain Text, or Spans when set.
type Content struct {
	Text  string
	Spans []Span
}

// PlainContent wraps a string as unstyled content.
func PlainContent(text string) Content { return Content{Text: text} }

// StyledContent builds content from spans; Text is kept as their concatenation.
func StyledContent(spans []Span) Content {
	var b strings.Builder
	for _, s := range spans {
		b.WriteString(s.Text)
	}
	return Content{Text: b.String(), Spans: slices.Clone(spans)}
}

// Runs returns the spans to draw, synthesising a single span for plain text.
func (c Content) Runs() []Span {
	if len(c.Spans) > 0 {
		return c.Spans
	}
	if c.Text == "" {
		return nil
	}
	return []Span{{Text: c.Text}}
}

// Empty reports whether there is nothing to draw.
func (c Content) Empty() bool { return c.Text == "" }

// Equal compares text and every span.
func (c Content) Equal(o Content) bool {
	return c.Text == o.Text && slices.Equal(c.Spans, o.Spans)
}

// toNRGBA converts any colour; nil becomes transparent.
func toNRGBA(c color.Color) color.NRGBA {
	if c == nil {
		return color.NRGBA{}
	}
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}
