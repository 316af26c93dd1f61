package metrics

import (
	"github.com/mattn/go-runewidth"

	"github.com/edward-ap/marquee/internal/marquee"
)

// Cells measures text in terminal cells: East Asian wide runes take two
// columns and every line is one row tall. Font attributes do not change
// cell widths.
type Cells struct{}

// MeasureText implements marquee.TextMetrics.
func (Cells) MeasureText(text string, _ marquee.Font) marquee.Size {
	return marquee.Size{Width: float32(runewidth.StringWidth(text)), Height: 1}
}
