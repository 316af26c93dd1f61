package tui

import (
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"github.com/edward-ap/marquee/internal/marquee"
)

// cell is one terminal column of a label. A wide rune fills two cells; the
// second one is a continuation with r == 0.
type cell struct {
	r      rune
	bold   bool
	italic bool
	color  color.NRGBA
}

func labelCells(l marquee.Label) []cell {
	var out []cell
	for _, run := range l.Content.Runs() {
		col := l.Color
		if run.Color.A > 0 {
			col = run.Color
		}
		for _, r := range run.Text {
			c := cell{r: r, bold: l.Font.Bold || run.Bold, italic: l.Font.Italic || run.Italic, color: col}
			out = append(out, c)
			for i := 1; i < runewidth.RuneWidth(r); i++ {
				out = append(out, cell{bold: c.bold, italic: c.italic, color: col})
			}
		}
	}
	return out
}

// renderLine draws the visible window of the marquee as one terminal line,
// fading each column toward bg by the mask alpha.
func renderLine(re *lipgloss.Renderer, m *marquee.Marquee, bg color.Color) string {
	layout := m.CurrentLayout()
	width := int(layout.Viewport.Width)
	if width <= 0 {
		return ""
	}
	labels := m.Labels()
	cells := labelCells(labels[0])
	mask := m.CurrentMask()
	offset := int(math.Round(float64(m.CurrentOffset())))
	back, _ := colorful.MakeColor(opaque(bg))

	var b strings.Builder
	skip := false
	for col := 0; col < width; col++ {
		if skip {
			// second column of a wide rune already written
			skip = false
			continue
		}
		c, ok := cellAt(layout, cells, col+offset)
		if !ok || c.r == 0 {
			b.WriteByte(' ')
			continue
		}
		w := runewidth.RuneWidth(c.r)
		if col+w > width {
			b.WriteByte(' ')
			continue
		}
		fore, _ := colorful.MakeColor(opaque(c.color))
		alpha := float64(mask.AlphaAt((float32(col) + 0.5) / float32(width)))
		style := re.NewStyle().
			Foreground(lipgloss.Color(back.BlendRgb(fore, alpha).Clamped().Hex())).
			Bold(c.bold).
			Italic(c.italic)
		b.WriteString(style.Render(string(c.r)))
		skip = w > 1
	}
	return b.String()
}

// cellAt finds the label cell under content column x.
func cellAt(layout marquee.Layout, cells []cell, x int) (cell, bool) {
	for _, lf := range layout.Labels {
		if !lf.Visible {
			continue
		}
		rel := x - int(math.Round(float64(lf.X+lf.TextX)))
		if rel < 0 || rel >= len(cells) {
			continue
		}
		return cells[rel], true
	}
	return cell{}, false
}

func opaque(c color.Color) color.Color {
	if c == nil {
		return color.Black
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = 0xff
	return n
}
