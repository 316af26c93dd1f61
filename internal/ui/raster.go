package ui

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/edward-ap/marquee/internal/marquee"
	"github.com/edward-ap/marquee/internal/metrics"
)

// frame is everything one raster pass needs, copied out of the marquee.
type frame struct {
	layout marquee.Layout
	offset float32
	mask   *marquee.Mask
	labels [2]marquee.Label
}

func snapshot(m *marquee.Marquee) frame {
	return frame{
		layout: m.CurrentLayout(),
		offset: m.CurrentOffset(),
		mask:   m.CurrentMask(),
		labels: m.Labels(),
	}
}

// renderFrame draws both labels shifted by the scroll offset and applies the
// edge fade. scale converts layout units into device pixels.
func renderFrame(fr frame, faces *metrics.Faces, w, h int, scale float64) *image.RGBA {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if faces == nil {
		return img
	}
	for i, lf := range fr.layout.Labels {
		if !lf.Visible {
			continue
		}
		x := float64(lf.X+lf.TextX-fr.offset) * scale
		if x >= float64(w) || x+float64(fr.layout.TextSize.Width)*scale < 0 {
			continue // fully scrolled out
		}
		y := float64(lf.Y+lf.TextY) * scale
		lbl := fr.labels[i]
		if sh := lbl.Shadow; sh.Enabled() {
			drawRuns(img, faces, lbl, x+float64(sh.OffsetX)*scale, y+float64(sh.OffsetY)*scale, scale, &sh.Color)
		}
		drawRuns(img, faces, lbl, x, y, scale, nil)
	}
	applyMask(img, fr.mask)
	return img
}

// drawRuns draws each span of lbl starting at (x, y), y being the top of the
// text line. override replaces every span colour (used for shadows).
func drawRuns(dst draw.Image, faces *metrics.Faces, lbl marquee.Label, x, y, scale float64, override *color.NRGBA) {
	dot := fixed.Int26_6(x * 64)
	for _, r := range lbl.Content.Runs() {
		fnt := lbl.Font
		fnt.Bold = fnt.Bold || r.Bold
		fnt.Italic = fnt.Italic || r.Italic
		face := faces.Face(fnt, scale)

		col := lbl.Color
		if r.Color.A > 0 {
			col = r.Color
		}
		if override != nil {
			col = *override
		}
		d := &font.Drawer{
			Dst:  dst,
			Src:  image.NewUniform(col),
			Face: face,
			Dot:  fixed.Point26_6{X: dot, Y: fixed.Int26_6(y*64) + face.Metrics().Ascent},
		}
		d.DrawString(r.Text)
		dot = d.Dot.X
	}
}

// applyMask multiplies every column of the premultiplied image by the
// gradient alpha at that column.
func applyMask(img *image.RGBA, m *marquee.Mask) {
	if m == nil {
		return
	}
	b := img.Bounds()
	w := b.Dx()
	for px := 0; px < w; px++ {
		a := clampFloat64(float64(m.AlphaAt((float32(px)+0.5)/float32(w))), 0, 1)
		if a >= 1 {
			continue
		}
		for py := b.Min.Y; py < b.Max.Y; py++ {
			i := img.PixOffset(b.Min.X+px, py)
			for c := 0; c < 4; c++ {
				img.Pix[i+c] = uint8(float64(img.Pix[i+c])*a + 0.5)
			}
		}
	}
}
