package ui

import (
	"image"
	"image/color"
	"image/draw"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edward-ap/marquee/internal/marquee"
	"github.com/edward-ap/marquee/internal/metrics"
)

func bitmapFaces(t *testing.T) *metrics.Faces {
	t.Helper()
	f, err := metrics.NewFaces(nil, rasterDPI, 1)
	require.NoError(t, err)
	return f
}

func opaque(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	return img
}

func totalAlpha(img *image.RGBA) int {
	sum := 0
	for i := 3; i < len(img.Pix); i += 4 {
		sum += int(img.Pix[i])
	}
	return sum
}

func TestApplyMaskFadesColumns(t *testing.T) {
	tests := []struct {
		name      string
		mask      *marquee.Mask
		leftA     uint8
		rightA    uint8
		middleA   uint8
		leftBelow bool
	}{
		{name: "no mask", mask: nil, leftA: 255, rightA: 255, middleA: 255},
		{name: "forward at rest", mask: marquee.ComputeMask(true, marquee.Forward, 10, 100, false), leftA: 255, rightA: 13, middleA: 255},
		{name: "scrolling", mask: marquee.ComputeMask(true, marquee.Forward, 10, 100, true), leftA: 13, rightA: 13, middleA: 255},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := opaque(100, 4)
			applyMask(img, tt.mask)
			assert.Equal(t, tt.leftA, img.RGBAAt(0, 2).A)
			assert.Equal(t, tt.rightA, img.RGBAAt(99, 2).A)
			assert.Equal(t, tt.middleA, img.RGBAAt(50, 2).A)
			px := img.RGBAAt(99, 2)
			assert.LessOrEqual(t, px.R, px.A, "stays premultiplied")
		})
	}
}

func TestRenderFrameFollowsOffset(t *testing.T) {
	faces := bitmapFaces(t)
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	m := marquee.New(faces, marquee.Options{Clock: func() time.Time { return clock }})
	m.SetTextColor(color.White)
	m.OnGeometryChanged(60, 20)
	m.SetText("scrolling text well past sixty pixels")
	m.OnAttachedToLiveDisplay()

	first := renderFrame(snapshot(m), faces, 60, 20, 1)
	require.Positive(t, totalAlpha(first))

	m.Tick(clock.Add(marquee.DefaultPause + 2*time.Second))
	require.Equal(t, marquee.PhaseAnimating, m.Phase())
	second := renderFrame(snapshot(m), faces, 60, 20, 1)
	assert.NotEqual(t, first.Pix, second.Pix)
}

func TestRenderFrameFittingTextHasNoMask(t *testing.T) {
	faces := bitmapFaces(t)
	m := marquee.New(faces, marquee.Options{})
	m.SetTextColor(color.White)
	m.OnGeometryChanged(200, 20)
	m.SetText("fits")

	fr := snapshot(m)
	assert.Nil(t, fr.mask)
	img := renderFrame(fr, faces, 200, 20, 1)
	assert.Positive(t, totalAlpha(img))
}

func TestRenderFrameScalesToDevicePixels(t *testing.T) {
	faces := bitmapFaces(t)
	m := marquee.New(faces, marquee.Options{})
	m.OnGeometryChanged(200, 20)
	m.SetText("hi")

	img := renderFrame(snapshot(m), faces, 400, 40, 2)
	assert.Equal(t, image.Rect(0, 0, 400, 40), img.Bounds())
	empty := renderFrame(frame{}, nil, 0, 0, 1)
	assert.Equal(t, image.Rect(0, 0, 1, 1), empty.Bounds())
}
