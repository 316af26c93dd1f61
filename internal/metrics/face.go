// Package metrics provides marquee.TextMetrics implementations for hosts
// that do not bring their own text measurement.
package metrics

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/edward-ap/marquee/internal/marquee"
)

// DefaultTextSize is used when a marquee.Font carries no size.
const DefaultTextSize = 14

type variant int

const (
	regular variant = iota
	bold
	italic
	boldItalic
	mono
	variantCount
)

func variantOf(f marquee.Font) variant {
	switch {
	case f.Monospace:
		return mono
	case f.Bold && f.Italic:
		return boldItalic
	case f.Bold:
		return bold
	case f.Italic:
		return italic
	default:
		return regular
	}
}

type faceKey struct {
	v    variant
	size float64
}

// Faces measures text with OpenType fonts, caching one font.Face per
// variant and size. A variant without a parsed font falls back to the
// fixed 7x13 bitmap face.
type Faces struct {
	fonts [variantCount]*opentype.Font
	dpi   float64
	scale float64
	cache map[faceKey]font.Face
}

// NewGoFaces builds Faces from the Go font family bundled with x/image.
func NewGoFaces(dpi, scale float64) (*Faces, error) {
	srcs := [variantCount][]byte{
		regular:    goregular.TTF,
		bold:       gobold.TTF,
		italic:     goitalic.TTF,
		boldItalic: gobolditalic.TTF,
		mono:       gomono.TTF,
	}
	f := newFaces(dpi, scale)
	for v, data := range srcs {
		ttf, err := opentype.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("parse go font variant %d: %w", v, err)
		}
		f.fonts[v] = ttf
	}
	return f, nil
}

// NewFaces builds Faces from a single TTF/OTF used for every variant. Empty
// data selects the bitmap fallback.
func NewFaces(data []byte, dpi, scale float64) (*Faces, error) {
	f := newFaces(dpi, scale)
	if len(data) == 0 {
		return f, nil
	}
	ttf, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	for v := range f.fonts {
		f.fonts[v] = ttf
	}
	return f, nil
}

func newFaces(dpi, scale float64) *Faces {
	if dpi <= 0 {
		dpi = 96
	}
	if scale <= 0 {
		scale = 1
	}
	return &Faces{dpi: dpi, scale: scale, cache: make(map[faceKey]font.Face)}
}

// MeasureText implements marquee.TextMetrics.
func (f *Faces) MeasureText(text string, fnt marquee.Font) marquee.Size {
	face := f.Face(fnt, 1)
	adv := font.MeasureString(face, text)
	m := face.Metrics()
	return marquee.Size{Width: toFloat(adv), Height: toFloat(m.Ascent + m.Descent)}
}

// Close releases every cached face.
func (f *Faces) Close() error {
	for k, face := range f.cache {
		if err := face.Close(); err != nil {
			return err
		}
		delete(f.cache, k)
	}
	return nil
}

// Face returns the cached face for fnt, additionally scaled by pixelScale
// for drawing into device pixels.
func (f *Faces) Face(fnt marquee.Font, pixelScale float64) font.Face {
	size := float64(fnt.Size)
	if size <= 0 {
		size = DefaultTextSize
	}
	if pixelScale <= 0 {
		pixelScale = 1
	}
	size *= f.scale * pixelScale
	key := faceKey{v: variantOf(fnt), size: size}
	if face, ok := f.cache[key]; ok {
		return face
	}
	var face font.Face = basicfont.Face7x13
	if ttf := f.fonts[key.v]; ttf != nil {
		if nf, err := opentype.NewFace(ttf, &opentype.FaceOptions{Size: size, DPI: f.dpi, Hinting: font.HintingFull}); err == nil {
			face = nf
		}
	}
	f.cache[key] = face
	return face
}

func toFloat(v fixed.Int26_6) float32 { return float32(v) / 64 }
