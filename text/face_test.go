package text

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// fakeFace is a deterministic font.Face for layout tests: every rune
// advances size/2 pixels, the line height is 1.2*size. It draws each glyph
// as a single opaque pixel so draw positions are observable.
type fakeFace struct {
	size float64
}

var _ font.Face = fakeFace{}

func fix(f float64) fixed.Int26_6 { return fixed.Int26_6(f * 64) }

func (f fakeFace) advance() fixed.Int26_6 { return fix(f.size / 2) }

func (f fakeFace) Close() error { return nil }

func (f fakeFace) Metrics() font.Metrics {
	return font.Metrics{
		Height:  fix(f.size * 1.2),
		Ascent:  fix(f.size),
		Descent: fix(f.size * 0.2),
	}
}

func (f fakeFace) Kern(r0, r1 rune) fixed.Int26_6 { return 0 }

func (f fakeFace) GlyphAdvance(r rune) (fixed.Int26_6, bool) {
	return f.advance(), true
}

func (f fakeFace) GlyphBounds(r rune) (fixed.Rectangle26_6, fixed.Int26_6, bool) {
	return fixed.R(0, -int(f.size), int(f.size/2), 0), f.advance(), true
}

func (f fakeFace) Glyph(dot fixed.Point26_6, r rune) (image.Rectangle, image.Image, image.Point, fixed.Int26_6, bool) {
	x, y := dot.X.Floor(), dot.Y.Floor()
	dr := image.Rect(x, y-1, x+1, y)
	return dr, image.NewUniform(color.Alpha{A: 255}), image.Point{}, f.advance(), true
}

// fakeSource hands out fakeFace at any size.
type fakeSource struct{}

var _ Source = fakeSource{}

func (fakeSource) Name() string { return "fake" }

func (fakeSource) NewFace(size float64) (font.Face, error) {
	return fakeFace{size: size}, nil
}
