package imaging

import (
	"image"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"
)

// Resize scales src to exactly w x h using Catmull-Rom interpolation.
// Catmull-Rom is the highest-quality kernel in x/image/draw and the cost is
// negligible next to encode time.
func Resize(src image.Image, w, h int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

// CropCenter copies the centered w x h window of src into a new buffer.
// When src is smaller than the window in an axis, src is centered and the
// uncovered margin stays transparent.
func CropCenter(src image.Image, w, h int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	b := src.Bounds()

	// Source point such that the centers of src and dst coincide.
	// draw.Draw clips against both bounds, so negative margins are safe.
	sp := image.Pt(
		b.Min.X+(b.Dx()-w)/2,
		b.Min.Y+(b.Dy()-h)/2,
	)
	draw.Draw(dst, dst.Bounds(), src, sp, draw.Src)
	return dst
}

// CoverSize returns the dimensions of src scaled by the cover factor for a
// w x h window: the smallest size that fills the window in both axes while
// preserving aspect ratio. The returned scale is max(w/srcW, h/srcH).
func CoverSize(srcW, srcH, w, h int) (outW, outH int, scale float64) {
	scale = math.Max(float64(w)/float64(srcW), float64(h)/float64(srcH))

	outW = int(math.Ceil(float64(srcW) * scale))
	outH = int(math.Ceil(float64(srcH) * scale))

	// Ceil guarantees coverage; clamp against rounding drift anyway.
	if outW < w {
		outW = w
	}
	if outH < h {
		outH = h
	}
	return outW, outH, scale
}
