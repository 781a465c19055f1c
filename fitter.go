package posterkit

import (
	"image"

	"github.com/gabriel-vasile/mimetype"

	"github.com/posterkit/posterkit/internal/imaging"
)

// FitImage decodes the source photo and fits it into a slot-sized buffer.
//
// Fitting policy (cover-and-crop): the photo is scaled by
// max(slot.W/imgW, slot.H/imgH) so it fills the slot in both axes, then the
// centered overflow is cropped. Posters should never show template
// background behind the photo.
//
// The photo is never upscaled beyond its original resolution: when it is
// smaller than the slot it is centered unscaled, the uncovered margin stays
// transparent, and a degraded-layout warning is logged. This is the one
// case where background may show through, and it is non-fatal.
//
// The returned buffer's dimensions always equal slot.W x slot.H.
func FitImage(data []byte, slot Rect) (*image.NRGBA, error) {
	src, err := imaging.Decode(data)
	if err != nil {
		return nil, &UnsupportedImageFormatError{
			MIME: mimetype.Detect(data).String(),
			Err:  err,
		}
	}

	iw := src.Bounds().Dx()
	ih := src.Bounds().Dy()
	outW, outH, scale := imaging.CoverSize(iw, ih, slot.W, slot.H)

	if scale > 1 {
		// Covering would magnify the photo. Center it unscaled instead.
		Logger().Warn("image smaller than slot, centering without upscale",
			"image", image.Pt(iw, ih), "slot", slot)
		return imaging.CropCenter(src, slot.W, slot.H), nil
	}

	scaled := src
	if scale < 1 {
		scaled = imaging.Resize(src, outW, outH)
	}

	Logger().Debug("image fitted",
		"image", image.Pt(iw, ih), "slot", slot, "scale", scale)
	return imaging.CropCenter(scaled, slot.W, slot.H), nil
}
