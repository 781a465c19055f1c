package posterkit

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/posterkit/posterkit/text"
)

// Compose merges the template background, the fitted photo and the rendered
// text blocks into one poster buffer.
//
// Layers paint in declaration order: background, image slot, then each text
// slot. The output dimensions always equal the template background
// dimensions, and composing the same inputs twice produces byte-identical
// output.
//
// Compose fails with CompositionError only when a buffer's dimensions do
// not match its slot. That indicates a bug in the fitter or renderer, not a
// user-input problem.
func Compose(tpl *Template, fitted *image.NRGBA, blocks []*text.Block) (*image.NRGBA, error) {
	if got, want := fitted.Bounds().Size(), tpl.ImageSlot.Std().Size(); got != want {
		return nil, &CompositionError{
			Reason: fmt.Sprintf("fitted image is %v, image slot %s wants %v", got, tpl.ImageSlot, want),
		}
	}
	if len(blocks) != len(tpl.TextSlots) {
		return nil, &CompositionError{
			Reason: fmt.Sprintf("%d text blocks for %d text slots", len(blocks), len(tpl.TextSlots)),
		}
	}

	w, h := tpl.Size()
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(out, out.Bounds(), tpl.Background, tpl.Background.Bounds().Min, draw.Src)

	draw.Draw(out, tpl.ImageSlot.Std(), fitted, fitted.Bounds().Min, draw.Over)

	for i, block := range blocks {
		slot := tpl.TextSlots[i]
		if got, want := block.Image.Bounds().Size(), slot.Rect.Std().Size(); got != want {
			return nil, &CompositionError{
				Reason: fmt.Sprintf("text block %d is %v, slot %s wants %v", i, got, slot.Rect, want),
			}
		}
		draw.Draw(out, slot.Rect.Std(), block.Image, block.Image.Bounds().Min, draw.Over)
	}

	return out, nil
}
