package posterkit

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/posterkit/posterkit/internal/imaging"
	"github.com/posterkit/posterkit/text"
)

// slotBlocks returns one transparent block per text slot, drawn with a
// single opaque pixel at the block's top-left so paint position is
// observable.
func slotBlocks(tpl *Template, mark color.NRGBA) []*text.Block {
	blocks := make([]*text.Block, len(tpl.TextSlots))
	for i, slot := range tpl.TextSlots {
		img := image.NewNRGBA(image.Rect(0, 0, slot.Rect.W, slot.Rect.H))
		img.SetNRGBA(0, 0, mark)
		blocks[i] = &text.Block{Image: img}
	}
	return blocks
}

func TestCompose(t *testing.T) {
	tpl := newTestTemplate("1-message", 2)
	red := color.NRGBA{R: 255, A: 255}
	mark := color.NRGBA{B: 255, A: 255}

	fitted := solidImage(tpl.ImageSlot.W, tpl.ImageSlot.H, red)

	poster, err := Compose(tpl, fitted, slotBlocks(tpl, mark))
	if err != nil {
		t.Fatalf("Compose() = %v", err)
	}

	// Canvas dimensions equal the background's.
	if got, want := poster.Bounds().Size(), tpl.Background.Bounds().Size(); got != want {
		t.Fatalf("poster size = %v, want %v", got, want)
	}

	// Background shows outside every slot (top-left corner).
	if got := poster.NRGBAAt(1, 1); got != tpl.Background.NRGBAAt(1, 1) {
		t.Errorf("corner = %v, want background %v", got, tpl.Background.NRGBAAt(1, 1))
	}

	// Fitted image painted inside its slot rectangle.
	slot := tpl.ImageSlot
	if got := poster.NRGBAAt(slot.X+slot.W/2, slot.Y+slot.H/2); got != red {
		t.Errorf("image slot center = %v, want %v", got, red)
	}
	if got := poster.NRGBAAt(slot.X-1, slot.Y); got == red {
		t.Error("fitted image bled outside its slot")
	}

	// Each text block painted at its own slot origin; transparent block
	// pixels leave the background visible.
	for i, ts := range tpl.TextSlots {
		if got := poster.NRGBAAt(ts.Rect.X, ts.Rect.Y); got != mark {
			t.Errorf("text slot %d origin = %v, want mark %v", i, got, mark)
		}
		if got := poster.NRGBAAt(ts.Rect.X+1, ts.Rect.Y); got != tpl.Background.NRGBAAt(ts.Rect.X+1, ts.Rect.Y) {
			t.Errorf("text slot %d transparent pixel = %v, want background", i, got)
		}
	}
}

// Composing the same inputs twice must produce byte-identical posters.
func TestCompose_Idempotent(t *testing.T) {
	tpl := newTestTemplate("1-message", 1)
	fitted := solidImage(tpl.ImageSlot.W, tpl.ImageSlot.H, color.NRGBA{G: 128, A: 255})
	blocks := slotBlocks(tpl, color.NRGBA{B: 255, A: 255})

	first, err := Compose(tpl, fitted, blocks)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Compose(tpl, fitted, blocks)
	if err != nil {
		t.Fatal(err)
	}

	firstPNG, err := imaging.EncodePNGBytes(first)
	if err != nil {
		t.Fatal(err)
	}
	secondPNG, err := imaging.EncodePNGBytes(second)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(firstPNG, secondPNG) {
		t.Error("composing the same inputs twice produced different bytes")
	}
}

func TestCompose_InvariantViolations(t *testing.T) {
	tpl := newTestTemplate("1-message", 1)
	goodFitted := solidImage(tpl.ImageSlot.W, tpl.ImageSlot.H, color.NRGBA{A: 255})
	goodBlocks := slotBlocks(tpl, color.NRGBA{A: 255})

	tests := []struct {
		name   string
		fitted *image.NRGBA
		blocks []*text.Block
	}{
		{
			name:   "fitted image wrong size",
			fitted: solidImage(10, 10, color.NRGBA{A: 255}),
			blocks: goodBlocks,
		},
		{
			name:   "block count mismatch",
			fitted: goodFitted,
			blocks: nil,
		},
		{
			name:   "text block wrong size",
			fitted: goodFitted,
			blocks: []*text.Block{{Image: image.NewNRGBA(image.Rect(0, 0, 1, 1))}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compose(tpl, tt.fitted, tt.blocks)
			if _, ok := err.(*CompositionError); !ok {
				t.Errorf("Compose() = %v, want CompositionError", err)
			}
		})
	}
}
