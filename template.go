package posterkit

import (
	"fmt"
	"image"
	"image/color"

	"github.com/samber/lo"

	"github.com/posterkit/posterkit/text"
)

// Rect is a rectangular slot region on a template, in pixels from the
// template's top-left corner.
type Rect struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	W int `yaml:"w" validate:"gt=0"`
	H int `yaml:"h" validate:"gt=0"`
}

// Std returns the rect as a standard library image.Rectangle.
func (r Rect) Std() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)
}

func (r Rect) String() string {
	return fmt.Sprintf("%dx%d@(%d,%d)", r.W, r.H, r.X, r.Y)
}

// defaultTextColor is opaque black, matching the most common poster artwork.
var defaultTextColor = color.NRGBA{A: 255}

// TextSlot is a template region reserved for one caption segment, together
// with its text style.
type TextSlot struct {
	Rect Rect

	// FontFamily names a font in the engine's font library.
	FontFamily string
	// Size is the base font size in points. The layout shrinks from here
	// when the wrapped text is taller than the slot.
	Size float64
	// MinSize is the shrink floor. Zero means the engine default.
	MinSize float64

	Align text.Align
	Color color.NRGBA
}

// Template is a fixed poster layout: a background image, one image slot and
// an ordered sequence of text slots. Templates are immutable after load.
type Template struct {
	// ID is the caption key that selects this template, e.g. "1-message".
	ID string
	// Background is the template artwork. Its bounds start at the origin
	// and define the final poster dimensions.
	Background *image.NRGBA
	ImageSlot  Rect
	TextSlots  []TextSlot
}

// Size returns the template's canvas dimensions.
func (t *Template) Size() (width, height int) {
	b := t.Background.Bounds()
	return b.Dx(), b.Dy()
}

// validate checks the template's structural invariants: at least one text
// slot, every slot inside the canvas, and no two slots overlapping.
func (t *Template) validate() error {
	if t.ID == "" {
		return fmt.Errorf("template has no id")
	}
	if t.Background == nil {
		return fmt.Errorf("template %q has no background", t.ID)
	}
	if len(t.TextSlots) == 0 {
		return fmt.Errorf("template %q has no text slots", t.ID)
	}

	canvas := t.Background.Bounds()
	slots := append([]Rect{t.ImageSlot}, lo.Map(t.TextSlots, func(s TextSlot, _ int) Rect {
		return s.Rect
	})...)

	for i, r := range slots {
		if !r.Std().In(canvas) {
			return fmt.Errorf("template %q: slot %s exceeds canvas %dx%d",
				t.ID, r, canvas.Dx(), canvas.Dy())
		}
		for _, prev := range slots[:i] {
			if r.Std().Overlaps(prev.Std()) {
				return fmt.Errorf("template %q: slot %s overlaps slot %s", t.ID, r, prev)
			}
		}
	}

	return nil
}

// ParseHexColor parses a "#RGB", "#RGBA", "#RRGGBB" or "#RRGGBBAA" hex
// string into an NRGBA color. The leading "#" is optional.
func ParseHexColor(s string) (color.NRGBA, error) {
	if s != "" && s[0] == '#' {
		s = s[1:]
	}

	var r, g, b uint8
	a := uint8(255)

	hexByte := func(sub string) (uint8, error) {
		var v uint8
		if _, err := fmt.Sscanf(sub, "%02x", &v); err != nil {
			return 0, fmt.Errorf("posterkit: invalid hex color %q", s)
		}
		return v, nil
	}
	hexNibble := func(sub string) (uint8, error) {
		v, err := hexByte("0" + sub)
		if err != nil {
			return 0, err
		}
		return v * 17, nil
	}

	var err error
	switch len(s) {
	case 3, 4:
		if r, err = hexNibble(s[0:1]); err != nil {
			return color.NRGBA{}, err
		}
		if g, err = hexNibble(s[1:2]); err != nil {
			return color.NRGBA{}, err
		}
		if b, err = hexNibble(s[2:3]); err != nil {
			return color.NRGBA{}, err
		}
		if len(s) == 4 {
			if a, err = hexNibble(s[3:4]); err != nil {
				return color.NRGBA{}, err
			}
		}
	case 6, 8:
		if r, err = hexByte(s[0:2]); err != nil {
			return color.NRGBA{}, err
		}
		if g, err = hexByte(s[2:4]); err != nil {
			return color.NRGBA{}, err
		}
		if b, err = hexByte(s[4:6]); err != nil {
			return color.NRGBA{}, err
		}
		if len(s) == 8 {
			if a, err = hexByte(s[6:8]); err != nil {
				return color.NRGBA{}, err
			}
		}
	default:
		return color.NRGBA{}, fmt.Errorf("posterkit: invalid hex color %q", s)
	}

	return color.NRGBA{R: r, G: g, B: b, A: a}, nil
}
