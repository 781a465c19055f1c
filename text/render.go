package text

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Layout holds the shrink-to-fit tuning shared by all slots of an engine.
type Layout struct {
	// ShrinkStep is the font size decrement in points applied while the
	// wrapped text is taller than the slot.
	ShrinkStep float64
	// MinSize is the shrink floor used when a style declares none.
	MinSize float64
	// Ellipsis is appended to the last visible line when even the floor
	// size overflows the slot.
	Ellipsis string
}

// DefaultLayout is the tuning used when a zero Layout is supplied.
var DefaultLayout = Layout{
	ShrinkStep: 2,
	MinSize:    12,
	Ellipsis:   "…",
}

// Style describes how one segment is drawn into its slot.
type Style struct {
	// Size is the base font size in points.
	Size float64
	// MinSize is the shrink floor for this slot. Zero means Layout.MinSize.
	MinSize float64
	Align   Align
	Color   color.Color
}

// Block is one laid-out segment: a transparent slot-sized buffer with the
// text drawn in.
type Block struct {
	// Image has exactly the slot's dimensions.
	Image *image.NRGBA
	// FontSize is the size the text was finally drawn at.
	FontSize float64
	// Lines is the number of lines drawn.
	Lines int
	// Truncated reports that the text did not fit even at the floor size
	// and was cut with the ellipsis marker.
	Truncated bool
}

// RenderBlock lays segment into a w x h transparent buffer.
//
// The layout starts at style.Size, word-wraps to the slot width, and
// shrinks by layout.ShrinkStep while the wrapped block is taller than the
// slot. At the floor size, lines that still overflow are dropped and the
// last visible line is truncated with layout.Ellipsis. Overflow never
// fails: the result reports Truncated instead.
//
// An empty segment yields an empty transparent block.
func RenderBlock(segment string, w, h int, style Style, src Source, layout Layout) (*Block, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSlot, w, h)
	}
	if layout.ShrinkStep <= 0 {
		layout.ShrinkStep = DefaultLayout.ShrinkStep
	}
	if layout.MinSize <= 0 {
		layout.MinSize = DefaultLayout.MinSize
	}
	if layout.Ellipsis == "" {
		layout.Ellipsis = DefaultLayout.Ellipsis
	}

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	if segment == "" {
		return &Block{Image: img}, nil
	}

	floor := style.MinSize
	if floor <= 0 {
		floor = layout.MinSize
	}
	if floor > style.Size {
		floor = style.Size
	}

	maxWidth := fixed.I(w)
	size := style.Size

	var (
		face  font.Face
		lines []string
	)
	for {
		f, err := src.NewFace(size)
		if err != nil {
			return nil, err
		}

		lines = wrap(segment, f, maxWidth)
		if blockHeight(f, len(lines)) <= h || size-layout.ShrinkStep < floor {
			face = f
			break
		}

		_ = f.Close()
		size -= layout.ShrinkStep
	}
	defer func() { _ = face.Close() }()

	metrics := face.Metrics()
	lineHeight := metrics.Height.Ceil()
	if lineHeight <= 0 {
		lineHeight = 1
	}

	// Floor size reached and the block still overflows: keep what fits
	// and mark the cut.
	truncated := false
	if maxLines := max(h/lineHeight, 1); len(lines) > maxLines {
		lines = lines[:maxLines]
		lines[maxLines-1] = truncate(lines[maxLines-1], face, maxWidth, layout.Ellipsis)
		truncated = true
	}

	col := style.Color
	if col == nil {
		col = color.Black
	}

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: face,
	}

	y := metrics.Ascent.Ceil()
	for _, line := range lines {
		adv := d.MeasureString(line)

		var x fixed.Int26_6
		switch style.Align {
		case AlignCenter:
			x = (maxWidth - adv) / 2
		case AlignRight:
			x = maxWidth - adv
		}
		if x < 0 {
			x = 0
		}

		d.Dot = fixed.Point26_6{X: x, Y: fixed.I(y)}
		d.DrawString(line)
		y += lineHeight
	}

	return &Block{
		Image:     img,
		FontSize:  size,
		Lines:     len(lines),
		Truncated: truncated,
	}, nil
}

// blockHeight is the total height of n wrapped lines at the face's metrics.
func blockHeight(face font.Face, n int) int {
	return face.Metrics().Height.Ceil() * n
}
