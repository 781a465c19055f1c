package posterkit

import (
	"context"
	"fmt"
	"image"

	"golang.org/x/sync/errgroup"

	"github.com/posterkit/posterkit/internal/imaging"
	"github.com/posterkit/posterkit/text"
)

// PosterRequest is one unit of work: a source photo and its raw caption.
type PosterRequest struct {
	// Image holds the raw photo bytes in any registered raster format
	// (PNG, JPEG, GIF, BMP, TIFF, WebP).
	Image []byte
	// Caption selects the template and carries the text segments; see
	// ParseCaption for the grammar.
	Caption string
}

// PosterResult is a finished poster.
type PosterResult struct {
	// Data holds the encoded poster bytes.
	Data []byte
	// Format is the encoding of Data.
	Format OutputFormat
	// TemplateID is the template the caption resolved to.
	TemplateID string
	// Width and Height are the poster dimensions, equal to the template
	// background's.
	Width, Height int
	// Truncated reports that at least one text segment did not fit its
	// slot even at the minimum font size and was cut with an ellipsis.
	Truncated bool
}

// Engine turns (photo, caption) pairs into posters. It owns the read-only
// template registry and font library; everything else is per-request state,
// so one Engine serves any number of concurrent Generate calls.
type Engine struct {
	registry *Registry
	fonts    *text.Library
	opts     engineOptions
}

// NewEngine builds an engine around a loaded registry and font library.
func NewEngine(registry *Registry, fonts *text.Library, opts ...Option) *Engine {
	o := defaultEngineOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Engine{registry: registry, fonts: fonts, opts: o}
}

// Registry exposes the engine's template registry, e.g. for listing keys.
func (e *Engine) Registry() *Registry { return e.registry }

// Generate produces a poster from one request.
//
// Pipeline: parse the caption, resolve the template, check the segment
// count, fit the photo and lay out the text (in parallel — the two steps
// are independent and CPU-bound), composite, encode.
//
// User-input problems return MalformedCaptionError, UnknownTemplateError or
// UnsupportedImageFormatError and affect only this request. Text overflow
// is not an error: the poster is still produced and the result reports
// Truncated.
func (e *Engine) Generate(ctx context.Context, req PosterRequest) (*PosterResult, error) {
	parsed, err := ParseCaption(req.Caption)
	if err != nil {
		return nil, err
	}

	tpl, err := e.registry.Resolve(parsed.Key)
	if err != nil {
		return nil, err
	}

	if len(parsed.Segments) != len(tpl.TextSlots) {
		return nil, &MalformedCaptionError{
			Caption: req.Caption,
			Reason: fmt.Sprintf("template %q wants %d text segments, got %d",
				tpl.ID, len(tpl.TextSlots), len(parsed.Segments)),
		}
	}

	Logger().Debug("caption parsed",
		"template", tpl.ID, "segments", len(parsed.Segments))

	var (
		fitted *image.NRGBA
		blocks = make([]*text.Block, len(tpl.TextSlots))
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var ferr error
		fitted, ferr = FitImage(req.Image, tpl.ImageSlot)
		return ferr
	})
	g.Go(func() error {
		for i, slot := range tpl.TextSlots {
			block, rerr := e.renderSlot(parsed.Segments[i], slot)
			if rerr != nil {
				return rerr
			}
			blocks[i] = block
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	poster, err := Compose(tpl, fitted, blocks)
	if err != nil {
		return nil, err
	}

	data, err := e.encode(poster)
	if err != nil {
		return nil, err
	}

	truncated := false
	for _, b := range blocks {
		truncated = truncated || b.Truncated
	}

	w, h := tpl.Size()
	Logger().Debug("poster generated",
		"template", tpl.ID, "format", e.opts.format, "bytes", len(data), "truncated", truncated)

	return &PosterResult{
		Data:       data,
		Format:     e.opts.format,
		TemplateID: tpl.ID,
		Width:      w,
		Height:     h,
		Truncated:  truncated,
	}, nil
}

// renderSlot lays one segment into its slot's buffer.
func (e *Engine) renderSlot(segment string, slot TextSlot) (*text.Block, error) {
	src := e.fonts.Resolve(slot.FontFamily, segment)

	block, err := text.RenderBlock(segment, slot.Rect.W, slot.Rect.H, text.Style{
		Size:    slot.Size,
		MinSize: slot.MinSize,
		Align:   slot.Align,
		Color:   slot.Color,
	}, src, e.opts.layout)
	if err != nil {
		return nil, err
	}

	if block.Truncated {
		Logger().Warn("text truncated at minimum font size",
			"slot", slot.Rect, "font", src.Name(), "size", block.FontSize)
	}
	return block, nil
}

// encode serializes the poster in the engine's configured format.
func (e *Engine) encode(poster *image.NRGBA) ([]byte, error) {
	switch e.opts.format {
	case FormatJPEG:
		return imaging.EncodeJPEGBytes(poster, e.opts.jpegQuality)
	default:
		return imaging.EncodePNGBytes(poster)
	}
}
