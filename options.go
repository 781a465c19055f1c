package posterkit

import "github.com/posterkit/posterkit/text"

// OutputFormat selects the poster's encoding.
type OutputFormat uint8

const (
	// FormatPNG is the default output format. Lossless, so rendered text
	// stays crisp.
	FormatPNG OutputFormat = iota
	// FormatJPEG trades text crispness for size.
	FormatJPEG
)

// String returns the format's canonical name.
func (f OutputFormat) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatJPEG:
		return "jpeg"
	default:
		return "unknown"
	}
}

// Option configures an Engine during creation.
//
// Example:
//
//	eng := posterkit.NewEngine(reg, fonts,
//		posterkit.WithMinFontSize(10),
//		posterkit.WithJPEGOutput(90),
//	)
type Option func(*engineOptions)

// engineOptions holds optional configuration for Engine creation.
type engineOptions struct {
	layout      text.Layout
	format      OutputFormat
	jpegQuality int
}

// defaultEngineOptions returns the default engine options.
func defaultEngineOptions() engineOptions {
	return engineOptions{
		layout:      text.DefaultLayout,
		format:      FormatPNG,
		jpegQuality: 95,
	}
}

// WithShrinkStep sets the font size decrement, in points, used while
// shrinking text to fit its slot. Default 2.
func WithShrinkStep(step float64) Option {
	return func(o *engineOptions) {
		if step > 0 {
			o.layout.ShrinkStep = step
		}
	}
}

// WithMinFontSize sets the shrink floor, in points, for text slots that do
// not declare their own min_size. Default 12.
func WithMinFontSize(size float64) Option {
	return func(o *engineOptions) {
		if size > 0 {
			o.layout.MinSize = size
		}
	}
}

// WithEllipsis sets the marker appended to truncated text. Default "…".
func WithEllipsis(marker string) Option {
	return func(o *engineOptions) {
		if marker != "" {
			o.layout.Ellipsis = marker
		}
	}
}

// WithJPEGOutput switches poster encoding to JPEG at the given quality
// (1-100). The default is lossless PNG.
func WithJPEGOutput(quality int) Option {
	return func(o *engineOptions) {
		o.format = FormatJPEG
		o.jpegQuality = quality
	}
}
