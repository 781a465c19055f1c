// Package posterkit composes finished posters from an input photo and a
// short caption.
//
// # Overview
//
// A caption such as "1-message: Congratulations Team Alpha" selects one of a
// finite set of poster templates. posterkit fits the photo into the
// template's image slot (cover-and-crop, never upscaled), lays the caption
// text into the template's text slots (word-wrapped, shrink-to-fit), and
// composites everything over the template background.
//
// # Quick Start
//
//	reg, err := posterkit.LoadRegistry("templates")
//	if err != nil { ... }
//	fonts, err := text.NewLibrary("fonts")
//	if err != nil { ... }
//
//	eng := posterkit.NewEngine(reg, fonts)
//	res, err := eng.Generate(ctx, posterkit.PosterRequest{
//		Image:   photoBytes,
//		Caption: "1-message: Congratulations Team Alpha",
//	})
//	// res.Data holds the encoded poster (PNG by default).
//
// # Architecture
//
// The library is organized into:
//   - Public API: Engine, Registry, Template, ParseCaption, FitImage, Compose
//   - text: word wrapping, shrink-to-fit layout, font library
//   - internal/imaging: decode/encode and scaling helpers
//
// Templates are loaded once at startup and are immutable afterwards, so a
// single Engine is safe for any number of concurrent Generate calls. All
// per-request state is owned by the call that created it.
//
// # Errors
//
// User-input problems (malformed caption, unknown template key, undecodable
// image) are reported as typed errors; see MalformedCaptionError,
// UnknownTemplateError and UnsupportedImageFormatError. Text that does not
// fit a slot even at the minimum font size is truncated with an ellipsis and
// reported via PosterResult.Truncated rather than failing the request.
package posterkit

// Version is the current version of the library.
const Version = "0.1.0"
