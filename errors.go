package posterkit

import (
	"fmt"
	"strings"
)

// MalformedCaptionError reports a caption that does not follow the
// "<N>-message: <segment> | <segment> | ..." grammar, or whose segment
// count does not match the resolved template's text slots.
type MalformedCaptionError struct {
	Caption string
	Reason  string
}

func (e *MalformedCaptionError) Error() string {
	return "posterkit: malformed caption: " + e.Reason
}

// UnknownTemplateError reports a caption key with no matching template.
// Known holds the registry's valid keys, sorted.
type UnknownTemplateError struct {
	Key   string
	Known []string
}

func (e *UnknownTemplateError) Error() string {
	if len(e.Known) == 0 {
		return fmt.Sprintf("posterkit: unknown template %q (registry is empty)", e.Key)
	}
	return fmt.Sprintf("posterkit: unknown template %q (known: %s)", e.Key, strings.Join(e.Known, ", "))
}

// UnsupportedImageFormatError reports image bytes that could not be decoded
// as any recognized raster format. MIME holds the content type sniffed from
// the byte stream so the caller can report what was actually received.
type UnsupportedImageFormatError struct {
	MIME string
	Err  error
}

func (e *UnsupportedImageFormatError) Error() string {
	return fmt.Sprintf("posterkit: unsupported image format %q", e.MIME)
}

func (e *UnsupportedImageFormatError) Unwrap() error { return e.Err }

// CompositionError reports an internal invariant violation during
// compositing, such as a fitted image whose dimensions do not match its
// slot. It indicates a bug upstream of the compositor and is not a normal
// user-facing condition.
type CompositionError struct {
	Reason string
}

func (e *CompositionError) Error() string {
	return "posterkit: composition: " + e.Reason
}
