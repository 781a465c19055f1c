package posterkit

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// SegmentSeparator splits a caption's text segments, one per text slot.
const SegmentSeparator = "|"

// captionKeyRe matches the template key token, e.g. "1-message".
var captionKeyRe = regexp.MustCompile(`^\d+-message$`)

// ParsedCaption is the result of parsing a raw caption string.
type ParsedCaption struct {
	// Key names the template, e.g. "1-message".
	Key string
	// Segments holds the text segments in slot order. Segments are
	// whitespace-trimmed and NFC-normalized.
	Segments []string
}

// ParseCaption parses a raw caption of the form
//
//	<N>-message: <segment> | <segment> | ...
//
// into its template key and text segments. It is a pure function with no
// side effects.
//
// ParseCaption does not know how many text slots the named template has;
// the segment count is checked against the resolved template by
// [Engine.Generate].
func ParseCaption(caption string) (ParsedCaption, error) {
	raw := strings.TrimSpace(caption)
	if raw == "" {
		return ParsedCaption{}, &MalformedCaptionError{Caption: caption, Reason: "caption is empty"}
	}

	key, rest, found := strings.Cut(raw, ":")
	if !found {
		return ParsedCaption{}, &MalformedCaptionError{
			Caption: caption,
			Reason:  `missing ":" after the template key`,
		}
	}

	key = strings.TrimSpace(key)
	if !captionKeyRe.MatchString(key) {
		return ParsedCaption{}, &MalformedCaptionError{
			Caption: caption,
			Reason:  fmt.Sprintf("template key %q does not match <N>-message", key),
		}
	}

	parts := strings.Split(rest, SegmentSeparator)
	segments := make([]string, 0, len(parts))
	for i, part := range parts {
		seg := norm.NFC.String(strings.TrimSpace(part))
		if seg == "" {
			return ParsedCaption{}, &MalformedCaptionError{
				Caption: caption,
				Reason:  fmt.Sprintf("segment %d is empty", i+1),
			}
		}
		segments = append(segments, seg)
	}

	return ParsedCaption{Key: key, Segments: segments}, nil
}
