package text

import (
	"fmt"
	"strings"
)

// Align specifies horizontal text alignment inside a slot.
type Align uint8

const (
	// AlignLeft places each line at the slot's left edge.
	AlignLeft Align = iota
	// AlignCenter centers each line horizontally.
	AlignCenter
	// AlignRight places each line at the slot's right edge.
	AlignRight
)

// String returns the string representation of the alignment.
func (a Align) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "unknown"
	}
}

// ParseAlign parses "left", "center" or "right", ignoring case and
// surrounding whitespace.
func ParseAlign(s string) (Align, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return AlignLeft, nil
	case "center":
		return AlignCenter, nil
	case "right":
		return AlignRight, nil
	default:
		return AlignLeft, fmt.Errorf("text: invalid alignment %q", s)
	}
}
