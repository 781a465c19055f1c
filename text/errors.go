package text

import "errors"

// Sentinel errors for the text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrUnknownFamily is returned when a font family is not present in
	// the library.
	ErrUnknownFamily = errors.New("text: unknown font family")

	// ErrInvalidSlot is returned when a slot has a non-positive dimension.
	ErrInvalidSlot = errors.New("text: slot dimensions must be positive")
)
