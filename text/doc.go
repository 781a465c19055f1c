// Package text lays caption segments into fixed slot rectangles.
//
// The entry point is [RenderBlock]: given a segment, a slot size and a
// style, it word-wraps the text at the style's base font size, shrinks the
// size in fixed decrements while the wrapped block is taller than the slot,
// and as a last resort truncates with an ellipsis marker at the floor size.
// Truncation is reported, never an error: a poster is always produced.
//
// Fonts come from a [Source]. [Library] maps family names to sources loaded
// from a fonts directory, falls back to a script-matched family for
// non-Latin text, and finally to a builtin bitmap face so rendering works
// with no font files at all.
package text
