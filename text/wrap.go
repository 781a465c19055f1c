package text

import (
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// wrap breaks s into lines no wider than maxWidth, measured with face.
// Breaks happen at word boundaries first; a single word wider than the line
// falls back to rune boundaries so no line ever exceeds maxWidth (except a
// single rune that is itself wider).
func wrap(s string, face font.Face, maxWidth fixed.Int26_6) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	var line string

	flush := func() {
		if line != "" {
			lines = append(lines, line)
			line = ""
		}
	}

	for _, word := range words {
		if font.MeasureString(face, word) > maxWidth {
			// Word alone overflows the line. Emit what we have and
			// split the word itself.
			flush()
			lines = append(lines, breakWord(word, face, maxWidth)...)
			// Continue the next word on the last chunk.
			line = lines[len(lines)-1]
			lines = lines[:len(lines)-1]
			continue
		}

		candidate := word
		if line != "" {
			candidate = line + " " + word
		}
		if font.MeasureString(face, candidate) <= maxWidth {
			line = candidate
			continue
		}

		flush()
		line = word
	}
	flush()

	return lines
}

// breakWord splits one over-wide word into rune-boundary chunks that each
// fit maxWidth. A chunk always holds at least one rune so progress is
// guaranteed even for absurdly narrow slots.
func breakWord(word string, face font.Face, maxWidth fixed.Int26_6) []string {
	var chunks []string
	var chunk []rune

	for _, r := range word {
		candidate := append(chunk, r)
		if len(chunk) > 0 && font.MeasureString(face, string(candidate)) > maxWidth {
			chunks = append(chunks, string(chunk))
			chunk = []rune{r}
			continue
		}
		chunk = candidate
	}
	if len(chunk) > 0 {
		chunks = append(chunks, string(chunk))
	}

	return chunks
}

// truncate shortens line until line+marker fits maxWidth, then appends the
// marker. If nothing fits, the marker alone is returned.
func truncate(line string, face font.Face, maxWidth fixed.Int26_6, marker string) string {
	runes := []rune(line)
	for len(runes) > 0 {
		candidate := strings.TrimRight(string(runes), " ") + marker
		if font.MeasureString(face, candidate) <= maxWidth {
			return candidate
		}
		runes = runes[:len(runes)-1]
	}
	return marker
}
