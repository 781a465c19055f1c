package text

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// Source produces font faces at arbitrary sizes. One Source is created per
// font file and shared across the application; faces are created per render
// because a font.Face is not safe for concurrent use.
type Source interface {
	// Name returns the family name this source was registered under.
	Name() string

	// NewFace returns a face at the given size in points. The caller
	// must Close the face when done with it.
	NewFace(size float64) (font.Face, error)
}

// openTypeSource wraps a parsed TTF/OTF font.
type openTypeSource struct {
	name string
	font *opentype.Font
}

// NewSource parses TTF or OTF font data into a Source. The data slice must
// not be modified after the call.
func NewSource(name string, data []byte) (Source, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: parse font %q: %w", name, err)
	}
	return &openTypeSource{name: name, font: f}, nil
}

func (s *openTypeSource) Name() string { return s.name }

func (s *openTypeSource) NewFace(size float64) (font.Face, error) {
	face, err := opentype.NewFace(s.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("text: face %q at %.1fpt: %w", s.name, size, err)
	}
	return face, nil
}

// BuiltinName is the family name of the builtin bitmap source.
const BuiltinName = "builtin"

// builtinSource is the last-resort fallback: the fixed-size bitmap face
// from x/image/font/basicfont. It ignores the requested size.
type builtinSource struct{}

// Builtin returns the builtin bitmap source. It needs no font files and
// never fails, which also makes it the natural face for tests.
func Builtin() Source { return builtinSource{} }

func (builtinSource) Name() string { return BuiltinName }

func (builtinSource) NewFace(float64) (font.Face, error) {
	return basicfont.Face7x13, nil
}
