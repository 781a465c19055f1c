package text

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"github.com/abadojack/whatlanggo"
	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"
)

// Library resolves font family names to sources. Families are discovered by
// scanning a fonts directory for .ttf/.otf files once at construction; the
// files themselves are parsed lazily on first use and cached forever.
//
// Library is safe for concurrent use.
type Library struct {
	// files maps normalized family name to font file path. Read-only
	// after NewLibrary.
	files map[string]string

	// scripts maps a Unicode script to the family used for text written
	// in that script. Read-only after configuration.
	scripts map[*unicode.RangeTable]string

	builtin Source
	cache   *gocache.Cache
	group   singleflight.Group
}

// NewLibrary scans dir for font files. The family name of a file is its
// base name without extension, case-insensitive ("fonts/Inter-Bold.ttf"
// registers family "inter-bold"). An empty dir is allowed: every lookup
// then falls back to the builtin bitmap face.
func NewLibrary(dir string) (*Library, error) {
	l := &Library{
		files:   make(map[string]string),
		scripts: make(map[*unicode.RangeTable]string),
		builtin: Builtin(),
		cache:   gocache.New(gocache.NoExpiration, 0),
	}

	if dir == "" {
		return l, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("text: read fonts dir: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".ttf" && ext != ".otf" {
			continue
		}
		family := normalizeFamily(strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name())))
		l.files[family] = filepath.Join(dir, entry.Name())
	}

	return l, nil
}

// RegisterScript routes text written in the named Unicode script (e.g.
// "Malayalam", per the unicode.Scripts table) to a font family. Call during
// setup, before the library is shared across goroutines.
func (l *Library) RegisterScript(script, family string) error {
	tbl, ok := unicode.Scripts[script]
	if !ok {
		return fmt.Errorf("text: unknown script %q", script)
	}
	l.scripts[tbl] = normalizeFamily(family)
	return nil
}

// Families returns the discovered family names, sorted.
func (l *Library) Families() []string {
	families := make([]string, 0, len(l.files))
	for f := range l.files {
		families = append(families, f)
	}
	sort.Strings(families)
	return families
}

// Resolve picks the source for one text segment.
//
// A script-registered family wins when the segment's detected script has
// one (so a Malayalam caption uses the Malayalam font regardless of the
// slot's declared family). Otherwise the requested family is used, and the
// builtin bitmap face is the last resort. Resolve never fails: a poster is
// always renderable.
func (l *Library) Resolve(family, segment string) Source {
	if tbl := whatlanggo.DetectScript(segment); tbl != nil && tbl != unicode.Latin {
		if fam, ok := l.scripts[tbl]; ok {
			if src, err := l.load(fam); err == nil {
				return src
			}
		}
	}

	if src, err := l.load(normalizeFamily(family)); err == nil {
		return src
	}
	return l.builtin
}

// Lookup loads the source for a family name, without script routing.
func (l *Library) Lookup(family string) (Source, error) {
	return l.load(normalizeFamily(family))
}

// load parses a font file on first use. Concurrent first uses of the same
// family are collapsed to a single parse via singleflight.
func (l *Library) load(family string) (Source, error) {
	if src, ok := l.cache.Get(family); ok {
		return src.(Source), nil
	}

	v, err, _ := l.group.Do(family, func() (any, error) {
		if src, ok := l.cache.Get(family); ok {
			return src.(Source), nil
		}

		path, ok := l.files[family]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownFamily, family)
		}

		data, err := os.ReadFile(path) // #nosec G304 -- fonts dir is operator-provided
		if err != nil {
			return nil, fmt.Errorf("text: read font %q: %w", family, err)
		}

		src, err := NewSource(family, data)
		if err != nil {
			return nil, err
		}
		l.cache.Set(family, src, gocache.NoExpiration)
		return src, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(Source), nil
}

func normalizeFamily(family string) string {
	return strings.ToLower(strings.TrimSpace(family))
}
