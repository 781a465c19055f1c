package posterkit

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"
	"github.com/samber/lo"

	"github.com/posterkit/posterkit/internal/imaging"
	"github.com/posterkit/posterkit/text"
)

// Default text style values applied when a manifest omits them.
const (
	// DefaultMinFontSize is the shrink floor used when a text slot does
	// not declare min_size.
	DefaultMinFontSize = 12.0

	defaultAlign = text.AlignCenter
)

// Registry maps caption keys to templates. It is built once at startup and
// never mutated afterwards, so concurrent lookups need no locking.
type Registry struct {
	templates map[string]*Template
}

// NewRegistry builds a registry from already-constructed templates, checking
// each template's structural invariants and rejecting duplicate IDs.
func NewRegistry(templates ...*Template) (*Registry, error) {
	m := make(map[string]*Template, len(templates))
	for _, t := range templates {
		if err := t.validate(); err != nil {
			return nil, fmt.Errorf("posterkit: %w", err)
		}
		if _, dup := m[t.ID]; dup {
			return nil, fmt.Errorf("posterkit: duplicate template id %q", t.ID)
		}
		m[t.ID] = t
	}
	return &Registry{templates: m}, nil
}

// LoadRegistry loads every template manifest (*.yaml, *.yml) in dir.
// Each manifest names a background image file resolved relative to dir.
// Any invalid manifest fails the whole load: a broken template set is a
// deployment error, not a per-request condition.
func LoadRegistry(dir string) (*Registry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("posterkit: read template dir: %w", err)
	}

	var templates []*Template
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		t, err := loadTemplate(dir, entry.Name())
		if err != nil {
			return nil, fmt.Errorf("posterkit: template %s: %w", entry.Name(), err)
		}
		templates = append(templates, t)
	}

	reg, err := NewRegistry(templates...)
	if err != nil {
		return nil, err
	}

	Logger().Debug("template registry loaded", "dir", dir, "templates", len(reg.templates))
	return reg, nil
}

// Resolve returns the template for an exact caption key match.
// It fails with UnknownTemplateError otherwise; this is the only path by
// which an out-of-range caption number surfaces to the user.
func (r *Registry) Resolve(key string) (*Template, error) {
	t, ok := r.templates[key]
	if !ok {
		return nil, &UnknownTemplateError{Key: key, Known: r.Keys()}
	}
	return t, nil
}

// Keys returns the registered caption keys, sorted.
func (r *Registry) Keys() []string {
	keys := lo.Keys(r.templates)
	sort.Strings(keys)
	return keys
}

// Len returns the number of registered templates.
func (r *Registry) Len() int { return len(r.templates) }

// templateManifest is the on-disk YAML description of one template.
type templateManifest struct {
	ID         string             `yaml:"id" validate:"required"`
	Background string             `yaml:"background" validate:"required"`
	ImageSlot  Rect               `yaml:"image_slot" validate:"required"`
	TextSlots  []textSlotManifest `yaml:"text_slots" validate:"required,min=1,dive"`
}

type textSlotManifest struct {
	Rect    Rect    `yaml:"rect" validate:"required"`
	Font    string  `yaml:"font" validate:"required"`
	Size    float64 `yaml:"size" validate:"gt=0"`
	MinSize float64 `yaml:"min_size" validate:"omitempty,gt=0"`
	Align   string  `yaml:"align" validate:"omitempty,oneof=left center right"`
	Color   string  `yaml:"color" validate:"omitempty,hexcolor"`
}

var manifestValidator = validator.New()

// loadTemplate reads one manifest and its background image.
func loadTemplate(dir, name string) (*Template, error) {
	data, err := os.ReadFile(filepath.Join(dir, name)) // #nosec G304 -- template dir is operator-provided
	if err != nil {
		return nil, err
	}

	var m templateManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	if err := manifestValidator.Struct(&m); err != nil {
		return nil, fmt.Errorf("invalid manifest: %w", err)
	}

	bg, err := imaging.DecodeFile(filepath.Join(dir, m.Background))
	if err != nil {
		return nil, fmt.Errorf("background %s: %w", m.Background, err)
	}

	slots := make([]TextSlot, 0, len(m.TextSlots))
	for i, sm := range m.TextSlots {
		slot, err := sm.toSlot()
		if err != nil {
			return nil, fmt.Errorf("text slot %d: %w", i+1, err)
		}
		slots = append(slots, slot)
	}

	return &Template{
		ID:         m.ID,
		Background: imaging.ToNRGBA(bg),
		ImageSlot:  m.ImageSlot,
		TextSlots:  slots,
	}, nil
}

func (sm textSlotManifest) toSlot() (TextSlot, error) {
	slot := TextSlot{
		Rect:       sm.Rect,
		FontFamily: sm.Font,
		Size:       sm.Size,
		MinSize:    sm.MinSize,
		Align:      defaultAlign,
	}
	if slot.MinSize == 0 {
		slot.MinSize = DefaultMinFontSize
	}
	if slot.MinSize > slot.Size {
		slot.MinSize = slot.Size
	}

	if sm.Align != "" {
		a, err := text.ParseAlign(sm.Align)
		if err != nil {
			return TextSlot{}, err
		}
		slot.Align = a
	}

	slot.Color = defaultTextColor
	if sm.Color != "" {
		c, err := ParseHexColor(sm.Color)
		if err != nil {
			return TextSlot{}, err
		}
		slot.Color = c
	}

	return slot, nil
}
