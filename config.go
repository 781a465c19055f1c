package posterkit

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"github.com/posterkit/posterkit/text"
)

// Config is the environment-driven engine configuration. It exists for
// deployments that construct the engine from the process environment; for
// programmatic setups use NewEngine with Options directly.
type Config struct {
	// TemplatesDir holds one YAML manifest plus background image per
	// template.
	TemplatesDir string `envconfig:"TEMPLATES_DIR" default:"templates"`
	// FontsDir holds .ttf/.otf files; family name is the file base name.
	FontsDir string `envconfig:"FONTS_DIR" default:"fonts"`

	ShrinkStep  float64 `envconfig:"SHRINK_STEP" default:"2"`
	MinFontSize float64 `envconfig:"MIN_FONT_SIZE" default:"12"`
	Ellipsis    string  `envconfig:"ELLIPSIS" default:"…"`

	// OutputFormat is "png" or "jpeg".
	OutputFormat string `envconfig:"OUTPUT_FORMAT" default:"png"`
	JPEGQuality  int    `envconfig:"JPEG_QUALITY" default:"95"`

	// ScriptFonts routes Unicode scripts to font families, e.g.
	// POSTERKIT_SCRIPT_FONTS="Malayalam:manjari-bold,Devanagari:mukta".
	ScriptFonts map[string]string `envconfig:"SCRIPT_FONTS"`
}

// ConfigFromEnv reads Config from POSTERKIT_* environment variables.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := envconfig.Process("posterkit", &cfg); err != nil {
		return Config{}, fmt.Errorf("posterkit: config: %w", err)
	}
	return cfg, nil
}

// NewEngineFromConfig loads the template registry and font library named by
// cfg and builds an engine with cfg's layout and output settings. Extra
// options apply on top of the config.
func NewEngineFromConfig(cfg Config, opts ...Option) (*Engine, error) {
	reg, err := LoadRegistry(cfg.TemplatesDir)
	if err != nil {
		return nil, err
	}

	fonts, err := text.NewLibrary(cfg.FontsDir)
	if err != nil {
		return nil, err
	}
	for script, family := range cfg.ScriptFonts {
		if err := fonts.RegisterScript(script, family); err != nil {
			return nil, fmt.Errorf("posterkit: config: %w", err)
		}
	}

	base := []Option{
		WithShrinkStep(cfg.ShrinkStep),
		WithMinFontSize(cfg.MinFontSize),
		WithEllipsis(cfg.Ellipsis),
	}
	switch cfg.OutputFormat {
	case "", FormatPNG.String():
		// Default.
	case FormatJPEG.String():
		base = append(base, WithJPEGOutput(cfg.JPEGQuality))
	default:
		return nil, fmt.Errorf("posterkit: config: unknown output format %q", cfg.OutputFormat)
	}

	return NewEngine(reg, fonts, append(base, opts...)...), nil
}
