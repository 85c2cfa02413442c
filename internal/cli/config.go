package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/spanmark/spanmark/pkg/render/palette"
	"github.com/spanmark/spanmark/pkg/wrap"
)

// configFile is the name probed in the working directory when --config is
// not given.
const configFile = "spanmark.toml"

// Config holds rendering defaults, loadable from a TOML file:
//
//	width = 100
//	format = "ansi"
//	labels = true
//
//	[colors]
//	PER = "green"
//	ORG = "purple"
//
// Command-line flags override config values, which override built-in
// defaults.
type Config struct {
	Width  int               `toml:"width"`  // wrap width; 0 means auto-detect
	Format string            `toml:"format"` // default output format
	Labels bool              `toml:"labels"` // draw category labels in HTML output
	Colors map[string]string `toml:"colors"` // category -> palette color name
}

// DefaultConfig returns the built-in defaults used when no config file is
// present.
func DefaultConfig() Config {
	return Config{
		Width:  wrap.DefaultWidth,
		Format: "ascii",
	}
}

// LoadConfig reads a TOML config file. With an empty path it probes for
// spanmark.toml in the working directory and falls back to defaults when
// none exists; an explicit path that cannot be read is an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = configFile
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Width < 0 {
		return fmt.Errorf("width must not be negative, got %d", c.Width)
	}
	for category, name := range c.Colors {
		if _, ok := palette.Named(name); !ok {
			return fmt.Errorf("unknown color %q for category %q", name, category)
		}
	}
	return nil
}

// Palette builds a palette with the configured per-category pins applied.
// Categories without a pin keep the default cycling assignment.
func (c Config) Palette() *palette.Palette {
	p := palette.New()
	for category, name := range c.Colors {
		if col, ok := palette.Named(name); ok {
			p.Set(category, col)
		}
	}
	return p
}
