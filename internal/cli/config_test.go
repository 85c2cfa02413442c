package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spanmark/spanmark/pkg/render/palette"
	"github.com/spanmark/spanmark/pkg/wrap"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeFile(t, t.TempDir(), "spanmark.toml", `
width = 100
format = "ansi"
labels = true

[colors]
PER = "green"
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.Width != 100 || cfg.Format != "ansi" || !cfg.Labels {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Colors["PER"] != "green" {
		t.Errorf("colors = %v", cfg.Colors)
	}
}

func TestLoadConfigMissingImplicit(t *testing.T) {
	// No spanmark.toml in the working directory; defaults apply.
	t.Chdir(t.TempDir())
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.Width != wrap.DefaultWidth || cfg.Format != "ascii" {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoadConfigMissingExplicit(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("LoadConfig() = nil error for a missing explicit path")
	}
}

func TestLoadConfigUnknownColor(t *testing.T) {
	path := writeFile(t, t.TempDir(), "spanmark.toml", `
[colors]
PER = "chartreuse"
`)
	_, err := LoadConfig(path)
	if err == nil || !strings.Contains(err.Error(), "chartreuse") {
		t.Errorf("LoadConfig() error = %v, want unknown color", err)
	}
}

func TestLoadConfigNegativeWidth(t *testing.T) {
	path := writeFile(t, t.TempDir(), "spanmark.toml", "width = -5\n")
	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig() = nil error for negative width")
	}
}

func TestConfigPalette(t *testing.T) {
	cfg := Config{Colors: map[string]string{"PER": "yellow"}}
	p := cfg.Palette()
	if p.Get("PER") != palette.Yellow {
		t.Error("configured pin not applied")
	}
}
