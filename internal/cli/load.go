package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spanmark/spanmark/pkg/markup"
)

// loadDocument reads an annotation document from disk, picking the codec by
// file extension: .toml decodes as TOML, everything else as JSON.
func loadDocument(path string) (*markup.Markup, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}

	var m *markup.Markup
	switch filepath.Ext(path) {
	case ".toml":
		m, err = markup.DecodeTOML(data)
	default:
		m, err = markup.DecodeJSON(data)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// openOutput opens path for writing, or returns stdout for an empty path.
func openOutput(path string) (*os.File, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output: %w", err)
	}
	return f, func() { f.Close() }, nil
}
