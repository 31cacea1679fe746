// Package assets loads the icon glyphs drawn next to explorer rows.
package assets

import (
	_ "embed"
	"fmt"

	"github.com/rileyhilliard/sx/internal/errors"
	"github.com/rileyhilliard/sx/internal/logger"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

//go:embed icons.yaml
var defaultIcons []byte

// Glyphs is an icon set. An empty glyph means "no icon" for that kind.
type Glyphs struct {
	Folder      string `yaml:"folder"`
	File        string `yaml:"file"`
	FolderColor string `yaml:"folder_color"`
	FileColor   string `yaml:"file_color"`
}

// Plain returns the glyph-less set used when icons cannot be loaded.
func Plain() Glyphs {
	return Glyphs{}
}

// HasIcons reports whether any icon glyph is set.
func (g Glyphs) HasIcons() bool {
	return g.Folder != "" || g.File != ""
}

// Default returns the embedded icon set.
func Default() Glyphs {
	g, err := Parse(defaultIcons)
	if err != nil {
		return Plain()
	}
	return g
}

// Parse decodes a YAML icon set.
func Parse(data []byte) (Glyphs, error) {
	var g Glyphs
	if err := yaml.Unmarshal(data, &g); err != nil {
		return Glyphs{}, fmt.Errorf("parsing icon set: %w", err)
	}
	if !g.HasIcons() {
		return Glyphs{}, fmt.Errorf("icon set defines neither 'folder' nor 'file'")
	}
	return g, nil
}

// Load reads an icon set from path.
func Load(fs afero.Fs, path string) (Glyphs, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return Glyphs{}, err
	}
	return Parse(data)
}

// Initialize resolves the icon set for the panel. An empty path selects the
// built-in set. A set that fails to load is not fatal: a warning is logged,
// the plain set is returned, and the ErrAsset error is handed back for the
// caller to display.
func Initialize(fs afero.Fs, path string, log logger.Logger) (Glyphs, error) {
	if path == "" {
		return Default(), nil
	}

	g, err := Load(fs, path)
	if err != nil {
		log.Warn("icon set %s unavailable, falling back to plain rows: %v", path, err)
		return Plain(), errors.WrapWithCode(err, errors.ErrAsset,
			fmt.Sprintf("Icon set %s unavailable", path),
			"Fix assets.icons in your config or remove it to use the built-in icons")
	}

	log.Debug("loaded icon set %s", path)
	return g, nil
}
