package config

import (
	"os"

	"github.com/rileyhilliard/sx/internal/errors"
	"gopkg.in/yaml.v3"
)

// fileConfig mirrors Config with durations as strings, since yaml.v3 would
// otherwise write time.Duration as integer nanoseconds.
type fileConfig struct {
	Version       int            `yaml:"version"`
	StartDir      string         `yaml:"start_dir,omitempty"`
	FrameInterval string         `yaml:"frame_interval"`
	Metrics       MetricsConfig  `yaml:"metrics"`
	Explorer      ExplorerConfig `yaml:"explorer"`
	Assets        *AssetsConfig  `yaml:"assets,omitempty"`
}

// Marshal renders cfg as .sx.yaml content.
func Marshal(cfg *Config) ([]byte, error) {
	fc := fileConfig{
		Version:       cfg.Version,
		StartDir:      cfg.StartDir,
		FrameInterval: cfg.FrameInterval.String(),
		Metrics:       cfg.Metrics,
		Explorer:      cfg.Explorer,
	}
	if cfg.Assets.Icons != "" {
		assets := cfg.Assets
		fc.Assets = &assets
	}

	data, err := yaml.Marshal(fc)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to generate config",
			"This shouldn't happen - please report this bug")
	}
	return data, nil
}

// Write marshals cfg and writes it to path.
func Write(cfg *Config, path string) error {
	data, err := Marshal(cfg)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to write config file: "+path,
			"Check that the directory is writable")
	}
	return nil
}
