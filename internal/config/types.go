package config

import "time"

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// CPU sampling modes.
const (
	CPUModeDelta      = "delta"
	CPUModeCumulative = "cumulative"
)

// Directory listing orders.
const (
	SortDirsFirst = "dirs_first"
	SortName      = "name"
	SortNone      = "none"
)

// Defaults applied before the config file is merged in.
const (
	DefaultFrameInterval = 100 * time.Millisecond
	MinFrameInterval     = 10 * time.Millisecond
)

// Config represents the complete .sx.yaml configuration file.
type Config struct {
	Version int `yaml:"version" mapstructure:"version"`

	// StartDir is the directory the explorer opens in. Empty means the
	// process working directory. Supports ~ and ${HOME}.
	StartDir string `yaml:"start_dir" mapstructure:"start_dir"`

	// FrameInterval is the period of the render loop.
	FrameInterval time.Duration `yaml:"frame_interval" mapstructure:"frame_interval"`

	Metrics  MetricsConfig  `yaml:"metrics" mapstructure:"metrics"`
	Explorer ExplorerConfig `yaml:"explorer" mapstructure:"explorer"`
	Assets   AssetsConfig   `yaml:"assets" mapstructure:"assets"`
}

// MetricsConfig controls the CPU/memory readout.
type MetricsConfig struct {
	// CPUMode is "delta" (usage since the previous frame) or "cumulative"
	// (usage since boot, one-shot formula).
	CPUMode string `yaml:"cpu_mode" mapstructure:"cpu_mode"`
}

// ExplorerConfig controls the directory list.
type ExplorerConfig struct {
	// Sort is one of dirs_first, name, none.
	Sort string `yaml:"sort" mapstructure:"sort"`

	// ClearSelectionOnNavigate drops the selected entry whenever the current
	// directory changes.
	ClearSelectionOnNavigate bool `yaml:"clear_selection_on_navigate" mapstructure:"clear_selection_on_navigate"`
}

// AssetsConfig points at optional external assets.
type AssetsConfig struct {
	// Icons is a path to a YAML icon set. Empty uses the built-in set.
	Icons string `yaml:"icons" mapstructure:"icons"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version:       CurrentConfigVersion,
		FrameInterval: DefaultFrameInterval,
		Metrics: MetricsConfig{
			CPUMode: CPUModeDelta,
		},
		Explorer: ExplorerConfig{
			Sort: SortDirsFirst,
		},
	}
}
