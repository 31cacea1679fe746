package cli

import (
	"fmt"
	"time"

	"github.com/rileyhilliard/sx/internal/config"
	"github.com/rileyhilliard/sx/internal/errors"
	"github.com/spf13/cobra"
)

// PanelFlags holds the flags that override panel config.
type PanelFlags struct {
	Interval  string
	CPUMode   string
	Sort      string
	NoOverlay bool
}

var panelFlags PanelFlags

// addPanelFlags registers --interval, --cpu-mode, --sort, and --no-overlay on a command.
func addPanelFlags(cmd *cobra.Command, flags *PanelFlags) {
	cmd.Flags().StringVar(&flags.Interval, "interval", "", "frame interval (e.g., 100ms, 1s)")
	cmd.Flags().StringVar(&flags.CPUMode, "cpu-mode", "", "CPU sampling: delta or cumulative")
	cmd.Flags().StringVar(&flags.Sort, "sort", "", "listing order: dirs_first, name, or none")
	cmd.Flags().BoolVar(&flags.NoOverlay, "no-overlay", false, "start with the frame stats overlay hidden")
}

// ParseInterval parses an interval flag. Returns zero duration if the flag is empty.
func ParseInterval(flag string) (time.Duration, error) {
	if flag == "" {
		return 0, nil
	}

	d, err := time.ParseDuration(flag)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("'%s' doesn't look like a valid interval", flag),
			"Try something like 100ms, 250ms, or 1s.")
	}
	return d, nil
}

// applyPanelFlags copies non-empty flag values over cfg and revalidates it.
func applyPanelFlags(cfg *config.Config, flags PanelFlags) error {
	interval, err := ParseInterval(flags.Interval)
	if err != nil {
		return err
	}
	if interval != 0 {
		cfg.FrameInterval = interval
	}
	if flags.CPUMode != "" {
		cfg.Metrics.CPUMode = flags.CPUMode
	}
	if flags.Sort != "" {
		cfg.Explorer.Sort = flags.Sort
	}

	return config.Validate(cfg)
}

// loadConfig resolves config from --config, the search path, and the
// environment, then applies flags.
func loadConfig(flags PanelFlags) (*config.Config, error) {
	cfg, _, err := config.LoadOrDefault(Config())
	if err != nil {
		return nil, err
	}
	if err := applyPanelFlags(cfg, flags); err != nil {
		return nil, err
	}
	return cfg, nil
}
