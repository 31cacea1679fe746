package config

import (
	"fmt"

	"github.com/rileyhilliard/sx/internal/errors"
)

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but sx only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Upgrade sx, or lower 'version' in your config")
	}

	if cfg.FrameInterval < MinFrameInterval {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("frame_interval %s is too short", cfg.FrameInterval),
			fmt.Sprintf("Use at least %s, e.g. frame_interval: 100ms", MinFrameInterval))
	}

	switch cfg.Metrics.CPUMode {
	case CPUModeDelta, CPUModeCumulative:
	default:
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown metrics.cpu_mode '%s'", cfg.Metrics.CPUMode),
			fmt.Sprintf("Use '%s' or '%s'", CPUModeDelta, CPUModeCumulative))
	}

	switch cfg.Explorer.Sort {
	case SortDirsFirst, SortName, SortNone:
	default:
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown explorer.sort '%s'", cfg.Explorer.Sort),
			fmt.Sprintf("Use one of: %s, %s, %s", SortDirsFirst, SortName, SortNone))
	}

	return nil
}
