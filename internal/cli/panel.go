package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/sx/internal/assets"
	"github.com/rileyhilliard/sx/internal/config"
	"github.com/rileyhilliard/sx/internal/errors"
	"github.com/rileyhilliard/sx/internal/explorer"
	"github.com/rileyhilliard/sx/internal/logger"
	"github.com/rileyhilliard/sx/internal/metrics"
	"github.com/rileyhilliard/sx/internal/panel"
	"github.com/spf13/afero"
	"golang.org/x/term"
)

// debugLogFile receives log output while the panel owns the terminal.
const debugLogFile = "sx-debug.log"

// panelCommand opens the explorer panel in dir (or the configured start
// directory) and blocks until the user quits.
func panelCommand(dir string, flags PanelFlags) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New(errors.ErrUI,
			"sx needs an interactive terminal",
			"Run sx from a terminal, or use 'sx sample' for plain output")
	}

	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}

	if logger.DebugEnabled() {
		f, err := tea.LogToFile(debugLogFile, "sx")
		if err != nil {
			return errors.WrapWithCode(err, errors.ErrUI,
				"Cannot open debug log "+debugLogFile,
				"Unset SX_DEBUG or run sx from a writable directory")
		}
		defer f.Close()
	}

	model, err := buildPanel(afero.NewOsFs(), metrics.NewHostSource(), cfg, dir, !flags.NoOverlay, logger.Default())
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrUI,
			"The panel stopped unexpectedly",
			"Run with SX_DEBUG=1 and check "+debugLogFile)
	}
	return nil
}

// buildPanel wires config, filesystem, and metrics source into a panel model.
// dir overrides cfg.StartDir when set.
func buildPanel(fs afero.Fs, src metrics.Source, cfg *config.Config, dir string, showOverlay bool, log logger.Logger) (panel.Model, error) {
	start := cfg.StartDir
	if dir != "" {
		start = config.ExpandTilde(dir)
	}

	model, err := explorer.NewModel(fs, start)
	if err != nil {
		return panel.Model{}, err
	}
	if info, err := fs.Stat(model.Current()); err != nil || !info.IsDir() {
		return panel.Model{}, errors.WrapWithCode(err, errors.ErrFS,
			fmt.Sprintf("Cannot open %s", model.Current()),
			"Pass an existing directory: sx <dir>")
	}
	model.SetClearSelectionOnNavigate(cfg.Explorer.ClearSelectionOnNavigate)

	order, err := explorer.ParseSortOrder(cfg.Explorer.Sort)
	if err != nil {
		return panel.Model{}, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid explorer.sort", "Use one of: dirs_first, name, none")
	}
	mode, err := metrics.ParseMode(cfg.Metrics.CPUMode)
	if err != nil {
		return panel.Model{}, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid metrics.cpu_mode", "Use 'delta' or 'cumulative'")
	}

	provider := metrics.NewProvider(src, mode)
	provider.SetLogger(log)

	glyphs, notice := assets.Initialize(fs, cfg.Assets.Icons, log)

	log.Debug("opening panel in %s (cpu_mode=%s sort=%s interval=%s)",
		model.Current(), mode, order, cfg.FrameInterval)

	return panel.NewModel(model, explorer.NewLister(fs, order), provider, panel.Options{
		Interval:    cfg.FrameInterval,
		Glyphs:      glyphs,
		ShowOverlay: showOverlay,
		Notice:      notice,
		Logger:      log,
	}), nil
}
