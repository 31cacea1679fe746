package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/sx/internal/config"
	"github.com/rileyhilliard/sx/internal/errors"
	"github.com/rileyhilliard/sx/internal/ui"
	"github.com/spf13/cobra"
)

var (
	initForce          bool
	initNonInteractive bool
	initCPUMode        string
	initSort           string
)

// initCmd creates a new .sx.yaml configuration
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create .sx.yaml configuration",
	Long: `Create a .sx.yaml file in the current directory.

Prompts for the CPU sampling mode, listing order, and whether navigating
should clear the selection. Use --non-interactive to accept defaults and
flag values without prompting.

Examples:
  sx init
  sx init --force
  sx init --non-interactive --cpu-mode cumulative --sort name`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Init(InitOptions{
			Overwrite:      initForce,
			NonInteractive: initNonInteractive,
			CPUMode:        initCPUMode,
			Sort:           initSort,
		})
	},
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing config")
	initCmd.Flags().BoolVar(&initNonInteractive, "non-interactive", false, "skip prompts and use defaults")
	initCmd.Flags().StringVar(&initCPUMode, "cpu-mode", "", "CPU sampling: delta or cumulative")
	initCmd.Flags().StringVar(&initSort, "sort", "", "listing order: dirs_first, name, or none")
	rootCmd.AddCommand(initCmd)
}

// InitOptions holds options for the init command.
type InitOptions struct {
	Dir            string // Directory to write .sx.yaml into (default: current)
	Overwrite      bool   // Overwrite existing config without asking
	NonInteractive bool   // Skip prompts, use defaults
	CPUMode        string // Pre-selected metrics.cpu_mode
	Sort           string // Pre-selected explorer.sort
}

// Init creates a new .sx.yaml configuration file.
func Init(opts InitOptions) error {
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}
	configPath := filepath.Join(dir, config.ConfigFileName)

	if _, err := os.Stat(configPath); err == nil && !opts.Overwrite {
		if opts.NonInteractive {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Config file already exists: %s", configPath),
				"Use --force to overwrite")
		}

		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", config.ConfigFileName)).
					Value(&overwrite),
			),
		)
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}
		if !overwrite {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	cfg := config.DefaultConfig()
	if opts.CPUMode != "" {
		cfg.Metrics.CPUMode = opts.CPUMode
	}
	if opts.Sort != "" {
		cfg.Explorer.Sort = opts.Sort
	}

	if !opts.NonInteractive {
		if err := initForm(cfg).Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Check terminal compatibility or use --non-interactive flag")
		}
	}

	if err := config.Validate(cfg); err != nil {
		return err
	}
	if err := config.Write(cfg, configPath); err != nil {
		return err
	}

	successStyle := lipgloss.NewStyle().Foreground(ui.ColorSuccess)
	fmt.Printf("%s Created %s\n\n", successStyle.Render(ui.SymbolSuccess), configPath)
	fmt.Println("Next steps:")
	fmt.Println("  sx            - Open the explorer panel")
	fmt.Println("  sx sample     - Check the CPU and memory readings")

	return nil
}

// initForm builds the prompts, writing answers straight into cfg.
func initForm(cfg *config.Config) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("CPU usage").
				Description("How the CPU readout is computed").
				Options(
					huh.NewOption("Since the previous frame (delta)", config.CPUModeDelta),
					huh.NewOption("Since boot (cumulative)", config.CPUModeCumulative),
				).
				Value(&cfg.Metrics.CPUMode),
			huh.NewSelect[string]().
				Title("Listing order").
				Options(
					huh.NewOption("Directories first", config.SortDirsFirst),
					huh.NewOption("By name", config.SortName),
					huh.NewOption("As the filesystem returns them", config.SortNone),
				).
				Value(&cfg.Explorer.Sort),
			huh.NewConfirm().
				Title("Clear the selection when changing directory?").
				Value(&cfg.Explorer.ClearSelectionOnNavigate),
		),
	)
}
