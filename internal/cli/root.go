package cli

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rileyhilliard/sx/internal/errors"
	"github.com/rileyhilliard/sx/internal/ui"
	"github.com/spf13/cobra"
)

// Global flags
var (
	cfgFile string
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "sx [dir]",
	Short: "Sum Explorer - browse files with a live CPU and memory readout",
	Long: `Sum Explorer opens a terminal panel with a file explorer on the left and
live CPU and process memory usage on the right.

Navigate with the keyboard or the mouse: click a folder to enter it, click
a file to select it, and use [ Go Up ] or backspace to go to the parent.

Examples:
  sx
  sx ~/projects
  sx --cpu-mode cumulative --sort name
  sx --interval 250ms --no-overlay`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor || os.Getenv("NO_COLOR") != "" {
			lipgloss.SetColorProfile(termenv.Ascii)
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := ""
		if len(args) == 1 {
			dir = args[0]
		}
		return panelCommand(dir, panelFlags)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: .sx.yaml, then ~/.config/sx/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	addPanelFlags(rootCmd, &panelFlags)
}

// Config returns the --config flag value.
func Config() string {
	return cfgFile
}

// Execute runs the root command. Errors are printed to stderr and the
// process exits with status 1.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

// printError writes err to w unless a --json command already reported it.
func printError(w io.Writer, err error) {
	var reported *reportedError
	if stderrors.As(err, &reported) {
		return
	}
	fmt.Fprintln(w, formatError(err))
}

// formatError renders structured errors in full and anything else (cobra
// usage errors, mostly) on one line.
func formatError(err error) string {
	if sxErr, ok := err.(*errors.Error); ok {
		return sxErr.Error()
	}
	return lipgloss.NewStyle().Foreground(ui.ColorError).Render(ui.SymbolFail) + " " + err.Error()
}
