package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rileyhilliard/sx/internal/errors"
	"github.com/rileyhilliard/sx/internal/metrics"
	"github.com/rileyhilliard/sx/internal/ui"
	"github.com/spf13/cobra"
)

var (
	sampleJSON     bool
	sampleCount    int
	sampleInterval string
	sampleCPUMode  string
)

// sampleCmd prints metric samples without starting the panel
var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Print CPU and memory samples",
	Long: `Take one or more samples of system CPU usage and this process's memory
working set, the same readings the panel shows, and print them.

With --count greater than one, samples are taken --interval apart. In delta
mode each CPU reading covers the time since the previous sample.

Examples:
  sx sample
  sx sample --count 5 --interval 500ms
  sx sample --cpu-mode cumulative --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		err := sampleCommand(cmd)
		if err != nil && sampleJSON {
			return reportJSONError(cmd.OutOrStdout(), err)
		}
		return err
	},
}

func sampleCommand(cmd *cobra.Command) error {
	cfg, err := loadConfig(PanelFlags{CPUMode: sampleCPUMode})
	if err != nil {
		return err
	}
	mode, err := metrics.ParseMode(cfg.Metrics.CPUMode)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid metrics.cpu_mode", "Use 'delta' or 'cumulative'")
	}
	interval, err := ParseInterval(sampleInterval)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	return runSample(ctx, cmd.OutOrStdout(), metrics.NewHostSource(), SampleOptions{
		Count:    sampleCount,
		Interval: interval,
		Mode:     mode,
		JSON:     sampleJSON,
	})
}

func init() {
	sampleCmd.Flags().BoolVar(&sampleJSON, "json", false, "output in JSON format")
	sampleCmd.Flags().IntVarP(&sampleCount, "count", "n", 1, "number of samples to take")
	sampleCmd.Flags().StringVar(&sampleInterval, "interval", "1s", "time between samples")
	sampleCmd.Flags().StringVar(&sampleCPUMode, "cpu-mode", "", "CPU sampling: delta or cumulative")
	rootCmd.AddCommand(sampleCmd)
}

// SampleOptions controls runSample.
type SampleOptions struct {
	Count    int
	Interval time.Duration
	Mode     metrics.Mode
	JSON     bool
}

// SampleOutput is the JSON payload of the sample command.
type SampleOutput struct {
	CPUMode string          `json:"cpu_mode"`
	Samples []SampleReading `json:"samples"`
}

// SampleReading is a single sample in JSON output.
type SampleReading struct {
	CPUPercent  float64 `json:"cpu_percent"`
	MemoryBytes uint64  `json:"memory_bytes"`
	MemoryMB    uint64  `json:"memory_mb"`
}

// runSample takes opts.Count samples from src and writes them to w. A
// cancelled ctx stops early and prints what was collected.
func runSample(ctx context.Context, w io.Writer, src metrics.Source, opts SampleOptions) error {
	if opts.Count < 1 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("--count must be at least 1, got %d", opts.Count),
			"Try --count 1")
	}

	provider := metrics.NewProvider(src, opts.Mode)
	samples := make([]metrics.Sample, 0, opts.Count)

collect:
	for i := 0; i < opts.Count; i++ {
		if i > 0 {
			select {
			case <-ctx.Done():
				break collect
			case <-time.After(opts.Interval):
			}
		}
		samples = append(samples, provider.Sample())
	}

	if opts.JSON {
		return WriteJSONSuccess(w, sampleOutput(opts.Mode, samples))
	}
	_, err := fmt.Fprintln(w, renderSampleTable(samples))
	return err
}

func sampleOutput(mode metrics.Mode, samples []metrics.Sample) SampleOutput {
	out := SampleOutput{
		CPUMode: mode.String(),
		Samples: make([]SampleReading, 0, len(samples)),
	}
	for _, s := range samples {
		out.Samples = append(out.Samples, SampleReading{
			CPUPercent:  s.CPUPercent,
			MemoryBytes: s.MemoryBytes,
			MemoryMB:    s.MemoryMB(),
		})
	}
	return out
}

func renderSampleTable(samples []metrics.Sample) string {
	columns := []ui.TableColumn{
		{Title: "#", Width: 4},
		{Title: "CPU", Width: 10},
		{Title: "MEMORY", Width: 12},
	}

	rows := make([][]string, 0, len(samples))
	for i, s := range samples {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			fmt.Sprintf("%.2f%%", s.CPUPercent),
			humanize.IBytes(s.MemoryBytes),
		})
	}
	return ui.RenderSimpleTable(columns, rows)
}
