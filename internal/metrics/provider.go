package metrics

import (
	"github.com/rileyhilliard/sx/internal/errors"
	"github.com/rileyhilliard/sx/internal/logger"
)

// Provider samples CPU and memory on demand. It is not safe for concurrent
// use; the panel calls it from the render loop only.
type Provider struct {
	src  Source
	mode Mode
	log  logger.Logger

	prev    CPUTimes
	hasPrev bool
	last    float64
}

// NewProvider creates a Provider reading from src.
func NewProvider(src Source, mode Mode) *Provider {
	return &Provider{
		src:  src,
		mode: mode,
		log:  logger.Noop(),
	}
}

// SetLogger routes query failures to l at debug level.
func (p *Provider) SetLogger(l logger.Logger) {
	p.log = l
}

// Mode returns the CPU sampling mode.
func (p *Provider) Mode() Mode {
	return p.mode
}

// QueryCPU reads the counters once and derives a usage percentage.
func (p *Provider) QueryCPU() Result[float64] {
	times, err := p.src.SystemTimes()
	if err != nil {
		return Result[float64]{Err: errors.WrapWithCode(err, errors.ErrMetrics,
			"CPU counters unavailable", "")}
	}

	usage, ok := p.usage(times)
	if !ok {
		return Result[float64]{Err: errors.New(errors.ErrMetrics,
			"CPU counters reported no elapsed time", "")}
	}
	return Result[float64]{Value: usage}
}

// usage applies the configured mode and records times for the next delta.
func (p *Provider) usage(times CPUTimes) (float64, bool) {
	if p.mode == ModeCumulative {
		return times.UsagePercent()
	}

	if !p.hasPrev {
		v, ok := times.UsagePercent()
		if ok {
			p.prev, p.hasPrev, p.last = times, true, v
		}
		return v, ok
	}

	v, ok := times.Sub(p.prev).UsagePercent()
	if !ok {
		// Counters have not advanced since the last frame.
		return p.last, true
	}
	p.prev, p.last = times, v
	return v, true
}

// QueryMemory reads the working set of the current process.
func (p *Provider) QueryMemory() Result[uint64] {
	bytes, err := p.src.WorkingSet()
	if err != nil {
		return Result[uint64]{Err: errors.WrapWithCode(err, errors.ErrMetrics,
			"Process memory unavailable", "")}
	}
	return Result[uint64]{Value: bytes}
}

// SampleCPUUsage returns CPU usage in [0, 100], or 0 if the query failed.
func (p *Provider) SampleCPUUsage() float64 {
	r := p.QueryCPU()
	if !r.OK() {
		p.log.Debug("cpu sample failed: %s", errors.Summary(r.Err))
	}
	return clampPercent(r.OrZero())
}

// SampleMemoryUsage returns the working set in bytes, or 0 if the query failed.
func (p *Provider) SampleMemoryUsage() uint64 {
	r := p.QueryMemory()
	if !r.OK() {
		p.log.Debug("memory sample failed: %s", errors.Summary(r.Err))
	}
	return r.OrZero()
}

// Sample takes a fresh reading of both metrics.
func (p *Provider) Sample() Sample {
	return Sample{
		CPUPercent:  p.SampleCPUUsage(),
		MemoryBytes: p.SampleMemoryUsage(),
	}
}
