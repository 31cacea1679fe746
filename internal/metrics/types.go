package metrics

import (
	"fmt"
	"math"
)

// CPUTimes holds cumulative OS-wide CPU time counters. Kernel includes Idle.
// Units are irrelevant as long as all three agree.
type CPUTimes struct {
	Kernel float64
	User   float64
	Idle   float64
}

// Total returns kernel + user time.
func (t CPUTimes) Total() float64 {
	return t.Kernel + t.User
}

// Sub returns the counter deltas t - prev.
func (t CPUTimes) Sub(prev CPUTimes) CPUTimes {
	return CPUTimes{
		Kernel: t.Kernel - prev.Kernel,
		User:   t.User - prev.User,
		Idle:   t.Idle - prev.Idle,
	}
}

// UsagePercent applies (kernel + user - idle) / (kernel + user) * 100.
// Returns ok=false when the counters cannot produce a ratio.
func (t CPUTimes) UsagePercent() (float64, bool) {
	total := t.Total()
	if total <= 0 || math.IsNaN(total) || math.IsInf(total, 0) {
		return 0, false
	}
	return clampPercent((total - t.Idle) / total * 100), true
}

// Sample is one frame's readout.
type Sample struct {
	CPUPercent  float64
	MemoryBytes uint64
}

// MemoryMB returns the working set in whole mebibytes.
func (s Sample) MemoryMB() uint64 {
	return s.MemoryBytes / (1024 * 1024)
}

// Result carries the outcome of one OS query.
type Result[T any] struct {
	Value T
	Err   error
}

// OK reports whether the query succeeded.
func (r Result[T]) OK() bool {
	return r.Err == nil
}

// OrZero returns the value, or T's zero value when the query failed.
func (r Result[T]) OrZero() T {
	if r.Err != nil {
		var zero T
		return zero
	}
	return r.Value
}

// Mode selects how CPU usage is derived from the counters.
type Mode int

const (
	// ModeDelta computes usage over the interval since the previous sample.
	ModeDelta Mode = iota
	// ModeCumulative computes usage since boot from a single reading.
	ModeCumulative
)

// String returns the config spelling of the mode.
func (m Mode) String() string {
	switch m {
	case ModeCumulative:
		return "cumulative"
	default:
		return "delta"
	}
}

// ParseMode converts a config value to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "delta":
		return ModeDelta, nil
	case "cumulative":
		return ModeCumulative, nil
	default:
		return ModeDelta, fmt.Errorf("unknown cpu mode %q", s)
	}
}

func clampPercent(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return 0
	case v < 0:
		return 0
	case v > 100:
		return 100
	default:
		return v
	}
}
