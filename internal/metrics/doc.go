// Package metrics samples OS-wide CPU usage and the working-set size of the
// current process.
//
// The Provider turns raw counters from a Source into the two scalars the
// panel shows each frame. Every query yields a Result; the Sample* methods
// collapse failures to zero so a broken OS call never reaches the render
// path.
//
// # CPU formula
//
// Counters follow the GetSystemTimes shape: kernel time includes idle time.
// Usage is
//
//	(kernel + user - idle) / (kernel + user) * 100
//
// In ModeCumulative the formula is applied to the raw counters, giving the
// average since boot. In ModeDelta (the default) it is applied to the change
// since the previous sample; the first sample has nothing to diff against and
// falls back to the cumulative ratio.
package metrics
