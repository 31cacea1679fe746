package panel

import "time"

// DefaultFrameWindow is the number of frames averaged for frame statistics.
const DefaultFrameWindow = 60

// FrameClock measures the interval between rendered frames and reports a
// rolling average over the last window frames.
type FrameClock struct {
	deltas *ringBuffer
	last   time.Time
	frames uint64
}

// NewFrameClock creates a clock averaging over window frames.
func NewFrameClock(window int) *FrameClock {
	if window <= 0 {
		window = DefaultFrameWindow
	}
	return &FrameClock{deltas: newRingBuffer(window)}
}

// Tick records a frame rendered at now.
func (c *FrameClock) Tick(now time.Time) {
	if !c.last.IsZero() && now.After(c.last) {
		c.deltas.push(now.Sub(c.last).Seconds())
	}
	c.last = now
	c.frames++
}

// Frames returns the number of frames rendered so far.
func (c *FrameClock) Frames() uint64 {
	return c.frames
}

// FrameTime returns the average time per frame, or 0 before two frames.
func (c *FrameClock) FrameTime() time.Duration {
	avg := c.deltas.mean()
	if avg <= 0 {
		return 0
	}
	return time.Duration(avg * float64(time.Second))
}

// FPS returns the average frames per second, or 0 before two frames.
func (c *FrameClock) FPS() float64 {
	avg := c.deltas.mean()
	if avg <= 0 {
		return 0
	}
	return 1 / avg
}

// ringBuffer is a fixed-size circular buffer for float64 values.
type ringBuffer struct {
	data  []float64
	head  int
	count int
	size  int
}

func newRingBuffer(size int) *ringBuffer {
	return &ringBuffer{
		data: make([]float64, size),
		size: size,
	}
}

func (r *ringBuffer) push(value float64) {
	r.data[r.head] = value
	r.head = (r.head + 1) % r.size
	if r.count < r.size {
		r.count++
	}
}

// values returns the stored values oldest first.
func (r *ringBuffer) values() []float64 {
	result := make([]float64, r.count)
	start := (r.head - r.count + r.size) % r.size
	for i := 0; i < r.count; i++ {
		result[i] = r.data[(start+i)%r.size]
	}
	return result
}

func (r *ringBuffer) mean() float64 {
	if r.count == 0 {
		return 0
	}
	var sum float64
	for _, v := range r.values() {
		sum += v
	}
	return sum / float64(r.count)
}
