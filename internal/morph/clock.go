package morph

import "time"

// Clock is a monotonic millisecond clock.
type Clock interface {
	NowMs() float64
}

// SystemClock reports milliseconds elapsed since it was created.
type SystemClock struct {
	start time.Time
}

// NewSystemClock creates a clock starting at zero.
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// NowMs returns the elapsed time in milliseconds.
func (c *SystemClock) NowMs() float64 {
	return float64(time.Since(c.start)) / float64(time.Millisecond)
}

// ManualClock is a Clock that only moves when told to.
type ManualClock struct {
	Ms float64
}

// NowMs returns the current manual time.
func (c *ManualClock) NowMs() float64 {
	return c.Ms
}

// Advance moves the clock forward by ms milliseconds.
func (c *ManualClock) Advance(ms float64) {
	c.Ms += ms
}
