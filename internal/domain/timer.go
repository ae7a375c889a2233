package domain

import "time"

// Timer is a scoped stopwatch over the monotonic clock. One Timer is
// owned by one measurement loop; it is not safe for concurrent use.
type Timer struct {
	start   time.Time
	elapsed time.Duration
}

func (t *Timer) MeasureStart() {
	t.start = time.Now()
}

func (t *Timer) MeasureEnd() {
	t.elapsed = time.Since(t.start)
}

// Get returns the last committed interval.
func (t *Timer) Get() time.Duration {
	return t.elapsed
}

// GetMicroseconds returns the last committed interval in the unit the
// statistics collector records.
func (t *Timer) GetMicroseconds() float64 {
	return float64(t.elapsed.Nanoseconds()) / 1e3
}
