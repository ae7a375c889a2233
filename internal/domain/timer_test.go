package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimerMeasuresElapsed(t *testing.T) {
	var tm Timer
	tm.MeasureStart()
	time.Sleep(2 * time.Millisecond)
	tm.MeasureEnd()

	assert.GreaterOrEqual(t, tm.Get(), 2*time.Millisecond)
	assert.GreaterOrEqual(t, tm.GetMicroseconds(), 2000.0)
}

func TestTimerCommitsOnMeasureEnd(t *testing.T) {
	var tm Timer
	tm.MeasureStart()
	tm.MeasureEnd()
	committed := tm.Get()

	time.Sleep(time.Millisecond)
	assert.Equal(t, committed, tm.Get(), "Get must return the committed interval, not a live one")
}
