package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatisticsPushOrder(t *testing.T) {
	s := NewStatistics()
	s.PushUnitAndType(UnitMicroseconds, TypeCPU)
	s.PushValue(3.5, UnitMicroseconds, TypeCPU)
	s.PushValue(1.0, UnitMicroseconds, TypeCPU)
	s.PushValue(2.25, UnitMicroseconds, TypeCPU)

	require.Equal(t, 3, s.Count())
	samples := s.Samples()
	assert.Equal(t, []float64{3.5, 1.0, 2.25}, []float64{samples[0].Value, samples[1].Value, samples[2].Value})
	for _, sm := range samples {
		assert.Equal(t, UnitMicroseconds, sm.Unit)
		assert.Equal(t, TypeCPU, sm.Type)
	}
}

func TestStatisticsContractViolations(t *testing.T) {
	s := NewStatistics()
	require.Panics(t, func() { s.PushValue(1, UnitMicroseconds, TypeCPU) }, "push before declaration")

	s.PushUnitAndType(UnitMicroseconds, TypeCPU)
	require.Panics(t, func() { s.PushUnitAndType(UnitMicroseconds, TypeCPU) }, "double declaration")
	require.Panics(t, func() { s.PushValue(1, UnitMicroseconds, TypeCPUWithCompletion) }, "type mismatch")
}

func TestStatisticsSamplesCopy(t *testing.T) {
	s := NewStatistics()
	s.PushUnitAndType(UnitMicroseconds, TypeCPU)
	s.PushValue(1, UnitMicroseconds, TypeCPU)
	out := s.Samples()
	out[0].Value = 99
	assert.Equal(t, 1.0, s.Samples()[0].Value)
}
