package domain

import "fmt"

// Statistics accumulates the samples of one scenario invocation. The
// unit and type are declared exactly once before any sample is pushed;
// a mismatching push is a programming error and panics.
type Statistics struct {
	unit     MeasurementUnit
	typ      MeasurementType
	declared bool
	samples  []Sample
}

func NewStatistics() *Statistics {
	return &Statistics{}
}

func (s *Statistics) PushUnitAndType(unit MeasurementUnit, typ MeasurementType) {
	if s.declared {
		panic("statistics: unit and type declared twice")
	}
	s.unit = unit
	s.typ = typ
	s.declared = true
}

func (s *Statistics) PushValue(micros float64, unit MeasurementUnit, typ MeasurementType) {
	if !s.declared {
		panic("statistics: push before unit and type declared")
	}
	if unit != s.unit || typ != s.typ {
		panic(fmt.Sprintf("statistics: sample (%s,%s) disagrees with declared (%s,%s)", unit, typ, s.unit, s.typ))
	}
	s.samples = append(s.samples, Sample{Value: micros, Unit: unit, Type: typ})
}

func (s *Statistics) Declared() bool { return s.declared }

func (s *Statistics) Unit() MeasurementUnit { return s.unit }

func (s *Statistics) Type() MeasurementType { return s.typ }

// Samples returns the recorded sequence in push order.
func (s *Statistics) Samples() []Sample {
	out := make([]Sample, len(s.samples))
	copy(out, s.samples)
	return out
}

func (s *Statistics) Count() int { return len(s.samples) }
