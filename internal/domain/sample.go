package domain

type MeasurementUnit string

const (
	UnitMicroseconds MeasurementUnit = "us"
)

type MeasurementType string

const (
	// TypeCPU covers host-side submission cost only.
	TypeCPU MeasurementType = "cpu"
	// TypeCPUWithCompletion includes the wait for device completion.
	TypeCPUWithCompletion MeasurementType = "cpu_with_completion"
)

// Sample is one elapsed-time measurement, immutable once recorded.
type Sample struct {
	Value float64         `json:"value"`
	Unit  MeasurementUnit `json:"unit"`
	Type  MeasurementType `json:"type"`
}
