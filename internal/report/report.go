// Package report aggregates the raw sample sequence of a finished run
// and renders it. Aggregation lives here, outside the collector: the
// core records raw samples only.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"sort"
	"time"

	"kernelbench/internal/domain"
)

type Summary struct {
	Count    int     `json:"count"`
	MeanUS   float64 `json:"mean_us"`
	MinUS    float64 `json:"min_us"`
	MaxUS    float64 `json:"max_us"`
	StdDevUS float64 `json:"stddev_us"`
	P50US    float64 `json:"p50_us"`
	P95US    float64 `json:"p95_us"`
	P99US    float64 `json:"p99_us"`
}

// Run is the full record of one scenario invocation.
type Run struct {
	ID        string                 `json:"id"`
	Scenario  string                 `json:"scenario"`
	Backend   string                 `json:"backend"`
	Result    string                 `json:"result"`
	Config    domain.Config          `json:"config"`
	Unit      domain.MeasurementUnit `json:"unit"`
	Type      domain.MeasurementType `json:"type"`
	StartedAt time.Time              `json:"started_at"`
	Summary   Summary                `json:"summary"`
	Samples   []domain.Sample        `json:"samples"`
}

func Aggregate(samples []domain.Sample) Summary {
	if len(samples) == 0 {
		return Summary{}
	}
	values := make([]float64, len(samples))
	var sum float64
	for i, s := range samples {
		values[i] = s.Value
		sum += s.Value
	}
	sort.Float64s(values)
	mean := sum / float64(len(values))
	var sq float64
	for _, v := range values {
		sq += (v - mean) * (v - mean)
	}
	return Summary{
		Count:    len(values),
		MeanUS:   mean,
		MinUS:    values[0],
		MaxUS:    values[len(values)-1],
		StdDevUS: math.Sqrt(sq / float64(len(values))),
		P50US:    percentile(values, 0.50),
		P95US:    percentile(values, 0.95),
		P99US:    percentile(values, 0.99),
	}
}

// percentile expects sorted input.
func percentile(v []float64, p float64) float64 {
	if len(v) == 0 {
		return 0
	}
	i := int(float64(len(v)-1) * p)
	return v[i]
}

func WriteText(w io.Writer, r Run) error {
	if r.Summary.Count == 0 {
		_, err := fmt.Fprintf(w, "%s/%s: %s (no samples)\n", r.Scenario, r.Backend, r.Result)
		return err
	}
	_, err := fmt.Fprintf(w,
		"%s/%s [%s,%s]: n %d mean %.2f%s p50 %.2f p95 %.2f p99 %.2f min %.2f max %.2f\n",
		r.Scenario, r.Backend, r.Unit, r.Type,
		r.Summary.Count, r.Summary.MeanUS, r.Unit,
		r.Summary.P50US, r.Summary.P95US, r.Summary.P99US,
		r.Summary.MinUS, r.Summary.MaxUS)
	return err
}

func WriteJSON(w io.Writer, r Run) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
