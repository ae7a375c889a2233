package ports

type Metrics interface {
	ObserveRun(scenario, backend, result string)
	ObserveSample(scenario, backend string, micros float64)
}
