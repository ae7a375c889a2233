// Package harness wires the registry, scenarios, and backends together
// and owns the run lifecycle: validate configuration, dispatch the
// (scenario, backend) pair, forward samples to metrics, and withhold
// statistics for failed runs.
package harness

import (
	"fmt"

	"kernelbench/internal/adapters/affinity"
	"kernelbench/internal/adapters/backend/mockbackend"
	"kernelbench/internal/adapters/backend/simbackend"
	"kernelbench/internal/adapters/moduleloader"
	"kernelbench/internal/domain"
	"kernelbench/internal/ports"
	"kernelbench/internal/registry"
	"kernelbench/internal/scenarios"
)

// eatTimeModule stands in for a compiled kernel module when runs target
// the software backends. First word is the SPIR-V magic.
var eatTimeModule = []byte{
	0x03, 0x02, 0x23, 0x07, 0x00, 0x00, 0x01, 0x00,
	0x0b, 0x00, 0x08, 0x00, 0x2a, 0x00, 0x00, 0x00,
}

type Options struct {
	Logger  ports.Logger
	Metrics ports.Metrics
	// Pin overrides the affinity syscall, for tests. Nil means the real
	// platform pinning.
	Pin func(cpu int) error
	// Loader overrides module loading. Nil serves the built-in module,
	// which is what the software backends expect.
	Loader ports.ModuleLoader
}

type Harness struct {
	reg      *registry.Registry
	opts     Options
	backends map[string]func() ports.Backend
}

// New builds a harness with every built-in (scenario, backend) pair
// registered. Registration happens here, explicitly and in a fixed
// order, never via package init side effects.
func New(opts Options) *Harness {
	if opts.Pin == nil {
		opts.Pin = affinity.Pin
	}
	if opts.Loader == nil {
		opts.Loader = moduleloader.StaticLoader{Data: eatTimeModule}
	}
	h := &Harness{
		reg:      registry.New(),
		opts:     opts,
		backends: map[string]func() ports.Backend{},
	}
	h.MustRegister(scenarios.SubmitKernelName, "mock", scenarios.SubmitKernel,
		func() ports.Backend { return mockbackend.New() })
	h.MustRegister(scenarios.SubmitKernelName, "sim", scenarios.SubmitKernel,
		func() ports.Backend { return simbackend.New() })
	return h
}

// MustRegister binds one scenario implementation and the backend
// factory it runs against. A fresh backend is constructed per run, so
// invocations never share backend state.
func (h *Harness) MustRegister(scenario, backend string, fn scenarios.Func, factory func() ports.Backend) {
	h.reg.MustRegister(scenario, backend, fn)
	h.backends[backend] = factory
}

func (h *Harness) Pairs() []registry.Key {
	return h.reg.Keys()
}

// Run dispatches one scenario invocation. On any result other than
// Success or Nooped the statistics are withheld: a failed run publishes
// no partial measurement.
func (h *Harness) Run(scenario, backend string, cfg domain.Config) (domain.TestResult, *domain.Statistics, error) {
	if err := cfg.Validate(); err != nil {
		return domain.ResultError, nil, err
	}
	fn, err := h.reg.Lookup(scenario, backend)
	if err != nil {
		return domain.ResultError, nil, err
	}
	factory, ok := h.backends[backend]
	if !ok {
		return domain.ResultError, nil, fmt.Errorf("%w: no backend factory for %s", domain.ErrNotRegistered, backend)
	}

	stats := domain.NewStatistics()
	deps := scenarios.Deps{
		Backend: factory(),
		Loader:  h.opts.Loader,
		Logger:  h.opts.Logger,
		Pin:     h.opts.Pin,
	}
	res, err := fn(cfg, stats, deps)
	h.opts.Metrics.ObserveRun(scenario, backend, res.String())
	if res != domain.ResultSuccess && res != domain.ResultNooped {
		h.opts.Logger.Error("run_failed", "scenario", scenario, "backend", backend, "result", res.String(), "err", err)
		return res, nil, err
	}
	for _, s := range stats.Samples() {
		h.opts.Metrics.ObserveSample(scenario, backend, s.Value)
	}
	h.opts.Logger.Info("run_done", "scenario", scenario, "backend", backend, "result", res.String(), "samples", stats.Count())
	return res, stats, nil
}
