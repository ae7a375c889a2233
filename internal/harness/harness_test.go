package harness

import (
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kernelbench/internal/adapters/logging"
	"kernelbench/internal/adapters/moduleloader"
	"kernelbench/internal/domain"
	"kernelbench/internal/report"
)

type fakeMetrics struct {
	mu      sync.Mutex
	runs    map[string]int
	samples int
}

func newFakeMetrics() *fakeMetrics { return &fakeMetrics{runs: map[string]int{}} }

func (m *fakeMetrics) ObserveRun(scenario, backend, result string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.runs[scenario+"/"+backend+"/"+result]++
}

func (m *fakeMetrics) ObserveSample(scenario, backend string, micros float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.samples++
}

func testHarness(metrics *fakeMetrics) *Harness {
	return New(Options{
		Logger:  logging.NewWithWriter(io.Discard, "error"),
		Metrics: metrics,
		Pin:     func(cpu int) error { return nil },
	})
}

func runConfig() domain.Config {
	return domain.Config{
		Iterations:     4,
		NumKernels:     2,
		KernelExecTime: 1,
		InOrderQueue:   true,
		CPUIndex:       1,
		KernelName:     "eat_time",
		ModuleName:     "eat_time.spv",
	}
}

func TestRunMock(t *testing.T) {
	m := newFakeMetrics()
	h := testHarness(m)

	res, stats, err := h.Run("submit_kernel", "mock", runConfig())
	require.NoError(t, err)
	require.Equal(t, domain.ResultSuccess, res)
	require.NotNil(t, stats)
	assert.Equal(t, 4, stats.Count())
	assert.Equal(t, 1, m.runs["submit_kernel/mock/success"])
	assert.Equal(t, 4, m.samples)
}

func TestRunUnknownPair(t *testing.T) {
	h := testHarness(newFakeMetrics())
	_, _, err := h.Run("submit_kernel", "ur", runConfig())
	assert.ErrorIs(t, err, domain.ErrNotRegistered)
}

func TestRunInvalidConfig(t *testing.T) {
	h := testHarness(newFakeMetrics())
	cfg := runConfig()
	cfg.Iterations = 0
	res, stats, err := h.Run("submit_kernel", "mock", cfg)
	assert.Equal(t, domain.ResultError, res)
	assert.Nil(t, stats)
	assert.ErrorIs(t, err, domain.ErrInvalidIterations)
}

func TestFailedRunWithholdsStatistics(t *testing.T) {
	m := newFakeMetrics()
	h := New(Options{
		Logger:  logging.NewWithWriter(io.Discard, "error"),
		Metrics: m,
		Pin:     func(cpu int) error { return nil },
		Loader:  moduleloader.StaticLoader{},
	})

	res, stats, err := h.Run("submit_kernel", "mock", runConfig())
	assert.Equal(t, domain.ResultKernelNotFound, res)
	assert.Nil(t, stats, "failed runs publish no partial statistics")
	assert.Error(t, err)
	assert.Equal(t, 0, m.samples)
	assert.Equal(t, 1, m.runs["submit_kernel/mock/kernel_not_found"])
}

func TestPairsListsBuiltins(t *testing.T) {
	h := testHarness(newFakeMetrics())
	keys := h.Pairs()
	require.Len(t, keys, 2)
	assert.Equal(t, "submit_kernel/mock", keys[0].String())
	assert.Equal(t, "submit_kernel/sim", keys[1].String())
}

func TestCompletionDominatesSubmission(t *testing.T) {
	m := newFakeMetrics()
	h := testHarness(m)

	cfg := runConfig()
	cfg.Iterations = 3
	cfg.NumKernels = 4
	cfg.KernelExecTime = 2000

	_, submitOnly, err := h.Run("submit_kernel", "sim", cfg)
	require.NoError(t, err)

	cfg.MeasureCompletionTime = true
	_, withCompletion, err := h.Run("submit_kernel", "sim", cfg)
	require.NoError(t, err)

	submitMean := report.Aggregate(submitOnly.Samples()).MeanUS
	completionMean := report.Aggregate(withCompletion.Samples()).MeanUS
	assert.Greater(t, completionMean, submitMean,
		"submission-only interval is a strict subset of submission-plus-completion")
	assert.GreaterOrEqual(t, completionMean, 8000.0, "four kernels at 2ms each drain per iteration")
}
