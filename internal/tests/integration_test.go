package tests

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kernelbench/internal/adapters/logging"
	"kernelbench/internal/adapters/metrics"
	"kernelbench/internal/adapters/store"
	"kernelbench/internal/domain"
	"kernelbench/internal/harness"
	"kernelbench/internal/report"
)

func newHarness() *harness.Harness {
	return harness.New(harness.Options{
		Logger:  logging.NewWithWriter(io.Discard, "error"),
		Metrics: metrics.New(),
		Pin:     func(cpu int) error { return nil },
	})
}

func TestEndToEndMockRun(t *testing.T) {
	h := newHarness()
	cfg := domain.Config{
		Iterations:     5,
		NumKernels:     3,
		KernelExecTime: 1,
		InOrderQueue:   true,
		CPUIndex:       1,
		KernelName:     "eat_time",
		ModuleName:     "eat_time.spv",
	}

	res, stats, err := h.Run("submit_kernel", "mock", cfg)
	require.NoError(t, err)
	require.Equal(t, domain.ResultSuccess, res)
	require.Equal(t, 5, stats.Count())

	run := report.Run{
		ID:        uuid.NewString(),
		Scenario:  "submit_kernel",
		Backend:   "mock",
		Result:    res.String(),
		Config:    cfg,
		Unit:      stats.Unit(),
		Type:      stats.Type(),
		StartedAt: time.Now().UTC(),
		Summary:   report.Aggregate(stats.Samples()),
		Samples:   stats.Samples(),
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "reports", "run.json")
	require.NoError(t, store.ResultStore{Path: path}.Save(run))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	var loaded report.Run
	require.NoError(t, json.Unmarshal(b, &loaded))
	assert.Equal(t, run.ID, loaded.ID)
	assert.Equal(t, 5, loaded.Summary.Count)
	assert.Len(t, loaded.Samples, 5)

	chartPath := filepath.Join(dir, "run.html")
	f, err := os.Create(chartPath)
	require.NoError(t, err)
	require.NoError(t, report.WriteChart(f, run))
	require.NoError(t, f.Close())
	info, err := os.Stat(chartPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestEndToEndNoopCalibration(t *testing.T) {
	h := newHarness()
	cfg := domain.Config{Noop: true}

	res, stats, err := h.Run("submit_kernel", "sim", cfg)
	require.NoError(t, err)
	assert.Equal(t, domain.ResultNooped, res)
	require.NotNil(t, stats)
	assert.Equal(t, 0, stats.Count())
	assert.True(t, stats.Declared())
}

func TestEndToEndSimRun(t *testing.T) {
	h := newHarness()
	cfg := domain.Config{
		Iterations:            2,
		NumKernels:            2,
		KernelExecTime:        500,
		InOrderQueue:          true,
		MeasureCompletionTime: true,
		CPUIndex:              1,
		KernelName:            "eat_time",
		ModuleName:            "eat_time.spv",
	}

	res, stats, err := h.Run("submit_kernel", "sim", cfg)
	require.NoError(t, err)
	require.Equal(t, domain.ResultSuccess, res)
	require.Equal(t, 2, stats.Count())
	assert.Equal(t, domain.TypeCPUWithCompletion, stats.Type())
	for _, s := range stats.Samples() {
		assert.GreaterOrEqual(t, s.Value, 1000.0, "two kernels at 500us each drain per iteration")
	}
}

func TestRepeatedRunsLeakNothing(t *testing.T) {
	h := newHarness()
	cfg := domain.Config{
		Iterations:   3,
		NumKernels:   2,
		InOrderQueue: true,
		CPUIndex:     1,
		KernelName:   "eat_time",
		ModuleName:   "eat_time.spv",
	}
	for i := 0; i < 3; i++ {
		res, stats, err := h.Run("submit_kernel", "mock", cfg)
		require.NoError(t, err)
		require.Equal(t, domain.ResultSuccess, res)
		require.Equal(t, 3, stats.Count())
	}
}
