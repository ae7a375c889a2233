package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "api_overhead_benchmark_eat_time.spv", cfg.ModuleName)
	assert.Equal(t, "eat_time", cfg.KernelName)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 1, cfg.DefaultCPU)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("KERNELBENCH_MODULE_DIR", "/opt/modules")
	t.Setenv("KERNELBENCH_MODULE", "other.spv")
	t.Setenv("KERNELBENCH_KERNEL", "spin")
	t.Setenv("KERNELBENCH_LOG_LEVEL", "debug")
	t.Setenv("KERNELBENCH_CPU", "3")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/opt/modules", cfg.ModuleDir)
	assert.Equal(t, "other.spv", cfg.ModuleName)
	assert.Equal(t, "spin", cfg.KernelName)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 3, cfg.DefaultCPU)
}

func TestLoadRejectsNegativeCPU(t *testing.T) {
	t.Setenv("KERNELBENCH_CPU", "-1")
	_, err := Load()
	assert.Error(t, err)
}
