package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds harness-level plumbing. Per-run benchmark settings come
// from CLI flags, not from here.
type Config struct {
	ModuleDir   string
	ModuleName  string
	KernelName  string
	LogLevel    string
	MetricsAddr string
	DefaultCPU  int
}

func Load() (Config, error) {
	cfg := Config{
		ModuleDir:   os.Getenv("KERNELBENCH_MODULE_DIR"),
		ModuleName:  envOrDefault("KERNELBENCH_MODULE", "api_overhead_benchmark_eat_time.spv"),
		KernelName:  envOrDefault("KERNELBENCH_KERNEL", "eat_time"),
		LogLevel:    envOrDefault("KERNELBENCH_LOG_LEVEL", "info"),
		MetricsAddr: os.Getenv("KERNELBENCH_METRICS_ADDR"),
		DefaultCPU:  envInt("KERNELBENCH_CPU", 1),
	}
	if cfg.ModuleName == "" {
		return Config{}, fmt.Errorf("module name must not be empty")
	}
	if cfg.KernelName == "" {
		return Config{}, fmt.Errorf("kernel name must not be empty")
	}
	if cfg.DefaultCPU < 0 {
		return Config{}, fmt.Errorf("cpu index must not be negative")
	}
	return cfg, nil
}

func envOrDefault(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func envInt(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if p, e := strconv.Atoi(v); e == nil {
			return p
		}
	}
	return d
}
