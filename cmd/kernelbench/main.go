package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"kernelbench/internal/adapters/logging"
	"kernelbench/internal/adapters/metrics"
	"kernelbench/internal/adapters/moduleloader"
	"kernelbench/internal/adapters/store"
	"kernelbench/internal/config"
	"kernelbench/internal/domain"
	"kernelbench/internal/harness"
	"kernelbench/internal/ports"
	"kernelbench/internal/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logger := logging.New(cfg.LogLevel)
	prom := metrics.New()

	var loader ports.ModuleLoader
	if cfg.ModuleDir != "" {
		loader = moduleloader.FileLoader{Dir: cfg.ModuleDir}
	}
	h := harness.New(harness.Options{Logger: logger, Metrics: prom, Loader: loader})

	rootCmd := &cobra.Command{
		Use:   "kernelbench",
		Short: "Kernel submission overhead microbenchmark harness",
		Long: `kernelbench measures the host-side CPU cost of submitting batches of
asynchronous kernel launches through a compute-runtime backend, isolating
API and driver overhead from device execution time.`,
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	var (
		scenario    string
		backend     string
		iterations  int
		numKernels  int
		execTime    int
		outOfOrder  bool
		discard     bool
		completion  bool
		noop        bool
		cpuIndex    int
		jsonOut     bool
		withSamples bool
		outPath     string
		chartPath   string
	)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run one scenario against one backend",
		Run: func(cmd *cobra.Command, args []string) {
			if cfg.MetricsAddr != "" {
				go func() {
					mux := http.NewServeMux()
					mux.Handle("/metrics", prom.Handler())
					if err := http.ListenAndServe(cfg.MetricsAddr, mux); err != nil {
						logger.Error("metrics_server", "err", err)
					}
				}()
			}

			runCfg := domain.Config{
				Iterations:            iterations,
				NumKernels:            numKernels,
				KernelExecTime:        execTime,
				InOrderQueue:          !outOfOrder,
				DiscardEvents:         discard,
				MeasureCompletionTime: completion,
				Noop:                  noop,
				CPUIndex:              cpuIndex,
				KernelName:            cfg.KernelName,
				ModuleName:            cfg.ModuleName,
			}

			started := time.Now().UTC()
			res, stats, err := h.Run(scenario, backend, runCfg)
			run := report.Run{
				ID:        uuid.NewString(),
				Scenario:  scenario,
				Backend:   backend,
				Result:    res.String(),
				Config:    runCfg,
				StartedAt: started,
			}
			if stats != nil {
				run.Unit = stats.Unit()
				run.Type = stats.Type()
				run.Summary = report.Aggregate(stats.Samples())
				if withSamples || jsonOut {
					run.Samples = stats.Samples()
				}
			}

			if jsonOut {
				if werr := report.WriteJSON(os.Stdout, run); werr != nil {
					fmt.Fprintf(os.Stderr, "write report: %v\n", werr)
				}
			} else {
				_ = report.WriteText(os.Stdout, run)
			}
			if outPath != "" {
				if serr := (store.ResultStore{Path: outPath}).Save(run); serr != nil {
					fmt.Fprintf(os.Stderr, "save report: %v\n", serr)
					os.Exit(1)
				}
			}
			if chartPath != "" && stats != nil {
				f, cerr := os.Create(chartPath)
				if cerr == nil {
					cerr = report.WriteChart(f, run)
					_ = f.Close()
				}
				if cerr != nil {
					fmt.Fprintf(os.Stderr, "write chart: %v\n", cerr)
					os.Exit(1)
				}
			}

			if res != domain.ResultSuccess && res != domain.ResultNooped {
				fmt.Fprintf(os.Stderr, "run failed: %s: %v\n", res, err)
				os.Exit(1)
			}
		},
	}

	runCmd.Flags().StringVar(&scenario, "scenario", "submit_kernel", "Scenario to run")
	runCmd.Flags().StringVar(&backend, "backend", "sim", "Backend to run against")
	runCmd.Flags().IntVar(&iterations, "iterations", 100, "Measured iterations")
	runCmd.Flags().IntVar(&numKernels, "num-kernels", 10, "Kernel launches per batch")
	runCmd.Flags().IntVar(&execTime, "kernel-exec-time", 1, "Per-kernel execution cost in microseconds")
	runCmd.Flags().BoolVar(&outOfOrder, "out-of-order", false, "Use an out-of-order queue")
	runCmd.Flags().BoolVar(&discard, "discard-events", false, "Do not capture completion events")
	runCmd.Flags().BoolVar(&completion, "measure-completion", false, "Include queue drain in the timed interval")
	runCmd.Flags().BoolVar(&noop, "noop", false, "Calibration run: skip all backend work")
	runCmd.Flags().IntVar(&cpuIndex, "cpu", cfg.DefaultCPU, "Logical CPU to pin the measurement thread to")
	runCmd.Flags().BoolVar(&jsonOut, "json", false, "JSON output")
	runCmd.Flags().BoolVar(&withSamples, "samples", false, "Include raw samples in saved reports")
	runCmd.Flags().StringVar(&outPath, "out", "", "Write the run report JSON to this path")
	runCmd.Flags().StringVar(&chartPath, "chart", "", "Write an HTML sample chart to this path")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List registered scenario/backend pairs",
		Run: func(cmd *cobra.Command, args []string) {
			for _, k := range h.Pairs() {
				fmt.Println(k)
			}
		},
	}

	rootCmd.AddCommand(runCmd, listCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
