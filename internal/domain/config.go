package domain

// Config describes one benchmark run. It is built by the caller and
// read-only to the harness and scenarios.
type Config struct {
	Iterations            int    `json:"iterations"`
	NumKernels            int    `json:"num_kernels"`
	KernelExecTime        int    `json:"kernel_exec_time_us"`
	InOrderQueue          bool   `json:"in_order_queue"`
	DiscardEvents         bool   `json:"discard_events"`
	MeasureCompletionTime bool   `json:"measure_completion_time"`
	Noop                  bool   `json:"noop"`
	CPUIndex              int    `json:"cpu_index"`
	KernelName            string `json:"kernel_name"`
	ModuleName            string `json:"module_name"`
}

func (c Config) Validate() error {
	if c.Noop {
		return nil
	}
	if c.Iterations <= 0 {
		return ErrInvalidIterations
	}
	if c.NumKernels < 0 {
		return ErrInvalidIterations
	}
	if c.KernelExecTime < 0 {
		return ErrInvalidKernelCost
	}
	if c.CPUIndex < 0 {
		return ErrInvalidCPUIndex
	}
	return nil
}
