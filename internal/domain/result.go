package domain

// TestResult is the terminal outcome of one scenario invocation.
type TestResult int

const (
	ResultSuccess TestResult = iota
	// ResultNooped marks a calibration run that skipped all backend work.
	ResultNooped
	// ResultKernelNotFound covers setup failures: a missing kernel module
	// or a failed thread-affinity assignment.
	ResultKernelNotFound
	ResultError
)

func (r TestResult) String() string {
	switch r {
	case ResultSuccess:
		return "success"
	case ResultNooped:
		return "nooped"
	case ResultKernelNotFound:
		return "kernel_not_found"
	case ResultError:
		return "error"
	default:
		return "unknown"
	}
}
