package scenarios

import (
	"kernelbench/internal/domain"
	"kernelbench/internal/ports"
)

// Deps carries everything a scenario needs from the outside. The
// backend and loader are exclusive to one invocation; Pin sets the
// calling thread's CPU affinity and must fail hard when it cannot.
type Deps struct {
	Backend ports.Backend
	Loader  ports.ModuleLoader
	Logger  ports.Logger
	Pin     func(cpu int) error
}

// Func is the scenario contract: a pure function from configuration and
// a statistics sink to a terminal result. The error is non-nil whenever
// the result is not Success or Nooped; for ResultError it carries the
// backend status.
type Func func(cfg domain.Config, stats *domain.Statistics, deps Deps) (domain.TestResult, error)
