package scenarios

import (
	"fmt"

	"kernelbench/internal/domain"
	"kernelbench/internal/ports"
)

// SubmitKernelName identifies the submission-overhead scenario in the
// registry.
const SubmitKernelName = "submit_kernel"

// SubmitKernel measures the host-side cost of repeatedly submitting a
// fixed-size batch of kernel launches. Every launch is a minimal
// 1x1x1 footprint whose device time is dominated by the configured
// execution-cost argument. One untimed warmup batch runs before the
// measured iterations so first-call driver and cache effects do not
// contaminate the samples.
func SubmitKernel(cfg domain.Config, stats *domain.Statistics, deps Deps) (domain.TestResult, error) {
	unit, typ := domain.UnitMicroseconds, domain.TypeCPU
	if cfg.MeasureCompletionTime {
		typ = domain.TypeCPUWithCompletion
	}

	if cfg.Noop {
		stats.PushUnitAndType(unit, typ)
		return domain.ResultNooped, nil
	}

	// Pin before any timed work. Affinity is load-bearing for
	// measurement validity, so failure aborts the invocation.
	if err := deps.Pin(cfg.CPUIndex); err != nil {
		return domain.ResultKernelNotFound, fmt.Errorf("%w: %v", domain.ErrAffinity, err)
	}

	module, err := deps.Loader.Load(cfg.ModuleName)
	if err != nil || len(module) == 0 {
		return domain.ResultKernelNotFound, domain.ErrKernelNotFound
	}

	backend := deps.Backend
	rel := releaser{backend: backend}
	defer rel.releaseAll()

	program, err := backend.CreateProgram(module)
	if err != nil {
		return domain.ResultError, fmt.Errorf("create program: %w", err)
	}
	rel.program(program)

	if err := backend.BuildProgram(program); err != nil {
		return domain.ResultError, fmt.Errorf("build program: %w", err)
	}

	kernel, err := backend.CreateKernel(program, cfg.KernelName)
	if err != nil {
		return domain.ResultError, fmt.Errorf("create kernel %q: %w", cfg.KernelName, err)
	}
	rel.kernel(kernel)

	queue, err := backend.CreateQueue(cfg.InOrderQueue)
	if err != nil {
		return domain.ResultError, fmt.Errorf("create queue: %w", err)
	}
	rel.queue(queue)

	// One slot per unit in the batch, sized regardless of the discard
	// flag so warmup and measured passes share the same layout.
	events := make([]ports.Event, cfg.NumKernels)
	rel.events(events)

	// Warmup, untimed.
	if err := submitBatch(backend, kernel, queue, cfg, events); err != nil {
		return domain.ResultError, err
	}
	if err := backend.Finish(queue); err != nil {
		return domain.ResultError, fmt.Errorf("queue finish: %w", err)
	}
	if err := releaseEvents(backend, events); err != nil {
		return domain.ResultError, err
	}

	stats.PushUnitAndType(unit, typ)

	var timer domain.Timer
	for i := 0; i < cfg.Iterations; i++ {
		timer.MeasureStart()
		if err := submitBatch(backend, kernel, queue, cfg, events); err != nil {
			return domain.ResultError, err
		}
		if !cfg.MeasureCompletionTime {
			timer.MeasureEnd()
			stats.PushValue(timer.GetMicroseconds(), unit, typ)
		}

		// Drain regardless of the completion flag: no in-flight work may
		// leak into the next iteration.
		if err := backend.Finish(queue); err != nil {
			return domain.ResultError, fmt.Errorf("queue finish: %w", err)
		}
		if cfg.MeasureCompletionTime {
			timer.MeasureEnd()
			stats.PushValue(timer.GetMicroseconds(), unit, typ)
		}

		if err := releaseEvents(backend, events); err != nil {
			return domain.ResultError, err
		}
	}

	if err := rel.releaseAllNow(); err != nil {
		return domain.ResultError, err
	}
	return domain.ResultSuccess, nil
}

func submitBatch(backend ports.Backend, kernel ports.Kernel, queue ports.Queue, cfg domain.Config, events []ports.Event) error {
	for i := range events {
		if err := backend.SetKernelArg(kernel, 0, cfg.KernelExecTime); err != nil {
			return fmt.Errorf("set kernel arg: %w", err)
		}
		var signal *ports.Event
		if !cfg.DiscardEvents {
			signal = &events[i]
		}
		if err := backend.EnqueueKernel(queue, kernel, signal); err != nil {
			return fmt.Errorf("enqueue kernel: %w", err)
		}
	}
	return nil
}

func releaseEvents(backend ports.Backend, events []ports.Event) error {
	for i := range events {
		if events[i].IsNil() {
			continue
		}
		if err := backend.ReleaseEvent(events[i]); err != nil {
			return fmt.Errorf("release event: %w", err)
		}
		events[i] = ports.Event{}
	}
	return nil
}

// releaser tears down backend resources in reverse-acquisition order on
// every exit path, exactly once each.
type releaser struct {
	backend ports.Backend
	stack   []func() error
	done    bool
}

func (r *releaser) program(p ports.Program) {
	r.stack = append(r.stack, func() error { return r.backend.ReleaseProgram(p) })
}

func (r *releaser) kernel(k ports.Kernel) {
	r.stack = append(r.stack, func() error { return r.backend.ReleaseKernel(k) })
}

func (r *releaser) queue(q ports.Queue) {
	r.stack = append(r.stack, func() error { return r.backend.ReleaseQueue(q) })
}

func (r *releaser) events(events []ports.Event) {
	r.stack = append(r.stack, func() error { return releaseEvents(r.backend, events) })
}

func (r *releaser) releaseAllNow() error {
	if r.done {
		return nil
	}
	r.done = true
	// Teardown is best effort: a failed release must not strand the
	// resources below it on the stack.
	var first error
	for i := len(r.stack) - 1; i >= 0; i-- {
		if err := r.stack[i](); err != nil && first == nil {
			first = fmt.Errorf("release: %w", err)
		}
	}
	return first
}

func (r *releaser) releaseAll() {
	_ = r.releaseAllNow()
}
