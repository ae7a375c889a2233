// Package simbackend simulates a compute device in software. Each
// enqueued launch accrues the kernel's execution-cost argument as
// simulated device time; Finish blocks until the simulated device has
// drained. Submission itself returns immediately, so submission-only
// intervals stay well below submission-plus-completion intervals, the
// same ordering a real device exhibits.
package simbackend

import (
	"fmt"
	"sync"
	"time"

	"kernelbench/internal/ports"
)

type Backend struct {
	mu      sync.Mutex
	next    uint64
	live    map[uint64]struct{}
	argUS   map[uint64]int          // kernel handle -> execution cost
	pending map[uint64]time.Duration // queue handle -> accrued device time
}

func New() *Backend {
	return &Backend{
		live:    map[uint64]struct{}{},
		argUS:   map[uint64]int{},
		pending: map[uint64]time.Duration{},
	}
}

func (b *Backend) Name() string { return "sim" }

func (b *Backend) alloc() uint64 {
	b.next++
	b.live[b.next] = struct{}{}
	return b.next
}

func (b *Backend) free(h uint64) error {
	if _, ok := b.live[h]; !ok {
		return fmt.Errorf("simbackend: release of unknown handle %d", h)
	}
	delete(b.live, h)
	return nil
}

func (b *Backend) CreateProgram(il []byte) (ports.Program, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(il) == 0 {
		return ports.Program{}, fmt.Errorf("simbackend: empty module")
	}
	return ports.Program{H: b.alloc()}, nil
}

func (b *Backend) BuildProgram(p ports.Program) error { return nil }

func (b *Backend) ReleaseProgram(p ports.Program) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.free(p.H)
}

func (b *Backend) CreateKernel(p ports.Program, name string) (ports.Kernel, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if name == "" {
		return ports.Kernel{}, fmt.Errorf("simbackend: empty kernel name")
	}
	return ports.Kernel{H: b.alloc()}, nil
}

func (b *Backend) SetKernelArg(k ports.Kernel, index int, value int) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.argUS[k.H] = value
	return nil
}

func (b *Backend) ReleaseKernel(k ports.Kernel) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.argUS, k.H)
	return b.free(k.H)
}

func (b *Backend) CreateQueue(inOrder bool) (ports.Queue, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	q := ports.Queue{H: b.alloc()}
	b.pending[q.H] = 0
	return q, nil
}

func (b *Backend) EnqueueKernel(q ports.Queue, k ports.Kernel, signal *ports.Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.pending[q.H]; !ok {
		return fmt.Errorf("simbackend: enqueue on unknown queue %d", q.H)
	}
	b.pending[q.H] += time.Duration(b.argUS[k.H]) * time.Microsecond
	if signal != nil {
		*signal = ports.Event{H: b.alloc()}
	}
	return nil
}

func (b *Backend) Finish(q ports.Queue) error {
	b.mu.Lock()
	wait, ok := b.pending[q.H]
	if !ok {
		b.mu.Unlock()
		return fmt.Errorf("simbackend: finish on unknown queue %d", q.H)
	}
	b.pending[q.H] = 0
	b.mu.Unlock()

	// Simulated device drain. Held outside the lock so other queues
	// stay usable.
	time.Sleep(wait)
	return nil
}

func (b *Backend) ReleaseQueue(q ports.Queue) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.pending, q.H)
	return b.free(q.H)
}

func (b *Backend) ReleaseEvent(e ports.Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.free(e.H)
}
