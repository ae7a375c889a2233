// Package mockbackend is a zero-latency, resource-counting fake of the
// compute-runtime binding. It exists for tests and for harness
// self-calibration: it validates handle lifecycles (no use after
// release, no double release, no dangling work at queue release) and
// exposes counters so leak checks can assert create == release.
package mockbackend

import (
	"fmt"
	"sync"

	"kernelbench/internal/ports"
)

const (
	KindProgram = "program"
	KindKernel  = "kernel"
	KindQueue   = "queue"
	KindEvent   = "event"
)

type Backend struct {
	mu       sync.Mutex
	next     uint64
	live     map[uint64]string
	created  map[string]int
	released map[string]int
	pending  int

	// FailOn maps a method name (e.g. "BuildProgram") to the error that
	// call should return. Used to exercise abort paths.
	FailOn map[string]error
}

func New() *Backend {
	return &Backend{
		live:     map[uint64]string{},
		created:  map[string]int{},
		released: map[string]int{},
	}
}

func (b *Backend) Name() string { return "mock" }

func (b *Backend) fail(method string) error {
	if b.FailOn == nil {
		return nil
	}
	return b.FailOn[method]
}

func (b *Backend) alloc(kind string) uint64 {
	b.next++
	b.live[b.next] = kind
	b.created[kind]++
	return b.next
}

func (b *Backend) free(kind string, h uint64) error {
	got, ok := b.live[h]
	if !ok {
		return fmt.Errorf("mockbackend: release of dead or unknown %s handle %d", kind, h)
	}
	if got != kind {
		return fmt.Errorf("mockbackend: handle %d is a %s, released as %s", h, got, kind)
	}
	delete(b.live, h)
	b.released[kind]++
	return nil
}

func (b *Backend) check(kind string, h uint64) error {
	if got, ok := b.live[h]; !ok || got != kind {
		return fmt.Errorf("mockbackend: use of dead or unknown %s handle %d", kind, h)
	}
	return nil
}

func (b *Backend) CreateProgram(il []byte) (ports.Program, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.fail("CreateProgram"); err != nil {
		return ports.Program{}, err
	}
	if len(il) == 0 {
		return ports.Program{}, fmt.Errorf("mockbackend: empty module")
	}
	return ports.Program{H: b.alloc(KindProgram)}, nil
}

func (b *Backend) BuildProgram(p ports.Program) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.fail("BuildProgram"); err != nil {
		return err
	}
	return b.check(KindProgram, p.H)
}

func (b *Backend) ReleaseProgram(p ports.Program) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.free(KindProgram, p.H)
}

func (b *Backend) CreateKernel(p ports.Program, name string) (ports.Kernel, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.fail("CreateKernel"); err != nil {
		return ports.Kernel{}, err
	}
	if err := b.check(KindProgram, p.H); err != nil {
		return ports.Kernel{}, err
	}
	if name == "" {
		return ports.Kernel{}, fmt.Errorf("mockbackend: empty kernel name")
	}
	return ports.Kernel{H: b.alloc(KindKernel)}, nil
}

func (b *Backend) SetKernelArg(k ports.Kernel, index int, value int) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.fail("SetKernelArg"); err != nil {
		return err
	}
	return b.check(KindKernel, k.H)
}

func (b *Backend) ReleaseKernel(k ports.Kernel) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.free(KindKernel, k.H)
}

func (b *Backend) CreateQueue(inOrder bool) (ports.Queue, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.fail("CreateQueue"); err != nil {
		return ports.Queue{}, err
	}
	return ports.Queue{H: b.alloc(KindQueue)}, nil
}

func (b *Backend) EnqueueKernel(q ports.Queue, k ports.Kernel, signal *ports.Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.fail("EnqueueKernel"); err != nil {
		return err
	}
	if err := b.check(KindQueue, q.H); err != nil {
		return err
	}
	if err := b.check(KindKernel, k.H); err != nil {
		return err
	}
	b.pending++
	if signal != nil {
		*signal = ports.Event{H: b.alloc(KindEvent)}
	}
	return nil
}

func (b *Backend) Finish(q ports.Queue) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.fail("Finish"); err != nil {
		return err
	}
	if err := b.check(KindQueue, q.H); err != nil {
		return err
	}
	b.pending = 0
	return nil
}

func (b *Backend) ReleaseQueue(q ports.Queue) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pending = 0
	return b.free(KindQueue, q.H)
}

func (b *Backend) ReleaseEvent(e ports.Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.free(KindEvent, e.H)
}

// Live reports the number of handles created but not yet released.
func (b *Backend) Live() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.live)
}

func (b *Backend) Created(kind string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.created[kind]
}

func (b *Backend) Released(kind string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.released[kind]
}
