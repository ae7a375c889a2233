package ports

// Opaque backend handles. The zero value is the null handle.
type (
	Program struct{ H uint64 }
	Kernel  struct{ H uint64 }
	Queue   struct{ H uint64 }
	Event   struct{ H uint64 }
)

func (e Event) IsNil() bool { return e.H == 0 }

// Backend is the compute-runtime binding a scenario drives. Every call
// returns a status error; any failure aborts the invocation. Handles
// follow a strict Created -> used -> Released lifecycle; release of a
// live handle happens exactly once, and use after release is a
// programming error on the caller's side.
type Backend interface {
	Name() string

	CreateProgram(il []byte) (Program, error)
	BuildProgram(p Program) error
	ReleaseProgram(p Program) error

	CreateKernel(p Program, name string) (Kernel, error)
	// SetKernelArg binds a scalar argument by index.
	SetKernelArg(k Kernel, index int, value int) error
	ReleaseKernel(k Kernel) error

	CreateQueue(inOrder bool) (Queue, error)
	// EnqueueKernel submits one 1x1x1 launch. When signal is non-nil the
	// backend stores the completion event into it; a nil signal discards
	// event tracking for this submission.
	EnqueueKernel(q Queue, k Kernel, signal *Event) error
	// Finish blocks until everything submitted to the queue completed.
	Finish(q Queue) error
	ReleaseQueue(q Queue) error

	ReleaseEvent(e Event) error
}
