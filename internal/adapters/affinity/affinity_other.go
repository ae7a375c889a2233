//go:build !linux

package affinity

import (
	"fmt"
	"runtime"
)

// Affinity is load-bearing for measurement validity. Platforms without
// a pinning syscall get a hard failure, not a silent best-effort run.
func Pin(cpu int) error {
	return fmt.Errorf("thread pinning unsupported on %s", runtime.GOOS)
}
