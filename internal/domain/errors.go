package domain

import "errors"

var (
	ErrKernelNotFound        = errors.New("kernel module not found")
	ErrAffinity              = errors.New("thread affinity not set")
	ErrInvalidIterations     = errors.New("invalid iteration count")
	ErrInvalidKernelCost     = errors.New("invalid kernel execution time")
	ErrInvalidCPUIndex       = errors.New("invalid cpu index")
	ErrNotRegistered         = errors.New("test case not registered")
	ErrDuplicateRegistration = errors.New("test case registered twice")
)
