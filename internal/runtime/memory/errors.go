package memory

import "errors"

var (
	// ErrInvalidMemoryAccess is returned when a range falls outside guest memory.
	ErrInvalidMemoryAccess = errors.New("invalid memory access")
	// ErrMemoryReadFailed is returned when memory read operation fails
	ErrMemoryReadFailed = errors.New("memory read failed")
	// ErrMemoryWriteFailed is returned when memory write operation fails
	ErrMemoryWriteFailed = errors.New("memory write failed")
	// ErrMissingExports is returned for modules without memory or allocate.
	ErrMissingExports = errors.New("missing required exports: memory, allocate")
	// ErrAllocationFailed wraps failures of the guest allocator.
	ErrAllocationFailed = errors.New("guest allocation failed")
)
