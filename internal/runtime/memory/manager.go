// Package memory moves bytes between the host and a guest's linear memory.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/tetratelabs/wazero/api"
)

// AllocateExport is the guest function used to reserve memory for results.
const AllocateExport = "allocate"

// Manager reads and writes one module instance's memory.
type Manager struct {
	mu       sync.RWMutex
	memory   api.Memory
	allocate api.Function
}

// NewManager requires mod to export its memory and an allocate(size) -> ptr
// function.
func NewManager(mod api.Module) (*Manager, error) {
	mem := mod.Memory()
	allocate := mod.ExportedFunction(AllocateExport)
	if mem == nil || allocate == nil {
		return nil, ErrMissingExports
	}
	return &Manager{memory: mem, allocate: allocate}, nil
}

// Read copies length bytes starting at offset. The copy stays valid after
// the guest grows or overwrites its memory.
func (m *Manager) Read(offset, length uint32) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	// Size is re-read on every access since the guest may have grown memory.
	if uint64(offset)+uint64(length) > uint64(m.memory.Size()) {
		return nil, fmt.Errorf("%w: read %d bytes at %d, memory size %d", ErrInvalidMemoryAccess, length, offset, m.memory.Size())
	}
	data, ok := m.memory.Read(offset, length)
	if !ok {
		return nil, ErrMemoryReadFailed
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Write copies data into guest memory at offset.
func (m *Manager) Write(offset uint32, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if uint64(offset)+uint64(len(data)) > uint64(m.memory.Size()) {
		return fmt.Errorf("%w: write %d bytes at %d, memory size %d", ErrInvalidMemoryAccess, len(data), offset, m.memory.Size())
	}
	if !m.memory.Write(offset, data) {
		return ErrMemoryWriteFailed
	}
	return nil
}

// Allocate asks the guest for size bytes and returns the pointer.
func (m *Manager) Allocate(ctx context.Context, size uint32) (uint32, error) {
	results, err := m.allocate.Call(ctx, uint64(size))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrAllocationFailed, err)
	}
	if len(results) != 1 {
		return 0, fmt.Errorf("%w: allocate returned %d values", ErrAllocationFailed, len(results))
	}
	ptr := api.DecodeU32(results[0])
	if ptr == 0 && size > 0 {
		return 0, fmt.Errorf("%w: null pointer", ErrAllocationFailed)
	}
	return ptr, nil
}

// WriteNew allocates guest memory for data, copies it in and returns the
// region. Empty data yields (0, 0) without calling the guest.
func (m *Manager) WriteNew(ctx context.Context, data []byte) (ptr, length uint32, err error) {
	if len(data) == 0 {
		return 0, 0, nil
	}
	ptr, err = m.Allocate(ctx, uint32(len(data)))
	if err != nil {
		return 0, 0, err
	}
	if err := m.Write(ptr, data); err != nil {
		return 0, 0, err
	}
	return ptr, uint32(len(data)), nil
}
