package gas

import (
	"fmt"
	"sync"
)

// Meter tracks gas consumption during a call.
type Meter interface {
	// ConsumeGas charges amount. It fails without charging if the limit
	// would be exceeded.
	ConsumeGas(amount uint64, descriptor string) error
	GasConsumed() uint64
	Remaining() uint64
}

// OutOfGasError is returned when a charge does not fit the remaining gas.
type OutOfGasError struct {
	Descriptor string
	Wanted     uint64
	Available  uint64
}

func (e *OutOfGasError) Error() string {
	return fmt.Sprintf("out of gas in %s: required %d, but only %d available", e.Descriptor, e.Wanted, e.Available)
}

// DefaultMeter is a Meter with a fixed limit.
type DefaultMeter struct {
	mu       sync.Mutex
	limit    uint64
	consumed uint64
}

var _ Meter = (*DefaultMeter)(nil)

func NewDefaultMeter(limit uint64) *DefaultMeter {
	return &DefaultMeter{limit: limit}
}

func (m *DefaultMeter) ConsumeGas(amount uint64, descriptor string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if amount > m.limit-m.consumed {
		return &OutOfGasError{
			Descriptor: descriptor,
			Wanted:     amount,
			Available:  m.limit - m.consumed,
		}
	}
	m.consumed += amount
	return nil
}

func (m *DefaultMeter) GasConsumed() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.consumed
}

func (m *DefaultMeter) Remaining() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.limit - m.consumed
}

func (m *DefaultMeter) Limit() uint64 { return m.limit }
