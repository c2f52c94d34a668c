package gas

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultMeter(t *testing.T) {
	m := NewDefaultMeter(100)
	require.NoError(t, m.ConsumeGas(40, "first"))
	require.NoError(t, m.ConsumeGas(60, "second"))
	assert.Equal(t, uint64(100), m.GasConsumed())
	assert.Zero(t, m.Remaining())

	err := m.ConsumeGas(1, "third")
	var oog *OutOfGasError
	require.True(t, errors.As(err, &oog))
	assert.Equal(t, "third", oog.Descriptor)
	assert.Equal(t, uint64(1), oog.Wanted)
	assert.Zero(t, oog.Available)
	require.ErrorContains(t, err, "out of gas")
}

func TestFailedChargeConsumesNothing(t *testing.T) {
	m := NewDefaultMeter(10)
	require.NoError(t, m.ConsumeGas(3, "a"))
	require.Error(t, m.ConsumeGas(8, "b"))
	assert.Equal(t, uint64(3), m.GasConsumed())
	assert.Equal(t, uint64(7), m.Remaining())

	// No overflow when the amount is huge.
	require.Error(t, m.ConsumeGas(math.MaxUint64, "c"))
	assert.Equal(t, uint64(3), m.GasConsumed())
}

func TestConfigCharges(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, uint64(10), OperationCost{Base: 4, Variable: 2}.TotalCost(3))
	assert.Equal(t, cfg.VerifyCost.Base+cfg.PerByte*150+cfg.VerifyCost.Variable*150, cfg.VerifyCharge(150))
}

func TestReport(t *testing.T) {
	m := NewDefaultMeter(1000)
	require.NoError(t, m.ConsumeGas(250, "x"))
	r := Report(m, m.Limit(), 50)
	assert.Equal(t, uint64(1000), r.Limit)
	assert.Equal(t, uint64(750), r.Remaining)
	assert.Equal(t, uint64(200), r.UsedExternally)
	assert.Equal(t, uint64(50), r.UsedInternally)
	assert.Equal(t, uint64(250), r.Used())

	r = Report(m, m.Limit(), 0)
	assert.Equal(t, uint64(250), r.UsedExternally)
	assert.Zero(t, r.UsedInternally)
}
