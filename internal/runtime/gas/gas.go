package gas

import "github.com/CosmWasm/blsverify/types"

// OperationCost is a cost with a fixed part and a part proportional to the
// input size.
type OperationCost struct {
	Base     uint64 `mapstructure:"base"`
	Variable uint64 `mapstructure:"variable"`
}

// TotalCost calculates the cost for n units of input.
func (c OperationCost) TotalCost(n uint64) uint64 {
	return c.Base + c.Variable*n
}

// Config defines the costs charged by the verifier host functions.
type Config struct {
	// PerByte is charged for every byte copied across the guest boundary.
	PerByte uint64 `mapstructure:"per_byte"`
	// VerifyCost is charged once per verification, with Variable applied to
	// the calldata length.
	VerifyCost OperationCost `mapstructure:"verify"`
}

// DefaultConfig returns costs in line with a pairing check of two pairs.
func DefaultConfig() Config {
	return Config{
		PerByte: 1,
		VerifyCost: OperationCost{
			Base:     2_000_000,
			Variable: 1,
		},
	}
}

// VerifyCharge is what one verification of a calldata buffer of n bytes
// costs in total.
func (c Config) VerifyCharge(n uint64) uint64 {
	return c.PerByte*n + c.VerifyCost.TotalCost(n)
}

// Report converts meter state into a GasReport. internal is the part of the
// consumed gas the VM charged itself; the rest was charged by host functions.
func Report(m Meter, limit, internal uint64) types.GasReport {
	used := m.GasConsumed()
	if internal > used {
		internal = used
	}
	return types.GasReport{
		Limit:          limit,
		Remaining:      m.Remaining(),
		UsedExternally: used - internal,
		UsedInternally: internal,
	}
}
