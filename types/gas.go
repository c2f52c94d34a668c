// Package types holds the values exchanged between the verifier runtime and
// its callers.
package types

// GasReport summarises gas usage of one call.
type GasReport struct {
	Limit          uint64 `json:"limit"`
	Remaining      uint64 `json:"remaining"`
	// UsedExternally is charged by host functions on behalf of the guest.
	UsedExternally uint64 `json:"used_externally"`
	// UsedInternally is charged by the VM itself, e.g. for copying calldata.
	UsedInternally uint64 `json:"used_internally"`
}

// Used is the total gas consumed.
func (r GasReport) Used() uint64 {
	return r.UsedExternally + r.UsedInternally
}
