package types

// CallResult is the outcome of invoking a verifier export.
type CallResult struct {
	// Failure is the payload the verifier returned. It is empty when the
	// signature was accepted.
	Failure   []byte    `json:"failure,omitempty"`
	GasReport GasReport `json:"gas_report"`
}

// Accepted reports whether the verifier returned no failure payload.
func (r *CallResult) Accepted() bool {
	return len(r.Failure) == 0
}
