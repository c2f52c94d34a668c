package types

import "fmt"

// NoSuchCode is returned when no code is stored under a checksum.
type NoSuchCode struct {
	Checksum Checksum
}

var _ error = NoSuchCode{}

func (e NoSuchCode) Error() string {
	return fmt.Sprintf("no such code: %s", e.Checksum)
}

// MissingExport is returned when stored code lacks a function the runtime
// needs to call.
type MissingExport struct {
	Name string
}

var _ error = MissingExport{}

func (e MissingExport) Error() string {
	return fmt.Sprintf("missing export: %s", e.Name)
}
