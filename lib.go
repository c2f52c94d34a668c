// Package blsverify verifies BLS12-381 signatures, either directly or by
// running verifier guests on a Wasm runtime with BLS host functions.
package blsverify

import (
	"context"
	"strings"

	"github.com/CosmWasm/blsverify/internal/bls"
	"github.com/CosmWasm/blsverify/internal/contract"
	"github.com/CosmWasm/blsverify/internal/runtime"
	"github.com/CosmWasm/blsverify/types"
)

// Variant selects which group holds public keys and which holds signatures.
type Variant = bls.Variant

const (
	// VariantG2PubKey: 96 byte public keys in G2, 48 byte signatures in G1.
	VariantG2PubKey = bls.VariantG2PubKey
	// VariantG1PubKey: 48 byte public keys in G1, 96 byte signatures in G2.
	VariantG1PubKey = bls.VariantG1PubKey
)

const (
	DSTG1 = bls.DSTG1
	DSTG2 = bls.DSTG2
)

var (
	ErrWrongLength        = bls.ErrWrongLength
	ErrInvalidPoint       = bls.ErrInvalidPoint
	ErrVerificationFailed = bls.ErrVerificationFailed
	ErrPayloadTooShort    = bls.ErrPayloadTooShort
	ErrUnknownVariant     = bls.ErrUnknownVariant
)

type (
	DecodeError = bls.DecodeError
	LayoutError = bls.LayoutError
	Checksum    = types.Checksum
	CallResult  = types.CallResult
	GasReport   = types.GasReport
	Config      = runtime.Config
)

// ParseVariant accepts "g2-pubkey" or "g1-pubkey" and their aliases.
func ParseVariant(s string) (Variant, error) { return bls.ParseVariant(s) }

// VerifyBLSSignature checks sig over msg under the compressed public key.
// It returns nil on success, a *DecodeError for malformed inputs, or
// ErrVerificationFailed.
func VerifyBLSSignature(v Variant, sig, msg, key []byte) error {
	return bls.VerifyBLSSignature(v, sig, msg, key)
}

// VerifyPayload splits a calldata buffer per the variant's layout and
// verifies it.
func VerifyPayload(v Variant, data []byte) error {
	verifier, err := bls.New(v)
	if err != nil {
		return err
	}
	return verifier.VerifyPayload(data)
}

// Call verifies calldata the way a deployed verifier does and returns the
// failure payload, or nil when the signature is accepted.
func Call(v Variant, data []byte) ([]byte, error) {
	entry, err := contract.New(v)
	if err != nil {
		return nil, err
	}
	return entry.Call(data), nil
}

// HashToSignatureGroup hashes msg into the variant's signature group.
func HashToSignatureGroup(v Variant, msg []byte) ([]byte, error) {
	return bls.HashToSignatureGroup(v, msg)
}

// GuestExport is the name under which verifier guests export the entry
// point for v, e.g. "verify_g1_pubkey".
func GuestExport(v Variant) string {
	return "verify_" + strings.ReplaceAll(v.String(), "-", "_")
}

// DefaultConfig keeps code in memory with default gas costs.
func DefaultConfig() Config { return runtime.DefaultConfig() }

// VM is the main entry point for running verifier guests.
// Create one per data directory and share it between goroutines.
type VM struct {
	vm *runtime.VM
}

// NewVM opens the code store described by cfg and prepares the runtime.
func NewVM(cfg Config) (*VM, error) {
	vm, err := runtime.NewVM(cfg)
	if err != nil {
		return nil, err
	}
	return &VM{vm: vm}, nil
}

// StoreCode validates and persists Wasm bytecode. The returned checksum
// identifies it in later calls.
func (vm *VM) StoreCode(code []byte) (Checksum, error) { return vm.vm.StoreCode(code) }

func (vm *VM) GetCode(cs Checksum) ([]byte, error) { return vm.vm.GetCode(cs) }

func (vm *VM) RemoveCode(cs Checksum) error { return vm.vm.RemoveCode(cs) }

func (vm *VM) Pin(cs Checksum) error { return vm.vm.Pin(cs) }

func (vm *VM) Unpin(cs Checksum) { vm.vm.Unpin(cs) }

// Verify runs the guest's entry point for variant v on payload.
func (vm *VM) Verify(ctx context.Context, cs Checksum, v Variant, payload []byte, gasLimit uint64) (*CallResult, error) {
	if !v.Valid() {
		return nil, ErrUnknownVariant
	}
	return vm.vm.Call(ctx, cs, GuestExport(v), payload, gasLimit)
}

// Call invokes an arbitrary (i32, i32) -> (i32, i32) export.
func (vm *VM) Call(ctx context.Context, cs Checksum, export string, payload []byte, gasLimit uint64) (*CallResult, error) {
	return vm.vm.Call(ctx, cs, export, payload, gasLimit)
}

// Close should be called when no longer using the VM.
func (vm *VM) Close(ctx context.Context) error { return vm.vm.Close(ctx) }
