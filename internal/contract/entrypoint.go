// Package contract adapts the BLS verifier to the calldata convention of a
// contract call: one opaque buffer in, an empty result on success and a short
// failure payload otherwise.
package contract

import (
	"errors"

	"github.com/CosmWasm/blsverify/internal/bls"
)

// FailureKind classifies why a call was rejected.
type FailureKind uint8

const (
	// Accepted means the signature verified.
	Accepted FailureKind = iota
	PayloadTooShort
	InvalidSignature
	InvalidPublicKey
	VerificationFailed
)

func (k FailureKind) String() string {
	switch k {
	case Accepted:
		return "accepted"
	case PayloadTooShort:
		return "payload too short"
	case InvalidSignature:
		return "invalid signature"
	case InvalidPublicKey:
		return "invalid public key"
	case VerificationFailed:
		return "verification failed"
	default:
		return "unknown"
	}
}

// Messages returned by VariantG1PubKey calls.
const (
	MsgPayloadTooShort    = "data does not include signed message"
	MsgInvalidSignature   = "invalid signature encoding"
	MsgInvalidPublicKey   = "invalid public key encoding"
	MsgVerificationFailed = "sig failed to verify"
)

// Classify maps an error from the verifier to a FailureKind. Errors it does
// not recognise count as VerificationFailed so a call never succeeds by
// accident.
func Classify(err error) FailureKind {
	if err == nil {
		return Accepted
	}
	if errors.Is(err, bls.ErrPayloadTooShort) {
		return PayloadTooShort
	}
	var de *bls.DecodeError
	if errors.As(err, &de) {
		if de.Field == bls.FieldPublicKey {
			return InvalidPublicKey
		}
		return InvalidSignature
	}
	return VerificationFailed
}

// FailurePayload returns the bytes a call of variant v returns for kind.
// VariantG2PubKey collapses every failure to a single non-zero byte.
func FailurePayload(v bls.Variant, kind FailureKind) []byte {
	if kind == Accepted {
		return nil
	}
	if v != bls.VariantG1PubKey {
		return []byte{1}
	}
	switch kind {
	case PayloadTooShort:
		return []byte(MsgPayloadTooShort)
	case InvalidSignature:
		return []byte(MsgInvalidSignature)
	case InvalidPublicKey:
		return []byte(MsgInvalidPublicKey)
	default:
		return []byte(MsgVerificationFailed)
	}
}

// Entrypoint is a deployed verifier for one variant.
type Entrypoint struct {
	verifier *bls.Verifier
}

func New(v bls.Variant) (*Entrypoint, error) {
	verifier, err := bls.New(v)
	if err != nil {
		return nil, err
	}
	return &Entrypoint{verifier: verifier}, nil
}

func (e *Entrypoint) Variant() bls.Variant { return e.verifier.Variant() }

// Verify runs the verifier on calldata and returns its rich error.
func (e *Entrypoint) Verify(data []byte) error {
	return e.verifier.VerifyPayload(data)
}

// Call verifies calldata and returns nil on success or the failure payload.
func (e *Entrypoint) Call(data []byte) []byte {
	return FailurePayload(e.Variant(), Classify(e.Verify(data)))
}
