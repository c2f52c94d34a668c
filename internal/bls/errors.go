package bls

import (
	"errors"
	"fmt"
)

var (
	// ErrWrongLength matches a DecodeError caused by an input of the wrong size.
	ErrWrongLength = errors.New("wrong length")
	// ErrInvalidPoint matches a DecodeError caused by bytes that are not a valid
	// compressed, on-curve, in-subgroup point.
	ErrInvalidPoint = errors.New("invalid point")
	// ErrVerificationFailed is returned when the pairing equation does not hold.
	ErrVerificationFailed = errors.New("signature verification failed")
	// ErrPayloadTooShort matches a LayoutError.
	ErrPayloadTooShort = errors.New("data does not include signed message")
	// ErrUnknownVariant is returned for a zero or out of range Variant.
	ErrUnknownVariant = errors.New("unknown variant")
	// ErrVariantMismatch is returned when a key and a signature of different
	// variants are verified against each other.
	ErrVariantMismatch = errors.New("public key and signature variants differ")

	errNotCompressed = errors.New("compression flag not set")
	errIdentityKey   = errors.New("public key is the point at infinity")
)

// Field names the input a DecodeError refers to.
type Field uint8

const (
	FieldPublicKey Field = iota + 1
	FieldSignature
)

func (f Field) String() string {
	switch f {
	case FieldPublicKey:
		return "public key"
	case FieldSignature:
		return "signature"
	default:
		return "field"
	}
}

// DecodeKind classifies a DecodeError.
type DecodeKind uint8

const (
	WrongLength DecodeKind = iota + 1
	InvalidPoint
)

func (k DecodeKind) String() string {
	switch k {
	case WrongLength:
		return "wrong length"
	case InvalidPoint:
		return "invalid point"
	default:
		return "unknown"
	}
}

// DecodeError reports a public key or signature that could not be decoded.
type DecodeError struct {
	Field Field
	Kind  DecodeKind
	Group Group
	Got   int
	Want  int
	// Err is the underlying cause for InvalidPoint.
	Err error
}

var _ error = (*DecodeError)(nil)

func (e *DecodeError) Error() string {
	if e.Kind == WrongLength {
		return fmt.Sprintf("%s: wrong length: got %d bytes, want %d", e.Field, e.Got, e.Want)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: invalid %s point: %v", e.Field, e.Group, e.Err)
	}
	return fmt.Sprintf("%s: invalid %s point", e.Field, e.Group)
}

func (e *DecodeError) Is(target error) bool {
	switch target {
	case ErrWrongLength:
		return e.Kind == WrongLength
	case ErrInvalidPoint:
		return e.Kind == InvalidPoint
	default:
		return false
	}
}

func (e *DecodeError) Unwrap() error { return e.Err }

// LayoutError reports a payload too short to hold both fixed-size fields.
type LayoutError struct {
	Got  int
	Want int
}

var _ error = (*LayoutError)(nil)

func (e *LayoutError) Error() string {
	return fmt.Sprintf("%s: got %d bytes, need at least %d", ErrPayloadTooShort, e.Got, e.Want)
}

func (e *LayoutError) Is(target error) bool { return target == ErrPayloadTooShort }
