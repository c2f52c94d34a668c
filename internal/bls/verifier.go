// Package bls verifies single BLS signatures over BLS12-381.
//
// Two variants are supported: public keys in G2 with signatures in G1
// (VariantG2PubKey), and public keys in G1 with signatures in G2
// (VariantG1PubKey). Everything in this package is a pure function of its
// inputs and safe for concurrent use.
package bls

import "fmt"

// Verifier checks signatures for one variant. It holds no mutable state.
type Verifier struct {
	variant Variant
	layout  Layout
}

// New returns a Verifier for v.
func New(v Variant) (*Verifier, error) {
	if !v.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownVariant, v)
	}
	return &Verifier{variant: v, layout: v.Layout()}, nil
}

func (v *Verifier) Variant() Variant { return v.variant }

func (v *Verifier) Layout() Layout { return v.layout }

// Verify decodes the signature, then the public key, hashes msg and checks
// the pairing equation. It returns nil, a *DecodeError, or
// ErrVerificationFailed.
func (v *Verifier) Verify(sig, msg, key []byte) error {
	s, err := DecodeSignature(v.variant, sig)
	if err != nil {
		return err
	}
	pk, err := DecodePublicKey(v.variant, key)
	if err != nil {
		return err
	}
	return pk.Verify(msg, s)
}

// VerifyPayload splits data according to the variant's layout and verifies
// the resulting triple.
func (v *Verifier) VerifyPayload(data []byte) error {
	sig, key, msg, err := v.layout.Split(data)
	if err != nil {
		return err
	}
	return v.Verify(sig, msg, key)
}

// Verify checks sig over msg under pk.
func (pk PublicKey) Verify(msg []byte, sig Signature) error {
	if !pk.variant.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownVariant, pk.variant)
	}
	if sig.variant != pk.variant {
		return ErrVariantMismatch
	}
	h := hashToPoint(pk.variant.SignatureGroup(), msg, pk.variant.dst())
	if !verifyPairing(pk, h, sig) {
		return ErrVerificationFailed
	}
	return nil
}

// VerifyBLSSignature verifies sig over msg under key for variant v.
func VerifyBLSSignature(v Variant, sig, msg, key []byte) error {
	verifier, err := New(v)
	if err != nil {
		return err
	}
	return verifier.Verify(sig, msg, key)
}
