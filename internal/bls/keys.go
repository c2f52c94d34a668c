package bls

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// point is an affine point in either G1 or G2; only the member matching
// group is meaningful.
type point struct {
	group Group
	g1    bls12381.G1Affine
	g2    bls12381.G2Affine
}

func (p *point) bytes() []byte {
	switch p.group {
	case G1:
		b := p.g1.Bytes()
		return b[:]
	case G2:
		b := p.g2.Bytes()
		return b[:]
	default:
		return nil
	}
}

func (p *point) equal(o *point) bool {
	if p.group != o.group {
		return false
	}
	switch p.group {
	case G1:
		return p.g1.Equal(&o.g1)
	case G2:
		return p.g2.Equal(&o.g2)
	default:
		return true
	}
}

func (p *point) isInfinity() bool {
	switch p.group {
	case G1:
		return p.g1.IsInfinity()
	case G2:
		return p.g2.IsInfinity()
	default:
		return false
	}
}

// PublicKey is a validated BLS12-381 public key. It is immutable and safe to
// share between goroutines.
type PublicKey struct {
	variant Variant
	p       point
}

func (pk PublicKey) Variant() Variant { return pk.variant }

// Bytes returns the compressed encoding of the key.
func (pk PublicKey) Bytes() []byte { return pk.p.bytes() }

func (pk PublicKey) Equal(o PublicKey) bool {
	return pk.variant == o.variant && pk.p.equal(&o.p)
}

// Signature is a validated BLS12-381 signature.
type Signature struct {
	variant Variant
	p       point
}

func (s Signature) Variant() Variant { return s.variant }

// Bytes returns the compressed encoding of the signature.
func (s Signature) Bytes() []byte { return s.p.bytes() }

func (s Signature) Equal(o Signature) bool {
	return s.variant == o.variant && s.p.equal(&o.p)
}
