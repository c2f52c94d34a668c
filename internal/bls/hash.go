package bls

import (
	"fmt"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// HashToSignatureGroup maps msg into the signature group of v using the
// variant's domain separation tag and returns the compressed point.
func HashToSignatureGroup(v Variant, msg []byte) ([]byte, error) {
	if !v.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownVariant, v)
	}
	p := hashToPoint(v.SignatureGroup(), msg, v.dst())
	return p.bytes(), nil
}

// hashToPoint runs the hash_to_curve suite (expand_message_xmd with SHA-256,
// SSWU map, random oracle) for group g.
func hashToPoint(g Group, msg, dst []byte) point {
	p := point{group: g}
	var err error
	switch g {
	case G1:
		p.g1, err = bls12381.HashToG1(msg, dst)
	case G2:
		p.g2, err = bls12381.HashToG2(msg, dst)
	default:
		err = fmt.Errorf("no such group %d", g)
	}
	if err != nil {
		// Only reachable with a DST over 255 bytes, which the constants are not.
		panic(fmt.Sprintf("bls: hash to %s: %v", g, err))
	}
	return p
}
