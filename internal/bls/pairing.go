package bls

import (
	"sync"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// Negated generators, computed on first use and never mutated.
var (
	negG1Generator = sync.OnceValue(func() bls12381.G1Affine {
		_, _, g1, _ := bls12381.Generators()
		var neg bls12381.G1Affine
		neg.Neg(&g1)
		return neg
	})
	negG2Generator = sync.OnceValue(func() bls12381.G2Affine {
		_, _, _, g2 := bls12381.Generators()
		var neg bls12381.G2Affine
		neg.Neg(&g2)
		return neg
	})
)

// verifyPairing checks e(g, sig) == e(pk, H(m)) as a single multi-pairing
// e(sig, -g) * e(H(m), pk) == 1, with the arguments ordered (G1, G2) as the
// variant requires. Only one final exponentiation is performed.
func verifyPairing(pk PublicKey, h point, sig Signature) bool {
	var (
		ps [2]bls12381.G1Affine
		qs [2]bls12381.G2Affine
	)
	switch pk.variant {
	case VariantG2PubKey:
		ps[0], qs[0] = sig.p.g1, negG2Generator()
		ps[1], qs[1] = h.g1, pk.p.g2
	case VariantG1PubKey:
		ps[0], qs[0] = negG1Generator(), sig.p.g2
		ps[1], qs[1] = pk.p.g1, h.g2
	default:
		return false
	}
	ok, err := bls12381.PairingCheck(ps[:], qs[:])
	return err == nil && ok
}
