package bls

import (
	"math/big"
	"testing"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNegatedGenerators(t *testing.T) {
	_, _, g1, g2 := bls12381.Generators()

	n1 := negG1Generator()
	var back1 bls12381.G1Affine
	back1.Neg(&n1)
	assert.True(t, back1.Equal(&g1))
	assert.False(t, n1.Equal(&g1))

	n2 := negG2Generator()
	var back2 bls12381.G2Affine
	back2.Neg(&n2)
	assert.True(t, back2.Equal(&g2))

	// Callers receive copies; mutating one leaves the cached value alone.
	n1.X.SetOne()
	again := negG1Generator()
	assert.True(t, back1.Neg(&again).Equal(&g1))
}

func TestVerifyPairingBothOrders(t *testing.T) {
	_, _, g1, g2 := bls12381.Generators()
	sk := big.NewInt(0x1234567)
	msg := []byte("pairing")

	// Public key in G2, signature in G1.
	var pkA bls12381.G2Affine
	pkA.ScalarMultiplication(&g2, sk)
	hA := hashToPoint(G1, msg, dstG1)
	sigA := point{group: G1}
	sigA.g1.ScalarMultiplication(&hA.g1, sk)

	keyA := PublicKey{variant: VariantG2PubKey, p: point{group: G2, g2: pkA}}
	require.True(t, verifyPairing(keyA, hA, Signature{variant: VariantG2PubKey, p: sigA}))
	require.False(t, verifyPairing(keyA, hA, Signature{variant: VariantG2PubKey, p: hA}))

	// Public key in G1, signature in G2.
	var pkB bls12381.G1Affine
	pkB.ScalarMultiplication(&g1, sk)
	hB := hashToPoint(G2, msg, dstG2)
	sigB := point{group: G2}
	sigB.g2.ScalarMultiplication(&hB.g2, sk)

	keyB := PublicKey{variant: VariantG1PubKey, p: point{group: G1, g1: pkB}}
	require.True(t, verifyPairing(keyB, hB, Signature{variant: VariantG1PubKey, p: sigB}))
	require.False(t, verifyPairing(keyB, hB, Signature{variant: VariantG1PubKey, p: hB}))

	require.False(t, verifyPairing(PublicKey{}, hA, Signature{}))
}

func TestHashToPointUnknownGroupPanics(t *testing.T) {
	require.Panics(t, func() { hashToPoint(Group(0), nil, dstG1) })
}

func TestDomainTagsDiffer(t *testing.T) {
	a := hashToPoint(G1, []byte("x"), dstG1)
	b := hashToPoint(G1, []byte("x"), dstG2)
	assert.False(t, a.equal(&b))
}
