// Package blstest creates key pairs and signatures for tests. Signing is not
// part of the verifier, so it is implemented here directly on gnark-crypto.
package blstest

import (
	"crypto/sha256"
	"encoding/binary"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/CosmWasm/blsverify/internal/bls"
)

// KeyPair is a deterministic test key for one variant.
type KeyPair struct {
	Variant   bls.Variant
	Secret    *big.Int
	PublicKey []byte
}

// NewKeyPair derives a secret scalar from seed and computes the public key.
func NewKeyPair(v bls.Variant, seed uint64) KeyPair {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], seed)
	digest := sha256.Sum256(buf[:])
	sk := new(big.Int).SetBytes(digest[:])
	sk.Mod(sk, fr.Modulus())
	if sk.Sign() == 0 {
		sk.SetInt64(1)
	}
	return FromSecret(v, sk)
}

// FromSecret computes the key pair for a given secret scalar.
func FromSecret(v bls.Variant, sk *big.Int) KeyPair {
	_, _, g1, g2 := bls12381.Generators()
	kp := KeyPair{Variant: v, Secret: new(big.Int).Set(sk)}
	switch v.PublicKeyGroup() {
	case bls.G1:
		var pk bls12381.G1Affine
		pk.ScalarMultiplication(&g1, sk)
		b := pk.Bytes()
		kp.PublicKey = b[:]
	case bls.G2:
		var pk bls12381.G2Affine
		pk.ScalarMultiplication(&g2, sk)
		b := pk.Bytes()
		kp.PublicKey = b[:]
	default:
		panic("blstest: invalid variant")
	}
	return kp
}

// Sign returns sk·H(msg) in the variant's signature group, compressed.
func (k KeyPair) Sign(msg []byte) []byte {
	switch k.Variant.SignatureGroup() {
	case bls.G1:
		h, err := bls12381.HashToG1(msg, k.Variant.DST())
		if err != nil {
			panic(err)
		}
		var sig bls12381.G1Affine
		sig.ScalarMultiplication(&h, k.Secret)
		b := sig.Bytes()
		return b[:]
	case bls.G2:
		h, err := bls12381.HashToG2(msg, k.Variant.DST())
		if err != nil {
			panic(err)
		}
		var sig bls12381.G2Affine
		sig.ScalarMultiplication(&h, k.Secret)
		b := sig.Bytes()
		return b[:]
	default:
		panic("blstest: invalid variant")
	}
}

// Payload signs msg and lays out the calldata for the key's variant.
func (k KeyPair) Payload(msg []byte) []byte {
	return k.Variant.Layout().Join(k.Sign(msg), k.PublicKey, msg)
}

// Flip returns a copy of b with one bit inverted.
func Flip(b []byte, bit int) []byte {
	out := append([]byte(nil), b...)
	out[bit/8] ^= 1 << (bit % 8)
	return out
}
