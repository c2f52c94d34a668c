package bls_test

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/CosmWasm/blsverify/internal/bls"
)

// Produced by an independent BLS12-381 implementation: a G1 public key and a
// G2 signature over "foobar".
const (
	foobarSigHex = "a388ba9227c6f4d08954d017956b3dd947e5a18a9df064d137417afa8e8809e848af1ad8e47d887820e86a6a50ea0ba001fa422935358c7e0eec86077613406e69953688490437408d08a6995ec57dfccbba0c0f2ce42e8d18359ac0148fc915"
	foobarKeyHex = "a5acc7f57b7df6ade2b7630e09a925b2ef10fb8c977aa1656b526db0d02b3998055c74f74fc79034678c352ddf531591"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestReferenceVectorG1PubKey(t *testing.T) {
	v := bls.VariantG1PubKey
	sig := mustHex(t, foobarSigHex)
	key := mustHex(t, foobarKeyHex)
	msg := []byte("foobar")

	require.NoError(t, bls.VerifyBLSSignature(v, sig, msg, key))

	verifier, err := bls.New(v)
	require.NoError(t, err)
	require.NoError(t, verifier.VerifyPayload(v.Layout().Join(sig, key, msg)))

	tampered := append([]byte(nil), sig...)
	tampered[len(tampered)-1] ^= 0x01
	require.Error(t, bls.VerifyBLSSignature(v, tampered, msg, key))

	require.ErrorIs(t, bls.VerifyBLSSignature(v, sig, []byte("foobaz"), key), bls.ErrVerificationFailed)
}

// Deserialization vectors from the Ethereum consensus BLS test suite.
var g1Encodings = []struct {
	name  string
	hex   string
	valid bool
}{
	{"correct point", "a491d1b0ecd9bb917989f0e74f0dea0422eac4a873e5e2644f368dffb9a6e20fd6e10c1b77654d067c0618f6e5a7f79a", true},
	{"infinity with false b flag", "800000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000", false},
	{"infinity with true b flag and x set", "c01000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000", false},
	{"not in G1", "8123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef", false},
	{"not on curve", "8123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcde0", false},
	{"too few bytes", "9a0111ea397fe69a4b1ba7b6434bacd764774b84f38512bf6730d2a0f6b0f6241eabfffeb153ffffb9feffffffffaa", false},
	{"too many bytes", "9a0111ea397fe69a4b1ba7b6434bacd764774b84f38512bf6730d2a0f6b0f6241eabfffeb153ffffb9feffffffffaaa900", false},
	{"b flag and a flag", "e00000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000", false},
	{"b flag and x nonzero", "c123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef", false},
	{"mask bits 001", "2491d1b0ecd9bb917989f0e74f0dea0422eac4a873e5e2644f368dffb9a6e20fd6e10c1b77654d067c0618f6e5a7f79a", false},
	{"mask bits 011", "6491d1b0ecd9bb917989f0e74f0dea0422eac4a873e5e2644f368dffb9a6e20fd6e10c1b77654d067c0618f6e5a7f79a", false},
	{"mask bits 111", "e491d1b0ecd9bb917989f0e74f0dea0422eac4a873e5e2644f368dffb9a6e20fd6e10c1b77654d067c0618f6e5a7f79a", false},
	{"wrong c flag", "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef", false},
	{"x equal to modulus", "9a0111ea397fe69a4b1ba7b6434bacd764774b84f38512bf6730d2a0f6b0f6241eabfffeb153ffffb9feffffffffaaab", false},
	{"x greater than modulus", "9a0111ea397fe69a4b1ba7b6434bacd764774b84f38512bf6730d2a0f6b0f6241eabfffeb153ffffb9feffffffffaaac", false},
}

var g2Encodings = []struct {
	name  string
	hex   string
	valid bool
}{
	{"correct point", "b2cc74bc9f089ed9764bbceac5edba416bef5e73701288977b9cac1ccb6964269d4ebf78b4e8aa7792ba09d3e49c8e6a1351bdf582971f796bbaf6320e81251c9d28f674d720cca07ed14596b96697cf18238e0e03ebd7fc1353d885a39407e0", true},
	{"infinity with false b flag", "800000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000", false},
	{"infinity with true b flag and x set", "c01000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000", false},
	{"not in G2", "8123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef", false},
	{"not on curve", "8123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcde0", false},
	{"too few bytes", "8123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcd", false},
	{"too many bytes", "8123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdefff", false},
	{"b flag and a flag", "e00000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000", false},
	{"b flag and x nonzero", "c123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef", false},
	{"mask bits 001", "32cc74bc9f089ed9764bbceac5edba416bef5e73701288977b9cac1ccb6964269d4ebf78b4e8aa7792ba09d3e49c8e6a1351bdf582971f796bbaf6320e81251c9d28f674d720cca07ed14596b96697cf18238e0e03ebd7fc1353d885a39407e0", false},
	{"mask bits 011", "72cc74bc9f089ed9764bbceac5edba416bef5e73701288977b9cac1ccb6964269d4ebf78b4e8aa7792ba09d3e49c8e6a1351bdf582971f796bbaf6320e81251c9d28f674d720cca07ed14596b96697cf18238e0e03ebd7fc1353d885a39407e0", false},
	{"mask bits 111", "f2cc74bc9f089ed9764bbceac5edba416bef5e73701288977b9cac1ccb6964269d4ebf78b4e8aa7792ba09d3e49c8e6a1351bdf582971f796bbaf6320e81251c9d28f674d720cca07ed14596b96697cf18238e0e03ebd7fc1353d885a39407e0", false},
	{"wrong c flag", "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef", false},
	{"x im equal to modulus", "9a0111ea397fe69a4b1ba7b6434bacd764774b84f38512bf6730d2a0f6b0f6241eabfffeb153ffffb9feffffffffaaab000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000", false},
	{"x im greater than modulus", "9a0111ea397fe69a4b1ba7b6434bacd764774b84f38512bf6730d2a0f6b0f6241eabfffeb153ffffb9feffffffffaaac000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000", false},
	{"x re equal to modulus", "8000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000001a0111ea397fe69a4b1ba7b6434bacd764774b84f38512bf6730d2a0f6b0f6241eabfffeb153ffffb9feffffffffaaab", false},
	{"x re greater than modulus", "8000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000001a0111ea397fe69a4b1ba7b6434bacd764774b84f38512bf6730d2a0f6b0f6241eabfffeb153ffffb9feffffffffaaac", false},
}

// requireDecodeFailure checks that an invalid encoding of the expected size is
// reported as an invalid point and anything else as a wrong length.
func requireDecodeFailure(t *testing.T, err error, got, want int) {
	t.Helper()
	if got != want {
		require.ErrorIs(t, err, bls.ErrWrongLength)
		return
	}
	require.ErrorIs(t, err, bls.ErrInvalidPoint)
}

func TestDecodeG1Encodings(t *testing.T) {
	for _, tc := range g1Encodings {
		t.Run(tc.name, func(t *testing.T) {
			b := mustHex(t, tc.hex)

			// G1 holds signatures of VariantG2PubKey and keys of VariantG1PubKey.
			sig, err := bls.DecodeSignature(bls.VariantG2PubKey, b)
			if tc.valid {
				require.NoError(t, err)
				require.Equal(t, b, sig.Bytes())
			} else {
				requireDecodeFailure(t, err, len(b), 48)
			}

			key, err := bls.DecodePublicKey(bls.VariantG1PubKey, b)
			if tc.valid {
				require.NoError(t, err)
				require.Equal(t, b, key.Bytes())
			} else {
				requireDecodeFailure(t, err, len(b), 48)
			}
		})
	}
}

func TestDecodeG2Encodings(t *testing.T) {
	for _, tc := range g2Encodings {
		t.Run(tc.name, func(t *testing.T) {
			b := mustHex(t, tc.hex)

			sig, err := bls.DecodeSignature(bls.VariantG1PubKey, b)
			if tc.valid {
				require.NoError(t, err)
				require.Equal(t, b, sig.Bytes())
			} else {
				requireDecodeFailure(t, err, len(b), 96)
			}

			key, err := bls.DecodePublicKey(bls.VariantG2PubKey, b)
			if tc.valid {
				require.NoError(t, err)
				require.Equal(t, b, key.Bytes())
			} else {
				requireDecodeFailure(t, err, len(b), 96)
			}
		})
	}
}

func TestDecodeCanonicalInfinity(t *testing.T) {
	// The canonical identity encoding decodes as a signature but is never a
	// usable public key.
	g1Inf := append([]byte{0xc0}, make([]byte, 47)...)
	g2Inf := append([]byte{0xc0}, make([]byte, 95)...)

	_, err := bls.DecodeSignature(bls.VariantG2PubKey, g1Inf)
	require.NoError(t, err)
	_, err = bls.DecodeSignature(bls.VariantG1PubKey, g2Inf)
	require.NoError(t, err)

	_, err = bls.DecodePublicKey(bls.VariantG1PubKey, g1Inf)
	require.ErrorIs(t, err, bls.ErrInvalidPoint)
	_, err = bls.DecodePublicKey(bls.VariantG2PubKey, g2Inf)
	require.ErrorIs(t, err, bls.ErrInvalidPoint)
}
