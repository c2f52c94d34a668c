package bls

import (
	"fmt"
	"strings"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// Domain separation tags of the Ethereum consensus BLS ciphersuites.
const (
	// DSTG1 is used when messages are hashed into G1 (signatures in G1).
	DSTG1 = "BLS_SIG_BLS12381G1_XMD:SHA-256_SSWU_RO_NUL_"
	// DSTG2 is used when messages are hashed into G2 (signatures in G2).
	DSTG2 = "BLS_SIG_BLS12381G2_XMD:SHA-256_SSWU_RO_POP_"
)

var (
	dstG1 = []byte(DSTG1)
	dstG2 = []byte(DSTG2)
)

// Group identifies one of the two BLS12-381 source groups.
type Group uint8

const (
	G1 Group = iota + 1
	G2
)

// CompressedSize returns the length of the compressed point encoding.
func (g Group) CompressedSize() int {
	switch g {
	case G1:
		return bls12381.SizeOfG1AffineCompressed
	case G2:
		return bls12381.SizeOfG2AffineCompressed
	default:
		return 0
	}
}

func (g Group) String() string {
	switch g {
	case G1:
		return "G1"
	case G2:
		return "G2"
	default:
		return fmt.Sprintf("Group(%d)", uint8(g))
	}
}

// Variant selects which group holds public keys and which holds signatures.
// The zero value is not a valid variant.
type Variant uint8

const (
	// VariantG2PubKey keeps public keys in G2 (96 bytes) and signatures in G1 (48 bytes).
	VariantG2PubKey Variant = iota + 1
	// VariantG1PubKey keeps public keys in G1 (48 bytes) and signatures in G2 (96 bytes).
	VariantG1PubKey
)

// Valid reports whether v is one of the known variants.
func (v Variant) Valid() bool {
	return v == VariantG2PubKey || v == VariantG1PubKey
}

// PublicKeyGroup returns the group public keys live in.
func (v Variant) PublicKeyGroup() Group {
	switch v {
	case VariantG2PubKey:
		return G2
	case VariantG1PubKey:
		return G1
	default:
		return 0
	}
}

// SignatureGroup returns the group signatures and hashed messages live in.
func (v Variant) SignatureGroup() Group {
	switch v {
	case VariantG2PubKey:
		return G1
	case VariantG1PubKey:
		return G2
	default:
		return 0
	}
}

func (v Variant) PublicKeySize() int { return v.PublicKeyGroup().CompressedSize() }

func (v Variant) SignatureSize() int { return v.SignatureGroup().CompressedSize() }

// DST returns a copy of the domain separation tag used to hash messages.
func (v Variant) DST() []byte {
	return append([]byte(nil), v.dst()...)
}

func (v Variant) dst() []byte {
	switch v.SignatureGroup() {
	case G1:
		return dstG1
	case G2:
		return dstG2
	default:
		return nil
	}
}

func (v Variant) String() string {
	switch v {
	case VariantG2PubKey:
		return "g2-pubkey"
	case VariantG1PubKey:
		return "g1-pubkey"
	default:
		return fmt.Sprintf("Variant(%d)", uint8(v))
	}
}

// ParseVariant parses the names accepted on the command line and in config.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "g2-pubkey", "a", "minimal-pubkey-size":
		return VariantG2PubKey, nil
	case "g1-pubkey", "b", "minimal-signature-size":
		return VariantG1PubKey, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownVariant, s)
	}
}
