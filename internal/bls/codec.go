package bls

import "fmt"

// compressedFlag is the most significant bit of a compressed point encoding.
const compressedFlag = 0x80

// DecodePublicKey decodes a compressed public key for variant v.
//
// The encoding must have exactly v.PublicKeySize() bytes and decode to a
// non-identity point in the prime-order subgroup.
func DecodePublicKey(v Variant, b []byte) (PublicKey, error) {
	if !v.Valid() {
		return PublicKey{}, fmt.Errorf("%w: %d", ErrUnknownVariant, v)
	}
	p, err := decodePoint(FieldPublicKey, v.PublicKeyGroup(), b)
	if err != nil {
		return PublicKey{}, err
	}
	if p.isInfinity() {
		return PublicKey{}, &DecodeError{
			Field: FieldPublicKey,
			Kind:  InvalidPoint,
			Group: p.group,
			Got:   len(b),
			Want:  len(b),
			Err:   errIdentityKey,
		}
	}
	return PublicKey{variant: v, p: p}, nil
}

// DecodeSignature decodes a compressed signature for variant v.
func DecodeSignature(v Variant, b []byte) (Signature, error) {
	if !v.Valid() {
		return Signature{}, fmt.Errorf("%w: %d", ErrUnknownVariant, v)
	}
	p, err := decodePoint(FieldSignature, v.SignatureGroup(), b)
	if err != nil {
		return Signature{}, err
	}
	return Signature{variant: v, p: p}, nil
}

// decodePoint parses a compressed point. SetBytes checks that the point is on
// the curve and in the correct subgroup.
func decodePoint(f Field, g Group, b []byte) (point, error) {
	want := g.CompressedSize()
	if len(b) != want {
		return point{}, &DecodeError{Field: f, Kind: WrongLength, Group: g, Got: len(b), Want: want}
	}
	invalid := func(err error) error {
		return &DecodeError{Field: f, Kind: InvalidPoint, Group: g, Got: len(b), Want: want, Err: err}
	}
	if b[0]&compressedFlag == 0 {
		return point{}, invalid(errNotCompressed)
	}

	p := point{group: g}
	var err error
	switch g {
	case G1:
		_, err = p.g1.SetBytes(b)
	case G2:
		_, err = p.g2.SetBytes(b)
	}
	if err != nil {
		return point{}, invalid(err)
	}
	return p, nil
}
