package bls

// Layout describes how a flat calldata buffer is split into the signature,
// the public key and the message. The message always takes the remainder.
//
//	VariantG2PubKey: pubkey[96] ++ sig[48] ++ msg
//	VariantG1PubKey: sig[96] ++ pubkey[48] ++ msg
type Layout struct {
	SignatureOffset int
	SignatureSize   int
	PublicKeyOffset int
	PublicKeySize   int
}

// Layout returns the calldata layout of v.
func (v Variant) Layout() Layout {
	switch v {
	case VariantG2PubKey:
		return Layout{
			PublicKeyOffset: 0,
			PublicKeySize:   v.PublicKeySize(),
			SignatureOffset: v.PublicKeySize(),
			SignatureSize:   v.SignatureSize(),
		}
	case VariantG1PubKey:
		return Layout{
			SignatureOffset: 0,
			SignatureSize:   v.SignatureSize(),
			PublicKeyOffset: v.SignatureSize(),
			PublicKeySize:   v.PublicKeySize(),
		}
	default:
		return Layout{}
	}
}

// MessageOffset is where the message starts, which is also the minimum
// payload length.
func (l Layout) MessageOffset() int { return l.SignatureSize + l.PublicKeySize }

// Split slices data into its fields. The returned slices alias data and are
// capped so appending to one never overwrites another. A payload of exactly
// MessageOffset bytes carries an empty message.
func (l Layout) Split(data []byte) (sig, key, msg []byte, err error) {
	need := l.MessageOffset()
	if need == 0 || len(data) < need {
		return nil, nil, nil, &LayoutError{Got: len(data), Want: need}
	}
	sigEnd := l.SignatureOffset + l.SignatureSize
	keyEnd := l.PublicKeyOffset + l.PublicKeySize
	sig = data[l.SignatureOffset:sigEnd:sigEnd]
	key = data[l.PublicKeyOffset:keyEnd:keyEnd]
	msg = data[need:len(data):len(data)]
	return sig, key, msg, nil
}

// Join builds a payload from its fields. Field lengths are not checked;
// Split on the result reports any mismatch.
func (l Layout) Join(sig, key, msg []byte) []byte {
	out := make([]byte, 0, len(sig)+len(key)+len(msg))
	if l.SignatureOffset < l.PublicKeyOffset {
		out = append(out, sig...)
		out = append(out, key...)
	} else {
		out = append(out, key...)
		out = append(out, sig...)
	}
	return append(out, msg...)
}
