package types

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
)

// ChecksumLen is the length of a checksum in bytes.
const ChecksumLen = 32

// ErrInvalidChecksum is returned when bytes or hex do not form a checksum.
var ErrInvalidChecksum = errors.New("invalid checksum")

// Checksum identifies stored verifier code. It is the SHA-256 hash of the
// Wasm bytecode.
type Checksum [ChecksumLen]byte

// ChecksumOf hashes code.
func ChecksumOf(code []byte) Checksum {
	return sha256.Sum256(code)
}

func (cs Checksum) String() string {
	return hex.EncodeToString(cs[:])
}

func (cs Checksum) Bytes() []byte {
	return cs[:]
}

func (cs Checksum) MarshalJSON() ([]byte, error) {
	return json.Marshal(cs.String())
}

func (cs *Checksum) UnmarshalJSON(input []byte) error {
	var s string
	if err := json.Unmarshal(input, &s); err != nil {
		return err
	}
	parsed, err := ParseChecksum(s)
	if err != nil {
		return err
	}
	*cs = parsed
	return nil
}

// NewChecksum copies b into a Checksum.
func NewChecksum(b []byte) (Checksum, error) {
	if len(b) != ChecksumLen {
		return Checksum{}, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidChecksum, len(b), ChecksumLen)
	}
	var cs Checksum
	copy(cs[:], b)
	return cs, nil
}

// ParseChecksum decodes a hex checksum as printed by String.
func ParseChecksum(s string) (Checksum, error) {
	data, err := hex.DecodeString(s)
	if err != nil {
		return Checksum{}, fmt.Errorf("%w: %v", ErrInvalidChecksum, err)
	}
	return NewChecksum(data)
}
