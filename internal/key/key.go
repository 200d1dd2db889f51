// Package key implements the fixed-width identifiers used to address and
// partition values: Key (256 bits) and RunId (128 bits).
package key

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/spalhad/kvstore/internal/hexcodec"
	"golang.org/x/crypto/sha3"
)

// Size is the length of a Key in bytes (256 bits).
const Size = 32

// Key addresses a value in the store. It is always derived either from raw
// bytes supplied by a caller who already has a 256-bit identifier, or by
// hashing an arbitrary JSON-serializable value with SHA3-256.
type Key [Size]byte

// FromBytes builds a Key from exactly Size raw bytes.
func FromBytes(b []byte) (Key, error) {
	var k Key
	if len(b) != Size {
		return k, fmt.Errorf("key: expected %d bytes, got %d", Size, len(b))
	}
	copy(k[:], b)
	return k, nil
}

// FromHex decodes a lowercase hex string into a Key.
func FromHex(s string) (Key, error) {
	var k Key
	b, err := hexcodec.Decode(s, Size)
	if err != nil {
		return k, fmt.Errorf("key: %w", err)
	}
	copy(k[:], b)
	return k, nil
}

// Hash derives a Key from an arbitrary value by hashing its canonical JSON
// encoding with SHA3-256. This is the constructor used by clients that
// address values by an application-level identifier rather than a raw key.
func Hash(v any) (Key, error) {
	var k Key
	b, err := json.Marshal(v)
	if err != nil {
		return k, fmt.Errorf("key: hashing input: %w", err)
	}
	sum := sha3.Sum256(b)
	return Key(sum), nil
}

// String renders k as lowercase hex.
func (k Key) String() string {
	return hexcodec.Encode(k[:])
}

// Bytes returns a copy of k's underlying bytes.
func (k Key) Bytes() []byte {
	out := make([]byte, Size)
	copy(out, k[:])
	return out
}

// MarshalJSON renders k as a hex JSON string.
func (k Key) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// UnmarshalJSON parses a hex JSON string into k.
func (k *Key) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := FromHex(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Partition returns the index in [0, n) of the replica window this key
// starts at, computed as the key's little-endian integer value modulo n.
// n must be positive.
func (k Key) Partition(n int) int {
	if n <= 0 {
		panic("key: Partition requires n > 0")
	}
	le := make([]byte, Size)
	for i, b := range k {
		le[Size-1-i] = b
	}
	value := new(big.Int).SetBytes(le)
	mod := new(big.Int).Mod(value, big.NewInt(int64(n)))
	return int(mod.Int64())
}
