// Package hexcodec is a thin adapter over encoding/hex for the fixed-width
// identifiers (Key, RunId) used across the node, kept separate from
// internal/key since both Key and RunId share the same length-checked
// round trip.
package hexcodec

import (
	"encoding/hex"
	"fmt"
)

// Encode lower-cases the hex rendering of b, matching the wire format used
// by every identifier in this system.
func Encode(b []byte) string {
	return hex.EncodeToString(b)
}

// Decode parses a hex string into exactly want bytes, rejecting any input
// whose decoded length does not match.
func Decode(s string, want int) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, err
	}
	if len(b) != want {
		return nil, &LengthError{Want: want, Got: len(b)}
	}
	return b, nil
}

// LengthError reports a hex string that decoded to the wrong byte length.
type LengthError struct {
	Want, Got int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("hexcodec: expected %d bytes, got %d", e.Want, e.Got)
}
