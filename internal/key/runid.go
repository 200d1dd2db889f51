package key

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/spalhad/kvstore/internal/hexcodec"
)

// RunIdSize is the length of a RunId in bytes (128 bits).
const RunIdSize = 16

// RunId identifies one incarnation of a running node process. A fresh one
// is generated at startup and never persisted; the self-activation check
// compares it with the run id served at the node's configured address to
// confirm that address reaches this very process.
type RunId [RunIdSize]byte

// NewRunId generates a fresh, cryptographically random RunId. The 16 random
// bytes are sourced via google/uuid's CSPRNG-backed generator rather than
// crypto/rand directly, since uuid.NewRandom already exercises the PRNG this
// system otherwise has no use for elsewhere; the RFC 4122 version/variant
// bits it sets are immaterial here, as this type is consumed only as 128
// raw bits, never as a UUID.
func NewRunId() (RunId, error) {
	var r RunId
	u, err := uuid.NewRandom()
	if err != nil {
		return r, fmt.Errorf("runid: generating: %w", err)
	}
	copy(r[:], u[:])
	return r, nil
}

// RunIdFromHex decodes a lowercase hex string into a RunId.
func RunIdFromHex(s string) (RunId, error) {
	var r RunId
	b, err := hexcodec.Decode(s, RunIdSize)
	if err != nil {
		return r, fmt.Errorf("runid: %w", err)
	}
	copy(r[:], b)
	return r, nil
}

// String renders r as lowercase hex.
func (r RunId) String() string {
	return hexcodec.Encode(r[:])
}

// MarshalJSON renders r as a hex JSON string.
func (r RunId) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

// UnmarshalJSON parses a hex JSON string into r.
func (r *RunId) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := RunIdFromHex(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
