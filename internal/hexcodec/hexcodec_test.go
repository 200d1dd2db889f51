package hexcodec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	b := []byte{0xde, 0xad, 0xbe, 0xef}
	encoded := Encode(b)
	assert.Equal(t, "deadbeef", encoded)

	decoded, err := Decode(encoded, 4)
	require.NoError(t, err)
	assert.Equal(t, b, decoded)
}

func TestDecodeRejectsWrongLength(t *testing.T) {
	_, err := Decode("deadbeef", 3)
	assert.Error(t, err)
}

func TestDecodeRejectsInvalidHex(t *testing.T) {
	_, err := Decode("not-hex!", 4)
	assert.Error(t, err)
}
