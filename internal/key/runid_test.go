package key

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRunIdIsFreshEachCall(t *testing.T) {
	a, err := NewRunId()
	require.NoError(t, err)
	b, err := NewRunId()
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestRunIdHexRoundTrip(t *testing.T) {
	r, err := NewRunId()
	require.NoError(t, err)

	encoded := r.String()
	assert.Len(t, encoded, RunIdSize*2)

	decoded, err := RunIdFromHex(encoded)
	require.NoError(t, err)
	assert.Equal(t, r, decoded)
}

func TestRunIdFromHexRejectsWrongLength(t *testing.T) {
	_, err := RunIdFromHex("ab")
	assert.Error(t, err)
}
