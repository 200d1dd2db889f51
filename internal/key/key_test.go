package key

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyHexRoundTrip(t *testing.T) {
	k, err := Hash("hello world")
	require.NoError(t, err)

	encoded := k.String()
	assert.Len(t, encoded, Size*2)

	decoded, err := FromHex(encoded)
	require.NoError(t, err)
	assert.Equal(t, k, decoded)
}

func TestKeyFromHexRejectsWrongLength(t *testing.T) {
	_, err := FromHex("abcd")
	assert.Error(t, err)
}

func TestKeyFromBytesRejectsWrongLength(t *testing.T) {
	_, err := FromBytes([]byte{1, 2, 3})
	assert.Error(t, err)
}

func TestKeyHashIsDeterministic(t *testing.T) {
	a, err := Hash(map[string]string{"id": "widget"})
	require.NoError(t, err)
	b, err := Hash(map[string]string{"id": "widget"})
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestKeyJSONRoundTrip(t *testing.T) {
	k, err := Hash("json-roundtrip")
	require.NoError(t, err)

	data, err := json.Marshal(k)
	require.NoError(t, err)

	var decoded Key
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, k, decoded)
}

func TestPartitionIsStable(t *testing.T) {
	k, err := Hash("partition-stability")
	require.NoError(t, err)

	first := k.Partition(5)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, k.Partition(5))
	}
	assert.GreaterOrEqual(t, first, 0)
	assert.Less(t, first, 5)
}

func TestPartitionSpreadsAcrossRange(t *testing.T) {
	seen := make(map[int]bool)
	for i := 0; i < 200; i++ {
		k, err := Hash(i)
		require.NoError(t, err)
		seen[k.Partition(8)] = true
	}
	assert.Greater(t, len(seen), 1, "expected partitions to spread across more than one slot")
}

func TestPartitionPanicsOnNonPositiveN(t *testing.T) {
	k, err := Hash("panic-case")
	require.NoError(t, err)
	assert.Panics(t, func() { k.Partition(0) })
}

// TestPartitionIsLittleEndian pins a key whose first 8 bytes are the
// little-endian encoding of 0x1234567890ABCDEF (all other bytes zero), so
// Partition's value is exactly that integer. 0x1234567890ABCDEF mod 5 == 0
// and mod 7 == 4. Since 256 ≡ 1 (mod 5), the mod-5 result is the same under
// either byte order; the mod-7 check is the one a big-endian reading would
// fail (it gives 0).
func TestPartitionIsLittleEndian(t *testing.T) {
	b := make([]byte, Size)
	copy(b, []byte{0xEF, 0xCD, 0xAB, 0x90, 0x78, 0x56, 0x34, 0x12})
	k, err := FromBytes(b)
	require.NoError(t, err)
	assert.Equal(t, 0, k.Partition(5))
	assert.Equal(t, 4, k.Partition(7))
}

// TestPartitionWeightsLowByteFirst isolates a single low-order byte to
// catch any accidental byte-order reversal: under little-endian weighting
// it contributes its raw value regardless of n, while under big-endian
// weighting it would be scaled by 256^(Size-1) and land elsewhere.
func TestPartitionWeightsLowByteFirst(t *testing.T) {
	b := make([]byte, Size)
	b[0] = 1
	k, err := FromBytes(b)
	require.NoError(t, err)
	assert.Equal(t, 1, k.Partition(2))
	assert.Equal(t, 1, k.Partition(7))
}
