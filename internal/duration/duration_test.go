package duration

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSuffixPrecedence(t *testing.T) {
	cases := []struct {
		input string
		want  time.Duration
	}{
		{"5ns", 5 * time.Nanosecond},
		{"5us", 5 * time.Microsecond},
		{"5mcs", 5 * time.Microsecond},
		{"5ms", 5 * time.Millisecond},
		{"5s", 5 * time.Second},
		{"5min", 5 * time.Minute},
		{"90s", 90 * time.Second},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := Parse(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseRejectsUnknownUnit(t *testing.T) {
	_, err := Parse("5days")
	assert.Error(t, err)
}

func TestParseRejectsBadScalar(t *testing.T) {
	_, err := Parse("abcms")
	assert.Error(t, err)
}
