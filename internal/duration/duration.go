// Package duration parses the non-standard duration strings accepted by
// this node's CLI flags: a decimal scalar followed by one of ns, us, mcs,
// ms, s, min.
package duration

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Parse parses input into a time.Duration. Suffixes are checked in a fixed
// order — ns, us, mcs, ms, s, min — because ns, us, mcs and ms all end in
// a bare "s"; checking each of them before "s" itself avoids "5ms" being
// misread as "5m" followed by a stray "s".
func Parse(input string) (time.Duration, error) {
	s := strings.TrimSpace(input)

	type unit struct {
		suffix string
		unit   time.Duration
	}
	units := []unit{
		{"ns", time.Nanosecond},
		{"us", time.Microsecond},
		{"mcs", time.Microsecond},
		{"ms", time.Millisecond},
		{"s", time.Second},
		{"min", time.Minute},
	}

	for _, u := range units {
		if !strings.HasSuffix(s, u.suffix) {
			continue
		}
		scalar := strings.TrimSpace(strings.TrimSuffix(s, u.suffix))
		value, err := strconv.ParseFloat(scalar, 64)
		if err != nil {
			return 0, fmt.Errorf("duration: invalid scalar %q: %w", scalar, err)
		}
		return time.Duration(value * float64(u.unit)), nil
	}

	return 0, fmt.Errorf("duration: unknown unit in %q", input)
}
