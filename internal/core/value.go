// Package core holds the transaction domain types and the parsing
// contracts for the two textual fields with nontrivial formats: monetary
// values and dd-mm-yyyy dates.
package core

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseValue converts a textual monetary amount to a float64.
//
// Non-numeric input is rejected with an error wrapping ErrInvalidValue,
// never coerced or defaulted: callers use this at every boundary where a
// value or a value bound enters the system, so a bad bound fails the
// operation instead of silently matching everything or nothing.
// Negative amounts are rejected with ErrNegativeValue.
func ParseValue(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidValue
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidValue, s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidValue, s)
	}
	if v < 0 {
		return 0, fmt.Errorf("%w: %s", ErrNegativeValue, s)
	}
	return v, nil
}

// FormatValue renders a value for the export format: plain decimal
// notation, shortest form that round-trips.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
