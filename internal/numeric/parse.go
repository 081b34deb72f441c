// Package numeric parses user-entered quantity text.
//
// Fields in a footprint session keep the raw text the user typed (including
// pt-BR formatting such as "1.234,56"); every numeric value is derived on
// demand through Parse and never stored separately.
package numeric

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Parse converts raw quantity text into a float64.
//
// Two formats are accepted: plain decimal with a dot separator ("1234.56")
// and pt-BR regional format with a comma decimal separator and dots as
// thousands separators ("1.234,56"). Whitespace is stripped anywhere in the
// input. Empty or unparseable text yields NaN, never an error or panic.
func Parse(raw string) float64 {
	s := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw)

	if s == "" {
		return math.NaN()
	}

	// A comma marks pt-BR formatting: dots are thousands separators.
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// IsPositive reports whether raw parses to a finite value greater than zero.
func IsPositive(raw string) bool {
	v := Parse(raw)
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}

// PositiveOr parses raw and returns it when finite and positive, otherwise
// the fallback. Used for global factors that must never be zero or negative.
func PositiveOr(raw string, fallback float64) float64 {
	v := Parse(raw)
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return fallback
	}
	return v
}
