package domain

import (
	"math"
	"strconv"
	"strings"
)

// ParseRating interprets a rating field. It reports ok only when the text
// parses to a finite number strictly greater than zero; everything else
// (empty, "abc", "0", NaN) is excluded rather than defaulted, so bad rows
// never drag an average toward zero.
func ParseRating(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, false
	}
	return v, true
}

// ParseCount strips all non-digit characters from a review-count field and
// parses the remainder, defaulting to 0. "1,024 reviews" becomes 1024.
func ParseCount(s string) int {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0
	}
	n, err := strconv.Atoi(b.String())
	if err != nil {
		return 0
	}
	return n
}

// ParsePrice converts a formatted price like "₱7,395" to its numeric value,
// keeping only digits and dots. Empty or unparsable text yields 0.
func ParsePrice(s string) float64 {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0
	}
	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return v
}
