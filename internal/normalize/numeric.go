package normalize

import (
	"regexp"
	"strconv"
	"strings"
)

// firstNumberRe extracts the first decimal number from a formatted string,
// e.g. "$150.25 - $155.00" -> "150.25". Tolerant of currency symbols, ranges
// and surrounding prose.
var firstNumberRe = regexp.MustCompile(`-?\d+(?:\.\d+)?`)

// ParseLoose converts a backend-supplied value to a float. It strips the
// known display suffixes ("x", "%"), a leading currency symbol, and
// thousands separators before parsing. A failed parse returns ok=false; it
// never panics or errors, so a malformed field degrades to a neutral
// classification downstream.
func ParseLoose(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimSuffix(s, "%")
	s = strings.TrimSuffix(s, "x")
	s = strings.TrimSuffix(s, "X")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)

	v, err := strconv.ParseFloat(s, 64)
	if err == nil {
		return v, true
	}
	return FirstNumber(s)
}

// FirstNumber returns the first decimal number embedded in s. Used for
// ranged strings like entry zones ("150.00 - 155.00" -> 150.00).
func FirstNumber(s string) (float64, bool) {
	m := firstNumberRe.FindString(s)
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
