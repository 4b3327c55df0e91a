package counter

import (
	"strconv"
	"strings"
)

// Bound is the inclusive upper limit of a random draw.
type Bound int

const (
	DefaultBound Bound = 10

	// HomeBound is the bound the home page asks for when seeding its link.
	HomeBound Bound = 20
)

// ParseBound resolves the maxNumber query values. Anything other than a
// single value with a leading integer falls back to DefaultBound.
func ParseBound(values []string) Bound {
	if len(values) != 1 {
		return DefaultBound
	}

	n, ok := parseLeadingInt(values[0])
	if !ok {
		return DefaultBound
	}

	return Bound(n)
}

// parseLeadingInt reads an optionally signed run of decimal digits at the
// start of s, ignoring surrounding whitespace and whatever follows the
// digits: "12abc" is 12, "7.9" is 7.
func parseLeadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}

	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}

	if end == digits {
		return 0, false
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}

	return n, true
}
