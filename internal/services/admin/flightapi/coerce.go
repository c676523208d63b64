package flightapi

import (
	"strconv"
	"strings"
	"unicode"
)

// ParseLeadingInt reads the integer prefix of s the way an HTML form number
// is coerced before submission: leading whitespace and an optional sign are
// allowed, trailing junk is ignored and a 0x prefix selects hex.
// ok is false when no digits are found or the value overflows.
func ParseLeadingInt(s string) (value int, ok bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	sign := ""
	if s != "" && (s[0] == '+' || s[0] == '-') {
		if s[0] == '-' {
			sign = "-"
		}
		s = s[1:]
	}

	base := 10
	if len(s) > 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base = 16
		s = s[2:]
	}

	end := 0
	for end < len(s) && isDigit(s[end], base) {
		end++
	}
	if end == 0 {
		return 0, false
	}

	parsed, err := strconv.ParseInt(sign+s[:end], base, 0)
	if err != nil {
		return 0, false
	}
	return int(parsed), true
}

// ParseLeadingFloat reads the decimal prefix of s: "12.5abc" yields 12.5.
// ok is false when no number is found or the value is not finite.
func ParseLeadingFloat(s string) (value float64, ok bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	intDigits := 0
	for i < len(s) && isDigit(s[i], 10) {
		i++
		intDigits++
	}
	fracDigits := 0
	if i < len(s) && s[i] == '.' {
		j := i + 1
		for j < len(s) && isDigit(s[j], 10) {
			j++
			fracDigits++
		}
		if intDigits > 0 || fracDigits > 0 {
			i = j
		}
	}
	if intDigits == 0 && fracDigits == 0 {
		return 0, false
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		expStart := j
		for j < len(s) && isDigit(s[j], 10) {
			j++
		}
		if j > expStart {
			i = j
		}
	}

	parsed, err := strconv.ParseFloat(s[:i], 64)
	if err != nil {
		return 0, false
	}
	return parsed, true
}

func isDigit(c byte, base int) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case base == 16 && c >= 'a' && c <= 'f':
		return true
	case base == 16 && c >= 'A' && c <= 'F':
		return true
	}
	return false
}
