package nmea

import "strconv"

// IsNumeric reports whether the token is a plain base 10 decimal: an optional
// sign, digits and at most one decimal point. Exponents, NaN, Inf and
// surrounding whitespace are rejected.
func IsNumeric(token string) bool {
	if token == "" {
		return false
	}

	i := 0
	if token[0] == '+' || token[0] == '-' {
		i++
	}

	digits, points := 0, 0
	for ; i < len(token); i++ {
		switch c := token[i]; {
		case c >= '0' && c <= '9':
			digits++
		case c == '.':
			points++
			if points > 1 {
				return false
			}
		default:
			return false
		}
	}

	return digits > 0
}

// parseNumeric parses a token already accepted by IsNumeric.
func parseNumeric(token string) (float64, bool) {
	if !IsNumeric(token) {
		return 0, false
	}
	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
