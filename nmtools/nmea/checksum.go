package nmea

import (
	"fmt"
	"strings"
)

const (
	startMarker = '$'
	endMarker   = '*'
)

// Checksum computes the XOR checksum of the bytes between the first '$' and
// the first '*' of the sentence, formatted as two uppercase hex digits.
func Checksum(sentence string) (string, error) {
	if strings.TrimSpace(sentence) == "" {
		return "", fmt.Errorf("%w: no sentence provided", ErrMissingInput)
	}

	start := strings.IndexByte(sentence, startMarker)
	if start == -1 {
		return "", fmt.Errorf("%w: sentence is missing start character '%c'", ErrMalformedField, startMarker)
	}
	end := strings.IndexByte(sentence, endMarker)
	if end == -1 {
		return "", fmt.Errorf("%w: sentence is missing end character '%c'", ErrMalformedField, endMarker)
	}
	if end < start {
		return "", fmt.Errorf("%w: end character precedes start character", ErrMalformedField)
	}

	var sum byte
	for i := start + 1; i < end; i++ {
		sum ^= sentence[i]
	}
	return fmt.Sprintf("%02X", sum), nil
}
