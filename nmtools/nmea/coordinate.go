package nmea

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	maxLatitudeToken  = 9000  // 90°00.0'
	maxLongitudeToken = 18000 // 180°00.0'

	latitudeDegreeWidth  = 2 // ddmm.mmm
	longitudeDegreeWidth = 3 // dddmm.mmm
)

// IsLatitude reports whether the token is a latitude in ddmm.mmm format.
func IsLatitude(token string) bool {
	v, ok := parseNumeric(token)
	return ok && math.Abs(v) <= maxLatitudeToken
}

// IsLongitude reports whether the token is a longitude in dddmm.mmm format.
func IsLongitude(token string) bool {
	v, ok := parseNumeric(token)
	return ok && math.Abs(v) <= maxLongitudeToken
}

// IsLatitudeHemisphere reports whether the token is N or S, ignoring case
// and surrounding spaces.
func IsLatitudeHemisphere(token string) bool {
	h := normalize(token)
	return h == "N" || h == "S"
}

// IsLongitudeHemisphere reports whether the token is E or W, ignoring case
// and surrounding spaces.
func IsLongitudeHemisphere(token string) bool {
	h := normalize(token)
	return h == "E" || h == "W"
}

// IsGPSLock reports whether the status token is A (active fix).
func IsGPSLock(token string) bool {
	return normalize(token) == "A"
}

// DecodeLatitude converts a ddmm.mmm token and its hemisphere to signed
// decimal degrees, south being negative.
func DecodeLatitude(token, hemisphere string) (float64, error) {
	if !IsLatitude(token) {
		return 0, fmt.Errorf("%w: invalid latitude %q", ErrMalformedField, token)
	}
	if !IsLatitudeHemisphere(hemisphere) {
		return 0, fmt.Errorf("%w: invalid latitude hemisphere %q", ErrMalformedField, hemisphere)
	}

	lat, err := degreesMinutes(token, latitudeDegreeWidth)
	if err != nil || math.Abs(lat) > 90 {
		return 0, fmt.Errorf("%w: latitude %q out of range", ErrMalformedField, token)
	}
	if normalize(hemisphere) == "S" {
		lat = -lat
	}
	return lat, nil
}

// DecodeLongitude converts a dddmm.mmm token and its hemisphere to signed
// decimal degrees, west being negative.
func DecodeLongitude(token, hemisphere string) (float64, error) {
	if !IsLongitude(token) {
		return 0, fmt.Errorf("%w: invalid longitude %q", ErrMalformedField, token)
	}
	if !IsLongitudeHemisphere(hemisphere) {
		return 0, fmt.Errorf("%w: invalid longitude hemisphere %q", ErrMalformedField, hemisphere)
	}

	lon, err := degreesMinutes(token, longitudeDegreeWidth)
	if err != nil || math.Abs(lon) > 180 {
		return 0, fmt.Errorf("%w: longitude %q out of range", ErrMalformedField, token)
	}
	if normalize(hemisphere) == "W" {
		lon = -lon
	}
	return lon, nil
}

// degreesMinutes splits the token after a fixed width degree prefix and
// returns degrees + minutes/60. The sign is carried by the hemisphere, so a
// signed token cannot be split.
func degreesMinutes(token string, width int) (float64, error) {
	if len(token) <= width {
		return 0, fmt.Errorf("token %q too short", token)
	}
	if token[0] == '-' || token[0] == '+' {
		return 0, fmt.Errorf("token %q is signed", token)
	}
	deg, err := strconv.ParseFloat(token[:width], 64)
	if err != nil {
		return 0, err
	}
	min, err := strconv.ParseFloat(token[width:], 64)
	if err != nil {
		return 0, err
	}
	return deg + min/60, nil
}

func normalize(token string) string {
	return strings.ToUpper(strings.TrimSpace(token))
}
