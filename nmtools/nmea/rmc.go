package nmea

import (
	"fmt"
	"strings"
	"time"

	"nmea-tools/nmtools/convert"
	"nmea-tools/nmtools/geo"
)

// TypeRMC is the tag of the recommended minimum specific GPS data sentence.
const TypeRMC = "GPRMC"

const (
	fieldSeparator = ','
	rmcFieldCount  = 12
)

// RMC field positions.
const (
	rmcTag = iota
	rmcTime
	rmcStatus
	rmcLatitude
	rmcLatitudeHemisphere
	rmcLongitude
	rmcLongitudeHemisphere
	rmcSpeed
	rmcBearing
	rmcDate
	rmcMagVar
	rmcChecksum
)

// Record is a decoded GPRMC sentence. It is immutable once decoded.
type Record struct {
	position   geo.Coordinate
	bearing    float64
	speedKnots float64
	timestamp  time.Time
	magVar     float64
	status     string
}

// Type returns TypeRMC.
func (r *Record) Type() string { return TypeRMC }

// Position returns the decoded coordinate in signed decimal degrees.
func (r *Record) Position() geo.Coordinate { return r.position }

// Bearing returns the course over ground in degrees.
func (r *Record) Bearing() float64 { return r.bearing }

// SpeedKnots returns the speed over ground in knots.
func (r *Record) SpeedKnots() float64 { return r.speedKnots }

// SpeedKmh returns the speed over ground in km/h.
func (r *Record) SpeedKmh() float64 { return convert.KnotsToKmh(r.speedKnots) }

// Timestamp returns the UTC date and time of the fix.
func (r *Record) Timestamp() time.Time { return r.timestamp }

// MagVar returns the magnetic variation in degrees, 0 when not reported.
func (r *Record) MagVar() float64 { return r.magVar }

// Status returns the raw GPS lock field (A = active, V = void).
func (r *Record) Status() string { return r.status }

// Active reports whether the receiver had a GPS lock.
func (r *Record) Active() bool { return IsGPSLock(r.status) }

// RMCParser validates and decodes GPRMC sentences, e.g.
//
//	$GPRMC,084752.000,A,5152.4175,N,00832.5083,W,11.90,62.01,231110,,*12
//
// Validate and Decode share the same checks: a sentence is valid exactly when
// it decodes. Speed and bearing must be numeric; magnetic variation may be
// blank, and its E/W direction may precede the end marker (west is negative).
// The GPS lock field is not checked, a void fix decodes and can be
// told apart with Record.Active.
type RMCParser struct{}

// Validate reports whether the sentence is a well formed GPRMC sentence.
func (p RMCParser) Validate(sentence string) bool {
	_, err := DecodeRMC(sentence)
	return err == nil
}

// Decode decodes a GPRMC sentence into a *Record.
func (p RMCParser) Decode(sentence string) (Sentence, error) {
	r, err := DecodeRMC(sentence)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// DecodeRMC decodes a GPRMC sentence. Checks run in field order and the
// first failing one is reported.
func DecodeRMC(sentence string) (*Record, error) {
	if strings.TrimSpace(sentence) == "" {
		return nil, fmt.Errorf("%w: no sentence provided", ErrMissingInput)
	}
	if strings.IndexByte(sentence, fieldSeparator) == -1 {
		return nil, fmt.Errorf("%w: sentence has no field separator", ErrMalformedField)
	}

	f := strings.Split(sentence, string(fieldSeparator))
	if len(f) != rmcFieldCount {
		return nil, fmt.Errorf("%w: expected %d fields, got %d", ErrMalformedField, rmcFieldCount, len(f))
	}
	if strings.ToUpper(f[rmcTag]) != string(startMarker)+TypeRMC {
		return nil, fmt.Errorf("%w: invalid sentence type %q", ErrMalformedField, f[rmcTag])
	}
	if !IsTime(f[rmcTime]) {
		return nil, fmt.Errorf("%w: invalid time %q", ErrMalformedField, f[rmcTime])
	}
	if !IsLatitude(f[rmcLatitude]) {
		return nil, fmt.Errorf("%w: invalid latitude %q", ErrMalformedField, f[rmcLatitude])
	}
	if !IsLatitudeHemisphere(f[rmcLatitudeHemisphere]) {
		return nil, fmt.Errorf("%w: invalid latitude hemisphere %q", ErrMalformedField, f[rmcLatitudeHemisphere])
	}
	if !IsLongitude(f[rmcLongitude]) {
		return nil, fmt.Errorf("%w: invalid longitude %q", ErrMalformedField, f[rmcLongitude])
	}
	if !IsLongitudeHemisphere(f[rmcLongitudeHemisphere]) {
		return nil, fmt.Errorf("%w: invalid longitude hemisphere %q", ErrMalformedField, f[rmcLongitudeHemisphere])
	}
	speed, ok := parseNumeric(f[rmcSpeed])
	if !ok {
		return nil, fmt.Errorf("%w: invalid speed %q", ErrMalformedField, f[rmcSpeed])
	}
	bearing, ok := parseNumeric(f[rmcBearing])
	if !ok {
		return nil, fmt.Errorf("%w: invalid bearing %q", ErrMalformedField, f[rmcBearing])
	}
	if !IsShortDate(f[rmcDate]) {
		return nil, fmt.Errorf("%w: invalid date %q", ErrMalformedField, f[rmcDate])
	}
	magVar, err := optionalNumeric(f[rmcMagVar])
	if err != nil {
		return nil, fmt.Errorf("%w: invalid magnetic variation %q", ErrMalformedField, f[rmcMagVar])
	}
	direction, checksum := splitMagVarDirection(f[rmcChecksum])
	if err := verifyChecksum(sentence, checksum); err != nil {
		return nil, err
	}
	if direction == "W" {
		magVar = -magVar
	}

	ts, err := DecodeTimestamp(f[rmcDate], f[rmcTime])
	if err != nil {
		return nil, err
	}
	lat, err := DecodeLatitude(f[rmcLatitude], f[rmcLatitudeHemisphere])
	if err != nil {
		return nil, err
	}
	lon, err := DecodeLongitude(f[rmcLongitude], f[rmcLongitudeHemisphere])
	if err != nil {
		return nil, err
	}

	return &Record{
		position:   geo.Coordinate{Latitude: lat, Longitude: lon},
		bearing:    bearing,
		speedKnots: speed,
		timestamp:  ts,
		magVar:     magVar,
		status:     f[rmcStatus],
	}, nil
}

// optionalNumeric parses a field that may be left blank, blank meaning 0.
func optionalNumeric(token string) (float64, error) {
	if strings.TrimSpace(token) == "" {
		return 0, nil
	}
	v, ok := parseNumeric(token)
	if !ok {
		return 0, fmt.Errorf("not a number: %q", token)
	}
	return v, nil
}

// splitMagVarDirection separates the optional E/W magnetic variation
// direction that some receivers put in front of the end marker.
func splitMagVarDirection(field string) (string, string) {
	if len(field) > 0 && field[0] != endMarker {
		if d := normalize(field[:1]); d == "E" || d == "W" {
			return d, field[1:]
		}
	}
	return "", field
}

// verifyChecksum compares the checksum field, end marker included, with the
// checksum computed over the sentence.
func verifyChecksum(sentence, field string) error {
	if len(field) < 2 || field[0] != endMarker {
		return fmt.Errorf("%w: invalid checksum field %q", ErrMalformedField, field)
	}

	want, err := Checksum(sentence)
	if err != nil {
		return err
	}
	if got := field[1:]; !strings.EqualFold(got, want) {
		return fmt.Errorf("%w: sentence carries %q, computed %q", ErrChecksumMismatch, got, want)
	}
	return nil
}
