package nmea

import "errors"

// Errors returned by the decoding functions. Callers should test for them
// with errors.Is since every returned error wraps one of them with a reason.
var (
	// ErrMissingInput is returned when the sentence or a required token is blank.
	ErrMissingInput = errors.New("nmea: missing input")

	// ErrMalformedField is returned when the field count, the sentence tag
	// or one of the fields does not follow its grammar.
	ErrMalformedField = errors.New("nmea: malformed field")

	// ErrChecksumMismatch is returned when the checksum computed from the
	// sentence differs from the one it carries.
	ErrChecksumMismatch = errors.New("nmea: checksum mismatch")
)
