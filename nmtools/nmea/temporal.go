package nmea

import (
	"fmt"
	"strconv"
	"time"
)

const (
	timeLength      = 10 // hhmmss.sss
	shortDateLength = 6  // ddmmyy

	maxTime      = 235959.999
	minShortDate = 10101
	maxShortDate = 311299

	centuryStart = 2000
)

// IsTime reports whether the token is a time of day in hhmmss.sss format.
// Only the overall value is bounded, so minutes or seconds above 59 are not
// caught here ("086099.000" passes); DecodeTimestamp rejects them.
func IsTime(token string) bool {
	v, ok := parseNumeric(token)
	if !ok || len(token) != timeLength {
		return false
	}
	return v >= 0 && v <= maxTime
}

// IsShortDate reports whether the token is a calendar date in ddmmyy format,
// years being counted from 2000.
func IsShortDate(token string) bool {
	if !IsNumeric(token) || len(token) != shortDateLength {
		return false
	}

	v, err := strconv.Atoi(token)
	if err != nil || v < minShortDate || v > maxShortDate {
		return false
	}

	_, err = shortDate(token)
	return err == nil
}

// DecodeTimestamp combines a ddmmyy date token and a hhmmss.sss time token
// into a UTC timestamp with millisecond precision.
func DecodeTimestamp(date, clock string) (time.Time, error) {
	if !IsShortDate(date) {
		return time.Time{}, fmt.Errorf("%w: invalid date %q", ErrMalformedField, date)
	}
	if !IsTime(clock) {
		return time.Time{}, fmt.Errorf("%w: invalid time %q", ErrMalformedField, clock)
	}

	d, err := shortDate(date)
	if err != nil {
		return time.Time{}, err
	}

	hour, errH := strconv.Atoi(clock[0:2])
	minute, errM := strconv.Atoi(clock[2:4])
	second, errS := strconv.Atoi(clock[4:6])
	milli, errMs := strconv.Atoi(clock[7:10])
	if errH != nil || errM != nil || errS != nil || errMs != nil {
		return time.Time{}, fmt.Errorf("%w: invalid time %q", ErrMalformedField, clock)
	}
	if hour > 23 || minute > 59 || second > 59 || milli < 0 {
		return time.Time{}, fmt.Errorf("%w: time %q is not a time of day", ErrMalformedField, clock)
	}

	y, m, day := d.Date()
	return time.Date(y, m, day, hour, minute, second, milli*int(time.Millisecond), time.UTC), nil
}

// shortDate converts a ddmmyy token to a date, failing when the day does not
// exist in the month.
func shortDate(token string) (time.Time, error) {
	day, errD := strconv.Atoi(token[0:2])
	month, errM := strconv.Atoi(token[2:4])
	year, errY := strconv.Atoi(token[4:6])
	if errD != nil || errM != nil || errY != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q", ErrMalformedField, token)
	}

	year += centuryStart
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if d.Year() != year || d.Month() != time.Month(month) || d.Day() != day {
		return time.Time{}, fmt.Errorf("%w: %q is not a calendar date", ErrMalformedField, token)
	}
	return d, nil
}
