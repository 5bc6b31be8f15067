package timeentry

import (
	"regexp"
	"strconv"
	"time"
)

// DateLayout is the wire format for spent-on dates.
const DateLayout = "2006-01-02"

// hoursPattern accepts plain decimals with an optional sign and fractional
// part. No exponent, thousands separator, comma or whitespace. Negative
// values pass the pattern; see ParseHours.
var hoursPattern = regexp.MustCompile(`^[+-]?\d+(\.\d+)?$`)

// ParseSpentOn parses a submitted spent-on value as a calendar date.
func ParseSpentOn(value string) (time.Time, error) {
	d, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return d, nil
}

// ParseHours validates and converts a submitted hours value. The pattern is
// deliberately permissive about sign ("-0.0" is accepted) to match the
// behavior reports have always relied on.
func ParseHours(value string) (float64, error) {
	if !hoursPattern.MatchString(value) {
		return 0, ErrInvalidHours
	}
	hours, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, ErrInvalidHours
	}
	return hours, nil
}
