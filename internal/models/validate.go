package models

import (
	"regexp"
	"strings"
	"time"
)

var tickerPattern = regexp.MustCompile(`^[A-Z0-9]{1,5}$`)

// ValidateTicker normalizes raw to uppercase and checks it against the
// 1-5 character alphanumeric ticker convention. All validation happens before
// any network call.
func ValidateTicker(raw string) (string, error) {
	ticker := strings.ToUpper(strings.TrimSpace(raw))
	if !tickerPattern.MatchString(ticker) {
		return "", NewToolError(ErrInvalidTicker, "invalid ticker %q: expected 1-5 alphanumeric characters", raw)
	}
	return ticker, nil
}

// ParseDate parses the exact mmddyyyy form (8 ASCII digits, no separators)
// into a UTC calendar date. Any other shape is rejected; there is no
// best-effort parsing.
func ParseDate(raw string) (time.Time, error) {
	if len(raw) != 8 {
		return time.Time{}, NewToolError(ErrInvalidDateFormat, "invalid date %q: expected mmddyyyy format", raw)
	}
	for _, c := range raw {
		if c < '0' || c > '9' {
			return time.Time{}, NewToolError(ErrInvalidDateFormat, "invalid date %q: expected mmddyyyy format", raw)
		}
	}

	month := int(raw[0]-'0')*10 + int(raw[1]-'0')
	day := int(raw[2]-'0')*10 + int(raw[3]-'0')
	year := 0
	for i := 4; i < 8; i++ {
		year = year*10 + int(raw[i]-'0')
	}

	// time.Date normalizes out-of-range components (Feb 30 becomes Mar 2), so
	// a round-trip check is what actually validates the day for the month.
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if d.Year() != year || d.Month() != time.Month(month) || d.Day() != day {
		return time.Time{}, NewToolError(ErrInvalidDateFormat, "invalid date %q: no such calendar day", raw)
	}
	return d, nil
}

// NewDateRange builds a validated range. Future dates and dates before the
// provider's data availability are accepted here; those surface later as an
// empty series, not as a validation error.
func NewDateRange(start, end time.Time) (DateRange, error) {
	if start.After(end) {
		return DateRange{}, NewToolError(ErrInvalidRange, "start date %s is after end date %s",
			start.Format("2006-01-02"), end.Format("2006-01-02"))
	}
	return DateRange{Start: start, End: end}, nil
}

// ParseDateRange parses and validates a start/end pair in mmddyyyy form.
func ParseDateRange(rawStart, rawEnd string) (DateRange, error) {
	start, err := ParseDate(rawStart)
	if err != nil {
		return DateRange{}, err
	}
	end, err := ParseDate(rawEnd)
	if err != nil {
		return DateRange{}, err
	}
	return NewDateRange(start, end)
}
