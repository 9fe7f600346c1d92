package utils

import (
	"errors"
	"time"
)

// Layouts used by the booking forms.  Dates and times arrive as separate
// fields and are combined into a UTC timestamp.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// ErrBadDate is returned when a date or time field does not parse.
var ErrBadDate = errors.New("invalid date/time value")

// CombineDateTime parses a "2006-01-02" date and "15:04" time into one
// UTC timestamp.
func CombineDateTime(date, clock string) (time.Time, error) {
	t, err := time.Parse(DateLayout+" "+TimeLayout, date+" "+clock)
	if err != nil {
		return time.Time{}, ErrBadDate
	}
	return t.UTC(), nil
}

// ParseDayRange parses an inclusive [start_date, end_date] day range and
// returns it as the half-open instant range [from, toExcl) used by the
// report queries.  The end day itself is included: toExcl is midnight of
// the following day.
func ParseDayRange(startDate, endDate string) (from, toExcl time.Time, err error) {
	from, err = time.Parse(DateLayout, startDate)
	if err != nil {
		return time.Time{}, time.Time{}, ErrBadDate
	}
	to, err := time.Parse(DateLayout, endDate)
	if err != nil {
		return time.Time{}, time.Time{}, ErrBadDate
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, ErrBadDate
	}
	return from.UTC(), to.UTC().AddDate(0, 0, 1), nil
}
