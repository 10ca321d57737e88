package calendar

import (
	"time"

	mdwerror "github.com/msto63/chronos/foundation/core/error"
)

// Validate checks that s is a well-formed partial date whose components
// are in range and that names a day which exists in the proleptic
// Gregorian calendar.
func Validate(s string) error {
	c, err := split(s)
	if err != nil {
		return err
	}

	switch {
	case c.month < 1 || c.month > 12:
		return rangeError("Invalid month: %s. Must be between 01-12", c.rawMonth)
	case c.day < 1 || c.day > 31:
		return rangeError("Invalid day: %s. Must be between 01-31", c.rawDay)
	case c.hour > 23:
		return rangeError("Invalid hour: %s. Must be between 00-23", c.rawHour)
	case c.minute > 59:
		return rangeError("Invalid minute: %s. Must be between 00-59", c.rawMinute)
	case c.second > 59:
		return rangeError("Invalid second: %s. Must be between 00-59", c.rawSecond)
	}

	// time.Date normalizes overflow, so Feb 30 comes back as Mar 1
	t := time.Date(c.year, time.Month(c.month), c.day, c.hour, c.minute, c.second, 0, time.UTC)
	if int(t.Month()) != c.month || t.Day() != c.day ||
		t.Hour() != c.hour || t.Minute() != c.minute || t.Second() != c.second {
		return mdwerror.Newf("Invalid date: %s-%s-%s. Make sure you have correct month, day, etc.",
			FormatYear(c.year), c.rawMonth, c.rawDay).
			WithCode(mdwerror.CodeCalendarInfeasible).
			WithDetail("date", s)
	}

	return nil
}

func rangeError(format, value string) *mdwerror.Error {
	return mdwerror.Newf(format, value).
		WithCode(mdwerror.CodeDateRange).
		WithDetail("value", value)
}

// CheckOrder reports a chronology error when start is strictly after end.
// The messages quote the dates as written. Unparsable dates are left to
// Validate and pass here.
func CheckOrder(start, end string) error {
	from, err := ToUTC(start)
	if err != nil {
		return nil
	}
	to, err := ToUTC(end)
	if err != nil {
		return nil
	}
	if from.After(to) {
		return mdwerror.Newf("Start date (%s) is after end date (%s).", start, end).
			WithCode(mdwerror.CodeChronology).
			WithDetail("start", start).
			WithDetail("end", end)
	}
	return nil
}
