package calendar

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	mdwerror "github.com/msto63/chronos/foundation/core/error"
)

// partialDate matches a lazy date, optionally followed by fractional
// seconds and a trailing Z.
var partialDate = regexp.MustCompile(`^(-?\d+)(?:-(\d{2}))?(?:-(\d{2}))?(?:T(\d{2}))?(?::(\d{2}))?(?::(\d{2}))?(?:\.(\d+))?(?:Z)?$`)

// components holds the numeric fields of a padded date.
type components struct {
	year   int
	month  int
	day    int
	hour   int
	minute int
	second int

	// two-digit source text, kept for error messages
	rawMonth, rawDay, rawHour, rawMinute, rawSecond string
}

func split(s string) (components, error) {
	m := partialDate.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return components{}, formatError(s)
	}

	year, err := strconv.Atoi(m[1])
	if err != nil {
		return components{}, formatError(s)
	}

	c := components{
		year:      year,
		rawMonth:  orDefault(m[2], "01"),
		rawDay:    orDefault(m[3], "01"),
		rawHour:   orDefault(m[4], "00"),
		rawMinute: orDefault(m[5], "00"),
		rawSecond: orDefault(m[6], "00"),
	}
	// the pattern guarantees two digits for everything but the year
	c.month, _ = strconv.Atoi(c.rawMonth)
	c.day, _ = strconv.Atoi(c.rawDay)
	c.hour, _ = strconv.Atoi(c.rawHour)
	c.minute, _ = strconv.Atoi(c.rawMinute)
	c.second, _ = strconv.Atoi(c.rawSecond)
	return c, nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func formatError(s string) *mdwerror.Error {
	return mdwerror.Newf("Invalid date format: %s", s).
		WithCode(mdwerror.CodeDateFormat).
		WithDetail("date", s)
}

// FormatYear renders a year with at least four digits, keeping the sign.
func FormatYear(year int) string {
	if year < 0 {
		return fmt.Sprintf("-%04d", -year)
	}
	return fmt.Sprintf("%04d", year)
}

func (c components) padded() string {
	return fmt.Sprintf("%s-%s-%sT%s:%s:%sZ",
		FormatYear(c.year), c.rawMonth, c.rawDay, c.rawHour, c.rawMinute, c.rawSecond)
}

// Pad expands a partial date to the canonical [-]YYYY-MM-DDThh:mm:ssZ
// form. Fractional seconds are accepted and dropped.
func Pad(s string) (string, error) {
	c, err := split(s)
	if err != nil {
		return "", err
	}
	return c.padded(), nil
}
