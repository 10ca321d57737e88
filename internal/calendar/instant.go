package calendar

import (
	"encoding/json"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Instant is a UTC point in time that can represent any astronomical year,
// including BCE years and years beyond 9999.
type Instant struct {
	t time.Time
}

// FromTime converts t to an Instant in UTC.
func FromTime(t time.Time) Instant {
	return Instant{t: t.UTC()}
}

// ToUTC pads s and converts it to an Instant. It does not reject
// infeasible days; callers that need that run Validate first.
func ToUTC(s string) (Instant, error) {
	c, err := split(s)
	if err != nil {
		return Instant{}, err
	}

	t := time.Date(c.year, time.Month(c.month), c.day, c.hour, c.minute, c.second, 0, time.UTC)
	return Instant{t: forceYear(t, c.year)}, nil
}

// forceYear pins the year of t. Month or day overflow during construction
// may have rolled the year; the declared year always wins.
func forceYear(t time.Time, year int) time.Time {
	if t.Year() == year {
		return t
	}
	return time.Date(year, t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
}

// Today returns the current UTC date of now as YYYY-MM-DD.
func Today(now time.Time) string {
	return FromTime(now).DateString()
}

// Time returns the underlying time.Time.
func (i Instant) Time() time.Time { return i.t }

// IsZero reports whether i is the zero Instant.
func (i Instant) IsZero() bool { return i.t.IsZero() }

// Year returns the astronomical year.
func (i Instant) Year() int { return i.t.Year() }

// Equal reports whether i and o denote the same instant.
func (i Instant) Equal(o Instant) bool { return i.t.Equal(o.t) }

// Before reports whether i is strictly before o.
func (i Instant) Before(o Instant) bool { return i.t.Before(o.t) }

// After reports whether i is strictly after o.
func (i Instant) After(o Instant) bool { return i.t.After(o.t) }

// Compare returns -1, 0 or +1.
func (i Instant) Compare(o Instant) int { return i.t.Compare(o.t) }

// DateString formats the date part as [-]YYYY-MM-DD.
func (i Instant) DateString() string {
	return fmt.Sprintf("%s-%02d-%02d", FormatYear(i.t.Year()), int(i.t.Month()), i.t.Day())
}

// String formats i as [-]YYYY-MM-DDThh:mm:ssZ.
func (i Instant) String() string {
	return fmt.Sprintf("%sT%02d:%02d:%02dZ", i.DateString(), i.t.Hour(), i.t.Minute(), i.t.Second())
}

// MarshalJSON encodes the canonical form. time.Time refuses years
// outside 0..9999, so the encoding is done here.
func (i Instant) MarshalJSON() ([]byte, error) {
	return json.Marshal(i.String())
}

// UnmarshalJSON accepts any partial date.
func (i *Instant) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ToUTC(s)
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}

// MarshalYAML encodes the canonical form.
func (i Instant) MarshalYAML() (interface{}, error) {
	return i.String(), nil
}

// UnmarshalYAML accepts any partial date.
func (i *Instant) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := ToUTC(s)
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}
