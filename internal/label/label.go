// Package label renders dates and date ranges as short, locale-aware
// labels that only show as much precision as the dates carry.
//
// A date at midnight on January 1st is shown as a year, one on the first
// of another month as month and year, any other midnight as a full date
// and everything else with the time of day. Ranges within one year or one
// month share the common parts:
//
//	2024                  single year
//	Feb 2024 - Mar 3, 2024
//	Feb 2024 2 - 10       same month
package label

import (
	"strconv"
	"strings"
	"time"

	"github.com/goodsign/monday"
	"golang.org/x/text/language"

	"github.com/msto63/chronos/internal/calendar"
)

// layout holds the date patterns of one language. Patterns use {Y} for
// the year, {M} for the month name, {D} for the day and {T} for the time
// of day. Month names come from monday; years are rendered here so BCE
// years print unpadded.
type layout struct {
	locale    monday.Locale
	month     string
	year      string
	yearMonth string
	full      string
	withTime  string
	clock12   bool
	dayChar   string
}

var layouts = []layout{
	{
		locale:    monday.LocaleEnUS,
		month:     "Jan",
		year:      "{Y}",
		yearMonth: "{M} {Y}",
		full:      "{M} {D}, {Y}",
		withTime:  "{M} {D}, {Y}, {T}",
		clock12:   true,
	},
	{
		locale:    monday.LocaleDeDE,
		month:     "January",
		year:      "{Y}",
		yearMonth: "{M} {Y}",
		full:      "{D}. {M} {Y}",
		withTime:  "{D}. {M} {Y}, {T}",
	},
	{
		locale:    monday.LocaleFrFR,
		month:     "Jan",
		year:      "{Y}",
		yearMonth: "{M} {Y}",
		full:      "{D} {M} {Y}",
		withTime:  "{D} {M} {Y}, {T}",
	},
	{
		locale:    monday.LocaleEsES,
		month:     "Jan",
		year:      "{Y}",
		yearMonth: "{M} {Y}",
		full:      "{D} {M} {Y}",
		withTime:  "{D} {M} {Y}, {T}",
	},
	{
		locale:    monday.LocaleItIT,
		month:     "Jan",
		year:      "{Y}",
		yearMonth: "{M} {Y}",
		full:      "{D} {M} {Y}",
		withTime:  "{D} {M} {Y}, {T}",
	},
	{
		locale:    monday.LocaleNlNL,
		month:     "Jan",
		year:      "{Y}",
		yearMonth: "{M} {Y}",
		full:      "{D} {M} {Y}",
		withTime:  "{D} {M} {Y}, {T}",
	},
	{
		locale:    monday.LocalePtPT,
		month:     "Jan",
		year:      "{Y}",
		yearMonth: "{M} de {Y}",
		full:      "{D} de {M} de {Y}",
		withTime:  "{D} de {M} de {Y}, {T}",
	},
	{
		locale:    monday.LocaleJaJP,
		month:     "January",
		year:      "{Y}年",
		yearMonth: "{Y}年{M}",
		full:      "{Y}年{M}{D}日",
		withTime:  "{Y}年{M}{D}日 {T}",
		dayChar:   "日",
	},
	{
		locale:    monday.LocaleZhCN,
		month:     "January",
		year:      "{Y}年",
		yearMonth: "{Y}年{M}",
		full:      "{Y}年{M}{D}日",
		withTime:  "{Y}年{M}{D}日 {T}",
		dayChar:   "日",
	},
	{
		locale:    monday.LocaleKoKR,
		month:     "January",
		year:      "{Y}년",
		yearMonth: "{Y}년 {M}",
		full:      "{Y}년 {M} {D}일",
		withTime:  "{Y}년 {M} {D}일 {T}",
		dayChar:   "일",
	},
}

var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.German,
	language.French,
	language.Spanish,
	language.Italian,
	language.Dutch,
	language.Portuguese,
	language.Japanese,
	language.Chinese,
	language.Korean,
})

// Formatter renders labels for one locale and time zone.
type Formatter struct {
	layout   layout
	location *time.Location
}

// New returns a formatter for a BCP 47 locale. Unknown locales fall back
// to English. Unless useUTC is set, labels show local time.
func New(locale string, useUTC bool) *Formatter {
	idx := 0
	if tag, err := language.Parse(locale); err == nil {
		_, i, confidence := matcher.Match(tag)
		if confidence != language.No {
			idx = i
		}
	}

	loc := time.UTC
	if !useUTC {
		loc = time.Local
	}
	return &Formatter{layout: layouts[idx], location: loc}
}

func (f *Formatter) local(at calendar.Instant) time.Time {
	return at.Time().In(f.location)
}

func (f *Formatter) render(pattern string, t time.Time) string {
	return strings.NewReplacer(
		"{Y}", strconv.Itoa(t.Year()),
		"{M}", f.monthName(t.Month()),
		"{D}", strconv.Itoa(t.Day()),
		"{T}", f.clock(t),
	).Replace(pattern)
}

// monthName formats month against a fixed year, keeping BCE years out of
// the locale layouts.
func (f *Formatter) monthName(month time.Month) string {
	ref := time.Date(2000, month, 1, 0, 0, 0, 0, time.UTC)
	return monday.Format(ref, f.layout.month, f.layout.locale)
}

func (f *Formatter) clock(t time.Time) string {
	if !f.layout.clock12 {
		return t.Format("15:04")
	}
	return t.Format("3:04 PM")
}

// Date labels a single instant at its natural precision.
func (f *Formatter) Date(at calendar.Instant) string {
	t := f.local(at)
	switch {
	case t.Hour() != 0 || t.Minute() != 0 || t.Second() != 0:
		return f.render(f.layout.withTime, t)
	case t.Day() != 1:
		return f.render(f.layout.full, t)
	case t.Month() != time.January:
		return f.render(f.layout.yearMonth, t)
	default:
		return f.render(f.layout.year, t)
	}
}

// Range labels start alone when end is nil, otherwise the pair with the
// shared year or month folded together.
func (f *Formatter) Range(start calendar.Instant, end *calendar.Instant) string {
	if end == nil {
		return f.Date(start)
	}

	s, e := f.local(start), f.local(*end)
	switch {
	case s.Year() != e.Year():
		return f.render(f.layout.full, s) + " - " + f.render(f.layout.full, e)
	case s.Month() != e.Month():
		return f.render(f.layout.yearMonth, s) + " - " + f.render(f.layout.full, e)
	default:
		return f.render(f.layout.yearMonth, s) + " " + strconv.Itoa(s.Day()) +
			" - " + strconv.Itoa(e.Day()) + f.layout.dayChar
	}
}
