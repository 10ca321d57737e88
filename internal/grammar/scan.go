package grammar

import (
	"regexp"
	"strings"
	"unicode"
)

// Item markers
const (
	MarkerEvent  = '-'
	MarkerPeriod = '@'
	MarkerPoint  = '*'
)

// RangeSeparator is the only accepted separator between two dates.
const RangeSeparator = "~"

// dateLexeme is deliberately loose; Pad and Validate decide what it means.
var dateLexeme = regexp.MustCompile(`^-?\d+(?:-?(?:\d{2})?-?(?:\d{2})?T?(?:\d{2})?:?(?:\d{2})?:?(?:\d{2})?)?`)

// TimeItem holds the raw fields of a scanned time-item line.
type TimeItem struct {
	Marker      rune
	Start       string
	Separator   string
	End         string
	Color       string
	Group       string
	Content     string
	Description string
	Link        string
}

// HasSeparator reports whether anything stood between the two dates.
func (ti TimeItem) HasSeparator() bool {
	return ti.Separator != ""
}

type scanner struct {
	src string
	pos int
}

func (s *scanner) done() bool { return s.pos >= len(s.src) }

func (s *scanner) peek() byte {
	if s.done() {
		return 0
	}
	return s.src[s.pos]
}

func (s *scanner) skipSpace() {
	for !s.done() {
		r := rune(s.src[s.pos])
		if r >= 0x80 || !unicode.IsSpace(r) {
			return
		}
		s.pos++
	}
}

func (s *scanner) accept(c byte) bool {
	if s.peek() == c {
		s.pos++
		return true
	}
	return false
}

func (s *scanner) date() string {
	loc := dateLexeme.FindStringIndex(s.src[s.pos:])
	if loc == nil {
		return ""
	}
	lit := s.src[s.pos : s.pos+loc[1]]
	s.pos += loc[1]
	return lit
}

// separator consumes characters that cannot start a date or close the
// bracket.
func (s *scanner) separator() string {
	start := s.pos
	for !s.done() {
		c := s.src[s.pos]
		if c == '-' || c == ']' || (c >= '0' && c <= '9') || c == ' ' || c == '\t' {
			break
		}
		s.pos++
	}
	return s.src[start:s.pos]
}

func (s *scanner) color() string {
	if s.peek() != '#' {
		return ""
	}
	end := s.pos + 1
	for end < len(s.src) && isWordByte(s.src[end]) {
		end++
	}
	if end == s.pos+1 {
		return ""
	}
	name := s.src[s.pos+1 : end]
	s.pos = end
	return name
}

func isWordByte(c byte) bool {
	return c == '_' || (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func (s *scanner) group() string {
	if s.peek() != '{' {
		return ""
	}
	closing := strings.IndexByte(s.src[s.pos+1:], '}')
	if closing < 1 {
		return ""
	}
	name := s.src[s.pos+1 : s.pos+1+closing]
	s.pos += closing + 2
	return name
}

// ScanTimeItem splits a trimmed event, period or point line into its
// fields. It returns false when the line does not follow the grammar.
func ScanTimeItem(line string) (TimeItem, bool) {
	s := &scanner{src: line}
	var ti TimeItem

	switch c := s.peek(); c {
	case MarkerEvent, MarkerPeriod, MarkerPoint:
		ti.Marker = rune(c)
		s.pos++
	default:
		return TimeItem{}, false
	}

	s.skipSpace()
	if !s.accept('[') {
		return TimeItem{}, false
	}
	s.skipSpace()
	ti.Start = s.date()
	s.skipSpace()
	ti.Separator = s.separator()
	s.skipSpace()
	ti.End = s.date()
	s.skipSpace()
	if !s.accept(']') {
		return TimeItem{}, false
	}

	s.skipSpace()
	ti.Color = s.color()
	s.skipSpace()
	ti.Group = s.group()
	s.skipSpace()

	ti.Content, ti.Description = SplitDescription(s.src[s.pos:])

	ti.Link = ExtractLink(ti.Content)
	if ti.Link == "" {
		ti.Link = ExtractLink(ti.Description)
	}

	return ti, true
}
