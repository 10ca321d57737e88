package model

import (
	"github.com/msto63/chronos/internal/calendar"
)

// Placeholder replaces empty content so blank items keep their height.
const Placeholder = "\u00a0"

// Kind tags the variant of an Item.
type Kind string

const (
	KindDefault    Kind = "default"
	KindBackground Kind = "background"
	KindPoint      Kind = "point"
	KindArrow      Kind = "arrow"
)

// Detail is the kind-specific payload of an Item.
type Detail interface {
	kind() Kind
}

// Event is a default item: a box or a range on the timeline.
type Event struct {
	Description string
	Link        string
}

// Background is a period drawn as a band behind the other items.
type Background struct{}

// Point is an item drawn as a dot with a label.
type Point struct {
	Description string
	Link        string
}

// Arrow connects two previously declared items.
type Arrow struct {
	Spec ArrowSpec
}

func (Event) kind() Kind      { return KindDefault }
func (Background) kind() Kind { return KindBackground }
func (Point) kind() Kind      { return KindPoint }
func (Arrow) kind() Kind      { return KindArrow }

// Item is one plotted timeline entity. ID is the 1-based source line.
type Item struct {
	ID        int
	Content   string
	Start     calendar.Instant
	End       *calendar.Instant
	Group     int
	Style     string
	ClassName string
	Detail    Detail
}

// Kind returns the variant tag. Items without a Detail are events.
func (it Item) Kind() Kind {
	if it.Detail == nil {
		return KindDefault
	}
	return it.Detail.kind()
}

// Description returns the secondary text of events and points.
func (it Item) Description() string {
	switch d := it.Detail.(type) {
	case Event:
		return d.Description
	case Point:
		return d.Description
	}
	return ""
}

// Link returns the wiki-link target of events and points.
func (it Item) Link() string {
	switch d := it.Detail.(type) {
	case Event:
		return d.Link
	case Point:
		return d.Link
	}
	return ""
}

// Arrow returns the arrow spec, or nil for other kinds.
func (it Item) Arrow() *ArrowSpec {
	if d, ok := it.Detail.(Arrow); ok {
		spec := d.Spec
		return &spec
	}
	return nil
}

// EndOrStart returns End, falling back to Start for instantaneous items.
func (it Item) EndOrStart() calendar.Instant {
	if it.End != nil {
		return *it.End
	}
	return it.Start
}

// Marker is a vertical reference line at a fixed instant.
type Marker struct {
	Start   calendar.Instant `json:"start" yaml:"start"`
	Content string           `json:"content" yaml:"content"`
}

// Group is a named lane. IDs are assigned 1.. in first-seen order.
type Group struct {
	ID      int    `json:"id" yaml:"id"`
	Content string `json:"content" yaml:"content"`
}

// Window is the initially visible range of a timeline.
type Window struct {
	Start calendar.Instant `json:"start" yaml:"start"`
	End   calendar.Instant `json:"end" yaml:"end"`
}

// Flags are the document-level directives.
type Flags struct {
	OrderBy     []string `json:"orderBy,omitempty" yaml:"orderBy,omitempty"`
	DefaultView *Window  `json:"defaultView,omitempty" yaml:"defaultView,omitempty"`
	NoToday     bool     `json:"noToday,omitempty" yaml:"noToday,omitempty"`
	Height      int      `json:"height,omitempty" yaml:"height,omitempty"`
}

// ParseResult is everything a successful parse produces.
type ParseResult struct {
	Items   []Item   `json:"items" yaml:"items"`
	Markers []Marker `json:"markers" yaml:"markers"`
	Groups  []Group  `json:"groups" yaml:"groups"`
	Flags   Flags    `json:"flags" yaml:"flags"`
}
