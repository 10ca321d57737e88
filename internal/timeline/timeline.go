package timeline

import (
	"context"
	"strconv"
	"strings"
	"time"

	mdwlog "github.com/msto63/chronos/foundation/core/log"
	"github.com/msto63/chronos/internal/calendar"
	"github.com/msto63/chronos/internal/label"
	"github.com/msto63/chronos/internal/model"
	"github.com/msto63/chronos/internal/ordering"
	"github.com/msto63/chronos/internal/parser"
	"github.com/msto63/chronos/pkg/core/cache"
)

// DefaultGroupID is the lane for items without a group when a document
// declares groups.
const DefaultGroupID = 0

// DefaultGroupContent is the blank label of the default lane.
const DefaultGroupContent = " "

// DefaultHeight is the display height in pixels when no height flag is set.
const DefaultHeight = 200

// Entry is an item ready for display.
type Entry struct {
	Item    model.Item
	Label   string
	Tooltip string
	Group   string
}

// MarkerEntry is a marker with its label.
type MarkerEntry struct {
	Marker model.Marker
	Label  string
}

// Timeline is the display model of one document. Values returned by
// Service.Render may be shared through the cache and must not be modified.
type Timeline struct {
	Entries []Entry
	Arrows  []model.ArrowSpec
	Markers []MarkerEntry
	Groups  []model.Group

	// Today is nil when the document disables the today line.
	Today  *calendar.Instant
	Window *model.Window
	Height int

	Result *model.ParseResult
}

// Options configures a Service.
type Options struct {
	Logger   *mdwlog.Logger
	Settings parser.Settings

	// Cache holds rendered timelines; nil disables caching.
	Cache *cache.Cache

	// Now supplies the current time.
	Now func() time.Time
}

// Service renders documents into timelines.
type Service struct {
	logger   *mdwlog.Logger
	settings parser.Settings
	parser   *parser.Parser
	labels   *label.Formatter
	cache    *cache.Cache
	now      func() time.Time
}

// New creates a Service.
func New(opts Options) *Service {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Settings.Locale == "" {
		opts.Settings.Locale = parser.DefaultSettings().Locale
	}

	return &Service{
		logger:   opts.Logger.WithField("component", "chronos-timeline"),
		settings: opts.Settings,
		parser: parser.New(parser.Options{
			Logger:   opts.Logger,
			Settings: opts.Settings,
			Now:      opts.Now,
		}),
		labels: label.New(opts.Settings.Locale, opts.Settings.UseUTC),
		cache:  opts.Cache,
		now:    opts.Now,
	}
}

// Parse runs the parser without any display preparation.
func (s *Service) Parse(ctx context.Context, source string) (*model.ParseResult, error) {
	return s.parser.Parse(ctx, source)
}

// Render parses source and builds its timeline. Parse failures are
// returned as they come from the parser and are not cached. The today
// line is set on every call so cached timelines never carry a stale one.
func (s *Service) Render(ctx context.Context, source string) (*Timeline, error) {
	if s.cache == nil {
		tl, err := s.render(ctx, source)
		if err != nil {
			return nil, err
		}
		return s.withToday(tl), nil
	}

	key := s.cacheKey(source)
	val, err := s.cache.GetOrSet(key, func() (interface{}, error) {
		return s.render(ctx, source)
	})
	if err != nil {
		return nil, err
	}

	hits, misses, rate := s.cache.Stats()
	s.logger.Debug("Timeline cache lookup", mdwlog.Fields{
		"key":      key[:12],
		"hits":     hits,
		"misses":   misses,
		"hit_rate": rate,
	})
	return s.withToday(val.(*Timeline)), nil
}

// withToday returns a copy of tl with the today line at the current time.
func (s *Service) withToday(tl *Timeline) *Timeline {
	out := *tl
	out.Today = nil
	if !tl.Result.Flags.NoToday {
		today := calendar.FromTime(s.now())
		out.Today = &today
	}
	return &out
}

// cacheKey covers every input of a render. Today is part of it because
// omitted dates default to the current day.
func (s *Service) cacheKey(source string) string {
	return cache.Key(
		source,
		s.settings.Locale,
		strconv.FormatBool(s.settings.RoundRanges),
		strconv.FormatBool(s.settings.UseUTC),
		calendar.Today(s.now()),
	)
}

func (s *Service) render(ctx context.Context, source string) (*Timeline, error) {
	result, err := s.parser.Parse(ctx, source)
	if err != nil {
		return nil, err
	}

	tl := &Timeline{
		Result: result,
		Height: DefaultHeight,
	}
	if result.Flags.Height > 0 {
		tl.Height = result.Flags.Height
	}

	items := make([]model.Item, 0, len(result.Items))
	for _, it := range result.Items {
		if spec := it.Arrow(); spec != nil {
			tl.Arrows = append(tl.Arrows, *spec)
			continue
		}
		items = append(items, it)
	}

	ordering.Sort(items, s.orderKeys(result.Flags.OrderBy), s.settings.Locale)

	tl.Groups, items = assignDefaultGroup(result.Groups, items)
	groupNames := make(map[int]string, len(tl.Groups))
	for _, g := range tl.Groups {
		groupNames[g.ID] = g.Content
	}

	tl.Entries = make([]Entry, len(items))
	for i, it := range items {
		rangeLabel := s.labels.Range(it.Start, it.End)
		tl.Entries[i] = Entry{
			Item:    it,
			Label:   rangeLabel,
			Tooltip: Tooltip(it, rangeLabel),
			Group:   groupNames[it.Group],
		}
	}

	tl.Markers = make([]MarkerEntry, len(result.Markers))
	for i, m := range result.Markers {
		tl.Markers[i] = MarkerEntry{Marker: m, Label: s.labels.Date(m.Start)}
	}

	tl.Window = result.Flags.DefaultView
	if tl.Window == nil {
		tl.Window = fit(items, result.Markers)
	}

	s.logger.Debug("Timeline rendered", mdwlog.Fields{
		"entries": len(tl.Entries),
		"arrows":  len(tl.Arrows),
		"markers": len(tl.Markers),
		"groups":  len(tl.Groups),
	})
	return tl, nil
}

// orderKeys returns the document's ordering, or chronological order.
func (s *Service) orderKeys(args []string) []ordering.Key {
	if len(args) > 0 {
		keys, err := ordering.ParseOrderBy(args)
		if err == nil {
			return keys
		}
		s.logger.WarnWithErr("Ignoring invalid ordering", err)
	}
	return []ordering.Key{{Field: ordering.FieldStart, Order: ordering.Ascending}}
}

// assignDefaultGroup moves ungrouped items into the default lane when the
// document uses groups. The lane is only added when something lands in it.
func assignDefaultGroup(groups []model.Group, items []model.Item) ([]model.Group, []model.Item) {
	out := make([]model.Group, len(groups), len(groups)+1)
	copy(out, groups)
	if len(groups) == 0 {
		return out, items
	}

	for _, it := range items {
		if it.Group == DefaultGroupID {
			out = append(out, model.Group{ID: DefaultGroupID, Content: DefaultGroupContent})
			break
		}
	}
	return out, items
}

// Tooltip renders the hover text of an item: content, its date label and
// the description on a second line when there is one.
func Tooltip(it model.Item, rangeLabel string) string {
	text := it.Content + " (" + rangeLabel + ")"
	if desc := it.Description(); desc != "" {
		text += " \n " + desc
	}
	return text
}

// fit returns the smallest window holding every item and marker.
func fit(items []model.Item, markers []model.Marker) *model.Window {
	var w *model.Window
	extend := func(start, end calendar.Instant) {
		if w == nil {
			w = &model.Window{Start: start, End: end}
			return
		}
		if start.Before(w.Start) {
			w.Start = start
		}
		if end.After(w.End) {
			w.End = end
		}
	}

	for _, it := range items {
		extend(it.Start, it.EndOrStart())
	}
	for _, m := range markers {
		extend(m.Start, m.Start)
	}
	return w
}

// FormatError renders a parse failure as a bullet list. Errors other than
// a *parser.ParseError become a single bullet.
func FormatError(err error) string {
	if err == nil {
		return ""
	}

	messages := []string{err.Error()}
	if pe, ok := parser.AsParseError(err); ok {
		messages = pe.Messages()
	}

	var b strings.Builder
	b.WriteString("Error(s) parsing chronos markdown:\n\n")
	for i, msg := range messages {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("  - ")
		b.WriteString(msg)
	}
	return b.String()
}
