package parser

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	mdwerror "github.com/msto63/chronos/foundation/core/error"
	mdwlog "github.com/msto63/chronos/foundation/core/log"
	"github.com/msto63/chronos/internal/calendar"
	"github.com/msto63/chronos/internal/model"
	"github.com/msto63/chronos/pkg/core/logging"
)

// Line prefixes
const (
	CommentPrefix = "#"
	EventPrefix   = "-"
	PeriodPrefix  = "@"
	PointPrefix   = "*"
	MarkerPrefix  = "="
	FlagPrefix    = ">"
	ArrowPrefix   = "~"
)

// Settings are the user preferences that influence parsing and display.
type Settings struct {
	// Locale is a BCP 47 tag used for labels and content ordering.
	Locale string `json:"locale" yaml:"locale" toml:"locale"`

	// RoundRanges adds the with-caps class to declared ranges.
	RoundRanges bool `json:"round_ranges" yaml:"round_ranges" toml:"round_ranges"`

	// UseUTC renders labels in UTC instead of local time.
	UseUTC bool `json:"use_utc" yaml:"use_utc" toml:"use_utc"`
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		Locale: "en",
		UseUTC: true,
	}
}

// Options configures a Parser.
type Options struct {
	Logger   *mdwlog.Logger
	Settings Settings

	// Now supplies the current time for defaulted dates.
	Now func() time.Time
}

// Parser converts documents into models. It holds no per-document state
// and may be used from several goroutines.
type Parser struct {
	logger   *mdwlog.Logger
	settings Settings
	now      func() time.Time
}

// New creates a parser with the given options.
func New(opts Options) *Parser {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Settings.Locale == "" {
		opts.Settings.Locale = DefaultSettings().Locale
	}

	return &Parser{
		logger:   opts.Logger.WithField("component", "chronos-parser"),
		settings: opts.Settings,
		now:      opts.Now,
	}
}

// Settings returns the parser's settings.
func (p *Parser) Settings() Settings {
	return p.settings
}

// parseContext owns everything that accumulates during one Parse call.
type parseContext struct {
	collector

	settings Settings
	logger   *mdwlog.Logger
	today    string

	items    []model.Item
	markers  []model.Marker
	groups   []model.Group
	groupIDs map[string]int
	flags    model.Flags
}

// Parse reads source and returns the document model. When any line is
// invalid it returns a *ParseError holding every problem and no result.
func (p *Parser) Parse(ctx context.Context, source string) (*model.ParseResult, error) {
	requestID := logging.RequestID(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	logger := p.logger.WithRequestID(requestID)
	timer := logger.StartTimer("parse")

	lines := strings.Split(source, "\n")
	logger.Debug("Starting chronos parsing", mdwlog.Fields{
		"lines":  len(lines),
		"length": len(source),
	})

	pc := &parseContext{
		settings: p.settings,
		logger:   logger,
		today:    calendar.Today(p.now()),
		groupIDs: make(map[string]int),
	}

	for i, raw := range lines {
		pc.parseLine(strings.TrimSpace(raw), i+1)
	}

	if !pc.empty() {
		err := pc.result()
		timer.StopWithError(mdwerror.Wrap(err, "chronos parsing failed").
			WithCode(mdwerror.CodeParseFailed).
			WithDetail("errors", len(err.Errors)))
		return nil, err
	}

	timer.WithField("items", len(pc.items)).
		WithField("markers", len(pc.markers)).
		WithField("groups", len(pc.groups)).
		Stop()

	return &model.ParseResult{
		Items:   nonNil(pc.items),
		Markers: nonNil(pc.markers),
		Groups:  nonNil(pc.groups),
		Flags:   pc.flags,
	}, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func (pc *parseContext) parseLine(line string, lineNumber int) {
	switch {
	case strings.HasPrefix(line, CommentPrefix):
	case strings.HasPrefix(line, EventPrefix),
		strings.HasPrefix(line, PeriodPrefix),
		strings.HasPrefix(line, PointPrefix):
		pc.parseTimeItem(line, lineNumber)
	case strings.HasPrefix(line, MarkerPrefix):
		pc.parseMarker(line, lineNumber)
	case strings.HasPrefix(line, FlagPrefix):
		pc.parseFlag(line, lineNumber)
	case strings.HasPrefix(line, ArrowPrefix):
		pc.parseArrow(line, lineNumber)
	case line != "":
		pc.add(lineNumber, mdwerror.CodeUnrecognizedLine, "Unrecognized format: %s", line)
	}
}
