package parser

import (
	"fmt"
	"strings"

	mdwerror "github.com/msto63/chronos/foundation/core/error"
	mdwlog "github.com/msto63/chronos/foundation/core/log"
	"github.com/msto63/chronos/internal/calendar"
	"github.com/msto63/chronos/internal/grammar"
	"github.com/msto63/chronos/internal/model"
)

// CSS classes attached to items
const (
	ClassLink     = "is-link"
	ClassWithCaps = "with-caps"
)

// opacity selects how a named color is rendered.
type opacity int

const (
	opacitySolid opacity = iota
	opacityOpaque
)

var colorFormats = [...]string{
	opacitySolid:  "var(--color-%s)",
	opacityOpaque: "rgba(var(--color-%s-rgb), var(--chronos-opacity))",
}

func (pc *parseContext) parseTimeItem(line string, lineNumber int) {
	ti, ok := grammar.ScanTimeItem(line)
	if !ok {
		pc.add(lineNumber, mdwerror.CodeInvalidFormat, "Invalid format: %s", line)
		return
	}
	pc.buildItem(ti, lineNumber)
}

func kindOf(marker rune) model.Kind {
	switch marker {
	case grammar.MarkerPeriod:
		return model.KindBackground
	case grammar.MarkerPoint:
		return model.KindPoint
	default:
		return model.KindDefault
	}
}

func (pc *parseContext) buildItem(ti grammar.TimeItem, lineNumber int) {
	kind := kindOf(ti.Marker)

	start := ti.Start
	if start == "" {
		start = pc.today
	}
	end := ti.End
	if end == "" && ti.HasSeparator() {
		end = pc.today
	}
	// points have no extent
	if kind == model.KindPoint {
		end = ""
	}

	pc.validateRange(start, ti.Start, end, ti.End, ti.Separator, lineNumber)

	startAt, err := calendar.ToUTC(start)
	if err != nil {
		return
	}

	item := model.Item{
		ID:    lineNumber,
		Start: startAt,
		Style: pc.styleFor(ti.Color, kind, lineNumber),
	}

	if end != "" {
		if endAt, err := calendar.ToUTC(end); err == nil && !endAt.Equal(startAt) {
			item.End = &endAt
		}
	}

	if ti.Group != "" {
		item.Group = pc.groupID(ti.Group)
	}

	var classes []string
	if ti.Link != "" && kind != model.KindBackground {
		classes = append(classes, ClassLink)
	}
	if end != "" && pc.settings.RoundRanges {
		classes = append(classes, ClassWithCaps)
	}
	item.ClassName = strings.Join(classes, " ")

	switch kind {
	case model.KindBackground:
		item.Content = ti.Content
		if ti.Description != "" {
			item.Content = ti.Content + " | " + ti.Description
		}
		item.Detail = model.Background{}
	case model.KindPoint:
		item.Content = ti.Content
		item.Detail = model.Point{Description: ti.Description, Link: ti.Link}
	default:
		item.Content = ti.Content
		item.Detail = model.Event{Description: ti.Description, Link: ti.Link}
	}
	if item.Content == "" {
		item.Content = model.Placeholder
	}

	pc.logger.Trace("Item parsed", mdwlog.Fields{
		"line": lineNumber,
		"kind": string(kind),
	})
	pc.items = append(pc.items, item)
}

// validateRange records every date problem of a time item. rawStart and
// rawEnd are the literals as written, used for the chronology message.
func (pc *parseContext) validateRange(start, rawStart, end, rawEnd, separator string, lineNumber int) {
	valid := true
	if err := calendar.Validate(start); err != nil {
		pc.addErr(lineNumber, err)
		valid = false
	}
	if end != "" {
		if err := calendar.Validate(end); err != nil {
			pc.addErr(lineNumber, err)
			valid = false
		}
	}

	switch {
	case separator != "" && separator != grammar.RangeSeparator:
		pc.add(lineNumber, mdwerror.CodeSeparator, separatorMessage, separator)
	case separator == "" && end != "":
		pc.add(lineNumber, mdwerror.CodeSeparator, separatorMessage, separator)
	}

	if valid && end != "" {
		if rawStart == "" {
			rawStart = start
		}
		if rawEnd == "" {
			rawEnd = end
		}
		pc.addErr(lineNumber, calendar.CheckOrder(rawStart, rawEnd))
	}
}

const separatorMessage = `Invalid date separator "%s". Dates in a range must be separated by a tilde (~).`

// groupID returns the id of name, assigning the next one on first sight.
func (pc *parseContext) groupID(name string) int {
	if id, ok := pc.groupIDs[name]; ok {
		return id
	}
	id := len(pc.groups) + 1
	pc.groups = append(pc.groups, model.Group{ID: id, Content: name})
	pc.groupIDs[name] = id
	return id
}

// styleFor renders the inline style of an item. Unknown colors are
// logged and produce no background.
func (pc *parseContext) styleFor(colorName string, kind model.Kind, lineNumber int) string {
	var b strings.Builder

	known := false
	if colorName != "" {
		c, ok := model.ParseColor(colorName)
		if ok {
			known = true
			policy := opacitySolid
			if kind == model.KindBackground {
				policy = opacityOpaque
			}
			fmt.Fprintf(&b, "background-color: "+colorFormats[policy]+";", c)
		} else {
			pc.logger.Warn(fmt.Sprintf("Color %q not recognized", colorName), mdwlog.Fields{
				"line":       lineNumber,
				"color":      colorName,
				"error_code": mdwerror.CodeUnknownColor,
			})
		}
	}

	if kind == model.KindPoint {
		if known {
			b.WriteString("color: black !important;")
		} else {
			b.WriteString("color: var(--text-normal) !important;")
		}
	}

	return b.String()
}
