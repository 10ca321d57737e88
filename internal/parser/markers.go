package parser

import (
	"regexp"
	"strings"

	mdwerror "github.com/msto63/chronos/foundation/core/error"
	"github.com/msto63/chronos/internal/calendar"
	"github.com/msto63/chronos/internal/model"
)

var markerLine = regexp.MustCompile(`^=\s*\[(.*?)\]\s*(.*)$`)

func (pc *parseContext) parseMarker(line string, lineNumber int) {
	m := markerLine.FindStringSubmatch(line)
	if m == nil {
		pc.add(lineNumber, mdwerror.CodeInvalidFormat, "Invalid marker format: %s", line)
		return
	}

	date := strings.TrimSpace(m[1])
	if date == "" {
		date = pc.today
	}
	if err := calendar.Validate(date); err != nil {
		pc.addErr(lineNumber, err)
		return
	}

	at, err := calendar.ToUTC(date)
	if err != nil {
		pc.addErr(lineNumber, err)
		return
	}

	pc.markers = append(pc.markers, model.Marker{
		Start:   at,
		Content: strings.TrimSpace(m[2]),
	})
}
