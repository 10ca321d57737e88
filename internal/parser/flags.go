package parser

import (
	"regexp"
	"strconv"
	"strings"

	mdwerror "github.com/msto63/chronos/foundation/core/error"
	"github.com/msto63/chronos/internal/calendar"
	"github.com/msto63/chronos/internal/model"
	"github.com/msto63/chronos/internal/ordering"
)

// Directive names, matched case-insensitively
const (
	FlagOrderBy     = "orderby"
	FlagDefaultView = "defaultview"
	FlagNoToday     = "notoday"
	FlagHeight      = "height"
)

// ArgumentSeparator splits directive arguments.
const ArgumentSeparator = "|"

var flagLine = regexp.MustCompile(`(?i)^` + regexp.QuoteMeta(FlagPrefix) + `\s*(\w+)(?:\s+(.+))?$`)

func (pc *parseContext) parseFlag(line string, lineNumber int) {
	m := flagLine.FindStringSubmatch(line)
	if m == nil {
		pc.add(lineNumber, mdwerror.CodeUnknownDirective, "Unrecognized flag: %s", line)
		return
	}

	name := strings.ToLower(m[1])
	var args []string
	if rest := strings.TrimSpace(m[2]); rest != "" {
		args = strings.Split(rest, ArgumentSeparator)
		for i := range args {
			args[i] = strings.TrimSpace(args[i])
		}
	}

	switch name {
	case FlagOrderBy:
		pc.parseOrderBy(args, line, lineNumber)
	case FlagDefaultView:
		pc.parseDefaultView(args, line, lineNumber)
	case FlagNoToday:
		if len(args) > 0 {
			pc.add(lineNumber, mdwerror.CodeDirectiveArgument, "NOTODAY flag takes no arguments: %s", line)
			return
		}
		pc.logger.Debug("No today flag detected")
		pc.flags.NoToday = true
	case FlagHeight:
		pc.parseHeight(args, line, lineNumber)
	default:
		pc.add(lineNumber, mdwerror.CodeUnknownDirective, "Unrecognized flag: %s", line)
	}
}

func (pc *parseContext) parseOrderBy(args []string, line string, lineNumber int) {
	if len(args) == 0 {
		pc.add(lineNumber, mdwerror.CodeDirectiveArgument,
			"Must provide at least one field for ORDERBY flag (ex: start|-content): %s", line)
		return
	}
	keys, err := ordering.ParseOrderBy(args)
	if err != nil {
		pc.add(lineNumber, mdwerror.GetCode(err), "%s: %s", messageOf(err), line)
		return
	}

	pc.flags.OrderBy = make([]string, len(keys))
	for i, k := range keys {
		pc.flags.OrderBy[i] = k.String()
	}
}

func (pc *parseContext) parseDefaultView(args []string, line string, lineNumber int) {
	switch {
	case len(args) == 0:
		pc.add(lineNumber, mdwerror.CodeDirectiveArgument, "Missing dates in DEFAULTVIEW flag: %s", line)
		return
	case len(args) != 2:
		pc.add(lineNumber, mdwerror.CodeDirectiveArgument,
			"Must provide a start and end date for DEFAULTVIEW flag in format start|end: %s", line)
		return
	}

	valid := true
	for _, date := range args {
		if err := calendar.Validate(date); err != nil {
			pc.add(lineNumber, mdwerror.GetCode(err), "%s: %s", messageOf(err), line)
			valid = false
		}
	}
	if !valid {
		return
	}

	// the window reuses the range checks; there is no separator to get wrong
	before := len(pc.errors)
	pc.validateRange(args[0], args[0], args[1], args[1], "~", lineNumber)
	if len(pc.errors) > before {
		return
	}

	start, _ := calendar.ToUTC(args[0])
	end, _ := calendar.ToUTC(args[1])
	pc.flags.DefaultView = &model.Window{Start: start, End: end}
}

func (pc *parseContext) parseHeight(args []string, line string, lineNumber int) {
	if len(args) == 0 || args[0] == "" {
		pc.add(lineNumber, mdwerror.CodeDirectiveArgument,
			"Must provide number of pixels for HEIGHT flag (ex: 500): %s", line)
		return
	}
	if len(args) > 1 || strings.ContainsAny(args[0], " \t") {
		pc.add(lineNumber, mdwerror.CodeDirectiveArgument,
			"Must provide a single number (of pixels) for HEIGHT flag (ex: 500): %s", line)
		return
	}

	height, err := strconv.Atoi(args[0])
	if err != nil || !allDigits(args[0]) || height <= 0 {
		pc.add(lineNumber, mdwerror.CodeDirectiveArgument,
			"Must provide a number (of pixels) for HEIGHT flag (ex: 500): %s", line)
		return
	}

	pc.flags.Height = height
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

// messageOf returns the message of a coded error without its cause chain.
func messageOf(err error) string {
	if coded, ok := err.(*mdwerror.Error); ok {
		return coded.Message()
	}
	return err.Error()
}
