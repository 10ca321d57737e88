package parser

import (
	"fmt"
	"strings"

	"github.com/yosuke-furukawa/json5/encoding/json5"

	mdwerror "github.com/msto63/chronos/foundation/core/error"
	"github.com/msto63/chronos/internal/model"
)

// Arrow blob keys
const (
	arrowKeyType   = "arrowType"
	arrowKeyBlock1 = "block1"
	arrowKeyBlock2 = "block2"
)

// keys the resolver derives itself and never passes through
var derivedArrowKeys = map[string]bool{
	arrowKeyType:   true,
	arrowKeyBlock1: true,
	arrowKeyBlock2: true,
	"id":           true,
	"id_item_1":    true,
	"id_item_2":    true,
	"direction":    true,
}

func (pc *parseContext) parseArrow(line string, lineNumber int) {
	var blob map[string]interface{}
	if err := json5.Unmarshal([]byte(doubleQuote(line[len(ArrowPrefix):])), &blob); err != nil || blob == nil {
		pc.add(lineNumber, mdwerror.CodeInvalidFormat, "Invalid arrow format: %s", line)
		return
	}

	block1 := textOf(blob[arrowKeyBlock1])
	from, ok := pc.findItem(block1)
	if !ok {
		pc.add(lineNumber, mdwerror.CodeReference, "Block 1 not found: %s", block1)
		return
	}
	block2 := textOf(blob[arrowKeyBlock2])
	to, ok := pc.findItem(block2)
	if !ok {
		pc.add(lineNumber, mdwerror.CodeReference, "Block 2 not found: %s", block2)
		return
	}

	arrowType := textOf(blob[arrowKeyType])
	direction, ok := model.DirectionOf(arrowType)
	if !ok {
		pc.add(lineNumber, mdwerror.CodeArrowType, "Invalid arrow type: %s", arrowType)
		return
	}

	extra := make(map[string]interface{})
	for k, v := range blob {
		if !derivedArrowKeys[k] {
			extra[k] = v
		}
	}

	pc.items = append(pc.items, model.Item{
		ID: lineNumber,
		Detail: model.Arrow{Spec: model.ArrowSpec{
			ID:        lineNumber,
			Item1:     from.ID,
			Item2:     to.ID,
			Direction: direction,
			ArrowType: arrowType,
			Block1:    block1,
			Block2:    block2,
			Extra:     extra,
		}},
	})
}

// doubleQuote rewrites single-quoted JSON5 strings as double-quoted ones
// and drops trailing commas, leaving a blob the decoder accepts.
func doubleQuote(src string) string {
	var b strings.Builder
	b.Grow(len(src))

	var quote byte
	for i := 0; i < len(src); i++ {
		c := src[i]
		switch {
		case quote != 0:
			switch {
			case c == '\\' && i+1 < len(src):
				next := src[i+1]
				i++
				if quote == '\'' && next == '\'' {
					b.WriteByte('\'')
					continue
				}
				b.WriteByte(c)
				b.WriteByte(next)
			case c == quote:
				quote = 0
				b.WriteByte('"')
			case c == '"':
				b.WriteString(`\"`)
			default:
				b.WriteByte(c)
			}
		case c == '"' || c == '\'':
			quote = c
			b.WriteByte('"')
		case c == ',' && closesNext(src[i+1:]):
			// trailing comma
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// closesNext reports whether rest starts with a closing bracket after
// optional whitespace.
func closesNext(rest string) bool {
	rest = strings.TrimLeft(rest, " \t\r\n")
	return rest != "" && (rest[0] == '}' || rest[0] == ']')
}

// findItem returns the first earlier item whose content is exactly
// content. Arrows themselves are never endpoints.
func (pc *parseContext) findItem(content string) (model.Item, bool) {
	for _, it := range pc.items {
		if it.Kind() != model.KindArrow && it.Content == content {
			return it, true
		}
	}
	return model.Item{}, false
}

func textOf(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	default:
		return fmt.Sprint(t)
	}
}
