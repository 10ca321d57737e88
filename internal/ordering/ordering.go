// Package ordering builds item comparators from orderby directives.
//
// A directive is a list of field names, each optionally prefixed with "-"
// for descending order. Keys are applied in turn until one differs.
package ordering

import (
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	mdwerror "github.com/msto63/chronos/foundation/core/error"
	"github.com/msto63/chronos/internal/model"
)

// Field is a sortable item attribute.
type Field string

const (
	FieldStart       Field = "start"
	FieldEnd         Field = "end"
	FieldContent     Field = "content"
	FieldStyle       Field = "style"
	FieldDescription Field = "description"
)

// Fields lists the accepted field names.
var Fields = []Field{FieldStart, FieldEnd, FieldContent, FieldStyle, FieldDescription}

// Order is +1 for ascending and -1 for descending.
type Order int

const (
	Ascending  Order = 1
	Descending Order = -1
)

// DescendingPrefix marks a descending key.
const DescendingPrefix = "-"

// Key is one step of an ordering.
type Key struct {
	Field Field
	Order Order
}

// String returns the key as written in a directive.
func (k Key) String() string {
	if k.Order == Descending {
		return DescendingPrefix + string(k.Field)
	}
	return string(k.Field)
}

// Comparator orders two items, returning a negative number when a sorts
// first, zero when they tie and a positive number otherwise.
type Comparator func(a, b model.Item) int

// ParseOrderBy turns directive arguments into keys. Surrounding
// whitespace is ignored.
func ParseOrderBy(args []string) ([]Key, error) {
	keys := make([]Key, 0, len(args))
	for _, arg := range args {
		arg = strings.TrimSpace(arg)
		key := Key{Order: Ascending}
		if strings.HasPrefix(arg, DescendingPrefix) {
			key.Order = Descending
			arg = strings.TrimSpace(strings.TrimPrefix(arg, DescendingPrefix))
		}
		key.Field = Field(strings.ToLower(arg))
		if !key.Field.valid() {
			return nil, mdwerror.Newf("Unknown ORDERBY field %q. Use one of start, end, content, style, description", arg).
				WithCode(mdwerror.CodeDirectiveArgument).
				WithDetail("field", arg)
		}
		keys = append(keys, key)
	}
	return keys, nil
}

func (f Field) valid() bool {
	for _, known := range Fields {
		if f == known {
			return true
		}
	}
	return false
}

// Build returns a comparator applying keys in order. Text fields collate
// according to locale. With no keys every pair ties.
func Build(keys []Key, locale string) Comparator {
	cmpText := textComparer(locale)

	return func(a, b model.Item) int {
		for _, key := range keys {
			var diff int
			switch key.Field {
			case FieldStart:
				diff = a.Start.Compare(b.Start)
			case FieldEnd:
				diff = a.EndOrStart().Compare(b.EndOrStart())
			case FieldContent:
				diff = cmpText(a.Content, b.Content)
			case FieldStyle:
				diff = cmpText(a.Style, b.Style)
			case FieldDescription:
				diff = cmpText(a.Description(), b.Description())
			}
			if diff != 0 {
				return int(key.Order) * diff
			}
		}
		return 0
	}
}

// Sort orders items in place. Ties keep their document order.
func Sort(items []model.Item, keys []Key, locale string) {
	if len(keys) == 0 {
		return
	}
	cmp := Build(keys, locale)
	sort.SliceStable(items, func(i, j int) bool {
		return cmp(items[i], items[j]) < 0
	})
}

// textComparer returns a collator-backed compare function. A collator is
// not safe for concurrent use, so calls are serialized.
func textComparer(locale string) func(a, b string) int {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	c := collate.New(tag)
	var mu sync.Mutex
	return func(a, b string) int {
		mu.Lock()
		defer mu.Unlock()
		return c.CompareString(a, b)
	}
}
