package model

import (
	"encoding/json"

	"github.com/msto63/chronos/internal/calendar"
)

// wireItem is the vis-timeline data item shape.
type wireItem struct {
	ID           int               `json:"id" yaml:"id"`
	Content      string            `json:"content" yaml:"content"`
	Start        *calendar.Instant `json:"start,omitempty" yaml:"start,omitempty"`
	End          *calendar.Instant `json:"end,omitempty" yaml:"end,omitempty"`
	Group        int               `json:"group,omitempty" yaml:"group,omitempty"`
	Style        string            `json:"style,omitempty" yaml:"style,omitempty"`
	ClassName    string            `json:"className,omitempty" yaml:"className,omitempty"`
	Type         Kind              `json:"type,omitempty" yaml:"type,omitempty"`
	CDescription string            `json:"cDescription,omitempty" yaml:"cDescription,omitempty"`
	CLink        string            `json:"cLink,omitempty" yaml:"cLink,omitempty"`
	ArrowSpec    *ArrowSpec        `json:"arrowSpec,omitempty" yaml:"arrowSpec,omitempty"`
}

func (it Item) wire() wireItem {
	w := wireItem{
		ID:           it.ID,
		Content:      it.Content,
		End:          it.End,
		Group:        it.Group,
		Style:        it.Style,
		ClassName:    it.ClassName,
		CDescription: it.Description(),
		CLink:        it.Link(),
		ArrowSpec:    it.Arrow(),
	}
	k := it.Kind()
	// arrows are drawn between items and carry no start
	if k != KindArrow {
		start := it.Start
		w.Start = &start
	}
	// vis-timeline treats a missing type as a box
	if k != KindDefault {
		w.Type = k
	}
	return w
}

// MarshalJSON encodes the item as a vis-timeline data item.
func (it Item) MarshalJSON() ([]byte, error) {
	return json.Marshal(it.wire())
}

// MarshalYAML encodes the item with the same keys as MarshalJSON.
func (it Item) MarshalYAML() (interface{}, error) {
	return it.wire(), nil
}
