package model

import (
	"encoding/json"
)

// Direction is the arrow head placement understood by the renderer.
type Direction int

const (
	DirectionNone     Direction = 0
	DirectionForward  Direction = 1
	DirectionBackward Direction = 2
	DirectionBoth     Direction = 3
)

var arrowTokens = [...]string{
	DirectionNone:     "--",
	DirectionForward:  "->",
	DirectionBackward: "<-",
	DirectionBoth:     "<>",
}

// DirectionOf maps an arrow type token to its direction.
func DirectionOf(token string) (Direction, bool) {
	for d, t := range arrowTokens {
		if t == token {
			return Direction(d), true
		}
	}
	return DirectionNone, false
}

// Token returns the arrow type token for d.
func (d Direction) Token() string {
	if d < 0 || int(d) >= len(arrowTokens) {
		return ""
	}
	return arrowTokens[d]
}

// ArrowSpec describes a connector between two items. Extra holds every
// other field of the source object, passed through verbatim.
type ArrowSpec struct {
	ID        int
	Item1     int
	Item2     int
	Direction Direction
	ArrowType string
	Block1    string
	Block2    string
	Extra     map[string]interface{}
}

// fields flattens the spec into the key set the renderer expects.
func (a ArrowSpec) fields() map[string]interface{} {
	out := make(map[string]interface{}, len(a.Extra)+7)
	for k, v := range a.Extra {
		out[k] = v
	}
	out["arrowType"] = a.ArrowType
	out["block1"] = a.Block1
	out["block2"] = a.Block2
	out["id"] = a.ID
	out["id_item_1"] = a.Item1
	out["id_item_2"] = a.Item2
	out["direction"] = int(a.Direction)
	return out
}

// MarshalJSON encodes the spec as a flat object.
func (a ArrowSpec) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.fields())
}

// MarshalYAML encodes the spec as a flat mapping.
func (a ArrowSpec) MarshalYAML() (interface{}, error) {
	return a.fields(), nil
}
