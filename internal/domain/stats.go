package domain

import (
	"encoding/json"
	"fmt"
)

// StatKind discriminates the scalar type held by a StatValue.
type StatKind int

const (
	StatNumber StatKind = iota
	StatBool
	StatString
)

// StatValue is a tagged scalar: exactly one of Number, Bool or Str is
// meaningful depending on Kind. Item stat bags are open-ended, but values
// are restricted to these three shapes so serialization stays well-defined.
type StatValue struct {
	Kind   StatKind
	Number float64
	Bool   bool
	Str    string
}

// Stats maps stat names to tagged scalar values. Stored as JSONB.
type Stats map[string]StatValue

// NumberStat builds a numeric stat value.
func NumberStat(n float64) StatValue { return StatValue{Kind: StatNumber, Number: n} }

// BoolStat builds a boolean stat value.
func BoolStat(b bool) StatValue { return StatValue{Kind: StatBool, Bool: b} }

// StringStat builds a string stat value.
func StringStat(s string) StatValue { return StatValue{Kind: StatString, Str: s} }

// MarshalJSON emits the bare scalar for the active kind.
func (v StatValue) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case StatNumber:
		return json.Marshal(v.Number)
	case StatBool:
		return json.Marshal(v.Bool)
	case StatString:
		return json.Marshal(v.Str)
	default:
		return nil, fmt.Errorf("unknown stat kind %d", v.Kind)
	}
}

// UnmarshalJSON accepts a number, bool or string scalar. Objects, arrays and
// null are rejected so malformed stat bags fail at the edge.
func (v *StatValue) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch val := raw.(type) {
	case float64:
		*v = NumberStat(val)
	case bool:
		*v = BoolStat(val)
	case string:
		*v = StringStat(val)
	default:
		return fmt.Errorf("%w: stat value must be a number, bool or string", ErrInvalidInput)
	}
	return nil
}
