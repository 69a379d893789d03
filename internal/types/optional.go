package types

import (
	"encoding/json"
)

// Optional is a tri-state JSON field for partial updates: a field can be
// absent from the input (leave the column untouched), explicitly null
// (clear the column), or carry a value. Collapsing to a pointer would lose
// the absent-vs-null distinction that clients use to clear optional fields.
type Optional[T any] struct {
	Set   bool
	Valid bool
	Value T
}

// UnmarshalJSON implements the json.Unmarshaler interface. It is only called
// when the field is present in the input, so Set is always true here.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Valid = false
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

// MarshalJSON implements the json.Marshaler interface.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set || !o.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// Ptr returns the value as a nullable pointer: nil for explicit null,
// &value otherwise. Only meaningful when Set is true.
func (o Optional[T]) Ptr() *T {
	if !o.Valid {
		return nil
	}
	v := o.Value
	return &v
}
