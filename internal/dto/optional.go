package dto

import "encoding/json"

// Optional is a tri-state JSON field for partial updates. A key that is
// absent from the request body leaves Set false and the target field
// untouched; an explicit null arrives with Set true and Valid false; a
// value arrives with both true. encoding/json only invokes UnmarshalJSON
// for keys that are present, which is what makes the distinction possible.
type Optional[T any] struct {
	Set   bool
	Valid bool
	Value T
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Valid = false
		var zero T
		o.Value = zero
		return nil
	}
	o.Valid = true
	return json.Unmarshal(data, &o.Value)
}

// Some builds a present, non-null Optional. Mostly useful in tests and
// service-level callers that bypass JSON binding.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Valid: true, Value: v}
}

// Null builds a present-but-null Optional.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}
