package models

import "encoding/json"

// Optional is a patch field wrapper that tells apart "key absent from the
// request" (leave the stored value alone) from "key present" (overwrite,
// where an explicit JSON null clears the stored value).
type Optional[T any] struct {
	Set   bool
	Value *T
}

// Some builds an Optional carrying a value. Mostly useful in tests.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: &v}
}

// None builds an Optional that explicitly clears the stored value.
func None[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

// UnmarshalJSON implements the json.Unmarshaler interface. It only runs when
// the key is present in the payload, so Set doubles as a presence flag.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

// MarshalJSON implements the json.Marshaler interface.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set || o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}
