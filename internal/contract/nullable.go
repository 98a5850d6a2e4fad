package contract

import (
	"bytes"
	"encoding/json"
)

// Nullable is a tri-state field of a partial update: absent (Set=false),
// explicit null (Set=true, Value=nil) or a value. Use it with `json:",omitzero"`.
type Nullable[T any] struct {
	Set   bool
	Value *T
}

// Null returns an explicit null.
func Null[T any]() Nullable[T] {
	return Nullable[T]{Set: true}
}

// Value returns a set value.
func Value[T any](v T) Nullable[T] {
	return Nullable[T]{Set: true, Value: &v}
}

func (n Nullable[T]) IsZero() bool {
	return !n.Set
}

func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		n.Value = nil
		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	n.Value = &v

	return nil
}

func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if n.Value == nil {
		return []byte("null"), nil
	}

	return json.Marshal(n.Value)
}

// Apply writes the value into dst when the field was present.
func (n Nullable[T]) Apply(dst **T) {
	if n.Set {
		*dst = n.Value
	}
}
