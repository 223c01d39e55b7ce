// Package nullable provides a JSON field type that tells an absent key apart
// from an explicit null, for PATCH payloads over nullable columns.
package nullable

import (
	"encoding/json"
)

// Field records whether a key was present in a JSON payload. A present
// field with a nil Value was sent as null.
type Field[T any] struct {
	Present bool
	Value   *T
}

// Of returns a present field holding v.
func Of[T any](v T) Field[T] {
	return Field[T]{Present: true, Value: &v}
}

// Null returns a present field holding null.
func Null[T any]() Field[T] {
	return Field[T]{Present: true}
}

// UnmarshalJSON is only called for keys present in the payload.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.Present = true
	if string(data) == "null" {
		f.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	f.Value = &v
	return nil
}

// IsNull reports whether the field was sent as null.
func (f Field[T]) IsNull() bool {
	return f.Present && f.Value == nil
}

// Interface returns the held value, or nil when the field is absent or null.
// It is the hook the request validator uses to check the inner value.
func (f Field[T]) Interface() any {
	if f.Value == nil {
		return nil
	}
	return *f.Value
}
