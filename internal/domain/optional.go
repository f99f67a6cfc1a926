package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Optional carries a value together with a presence flag, distinguishing
// "field absent from the payload" (Present false, leave the stored value
// unchanged) from "field present with a value" (Present true, overwrite).
//
// Explicit JSON null is rejected with ErrNullField: none of the columns
// served by this API are nullable, so "clear this field" is not a
// representable intent.
type Optional[T any] struct {
	Value   T
	Present bool
}

// Some returns an Optional holding v with the presence flag set.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Present: true}
}

// Or returns the wrapped value when present, otherwise fallback.
// This is the merge rule for partial updates: absent fields retain
// the value already stored.
func (o Optional[T]) Or(fallback T) T {
	if o.Present {
		return o.Value
	}
	return fallback
}

// UnmarshalJSON implements json.Unmarshaler. It is only invoked when the
// field's key appears in the payload, which is what sets Present.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return ErrNullField
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Present = true
	return nil
}

// MarshalJSON implements json.Marshaler so Optional round-trips in tests
// and debug output. Absent values encode as null.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Present {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// String implements fmt.Stringer for readable log output.
func (o Optional[T]) String() string {
	if !o.Present {
		return "<absent>"
	}
	return fmt.Sprintf("%v", o.Value)
}
