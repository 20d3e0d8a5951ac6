package rest

import (
	"bytes"
	"encoding/json"
)

// Optional distinguishes a field that is absent from one sent as null.
// Absent leaves Set false; null sets Set and Null; anything else is decoded
// into Value.
type Optional[T any] struct {
	Set   bool
	Null  bool
	Value T
}

func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		o.Null = true
		return nil
	}
	return json.Unmarshal(b, &o.Value)
}
