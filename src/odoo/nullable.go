// Copyright (c) 2026 serxoz All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package odoo

import "encoding/json"

// Nullable is an optional value of type E with a deliberately forgiving
// decoding rule: the server represents "no value" as the literal boolean
// false regardless of the field's declared type, so a decode failure is
// treated as absence rather than an error.
//
// The rule is opt-in per field. Fields that legitimately hold booleans must
// use a plain bool, otherwise a genuine false would be read as absent:
//
//	type Product struct {
//	    ID   int64                 `json:"id"`
//	    Name string                `json:"name"`
//	    Code odoo.Nullable[string] `json:"default_code"`
//	}
//
// Note that any decode failure produces absence, not only the false-as-null
// pattern. A field that unexpectedly returns a nested object decodes as
// absent instead of failing, so Valid=false can also mean a schema mismatch.
type Nullable[E any] struct {
	// Value is the decoded value; meaningful only when Valid is true.
	Value E
	// Valid reports whether a value of the declared type was present.
	Valid bool
}

// Some wraps a present value.
func Some[E any](v E) Nullable[E] {
	return Nullable[E]{Value: v, Valid: true}
}

// Get returns the value and whether it is present.
func (n Nullable[E]) Get() (E, bool) { return n.Value, n.Valid }

// Or returns the value when present, fallback otherwise.
func (n Nullable[E]) Or(fallback E) E {
	if n.Valid {
		return n.Value
	}
	return fallback
}

// Ptr returns a pointer to the value, or nil when absent.
func (n Nullable[E]) Ptr() *E {
	if !n.Valid {
		return nil
	}
	v := n.Value
	return &v
}

// UnmarshalJSON decodes data as E, coercing any failure to absence.
// It never returns an error for the field itself.
func (n *Nullable[E]) UnmarshalJSON(data []byte) error {
	var v E
	if err := json.Unmarshal(data, &v); err != nil {
		*n = Nullable[E]{}
		return nil
	}
	n.Value, n.Valid = v, true
	return nil
}

// MarshalJSON encodes an absent value as the literal false, mirroring the
// server's own convention so round-tripped records keep their shape.
func (n Nullable[E]) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("false"), nil
	}
	return json.Marshal(n.Value)
}
