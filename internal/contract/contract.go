// Package contract turns precondition checks into panics carrying a
// validation-category *errors.ClassifiedError.
package contract

import (
	"git.home.luguber.info/inful/collections/internal/foundation/errors"
)

// Require panics with message and the given key/value context when cond is
// false. kv must alternate string keys and values.
func Require(cond bool, message string, kv ...any) {
	if cond {
		return
	}
	b := errors.ValidationError(message)
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		b.WithContext(key, kv[i+1])
	}
	panic(b.Build())
}

// Positive requires n > 0.
func Positive(name string, n int) {
	if n > 0 {
		return
	}
	panic(errors.ValidationError(name + " must be positive").
		WithContext(name, n).
		Build())
}

// Index requires 0 <= idx < length.
func Index(idx, length int) {
	if idx >= 0 && idx < length {
		return
	}
	panic(errors.ValidationError("index out of range").
		WithContext("index", idx).
		WithContext("length", length).
		Build())
}

// Position requires 0 <= idx <= length, the valid range for an insertion.
func Position(idx, length int) {
	if idx >= 0 && idx <= length {
		return
	}
	panic(errors.ValidationError("insert position out of range").
		WithContext("index", idx).
		WithContext("length", length).
		Build())
}

// NonEmpty requires a non-empty byte string.
func NonEmpty(name string, b []byte) {
	if len(b) > 0 {
		return
	}
	panic(errors.ValidationError(name + " must not be empty").Build())
}
