// Package errors provides the classified error primitives used across the
// collections module.
//
// Containers never return errors: a caller bug (an index past the end, an
// empty key, a zero capacity) is a contract violation and panics with a
// *ClassifiedError so that a recover() site or a test can inspect the
// category and the context that triggered it.
//
// Example usage:
//
//	panic(errors.ValidationError("index out of range").
//		WithContext("index", idx).
//		WithContext("length", n).
//		Build())
package errors
