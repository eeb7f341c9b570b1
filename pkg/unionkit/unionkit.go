// Package unionkit defines the runtime contract surface of generated union
// code: the fallible conversion result, the type-identification primitive,
// and the generic helpers built on top of them.
//
// Generated code depends only on this package. Nothing here performs code
// generation; see the uniongen command for that.
package unionkit

import (
	"fmt"
	"reflect"
)

// Result is the outcome of a fallible conversion out of a union container.
// On success it carries the requested payload of type T. On failure it
// carries the original container value of type C, unchanged, so a failed
// conversion never loses data and the caller can retry against another case.
type Result[T, C any] struct {
	val  T
	rest C
	ok   bool
}

// OK returns a successful Result carrying v. It is called by generated code.
func OK[T, C any](v T) Result[T, C] {
	return Result[T, C]{val: v, ok: true}
}

// Fail returns a failed Result carrying the original container c. It is
// called by generated code.
func Fail[T, C any](c C) Result[T, C] {
	return Result[T, C]{rest: c}
}

// OK reports whether the conversion succeeded.
func (r Result[T, C]) OK() bool { return r.ok }

// Get returns the converted payload. The bool is false if the conversion
// failed, in which case the payload is the zero value of T.
func (r Result[T, C]) Get() (T, bool) {
	return r.val, r.ok
}

// Rest returns the original container of a failed conversion. The bool is
// false if the conversion succeeded, in which case there is no container to
// return.
func (r Result[T, C]) Rest() (C, bool) {
	if r.ok {
		var zero C
		return zero, false
	}
	return r.rest, true
}

// Unwrap returns the converted payload, or panics if the conversion failed.
// It is a last-resort convenience for callers that have already established
// the held case by other means, such as [Holds].
func (r Result[T, C]) Unwrap() T {
	if !r.ok {
		panic(fmt.Sprintf("unionkit: %T does not hold %s", r.rest, reflect.TypeFor[T]()))
	}
	return r.val
}

// Must adapts a fallible projection such as AsFoo or MutFoo into a panic on
// mismatch:
//
//	n := unionkit.Must(v.AsNumber())
//
// Like [Result.Unwrap], it is never used by generated code itself.
func Must[T any](v T, ok bool) T {
	if !ok {
		panic(fmt.Sprintf("unionkit: container does not hold %s", reflect.TypeFor[T]()))
	}
	return v
}

// Container is satisfied by unions deriving the TypedContainer capability.
type Container interface {
	// PayloadType returns the type of the currently held payload. It is nil
	// for a zero container holding no case.
	PayloadType() reflect.Type
}

// Holds reports whether c currently holds a payload of type T.
func Holds[T any](c Container) bool {
	return c.PayloadType() == reflect.TypeFor[T]()
}
