// Package result provides a Result type which represents the outcome of an operation
// that either succeeded with a data payload or failed with an error payload.
// A Result is created with Ok or Err and is immutable afterwards.  The error payload
// type is unconstrained, so plain strings, structured values or error values can all
// be carried on the failure side.
package result

// Result is a two variant value: either Ok carrying a data payload of type T,
// or Err carrying an error payload of type E.  The zero value of Result is an
// Err carrying the zero value of E.
type Result[T, E any] struct {
	ok   bool
	data T
	err  E
}

// Ok returns a successful Result carrying data.
func Ok[T, E any](data T) Result[T, E] {
	return Result[T, E]{ok: true, data: data}
}

// Err returns a failed Result carrying err.
func Err[T, E any](err E) Result[T, E] {
	return Result[T, E]{err: err}
}

// IsOk reports whether r is the Ok variant.
func (r Result[T, E]) IsOk() bool {
	return r.ok
}

// IsErr reports whether r is the Err variant.
func (r Result[T, E]) IsErr() bool {
	return !r.ok
}

// Data returns the data payload and true if r is Ok,
// or the zero value of T and false if r is Err.
func (r Result[T, E]) Data() (T, bool) {
	return r.data, r.ok
}

// Err returns the error payload and true if r is Err,
// or the zero value of E and false if r is Ok.
func (r Result[T, E]) Err() (E, bool) {
	if r.ok {
		return *new(E), false
	}
	return r.err, true
}

// Expect returns the data payload.  If r is Err it panics with an
// *UnmetExpectationError carrying message verbatim.
// Use Expect only where the surrounding logic already guarantees success;
// the panic indicates a defect, not a runtime condition to handle.
func (r Result[T, E]) Expect(message string) T {
	if !r.ok {
		panic(&UnmetExpectationError{message: message})
	}
	return r.data
}

// Unwrap returns the data payload.  If r is Err it panics with
// ErrUnsuccessfulResult.  Like Expect, Unwrap is an escape hatch for call
// sites that have independently established the result is successful.
func (r Result[T, E]) Unwrap() T {
	if !r.ok {
		panic(ErrUnsuccessfulResult)
	}
	return r.data
}

// UnwrapOrDefault returns the data payload if r is Ok, or def if r is Err.
func (r Result[T, E]) UnwrapOrDefault(def T) T {
	if !r.ok {
		return def
	}
	return r.data
}

// UnwrapOrElse returns the data payload if r is Ok, or f applied to the
// error payload if r is Err.  f is not invoked in the Ok case.  A panic
// raised by f propagates to the caller unmodified.
func (r Result[T, E]) UnwrapOrElse(f func(err E) T) T {
	if !r.ok {
		return f(r.err)
	}
	return r.data
}

// UnwrapOrZero returns the data payload if r is Ok, or the zero value of T
// if r is Err.
func (r Result[T, E]) UnwrapOrZero() T {
	if !r.ok {
		return *new(T)
	}
	return r.data
}

// UnwrapOrNil returns a pointer to a copy of the data payload if r is Ok,
// or nil if r is Err.  Unlike UnwrapOrZero the failure sentinel is
// distinguishable from a legitimate zero payload.
func (r Result[T, E]) UnwrapOrNil() *T {
	if !r.ok {
		return nil
	}
	data := r.data
	return &data
}

// MapData applies f to the data payload of an Ok result and returns the new
// Ok value.  An Err result is returned unchanged and f is not invoked.
// A panic raised by f propagates to the caller unmodified.
func MapData[T, T2, E any](r Result[T, E], f func(data T) T2) Result[T2, E] {
	if !r.ok {
		return Err[T2, E](r.err)
	}
	return Ok[T2, E](f(r.data))
}

// MapDataOrDefault applies f to the data payload of an Ok result, and
// substitutes def for an Err result.  The returned Result is always the Ok
// variant; the error channel is collapsed entirely.
func MapDataOrDefault[T, T2, E any](r Result[T, E], f func(data T) T2, def T2) Result[T2, E] {
	if !r.ok {
		return Ok[T2, E](def)
	}
	return Ok[T2, E](f(r.data))
}

// MapError applies f to the error payload of an Err result and returns the
// new Err value.  An Ok result is returned unchanged and f is not invoked.
// A panic raised by f propagates to the caller unmodified.
func MapError[T, E, E2 any](r Result[T, E], f func(err E) E2) Result[T, E2] {
	if r.ok {
		return Ok[T, E2](r.data)
	}
	return Err[T, E2](f(r.err))
}
