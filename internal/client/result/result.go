package result

// Result is either a success payload of type T or exactly one *APIError.
// The zero value is not valid; build values with Ok or Fail.
type Result[T any] struct {
	value T
	err   *APIError
	ok    bool
}

// Ok wraps a success payload.
func Ok[T any](v T) Result[T] {
	return Result[T]{value: v, ok: true}
}

// Fail wraps an error. A nil err is replaced by a decode failure so the
// "never both absent" rule holds even for careless callers.
func Fail[T any](err *APIError) Result[T] {
	if err == nil {
		err = DecodeFailure("nil error passed to result.Fail")
	}
	return Result[T]{err: err}
}

// IsOK reports whether the result holds a payload.
func (r Result[T]) IsOK() bool {
	return r.ok
}

// Value returns the payload and true on success, or the zero T and false.
func (r Result[T]) Value() (T, bool) {
	return r.value, r.ok
}

// Err returns the error, or nil on success.
func (r Result[T]) Err() *APIError {
	if r.ok {
		return nil
	}
	if r.err == nil {
		return DecodeFailure("empty result")
	}
	return r.err
}

// Unwrap converts the result to the usual (T, error) pair.
func (r Result[T]) Unwrap() (T, error) {
	if r.ok {
		return r.value, nil
	}
	return r.value, r.Err()
}
