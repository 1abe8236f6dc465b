package task

// Result is the tagged-union completion payload carried by every cell: it
// holds either a value of T (success) or an error of E (failure), never
// both, and is only meaningful once the owning cell is terminal.
//
// Either T or E may be instantiated as struct{} ("unit") when a body has
// nothing to report beyond its status — a function task returning a plain
// void equivalent produces Result[struct{}, struct{}].
type Result[T, E any] struct {
	ok    bool
	value T
	err   E
}

// Success constructs a Result holding a value.
func Success[T, E any](value T) Result[T, E] {
	return Result[T, E]{ok: true, value: value}
}

// Failure constructs a Result holding an error.
func Failure[T, E any](err E) Result[T, E] {
	return Result[T, E]{ok: false, err: err}
}

// HasValue reports whether the carrier holds a success value. For a body
// that keeps the Body contract it is true iff the owning cell's status is
// StatusSuccessful (spec.md invariant 3); Result itself does not check this,
// and an in-place task returns its finalizer's Result whatever the status.
func (r Result[T, E]) HasValue() bool {
	return r.ok
}

// Value returns the stored success value. Only meaningful when HasValue is
// true; otherwise it returns T's zero value.
func (r Result[T, E]) Value() T {
	return r.value
}

// Err returns the stored error. Only meaningful when HasValue is false;
// otherwise it returns E's zero value.
func (r Result[T, E]) Err() E {
	return r.err
}
