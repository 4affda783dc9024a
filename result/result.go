/*
Package result implements values of computations which may fail.

A Result carries either a value or an error. It is the return type of
composer.Pipeline.Try, for callers who would rather pass the outcome of a
pipeline along than branch on an error immediately.
*/
package result

import "fmt"

// Result is the outcome of a computation that may fail.
type Result[T any] interface {
	Match() Matcher[T]
	IsOk() bool
	Unwrap() (T, error)
}

type result[T any] struct {
	value T
	err   error
}

func Ok[T any](x T) Result[T] {
	return result[T]{value: x}
}

// Err creates a failed Result. A nil error is replaced by ErrNilError, as a
// failed result without an error could not be told apart from success.
func Err[T any](err error) Result[T] {
	if err == nil {
		err = ErrNilError
	}
	return result[T]{err: err}
}

// ErrNilError replaces a nil error given to Err.
var ErrNilError = fmt.Errorf("result: Err called with nil error")

// FromPair converts a Go (value, error) pair.
func FromPair[T any](x T, err error) Result[T] {
	if err != nil {
		return result[T]{err: err}
	}
	return Ok(x)
}

func (r result[T]) Match() Matcher[T] {
	return matcher[T]{r: r}
}

func (r result[T]) IsOk() bool {
	return r.err == nil
}

func (r result[T]) Unwrap() (T, error) {
	return r.value, r.err
}

func (r result[T]) String() string {
	if r.err != nil {
		return fmt.Sprintf("Err(%v)", r.err)
	}
	return fmt.Sprintf("Ok(%v)", r.value)
}

// Fmap lifts f to operate on results. Errors are passed through unchanged.
func Fmap[A, B any](f func(A) B) func(Result[A]) Result[B] {
	return func(r Result[A]) Result[B] {
		v, err := r.Unwrap()
		if err != nil {
			return Err[B](err)
		}
		return Ok(f(v))
	}
}

// --- Matching --------------------------------------------------------------

type Matcher[T any] interface {
	Ok(*T) Matcher[T]
	Err(*error) Matcher[T]
}

type matcher[T any] struct {
	r result[T]
}

func (rm matcher[T]) Ok(v *T) Matcher[T] {
	if rm.r.err == nil {
		*v = rm.r.value
		return rm
	}
	return nil
}

func (rm matcher[T]) Err(err *error) Matcher[T] {
	if rm.r.err != nil {
		*err = rm.r.err
		return rm
	}
	return nil
}
