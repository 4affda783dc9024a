package pointfree

import (
	"errors"
	"fmt"
)

// ErrArity is the sentinel matched by every *ArityError.
var ErrArity = errors.New("arity error")

// ErrTypeMismatch is the sentinel matched by every *TypeMismatchError.
var ErrTypeMismatch = errors.New("type mismatch")

// ArityError is returned when a composition or currying primitive receives
// an invalid shape: no functions to compose, an arity which cannot be
// determined, or a call with the wrong number of arguments.
type ArityError struct {
	Op     string // operation reporting the error, e.g. "pipe"
	Want   int    // expected number of arguments or functions; -1 if unknown
	Got    int    // actual number
	Reason string // optional explanation
}

func (e *ArityError) Error() string {
	msg := fmt.Sprintf("%s: arity error", e.Op)
	if e.Want >= 0 {
		msg = fmt.Sprintf("%s: expected %d, got %d", msg, e.Want, e.Got)
	}
	if e.Reason != "" {
		msg = msg + ": " + e.Reason
	}
	return msg
}

// Is lets errors.Is(err, ErrArity) succeed.
func (e *ArityError) Is(target error) bool {
	return target == ErrArity
}

// TypeMismatchError is returned when a value handed to a function (or to the
// next stage of a pipeline) does not fit the parameter it is bound to.
type TypeMismatchError struct {
	Op    string
	Index int    // parameter position, 0-based; -1 if not applicable
	Want  string // expected type
	Got   string // actual type
}

func (e *TypeMismatchError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%s: type mismatch: expected %s, got %s", e.Op, e.Want, e.Got)
	}
	return fmt.Sprintf("%s: type mismatch for argument #%d: expected %s, got %s",
		e.Op, e.Index, e.Want, e.Got)
}

// Is lets errors.Is(err, ErrTypeMismatch) succeed.
func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}

// NoFunctions creates the error for a composition of zero functions.
func NoFunctions(op string) error {
	return &ArityError{Op: op, Want: 1, Got: 0, Reason: "need at least one function"}
}
