/*
Package composer builds new functions from existing ones without intermediate
named bindings, working on opaque callables of type Fn.

Where the root package pointfree relies on generics, composer mirrors the
loose calling conventions of dynamic languages: functions take an arbitrary
list of positional arguments and produce one result. This makes it possible
to compose functions of varying shape with a single variadic Pipe, to curry
functions in any grouping of arguments, and to adapt functions to callers
passing more arguments than expected (Unary).

	add3 := composer.MustLift(func(a, b, c int) int { return a + b + c })
	add, _ := composer.Curry(add3, composer.Arity(3))
	inc, _ := add(1, 0)                 // a partially applied Fn
	seven, _ := composer.Call(inc, 6)   // 7

Go functions of arbitrary signature enter the dynamic world through Lift,
which checks argument types at call time and reports mismatches as
*pointfree.TypeMismatchError. Errors returned by wrapped functions are
handed to the caller unchanged.

Composed functions hold no mutable state and may be called concurrently.

Tracing

Stage execution and curry accumulation are traced at debug level to the
tracer with key 'pointfree.composer'. Trace logs at info level.
*/
package composer

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pointfree.composer'.
func tracer() tracing.Trace {
	return tracing.Select("pointfree.composer")
}
