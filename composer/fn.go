package composer

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"
)

// Fn is an opaque callable: it takes ordered positional arguments and
// produces one output. A non-nil error aborts any composition it is part of.
type Fn func(args ...any) (any, error)

// Call invokes f. It exists for symmetry with the package-level Call, which
// accepts any function value.
func (f Fn) Call(args ...any) (any, error) {
	return f(args...)
}

// Then composes f with g, left to right: f.Then(g)(x) = g(f(x)).
func (f Fn) Then(g Fn) Fn {
	return func(args ...any) (any, error) {
		v, err := f(args...)
		if err != nil {
			return nil, err
		}
		return g(v)
	}
}

// Identity returns its first argument, or nil if called without arguments.
var Identity Fn = func(args ...any) (any, error) {
	if len(args) == 0 {
		return nil, nil
	}
	return args[0], nil
}

// Trace returns an identity Fn which logs its argument, prefixed by label,
// at info level. Insert it between pipeline stages to watch intermediate
// values:
//
//	composer.Pipe(sortBy, composer.Trace("sorted"), last, name)
func Trace(label string) Fn {
	return func(args ...any) (any, error) {
		var v any
		if len(args) > 0 {
			v = args[0]
		}
		tracer().Infof("%s: %v", label, v)
		return v, nil
	}
}

// funcName returns a readable name for a function value, used for tracing.
func funcName(f any) string {
	v := reflect.ValueOf(f)
	if v.Kind() != reflect.Func || v.IsNil() {
		return fmt.Sprintf("%v", f)
	}
	rf := runtime.FuncForPC(v.Pointer())
	if rf == nil {
		return v.Type().String()
	}
	name := rf.Name()
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	return name
}
