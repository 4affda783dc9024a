package composer

import (
	"reflect"

	pf "github.com/npillmayer/pointfree"
)

// Curry returns a curried version of f. The arity has to be declared with
// option Arity, as an Fn cannot tell how many arguments it expects; without
// it Curry fails with an *pointfree.ArityError.
//
// Calling the curried function with fewer arguments than its arity returns
// (as the result value) a new Fn awaiting the remaining arguments. As soon as
// enough arguments have accumulated, f is called with all of them, in the
// order supplied. Arguments may be grouped in any way:
//
//	c(a)(b, c) ≡ c(a, b)(c) ≡ c(a, b, c)
//
// Surplus arguments of the final call are passed on to f as well.
func Curry(f Fn, opts ...Option) (Fn, error) {
	if f == nil {
		return nil, &pf.TypeMismatchError{Op: "curry", Index: -1, Want: "function", Got: "nil"}
	}
	p := configure(opts)
	if p.arity < 0 {
		return nil, &pf.ArityError{Op: "curry", Want: -1, Got: p.arity,
			Reason: "arity of a composer.Fn cannot be determined, use option Arity"}
	}
	if p.name == "" {
		p.name = funcName(f)
	}
	return curryN(f, p, nil), nil
}

// CurryFunc is like Curry, but accepts any Go function (see Lift). The arity
// is taken from the function's signature unless option Arity is given.
// Variadic functions require option Arity.
func CurryFunc(f any, opts ...Option) (Fn, error) {
	fn, err := lift("curry", f)
	if err != nil {
		return nil, err
	}
	p := configure(opts)
	if p.arity < 0 {
		ft := reflect.TypeOf(f)
		if ft.IsVariadic() {
			return nil, &pf.ArityError{Op: "curry", Want: -1, Got: ft.NumIn(),
				Reason: "cannot curry variadic " + ft.String() + " without option Arity"}
		}
		p.arity = ft.NumIn()
	}
	if p.name == "" {
		p.name = funcName(f)
	}
	return curryN(fn, p, nil), nil
}

// curryN returns a function awaiting p.arity arguments, acc of which have
// already been supplied.
func curryN(f Fn, p props, acc []any) Fn {
	return func(args ...any) (any, error) {
		all := make([]any, 0, len(acc)+len(args))
		all = append(append(all, acc...), args...)
		if len(all) < p.arity {
			tracer().Debugf("curry %s: have %d of %d arguments", p.name, len(all), p.arity)
			return curryN(f, p, all), nil
		}
		return f(all...)
	}
}

// Unary returns a function which calls f with its first argument only,
// dropping any further arguments a caller passes, e.g. the index and
// container handed over by an iteration callback. Called without
// arguments, it calls f without arguments.
func Unary(f Fn) Fn {
	return func(args ...any) (any, error) {
		if len(args) == 0 {
			return f()
		}
		return f(args[0])
	}
}

// MapIndexed calls f for every element of xs with the arguments
// (element, index, xs), the way iteration callbacks are usually invoked,
// and collects the results. It stops at the first error.
func MapIndexed(f Fn, xs []any) ([]any, error) {
	out := make([]any, len(xs))
	for i, x := range xs {
		v, err := f(x, i, xs)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
