package composer

import (
	"reflect"

	pf "github.com/npillmayer/pointfree"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// Lift adapts a Go function of any signature to Fn.
//
// The function may return at most one value, optionally followed by an
// error. A trailing error result becomes the error of the Fn; a function
// without results yields nil.
//
// Arguments are checked when the Fn is called. Passing the wrong number of
// arguments results in a *pointfree.ArityError, passing an argument not
// assignable to its parameter in a *pointfree.TypeMismatchError. A nil
// argument is accepted for parameters of pointer, interface, slice, map,
// channel and function type.
func Lift(f any) (Fn, error) {
	return lift("lift", f)
}

// MustLift is like Lift, but panics if f cannot be lifted.
// It simplifies the initialization of package-level variables.
func MustLift(f any) Fn {
	fn, err := Lift(f)
	if err != nil {
		panic(err)
	}
	return fn
}

// Call invokes v with args. v may be an Fn, e.g. the partial application
// returned by a curried function, or any Go function accepted by Lift.
func Call(v any, args ...any) (any, error) {
	fn, err := lift("call", v)
	if err != nil {
		return nil, err
	}
	return fn(args...)
}

func lift(op string, f any) (Fn, error) {
	switch fn := f.(type) {
	case nil:
		return nil, &pf.TypeMismatchError{Op: op, Index: -1, Want: "function", Got: "nil"}
	case Fn:
		if fn == nil {
			return nil, &pf.TypeMismatchError{Op: op, Index: -1, Want: "function", Got: "nil composer.Fn"}
		}
		return fn, nil
	case func(...any) (any, error):
		if fn == nil {
			return nil, &pf.TypeMismatchError{Op: op, Index: -1, Want: "function", Got: "nil function"}
		}
		return Fn(fn), nil
	}
	rf := reflect.ValueOf(f)
	ft := rf.Type()
	if rf.Kind() != reflect.Func {
		return nil, &pf.TypeMismatchError{Op: op, Index: -1, Want: "function", Got: ft.String()}
	}
	if rf.IsNil() {
		return nil, &pf.TypeMismatchError{Op: op, Index: -1, Want: "function", Got: "nil " + ft.String()}
	}
	nout := ft.NumOut()
	hasErr := nout > 0 && ft.Out(nout-1) == errorType
	values := nout
	if hasErr {
		values--
	}
	if values > 1 {
		return nil, &pf.ArityError{Op: op, Want: 1, Got: values,
			Reason: "function may return at most one value besides an error"}
	}
	name := funcName(f)
	return func(args ...any) (any, error) {
		in, err := bindArgs(name, ft, args)
		if err != nil {
			return nil, err
		}
		out := rf.Call(in)
		if hasErr {
			if e := out[nout-1].Interface(); e != nil {
				return nil, e.(error)
			}
		}
		if values == 0 {
			return nil, nil
		}
		return out[0].Interface(), nil
	}, nil
}

// bindArgs converts args to call arguments for a function of type ft.
func bindArgs(op string, ft reflect.Type, args []any) ([]reflect.Value, error) {
	n := ft.NumIn()
	if ft.IsVariadic() {
		if len(args) < n-1 {
			return nil, &pf.ArityError{Op: op, Want: n - 1, Got: len(args),
				Reason: "too few arguments for variadic function"}
		}
	} else if len(args) != n {
		return nil, &pf.ArityError{Op: op, Want: n, Got: len(args)}
	}
	in := make([]reflect.Value, len(args))
	for i, a := range args {
		var pt reflect.Type
		if ft.IsVariadic() && i >= n-1 {
			pt = ft.In(n - 1).Elem()
		} else {
			pt = ft.In(i)
		}
		v, err := bindArg(op, i, a, pt)
		if err != nil {
			return nil, err
		}
		in[i] = v
	}
	return in, nil
}

func bindArg(op string, i int, a any, pt reflect.Type) (reflect.Value, error) {
	if a == nil {
		if nilable(pt.Kind()) {
			return reflect.Zero(pt), nil
		}
		return reflect.Value{}, &pf.TypeMismatchError{Op: op, Index: i, Want: pt.String(), Got: "nil"}
	}
	v := reflect.ValueOf(a)
	if !v.Type().AssignableTo(pt) {
		return reflect.Value{}, &pf.TypeMismatchError{Op: op, Index: i, Want: pt.String(), Got: v.Type().String()}
	}
	return v, nil
}

func nilable(k reflect.Kind) bool {
	switch k {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer,
		reflect.Slice, reflect.UnsafePointer:
		return true
	}
	return false
}
