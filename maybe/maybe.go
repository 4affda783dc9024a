/*
Package maybe implements optional values.

A Maybe either holds a value (Just) or does not (Nothing). Point-free
pipelines use it where a step may come up empty, e.g. taking the last element
of an empty list or looking up a missing property. Clients inspect a Maybe by
matching:

	var v int
	switch m := x.Match(); m {
	case m.Just(&v):
		…
	case m.Nothing():
		…
	}

or collapse it with WithDefault.
*/
package maybe

import "fmt"

// Maybe is an optional value of type T.
type Maybe[T any] interface {
	Match() Matcher[T]
	IsJust() bool
	WithDefault(T) T
	Map(func(T) T) Maybe[T]
}

type maybe[T any] struct {
	value T
	tag   bool
}

func Just[T any](x T) Maybe[T] {
	return maybe[T]{value: x, tag: true}
}

func Nothing[T any]() Maybe[T] {
	return maybe[T]{tag: false}
}

// FromOK creates a Maybe from the Go "comma ok" idiom:
//
//	v, ok := cache[key]
//	m := maybe.FromOK(v, ok)
func FromOK[T any](x T, ok bool) Maybe[T] {
	if ok {
		return Just(x)
	}
	return Nothing[T]()
}

func (m maybe[T]) Match() Matcher[T] {
	return matcher[T]{m: m}
}

func (m maybe[T]) IsJust() bool {
	return m.tag
}

func (m maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

func (m maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.tag {
		return Just(f(m.value))
	}
	return m
}

func (m maybe[T]) String() string {
	if m.tag {
		return fmt.Sprintf("Just(%v)", m.value)
	}
	return "Nothing"
}

// --- Point-free helpers ----------------------------------------------------

// AndThen chains a computation which may itself come up empty.
func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	if v, ok := get(x); ok {
		return f(v)
	}
	return Nothing[S]()
}

// Fmap lifts f to operate on optional values. Different from method Map,
// the result type may differ from the input type.
//
//	name := maybe.Fmap(func(c Car) string { return c.Name })
func Fmap[A, B any](f func(A) B) func(Maybe[A]) Maybe[B] {
	return func(x Maybe[A]) Maybe[B] {
		if v, ok := get(x); ok {
			return Just(f(v))
		}
		return Nothing[B]()
	}
}

// get unpacks x without matching, as matching compares interface values
// and would panic for non-comparable T.
func get[T any](x Maybe[T]) (T, bool) {
	var zero T
	if x == nil || !x.IsJust() {
		return zero, false
	}
	return x.WithDefault(zero), true
}

// OrElse is the data-last form of WithDefault.
func OrElse[T any](def T) func(Maybe[T]) T {
	return func(x Maybe[T]) T {
		return x.WithDefault(def)
	}
}

// --- Matching --------------------------------------------------------------

// Matcher supports matching in switch statements. Matching compares
// interface values, therefore T has to be comparable at run time.
type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

type matcher[T any] struct {
	m maybe[T]
}

func (mm matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.tag {
		*v = mm.m.value
		return mm
	}
	return nil
}

func (mm matcher[T]) Nothing() Matcher[T] {
	if !mm.m.tag {
		return mm
	}
	return nil
}
