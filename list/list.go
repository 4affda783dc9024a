/*
Package list provides slice combinators for point-free pipelines.

All functions are data-last: configuration is bound first, the slice is
passed last, which lets the result slot straight into pointfree.Pipe2 and
friends:

	fastest := pointfree.Pipe3(
		list.SortBy(horsepower),
		list.Last[Car],
		maybe.Fmap(name),
	)

None of the functions modifies its input slice.
*/
package list

import (
	"cmp"
	"slices"

	"github.com/npillmayer/pointfree/maybe"
)

// Number is the constraint for Sum.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Map returns a function applying f to every element.
func Map[A, B any](f func(A) B) func([]A) []B {
	return func(xs []A) []B {
		out := make([]B, len(xs))
		for i, x := range xs {
			out[i] = f(x)
		}
		return out
	}
}

// MapIndexed is Map for callbacks taking (element, index, slice).
// Wrap single-argument functions with pointfree.UnaryIndexed.
func MapIndexed[A, B any](f func(A, int, []A) B) func([]A) []B {
	return func(xs []A) []B {
		out := make([]B, len(xs))
		for i, x := range xs {
			out[i] = f(x, i, xs)
		}
		return out
	}
}

// Pluck is Map, named for the common case of extracting a field.
func Pluck[T, V any](get func(T) V) func([]T) []V {
	return Map(get)
}

// Filter keeps the elements satisfying p.
func Filter[T any](p func(T) bool) func([]T) []T {
	return func(xs []T) []T {
		var out []T
		for _, x := range xs {
			if p(x) {
				out = append(out, x)
			}
		}
		return out
	}
}

// Reject drops the elements satisfying p.
func Reject[T any](p func(T) bool) func([]T) []T {
	return Filter(func(x T) bool { return !p(x) })
}

// SortBy returns a function sorting a copy of its input by key, ascending.
// The sort is stable.
func SortBy[T any, K cmp.Ordered](key func(T) K) func([]T) []T {
	return func(xs []T) []T {
		sorted := slices.Clone(xs)
		slices.SortStableFunc(sorted, func(a, b T) int {
			return cmp.Compare(key(a), key(b))
		})
		return sorted
	}
}

// Head returns the first element, if any.
func Head[T any](xs []T) maybe.Maybe[T] {
	if len(xs) == 0 {
		return maybe.Nothing[T]()
	}
	return maybe.Just(xs[0])
}

// Last returns the last element, if any.
func Last[T any](xs []T) maybe.Maybe[T] {
	if len(xs) == 0 {
		return maybe.Nothing[T]()
	}
	return maybe.Just(xs[len(xs)-1])
}

// Find returns the first element satisfying p, if any.
func Find[T any](p func(T) bool) func([]T) maybe.Maybe[T] {
	return func(xs []T) maybe.Maybe[T] {
		for _, x := range xs {
			if p(x) {
				return maybe.Just(x)
			}
		}
		return maybe.Nothing[T]()
	}
}

// Reduce folds a slice from the left, starting with init.
func Reduce[T, A any](f func(A, T) A, init A) func([]T) A {
	return func(xs []T) A {
		acc := init
		for _, x := range xs {
			acc = f(acc, x)
		}
		return acc
	}
}

// Sum adds up all elements; the sum of an empty slice is 0.
func Sum[N Number](xs []N) N {
	var sum N
	for _, x := range xs {
		sum += x
	}
	return sum
}
