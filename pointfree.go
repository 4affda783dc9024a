package pointfree

// Identity returns its argument. It is the neutral element of composition.
func Identity[T any](a T) T {
	return a
}

// Unit returns unit for any input => the zero value for T.
func Unit[T any](_ T) T {
	var a T
	return a
}

// Const returns a function that produces a, ignoring its argument.
func Const[B, A any](a A) func(B) A {
	return func(_ B) A {
		return a
	}
}

// Tap returns a function which calls f for its side effect and then hands
// its argument through unchanged. Useful to peek into a pipeline:
//
//	debug := pointfree.Tap(func(cars []Car) { log.Println(cars) })
func Tap[T any](f func(T)) func(T) T {
	return func(a T) T {
		f(a)
		return a
	}
}

// DefaultTo returns a function which replaces the zero value of T by def
// and returns any other value unchanged.
//
//	orAnon := pointfree.DefaultTo("anonymous")
//	orAnon("")     // "anonymous"
//	orAnon("Jane") // "Jane"
func DefaultTo[T comparable](def T) func(T) T {
	var zero T
	return func(a T) T {
		if a == zero {
			return def
		}
		return a
	}
}
