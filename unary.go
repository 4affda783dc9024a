package pointfree

// Unary adapts a single-argument function to a call site which passes an
// additional argument, e.g. an index. The extra argument is discarded.
func Unary[A, B, X any](f func(A) B) func(A, X) B {
	return func(a A, _ X) B {
		return f(a)
	}
}

// UnaryIndexed adapts a single-argument function to the container iteration
// callback shape (value, index, container), as used by list.MapIndexed.
// Only the value reaches f.
func UnaryIndexed[A, B any](f func(A) B) func(A, int, []A) B {
	return func(a A, _ int, _ []A) B {
		return f(a)
	}
}
