package pointfree

// --- Heterogeneous composition ---------------------------------------------

// Pipe2 composes left to right: Pipe2(f, g)(x) = g(f(x)).
func Pipe2[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// Pipe3 composes left to right: Pipe3(f, g, h)(x) = h(g(f(x))).
func Pipe3[A, B, C, D any](f func(A) B, g func(B) C, h func(C) D) func(A) D {
	return func(a A) D {
		return h(g(f(a)))
	}
}

// Pipe4 composes four functions left to right.
func Pipe4[A, B, C, D, E any](f func(A) B, g func(B) C, h func(C) D, i func(D) E) func(A) E {
	return func(a A) E {
		return i(h(g(f(a))))
	}
}

// Pipe5 composes five functions left to right.
func Pipe5[A, B, C, D, E, F any](f func(A) B, g func(B) C, h func(C) D, i func(D) E,
	j func(E) F) func(A) F {
	return func(a A) F {
		return j(i(h(g(f(a)))))
	}
}

// Compose2 composes right to left: Compose2(f, g)(x) = f(g(x)).
func Compose2[A, B, C any](f func(B) C, g func(A) B) func(A) C {
	return Pipe2(g, f)
}

// Compose3 composes right to left: Compose3(f, g, h)(x) = f(g(h(x))).
func Compose3[A, B, C, D any](f func(C) D, g func(B) C, h func(A) B) func(A) D {
	return Pipe3(h, g, f)
}

// Compose4 composes four functions right to left.
func Compose4[A, B, C, D, E any](f func(D) E, g func(C) D, h func(B) C, i func(A) B) func(A) E {
	return Pipe4(i, h, g, f)
}

// Compose5 composes five functions right to left.
func Compose5[A, B, C, D, E, F any](f func(E) F, g func(D) E, h func(C) D, i func(B) C,
	j func(A) B) func(A) F {
	return Pipe5(j, i, h, g, f)
}

// --- Homogeneous composition -----------------------------------------------

// Pipe composes an arbitrary number of functions T → T, left to right.
// It returns an *ArityError if no function is given.
func Pipe[T any](fns ...func(T) T) (func(T) T, error) {
	if len(fns) == 0 {
		return nil, NoFunctions("pipe")
	}
	chain := append([]func(T) T(nil), fns...) // callers may re-use their slice
	return func(a T) T {
		for _, f := range chain {
			a = f(a)
		}
		return a
	}, nil
}

// Compose composes an arbitrary number of functions T → T, right to left.
// It returns an *ArityError if no function is given.
func Compose[T any](fns ...func(T) T) (func(T) T, error) {
	if len(fns) == 0 {
		return nil, NoFunctions("compose")
	}
	chain := make([]func(T) T, len(fns))
	for i, f := range fns {
		chain[len(fns)-1-i] = f
	}
	return Pipe(chain...)
}

// MustPipe is like Pipe, but panics instead of returning an error.
func MustPipe[T any](fns ...func(T) T) func(T) T {
	p, err := Pipe(fns...)
	if err != nil {
		panic(err)
	}
	return p
}

// MustCompose is like Compose, but panics instead of returning an error.
func MustCompose[T any](fns ...func(T) T) func(T) T {
	c, err := Compose(fns...)
	if err != nil {
		panic(err)
	}
	return c
}
