package pointfree

// Curry2 transforms a binary function into a chain of unary ones:
// Curry2(f)(a)(b) = f(a, b).
func Curry2[A, B, R any](f func(A, B) R) func(A) func(B) R {
	return func(a A) func(B) R {
		return func(b B) R {
			return f(a, b)
		}
	}
}

// Curry3 transforms a ternary function into a chain of unary ones.
func Curry3[A, B, C, R any](f func(A, B, C) R) func(A) func(B) func(C) R {
	return func(a A) func(B) func(C) R {
		return func(b B) func(C) R {
			return func(c C) R {
				return f(a, b, c)
			}
		}
	}
}

// Curry4 transforms a function of four arguments into a chain of unary ones.
func Curry4[A, B, C, D, R any](f func(A, B, C, D) R) func(A) func(B) func(C) func(D) R {
	return func(a A) func(B) func(C) func(D) R {
		return Curry3(func(b B, c C, d D) R {
			return f(a, b, c, d)
		})
	}
}

// Uncurry2 is the inverse of Curry2.
func Uncurry2[A, B, R any](f func(A) func(B) R) func(A, B) R {
	return func(a A, b B) R {
		return f(a)(b)
	}
}

// Uncurry3 is the inverse of Curry3.
func Uncurry3[A, B, C, R any](f func(A) func(B) func(C) R) func(A, B, C) R {
	return func(a A, b B, c C) R {
		return f(a)(b)(c)
	}
}

// Partial2 binds the first argument of a binary function.
func Partial2[A, B, R any](f func(A, B) R, a A) func(B) R {
	return Curry2(f)(a)
}

// Flip swaps the arguments of a binary function. This is often needed to
// make a function data-last, e.g. to bind a pattern before the subject:
//
//	contains := pointfree.Flip(strings.Contains)
//	hasBobo := pointfree.Partial2(contains, "bobo")
func Flip[A, B, R any](f func(A, B) R) func(B, A) R {
	return func(b B, a A) R {
		return f(a, b)
	}
}
