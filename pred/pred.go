// Package pred provides predicate combinators for point-free code.
//
//	isBobo := pred.Test(regexp.MustCompile(`(?i)bobo`))
//	isYoungAdult := pred.Between(18, 25)
//	verdict := pred.IfElse(pred.Both(lovesTech, worksHard), mayEnjoy, wouldNotEnjoy)
package pred

import (
	"cmp"
	"regexp"
)

// Test returns a predicate reporting whether a string matches re.
func Test(re *regexp.Regexp) func(string) bool {
	return re.MatchString
}

// TestPattern compiles pattern and returns the predicate for it.
func TestPattern(pattern string) (func(string) bool, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return Test(re), nil
}

// Equals returns a predicate reporting whether its argument equals x.
func Equals[T comparable](x T) func(T) bool {
	return func(y T) bool {
		return x == y
	}
}

// Complement negates p.
func Complement[T any](p func(T) bool) func(T) bool {
	return func(x T) bool {
		return !p(x)
	}
}

// Both is true if p and q are true. q is not called if p is false.
func Both[T any](p, q func(T) bool) func(T) bool {
	return func(x T) bool {
		return p(x) && q(x)
	}
}

// Either is true if p or q is true. q is not called if p is true.
func Either[T any](p, q func(T) bool) func(T) bool {
	return func(x T) bool {
		return p(x) || q(x)
	}
}

// AllPass is true if every predicate is true. It is true for no predicates.
func AllPass[T any](ps ...func(T) bool) func(T) bool {
	return func(x T) bool {
		for _, p := range ps {
			if !p(x) {
				return false
			}
		}
		return true
	}
}

// AnyPass is true if at least one predicate is true.
func AnyPass[T any](ps ...func(T) bool) func(T) bool {
	return func(x T) bool {
		for _, p := range ps {
			if p(x) {
				return true
			}
		}
		return false
	}
}

// Gt returns a predicate reporting whether its argument is greater than x.
func Gt[T cmp.Ordered](x T) func(T) bool {
	return func(y T) bool {
		return y > x
	}
}

// Lt returns a predicate reporting whether its argument is less than x.
func Lt[T cmp.Ordered](x T) func(T) bool {
	return func(y T) bool {
		return y < x
	}
}

// Between returns a predicate reporting whether its argument lies
// within [lo, hi].
func Between[T cmp.Ordered](lo, hi T) func(T) bool {
	return func(y T) bool {
		return lo <= y && y <= hi
	}
}

// IfElse returns a function which applies onTrue to its argument if p holds,
// and onFalse otherwise.
func IfElse[T, R any](p func(T) bool, onTrue, onFalse func(T) R) func(T) R {
	return func(x T) R {
		if p(x) {
			return onTrue(x)
		}
		return onFalse(x)
	}
}
