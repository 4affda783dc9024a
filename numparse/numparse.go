/*
Package numparse parses integers the lenient way scripting languages do:
leading whitespace and a sign are skipped, the longest run of digits valid for
the radix is converted, trailing garbage is ignored. Failure is signalled by
NaN instead of an error.

The second parameter, the radix, is what makes such a parser dangerous in
point-free code. Handed directly to an iteration which calls back with
(value, index, container), the index ends up as the radix:

	xs := []any{"1", "12", "123"}
	composer.MapIndexed(numparse.Fn, xs)                  // [1 NaN 1]
	composer.MapIndexed(composer.Unary(numparse.Fn), xs)  // [1 12 123]
*/
package numparse

import (
	"fmt"
	"math"
	"reflect"
	"strings"
	"unicode"

	pf "github.com/npillmayer/pointfree"
	"github.com/npillmayer/pointfree/composer"
)

// ParseInt parses the integer prefix of s in the given radix.
//
// Radix 0 means 10, or 16 if s starts with "0x" or "0X". A radix outside
// of 2…36 yields NaN, as does a string without any valid leading digit.
func ParseInt(s string, radix int) float64 {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	sign := 1.0
	if s != "" && (s[0] == '+' || s[0] == '-') {
		if s[0] == '-' {
			sign = -1.0
		}
		s = s[1:]
	}
	hex := len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
	switch {
	case radix == 0 && hex:
		radix = 16
		s = s[2:]
	case radix == 0:
		radix = 10
	case radix == 16 && hex:
		s = s[2:]
	case radix < 2 || radix > 36:
		return math.NaN()
	}
	value, digits := 0.0, 0
	for _, r := range s {
		d := digit(r)
		if d < 0 || d >= radix {
			break
		}
		value = value*float64(radix) + float64(d)
		digits++
	}
	if digits == 0 {
		return math.NaN()
	}
	return sign * value
}

// Decimal parses the integer prefix of s in radix 10.
func Decimal(s string) float64 {
	return ParseInt(s, 10)
}

func digit(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0')
	case r >= 'a' && r <= 'z':
		return int(r-'a') + 10
	case r >= 'A' && r <= 'Z':
		return int(r-'A') + 10
	}
	return -1
}

// Fn is ParseInt as a composer.Fn with loose calling conventions: the first
// argument has to be a string, an optional second argument of integer type is
// taken as the radix (any other type counts as radix 0), further arguments
// are ignored.
var Fn composer.Fn = func(args ...any) (any, error) {
	if len(args) == 0 {
		return nil, &pf.ArityError{Op: "numparse", Want: 1, Got: 0}
	}
	s, ok := args[0].(string)
	if !ok {
		return nil, &pf.TypeMismatchError{Op: "numparse", Index: 0, Want: "string",
			Got: fmt.Sprintf("%T", args[0])}
	}
	radix := 0
	if len(args) > 1 {
		radix = asInt(args[1])
	}
	return ParseInt(s, radix), nil
}

func asInt(x any) int {
	v := reflect.ValueOf(x)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return int(v.Uint())
	}
	return 0
}
