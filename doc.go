/*
Package pointfree offers helpers for writing Go in point-free style, i.e. defining
functions by composing other functions instead of naming their arguments.

The root package holds the typed layer: compile-time checked composition
(Pipe2…Pipe5, Compose2…Compose5), currying (Curry2…Curry4) and arity adapters
(Unary, UnaryIndexed). Sub-packages add the rest:

	composer   dynamic composition over opaque callables (Pipe, Compose, Curry, Unary)
	maybe      optional values
	result     values which may carry an error
	list       data-last slice combinators (SortBy, Last, Filter, …)
	pred       predicate combinators (Test, Equals, IfElse, …)
	prop       property access by name for maps and structs
	numparse   radix-aware integer parsing

A typical point-free definition looks like this:

	fastest := pointfree.Pipe3(
		list.SortBy(func(c Car) int { return c.Horsepower }),
		list.Last[Car],
		maybe.Fmap(func(c Car) string { return c.Name }),
	)
	name := fastest(cars).WithDefault("none")

Point-free style is a matter of taste. Overusing it tends to hide the data
a function operates on; use it where it makes code read like a description
of the transformation.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package pointfree
