/*
Package prop accesses properties of records by name.

Records are maps with string keys, structs, or pointers to either. For
structs, a property name matches an exported field by its Go name, then by
the name in its `json` tag, and finally case-insensitively, so that the
property "horsepower" finds field Horsepower:

	byHorsepower := prop.Value("horsepower")
	name := prop.Get("name")

The functions are curried, property name first, record last, to fit into
point-free pipelines.
*/
package prop

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pointfree.prop'.
func tracer() tracing.Trace {
	return tracing.Select("pointfree.prop")
}
