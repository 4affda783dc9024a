package prop

import (
	"reflect"
	"strings"

	"github.com/npillmayer/pointfree/maybe"
)

// Get returns a function looking up property name of a record.
func Get(name string) func(any) maybe.Maybe[any] {
	return func(rec any) maybe.Maybe[any] {
		return maybe.FromOK(lookup(rec, name))
	}
}

// Value is like Get, but yields nil for missing properties.
func Value(name string) func(any) any {
	return func(rec any) any {
		v, _ := lookup(rec, name)
		return v
	}
}

// As returns a function looking up property name and asserting its type.
// A property of a different type counts as missing.
func As[V any](name string) func(any) maybe.Maybe[V] {
	return func(rec any) maybe.Maybe[V] {
		v, ok := lookup(rec, name)
		if !ok {
			return maybe.Nothing[V]()
		}
		typed, ok := v.(V)
		if !ok {
			tracer().Debugf("property %q is %T, not of requested type", name, v)
		}
		return maybe.FromOK(typed, ok)
	}
}

// Has reports whether a record has property name.
func Has(name string) func(any) bool {
	return func(rec any) bool {
		_, ok := lookup(rec, name)
		return ok
	}
}

// Satisfies returns a predicate checking property name of a record with p.
// Records without the property do not satisfy it.
func Satisfies(p func(any) bool, name string) func(any) bool {
	return func(rec any) bool {
		v, ok := lookup(rec, name)
		return ok && p(v)
	}
}

// SatisfiesAs is Satisfies for a predicate on a concrete type. Properties of
// a different type do not satisfy it.
//
//	keepYoungAdults := list.Filter(prop.SatisfiesAs(pred.Between(18, 25), "age"))
func SatisfiesAs[V any](p func(V) bool, name string) func(any) bool {
	get := As[V](name)
	return func(rec any) bool {
		var v V
		m := get(rec)
		if !m.IsJust() {
			return false
		}
		return p(m.WithDefault(v))
	}
}

// Where combines property predicates: a record matches if every property
// named in spec exists and satisfies its predicate.
func Where(spec map[string]func(any) bool) func(any) bool {
	checks := make([]func(any) bool, 0, len(spec))
	for name, p := range spec {
		checks = append(checks, Satisfies(p, name))
	}
	return func(rec any) bool {
		for _, check := range checks {
			if !check(rec) {
				return false
			}
		}
		return true
	}
}

// Pluck returns a function extracting property name from every record of a
// slice or array. Missing properties yield nil. Anything other than a slice
// or array yields nil.
func Pluck(name string) func(any) []any {
	return func(records any) []any {
		v := reflect.ValueOf(records)
		if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
			tracer().Debugf("pluck %q: cannot iterate %T", name, records)
			return nil
		}
		out := make([]any, v.Len())
		for i := range out {
			out[i], _ = lookup(v.Index(i).Interface(), name)
		}
		return out
	}
}

// Assoc returns a function setting property name to value. The input map is
// copied, not modified.
func Assoc(name string, value any) func(map[string]any) map[string]any {
	return func(rec map[string]any) map[string]any {
		out := make(map[string]any, len(rec)+1)
		for k, v := range rec {
			out[k] = v
		}
		out[name] = value
		return out
	}
}

// --- Lookup ----------------------------------------------------------------

func lookup(rec any, name string) (any, bool) {
	v := reflect.ValueOf(rec)
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil, false
		}
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Map:
		kt := v.Type().Key()
		if kt.Kind() != reflect.String {
			return nil, false
		}
		e := v.MapIndex(reflect.ValueOf(name).Convert(kt))
		if !e.IsValid() {
			return nil, false
		}
		return e.Interface(), true
	case reflect.Struct:
		if f, ok := field(v.Type(), name); ok {
			if fv, err := v.FieldByIndexErr(f.Index); err == nil {
				return fv.Interface(), true
			}
		}
	}
	tracer().Debugf("property %q not found in %T", name, rec)
	return nil, false
}

// field finds the exported struct field for a property name.
func field(t reflect.Type, name string) (reflect.StructField, bool) {
	if f, ok := t.FieldByName(name); ok && f.IsExported() {
		return f, true
	}
	var folded *reflect.StructField
	for _, f := range reflect.VisibleFields(t) {
		if !f.IsExported() || f.Anonymous {
			continue
		}
		if tag, _, _ := strings.Cut(f.Tag.Get("json"), ","); tag == name {
			return f, true
		}
		if folded == nil && strings.EqualFold(f.Name, name) {
			ff := f
			folded = &ff
		}
	}
	if folded != nil {
		return *folded, true
	}
	return reflect.StructField{}, false
}
