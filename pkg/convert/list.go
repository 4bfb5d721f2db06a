package convert

import (
	"iter"
	"reflect"
)

// Iterable is a finite collection that can be ranged over once or more.
type Iterable interface {
	All() iter.Seq[any]
}

// Iterator is a finite forward-only cursor, e.g. a query result stream.
type Iterator interface {
	Next() bool
	Value() any
}

// ToList converts v to a new list. ok is false when v is not list-like:
// nil, scalars, maps, entities, []byte and arrays of primitive elements.
// Iterables and iterators are drained eagerly.
func (c *Converter) ToList(v any) ([]any, bool) {
	switch x := v.(type) {
	case nil:
		return nil, false
	case []any:
		out := make([]any, len(x))
		copy(out, x)
		return out, true
	case *OrderedSet:
		if x == nil {
			return nil, false
		}
		return x.Values(), true
	case []string:
		return copyTyped(x), true
	case []int64:
		return copyTyped(x), true
	case []int:
		return copyTyped(x), true
	case []float64:
		return copyTyped(x), true
	case []bool:
		return copyTyped(x), true
	case []map[string]any:
		return copyTyped(x), true
	case []byte:
		return nil, false
	case iter.Seq[any]:
		if x == nil {
			return nil, false
		}
		return c.drain(x), true
	case Iterable:
		return c.drain(x.All()), true
	case Iterator:
		out := make([]any, 0, c.sizeHint)
		for x.Next() {
			out = append(out, x.Value())
		}
		return out, true
	}
	return reflectList(v)
}

func copyTyped[T any](in []T) []any {
	out := make([]any, len(in))
	for i, e := range in {
		out[i] = e
	}
	return out
}

func (c *Converter) drain(seq iter.Seq[any]) []any {
	out := make([]any, 0, c.sizeHint)
	for e := range seq {
		out = append(out, e)
	}
	return out
}

// reflectList covers slices of any other element type and arrays whose
// elements are not primitive.
func reflectList(v any) ([]any, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return nil, false
		}
	case reflect.Array:
		if isPrimitiveKind(rv.Type().Elem().Kind()) {
			return nil, false
		}
	default:
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

func isPrimitiveKind(k reflect.Kind) bool {
	switch k {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	}
	return false
}
