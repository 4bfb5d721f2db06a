package convert

import "reflect"

var anyMapType = reflect.TypeOf(map[string]any(nil))

// ToMap returns the attributes of a property bag, or the map itself when v
// is already a map[string]any or a named type over one (aliased, not
// copied). Other string-keyed map types are copied into a map[string]any.
func (c *Converter) ToMap(v any) (map[string]any, bool) {
	switch x := v.(type) {
	case nil:
		return nil, false
	case map[string]any:
		return x, true
	case PropertyBag:
		props := x.AllProperties()
		if props == nil {
			return nil, false
		}
		return props, true
	}
	if Classify(v) != TagMap {
		return nil, false
	}
	return stringKeyed(v), true
}

// ToNode returns v unchanged when it is a non-nil Node.
func (c *Converter) ToNode(v any) (Node, bool) {
	n, ok := v.(Node)
	if !ok || isNilPointer(v) {
		return nil, false
	}
	return n, true
}

// ToRelationship returns v unchanged when it is a non-nil Relationship.
func (c *Converter) ToRelationship(v any) (Relationship, bool) {
	r, ok := v.(Relationship)
	if !ok || isNilPointer(v) {
		return nil, false
	}
	return r, true
}

// stringKeyed views a string-keyed map of any value type as map[string]any.
// Callers must have classified v as TagMap.
func stringKeyed(v any) map[string]any {
	if m, ok := v.(map[string]any); ok {
		return m
	}
	rv := reflect.ValueOf(v)
	if rv.Type().ConvertibleTo(anyMapType) {
		return rv.Convert(anyMapType).Interface().(map[string]any)
	}
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out
}
