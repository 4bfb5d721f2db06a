package convert

import (
	"encoding/json"
	"math"
	"reflect"
	"time"
)

// Tag is the closed set of categories a dynamic value is classified into.
type Tag uint8

const (
	TagUnknown Tag = iota
	TagNull
	TagBoolean
	TagInteger
	TagFloat
	TagString
	TagList
	TagMap
	TagNode
	TagRelationship
	TagDuration
	TagDateTime
)

var tagNames = [...]string{
	TagUnknown:      "UNKNOWN",
	TagNull:         "NULL",
	TagBoolean:      "BOOLEAN",
	TagInteger:      "INTEGER",
	TagFloat:        "FLOAT",
	TagString:       "STRING",
	TagList:         "LIST",
	TagMap:          "MAP",
	TagNode:         "NODE",
	TagRelationship: "RELATIONSHIP",
	TagDuration:     "DURATION",
	TagDateTime:     "DATE_TIME",
}

// String returns the Cypher type name of the tag.
func (t Tag) String() string {
	if int(t) < len(tagNames) {
		return tagNames[t]
	}
	return tagNames[TagUnknown]
}

// PropertyBag is an opaque entity exposing its stored attributes.
type PropertyBag interface {
	AllProperties() map[string]any
}

// Node is a graph vertex property bag.
type Node interface {
	PropertyBag
	NodeLabels() []string
}

// Relationship is a graph edge property bag.
type Relationship interface {
	PropertyBag
	RelationshipType() string
}

// Value is a dynamic value classified exactly once. The payload for the
// scalar tags is extracted at classification time so coercers can switch on
// Tag without probing the runtime type again.
type Value struct {
	tag Tag
	raw any
	i   int64
	f   float64
	s   string
	b   bool
}

// Tag returns the category of the value.
func (v Value) Tag() Tag { return v.tag }

// Raw returns the value exactly as supplied.
func (v Value) Raw() any { return v.raw }

// Int returns the payload of an INTEGER value.
func (v Value) Int() int64 { return v.i }

// Float returns the payload of a FLOAT value.
func (v Value) Float() float64 { return v.f }

// Str returns the payload of a STRING value.
func (v Value) Str() string { return v.s }

// Bool returns the payload of a BOOLEAN value.
func (v Value) Bool() bool { return v.b }

// IsNull reports whether the value is null.
func (v Value) IsNull() bool { return v.tag == TagNull }

// Classify maps any value to its Tag. It is total: anything not recognised
// is TagUnknown.
func Classify(v any) Tag {
	return Of(v).tag
}

// Of classifies v and extracts its scalar payload.
func Of(v any) Value {
	val := Value{raw: v}
	switch x := v.(type) {
	case nil:
		val.tag = TagNull
	case bool:
		val.tag, val.b = TagBoolean, x
	case int:
		val.tag, val.i = TagInteger, int64(x)
	case int8:
		val.tag, val.i = TagInteger, int64(x)
	case int16:
		val.tag, val.i = TagInteger, int64(x)
	case int32:
		val.tag, val.i = TagInteger, int64(x)
	case int64:
		val.tag, val.i = TagInteger, x
	case uint:
		val.setUnsigned(uint64(x))
	case uint8:
		val.setUnsigned(uint64(x))
	case uint16:
		val.setUnsigned(uint64(x))
	case uint32:
		val.setUnsigned(uint64(x))
	case uint64:
		val.setUnsigned(x)
	case float32:
		val.tag, val.f = TagFloat, float64(x)
	case float64:
		val.tag, val.f = TagFloat, x
	case string:
		val.tag, val.s = TagString, x
	case json.Number:
		if i, err := x.Int64(); err == nil {
			val.tag, val.i = TagInteger, i
		} else if f, err := x.Float64(); err == nil {
			val.tag, val.f = TagFloat, f
		} else {
			val.tag, val.s = TagString, string(x)
		}
	case time.Duration:
		val.tag = TagDuration
	case time.Time:
		val.tag = TagDateTime
	case Relationship:
		val.tag = TagRelationship
		if isNilPointer(x) {
			val.tag, val.raw = TagNull, nil
		}
	case Node:
		val.tag = TagNode
		if isNilPointer(x) {
			val.tag, val.raw = TagNull, nil
		}
	case map[string]any:
		val.tag = TagMap
	case *OrderedSet:
		val.tag = TagList
		if x == nil {
			val.tag, val.raw = TagNull, nil
		}
	case []any:
		val.tag = TagList
	default:
		val.classifyKind()
	}
	return val
}

func (v *Value) setUnsigned(u uint64) {
	if u > math.MaxInt64 {
		v.tag, v.f = TagFloat, float64(u)
		return
	}
	v.tag, v.i = TagInteger, int64(u)
}

// isNilPointer reports whether v is a typed nil pointer, such as a
// (*storage.Node)(nil) stored in an interface.
func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// classifyKind handles named types (type Celsius float64, []string,
// map[string]int, ...) that the fast type switch does not cover.
func (v *Value) classifyKind() {
	rv := reflect.ValueOf(v.raw)
	switch rv.Kind() {
	case reflect.Bool:
		v.tag, v.b = TagBoolean, rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v.tag, v.i = TagInteger, rv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		v.setUnsigned(rv.Uint())
	case reflect.Float32, reflect.Float64:
		v.tag, v.f = TagFloat, rv.Float()
	case reflect.String:
		v.tag, v.s = TagString, rv.String()
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			v.tag = TagMap
		}
	case reflect.Slice:
		if rv.Type().Elem().Kind() != reflect.Uint8 {
			v.tag = TagList
		}
	case reflect.Array:
		if !isPrimitiveKind(rv.Type().Elem().Kind()) {
			v.tag = TagList
		}
	}
}
