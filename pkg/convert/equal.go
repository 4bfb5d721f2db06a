package convert

import (
	"encoding/binary"
	"math"
	"reflect"
	"sort"
	"time"

	"github.com/cespare/xxhash/v2"
)

// elementIdentity is implemented by graph entities with a stable id.
type elementIdentity interface {
	ElementID() string
}

// Equal reports whether a and b are the same value for set membership.
//
// Integers compare numerically across Go widths, floats by IEEE-754 bits (so
// NaN equals NaN and 0.0 differs from -0.0), and an INTEGER never equals a
// FLOAT. Lists compare element-wise, maps key-wise, graph entities by element
// id. Anything else is equal only when comparable and ==.
func Equal(a, b any) bool {
	return equalValues(Of(a), Of(b))
}

func equalValues(a, b Value) bool {
	if a.tag != b.tag {
		return false
	}
	switch a.tag {
	case TagNull:
		return true
	case TagBoolean:
		return a.b == b.b
	case TagInteger:
		return a.i == b.i
	case TagFloat:
		return math.Float64bits(a.f) == math.Float64bits(b.f)
	case TagString:
		return a.s == b.s
	case TagList:
		la, lb := sequenceItems(a.raw), sequenceItems(b.raw)
		if len(la) != len(lb) {
			return false
		}
		for i := range la {
			if !equalValues(Of(la[i]), Of(lb[i])) {
				return false
			}
		}
		return true
	case TagMap:
		ma, mb := stringKeyed(a.raw), stringKeyed(b.raw)
		if len(ma) != len(mb) {
			return false
		}
		for k, va := range ma {
			vb, ok := mb[k]
			if !ok || !equalValues(Of(va), Of(vb)) {
				return false
			}
		}
		return true
	case TagNode, TagRelationship:
		ia, okA := a.raw.(elementIdentity)
		ib, okB := b.raw.(elementIdentity)
		if okA && okB {
			return ia.ElementID() == ib.ElementID()
		}
	}
	return sameComparable(a.raw, b.raw)
}

func sameComparable(a, b any) bool {
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if ra.Type() != rb.Type() || !ra.Comparable() || !rb.Comparable() {
		return false
	}
	return a == b
}

// sequenceItems returns the elements of a TagList value.
func sequenceItems(v any) []any {
	switch x := v.(type) {
	case []any:
		return x
	case *OrderedSet:
		if x == nil {
			return nil
		}
		return x.items
	}
	items, _ := reflectList(v)
	return items
}

// hashOf returns a hash consistent with equalValues: equal values always hash
// the same.
func hashOf(val Value) uint64 {
	d := xxhash.New()
	writeHash(d, val)
	return d.Sum64()
}

func writeHash(d *xxhash.Digest, val Value) {
	var buf [9]byte
	buf[0] = byte(val.tag)
	switch val.tag {
	case TagBoolean:
		if val.b {
			buf[1] = 1
		}
		_, _ = d.Write(buf[:2])
	case TagInteger:
		binary.LittleEndian.PutUint64(buf[1:], uint64(val.i))
		_, _ = d.Write(buf[:])
	case TagFloat:
		binary.LittleEndian.PutUint64(buf[1:], math.Float64bits(val.f))
		_, _ = d.Write(buf[:])
	case TagString:
		binary.LittleEndian.PutUint64(buf[1:], uint64(len(val.s)))
		_, _ = d.Write(buf[:])
		_, _ = d.WriteString(val.s)
	case TagList:
		items := sequenceItems(val.raw)
		binary.LittleEndian.PutUint64(buf[1:], uint64(len(items)))
		_, _ = d.Write(buf[:])
		for _, e := range items {
			writeHash(d, Of(e))
		}
	case TagMap:
		m := stringKeyed(val.raw)
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		binary.LittleEndian.PutUint64(buf[1:], uint64(len(keys)))
		_, _ = d.Write(buf[:])
		for _, k := range keys {
			_, _ = d.WriteString(k)
			_, _ = d.Write([]byte{0})
			writeHash(d, Of(m[k]))
		}
	case TagNode, TagRelationship:
		if id, ok := val.raw.(elementIdentity); ok {
			_, _ = d.Write(buf[:1])
			_, _ = d.WriteString(id.ElementID())
			return
		}
		writeComparableHash(d, buf, val.raw)
	case TagDuration:
		binary.LittleEndian.PutUint64(buf[1:], uint64(val.raw.(time.Duration)))
		_, _ = d.Write(buf[:])
	case TagDateTime:
		ts := val.raw.(time.Time)
		binary.LittleEndian.PutUint64(buf[1:], uint64(ts.Unix()))
		_, _ = d.Write(buf[:])
		binary.LittleEndian.PutUint64(buf[1:], uint64(ts.Nanosecond()))
		_, _ = d.Write(buf[1:])
	default:
		writeComparableHash(d, buf, val.raw)
	}
}

// writeComparableHash hashes a value that equalValues compares with ==.
func writeComparableHash(d *xxhash.Digest, buf [9]byte, v any) {
	_, _ = d.Write(buf[:1])
	if v == nil {
		return
	}
	rv := reflect.ValueOf(v)
	_, _ = d.WriteString(rv.Type().String())
	if rv.Comparable() {
		writeReflectHash(d, rv)
	}
}

// writeReflectHash walks a comparable value. Floats equal under == (0 and
// -0) hash alike; pointers and channels hash by address.
func writeReflectHash(d *xxhash.Digest, rv reflect.Value) {
	var buf [8]byte
	switch rv.Kind() {
	case reflect.Bool:
		if rv.Bool() {
			buf[0] = 1
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		binary.LittleEndian.PutUint64(buf[:], uint64(rv.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		binary.LittleEndian.PutUint64(buf[:], rv.Uint())
	case reflect.Float32, reflect.Float64:
		if f := rv.Float(); f != 0 {
			binary.LittleEndian.PutUint64(buf[:], math.Float64bits(f))
		}
	case reflect.Complex64, reflect.Complex128:
		c := rv.Complex()
		writeReflectHash(d, reflect.ValueOf(real(c)))
		writeReflectHash(d, reflect.ValueOf(imag(c)))
		return
	case reflect.String:
		_, _ = d.WriteString(rv.String())
		_, _ = d.Write([]byte{0})
		return
	case reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		binary.LittleEndian.PutUint64(buf[:], uint64(rv.Pointer()))
	case reflect.Struct:
		for i := 0; i < rv.NumField(); i++ {
			writeReflectHash(d, rv.Field(i))
		}
		return
	case reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			writeReflectHash(d, rv.Index(i))
		}
		return
	case reflect.Interface:
		if rv.IsNil() {
			_, _ = d.Write([]byte{0})
			return
		}
		elem := rv.Elem()
		_, _ = d.WriteString(elem.Type().String())
		writeReflectHash(d, elem)
		return
	}
	_, _ = d.Write(buf[:])
}
