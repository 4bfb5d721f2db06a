package convert

// elementCoercer converts one list element; nil marks a failed element.
type elementCoercer func(c *Converter, val Value) any

// elementCoercers is the closed set of element types a typed list supports.
var elementCoercers = map[Tag]elementCoercer{
	TagInteger: func(c *Converter, val Value) any {
		if n, ok := c.integerOf(val); ok {
			return n
		}
		return nil
	},
	TagFloat: func(c *Converter, val Value) any {
		if f, ok := c.floatOf(val); ok {
			return f
		}
		return nil
	},
	TagString: func(c *Converter, val Value) any {
		if s, ok := c.stringOf(val); ok {
			return s
		}
		return nil
	},
	TagBoolean: func(c *Converter, val Value) any {
		if b, ok := c.booleanOf(val); ok {
			return b
		}
		return nil
	},
	TagNode: func(_ *Converter, val Value) any {
		if val.tag == TagNode {
			return val.raw
		}
		return nil
	},
	TagRelationship: func(_ *Converter, val Value) any {
		if val.tag == TagRelationship {
			return val.raw
		}
		return nil
	},
}

// SupportsElement reports whether ToTypedList accepts elem.
func SupportsElement(elem Tag) bool {
	_, ok := elementCoercers[elem]
	return ok
}

// ToTypedList converts v to a list and coerces every element to elem.
//
// An unsupported elem fails with *UnsupportedTypeError before v is
// inspected. Otherwise ok is false only when v is not list-like; elements
// that cannot be coerced become nil in place, so len(list) always equals the
// length of the input.
func (c *Converter) ToTypedList(v any, elem Tag) (list []any, ok bool, err error) {
	coerce, supported := elementCoercers[elem]
	if !supported {
		return nil, false, &UnsupportedTypeError{Tag: elem}
	}
	items, ok := c.ToList(v)
	if !ok {
		return nil, false, nil
	}
	for i, e := range items {
		items[i] = coerce(c, Of(e))
	}
	return items, true, nil
}

// typedList is ToTypedList for element types known to be supported.
func (c *Converter) typedList(v any, elem Tag) ([]any, bool) {
	list, ok, _ := c.ToTypedList(v, elem)
	return list, ok
}

// ToIntegerList converts v to a list of int64 (or nil) elements.
func (c *Converter) ToIntegerList(v any) ([]any, bool) {
	return c.typedList(v, TagInteger)
}

// ToFloatList converts v to a list of float64 (or nil) elements.
func (c *Converter) ToFloatList(v any) ([]any, bool) {
	return c.typedList(v, TagFloat)
}

// ToStringList converts v to a list of string (or nil) elements.
func (c *Converter) ToStringList(v any) ([]any, bool) {
	return c.typedList(v, TagString)
}

// ToBooleanList converts v to a list of bool (or nil) elements.
func (c *Converter) ToBooleanList(v any) ([]any, bool) {
	return c.typedList(v, TagBoolean)
}

// ToNodeList keeps Node elements and nils out everything else.
func (c *Converter) ToNodeList(v any) ([]any, bool) {
	return c.typedList(v, TagNode)
}

// ToRelationshipList keeps Relationship elements and nils out everything else.
func (c *Converter) ToRelationshipList(v any) ([]any, bool) {
	return c.typedList(v, TagRelationship)
}
