package convert

import "iter"

// OrderedSet holds distinct values in first-insertion order.
//
// Membership uses Equal, so non-comparable values such as lists and maps can
// be members. An OrderedSet is read-only once built and is safe for
// concurrent readers.
type OrderedSet struct {
	items []any
	index map[uint64][]int
}

// NewOrderedSet builds a set from values, keeping the first occurrence of
// each distinct value.
func NewOrderedSet(values []any) *OrderedSet {
	s := &OrderedSet{
		items: make([]any, 0, len(values)),
		index: make(map[uint64][]int, len(values)),
	}
	for _, v := range values {
		s.add(v)
	}
	return s
}

func (s *OrderedSet) add(v any) bool {
	val := Of(v)
	h := hashOf(val)
	for _, i := range s.index[h] {
		if equalValues(Of(s.items[i]), val) {
			return false
		}
	}
	s.index[h] = append(s.index[h], len(s.items))
	s.items = append(s.items, v)
	return true
}

// Len returns the number of distinct values.
func (s *OrderedSet) Len() int {
	return len(s.items)
}

// At returns the i-th value in insertion order.
func (s *OrderedSet) At(i int) any {
	return s.items[i]
}

// Contains reports whether an equal value is in the set.
func (s *OrderedSet) Contains(v any) bool {
	val := Of(v)
	for _, i := range s.index[hashOf(val)] {
		if equalValues(Of(s.items[i]), val) {
			return true
		}
	}
	return false
}

// Values returns a copy of the members in insertion order.
func (s *OrderedSet) Values() []any {
	out := make([]any, len(s.items))
	copy(out, s.items)
	return out
}

// All iterates the members in insertion order.
func (s *OrderedSet) All() iter.Seq[any] {
	return func(yield func(any) bool) {
		for _, v := range s.items {
			if !yield(v) {
				return
			}
		}
	}
}

// ToSet converts v to a list and removes later duplicates. ok is false when
// v is not list-like.
func (c *Converter) ToSet(v any) (*OrderedSet, bool) {
	items, ok := c.ToList(v)
	if !ok {
		return nil, false
	}
	return NewOrderedSet(items), true
}
