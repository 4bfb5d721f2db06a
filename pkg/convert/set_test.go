package convert

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orneryd/nornicdb-convert/pkg/storage"
)

func TestToSet(t *testing.T) {
	c, _ := newTestConverter(t)

	tests := []struct {
		name  string
		input any
		want  []any
	}{
		{"keeps first occurrence order", []any{1, 2, 1, 3, 2}, []any{1, 2, 3}},
		{"strings", []string{"b", "a", "b", "c", "a"}, []any{"b", "a", "c"}},
		{"integer widths are equal", []any{int64(1), 1, int32(1)}, []any{int64(1)}},
		{"integer and float differ", []any{1, 1.0}, []any{1, 1.0}},
		{"NaN dedups", []any{math.NaN(), 1.0, math.NaN()}, []any{math.NaN(), 1.0}},
		{"nested lists", []any{[]any{1, 2}, []any{1, 2}, []any{2, 1}}, []any{[]any{1, 2}, []any{2, 1}}},
		{"maps", []any{map[string]any{"a": 1}, map[string]any{"a": 1}, map[string]any{"a": 2}}, []any{map[string]any{"a": 1}, map[string]any{"a": 2}}},
		{"nil members", []any{nil, 1, nil}, []any{nil, 1}},
		{"empty", []any{}, []any{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, ok := c.ToSet(tt.input)
			require.True(t, ok)
			got := set.Values()
			require.Len(t, got, len(tt.want))
			for i := range tt.want {
				assert.True(t, Equal(tt.want[i], got[i]), "index %d: want %v, got %v", i, tt.want[i], got[i])
			}
		})
	}
}

func TestToSet_NotListLike(t *testing.T) {
	c, _ := newTestConverter(t)

	set, ok := c.ToSet(nil)
	assert.False(t, ok)
	assert.Nil(t, set)

	set, ok = c.ToSet("abc")
	assert.False(t, ok)
	assert.Nil(t, set)
}

func TestToSet_Nodes(t *testing.T) {
	c, _ := newTestConverter(t)
	a := storage.NewNode([]string{"A"}, nil)
	b := storage.NewNode([]string{"B"}, nil)
	aCopy := &storage.Node{ID: a.ID}

	set, ok := c.ToSet([]any{a, b, aCopy, a})
	require.True(t, ok)
	require.Equal(t, 2, set.Len())
	assert.Same(t, a, set.At(0))
	assert.Same(t, b, set.At(1))
}

func TestOrderedSet_ReadAPI(t *testing.T) {
	set := NewOrderedSet([]any{"x", "y", "x", []any{1}})

	assert.Equal(t, 3, set.Len())
	assert.True(t, set.Contains("y"))
	assert.True(t, set.Contains([]any{1}))
	assert.False(t, set.Contains("z"))
	assert.False(t, set.Contains([]any{1, 2}))

	var seen []any
	for v := range set.All() {
		seen = append(seen, v)
	}
	assert.Equal(t, []any{"x", "y", []any{1}}, seen)

	var first []any
	for v := range set.All() {
		first = append(first, v)
		break
	}
	assert.Equal(t, []any{"x"}, first)

	values := set.Values()
	values[0] = "mutated"
	assert.Equal(t, "x", set.At(0), "Values returns a copy")
}

func TestOrderedSet_Large(t *testing.T) {
	in := make([]any, 0, 20000)
	for i := 0; i < 10000; i++ {
		in = append(in, i, i)
	}
	set := NewOrderedSet(in)
	require.Equal(t, 10000, set.Len())
	for i := 0; i < 10000; i++ {
		assert.Equal(t, i, set.At(i))
	}
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(nil, nil))
	assert.True(t, Equal(uint8(3), int64(3)))
	assert.False(t, Equal(3, 3.0))
	assert.False(t, Equal(0.0, math.Copysign(0, -1)))
	assert.True(t, Equal(map[string]int{"a": 1}, map[string]any{"a": 1}))
	assert.True(t, Equal([]string{"a"}, []any{"a"}))
	assert.False(t, Equal([]any{"a"}, []any{"a", "b"}))
	assert.False(t, Equal("1", 1))
	assert.False(t, Equal(struct{ s []int }{}, struct{ s []int }{}), "non-comparable unknowns are never equal")
}

func TestHashConsistentWithEqual(t *testing.T) {
	pairs := [][2]any{
		{int8(5), uint64(5)},
		{[]string{"a", "b"}, []any{"a", "b"}},
		{map[string]int{"k": 1, "j": 2}, map[string]any{"j": 2, "k": 1}},
		{math.NaN(), math.NaN()},
	}
	for _, p := range pairs {
		require.True(t, Equal(p[0], p[1]))
		assert.Equal(t, hashOf(Of(p[0])), hashOf(Of(p[1])), "%v / %v", p[0], p[1])
	}
}

func TestHash_SpreadsDurationsAndTimes(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	seen := map[uint64]bool{}
	for i := 0; i < 100; i++ {
		seen[hashOf(Of(time.Duration(i)*time.Second))] = true
		seen[hashOf(Of(base.Add(time.Duration(i)*time.Millisecond)))] = true
	}
	assert.Len(t, seen, 200)

	assert.Equal(t, hashOf(Of(base)), hashOf(Of(base.Add(0))))
	assert.Equal(t, hashOf(Of(90*time.Minute)), hashOf(Of(90*time.Minute)))
}

func TestToSet_Durations(t *testing.T) {
	c, _ := newTestConverter(t)
	in := make([]any, 0, 2000)
	for i := 0; i < 1000; i++ {
		d := time.Duration(i) * time.Millisecond
		in = append(in, d, d)
	}

	set, ok := c.ToSet(in)
	require.True(t, ok)
	require.Equal(t, 1000, set.Len())
	assert.Equal(t, 5*time.Millisecond, set.At(5))
}

func TestHash_UnknownComparableValues(t *testing.T) {
	type point struct{ X, Y int }
	p := &point{1, 2}

	assert.Equal(t, hashOf(Of(point{1, 2})), hashOf(Of(point{1, 2})))
	assert.NotEqual(t, hashOf(Of(point{1, 2})), hashOf(Of(point{2, 1})))
	assert.Equal(t, hashOf(Of(p)), hashOf(Of(p)))

	set := NewOrderedSet([]any{point{1, 2}, point{2, 1}, point{1, 2}, p, p})
	assert.Equal(t, 3, set.Len())
}

func TestHash_UnknownStructFloatZeros(t *testing.T) {
	type reading struct {
		Name string
		V    float64
	}
	pos, neg := reading{"t", 0}, reading{"t", math.Copysign(0, -1)}

	require.True(t, Equal(pos, neg))
	assert.Equal(t, hashOf(Of(pos)), hashOf(Of(neg)))
	assert.Equal(t, 1, NewOrderedSet([]any{pos, neg}).Len())
}
