package convert

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orneryd/nornicdb-convert/pkg/storage"
)

func TestToMap(t *testing.T) {
	c, _ := newTestConverter(t)

	t.Run("node properties", func(t *testing.T) {
		tags := []any{"a", "b"}
		n := storage.NewNode([]string{"Person"}, map[string]any{"name": "Alice", "age": 30, "tags": tags})

		got, ok := c.ToMap(n)
		require.True(t, ok)
		assert.Equal(t, map[string]any{"name": "Alice", "age": 30, "tags": tags}, got)
		assert.Same(t, &tags[0], &got["tags"].([]any)[0], "values are shallow")
	})

	t.Run("relationship properties", func(t *testing.T) {
		e := storage.NewEdge("n1", "n2", "KNOWS", map[string]any{"since": 2020})

		got, ok := c.ToMap(e)
		require.True(t, ok)
		assert.Equal(t, map[string]any{"since": 2020}, got)
	})

	t.Run("plain map is aliased", func(t *testing.T) {
		m := map[string]any{"k": 1}

		got, ok := c.ToMap(m)
		require.True(t, ok)
		got["added"] = true
		assert.Equal(t, true, m["added"], "toMap must return the same map, not a copy")
	})

	t.Run("named map type is aliased", func(t *testing.T) {
		type props map[string]any
		m := props{"a": 1}

		got, ok := c.ToMap(m)
		require.True(t, ok)
		got["b"] = 2
		assert.Equal(t, 2, m["b"])
	})

	t.Run("other string-keyed maps", func(t *testing.T) {
		got, ok := c.ToMap(map[string]int{"a": 1})
		require.True(t, ok)
		assert.Equal(t, map[string]any{"a": 1}, got)
	})

	t.Run("not a map", func(t *testing.T) {
		for _, v := range []any{nil, "a", 1, []any{}, map[int]any{1: 1}, (*storage.Node)(nil)} {
			got, ok := c.ToMap(v)
			assert.False(t, ok, "%T", v)
			assert.Nil(t, got)
		}
	})
}

func TestToNodeAndRelationship(t *testing.T) {
	c, _ := newTestConverter(t)
	n := storage.NewNode([]string{"Person"}, nil)
	e := storage.NewEdge(n.ID, n.ID, "SELF", nil)

	got, ok := c.ToNode(n)
	require.True(t, ok)
	assert.Same(t, n, got)

	_, ok = c.ToNode(e)
	assert.False(t, ok, "no coercion across entity kinds")
	_, ok = c.ToNode(map[string]any{"id": "x"})
	assert.False(t, ok)
	_, ok = c.ToNode(nil)
	assert.False(t, ok)

	rel, ok := c.ToRelationship(e)
	require.True(t, ok)
	assert.Same(t, e, rel)

	_, ok = c.ToRelationship(n)
	assert.False(t, ok)
	_, ok = c.ToRelationship("KNOWS")
	assert.False(t, ok)
}

func TestToString(t *testing.T) {
	c, _ := newTestConverter(t)
	n := &storage.Node{ID: "n1", Labels: []string{"Person"}, Properties: map[string]any{"name": "Alice"}}
	e := &storage.Edge{ID: "e1", Type: "KNOWS", Properties: map[string]any{}}

	tests := []struct {
		name  string
		input any
		want  string
	}{
		{"string", "hello", "hello"},
		{"empty string", "", ""},
		{"int", 42, "42"},
		{"negative", int64(-7), "-7"},
		{"integral float", 1.0, "1.0"},
		{"float", 2.5, "2.5"},
		{"negative zero", math.Copysign(0, -1), "-0.0"},
		{"large float", 1e8, "1.0E8"},
		{"small float", 1.5e-5, "1.5E-5"},
		{"NaN", math.NaN(), "NaN"},
		{"infinity", math.Inf(-1), "-Infinity"},
		{"bool", true, "true"},
		{"list", []any{1, "a", nil, 2.0}, "[1, a, null, 2.0]"},
		{"typed list", []string{"x", "y"}, "[x, y]"},
		{"map sorted", map[string]any{"b": 2, "a": []any{true}}, "{a: [true], b: 2}"},
		{"duration", 90 * time.Second, "1m30s"},
		{"datetime", time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), "2024-01-02T03:04:05Z"},
		{"node", n, "(:Person {name: Alice})"},
		{"relationship", e, "[:KNOWS]"},
		{"unknown", struct{ A int }{1}, "{1}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := c.ToString(tt.input)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := c.ToString(nil)
	assert.False(t, ok)
}

func TestTypedNilEntitiesAreNull(t *testing.T) {
	c, rec := newTestConverter(t)
	var n *storage.Node
	var e *storage.Edge

	assert.Equal(t, TagNull, Classify(n))
	assert.Equal(t, TagNull, Classify(e))

	_, ok := c.ToString(n)
	assert.False(t, ok)

	strs, ok := c.ToStringList([]any{e, "x"})
	require.True(t, ok)
	assert.Equal(t, []any{nil, "x"}, strs)

	nodes, ok := c.ToNodeList([]any{n})
	require.True(t, ok)
	assert.Equal(t, []any{nil}, nodes)

	got, ok := c.ToNode(n)
	assert.False(t, ok)
	assert.Nil(t, got)
	rel, ok := c.ToRelationship(e)
	assert.False(t, ok)
	assert.Nil(t, rel)

	set, ok := c.ToSet([]any{n})
	require.True(t, ok)
	assert.Equal(t, 1, set.Len())

	set, ok = c.ToSet([]*storage.Node{nil, nil})
	require.True(t, ok)
	assert.Equal(t, 1, set.Len(), "typed nils are one null member")

	assert.Empty(t, rec.records)
}
