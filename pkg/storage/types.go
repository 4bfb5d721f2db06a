// Package storage defines the graph entities that conversion functions receive
// as property bags.
//
// Node and Edge mirror the shape NornicDB stores: a stable ID, labels or a
// relationship type, and a flat property map. Both satisfy the
// convert.Node / convert.Relationship contracts, so a coercion such as
// toMap(n) returns the entity's stored attributes.
//
// Example:
//
//	n := storage.NewNode([]string{"Person"}, map[string]any{"name": "Alice"})
//	props := n.AllProperties() // {"name": "Alice"}
package storage

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NodeID uniquely identifies a node.
type NodeID string

// EdgeID uniquely identifies an edge (relationship).
type EdgeID string

// Node is a labelled graph vertex with properties.
type Node struct {
	ID         NodeID
	Labels     []string
	Properties map[string]any
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Edge is a typed, directed relationship between two nodes.
type Edge struct {
	ID         EdgeID
	StartNode  NodeID
	EndNode    NodeID
	Type       string
	Properties map[string]any
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewNode creates a node with a random UUID and the given labels and properties.
// A nil property map is replaced by an empty one.
func NewNode(labels []string, props map[string]any) *Node {
	if props == nil {
		props = make(map[string]any)
	}
	now := time.Now()
	return &Node{
		ID:         NodeID(uuid.New().String()),
		Labels:     labels,
		Properties: props,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// NewEdge creates a relationship of relType from start to end with a random UUID.
func NewEdge(start, end NodeID, relType string, props map[string]any) *Edge {
	if props == nil {
		props = make(map[string]any)
	}
	now := time.Now()
	return &Edge{
		ID:         EdgeID(uuid.New().String()),
		StartNode:  start,
		EndNode:    end,
		Type:       relType,
		Properties: props,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// AllProperties returns a shallow copy of the node's properties.
// Values are the stored values themselves; nested maps and slices are shared.
func (n *Node) AllProperties() map[string]any {
	if n == nil {
		return nil
	}
	return shallowCopy(n.Properties)
}

// NodeLabels returns the node's labels.
func (n *Node) NodeLabels() []string {
	if n == nil {
		return nil
	}
	return n.Labels
}

// ElementID returns the Neo4j 5.x style element id.
func (n *Node) ElementID() string {
	if n == nil {
		return ""
	}
	return fmt.Sprintf("4:nornicdb:%s", n.ID)
}

// String renders the node like Cypher does: (:Label {key: value}).
func (n *Node) String() string {
	if n == nil {
		return "null"
	}
	var sb strings.Builder
	sb.WriteString("(")
	for _, l := range n.Labels {
		sb.WriteString(":")
		sb.WriteString(l)
	}
	writeProps(&sb, n.Properties)
	sb.WriteString(")")
	return sb.String()
}

// AllProperties returns a shallow copy of the edge's properties.
func (e *Edge) AllProperties() map[string]any {
	if e == nil {
		return nil
	}
	return shallowCopy(e.Properties)
}

// RelationshipType returns the edge's relationship type.
func (e *Edge) RelationshipType() string {
	if e == nil {
		return ""
	}
	return e.Type
}

// ElementID returns the Neo4j 5.x style element id.
func (e *Edge) ElementID() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("5:nornicdb:%s", e.ID)
}

// String renders the edge like Cypher does: [:TYPE {key: value}].
func (e *Edge) String() string {
	if e == nil {
		return "null"
	}
	var sb strings.Builder
	sb.WriteString("[:")
	sb.WriteString(e.Type)
	writeProps(&sb, e.Properties)
	sb.WriteString("]")
	return sb.String()
}

func shallowCopy(props map[string]any) map[string]any {
	out := make(map[string]any, len(props))
	for k, v := range props {
		out[k] = v
	}
	return out
}

func writeProps(sb *strings.Builder, props map[string]any) {
	if len(props) == 0 {
		return
	}
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	sb.WriteString(" {")
	for i, k := range keys {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(sb, "%s: %v", k, props[k])
	}
	sb.WriteString("}")
}
