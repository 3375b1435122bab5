// Package wireframe maps intents to UI components and compiles them into a
// deterministic wireframe specification document.
package wireframe

import (
	"fmt"
	"time"
)

// Component is a single UI element in a wireframe. IDs are stable within one
// spec: "{type}-{ordinal within that type, starting at 1}".
type Component struct {
	ID    string         `json:"id"`
	Type  string         `json:"type"`
	Props map[string]any `json:"props"`
}

// Node kinds for the three-level layout tree.
const (
	NodeContainer = "container"
	NodeRow       = "row"
	NodeColumn    = "column"
)

// LayoutNode is the recursive layout tree. Exactly three levels are produced:
// a single container, its rows, and each row's columns. A column references
// exactly one component by id; container and row nodes carry no reference.
type LayoutNode struct {
	Type        string       `json:"type"`
	Children    []LayoutNode `json:"children,omitempty"`
	ComponentID string       `json:"componentId,omitempty"`
}

// Metadata describes how and when a wireframe spec was generated.
type Metadata struct {
	Generator         string    `json:"generator"`
	Version           string    `json:"version"`
	SourceIntentCount int       `json:"source_intent_count"`
	GeneratedAt       time.Time `json:"generated_at"`
}

// WireframeSpec is the compiled wireframe document. The id is fresh per
// compilation; everything else is a deterministic function of the input.
type WireframeSpec struct {
	ID         string      `json:"id"`
	Layout     LayoutNode  `json:"layout"`
	Components []Component `json:"components"`
	Metadata   Metadata    `json:"metadata"`
}

// InvalidIntentError reports a structurally malformed intent, such as an
// entry with no type. It is a caller error, surfaced by the transport layer
// as a client failure; it never aborts subsequent calls.
type InvalidIntentError struct {
	Index  int
	Reason string
}

func (e *InvalidIntentError) Error() string {
	return fmt.Sprintf("invalid intent at index %d: %s", e.Index, e.Reason)
}

// ComponentIDs returns the ids referenced by the layout tree, in placement
// order.
func (n LayoutNode) ComponentIDs() []string {
	var ids []string
	if n.ComponentID != "" {
		ids = append(ids, n.ComponentID)
	}
	for _, child := range n.Children {
		ids = append(ids, child.ComponentIDs()...)
	}
	return ids
}
