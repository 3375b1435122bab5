package wireframe

import (
	"time"

	"github.com/google/uuid"
)

const (
	generatorName    = "ai-agent"
	generatorVersion = "1.0.0"

	// DefaultMaxColumns is the row-packing policy default: columns are
	// filled in component order and a new row opens when the current one
	// is full.
	DefaultMaxColumns = 3
)

// Compiler assembles wireframe specs from component lists. It holds only
// immutable policy; compiling is safe from any number of goroutines.
type Compiler struct {
	maxColumns int
	now        func() time.Time
	newID      func() string
}

// Option configures a Compiler.
type Option func(*Compiler)

// WithMaxColumns sets the maximum number of columns per row. Values below 1
// are ignored.
func WithMaxColumns(n int) Option {
	return func(c *Compiler) {
		if n >= 1 {
			c.maxColumns = n
		}
	}
}

// WithClock overrides the timestamp source. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(c *Compiler) { c.now = now }
}

// NewCompiler creates a Compiler with the default packing policy unless
// overridden.
func NewCompiler(opts ...Option) *Compiler {
	c := &Compiler{
		maxColumns: DefaultMaxColumns,
		now:        time.Now,
		newID:      func() string { return "wf-" + uuid.New().String() },
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// MaxColumns returns the row-packing policy in effect.
func (c *Compiler) MaxColumns() int { return c.maxColumns }

// Compile builds a wireframe spec from an ordered component list. The layout
// is a single container holding rows of up to MaxColumns columns, one
// component per column, in input order. An empty input yields an empty
// container with no rows.
//
// Output is identical across calls for the same input except for the spec id
// and the metadata timestamp.
func (c *Compiler) Compile(components []Component) WireframeSpec {
	container := LayoutNode{Type: NodeContainer}

	var row *LayoutNode
	for _, comp := range components {
		if row == nil || len(row.Children) == c.maxColumns {
			container.Children = append(container.Children, LayoutNode{Type: NodeRow})
			row = &container.Children[len(container.Children)-1]
		}
		row.Children = append(row.Children, LayoutNode{
			Type:        NodeColumn,
			ComponentID: comp.ID,
		})
	}

	if components == nil {
		components = []Component{}
	}

	return WireframeSpec{
		ID:         c.newID(),
		Layout:     container,
		Components: components,
		Metadata: Metadata{
			Generator:         generatorName,
			Version:           generatorVersion,
			SourceIntentCount: len(components),
			GeneratedAt:       c.now().UTC(),
		},
	}
}
