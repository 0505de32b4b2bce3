package domain

import (
	"iter"
	"slices"
	"strings"
)

// PathSeparator joins element names in ArchitectureModel.Path
const PathSeparator = "/"

// Port is a named, typed input or output of an architecture element
type Port struct {
	Name string   `json:"name" yaml:"name"`
	Type DataType `json:"type" yaml:"type"`
}

// ArchitectureModel is one element of a system decomposition tree.
//
// The parent is recorded at construction and never changes. It is a lookup
// link only: a node is placed in its parent's children by an explicit
// AddChild call on the parent. No cycle, duplicate or linkage check is made;
// building a well-formed tree is the caller's job (see package validate).
//
// A tree has a single logical owner. Children, Inputs and Outputs return
// snapshots, so reading while the owner keeps adding is well defined, but
// concurrent mutation is not supported.
type ArchitectureModel struct {
	name     string
	model    string
	parent   *ArchitectureModel
	children []*ArchitectureModel
	inputs   []Port
	outputs  []Port
}

// NewArchitectureModel creates a node with no children. A nil parent makes
// the node a root.
func NewArchitectureModel(name string, parent *ArchitectureModel) *ArchitectureModel {
	return &ArchitectureModel{
		name:     name,
		parent:   parent,
		children: make([]*ArchitectureModel, 0),
	}
}

// Name returns the element name
func (m *ArchitectureModel) Name() string {
	return m.name
}

// Parent returns the parent given at construction, or nil for a root
func (m *ArchitectureModel) Parent() *ArchitectureModel {
	return m.parent
}

// SetModel records the name of the model definition the node was built
// from. Diagram labels use it in place of the element name.
func (m *ArchitectureModel) SetModel(model string) {
	m.model = model
}

// Model returns the recorded model name, or the element name when none was
// recorded
func (m *ArchitectureModel) Model() string {
	if m.model == "" {
		return m.name
	}
	return m.model
}

// IsRoot reports whether the node was constructed without a parent
func (m *ArchitectureModel) IsRoot() bool {
	return m.parent == nil
}

// AddChild appends child to the children sequence
func (m *ArchitectureModel) AddChild(child *ArchitectureModel) {
	m.children = append(m.children, child)
}

// Children yields the children present at call time, in insertion order
func (m *ArchitectureModel) Children() iter.Seq[*ArchitectureModel] {
	snapshot := m.children[:len(m.children):len(m.children)]
	return slices.Values(snapshot)
}

// ChildCount returns the number of children added so far
func (m *ArchitectureModel) ChildCount() int {
	return len(m.children)
}

// AddInput records an input port
func (m *ArchitectureModel) AddInput(p Port) {
	m.inputs = append(m.inputs, p)
}

// AddOutput records an output port
func (m *ArchitectureModel) AddOutput(p Port) {
	m.outputs = append(m.outputs, p)
}

// Inputs returns a copy of the input ports
func (m *ArchitectureModel) Inputs() []Port {
	return slices.Clone(m.inputs)
}

// Outputs returns a copy of the output ports
func (m *ArchitectureModel) Outputs() []Port {
	return slices.Clone(m.outputs)
}

// Depth returns the number of parent links between the node and its root
func (m *ArchitectureModel) Depth() int {
	depth := 0
	seen := map[*ArchitectureModel]bool{m: true}
	for p := m.parent; p != nil && !seen[p]; p = p.parent {
		seen[p] = true
		depth++
	}
	return depth
}

// Path returns the names from the root down to this node joined by
// PathSeparator.
func (m *ArchitectureModel) Path() string {
	names := []string{m.name}
	seen := map[*ArchitectureModel]bool{m: true}
	for p := m.parent; p != nil && !seen[p]; p = p.parent {
		seen[p] = true
		names = append(names, p.name)
	}
	slices.Reverse(names)
	return strings.Join(names, PathSeparator)
}

// Walk visits the subtree rooted at m depth-first in pre-order. Each node is
// visited at most once even if it was added twice or the tree contains a
// cycle. Returning false from fn skips the node's children.
func (m *ArchitectureModel) Walk(fn func(node *ArchitectureModel, depth int) bool) {
	visited := make(map[*ArchitectureModel]bool)
	var walk func(node *ArchitectureModel, depth int)
	walk = func(node *ArchitectureModel, depth int) {
		if node == nil || visited[node] {
			return
		}
		visited[node] = true
		if !fn(node, depth) {
			return
		}
		for child := range node.Children() {
			walk(child, depth+1)
		}
	}
	walk(m, 0)
}
