package validate

import (
	"fmt"
	"maps"
	"slices"

	"aac/internal/domain"
)

// Options tune the data dictionary checks
type Options struct {
	// AllowDuplicateIDs accepts several entries sharing an entry ID
	AllowDuplicateIDs bool
}

// Architecture checks decomposition trees for empty names, children whose
// recorded parent is not the node they were added to, and nodes reachable
// more than once (duplicate children or cycles). The walk visits each node
// once, so malformed trees cannot make it loop.
func Architecture(roots []*domain.ArchitectureModel) *Report {
	r := NewReport()
	visited := make(map[*domain.ArchitectureModel]bool)
	reported := make(map[*domain.ArchitectureModel]bool)

	var walk func(node *domain.ArchitectureModel)
	walk = func(node *domain.ArchitectureModel) {
		visited[node] = true
		subject := node.Path()
		if node.Name() == "" {
			r.warnf(subject, "element has an empty name")
		}

		for child := range node.Children() {
			if child == nil {
				r.errorf(subject, "nil child")
				continue
			}
			if child.Parent() != node {
				r.errorf(child.Path(), "added as a child of %q but records parent %s",
					subject, describe(child.Parent()))
			}
			if visited[child] {
				if !reported[child] {
					r.errorf(child.Path(), "element is reachable more than once")
					reported[child] = true
				}
				continue
			}
			walk(child)
		}
	}

	for _, root := range roots {
		if root == nil {
			continue
		}
		if !root.IsRoot() {
			r.warnf(root.Path(), "decomposition root records a parent")
		}
		if visited[root] {
			r.errorf(root.Path(), "root is reachable more than once")
			continue
		}
		walk(root)
	}

	return r
}

func describe(node *domain.ArchitectureModel) string {
	if node == nil {
		return "none"
	}
	return fmt.Sprintf("%q", node.Path())
}

// DataModel checks entries for duplicate or negative IDs and for missing
// names, types or cardinalities
func DataModel(dm *domain.DataModel, opts Options) *Report {
	r := NewReport()
	counts := make(map[int]int)

	for e := range dm.All() {
		subject := fmt.Sprintf("entry %d", e.EntryID())
		counts[e.EntryID()]++

		if e.EntryID() < 0 {
			r.errorf(subject, "negative entry ID")
		}
		if counts[e.EntryID()] == 2 && !opts.AllowDuplicateIDs {
			r.errorf(subject, "entry ID is used more than once")
		}
		if e.Name() == "" {
			r.warnf(subject, "missing name")
		}
		if e.Type().IsNone() {
			r.warnf(subject, "missing type")
		}
		if e.Cardinality().IsNone() {
			r.warnf(subject, "missing cardinality")
		}
	}

	return r
}

// Fragment runs the architecture and data dictionary checks and checks
// that every enum has values
func Fragment(f *domain.Fragment, opts Options) *Report {
	r := NewReport()
	r.Merge(Architecture(f.Roots))
	if f.Data != nil {
		r.Merge(DataModel(f.Data, opts))
	}
	for _, name := range slices.Sorted(maps.Keys(f.Enums)) {
		if len(f.Enums[name]) == 0 {
			r.errorf("enum "+name, "missing values")
		}
	}
	return r
}
