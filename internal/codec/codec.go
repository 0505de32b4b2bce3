package codec

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"aac/internal/domain"
)

// Exporter interface for exporting fragments to various formats
type Exporter interface {
	Export(fragment *domain.Fragment, w io.Writer) error
	Format() string
}

// Exporters returns every available exporter
func Exporters() []Exporter {
	return []Exporter{
		NewJSONCodec(),
		NewYAMLCodec(),
		NewPlantUMLCodec(),
	}
}

// Formats returns the identifiers of every available exporter
func Formats() []string {
	var names []string
	for _, e := range Exporters() {
		names = append(names, e.Format())
	}
	return names
}

// ForFormat returns the exporter registered under name
func ForFormat(name string) (Exporter, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, e := range Exporters() {
		if e.Format() == name {
			return e, nil
		}
	}
	return nil, fmt.Errorf("unknown format %q (want one of %s)", name, strings.Join(Formats(), ", "))
}

// fragmentView is the serialized shape shared by the JSON and YAML codecs
type fragmentView struct {
	Architecture []elementView       `json:"architecture" yaml:"architecture"`
	Data         dataView            `json:"data" yaml:"data"`
	Enums        map[string][]string `json:"enums,omitempty" yaml:"enums,omitempty"`
}

type elementView struct {
	Name     string        `json:"name" yaml:"name"`
	Model    string        `json:"model" yaml:"model"`
	Path     string        `json:"path" yaml:"path"`
	Inputs   []domain.Port `json:"inputs,omitempty" yaml:"inputs,omitempty"`
	Outputs  []domain.Port `json:"outputs,omitempty" yaml:"outputs,omitempty"`
	Children []elementView `json:"children,omitempty" yaml:"children,omitempty"`
}

type dataView struct {
	Fingerprint string      `json:"fingerprint" yaml:"fingerprint"`
	Entries     []entryView `json:"entries" yaml:"entries"`
}

type entryView struct {
	ID          int    `json:"id" yaml:"id"`
	Type        string `json:"type" yaml:"type"`
	Name        string `json:"name" yaml:"name"`
	Cardinality string `json:"cardinality" yaml:"cardinality"`
}

// newFragmentView flattens a fragment into its serialized shape. A node
// reachable more than once is emitted at its first position only.
func newFragmentView(fragment *domain.Fragment) fragmentView {
	view := fragmentView{
		Architecture: make([]elementView, 0, len(fragment.Roots)),
		Data:         dataView{Entries: make([]entryView, 0)},
	}

	visited := make(map[*domain.ArchitectureModel]bool)
	var convert func(node *domain.ArchitectureModel) elementView
	convert = func(node *domain.ArchitectureModel) elementView {
		visited[node] = true
		ev := elementView{
			Name:    node.Name(),
			Model:   node.Model(),
			Path:    node.Path(),
			Inputs:  node.Inputs(),
			Outputs: node.Outputs(),
		}
		for child := range node.Children() {
			if child == nil || visited[child] {
				continue
			}
			ev.Children = append(ev.Children, convert(child))
		}
		return ev
	}
	for _, root := range fragment.Roots {
		if root == nil || visited[root] {
			continue
		}
		view.Architecture = append(view.Architecture, convert(root))
	}

	if fragment.Data != nil {
		view.Data.Fingerprint = fragment.Data.Fingerprint()
		for e := range fragment.Data.All() {
			view.Data.Entries = append(view.Data.Entries, entryView{
				ID:          e.EntryID(),
				Type:        string(e.Type()),
				Name:        e.Name(),
				Cardinality: string(e.Cardinality()),
			})
		}
	}

	if len(fragment.Enums) > 0 {
		view.Enums = make(map[string][]string, len(fragment.Enums))
		for name, values := range fragment.Enums {
			view.Enums[name] = slices.Clone(values)
		}
	}

	return view
}
