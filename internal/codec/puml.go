package codec

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"aac/internal/domain"
)

// PlantUMLCodec renders the decomposition as a PlantUML component diagram.
// Elements with children become packages; leaves are drawn as components
// wired to an interface per input and output type. Packages and components
// are labelled with the model name, arrows with the port name.
type PlantUMLCodec struct{}

// NewPlantUMLCodec creates a new PlantUML codec
func NewPlantUMLCodec() *PlantUMLCodec {
	return &PlantUMLCodec{}
}

// Format returns the codec format identifier
func (c *PlantUMLCodec) Format() string {
	return "puml"
}

// Export writes the diagram for every root of the fragment
func (c *PlantUMLCodec) Export(fragment *domain.Fragment, w io.Writer) error {
	bw := bufio.NewWriter(w)
	r := &pumlRenderer{
		w:        bw,
		declared: make(map[string]bool),
		visited:  make(map[*domain.ArchitectureModel]bool),
	}

	r.line(0, "@startuml")
	for _, root := range fragment.Roots {
		if root != nil {
			r.element(root, 0)
		}
	}
	r.line(0, "@enduml")

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write PlantUML: %w", err)
	}
	return nil
}

type pumlRenderer struct {
	w        *bufio.Writer
	declared map[string]bool
	visited  map[*domain.ArchitectureModel]bool
}

func (r *pumlRenderer) line(indent int, format string, args ...any) {
	r.w.WriteString(strings.Repeat("  ", indent))
	fmt.Fprintf(r.w, format, args...)
	r.w.WriteByte('\n')
}

// declare emits an interface the first time a type name is seen
func (r *pumlRenderer) declare(indent int, ports []domain.Port) {
	for _, p := range ports {
		name := string(p.Type)
		if r.declared[name] {
			continue
		}
		r.declared[name] = true
		r.line(indent, "interface %s", name)
	}
}

func (r *pumlRenderer) element(node *domain.ArchitectureModel, indent int) {
	if r.visited[node] {
		return
	}
	r.visited[node] = true

	inputs, outputs := node.Inputs(), node.Outputs()
	r.declare(indent, inputs)
	r.declare(indent, outputs)

	label := node.Model()
	if node.ChildCount() > 0 {
		r.line(indent, "package %q {", label)
		r.declared[label] = true
		for child := range node.Children() {
			if child != nil {
				r.element(child, indent+1)
			}
		}
		r.line(indent, "}")
		return
	}

	for _, in := range inputs {
		r.line(indent, "%s -> [%s] : %s", in.Type, label, in.Name)
	}
	for _, out := range outputs {
		r.line(indent, "[%s] -> %s : %s", label, out.Type, out.Name)
	}
}
