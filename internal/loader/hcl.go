package loader

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"go.uber.org/zap"
)

// fileHCL is the top-level HCL schema. Definitions use block labels for
// their names:
//
//	import = ["./common.hcl"]
//
//	enum "Status" {
//	  values = ["on", "off"]
//	}
//
//	data "Request" {
//	  required = ["id"]
//	  field "id" { type = "string" }
//	  field "tags" {
//	    type        = "string[]"
//	    cardinality = "1..*"
//	  }
//	}
//
//	model "Gateway" {
//	  component "auth" { type = "Auth" }
//	  behavior "handle" {
//	    input "req" { type = "Request" }
//	    output "resp" { type = "Response" }
//	  }
//	}
type fileHCL struct {
	Import []string   `hcl:"import,optional"`
	Enums  []enumHCL  `hcl:"enum,block"`
	Data   []dataHCL  `hcl:"data,block"`
	Models []modelHCL `hcl:"model,block"`
}

type enumHCL struct {
	Name   string   `hcl:"name,label"`
	Values []string `hcl:"values"`
}

type fieldHCL struct {
	Name        string `hcl:"name,label"`
	Type        string `hcl:"type"`
	Cardinality string `hcl:"cardinality,optional"`
}

type dataHCL struct {
	Name     string     `hcl:"name,label"`
	Required []string   `hcl:"required,optional"`
	Fields   []fieldHCL `hcl:"field,block"`
}

type behaviorHCL struct {
	Name    string     `hcl:"name,label"`
	Inputs  []fieldHCL `hcl:"input,block"`
	Outputs []fieldHCL `hcl:"output,block"`
}

type modelHCL struct {
	Name        string        `hcl:"name,label"`
	Description string        `hcl:"description,optional"`
	Components  []fieldHCL    `hcl:"component,block"`
	Behaviors   []behaviorHCL `hcl:"behavior,block"`
}

// ParseHCL parses HCL definitions. Imports are returned unresolved.
func ParseHCL(data []byte, filename string) (*Spec, []string, error) {
	return New(nil).parseHCL(data, filename)
}

func (l *Loader) parseHCL(data []byte, filename string) (*Spec, []string, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, nil, fmt.Errorf("failed to parse HCL: %w", diags)
	}

	var f fileHCL
	if diags := gohcl.DecodeBody(file.Body, nil, &f); diags.HasErrors() {
		return nil, nil, fmt.Errorf("failed to decode HCL: %w", diags)
	}

	spec := NewSpec()
	for _, e := range f.Enums {
		spec.AddEnum(&EnumDef{Name: e.Name, Values: e.Values})
	}
	for _, d := range f.Data {
		spec.AddData(&DataDef{
			Name:     d.Name,
			Fields:   convertFields(d.Fields),
			Required: d.Required,
		})
	}
	for _, m := range f.Models {
		model := &ModelDef{
			Name:        m.Name,
			Description: m.Description,
			Components:  convertFields(m.Components),
		}
		for _, b := range m.Behaviors {
			model.Behavior = append(model.Behavior, Behavior{
				Name:   b.Name,
				Input:  convertFields(b.Inputs),
				Output: convertFields(b.Outputs),
			})
		}
		spec.AddModel(model)
	}

	l.logger.Debug("parsed HCL",
		zap.String("file", filename),
		zap.Int("blocks", len(f.Enums)+len(f.Data)+len(f.Models)))

	return spec, f.Import, nil
}

func convertFields(in []fieldHCL) []Field {
	if len(in) == 0 {
		return nil
	}
	out := make([]Field, 0, len(in))
	for _, f := range in {
		out = append(out, Field{Name: f.Name, Type: f.Type, Cardinality: f.Cardinality})
	}
	return out
}
