package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// rootYAML represents one YAML document. Exactly one field is set.
type rootYAML struct {
	Import []string  `yaml:"import,omitempty"`
	Enum   *EnumDef  `yaml:"enum,omitempty"`
	Data   *DataDef  `yaml:"data,omitempty"`
	Model  *ModelDef `yaml:"model,omitempty"`
}

// ignoredRoots are definition kinds that are accepted but not modelled
var ignoredRoots = map[string]bool{
	"usecase":   true,
	"extension": true,
}

// ParseYAML parses a multi-document YAML stream. Imports are returned
// unresolved.
func ParseYAML(data []byte) (*Spec, []string, error) {
	return New(nil).parseYAML(data, "")
}

func (l *Loader) parseYAML(data []byte, filename string) (*Spec, []string, error) {
	spec := NewSpec()
	var imports []string

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	for index := 0; ; index++ {
		var doc yaml.Node
		err := decoder.Decode(&doc)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("failed to parse YAML: %w", err)
		}

		if len(doc.Content) == 0 {
			continue
		}
		body := doc.Content[0]
		if body.Kind == yaml.ScalarNode && body.Tag == "!!null" {
			continue
		}
		if body.Kind != yaml.MappingNode {
			return nil, nil, fmt.Errorf("document %d: expected a mapping at line %d", index, body.Line)
		}

		for i := 0; i < len(body.Content); i += 2 {
			key := body.Content[i].Value
			switch {
			case key == "import" || key == "enum" || key == "data" || key == "model":
			case ignoredRoots[key]:
				l.logger.Debug("ignoring definition",
					zap.String("file", filename),
					zap.String("kind", key),
					zap.Int("document", index))
			default:
				return nil, nil, fmt.Errorf("document %d: %w %q", index, ErrUnknownRoot, key)
			}
		}

		// ignored keys have no field in rootYAML and are dropped by Decode
		var root rootYAML
		if err := body.Decode(&root); err != nil {
			return nil, nil, fmt.Errorf("document %d: failed to decode: %w", index, err)
		}

		imports = append(imports, root.Import...)
		if root.Enum != nil {
			spec.AddEnum(root.Enum)
		}
		if root.Data != nil {
			spec.AddData(root.Data)
		}
		if root.Model != nil {
			spec.AddModel(root.Model)
		}
	}

	return spec, imports, nil
}

// ExportYAML writes the spec back as a multi-document YAML stream
func ExportYAML(spec *Spec, w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	defer encoder.Close()

	var docs []rootYAML
	for _, name := range spec.EnumNames() {
		docs = append(docs, rootYAML{Enum: spec.Enums[name]})
	}
	for _, name := range spec.DataNames() {
		docs = append(docs, rootYAML{Data: spec.Data[name]})
	}
	for _, name := range spec.ModelNames() {
		docs = append(docs, rootYAML{Model: spec.Models[name]})
	}

	for _, doc := range docs {
		if err := encoder.Encode(&doc); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
	}

	return nil
}
