package codec

import (
	"fmt"
	"io"

	"aac/internal/domain"

	"gopkg.in/yaml.v3"
)

// YAMLCodec handles YAML export
type YAMLCodec struct{}

// NewYAMLCodec creates a new YAML codec
func NewYAMLCodec() *YAMLCodec {
	return &YAMLCodec{}
}

// Format returns the codec format identifier
func (c *YAMLCodec) Format() string {
	return "yaml"
}

// Export exports a fragment to YAML
func (c *YAMLCodec) Export(fragment *domain.Fragment, w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	defer encoder.Close()

	view := newFragmentView(fragment)
	if err := encoder.Encode(&view); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	return nil
}
