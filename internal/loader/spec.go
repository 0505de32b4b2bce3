package loader

import "slices"

// Field is a named, typed member of a data, model or behavior definition.
// Type may carry a "[]" list suffix.
type Field struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
	// Cardinality overrides the one derived from required and list types.
	// Only data fields use it.
	Cardinality string `yaml:"cardinality,omitempty"`
}

// EnumDef is an enum definition
type EnumDef struct {
	Name   string   `yaml:"name"`
	Values []string `yaml:"values"`
}

// DataDef is a data definition: a named record of fields
type DataDef struct {
	Name     string   `yaml:"name"`
	Fields   []Field  `yaml:"fields"`
	Required []string `yaml:"required,omitempty"`
}

// IsRequired reports whether the named field is listed as required
func (d *DataDef) IsRequired(field string) bool {
	return slices.Contains(d.Required, field)
}

// Behavior is a named behavior of a model with its inputs and outputs
type Behavior struct {
	Name   string  `yaml:"name"`
	Input  []Field `yaml:"input,omitempty"`
	Output []Field `yaml:"output,omitempty"`
}

// ModelDef is a model definition. Components whose type names another
// model form the decomposition tree.
type ModelDef struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description,omitempty"`
	Components  []Field    `yaml:"components,omitempty"`
	Behavior    []Behavior `yaml:"behavior,omitempty"`
}

// Spec holds every definition parsed from a file and its imports.
// Lookups are by name; the *Names methods return names in order of first
// appearance.
type Spec struct {
	Enums  map[string]*EnumDef
	Data   map[string]*DataDef
	Models map[string]*ModelDef

	enumOrder  []string
	dataOrder  []string
	modelOrder []string
	sources    []string
}

// NewSpec creates an empty spec
func NewSpec() *Spec {
	return &Spec{
		Enums:  make(map[string]*EnumDef),
		Data:   make(map[string]*DataDef),
		Models: make(map[string]*ModelDef),
	}
}

// AddEnum adds or replaces an enum definition
func (s *Spec) AddEnum(def *EnumDef) {
	if _, ok := s.Enums[def.Name]; !ok {
		s.enumOrder = append(s.enumOrder, def.Name)
	}
	s.Enums[def.Name] = def
}

// AddData adds or replaces a data definition
func (s *Spec) AddData(def *DataDef) {
	if _, ok := s.Data[def.Name]; !ok {
		s.dataOrder = append(s.dataOrder, def.Name)
	}
	s.Data[def.Name] = def
}

// AddModel adds or replaces a model definition
func (s *Spec) AddModel(def *ModelDef) {
	if _, ok := s.Models[def.Name]; !ok {
		s.modelOrder = append(s.modelOrder, def.Name)
	}
	s.Models[def.Name] = def
}

// Merge adds every definition of other, replacing same-named ones
func (s *Spec) Merge(other *Spec) {
	for _, name := range other.enumOrder {
		s.AddEnum(other.Enums[name])
	}
	for _, name := range other.dataOrder {
		s.AddData(other.Data[name])
	}
	for _, name := range other.modelOrder {
		s.AddModel(other.Models[name])
	}
	for _, src := range other.sources {
		s.addSource(src)
	}
}

// Sources returns the files the definitions were read from, imports first
func (s *Spec) Sources() []string {
	return slices.Clone(s.sources)
}

func (s *Spec) addSource(path string) {
	if !slices.Contains(s.sources, path) {
		s.sources = append(s.sources, path)
	}
}

// EnumNames returns enum names in order of first appearance
func (s *Spec) EnumNames() []string {
	return slices.Clone(s.enumOrder)
}

// DataNames returns data names in order of first appearance
func (s *Spec) DataNames() []string {
	return slices.Clone(s.dataOrder)
}

// ModelNames returns model names in order of first appearance
func (s *Spec) ModelNames() []string {
	return slices.Clone(s.modelOrder)
}

// IsEmpty reports whether the spec holds no definitions
func (s *Spec) IsEmpty() bool {
	return len(s.Enums) == 0 && len(s.Data) == 0 && len(s.Models) == 0
}
