package domain

// Fragment bundles a decomposition and its data dictionary for
// import/export operations
type Fragment struct {
	Roots []*ArchitectureModel
	Data  *DataModel
	// Enums maps enum names to their allowed values
	Enums map[string][]string
}

// NewFragment creates an empty fragment
func NewFragment() *Fragment {
	return &Fragment{
		Roots: make([]*ArchitectureModel, 0),
		Data:  NewDataModel(),
		Enums: make(map[string][]string),
	}
}

// AddRoot adds a decomposition root to the fragment
func (f *Fragment) AddRoot(root *ArchitectureModel) {
	f.Roots = append(f.Roots, root)
}

// AddEnum records the values of an enum
func (f *Fragment) AddEnum(name string, values []string) {
	f.Enums[name] = values
}
