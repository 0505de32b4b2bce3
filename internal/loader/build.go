package loader

import (
	"aac/internal/domain"
)

// Build converts a spec into a fragment holding the decomposition roots,
// the data dictionary and the enums
func Build(spec *Spec) *domain.Fragment {
	fragment := domain.NewFragment()
	for _, root := range BuildArchitecture(spec) {
		fragment.AddRoot(root)
	}
	fragment.Data = BuildDataModel(spec)
	for _, name := range spec.EnumNames() {
		fragment.AddEnum(name, spec.Enums[name].Values)
	}
	return fragment
}

// RootModelNames returns the models that no other model uses as a
// component type, in definition order. A spec with a single model always
// has that model as its root.
func RootModelNames(spec *Spec) []string {
	names := spec.ModelNames()
	if len(names) == 1 {
		return names
	}

	used := make(map[string]bool)
	for _, name := range names {
		for _, c := range spec.Models[name].Components {
			base, _ := domain.ParseTypeDeclaration(c.Type)
			if string(base) != name {
				used[string(base)] = true
			}
		}
	}

	var roots []string
	for _, name := range names {
		if !used[name] {
			roots = append(roots, name)
		}
	}
	return roots
}

// BuildArchitecture builds one tree per root model. Components typed by a
// model become child nodes named after the component and tagged with the
// model name; behaviors become ports. A model that contains itself, directly or not, is expanded once.
func BuildArchitecture(spec *Spec) []*domain.ArchitectureModel {
	var roots []*domain.ArchitectureModel
	for _, name := range RootModelNames(spec) {
		roots = append(roots, buildNode(spec, spec.Models[name], name, nil, map[string]bool{}))
	}
	return roots
}

func buildNode(spec *Spec, def *ModelDef, name string, parent *domain.ArchitectureModel, ancestors map[string]bool) *domain.ArchitectureModel {
	node := domain.NewArchitectureModel(name, parent)
	node.SetModel(def.Name)

	for _, b := range def.Behavior {
		for _, in := range b.Input {
			node.AddInput(domain.Port{Name: in.Name, Type: domain.DataType(in.Type)})
		}
		for _, out := range b.Output {
			node.AddOutput(domain.Port{Name: out.Name, Type: domain.DataType(out.Type)})
		}
	}

	ancestors[def.Name] = true
	defer delete(ancestors, def.Name)

	for _, c := range def.Components {
		base, _ := domain.ParseTypeDeclaration(c.Type)
		sub, ok := spec.Models[string(base)]
		if !ok || ancestors[sub.Name] {
			continue
		}
		node.AddChild(buildNode(spec, sub, c.Name, node, ancestors))
	}

	return node
}

// BuildDataModel creates one entry per data field in definition then field
// order. Entry IDs start at 1; names are "<Data>.<field>". An explicit field
// cardinality wins over the derived one; an unrecognised value yields
// CardinalityNone.
func BuildDataModel(spec *Spec) *domain.DataModel {
	dm := domain.NewDataModel()
	nextID := 1
	for _, name := range spec.DataNames() {
		def := spec.Data[name]
		for _, f := range def.Fields {
			base, list := domain.ParseTypeDeclaration(f.Type)
			card := domain.CardinalityFor(def.IsRequired(f.Name), list)
			if f.Cardinality != "" {
				card = domain.ParseCardinality(f.Cardinality)
			}
			dm.Add(domain.NewDataEntry(nextID, base, def.Name+"."+f.Name, card))
			nextID++
		}
	}
	return dm
}
