package validate

import (
	"slices"

	"aac/internal/domain"
	"aac/internal/loader"
)

// Spec checks definitions for missing names, undefined type references and
// required fields that are never declared
func Spec(spec *loader.Spec) *Report {
	r := NewReport()

	known := make(map[string]string)
	declare := func(kind, name string) {
		if prev, ok := known[name]; ok {
			r.warnf(kind+" "+name, "name is also defined as %s", prev)
			return
		}
		known[name] = kind
	}

	for _, name := range spec.EnumNames() {
		declare("enum", name)
		checkEnum(r, spec.Enums[name])
	}
	for _, name := range spec.DataNames() {
		declare("data", name)
		checkData(r, spec.Data[name])
	}
	for _, name := range spec.ModelNames() {
		declare("model", name)
		if name == "" {
			r.errorf("model", "missing name")
		}
	}

	isKnown := func(decl string) bool {
		base, _ := domain.ParseTypeDeclaration(decl)
		if base.IsPrimitive() {
			return true
		}
		_, ok := known[string(base)]
		return ok
	}

	for _, name := range spec.DataNames() {
		for _, f := range spec.Data[name].Fields {
			if f.Type != "" && !isKnown(f.Type) {
				r.errorf("data "+name, "field %s uses undefined type %s", f.Name, f.Type)
			}
		}
	}

	for _, name := range spec.ModelNames() {
		model := spec.Models[name]
		for _, c := range model.Components {
			if c.Name == "" {
				r.errorf("model "+name, "component is missing name")
			}
			if c.Type == "" {
				r.errorf("model "+name, "component %s is missing type", c.Name)
			} else if !isKnown(c.Type) {
				r.errorf("model "+name, "component %s uses undefined type %s", c.Name, c.Type)
			}
		}
		for _, b := range model.Behavior {
			ports := slices.Concat(b.Input, b.Output)
			for _, p := range ports {
				switch {
				case p.Type == "":
					r.errorf("model "+name, "behavior %s port %s is missing type", b.Name, p.Name)
				case !isKnown(p.Type):
					r.errorf("model "+name, "behavior %s uses undefined type %s", b.Name, p.Type)
				}
			}
		}
	}

	if len(spec.Models) > 0 && len(loader.RootModelNames(spec)) == 0 {
		r.warnf("models", "every model is a component of another model; no root to decompose")
	}

	return r
}

func checkEnum(r *Report, def *loader.EnumDef) {
	subject := "enum " + def.Name
	if def.Name == "" {
		r.errorf("enum", "missing name")
	}
	if len(def.Values) == 0 {
		r.errorf(subject, "missing values")
	}
	seen := make(map[string]bool)
	for _, v := range def.Values {
		if seen[v] {
			r.warnf(subject, "value %s is listed more than once", v)
		}
		seen[v] = true
	}
}

func checkData(r *Report, def *loader.DataDef) {
	subject := "data " + def.Name
	if def.Name == "" {
		r.errorf("data", "missing name")
	}
	if len(def.Fields) == 0 {
		r.errorf(subject, "missing fields")
	}

	names := make(map[string]bool)
	for _, f := range def.Fields {
		if f.Name == "" {
			r.errorf(subject, "field is missing name")
			continue
		}
		if names[f.Name] {
			r.errorf(subject, "field %s is defined more than once", f.Name)
		}
		names[f.Name] = true
		if f.Type == "" {
			r.errorf(subject, "field %s is missing type", f.Name)
		}
		if f.Cardinality != "" && domain.ParseCardinality(f.Cardinality).IsNone() {
			r.errorf(subject, "field %s has unknown cardinality %s", f.Name, f.Cardinality)
		}
	}

	for _, req := range def.Required {
		if !names[req] {
			r.errorf(subject, "required field %s is not defined", req)
		}
	}
}
