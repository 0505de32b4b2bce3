package validate

import (
	"testing"

	"aac/internal/domain"
	"aac/internal/loader"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// messages flattens findings into "subject: message" strings
func messages(r *Report) []string {
	out := make([]string, 0, len(r.Findings))
	for _, f := range r.Findings {
		out = append(out, f.Error())
	}
	return out
}

func TestReport(t *testing.T) {
	t.Run("new report is empty with an ID", func(t *testing.T) {
		r := NewReport()
		assert.NotZero(t, r.ID)
		assert.False(t, r.HasErrors())
		assert.False(t, r.HasWarnings())
		assert.NoError(t, r.Err(false))
		assert.NoError(t, r.Err(true))
	})

	t.Run("reports get distinct IDs", func(t *testing.T) {
		assert.NotEqual(t, NewReport().ID, NewReport().ID)
	})

	t.Run("Err combines errors and optionally warnings", func(t *testing.T) {
		r := NewReport()
		r.errorf("a", "first %d", 1)
		r.warnf("b", "careful")
		r.errorf("c", "second")

		err := r.Err(false)
		require.Error(t, err)
		assert.Len(t, AsFindings(err), 2)
		assert.Contains(t, err.Error(), "a: first 1")
		assert.Contains(t, err.Error(), "c: second")

		assert.Len(t, AsFindings(r.Err(true)), 3)
	})

	t.Run("warnings alone pass unless strict", func(t *testing.T) {
		r := NewReport()
		r.warnf("x", "hmm")
		assert.NoError(t, r.Err(false))
		assert.Error(t, r.Err(true))
	})

	t.Run("merge keeps receiver ID", func(t *testing.T) {
		r := NewReport()
		id := r.ID
		other := NewReport()
		other.errorf("x", "boom")

		r.Merge(other)
		r.Merge(nil)

		assert.Equal(t, id, r.ID)
		assert.Equal(t, 1, r.Count(SeverityError))
	})
}

func TestSpec(t *testing.T) {
	t.Run("valid spec has no findings", func(t *testing.T) {
		spec := loader.NewSpec()
		spec.AddEnum(&loader.EnumDef{Name: "Status", Values: []string{"on", "off"}})
		spec.AddData(&loader.DataDef{
			Name:     "Msg",
			Fields:   []loader.Field{{Name: "id", Type: "int"}, {Name: "state", Type: "Status[]"}},
			Required: []string{"id"},
		})
		spec.AddModel(&loader.ModelDef{
			Name:       "Sys",
			Components: []loader.Field{{Name: "svc", Type: "Svc"}},
		})
		spec.AddModel(&loader.ModelDef{
			Name: "Svc",
			Behavior: []loader.Behavior{{
				Name:   "serve",
				Input:  []loader.Field{{Name: "in", Type: "Msg"}},
				Output: []loader.Field{{Name: "out", Type: "string"}},
			}},
		})

		r := Spec(spec)
		assert.Empty(t, r.Findings)
	})

	t.Run("reports malformed definitions", func(t *testing.T) {
		spec := loader.NewSpec()
		spec.AddEnum(&loader.EnumDef{Name: "Empty"})
		spec.AddData(&loader.DataDef{Name: "NoFields"})
		spec.AddData(&loader.DataDef{
			Name: "Bad",
			Fields: []loader.Field{
				{Name: "", Type: "int"},
				{Name: "untyped"},
				{Name: "ref", Type: "Ghost[]"},
				{Name: "ref", Type: "int"},
				{Name: "count", Type: "int", Cardinality: "several"},
			},
			Required: []string{"missing"},
		})

		got := messages(Spec(spec))
		assert.Contains(t, got, "enum Empty: missing values")
		assert.Contains(t, got, "data NoFields: missing fields")
		assert.Contains(t, got, "data Bad: field is missing name")
		assert.Contains(t, got, "data Bad: field untyped is missing type")
		assert.Contains(t, got, "data Bad: field ref uses undefined type Ghost[]")
		assert.Contains(t, got, "data Bad: field ref is defined more than once")
		assert.Contains(t, got, "data Bad: required field missing is not defined")
		assert.Contains(t, got, "data Bad: field count has unknown cardinality several")
	})

	t.Run("reports undefined model references", func(t *testing.T) {
		spec := loader.NewSpec()
		spec.AddModel(&loader.ModelDef{
			Name:       "Sys",
			Components: []loader.Field{{Name: "x", Type: "Nowhere"}, {Name: "y"}},
			Behavior: []loader.Behavior{{
				Name:  "b",
				Input: []loader.Field{{Name: "in", Type: "Unknown"}, {Name: "blank"}},
			}},
		})

		r := Spec(spec)
		got := messages(r)
		assert.Contains(t, got, "model Sys: component x uses undefined type Nowhere")
		assert.Contains(t, got, "model Sys: component y is missing type")
		assert.Contains(t, got, "model Sys: behavior b uses undefined type Unknown")
		assert.Contains(t, got, "model Sys: behavior b port blank is missing type")
		assert.True(t, r.HasErrors())
	})

	t.Run("warns on shared names and missing root", func(t *testing.T) {
		spec := loader.NewSpec()
		spec.AddEnum(&loader.EnumDef{Name: "A", Values: []string{"x", "x"}})
		spec.AddModel(&loader.ModelDef{Name: "A", Components: []loader.Field{{Name: "b", Type: "B"}}})
		spec.AddModel(&loader.ModelDef{Name: "B", Components: []loader.Field{{Name: "a", Type: "A"}}})

		r := Spec(spec)
		got := messages(r)
		assert.Contains(t, got, "model A: name is also defined as enum")
		assert.Contains(t, got, "enum A: value x is listed more than once")
		assert.Contains(t, got, "models: every model is a component of another model; no root to decompose")
		assert.False(t, r.HasErrors())
	})
}

func TestArchitecture(t *testing.T) {
	t.Run("well formed tree has no findings", func(t *testing.T) {
		root := domain.NewArchitectureModel("root", nil)
		branch := domain.NewArchitectureModel("branch", root)
		leaf := domain.NewArchitectureModel("leaf", branch)
		root.AddChild(branch)
		branch.AddChild(leaf)

		assert.Empty(t, Architecture([]*domain.ArchitectureModel{root}).Findings)
	})

	t.Run("reports parent mismatch", func(t *testing.T) {
		root := domain.NewArchitectureModel("root", nil)
		other := domain.NewArchitectureModel("other", nil)
		stray := domain.NewArchitectureModel("stray", other)
		root.AddChild(stray)

		got := messages(Architecture([]*domain.ArchitectureModel{root}))
		assert.Equal(t, []string{`other/stray: added as a child of "root" but records parent "other"`}, got)
	})

	t.Run("reports duplicate child once", func(t *testing.T) {
		root := domain.NewArchitectureModel("root", nil)
		child := domain.NewArchitectureModel("child", root)
		root.AddChild(child)
		root.AddChild(child)
		root.AddChild(child)

		r := Architecture([]*domain.ArchitectureModel{root})
		assert.Equal(t, []string{"root/child: element is reachable more than once"}, messages(r))
	})

	t.Run("terminates on a cycle", func(t *testing.T) {
		root := domain.NewArchitectureModel("root", nil)
		child := domain.NewArchitectureModel("child", root)
		root.AddChild(child)
		child.AddChild(root)

		r := Architecture([]*domain.ArchitectureModel{root})
		assert.True(t, r.HasErrors())
		assert.Contains(t, messages(r), "root: element is reachable more than once")
	})

	t.Run("warns on empty names and non-root roots", func(t *testing.T) {
		parent := domain.NewArchitectureModel("p", nil)
		unnamed := domain.NewArchitectureModel("", parent)

		r := Architecture([]*domain.ArchitectureModel{unnamed})
		assert.False(t, r.HasErrors())
		assert.Equal(t, 2, r.Count(SeverityWarning))
	})

	t.Run("same root twice", func(t *testing.T) {
		root := domain.NewArchitectureModel("root", nil)
		r := Architecture([]*domain.ArchitectureModel{root, root})
		assert.Equal(t, []string{"root: root is reachable more than once"}, messages(r))
	})
}

func TestDataModel(t *testing.T) {
	t.Run("clean dictionary", func(t *testing.T) {
		dm := domain.NewDataModel()
		dm.Add(domain.NewDataEntry(1, domain.DataTypeString, "a", domain.CardinalityRequired))
		dm.Add(domain.NewDataEntry(2, domain.DataTypeInt, "b", domain.CardinalityMany))

		assert.Empty(t, DataModel(dm, Options{}).Findings)
	})

	t.Run("duplicate IDs reported once per ID", func(t *testing.T) {
		dm := domain.NewDataModel()
		for range 3 {
			dm.Add(domain.NewDataEntry(7, domain.DataTypeString, "x", domain.CardinalityRequired))
		}

		assert.Equal(t, []string{"entry 7: entry ID is used more than once"}, messages(DataModel(dm, Options{})))
		assert.Empty(t, DataModel(dm, Options{AllowDuplicateIDs: true}).Findings)
	})

	t.Run("negative ID and missing values", func(t *testing.T) {
		dm := domain.NewDataModel()
		dm.Add(domain.NewDataEntry(-1, domain.DataTypeNone, "", domain.CardinalityNone))

		r := DataModel(dm, Options{})
		assert.Equal(t, 1, r.Count(SeverityError))
		assert.Equal(t, 3, r.Count(SeverityWarning))
		assert.Contains(t, messages(r), "entry -1: negative entry ID")
	})
}

func TestFragment(t *testing.T) {
	f := domain.NewFragment()
	root := domain.NewArchitectureModel("root", nil)
	root.AddChild(root)
	f.AddRoot(root)
	f.Data.Add(domain.NewDataEntry(1, domain.DataTypeString, "", domain.CardinalityRequired))
	f.AddEnum("Empty", nil)

	got := messages(Fragment(f, Options{}))
	assert.Contains(t, got, "root: element is reachable more than once")
	assert.Contains(t, got, "entry 1: missing name")
	assert.Contains(t, got, "enum Empty: missing values")
}
