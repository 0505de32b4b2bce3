package domain

import (
	"testing"
)

func TestParseTypeDeclaration(t *testing.T) {
	tests := []struct {
		input string
		base  DataType
		list  bool
	}{
		{"string", DataTypeString, false},
		{"Field[]", DataType("Field"), true},
		{" int[] ", DataTypeInt, true},
		{"", DataTypeNone, false},
	}

	for _, tt := range tests {
		base, list := ParseTypeDeclaration(tt.input)
		if base != tt.base || list != tt.list {
			t.Errorf("ParseTypeDeclaration(%q) = (%q, %v), want (%q, %v)",
				tt.input, base, list, tt.base, tt.list)
		}
	}
}

func TestDataTypeIsPrimitive(t *testing.T) {
	for _, p := range Primitives() {
		if !p.IsPrimitive() {
			t.Errorf("DataType(%s).IsPrimitive() = false, want true", p)
		}
	}
	if DataType("Address").IsPrimitive() {
		t.Error("user type must not be primitive")
	}
	if DataTypeNone.IsPrimitive() {
		t.Error("none must not be primitive")
	}
}

func TestCardinalityFor(t *testing.T) {
	tests := []struct {
		required bool
		list     bool
		want     Cardinality
	}{
		{false, false, CardinalityOptional},
		{true, false, CardinalityRequired},
		{false, true, CardinalityMany},
		{true, true, CardinalityOneOrMore},
	}

	for _, tt := range tests {
		got := CardinalityFor(tt.required, tt.list)
		if got != tt.want {
			t.Errorf("CardinalityFor(%v, %v) = %q, want %q", tt.required, tt.list, got, tt.want)
		}
		if got.IsList() != tt.list {
			t.Errorf("Cardinality(%q).IsList() = %v, want %v", got, got.IsList(), tt.list)
		}
		if got.IsRequired() != tt.required {
			t.Errorf("Cardinality(%q).IsRequired() = %v, want %v", got, got.IsRequired(), tt.required)
		}
	}
}

func TestParseCardinality(t *testing.T) {
	tests := []struct {
		input string
		want  Cardinality
	}{
		{"0..1", CardinalityOptional},
		{"optional", CardinalityOptional},
		{"REQUIRED", CardinalityRequired},
		{"1", CardinalityRequired},
		{"*", CardinalityMany},
		{"many", CardinalityMany},
		{"1..*", CardinalityOneOrMore},
		{"bogus", CardinalityNone}, // Default
		{"", CardinalityNone},
	}

	for _, tt := range tests {
		if got := ParseCardinality(tt.input); got != tt.want {
			t.Errorf("ParseCardinality(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
