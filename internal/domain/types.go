package domain

import "strings"

// DataType classifies the value type of a data dictionary field.
// Primitive types have named constants; any other non-empty value names a
// user defined data or enum type.
type DataType string

const (
	DataTypeNone   DataType = ""
	DataTypeString DataType = "string"
	DataTypeInt    DataType = "int"
	DataTypeNumber DataType = "number"
	DataTypeBool   DataType = "bool"
	DataTypeDate   DataType = "date"
	DataTypeFile   DataType = "file"
)

// listSuffix marks a list type in architecture definitions ("Field[]")
const listSuffix = "[]"

// Primitives returns the built-in data types in declaration order
func Primitives() []DataType {
	return []DataType{
		DataTypeString,
		DataTypeInt,
		DataTypeNumber,
		DataTypeBool,
		DataTypeDate,
		DataTypeFile,
	}
}

// IsPrimitive reports whether the type is one of the built-in primitives
func (t DataType) IsPrimitive() bool {
	for _, p := range Primitives() {
		if t == p {
			return true
		}
	}
	return false
}

// IsNone reports whether the type is the "no value" marker
func (t DataType) IsNone() bool {
	return t == DataTypeNone
}

// ParseTypeDeclaration splits a declaration like "Field[]" into its base
// type and whether it is a list.
func ParseTypeDeclaration(decl string) (DataType, bool) {
	decl = strings.TrimSpace(decl)
	if strings.HasSuffix(decl, listSuffix) {
		return DataType(strings.TrimSuffix(decl, listSuffix)), true
	}
	return DataType(decl), false
}

// Cardinality classifies the multiplicity of a data dictionary field
type Cardinality string

const (
	CardinalityNone      Cardinality = ""
	CardinalityOptional  Cardinality = "0..1"
	CardinalityRequired  Cardinality = "1"
	CardinalityMany      Cardinality = "0..*"
	CardinalityOneOrMore Cardinality = "1..*"
)

// CardinalityFor derives the cardinality of a field from whether it is
// required and whether it is declared as a list.
func CardinalityFor(required, list bool) Cardinality {
	switch {
	case list && required:
		return CardinalityOneOrMore
	case list:
		return CardinalityMany
	case required:
		return CardinalityRequired
	default:
		return CardinalityOptional
	}
}

// ParseCardinality maps a textual cardinality onto a known value.
// Both the range notation and the word forms are accepted; anything else
// yields CardinalityNone.
func ParseCardinality(s string) Cardinality {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "0..1", "optional":
		return CardinalityOptional
	case "1", "required":
		return CardinalityRequired
	case "0..*", "*", "many":
		return CardinalityMany
	case "1..*", "one_or_more":
		return CardinalityOneOrMore
	default:
		return CardinalityNone
	}
}

// IsList reports whether the cardinality allows more than one value
func (c Cardinality) IsList() bool {
	return c == CardinalityMany || c == CardinalityOneOrMore
}

// IsRequired reports whether at least one value must be present
func (c Cardinality) IsRequired() bool {
	return c == CardinalityRequired || c == CardinalityOneOrMore
}

// IsNone reports whether the cardinality is the "no value" marker
func (c Cardinality) IsNone() bool {
	return c == CardinalityNone
}
