package domain

import "unicode/utf16"

// hashPrime is the multiplier used by DataEntry.Hash
const hashPrime int32 = 31

// DataEntry is one row of a data dictionary. It is immutable; the zero
// values of its type, name and cardinality stand for "no value".
type DataEntry struct {
	entryID     int
	dataType    DataType
	name        string
	cardinality Cardinality
}

// NewDataEntry creates an entry. No field is validated.
func NewDataEntry(entryID int, dataType DataType, name string, cardinality Cardinality) DataEntry {
	return DataEntry{
		entryID:     entryID,
		dataType:    dataType,
		name:        name,
		cardinality: cardinality,
	}
}

// EntryID returns the entry identifier
func (e DataEntry) EntryID() int {
	return e.entryID
}

// Type returns the entry data type
func (e DataEntry) Type() DataType {
	return e.dataType
}

// Name returns the entry name
func (e DataEntry) Name() string {
	return e.name
}

// Cardinality returns the entry cardinality
func (e DataEntry) Cardinality() Cardinality {
	return e.cardinality
}

// Equal reports whether all four fields match
func (e DataEntry) Equal(other DataEntry) bool {
	return e.cardinality == other.cardinality &&
		e.entryID == other.entryID &&
		e.name == other.name &&
		e.dataType == other.dataType
}

// Compare returns 0 for equal entries, -1 when e has the smaller entry ID
// and +1 otherwise.
//
// Compare is not consistent with Equal: two unequal entries that share an
// entry ID both compare as greater than each other. Use Sorted on a
// DataModel for a well-defined ordering.
func (e DataEntry) Compare(other DataEntry) int {
	if e.Equal(other) {
		return 0
	}
	if e.entryID < other.entryID {
		return -1
	}
	return 1
}

// Hash combines the four fields so that equal entries hash identically
func (e DataEntry) Hash() int32 {
	result := int32(1)
	result = hashPrime*result + stringHash(string(e.cardinality))
	result = hashPrime*result + int32(e.entryID)
	result = hashPrime*result + stringHash(e.name)
	result = hashPrime*result + stringHash(string(e.dataType))
	return result
}

// stringHash is the polynomial rolling hash over the string's UTF-16 code
// units, so runes outside the BMP contribute their surrogate pair. The empty
// string hashes to 0.
func stringHash(s string) int32 {
	var h int32
	for _, u := range utf16.Encode([]rune(s)) {
		h = hashPrime*h + int32(u)
	}
	return h
}
