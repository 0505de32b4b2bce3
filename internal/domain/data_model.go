package domain

import (
	"cmp"
	"encoding/binary"
	"encoding/hex"
	"iter"
	"slices"

	"golang.org/x/crypto/blake2b"
)

// DataModel is an append-only data dictionary. Entries keep insertion order
// and duplicates are allowed.
type DataModel struct {
	entries []DataEntry
}

// NewDataModel creates an empty data dictionary
func NewDataModel() *DataModel {
	return &DataModel{
		entries: make([]DataEntry, 0),
	}
}

// Add appends an entry
func (d *DataModel) Add(entry DataEntry) {
	d.entries = append(d.entries, entry)
}

// All yields the entries held at call time, in insertion order. Entries
// added afterwards are not observed by the returned sequence.
func (d *DataModel) All() iter.Seq[DataEntry] {
	snapshot := d.entries[:len(d.entries):len(d.entries)]
	return slices.Values(snapshot)
}

// Len returns the number of entries
func (d *DataModel) Len() int {
	return len(d.entries)
}

// Entries returns a copy of the entries in insertion order
func (d *DataModel) Entries() []DataEntry {
	return slices.Clone(d.entries)
}

// Lookup returns every entry with the given ID, in insertion order
func (d *DataModel) Lookup(entryID int) []DataEntry {
	var found []DataEntry
	for _, e := range d.entries {
		if e.entryID == entryID {
			found = append(found, e)
		}
	}
	return found
}

// Sorted returns a copy ordered by entry ID. Entries sharing an ID keep
// their insertion order.
func (d *DataModel) Sorted() []DataEntry {
	sorted := slices.Clone(d.entries)
	slices.SortStableFunc(sorted, func(a, b DataEntry) int {
		return cmp.Compare(a.entryID, b.entryID)
	})
	return sorted
}

// Fingerprint returns a hex BLAKE2b-256 digest over the entries in insertion
// order. Two dictionaries with the same entries in the same order share a
// fingerprint.
func (d *DataModel) Fingerprint() string {
	h, _ := blake2b.New256(nil) // only fails for oversized keys
	var buf [8]byte
	writeString := func(s string) {
		binary.BigEndian.PutUint64(buf[:], uint64(len(s)))
		h.Write(buf[:])
		h.Write([]byte(s))
	}
	for _, e := range d.entries {
		binary.BigEndian.PutUint64(buf[:], uint64(int64(e.entryID)))
		h.Write(buf[:])
		writeString(string(e.dataType))
		writeString(e.name)
		writeString(string(e.cardinality))
	}
	return hex.EncodeToString(h.Sum(nil))
}
