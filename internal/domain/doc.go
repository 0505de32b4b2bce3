// Package domain defines the core types for describing a system
// architecture and its data dictionary.
//
// # Core Types
//
// ArchitectureModel is a node in a rooted decomposition tree. A node keeps
// the parent it was constructed with as a lookup link and owns the children
// explicitly added to it. Nodes may carry typed input and output ports.
//
// DataEntry is an immutable row of a data dictionary: an entry ID, a
// DataType, a name and a Cardinality.
//
// DataModel is an ordered, append-only collection of DataEntry values.
//
// Fragment bundles decomposition roots, a data dictionary and enum
// definitions for loading and exporting.
//
// # Enumerations
//
// DataType and Cardinality are string enumerations. Their zero value is the
// explicit "no value" marker.
//
// # Design Principles
//
// - Construction never fails and never validates; see package validate
// - Iteration works on a snapshot taken when the sequence is requested
// - No logging, I/O or external dependencies beyond hashing
package domain
