// Package service runs the aac pipeline.
//
// A run loads a definition file, validates the definitions, builds the
// decomposition tree and data dictionary, validates the result and exports
// it through a codec. Every phase is logged; validation findings are
// returned as a validate.Report whether or not the run fails.
//
// Services are configured once and can be shared. Each run builds its own
// fragment, so concurrent runs do not share domain values.
package service
