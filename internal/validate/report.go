// Package validate checks loaded definitions and built fragments.
//
// The domain types accept anything; this package is the optional pass that
// reports what a caller got wrong. Checks never stop at the first problem:
// every finding is collected into a Report.
package validate

import (
	"errors"
	"fmt"

	"github.com/oklog/ulid/v2"
	"go.uber.org/multierr"
)

// Severity classifies a finding
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Finding is a single validation problem
type Finding struct {
	Severity Severity `json:"severity"`
	Subject  string   `json:"subject"`
	Message  string   `json:"message"`
}

// Error implements error
func (f Finding) Error() string {
	return fmt.Sprintf("%s: %s", f.Subject, f.Message)
}

// Report collects findings. The ID correlates a report with log lines.
type Report struct {
	ID       ulid.ULID `json:"id"`
	Findings []Finding `json:"findings"`
}

// NewReport creates an empty report with a fresh ID
func NewReport() *Report {
	return &Report{
		ID:       ulid.Make(),
		Findings: make([]Finding, 0),
	}
}

func (r *Report) errorf(subject, format string, args ...any) {
	r.Findings = append(r.Findings, Finding{
		Severity: SeverityError,
		Subject:  subject,
		Message:  fmt.Sprintf(format, args...),
	})
}

func (r *Report) warnf(subject, format string, args ...any) {
	r.Findings = append(r.Findings, Finding{
		Severity: SeverityWarning,
		Subject:  subject,
		Message:  fmt.Sprintf(format, args...),
	})
}

// Merge appends the findings of other. The receiver keeps its ID.
func (r *Report) Merge(other *Report) {
	if other == nil {
		return
	}
	r.Findings = append(r.Findings, other.Findings...)
}

// Count returns the number of findings with the given severity
func (r *Report) Count(sev Severity) int {
	n := 0
	for _, f := range r.Findings {
		if f.Severity == sev {
			n++
		}
	}
	return n
}

// HasErrors reports whether any finding is an error
func (r *Report) HasErrors() bool {
	return r.Count(SeverityError) > 0
}

// HasWarnings reports whether any finding is a warning
func (r *Report) HasWarnings() bool {
	return r.Count(SeverityWarning) > 0
}

// Err combines every error finding into one error, or returns nil. With
// strict set, warnings are included.
func (r *Report) Err(strict bool) error {
	var err error
	for _, f := range r.Findings {
		if f.Severity == SeverityError || strict {
			err = multierr.Append(err, f)
		}
	}
	return err
}

// AsFindings extracts the findings combined into err by Report.Err
func AsFindings(err error) []Finding {
	var out []Finding
	for _, e := range multierr.Errors(err) {
		var f Finding
		if errors.As(e, &f) {
			out = append(out, f)
		}
	}
	return out
}
