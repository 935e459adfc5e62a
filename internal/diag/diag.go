// Package diag implements the diagnostics collaborator: a sink with
// addError/addWarning/hasError, plus the Error kinds the Resolver and
// Verifier can both raise.
package diag

import (
	"fmt"

	"github.com/yuvrajsinghgmx/lfortran/internal/source"
)

// Code identifies one kind of Error. A handful of these (DependencyDrift,
// ExternalSymbol coherence failures, ...) are only ever raised by the
// Verifier; the rest can be raised by either component.
type Code string

const (
	LexicalName     Code = "lexical-name"
	DuplicateSymbol Code = "duplicate-symbol"
	UnresolvedSymbol Code = "unresolved-symbol"
	TypeShape       Code = "type-shape"
	ArityMismatch   Code = "arity-mismatch"
	IntentViolation Code = "intent-violation"
	DependencyDrift Code = "dependency-drift"
	CyclicImport    Code = "cyclic-import"
	TemplateMisuse  Code = "template-misuse"
	Internal        Code = "internal"
)

// Severity distinguishes a hard failure from an advisory note (e.g. the
// use-and-shadow warning raised when a local declaration shadows an
// imported name).
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

// Label attaches a short note to a specific source range, the way a
// diagnostic points at both the offending reference and its original
// declaration.
type Label struct {
	Location source.Location
	Text     string
}

// Diagnostic is a single recorded fault.
type Diagnostic struct {
	Code     Code
	Severity Severity
	Location source.Location
	Message  string
	Labels   []Label
}

func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%s: %s: %s", d.Location, d.Code, d.Message)
}

// New builds an Error-severity diagnostic.
func New(code Code, loc source.Location, message string, labels ...Label) *Diagnostic {
	return &Diagnostic{Code: code, Severity: SeverityError, Location: loc, Message: message, Labels: labels}
}

// NewWarning builds a Warning-severity diagnostic.
func NewWarning(code Code, loc source.Location, message string, labels ...Label) *Diagnostic {
	return &Diagnostic{Code: code, Severity: SeverityWarning, Location: loc, Message: message, Labels: labels}
}

// Sink accumulates diagnostics for a single pass (Resolver run or Verifier
// run) and is flushed between passes: append-only for the duration of a
// pass, then flushed before the next one starts.
//
// Diagnostics are deduplicated by (location, code): a declaration dropped
// under continue-on-error and re-examined by a later pass must not produce
// the same fault twice.
type Sink struct {
	seen  map[string]bool
	items []*Diagnostic
}

// NewSink returns an empty Sink.
func NewSink() *Sink {
	return &Sink{seen: make(map[string]bool)}
}

func (s *Sink) dedupeKey(d *Diagnostic) string {
	return fmt.Sprintf("%d:%d:%d:%s", d.Location.File, d.Location.Start, d.Location.End, d.Code)
}

// Add records a diagnostic, silently dropping an exact duplicate.
func (s *Sink) Add(d *Diagnostic) {
	key := s.dedupeKey(d)
	if s.seen[key] {
		return
	}
	s.seen[key] = true
	s.items = append(s.items, d)
}

// AddError is a convenience wrapper around Add(New(...)).
func (s *Sink) AddError(code Code, loc source.Location, message string, labels ...Label) {
	s.Add(New(code, loc, message, labels...))
}

// AddWarning is a convenience wrapper around Add(NewWarning(...)).
func (s *Sink) AddWarning(code Code, loc source.Location, message string, labels ...Label) {
	s.Add(NewWarning(code, loc, message, labels...))
}

// HasError reports whether any Error-severity diagnostic has been recorded.
func (s *Sink) HasError() bool {
	for _, d := range s.items {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Items returns every recorded diagnostic in the order it was first added.
func (s *Sink) Items() []*Diagnostic {
	return s.items
}

// Errors returns only the Error-severity diagnostics.
func (s *Sink) Errors() []*Diagnostic {
	var out []*Diagnostic
	for _, d := range s.items {
		if d.Severity == SeverityError {
			out = append(out, d)
		}
	}
	return out
}
