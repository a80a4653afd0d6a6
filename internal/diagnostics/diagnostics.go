// Package diagnostics defines the two error kinds the translator raises:
// malformed-source ParsingErrors and well-formed-but-unlowerable
// TranslationErrors. Both carry a stable code and a human-readable message
// keyed by the offending source fragment — the translator never attempts
// source-position diagnostics.
package diagnostics

import "fmt"

// ErrorCode is a stable, test-referenced identifier for a diagnostic.
type ErrorCode string

const (
	// Parsing errors: malformed source.
	ErrUnexpectedLine    ErrorCode = "P001" // not exactly one '=' on the line
	ErrBadIdentifier     ErrorCode = "P002" // identifier fails ^[A-Za-z][A-Za-z0-9]*$
	ErrMalformedCall     ErrorCode = "P003" // unbalanced parens / malformed call shape
	ErrUnknownSortKeyword ErrorCode = "P004" // FL signature head isn't 'num' or 'type'
	ErrUnresolvedIdent   ErrorCode = "P005" // locals -> FLs -> builtins all missed
	ErrUnknownFL         ErrorCode = "P006" // specialization names an undeclared FL

	// Translation errors: well-formed source, unlowerable semantics.
	ErrPendingSort     ErrorCode = "T001" // forward reference to an unset slot
	ErrNonNumericRead  ErrorCode = "T002" // eager read() consumed a non-numeric token
	ErrNullArgNotCall  ErrorCode = "T003" // null-sort LHS whose RHS isn't a Call
	ErrInternalUnknown ErrorCode = "T004" // unknown builtin/FL at emission (assertion)
)

// Kind distinguishes ParsingError from TranslationError at the point an
// error crosses into the task executor.
type Kind int

const (
	Parsing Kind = iota
	Translation
)

func (k Kind) String() string {
	if k == Translation {
		return "TranslationError"
	}
	return "ParsingError"
}

// DiagnosticError is the concrete error type every pipeline stage returns.
type DiagnosticError struct {
	Kind     Kind
	Code     ErrorCode
	Fragment string // the offending source fragment, verbatim
	Message  string
}

func (e *DiagnosticError) Error() string {
	if e.Fragment == "" {
		return fmt.Sprintf("%s [%s]: %s", e.Kind, e.Code, e.Message)
	}
	return fmt.Sprintf("%s [%s]: %s (in %q)", e.Kind, e.Code, e.Message, e.Fragment)
}

// NewParsingError builds a ParsingError keyed by the offending fragment.
func NewParsingError(code ErrorCode, fragment, message string) *DiagnosticError {
	return &DiagnosticError{Kind: Parsing, Code: code, Fragment: fragment, Message: message}
}

// NewTranslationError builds a TranslationError keyed by the offending fragment.
func NewTranslationError(code ErrorCode, fragment, message string) *DiagnosticError {
	return &DiagnosticError{Kind: Translation, Code: code, Fragment: fragment, Message: message}
}
