package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode identifies a class of episode generation failure.
type ErrorCode string

const (
	// ErrEpisodeWrite indicates the episode document could not be written to its sink.
	ErrEpisodeWrite ErrorCode = "episode-write-failed"
	// ErrUnsupportedComponent indicates an SCD was requested for a component kind
	// that can never be bound to a generated type.
	ErrUnsupportedComponent ErrorCode = "scd-unsupported-component"
	// ErrBadCommandLine indicates a malformed plugin option token.
	ErrBadCommandLine ErrorCode = "bad-command-line"
	// ErrManifestInvalid indicates a host model dump that references unknown entries.
	ErrManifestInvalid ErrorCode = "manifest-invalid"
	// ErrResourceWrite indicates a generated resource could not be registered or flushed.
	ErrResourceWrite ErrorCode = "resource-write-failed"
)

// Diagnostic is an error reported through the host's error channel.
//
//nolint:errname // public API name mirrors the host's diagnostic term.
type Diagnostic struct {
	Cause   error
	Code    string
	Message string
	// File is the resource or input file the diagnostic refers to.
	File string
	Line int
}

// DiagnosticList is an error that wraps one or more diagnostics.
type DiagnosticList []Diagnostic //nolint:errname // public API name, keep for compatibility.

// Error returns a compact summary of the diagnostics.
func (l DiagnosticList) Error() string {
	switch len(l) {
	case 0:
		return "no diagnostics"
	case 1:
		return l[0].Error()
	default:
		return fmt.Sprintf("%s (and %d more)", l[0].Error(), len(l)-1)
	}
}

// Error formats the diagnostic for display, including code, message, and context.
func (d *Diagnostic) Error() string {
	if d == nil {
		return "diagnostic <nil>"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("[%s] %s", d.Code, d.Message))
	if d.File != "" {
		b.WriteString(fmt.Sprintf(" in %s", d.File))
		if d.Line > 0 {
			b.WriteString(fmt.Sprintf(":%d", d.Line))
		}
	}
	if d.Cause != nil {
		b.WriteString(fmt.Sprintf(": %v", d.Cause))
	}
	return b.String()
}

// Unwrap returns the underlying cause.
func (d *Diagnostic) Unwrap() error {
	if d == nil {
		return nil
	}
	return d.Cause
}

// NewDiagnostic builds a Diagnostic with a code, message, and optional file.
func NewDiagnostic(code ErrorCode, msg, file string) *Diagnostic {
	return &Diagnostic{Code: string(code), Message: msg, File: file}
}

// NewDiagnosticf formats a message and builds a Diagnostic.
func NewDiagnosticf(code ErrorCode, file, format string, args ...any) *Diagnostic {
	return NewDiagnostic(code, fmt.Sprintf(format, args...), file)
}

// Wrap builds a Diagnostic carrying cause.
func Wrap(code ErrorCode, cause error, file, format string, args ...any) *Diagnostic {
	d := NewDiagnosticf(code, file, format, args...)
	d.Cause = cause
	return d
}

// HasCode reports whether err carries a diagnostic with code.
func HasCode(err error, code ErrorCode) bool {
	for _, d := range AsDiagnostics(err) {
		if d.Code == string(code) {
			return true
		}
	}
	return false
}

// AsDiagnostics extracts diagnostics from err: a DiagnosticList yields its
// entries, a single wrapped *Diagnostic yields a one-element slice.
func AsDiagnostics(err error) []Diagnostic {
	if err == nil {
		return nil
	}
	var list DiagnosticList
	if errors.As(err, &list) {
		return []Diagnostic(list)
	}
	var d *Diagnostic
	if errors.As(err, &d) && d != nil {
		return []Diagnostic{*d}
	}
	return nil
}
