package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"idwire/internal/common"
)

// Codes reported by declaration checks.
const (
	CodeFileIsNil        = "file_is_nil"
	CodeGraphIsNil       = "graph_is_nil"
	CodeTableIsNil       = "table_is_nil"
	CodeMissingPackage   = "missing_package"
	CodeUnsupportedVer   = "unsupported_version"
	CodeEmptyType        = "empty_type"
	CodeUnexportedType   = "unexported_type"
	CodeDuplicateRule    = "duplicate_rule"
	CodeUnknownWire      = "unknown_wire"
	CodeVariableWidth    = "variable_width_wire"
	CodeTypeNotFound     = "type_not_found"
	CodeKindMismatch     = "kind_mismatch"
	CodeMissingValidator = "missing_validator"
	CodeUncheckedDomain  = "unchecked_domain"
	CodeDisabledRule     = "disabled_rule"
	CodeMissingRule      = "missing_rule"
	CodeUndeclaredRule   = "undeclared_rule"
	CodeWireMismatch     = "wire_mismatch"
	CodeCheckedMismatch  = "checked_mismatch"
	CodeDomainMismatch   = "domain_mismatch"
)

// Diagnostics holds all diagnostic information from a check.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Rule names the identifier rule this relates to (if any).
	Rule string
	// Field names the declaration attribute this relates to (if any).
	Field string
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// AddError records a problem that fails the check.
func (d *Diagnostics) AddError(code, message, rule, field string) {
	d.Errors = append(d.Errors, newDiagnostic(DiagnosticError, code, message, rule, field))
}

// AddWarning records a suspicious but accepted declaration.
func (d *Diagnostics) AddWarning(code, message, rule, field string) {
	d.Warnings = append(d.Warnings, newDiagnostic(DiagnosticWarning, code, message, rule, field))
}

// AddInfo records a note.
func (d *Diagnostics) AddInfo(code, message, rule, field string) {
	d.Infos = append(d.Infos, newDiagnostic(DiagnosticInfo, code, message, rule, field))
}

func newDiagnostic(sev DiagnosticSeverity, code, message, rule, field string) Diagnostic {
	return Diagnostic{Severity: sev, Code: code, Message: message, Rule: rule, Field: field}
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// HasCode reports whether any diagnostic carries the code.
func (d *Diagnostics) HasCode(code string) bool {
	for _, diag := range d.All() {
		if diag.Code == code {
			return true
		}
	}

	return false
}

// All returns errors, then warnings, then infos.
func (d *Diagnostics) All() []Diagnostic {
	all := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings)+len(d.Infos))
	all = append(all, d.Errors...)
	all = append(all, d.Warnings...)

	return append(all, d.Infos...)
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Rule != "" {
		prefix = append(prefix, "["+d.Rule+"]")
	}

	if d.Field != "" {
		prefix = append(prefix, d.Field)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
