package diagnostic

import (
	"errors"
	"fmt"
	"strings"
)

// Messages holds all messages produced while parsing a single object.
// The zero value is ready to use.
type Messages struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Kind classifies where the diagnostic came from.
	Kind Kind
	// Message is the human-readable description.
	Message string
	// Attribute is the attribute name this relates to (if any).
	Attribute string
	// Line is the 1-based physical line number (0 if not applicable).
	Line int
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Kind is the error taxonomy of the parser.
type Kind string

const (
	// KindStructural is a malformed start-line or an illegal blank line.
	KindStructural Kind = "structural"
	// KindCardinality is a missing, unrecognised or repeated attribute.
	KindCardinality Kind = "cardinality"
	// KindField is a rejection reported by a field cleaner.
	KindField Kind = "field"
	// KindObject is reported by a type-specific hook.
	KindObject Kind = "object"
	// KindUnknownClass is a failed schema lookup.
	KindUnknownClass Kind = "unknown_class"
)

// AddError adds an error diagnostic.
func (m *Messages) AddError(kind Kind, message, attribute string, line int) {
	m.Errors = append(m.Errors, Diagnostic{
		Severity:  SeverityError,
		Kind:      kind,
		Message:   message,
		Attribute: attribute,
		Line:      line,
	})
}

// AddWarning adds a warning diagnostic.
func (m *Messages) AddWarning(kind Kind, message, attribute string, line int) {
	m.Warnings = append(m.Warnings, Diagnostic{
		Severity:  SeverityWarning,
		Kind:      kind,
		Message:   message,
		Attribute: attribute,
		Line:      line,
	})
}

// AddInfo adds an info diagnostic.
func (m *Messages) AddInfo(kind Kind, message, attribute string, line int) {
	m.Infos = append(m.Infos, Diagnostic{
		Severity:  SeverityInfo,
		Kind:      kind,
		Message:   message,
		Attribute: attribute,
		Line:      line,
	})
}

// Error adds a field error. Field cleaners report through this; the
// validator attaches the attribute name afterwards.
func (m *Messages) Error(message string) {
	m.AddError(KindField, message, "", 0)
}

// Errorf adds a formatted field error.
func (m *Messages) Errorf(format string, args ...any) {
	m.Error(fmt.Sprintf(format, args...))
}

// Warning adds a field warning.
func (m *Messages) Warning(message string) {
	m.AddWarning(KindField, message, "", 0)
}

// Warningf adds a formatted field warning.
func (m *Messages) Warningf(format string, args ...any) {
	m.Warning(fmt.Sprintf(format, args...))
}

// Mark returns the current lengths of the error and warning lists, to be
// passed to AttachAttribute after a cleaner has run.
func (m *Messages) Mark() (errs, warns int) {
	return len(m.Errors), len(m.Warnings)
}

// AttachAttribute sets Attribute on diagnostics added since Mark that do
// not carry one yet.
func (m *Messages) AttachAttribute(errs, warns int, attribute string) {
	for i := errs; i < len(m.Errors); i++ {
		if m.Errors[i].Attribute == "" {
			m.Errors[i].Attribute = attribute
		}
	}

	for i := warns; i < len(m.Warnings); i++ {
		if m.Warnings[i].Attribute == "" {
			m.Warnings[i].Attribute = attribute
		}
	}
}

// HasErrors returns true if there are any error diagnostics.
func (m *Messages) HasErrors() bool {
	return len(m.Errors) > 0
}

// HasWarnings returns true if there are any warning diagnostics.
func (m *Messages) HasWarnings() bool {
	return len(m.Warnings) > 0
}

// Merge merges another Messages instance into this one.
func (m *Messages) Merge(other Messages) {
	m.Errors = append(m.Errors, other.Errors...)
	m.Warnings = append(m.Warnings, other.Warnings...)
	m.Infos = append(m.Infos, other.Infos...)
}

// ErrorStrings returns the error messages in order.
func (m *Messages) ErrorStrings() []string {
	return messageStrings(m.Errors)
}

// WarningStrings returns the warning messages in order.
func (m *Messages) WarningStrings() []string {
	return messageStrings(m.Warnings)
}

// Err returns a combined error from all error diagnostics, or nil if valid.
func (m *Messages) Err() error {
	if !m.HasErrors() {
		return nil
	}

	parts := make([]string, 0, len(m.Errors))
	for _, e := range m.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Line > 0 {
		prefix = append(prefix, fmt.Sprintf("line %d", d.Line))
	}

	if d.Attribute != "" {
		prefix = append(prefix, d.Attribute)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + d.Message
	}

	return d.Message
}

func messageStrings(ds []Diagnostic) []string {
	out := make([]string, 0, len(ds))
	for _, d := range ds {
		out = append(out, d.Message)
	}

	return out
}
