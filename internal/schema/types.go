package schema

import (
	"rpslkit/internal/diagnostic"
)

// Cleaner validates and canonicalizes a normalized attribute value.
// On rejection it reports through msgs and returns false.
type Cleaner interface {
	Clean(value string, msgs *diagnostic.Messages) (string, bool)
}

// CleanerFunc adapts a function to the Cleaner interface.
type CleanerFunc func(value string, msgs *diagnostic.Messages) (string, bool)

// Clean calls f.
func (f CleanerFunc) Clean(value string, msgs *diagnostic.Messages) (string, bool) {
	return f(value, msgs)
}

// FieldSpec declares one attribute of an object class.
type FieldSpec struct {
	Name       string
	PrimaryKey bool
	LookupKey  bool
	Optional   bool
	Multiple   bool
	// Cleaner may be nil, in which case the normalized value is kept as is.
	Cleaner Cleaner
}

// Clean runs the field's cleaner.
func (f FieldSpec) Clean(value string, msgs *diagnostic.Messages) (string, bool) {
	if f.Cleaner == nil {
		return value, true
	}

	return f.Cleaner.Clean(value, msgs)
}

// Indexed reports whether relaxed validation still cleans this field.
func (f FieldSpec) Indexed() bool {
	return f.PrimaryKey || f.LookupKey
}

// ObjectView is what a Hook can see and change of a parsed object.
type ObjectView interface {
	Class() string
	Strict() bool
	Cleaned(name string) (string, bool)
	Values(name string) []string
	Replace(name string, values ...string)
	Messages() *diagnostic.Messages
}

// Hook is the class-specific validation step that runs after all fields
// have been cleaned.
type Hook interface {
	Clean(obj ObjectView)
}

// HookFunc adapts a function to the Hook interface.
type HookFunc func(obj ObjectView)

// Clean calls f.
func (f HookFunc) Clean(obj ObjectView) {
	f(obj)
}

// NopHook accepts every object unchanged.
type NopHook struct{}

// Clean does nothing.
func (NopHook) Clean(ObjectView) {}
