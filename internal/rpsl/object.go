package rpsl

import (
	"slices"
	"strings"

	"rpslkit/internal/diagnostic"
	"rpslkit/internal/schema"
)

// AttributeLine is one attribute occurrence as it appeared in the text.
// Value holds one "\n" per continuation line and FoldMarkers holds the
// leading character of each of those lines, in order.
type AttributeLine struct {
	Name        string
	Value       string
	FoldMarkers []byte
}

// PhysicalLines returns the value split on its embedded line breaks.
func (a AttributeLine) PhysicalLines() []string {
	return strings.Split(a.Value, "\n")
}

func (a AttributeLine) clone() AttributeLine {
	a.FoldMarkers = slices.Clone(a.FoldMarkers)
	return a
}

// Object is a single parsed RPSL object. It is owned by the caller that
// parsed it and is not safe for concurrent mutation.
type Object struct {
	schema   *schema.ObjectSchema
	strict   bool
	lines    []AttributeLine
	cleaned  map[string]string
	messages diagnostic.Messages

	// extracted holds the messages of the extraction step, so validation
	// can be re-run without losing structural errors.
	extracted diagnostic.Messages
}

// New creates an empty object of the given schema.
func New(s *schema.ObjectSchema, strict bool) *Object {
	return &Object{
		schema:  s,
		strict:  strict,
		cleaned: make(map[string]string),
	}
}

// Parse extracts and validates text against s.
func Parse(text string, s *schema.ObjectSchema, strict bool) *Object {
	o := New(s, strict)
	o.Read(text)

	return o
}

// FromText determines the object class from the first attribute of text,
// resolves its schema in reg and parses the text. An unknown class is
// returned as an *schema.UnknownClassError.
func FromText(text string, reg *schema.Registry, strict bool) (*Object, error) {
	s, err := reg.Resolve(ClassOf(text))
	if err != nil {
		return nil, err
	}

	return Parse(text, s, strict), nil
}

// ClassOf returns the lowercased name of the first attribute in text, or ""
// when the first line is not an attribute line.
func ClassOf(text string) string {
	text = strings.TrimSpace(text)
	first, _, _ := strings.Cut(text, "\n")

	name, _, found := strings.Cut(first, ":")
	if !found {
		return ""
	}

	return strings.ToLower(strings.TrimSpace(name))
}

// Read replaces the object's content with text, then validates it.
func (o *Object) Read(text string) {
	o.lines = nil
	o.messages = diagnostic.Messages{}
	o.extract(text)
	o.extracted = cloneMessages(o.messages)
	o.validate()
}

// Revalidate runs validation again on the current attribute lines, keeping
// the structural messages of the original extraction.
func (o *Object) Revalidate() {
	o.messages = cloneMessages(o.extracted)
	o.validate()
}

// Class returns the object class of the schema.
func (o *Object) Class() string { return o.schema.Class() }

// Schema returns the schema the object was parsed against.
func (o *Object) Schema() *schema.ObjectSchema { return o.schema }

// Strict reports whether strict validation applies.
func (o *Object) Strict() bool { return o.strict }

// Messages returns the object's messages. Hooks add to them in place.
func (o *Object) Messages() *diagnostic.Messages { return &o.messages }

// Valid reports whether no errors were recorded.
func (o *Object) Valid() bool { return !o.messages.HasErrors() }

// Lines returns a copy of the attribute occurrences in document order.
func (o *Object) Lines() []AttributeLine {
	out := make([]AttributeLine, len(o.lines))
	for i, l := range o.lines {
		out[i] = l.clone()
	}

	return out
}

// Cleaned returns the cleaned value of an attribute. Values of repeated
// attributes are joined with "\n".
func (o *Object) Cleaned(name string) (string, bool) {
	v, ok := o.cleaned[name]
	return v, ok
}

// Values returns the raw values of every occurrence of name, in order.
func (o *Object) Values(name string) []string {
	var out []string

	for _, l := range o.lines {
		if l.Name == name {
			out = append(out, l.Value)
		}
	}

	return out
}

// CleanedData returns a copy of all cleaned values.
func (o *Object) CleanedData() map[string]string {
	out := make(map[string]string, len(o.cleaned))
	for k, v := range o.cleaned {
		out[k] = v
	}

	return out
}

// PK returns the upper-cased primary key. Composite keys are joined with ","
// in declaration order; missing parts are empty. Only meaningful after
// validation.
func (o *Object) PK() string {
	pkFields := o.schema.PKFields()
	if len(pkFields) == 1 {
		return strings.ToUpper(o.cleaned[pkFields[0]])
	}

	parts := make([]string, len(pkFields))
	for i, f := range pkFields {
		parts[i] = o.cleaned[f]
	}

	return strings.ToUpper(strings.Join(parts, ","))
}

// Replace removes every occurrence of name and inserts one line per value
// directly after the first remaining line. The cleaned value of name is set
// to the values joined by "\n", or removed when no values are given.
//
// Used for attributes that are derived from other attributes rather than
// taken from the input text.
func (o *Object) Replace(name string, values ...string) {
	kept := make([]AttributeLine, 0, len(o.lines)+len(values))
	for _, l := range o.lines {
		if l.Name != name {
			kept = append(kept, l)
		}
	}

	added := make([]AttributeLine, 0, len(values))
	for _, v := range values {
		added = append(added, AttributeLine{Name: name, Value: v, FoldMarkers: defaultMarkers(v)})
	}

	o.lines = slices.Insert(kept, min(1, len(kept)), added...)

	if len(values) == 0 {
		delete(o.cleaned, name)
		return
	}

	o.cleaned[name] = strings.Join(values, "\n")
}

// defaultMarkers returns nil for single-line values and a space marker per
// embedded line break otherwise, keeping the marker count invariant.
func defaultMarkers(value string) []byte {
	n := strings.Count(value, "\n")
	if n == 0 {
		return nil
	}

	return []byte(strings.Repeat(" ", n))
}

func cloneMessages(m diagnostic.Messages) diagnostic.Messages {
	return diagnostic.Messages{
		Errors:   slices.Clone(m.Errors),
		Warnings: slices.Clone(m.Warnings),
		Infos:    slices.Clone(m.Infos),
	}
}
