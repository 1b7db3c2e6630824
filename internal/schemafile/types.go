package schemafile

import (
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

// File represents the root of a schema declaration file.
type File struct {
	// Version of the file format (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Classes declares one object class each.
	Classes []ClassDecl `yaml:"classes"`
}

// ClassDecl declares an object class.
type ClassDecl struct {
	// Class is the class name; it must equal the first field's name.
	Class string `yaml:"class"`

	// Hook names the class-specific validation hook, "none" by default.
	Hook string `yaml:"hook,omitempty"`

	// Fields in declaration order.
	Fields []FieldDecl `yaml:"fields"`
}

// FieldDecl declares one attribute.
type FieldDecl struct {
	Name string `yaml:"name"`

	// Type names the cleaner in the catalog, "text" by default.
	Type string `yaml:"type,omitempty"`

	// List cleans the value as a comma separated list of Type.
	List bool `yaml:"list,omitempty"`

	// Flags holds any of primary_key, lookup_key, optional, multiple.
	Flags StringOrArray `yaml:"flags,omitempty"`
}

// Field flags.
const (
	FlagPrimaryKey = "primary_key"
	FlagLookupKey  = "lookup_key"
	FlagOptional   = "optional"
	FlagMultiple   = "multiple"
)

var knownFlags = []string{FlagPrimaryKey, FlagLookupKey, FlagOptional, FlagMultiple}

// StringOrArray is a YAML value written either as one string or a list.
type StringOrArray []string

// UnmarshalYAML implements custom YAML unmarshaling for StringOrArray.
// Accepts either a single string or an array of strings.
func (s *StringOrArray) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string

		err := node.Decode(&str)
		if err != nil {
			return err
		}

		if str != "" {
			*s = StringOrArray{str}
		} else {
			*s = StringOrArray{}
		}

		return nil

	case yaml.SequenceNode:
		var arr []string

		err := node.Decode(&arr)
		if err != nil {
			return err
		}

		*s = arr

		return nil

	default:
		return fmt.Errorf("expected string or array, got %v", node.Kind)
	}
}

// MarshalYAML outputs a single string if length is 1, otherwise an array.
func (s StringOrArray) MarshalYAML() (any, error) {
	if len(s) == 1 {
		return s[0], nil
	}

	return []string(s), nil
}

// Contains returns true if the array contains the given string.
func (s StringOrArray) Contains(str string) bool {
	return slices.Contains(s, str)
}
