package schemafile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultHook is the hook of classes that do not name one.
const DefaultHook = "none"

// LoadFile loads and parses a YAML schema file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema YAML: %w", err)
	}

	applyDefaults(&f)

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = "1"
	}

	for i := range f.Classes {
		c := &f.Classes[i]
		if c.Hook == "" {
			c.Hook = DefaultHook
		}

		if c.Class == "" && len(c.Fields) > 0 {
			c.Class = c.Fields[0].Name
		}

		for j := range c.Fields {
			if c.Fields[j].Type == "" {
				c.Fields[j].Type = "text"
			}
		}
	}
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}
