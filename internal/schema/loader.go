package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a YAML schema file from the given path.
func LoadFile(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a validated Schema.
func Parse(data []byte) (*Schema, error) {
	var s Schema

	err := yaml.Unmarshal(data, &s)
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema YAML: %w", err)
	}

	applyIndexes(&s)

	err = Validate(&s)
	if err != nil {
		return nil, err
	}

	return &s, nil
}

// applyIndexes assigns each field its declaration position.
func applyIndexes(s *Schema) {
	for i := range s.Structs {
		for j := range s.Structs[i].Fields {
			s.Structs[i].Fields[j].Index = j
		}
	}
}

// Validate checks the schema for malformed declarations:
//   - every struct must have a name
//   - every field must have a type token
//   - minVersions, where present, must be non-decreasing in declaration
//     order, and versionless fields may not follow versioned ones
//
// The first violation is returned as a *Error; nothing is recovered.
func Validate(s *Schema) error {
	for _, sd := range s.Structs {
		if sd.Name == "" {
			return &Error{Code: "unnamed-struct", Message: "struct declaration has no name"}
		}

		err := validateVersions(sd)
		if err != nil {
			return err
		}
	}

	return nil
}

// validateVersions enforces the non-decreasing minVersion invariant for
// one struct. The version-grouping step relies on it: guards are only
// ever shared or nested, never reopened.
func validateVersions(sd StructDef) error {
	var prev *Version

	for _, f := range sd.Fields {
		if f.Type == "" {
			return &Error{Code: "untyped-field", Message: "field has no type", Struct: sd.Name, Field: f.Ident()}
		}

		if f.MinVersion == nil {
			if prev != nil {
				return &Error{
					Code:    "non-monotonic-versions",
					Message: fmt.Sprintf("versionless field follows field gated at %s", prev),
					Struct:  sd.Name,
					Field:   f.Ident(),
				}
			}

			continue
		}

		if prev != nil && f.MinVersion.Cmp(*prev) < 0 {
			return &Error{
				Code:    "non-monotonic-versions",
				Message: fmt.Sprintf("minVersion %s follows %s", f.MinVersion, prev),
				Struct:  sd.Name,
				Field:   f.Ident(),
			}
		}

		prev = f.MinVersion
	}

	return nil
}
