package schema

import "fmt"

// TypeNull is the type token for the "no data" sentinel.
const TypeNull = "null"

// FieldDef describes one declared field.
type FieldDef struct {
	// Name is the field name. Empty means the field is positional and
	// identified by Index.
	Name string `yaml:"name,omitempty"`

	// Type is the domain type token: a primitive token (e.g. "f32"),
	// the null sentinel, or the name of another struct in the schema.
	Type string `yaml:"type"`

	// Index is the declaration position, assigned at load time.
	// It fixes the field's slot in the columnar layout.
	Index int `yaml:"-"`

	// MinVersion is the lowest format version in which the field exists.
	// Nil means the field is always present.
	MinVersion *Version `yaml:"ver,omitempty"`
}

// Ident returns the field's name, or its index rendered as a string for
// positional fields.
func (f FieldDef) Ident() string {
	if f.Name != "" {
		return f.Name
	}

	return fmt.Sprintf("%d", f.Index)
}

// StructDef describes one declared struct: a name and its ordered fields.
// Built once at load time and never mutated afterwards.
type StructDef struct {
	Name   string     `yaml:"name"`
	Fields []FieldDef `yaml:"fields"`
}

// Named returns true if every field carries a name. Named structs thread
// an optional per-row validity marker end to end; unnamed structs never do.
func (s StructDef) Named() bool {
	for _, f := range s.Fields {
		if f.Name == "" {
			return false
		}
	}

	return true
}

// Schema is the full ordered struct catalogue.
type Schema struct {
	Structs []StructDef `yaml:"structs"`
}

// Lookup returns the struct with the given name, if declared.
func (s *Schema) Lookup(name string) (StructDef, bool) {
	for _, sd := range s.Structs {
		if sd.Name == name {
			return sd, true
		}
	}

	return StructDef{}, false
}

// Error is a schema error: a malformed or incomplete struct/field
// declaration. Schema errors abort the run at first occurrence.
type Error struct {
	// Code is a short identifier for the error class.
	Code string
	// Message is the human-readable description.
	Message string
	// Struct and Field locate the offending declaration, when known.
	Struct string
	Field  string
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := fmt.Sprintf("[%s] %s", e.Code, e.Message)

	switch {
	case e.Struct != "" && e.Field != "":
		return fmt.Sprintf("%s.%s: %s", e.Struct, e.Field, msg)
	case e.Struct != "":
		return e.Struct + ": " + msg
	default:
		return msg
	}
}
