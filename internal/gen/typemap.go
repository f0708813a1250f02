package gen

import (
	"fmt"

	"arrowgen/internal/rust"
)

// UnsupportedTypeError reports a domain type token absent from both the
// primitive catalogue and the struct catalogue. Schema input is trusted,
// so this is a programmer/schema error and aborts the run.
type UnsupportedTypeError struct {
	Token string
}

// Error implements the error interface.
func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported type token %q", e.Token)
}

// mappedType is the Type Mapper result: either a primitive kind from the
// fixed catalogue or a reference to another declared struct.
type mappedType struct {
	kind       Kind
	structName string
}

// composite returns true if the token named another struct declaration.
func (m mappedType) composite() bool {
	return m.structName != ""
}

// mapType maps a domain type token to a primitive descriptor or to the
// struct it names. Composite schema composition is type-directed, never
// literal: the descriptor of a nested struct is that struct's own
// data_type function.
func (g *Generator) mapType(token string) (mappedType, error) {
	if k, ok := kindByToken[token]; ok {
		return mappedType{kind: k}, nil
	}

	if sd, ok := g.schema.Lookup(token); ok {
		return mappedType{structName: sd.Name}, nil
	}

	return mappedType{}, &UnsupportedTypeError{Token: token}
}

// dataTypeExpr returns the layout descriptor expression for the mapped
// type: a fixed DataType variant for primitives, or a recursive
// That::data_type(version) call for composites.
func (m mappedType) dataTypeExpr() rust.Expr {
	if m.composite() {
		return rust.Call{
			Fn:   rust.Path{Segments: []string{m.structName, "data_type"}},
			Args: []rust.Expr{rust.Ident{Name: "version"}},
		}
	}

	return rust.Path{Segments: []string{"DataType", m.kind.DataTypeVariant()}}
}
