package gen

import (
	"fmt"

	"arrowgen/internal/rust"
	"arrowgen/internal/schema"
)

// GroupByVersion emits one statement per field, in declaration order, as a
// single ordered statement block:
//
//   - fields with no minVersion are emitted unconditionally
//   - consecutive fields sharing a minVersion share exactly one
//     `if version.gte(M, m)` guard
//   - strictly increasing minVersions nest: a higher version's block sits
//     inside the enclosing lower-version guard, so a version check never
//     repeats at one nesting depth
//
// minVersions must be non-decreasing in declaration order; anything else
// is invalid input and fails fast.
func GroupByVersion(fields []schema.FieldDef, emit func(schema.FieldDef) (rust.Stmt, error)) ([]rust.Stmt, error) {
	return groupFrom(fields, nil, emit)
}

// groupFrom folds fields into statements, assuming the guard for `active`
// (nil for the unconditional top level) already holds.
func groupFrom(fields []schema.FieldDef, active *schema.Version, emit func(schema.FieldDef) (rust.Stmt, error)) ([]rust.Stmt, error) {
	var stmts []rust.Stmt

	for i := 0; i < len(fields); {
		f := fields[i]

		switch {
		case sameGate(f.MinVersion, active):
			s, err := emit(f)
			if err != nil {
				return nil, err
			}

			stmts = append(stmts, s)
			i++

		case f.MinVersion == nil || (active != nil && f.MinVersion.Cmp(*active) < 0):
			return nil, &schema.Error{
				Code:    "non-monotonic-versions",
				Message: fmt.Sprintf("field %s breaks non-decreasing minVersion order", f.Ident()),
				Field:   f.Ident(),
			}

		default:
			// Every remaining field is gated at f.MinVersion or above;
			// one nested guard covers them all.
			inner, err := groupFrom(fields[i:], f.MinVersion, emit)
			if err != nil {
				return nil, err
			}

			stmts = append(stmts, rust.If{
				Cond: versionGate(*f.MinVersion),
				Then: &rust.Block{Stmts: inner},
			})

			return stmts, nil
		}
	}

	return stmts, nil
}

// sameGate returns true if a field gated at v belongs in the block whose
// active guard is `active`.
func sameGate(v, active *schema.Version) bool {
	if v == nil || active == nil {
		return v == nil && active == nil
	}

	return v.Cmp(*active) == 0
}

// versionGate builds the guard condition `version.gte(M, m)`.
func versionGate(v schema.Version) rust.Expr {
	return rust.MethodCall{
		Recv:   rust.Ident{Name: "version"},
		Method: "gte",
		Args: []rust.Expr{
			rust.IntLit{Value: int64(v.Major)},
			rust.IntLit{Value: int64(v.Minor)},
		},
	}
}
