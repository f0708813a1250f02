package gen

import (
	"fmt"
	"sort"

	"arrowgen/internal/rust"
	"arrowgen/internal/schema"
)

// Config holds configuration for code generation.
type Config struct {
	// UsePath is the module path the generated code imports the columnar
	// runtime types from.
	UsePath string
}

// DefaultConfig returns the default generator configuration.
func DefaultConfig() Config {
	return Config{
		UsePath: "crate::arrow",
	}
}

// Generator produces one declaration group per struct in a schema.
// Generation is a pure transform: no state survives a call.
type Generator struct {
	config Config
	schema *schema.Schema
}

// NewGenerator creates a generator for the given schema.
func NewGenerator(s *schema.Schema, config Config) *Generator {
	return &Generator{
		config: config,
		schema: s,
	}
}

// StructDecls is the declaration group generated for one struct: a
// module-use statement followed by the impl block carrying the three
// conversion functions.
type StructDecls struct {
	Name string
	Use  rust.Use
	Impl rust.Impl
}

// Generate produces declaration groups for every struct, in declaration
// order. Output ordering is an externally observable contract.
func (g *Generator) Generate() ([]StructDecls, error) {
	out := make([]StructDecls, 0, len(g.schema.Structs))

	for _, sd := range g.schema.Structs {
		group, err := g.GenerateStruct(sd)
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", sd.Name, err)
		}

		out = append(out, group)
	}

	return out, nil
}

// GenerateStruct builds the declaration group for one struct.
func (g *Generator) GenerateStruct(sd schema.StructDef) (StructDecls, error) {
	dataTypeFn, err := g.DataTypeFn(sd)
	if err != nil {
		return StructDecls{}, err
	}

	intoFn, err := g.IntoStructArrayFn(sd)
	if err != nil {
		return StructDecls{}, err
	}

	fromFn, err := g.FromStructArrayFn(sd)
	if err != nil {
		return StructDecls{}, err
	}

	return StructDecls{
		Name: sd.Name,
		Use:  rust.Use{Path: g.config.UsePath, Items: g.useItems(sd)},
		Impl: rust.Impl{Type: sd.Name, Fns: []rust.FnDef{dataTypeFn, intoFn, fromFn}},
	}, nil
}

// useItems collects the runtime types the struct's generated code touches:
// the fixed set plus the concrete array types its primitive fields
// downcast to, sorted for deterministic output.
func (g *Generator) useItems(sd schema.StructDef) []string {
	seen := map[string]bool{
		"Array":       true,
		"DataType":    true,
		"Field":       true,
		"NullArray":   true,
		"StructArray": true,
		"Version":     true,
	}

	for _, f := range sd.Fields {
		if k, ok := kindByToken[f.Type]; ok {
			seen[k.ArrayType()] = true
		}
	}

	items := make([]string, 0, len(seen))
	for item := range seen {
		items = append(items, item)
	}

	sort.Strings(items)

	return items
}

// DataTypeFn generates the layout descriptor function:
//
//	pub fn data_type(version: Version) -> DataType
//
// Descriptors accumulate in declaration order under shared version guards.
// The trailing emptiness check backfills the synthetic "_dummy" descriptor:
// the columnar format forbids a zero-field record.
func (g *Generator) DataTypeFn(sd schema.StructDef) (rust.FnDef, error) {
	stmts := []rust.Stmt{
		rust.Let{Name: "fields", Mut: true, Value: rust.VecLit{}},
	}

	grouped, err := GroupByVersion(sd.Fields, func(f schema.FieldDef) (rust.Stmt, error) {
		mt, err := g.mapType(f.Type)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f.Ident(), err)
		}

		return pushStmt("fields", fieldNew(f.Ident(), mt.dataTypeExpr(), false)), nil
	})
	if err != nil {
		return rust.FnDef{}, err
	}

	stmts = append(stmts, grouped...)

	stmts = append(stmts, rust.If{
		Cond: rust.MethodCall{Recv: rust.Ident{Name: "fields"}, Method: "is_empty"},
		Then: &rust.Block{Stmts: []rust.Stmt{
			pushStmt("fields", fieldNew("_dummy", rust.Path{Segments: []string{"DataType", "Null"}}, true)),
		}},
	})

	return rust.FnDef{
		Name:   "data_type",
		Pub:    true,
		Params: []rust.Param{{Name: "version", Type: "Version"}},
		Ret:    "DataType",
		Body: &rust.Block{
			Stmts: stmts,
			Tail: rust.Call{
				Fn:   rust.Path{Segments: []string{"DataType", "Struct"}},
				Args: []rust.Expr{rust.Ident{Name: "fields"}},
			},
		},
	}, nil
}

// IntoStructArrayFn generates the serializer:
//
//	pub fn into_struct_array(self, version: Version) -> StructArray
//
// Values accumulate in declaration order under shared version guards.
// Version-gated fields unwrap their presence representation first — the
// enclosing guard already confirmed presence. If no value was pushed, one
// null array stands in, sized from the validity marker (named structs) or
// zero (unnamed structs): the columnar format disallows zero-field arrays.
func (g *Generator) IntoStructArrayFn(sd schema.StructDef) (rust.FnDef, error) {
	named := sd.Named()

	stmts := []rust.Stmt{
		rust.Let{Name: "values", Mut: true, Type: "Vec<Box<dyn Array>>", Value: rust.VecLit{}},
	}

	grouped, err := GroupByVersion(sd.Fields, func(f schema.FieldDef) (rust.Stmt, error) {
		mt, err := g.mapType(f.Type)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f.Ident(), err)
		}

		var col rust.Expr = rust.FieldAccess{X: rust.Ident{Name: "self"}, Name: f.Ident()}

		if f.MinVersion != nil {
			col = rust.MethodCall{Recv: col, Method: "unwrap"}
		}

		if mt.composite() {
			col = rust.MethodCall{
				Recv:   col,
				Method: "into_struct_array",
				Args:   []rust.Expr{rust.Ident{Name: "version"}},
			}
		}

		return pushStmt("values", boxNew(col)), nil
	})
	if err != nil {
		return rust.FnDef{}, err
	}

	stmts = append(stmts, grouped...)

	stmts = append(stmts, rust.If{
		Cond: rust.MethodCall{Recv: rust.Ident{Name: "values"}, Method: "is_empty"},
		Then: &rust.Block{Stmts: []rust.Stmt{
			pushStmt("values", boxNew(rust.Call{
				Fn:   rust.Path{Segments: []string{"NullArray", "new"}},
				Args: []rust.Expr{dummyLen(named)},
			})),
		}},
	})

	validity := rust.Expr(rust.Ident{Name: "None"})
	if named {
		validity = rust.FieldAccess{X: rust.Ident{Name: "self"}, Name: "validity"}
	}

	return rust.FnDef{
		Name:        "into_struct_array",
		Pub:         true,
		SelfByValue: true,
		Params:      []rust.Param{{Name: "version", Type: "Version"}},
		Ret:         "StructArray",
		Body: &rust.Block{
			Stmts: stmts,
			Tail: rust.Call{
				Fn: rust.Path{Segments: []string{"StructArray", "new"}},
				Args: []rust.Expr{
					rust.Call{
						Fn:   rust.Path{Segments: []string{"Self", "data_type"}},
						Args: []rust.Expr{rust.Ident{Name: "version"}},
					},
					rust.Ident{Name: "values"},
					validity,
				},
			},
		},
	}, nil
}

// FromStructArrayFn generates the deserializer:
//
//	pub fn from_struct_array(array: StructArray, version: Version) -> Self
//
// Each field reads values[index] at its absolute declared position with an
// explicit per-field version check instead of the grouping algorithm: when
// every field is gated out, serialization still inserts the dummy at index
// 0, and grouped emission would misalign positional indexing against it.
func (g *Generator) FromStructArrayFn(sd schema.StructDef) (rust.FnDef, error) {
	named := sd.Named()

	stmts := []rust.Stmt{
		rust.Let{Name: "values", Value: rust.MethodCall{Recv: rust.Ident{Name: "array"}, Method: "values"}},
	}

	if named {
		stmts = append(stmts, rust.Let{
			Name:  "validity",
			Value: rust.MethodCall{Recv: rust.Ident{Name: "array"}, Method: "validity"},
		})
	}

	reads := make([]rust.Expr, 0, len(sd.Fields))

	for _, f := range sd.Fields {
		mt, err := g.mapType(f.Type)
		if err != nil {
			return rust.FnDef{}, fmt.Errorf("field %s: %w", f.Ident(), err)
		}

		read := g.readValue(mt, f.Index)

		if f.MinVersion != nil {
			read = rust.If{
				Cond: versionGate(*f.MinVersion),
				Then: &rust.Block{Tail: rust.Call{Fn: rust.Ident{Name: "Some"}, Args: []rust.Expr{read}}},
				Else: &rust.Block{Tail: rust.Ident{Name: "None"}},
			}
		}

		reads = append(reads, read)
	}

	var tail rust.Expr

	if named {
		inits := make([]rust.FieldInit, 0, len(sd.Fields)+1)
		for i, f := range sd.Fields {
			inits = append(inits, rust.FieldInit{Name: f.Name, Value: reads[i]})
		}

		inits = append(inits, rust.FieldInit{Name: "validity", Value: rust.Ident{Name: "validity"}})
		tail = rust.StructLit{Type: sd.Name, Fields: inits}
	} else {
		tail = rust.Call{Fn: rust.Ident{Name: sd.Name}, Args: reads}
	}

	return rust.FnDef{
		Name: "from_struct_array",
		Pub:  true,
		Params: []rust.Param{
			{Name: "array", Type: "StructArray"},
			{Name: "version", Type: "Version"},
		},
		Ret: "Self",
		Body: &rust.Block{
			Stmts: stmts,
			Tail:  tail,
		},
	}, nil
}

// readValue builds the expression reading one field from values[index]:
// primitives downcast to their concrete array type and clone, composites
// downcast to StructArray and recurse through the nested type's
// deserializer.
func (g *Generator) readValue(mt mappedType, index int) rust.Expr {
	target := "StructArray"
	if !mt.composite() {
		target = mt.kind.ArrayType()
	}

	cloned := rust.MethodCall{
		Recv: rust.MethodCall{
			Recv: rust.MethodCall{
				Recv: rust.MethodCall{
					Recv:   rust.Index{X: rust.Ident{Name: "values"}, Idx: rust.IntLit{Value: int64(index)}},
					Method: "as_any",
				},
				Method:   "downcast_ref",
				TypeArgs: []string{target},
			},
			Method: "unwrap",
		},
		Method: "clone",
	}

	if mt.composite() {
		return rust.Call{
			Fn:   rust.Path{Segments: []string{mt.structName, "from_struct_array"}},
			Args: []rust.Expr{cloned, rust.Ident{Name: "version"}},
		}
	}

	return cloned
}

// dummyLen is the length of the stand-in null array: the row count read
// from the validity marker for named structs (0 when absent), 0 for
// unnamed structs.
func dummyLen(named bool) rust.Expr {
	if !named {
		return rust.IntLit{Value: 0}
	}

	return rust.MethodCall{
		Recv: rust.MethodCall{
			Recv: rust.MethodCall{
				Recv:   rust.FieldAccess{X: rust.Ident{Name: "self"}, Name: "validity"},
				Method: "as_ref",
			},
			Method: "map",
			Args: []rust.Expr{rust.Closure{
				Params: []string{"v"},
				Body:   rust.MethodCall{Recv: rust.Ident{Name: "v"}, Method: "len"},
			}},
		},
		Method: "unwrap_or",
		Args:   []rust.Expr{rust.IntLit{Value: 0}},
	}
}

// pushStmt builds `list.push(arg);`.
func pushStmt(list string, arg rust.Expr) rust.Stmt {
	return rust.ExprStmt{X: rust.MethodCall{
		Recv:   rust.Ident{Name: list},
		Method: "push",
		Args:   []rust.Expr{arg},
	}}
}

// boxNew builds `Box::new(x)`.
func boxNew(x rust.Expr) rust.Expr {
	return rust.Call{
		Fn:   rust.Path{Segments: []string{"Box", "new"}},
		Args: []rust.Expr{x},
	}
}

// fieldNew builds `Field::new(name, dataType, nullable)`.
func fieldNew(name string, dataType rust.Expr, nullable bool) rust.Expr {
	return rust.Call{
		Fn:   rust.Path{Segments: []string{"Field", "new"}},
		Args: []rust.Expr{rust.StrLit{Value: name}, dataType, rust.BoolLit{Value: nullable}},
	}
}
