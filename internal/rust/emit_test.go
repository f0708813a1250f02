package rust

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ident(name string) Ident {
	return Ident{Name: name}
}

func path(segments ...string) Path {
	return Path{Segments: segments}
}

func TestEmitExpr_Literals(t *testing.T) {
	e := NewEmitter()

	tests := []struct {
		expr Expr
		want string
	}{
		{IntLit{Value: 0}, "0"},
		{IntLit{Value: 42}, "42"},
		{FloatLit{Value: 2}, "2.0"},
		{FloatLit{Value: 1.25}, "1.25"},
		{StrLit{Value: "_dummy"}, `"_dummy"`},
		{BoolLit{Value: true}, "true"},
		{BoolLit{Value: false}, "false"},
		{ident("self"), "self"},
		{path("DataType", "Float32"), "DataType::Float32"},
	}

	for _, tt := range tests {
		got, err := e.EmitExpr(tt.expr)

		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestEmitExpr_Access(t *testing.T) {
	e := NewEmitter()

	got, err := e.EmitExpr(FieldAccess{X: ident("self"), Name: "x"})
	require.NoError(t, err)
	assert.Equal(t, "self.x", got)

	// Positional fields project by index.
	got, err = e.EmitExpr(FieldAccess{X: ident("self"), Name: "0"})
	require.NoError(t, err)
	assert.Equal(t, "self.0", got)

	got, err = e.EmitExpr(Index{X: ident("values"), Idx: IntLit{Value: 2}})
	require.NoError(t, err)
	assert.Equal(t, "values[2]", got)
}

func TestEmitExpr_Calls(t *testing.T) {
	e := NewEmitter()

	got, err := e.EmitExpr(Call{
		Fn:   path("Field", "new"),
		Args: []Expr{StrLit{Value: "x"}, path("DataType", "Float32"), BoolLit{Value: false}},
	})
	require.NoError(t, err)
	assert.Equal(t, `Field::new("x", DataType::Float32, false)`, got)

	// Turbofish downcast chain.
	got, err = e.EmitExpr(MethodCall{
		Recv: MethodCall{
			Recv: MethodCall{
				Recv: MethodCall{
					Recv:   Index{X: ident("values"), Idx: IntLit{Value: 0}},
					Method: "as_any",
				},
				Method:   "downcast_ref",
				TypeArgs: []string{"Float32Array"},
			},
			Method: "unwrap",
		},
		Method: "clone",
	})
	require.NoError(t, err)
	assert.Equal(t, "values[0].as_any().downcast_ref::<Float32Array>().unwrap().clone()", got)
}

func TestEmitExpr_Closure(t *testing.T) {
	e := NewEmitter()

	got, err := e.EmitExpr(MethodCall{
		Recv: MethodCall{
			Recv: MethodCall{
				Recv:   FieldAccess{X: ident("self"), Name: "validity"},
				Method: "as_ref",
			},
			Method: "map",
			Args: []Expr{Closure{
				Params: []string{"v"},
				Body:   MethodCall{Recv: ident("v"), Method: "len"},
			}},
		},
		Method: "unwrap_or",
		Args:   []Expr{IntLit{Value: 0}},
	})

	require.NoError(t, err)
	assert.Equal(t, "self.validity.as_ref().map(|v| v.len()).unwrap_or(0)", got)
}

func TestEmitExpr_VecLit(t *testing.T) {
	e := NewEmitter()

	got, err := e.EmitExpr(VecLit{})
	require.NoError(t, err)
	assert.Equal(t, "vec![]", got)

	got, err = e.EmitExpr(VecLit{Elems: []Expr{IntLit{Value: 1}, IntLit{Value: 2}}})
	require.NoError(t, err)
	assert.Equal(t, "vec![1, 2]", got)
}

func TestEmitExpr_StructLit(t *testing.T) {
	e := NewEmitter()

	got, err := e.EmitExpr(StructLit{
		Type: "Position",
		Fields: []FieldInit{
			{Name: "x", Value: ident("x")},
			{Name: "y", Value: ident("y")},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "Position {\n\tx: x,\n\ty: y,\n}", got)
}

func TestEmitExpr_IfElse(t *testing.T) {
	e := NewEmitter()

	got, err := e.EmitExpr(If{
		Cond: MethodCall{Recv: ident("version"), Method: "gte", Args: []Expr{IntLit{Value: 3}, IntLit{Value: 0}}},
		Then: &Block{Tail: Call{Fn: ident("Some"), Args: []Expr{ident("value")}}},
		Else: &Block{Tail: ident("None")},
	})

	require.NoError(t, err)
	assert.Equal(t, "if version.gte(3, 0) {\n\tSome(value)\n} else {\n\tNone\n}", got)
}

func TestEmitStmt(t *testing.T) {
	e := NewEmitter()

	got, err := e.EmitStmt(Let{Name: "fields", Mut: true, Value: VecLit{}})
	require.NoError(t, err)
	assert.Equal(t, "let mut fields = vec![];\n", got)

	got, err = e.EmitStmt(Let{Name: "values", Mut: true, Type: "Vec<Box<dyn Array>>", Value: VecLit{}})
	require.NoError(t, err)
	assert.Equal(t, "let mut values: Vec<Box<dyn Array>> = vec![];\n", got)

	got, err = e.EmitStmt(ExprStmt{X: MethodCall{Recv: ident("values"), Method: "push", Args: []Expr{ident("x")}}})
	require.NoError(t, err)
	assert.Equal(t, "values.push(x);\n", got)

	got, err = e.EmitStmt(If{
		Cond: MethodCall{Recv: ident("fields"), Method: "is_empty"},
		Then: &Block{Stmts: []Stmt{ExprStmt{X: Call{Fn: ident("push_dummy")}}}},
	})
	require.NoError(t, err)
	assert.Equal(t, "if fields.is_empty() {\n\tpush_dummy();\n}\n", got)
}

func TestEmitDecl_Use(t *testing.T) {
	e := NewEmitter()

	got, err := e.EmitDecl(Use{Path: "crate::arrow", Items: []string{"Array", "DataType"}})
	require.NoError(t, err)
	assert.Equal(t, "use crate::arrow::{Array, DataType};\n", got)

	got, err = e.EmitDecl(Use{Path: "crate::arrow"})
	require.NoError(t, err)
	assert.Equal(t, "use crate::arrow;\n", got)
}

func TestEmitDecl_Impl(t *testing.T) {
	e := NewEmitter()

	impl := Impl{
		Type: "Position",
		Fns: []FnDef{
			{
				Name:   "data_type",
				Pub:    true,
				Params: []Param{{Name: "version", Type: "Version"}},
				Ret:    "DataType",
				Body: &Block{
					Stmts: []Stmt{Let{Name: "fields", Mut: true, Value: VecLit{}}},
					Tail:  Call{Fn: path("DataType", "Struct"), Args: []Expr{ident("fields")}},
				},
			},
			{
				Name:        "into_struct_array",
				Pub:         true,
				SelfByValue: true,
				Params:      []Param{{Name: "version", Type: "Version"}},
				Ret:         "StructArray",
				Body:        &Block{Tail: ident("todo")},
			},
		},
	}

	got, err := e.EmitDecl(impl)
	require.NoError(t, err)

	want := "impl Position {\n" +
		"\tpub fn data_type(version: Version) -> DataType {\n" +
		"\t\tlet mut fields = vec![];\n" +
		"\t\tDataType::Struct(fields)\n" +
		"\t}\n" +
		"\n" +
		"\tpub fn into_struct_array(self, version: Version) -> StructArray {\n" +
		"\t\ttodo\n" +
		"\t}\n" +
		"}\n"
	assert.Equal(t, want, got)
}

// badExpr is an out-of-union node shape: the emitter must reject it
// instead of silently skipping it.
type badExpr struct{}

func (badExpr) node() {}
func (badExpr) expr() {}

func TestEmit_UnsupportedNode(t *testing.T) {
	e := NewEmitter()

	_, err := e.EmitExpr(badExpr{})
	require.Error(t, err)

	var emitErr *EmitError
	require.ErrorAs(t, err, &emitErr)
	assert.Contains(t, emitErr.Error(), "badExpr")
}
