package rust

// Node is implemented by every AST node.
type Node interface {
	node()
}

// Expr is the sealed interface for expression nodes.
type Expr interface {
	Node
	expr()
}

// Stmt is the sealed interface for statement nodes.
type Stmt interface {
	Node
	stmt()
}

// Decl is the sealed interface for top-level declaration nodes.
type Decl interface {
	Node
	decl()
}

// ---------------------------------------------------------------------------
// Expressions
// ---------------------------------------------------------------------------

// IntLit is an integer literal.
type IntLit struct {
	Value int64
}

func (IntLit) node() {}
func (IntLit) expr() {}

// FloatLit is a floating-point literal.
type FloatLit struct {
	Value float64
}

func (FloatLit) node() {}
func (FloatLit) expr() {}

// StrLit is a double-quoted string literal.
type StrLit struct {
	Value string
}

func (StrLit) node() {}
func (StrLit) expr() {}

// BoolLit is a boolean literal.
type BoolLit struct {
	Value bool
}

func (BoolLit) node() {}
func (BoolLit) expr() {}

// Ident is a bare identifier, e.g. "self" or "None".
type Ident struct {
	Name string
}

func (Ident) node() {}
func (Ident) expr() {}

// Path is a "::"-joined path, e.g. DataType::Float32 or Self::data_type.
type Path struct {
	Segments []string
}

func (Path) node() {}
func (Path) expr() {}

// FieldAccess is a field projection, e.g. self.x or self.0 for positional
// fields.
type FieldAccess struct {
	X    Expr
	Name string
}

func (FieldAccess) node() {}
func (FieldAccess) expr() {}

// Index is an index access, e.g. values[2].
type Index struct {
	X   Expr
	Idx Expr
}

func (Index) node() {}
func (Index) expr() {}

// MethodCall is a method invocation on a receiver. TypeArgs, when present,
// are emitted in turbofish form, e.g. downcast_ref::<Float32Array>().
type MethodCall struct {
	Recv     Expr
	Method   string
	TypeArgs []string
	Args     []Expr
}

func (MethodCall) node() {}
func (MethodCall) expr() {}

// Call is a free-function or constructor call, e.g. Field::new(...) or
// Some(...).
type Call struct {
	Fn   Expr
	Args []Expr
}

func (Call) node() {}
func (Call) expr() {}

// Closure is a closure literal with a single-expression body, e.g.
// |v| v.len().
type Closure struct {
	Params []string
	Body   Expr
}

func (Closure) node() {}
func (Closure) expr() {}

// VecLit is a vec![...] literal.
type VecLit struct {
	Elems []Expr
}

func (VecLit) node() {}
func (VecLit) expr() {}

// FieldInit is one name: value entry of a struct literal.
type FieldInit struct {
	Name  string
	Value Expr
}

// StructLit is a struct literal with named fields, emitted one field per
// line.
type StructLit struct {
	Type   string
	Fields []FieldInit
}

func (StructLit) node() {}
func (StructLit) expr() {}

// If is a conditional. It is both a statement and an expression: as an
// expression both branches are value-producing blocks.
type If struct {
	Cond Expr
	Then *Block
	Else *Block
}

func (If) node() {}
func (If) expr() {}
func (If) stmt() {}

// Block is an ordered statement list with an optional tail expression
// (the block's value).
type Block struct {
	Stmts []Stmt
	Tail  Expr
}

func (Block) node() {}

// ---------------------------------------------------------------------------
// Statements
// ---------------------------------------------------------------------------

// Let is a let binding, optionally mutable and optionally type-annotated.
type Let struct {
	Name  string
	Mut   bool
	Type  string
	Value Expr
}

func (Let) node() {}
func (Let) stmt() {}

// ExprStmt is an expression in statement position, emitted with a
// terminating semicolon.
type ExprStmt struct {
	X Expr
}

func (ExprStmt) node() {}
func (ExprStmt) stmt() {}

// ---------------------------------------------------------------------------
// Declarations
// ---------------------------------------------------------------------------

// Param is one function parameter.
type Param struct {
	Name string
	Type string
}

// FnDef is a function definition inside an impl block. SelfByValue adds a
// consuming `self` receiver parameter.
type FnDef struct {
	Name        string
	Pub         bool
	SelfByValue bool
	Params      []Param
	Ret         string
	Body        *Block
}

func (FnDef) node() {}

// Use is a module-use declaration, e.g.
// use crate::arrow::{Array, DataType};
type Use struct {
	Path  string
	Items []string
}

func (Use) node() {}
func (Use) decl() {}

// Impl is an implementation block holding function definitions for a type.
type Impl struct {
	Type string
	Fns  []FnDef
}

func (Impl) node() {}
func (Impl) decl() {}
