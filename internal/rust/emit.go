package rust

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// EmitError reports an AST node shape the emitter does not recognize.
// It is a programmer error in the generator: the emitter matches node
// kinds exhaustively and a new kind must be given an emission rule.
type EmitError struct {
	Node Node
}

// Error implements the error interface. The offending node is dumped in
// full so the broken generator path is identifiable from the message.
func (e *EmitError) Error() string {
	return fmt.Sprintf("emit: unsupported %T node: %s", e.Node, spew.Sdump(e.Node))
}

// Emitter serializes AST trees into Rust source text. Emission is
// deterministic from the tree alone; the only state is indentation.
type Emitter struct {
	// Indent is the indentation unit, one per nesting depth.
	Indent string
}

// NewEmitter returns an emitter with tab indentation.
func NewEmitter() *Emitter {
	return &Emitter{Indent: "\t"}
}

// EmitDecl serializes a top-level declaration.
func (e *Emitter) EmitDecl(d Decl) (string, error) {
	var sb strings.Builder

	err := e.writeDecl(&sb, d)
	if err != nil {
		return "", err
	}

	return sb.String(), nil
}

// EmitStmt serializes a single statement at depth zero.
func (e *Emitter) EmitStmt(s Stmt) (string, error) {
	var sb strings.Builder

	err := e.writeStmt(&sb, s, 0)
	if err != nil {
		return "", err
	}

	return sb.String(), nil
}

// EmitExpr serializes a single expression at depth zero.
func (e *Emitter) EmitExpr(x Expr) (string, error) {
	var sb strings.Builder

	err := e.writeExpr(&sb, x, 0)
	if err != nil {
		return "", err
	}

	return sb.String(), nil
}

func (e *Emitter) indent(sb *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		sb.WriteString(e.Indent)
	}
}

func (e *Emitter) writeDecl(sb *strings.Builder, d Decl) error {
	switch n := d.(type) {
	case Use:
		sb.WriteString("use ")
		sb.WriteString(n.Path)

		if len(n.Items) > 0 {
			sb.WriteString("::{")
			sb.WriteString(strings.Join(n.Items, ", "))
			sb.WriteString("}")
		}

		sb.WriteString(";\n")

		return nil

	case Impl:
		sb.WriteString("impl ")
		sb.WriteString(n.Type)
		sb.WriteString(" {\n")

		for i, fn := range n.Fns {
			if i > 0 {
				sb.WriteString("\n")
			}

			err := e.writeFn(sb, fn, 1)
			if err != nil {
				return err
			}
		}

		sb.WriteString("}\n")

		return nil

	default:
		return &EmitError{Node: d}
	}
}

func (e *Emitter) writeFn(sb *strings.Builder, fn FnDef, depth int) error {
	e.indent(sb, depth)

	if fn.Pub {
		sb.WriteString("pub ")
	}

	sb.WriteString("fn ")
	sb.WriteString(fn.Name)
	sb.WriteString("(")

	if fn.SelfByValue {
		sb.WriteString("self")

		if len(fn.Params) > 0 {
			sb.WriteString(", ")
		}
	}

	for i, p := range fn.Params {
		if i > 0 {
			sb.WriteString(", ")
		}

		sb.WriteString(p.Name)
		sb.WriteString(": ")
		sb.WriteString(p.Type)
	}

	sb.WriteString(")")

	if fn.Ret != "" {
		sb.WriteString(" -> ")
		sb.WriteString(fn.Ret)
	}

	sb.WriteString(" {\n")

	err := e.writeBlockBody(sb, fn.Body, depth+1)
	if err != nil {
		return err
	}

	e.indent(sb, depth)
	sb.WriteString("}\n")

	return nil
}

// writeBlockBody emits a block's statements and optional tail expression,
// one per line at the given depth.
func (e *Emitter) writeBlockBody(sb *strings.Builder, b *Block, depth int) error {
	if b == nil {
		return nil
	}

	for _, s := range b.Stmts {
		err := e.writeStmt(sb, s, depth)
		if err != nil {
			return err
		}
	}

	if b.Tail != nil {
		e.indent(sb, depth)

		err := e.writeExpr(sb, b.Tail, depth)
		if err != nil {
			return err
		}

		sb.WriteString("\n")
	}

	return nil
}

func (e *Emitter) writeStmt(sb *strings.Builder, s Stmt, depth int) error {
	switch n := s.(type) {
	case Let:
		e.indent(sb, depth)
		sb.WriteString("let ")

		if n.Mut {
			sb.WriteString("mut ")
		}

		sb.WriteString(n.Name)

		if n.Type != "" {
			sb.WriteString(": ")
			sb.WriteString(n.Type)
		}

		sb.WriteString(" = ")

		err := e.writeExpr(sb, n.Value, depth)
		if err != nil {
			return err
		}

		sb.WriteString(";\n")

		return nil

	case ExprStmt:
		e.indent(sb, depth)

		err := e.writeExpr(sb, n.X, depth)
		if err != nil {
			return err
		}

		sb.WriteString(";\n")

		return nil

	case If:
		e.indent(sb, depth)

		err := e.writeIf(sb, n, depth)
		if err != nil {
			return err
		}

		sb.WriteString("\n")

		return nil

	default:
		return &EmitError{Node: s}
	}
}

// writeIf emits a conditional without leading indentation or trailing
// newline, so it serves both statement and expression positions.
func (e *Emitter) writeIf(sb *strings.Builder, n If, depth int) error {
	sb.WriteString("if ")

	err := e.writeExpr(sb, n.Cond, depth)
	if err != nil {
		return err
	}

	sb.WriteString(" {\n")

	err = e.writeBlockBody(sb, n.Then, depth+1)
	if err != nil {
		return err
	}

	e.indent(sb, depth)
	sb.WriteString("}")

	if n.Else != nil {
		sb.WriteString(" else {\n")

		err = e.writeBlockBody(sb, n.Else, depth+1)
		if err != nil {
			return err
		}

		e.indent(sb, depth)
		sb.WriteString("}")
	}

	return nil
}

func (e *Emitter) writeExpr(sb *strings.Builder, x Expr, depth int) error {
	switch n := x.(type) {
	case IntLit:
		sb.WriteString(strconv.FormatInt(n.Value, 10))
		return nil

	case FloatLit:
		sb.WriteString(formatFloat(n.Value))
		return nil

	case StrLit:
		sb.WriteString(strconv.Quote(n.Value))
		return nil

	case BoolLit:
		sb.WriteString(strconv.FormatBool(n.Value))
		return nil

	case Ident:
		sb.WriteString(n.Name)
		return nil

	case Path:
		sb.WriteString(strings.Join(n.Segments, "::"))
		return nil

	case FieldAccess:
		err := e.writeExpr(sb, n.X, depth)
		if err != nil {
			return err
		}

		sb.WriteString(".")
		sb.WriteString(n.Name)

		return nil

	case Index:
		err := e.writeExpr(sb, n.X, depth)
		if err != nil {
			return err
		}

		sb.WriteString("[")

		err = e.writeExpr(sb, n.Idx, depth)
		if err != nil {
			return err
		}

		sb.WriteString("]")

		return nil

	case MethodCall:
		err := e.writeExpr(sb, n.Recv, depth)
		if err != nil {
			return err
		}

		sb.WriteString(".")
		sb.WriteString(n.Method)

		if len(n.TypeArgs) > 0 {
			sb.WriteString("::<")
			sb.WriteString(strings.Join(n.TypeArgs, ", "))
			sb.WriteString(">")
		}

		return e.writeArgs(sb, n.Args, depth)

	case Call:
		err := e.writeExpr(sb, n.Fn, depth)
		if err != nil {
			return err
		}

		return e.writeArgs(sb, n.Args, depth)

	case Closure:
		sb.WriteString("|")
		sb.WriteString(strings.Join(n.Params, ", "))
		sb.WriteString("| ")

		return e.writeExpr(sb, n.Body, depth)

	case VecLit:
		sb.WriteString("vec![")

		for i, el := range n.Elems {
			if i > 0 {
				sb.WriteString(", ")
			}

			err := e.writeExpr(sb, el, depth)
			if err != nil {
				return err
			}
		}

		sb.WriteString("]")

		return nil

	case StructLit:
		sb.WriteString(n.Type)
		sb.WriteString(" {\n")

		for _, f := range n.Fields {
			e.indent(sb, depth+1)
			sb.WriteString(f.Name)
			sb.WriteString(": ")

			err := e.writeExpr(sb, f.Value, depth+1)
			if err != nil {
				return err
			}

			sb.WriteString(",\n")
		}

		e.indent(sb, depth)
		sb.WriteString("}")

		return nil

	case If:
		return e.writeIf(sb, n, depth)

	default:
		return &EmitError{Node: x}
	}
}

func (e *Emitter) writeArgs(sb *strings.Builder, args []Expr, depth int) error {
	sb.WriteString("(")

	for i, a := range args {
		if i > 0 {
			sb.WriteString(", ")
		}

		err := e.writeExpr(sb, a, depth)
		if err != nil {
			return err
		}
	}

	sb.WriteString(")")

	return nil
}

// formatFloat renders a float as a Rust literal, keeping a fractional part
// so the literal stays a float (2 -> "2.0").
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}

	return s
}
