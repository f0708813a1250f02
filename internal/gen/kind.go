package gen

import "arrowgen/internal/schema"

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind enumerates the primitive type catalogue.
type Kind int

const (
	_ Kind = iota // skip zero value, use it as a default (invalid) value for Kind

	KindBool
	KindI8
	KindU8
	KindI16
	KindU16
	KindI32
	KindU32
	KindI64
	KindU64
	KindF32
	KindF64
	KindNull // the "no data" sentinel
)

// kindByToken is the fixed catalogue mapping domain type tokens to
// primitive kinds. Tokens absent from this map and from the struct
// catalogue are a schema error.
var kindByToken = map[string]Kind{
	"bool":          KindBool,
	"i8":            KindI8,
	"u8":            KindU8,
	"i16":           KindI16,
	"u16":           KindU16,
	"i32":           KindI32,
	"u32":           KindU32,
	"i64":           KindI64,
	"u64":           KindU64,
	"f32":           KindF32,
	"f64":           KindF64,
	schema.TypeNull: KindNull,
}

// DataTypeVariant returns the DataType enum variant name for the kind.
func (k Kind) DataTypeVariant() string {
	switch k {
	case KindBool:
		return "Boolean"
	case KindI8:
		return "Int8"
	case KindU8:
		return "UInt8"
	case KindI16:
		return "Int16"
	case KindU16:
		return "UInt16"
	case KindI32:
		return "Int32"
	case KindU32:
		return "UInt32"
	case KindI64:
		return "Int64"
	case KindU64:
		return "UInt64"
	case KindF32:
		return "Float32"
	case KindF64:
		return "Float64"
	case KindNull:
		return "Null"
	default:
		return ""
	}
}

// ArrayType returns the concrete array type holding a column of this kind;
// deserialization downcasts to it.
func (k Kind) ArrayType() string {
	switch k {
	case KindBool:
		return "BooleanArray"
	case KindNull:
		return "NullArray"
	case KindI8, KindU8, KindI16, KindU16, KindI32, KindU32, KindI64, KindU64, KindF32, KindF64:
		return k.DataTypeVariant() + "Array"
	default:
		return ""
	}
}
