package scval

import "fmt"

// Kind identifies the semantic kind of a Value or of a TypeDescriptor.
// The numeric values are part of the wire format: they are used as tags when a Val (any scalar) is encoded.
type Kind uint8

const (
	KindVoid Kind = iota
	KindBool
	KindU32
	KindI32
	KindU64
	KindI64
	KindU128
	KindI128
	KindU256
	KindI256
	KindTimepoint
	KindDuration
	KindSymbol
	KindString
	KindBytes
	KindFixedBytes
	KindAddress
	KindOption
	KindTuple
	KindList
	KindMap
	KindStruct
	KindEnum
	KindUnion
	KindAny
)

var kindNames = map[Kind]string{
	KindVoid:       "void",
	KindBool:       "bool",
	KindU32:        "u32",
	KindI32:        "i32",
	KindU64:        "u64",
	KindI64:        "i64",
	KindU128:       "u128",
	KindI128:       "i128",
	KindU256:       "u256",
	KindI256:       "i256",
	KindTimepoint:  "Timepoint",
	KindDuration:   "Duration",
	KindSymbol:     "Symbol",
	KindString:     "String",
	KindBytes:      "Bytes",
	KindFixedBytes: "BytesN",
	KindAddress:    "Address",
	KindOption:     "Option",
	KindTuple:      "Tuple",
	KindList:       "Vec",
	KindMap:        "Map",
	KindStruct:     "Struct",
	KindEnum:       "Enum",
	KindUnion:      "Union",
	KindAny:        "Val",
}

// String returns the type-expression name of the kind
func (k Kind) String() string {
	name, ok := kindNames[k]
	if !ok {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}

	return name
}

// IsScalar returns true for the kinds that a Val may hold: kinds whose shape is fully described by the kind itself
func (k Kind) IsScalar() bool {
	switch k {
	case KindVoid, KindBool,
		KindU32, KindI32, KindU64, KindI64,
		KindU128, KindI128, KindU256, KindI256,
		KindTimepoint, KindDuration,
		KindSymbol, KindString, KindBytes, KindAddress:
		return true
	default:
		return false
	}
}

// KindFromString returns the scalar kind having the provided name
func KindFromString(name string) (Kind, bool) {
	for kind, kindName := range kindNames {
		if kindName == name && kind.IsScalar() {
			return kind, true
		}
	}

	return 0, false
}
