package scval

import (
	"fmt"
	"strings"
)

// TypeDescriptor declares the exact shape of a value. Descriptors are built once (usually by a schema
// registry) and are never mutated afterwards, so they can be shared by concurrent encoders and decoders.
type TypeDescriptor struct {
	Kind Kind
	// Name is the declared name of a struct, enum or union
	Name string
	// Length is the number of bytes of a FixedBytes
	Length uint32
	// Elem is the inner type of an Option or the element type of a List
	Elem *TypeDescriptor
	// Key and Val are the key and value types of a Map
	Key *TypeDescriptor
	Val *TypeDescriptor
	// Items are the element types of a Tuple
	Items    []*TypeDescriptor
	Fields   []FieldDescriptor
	Cases    []EnumCase
	Variants []VariantDescriptor
}

// FieldDescriptor declares a struct field
type FieldDescriptor struct {
	Name string
	Type *TypeDescriptor
}

// EnumCase declares a unit case of a simple enum. Value is what goes on the wire.
type EnumCase struct {
	Name  string
	Value uint32
}

// VariantDescriptor declares a tagged union variant. A variant without items is a unit variant.
type VariantDescriptor struct {
	Name  string
	Items []*TypeDescriptor
}

var (
	typeVoid      = &TypeDescriptor{Kind: KindVoid}
	typeBool      = &TypeDescriptor{Kind: KindBool}
	typeU32       = &TypeDescriptor{Kind: KindU32}
	typeI32       = &TypeDescriptor{Kind: KindI32}
	typeU64       = &TypeDescriptor{Kind: KindU64}
	typeI64       = &TypeDescriptor{Kind: KindI64}
	typeU128      = &TypeDescriptor{Kind: KindU128}
	typeI128      = &TypeDescriptor{Kind: KindI128}
	typeU256      = &TypeDescriptor{Kind: KindU256}
	typeI256      = &TypeDescriptor{Kind: KindI256}
	typeTimepoint = &TypeDescriptor{Kind: KindTimepoint}
	typeDuration  = &TypeDescriptor{Kind: KindDuration}
	typeSymbol    = &TypeDescriptor{Kind: KindSymbol}
	typeString    = &TypeDescriptor{Kind: KindString}
	typeBytes     = &TypeDescriptor{Kind: KindBytes}
	typeAddress   = &TypeDescriptor{Kind: KindAddress}
	typeAny       = &TypeDescriptor{Kind: KindAny}
)

// TypeVoid returns the void type
func TypeVoid() *TypeDescriptor { return typeVoid }

// TypeBool returns the bool type
func TypeBool() *TypeDescriptor { return typeBool }

// TypeU32 returns the u32 type
func TypeU32() *TypeDescriptor { return typeU32 }

// TypeI32 returns the i32 type
func TypeI32() *TypeDescriptor { return typeI32 }

// TypeU64 returns the u64 type
func TypeU64() *TypeDescriptor { return typeU64 }

// TypeI64 returns the i64 type
func TypeI64() *TypeDescriptor { return typeI64 }

// TypeU128 returns the u128 type
func TypeU128() *TypeDescriptor { return typeU128 }

// TypeI128 returns the i128 type
func TypeI128() *TypeDescriptor { return typeI128 }

// TypeU256 returns the u256 type
func TypeU256() *TypeDescriptor { return typeU256 }

// TypeI256 returns the i256 type
func TypeI256() *TypeDescriptor { return typeI256 }

// TypeTimepoint returns the Timepoint type
func TypeTimepoint() *TypeDescriptor { return typeTimepoint }

// TypeDuration returns the Duration type
func TypeDuration() *TypeDescriptor { return typeDuration }

// TypeSymbol returns the Symbol type
func TypeSymbol() *TypeDescriptor { return typeSymbol }

// TypeString returns the String type
func TypeString() *TypeDescriptor { return typeString }

// TypeBytes returns the Bytes type
func TypeBytes() *TypeDescriptor { return typeBytes }

// TypeAddress returns the Address type
func TypeAddress() *TypeDescriptor { return typeAddress }

// TypeAny returns the Val type, which holds any scalar value together with its kind
func TypeAny() *TypeDescriptor { return typeAny }

// TypeScalar returns the descriptor of a scalar kind
func TypeScalar(kind Kind) (*TypeDescriptor, error) {
	switch kind {
	case KindVoid:
		return typeVoid, nil
	case KindBool:
		return typeBool, nil
	case KindU32:
		return typeU32, nil
	case KindI32:
		return typeI32, nil
	case KindU64:
		return typeU64, nil
	case KindI64:
		return typeI64, nil
	case KindU128:
		return typeU128, nil
	case KindI128:
		return typeI128, nil
	case KindU256:
		return typeU256, nil
	case KindI256:
		return typeI256, nil
	case KindTimepoint:
		return typeTimepoint, nil
	case KindDuration:
		return typeDuration, nil
	case KindSymbol:
		return typeSymbol, nil
	case KindString:
		return typeString, nil
	case KindBytes:
		return typeBytes, nil
	case KindAddress:
		return typeAddress, nil
	default:
		return nil, fmt.Errorf("%w: %s is not a scalar kind", ErrTypeMismatch, kind)
	}
}

// FixedBytesOf returns the BytesN<length> type
func FixedBytesOf(length uint32) *TypeDescriptor {
	return &TypeDescriptor{Kind: KindFixedBytes, Length: length}
}

// OptionOf returns the Option<elem> type
func OptionOf(elem *TypeDescriptor) *TypeDescriptor {
	return &TypeDescriptor{Kind: KindOption, Elem: elem}
}

// ListOf returns the Vec<elem> type
func ListOf(elem *TypeDescriptor) *TypeDescriptor {
	return &TypeDescriptor{Kind: KindList, Elem: elem}
}

// MapOf returns the Map<key, val> type
func MapOf(key *TypeDescriptor, val *TypeDescriptor) *TypeDescriptor {
	return &TypeDescriptor{Kind: KindMap, Key: key, Val: val}
}

// TupleOf returns the (items...) type
func TupleOf(items ...*TypeDescriptor) *TypeDescriptor {
	return &TypeDescriptor{Kind: KindTuple, Items: items}
}

// StructOf returns a named struct type having the provided fields, in declaration order
func StructOf(name string, fields ...FieldDescriptor) *TypeDescriptor {
	return &TypeDescriptor{Kind: KindStruct, Name: name, Fields: fields}
}

// EnumOf returns a named simple enum type having the provided cases, in declaration order
func EnumOf(name string, cases ...EnumCase) *TypeDescriptor {
	return &TypeDescriptor{Kind: KindEnum, Name: name, Cases: cases}
}

// UnionOf returns a named tagged union type having the provided variants, in declaration order
func UnionOf(name string, variants ...VariantDescriptor) *TypeDescriptor {
	return &TypeDescriptor{Kind: KindUnion, Name: name, Variants: variants}
}

// CaseByValue returns the index of the enum case carrying the provided wire value
func (t *TypeDescriptor) CaseByValue(value uint32) (int, bool) {
	for i, enumCase := range t.Cases {
		if enumCase.Value == value {
			return i, true
		}
	}

	return -1, false
}

// CaseByName returns the enum case having the provided name
func (t *TypeDescriptor) CaseByName(name string) (EnumCase, bool) {
	for _, enumCase := range t.Cases {
		if enumCase.Name == name {
			return enumCase, true
		}
	}

	return EnumCase{}, false
}

// VariantByName returns the ordinal of the union variant having the provided name
func (t *TypeDescriptor) VariantByName(name string) (uint32, bool) {
	for i, variant := range t.Variants {
		if variant.Name == name {
			return uint32(i), true
		}
	}

	return 0, false
}

// String renders the descriptor as a type expression, e.g. Map<u32, bool>
func (t *TypeDescriptor) String() string {
	if t == nil {
		return "<nil>"
	}

	switch t.Kind {
	case KindFixedBytes:
		return fmt.Sprintf("BytesN<%d>", t.Length)
	case KindOption, KindList:
		return fmt.Sprintf("%s<%s>", t.Kind, t.Elem)
	case KindMap:
		return fmt.Sprintf("Map<%s, %s>", t.Key, t.Val)
	case KindTuple:
		items := make([]string, len(t.Items))
		for i, item := range t.Items {
			items[i] = item.String()
		}

		return "(" + strings.Join(items, ", ") + ")"
	case KindStruct, KindEnum, KindUnion:
		return t.Name
	default:
		return t.Kind.String()
	}
}
