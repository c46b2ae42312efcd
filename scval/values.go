package scval

import (
	"math/big"

	"github.com/multiversx/mx-contract-fixtures-go/strkey"
)

// Value is an immutable, typed, in-memory value. The set of implementations is closed: only the types
// declared in this package satisfy it.
type Value interface {
	Kind() Kind
	isValue()
}

// VoidValue is the value of the void kind
type VoidValue struct{}

// BoolValue is a wrapper for a boolean
type BoolValue struct {
	Value bool
}

// U32Value is a wrapper for uint32
type U32Value struct {
	Value uint32
}

// I32Value is a wrapper for int32
type I32Value struct {
	Value int32
}

// U64Value is a wrapper for uint64
type U64Value struct {
	Value uint64
}

// I64Value is a wrapper for int64
type I64Value struct {
	Value int64
}

// U128Value holds an unsigned 128-bit integer as two 64-bit limbs
type U128Value struct {
	Hi uint64
	Lo uint64
}

// I128Value holds a signed 128-bit integer (two's complement) as two 64-bit limbs
type I128Value struct {
	Hi int64
	Lo uint64
}

// U256Value holds an unsigned 256-bit integer as four 64-bit limbs, most significant first
type U256Value struct {
	HiHi uint64
	HiLo uint64
	LoHi uint64
	LoLo uint64
}

// I256Value holds a signed 256-bit integer (two's complement) as four 64-bit limbs, most significant first
type I256Value struct {
	HiHi int64
	HiLo uint64
	LoHi uint64
	LoLo uint64
}

// TimepointValue is a point in time, in seconds since the unix epoch
type TimepointValue struct {
	Value uint64
}

// DurationValue is a length of time, in seconds
type DurationValue struct {
	Value uint64
}

// SymbolValue is a short identifier
type SymbolValue struct {
	Value string
}

// StringValue is an UTF-8 text
type StringValue struct {
	Value string
}

// BytesValue is a variable-length byte sequence
type BytesValue struct {
	Value []byte
}

// FixedBytesValue is a byte sequence whose length is fixed by its type
type FixedBytesValue struct {
	Value []byte
}

// AddressType tells apart account addresses from contract addresses
type AddressType uint8

const (
	// AddressTypeAccount marks the address of an account (ed25519 public key)
	AddressTypeAccount AddressType = 0
	// AddressTypeContract marks the address of a contract (contract hash)
	AddressTypeContract AddressType = 1
)

// AddressValue is an opaque identifier of an account or of a contract
type AddressValue struct {
	Type  AddressType
	Value []byte
}

// String returns the strkey representation of the address
func (v AddressValue) String() string {
	version := strkey.VersionByteAccountID
	if v.Type == AddressTypeContract {
		version = strkey.VersionByteContract
	}

	encoded, err := strkey.Encode(version, v.Value)
	if err != nil {
		return "<invalid address>"
	}

	return encoded
}

// OptionValue holds an optional value. A nil Value means absent.
type OptionValue struct {
	Value Value
}

// IsSet returns true if the optional value is present
func (v OptionValue) IsSet() bool {
	return v.Value != nil
}

// TupleValue is a fixed-arity sequence of heterogeneous values
type TupleValue struct {
	Items []Value
}

// ListValue is a variable-length sequence of homogeneous values
type ListValue struct {
	Items []Value
}

// MapEntry is a key-value pair of a MapValue
type MapEntry struct {
	Key   Value
	Value Value
}

// MapValue is a sequence of entries having unique keys
type MapValue struct {
	Entries []MapEntry
}

// Field is a named field of a StructValue
type Field struct {
	Name  string
	Value Value
}

// StructValue is a record whose fields follow the declaration order of its type
type StructValue struct {
	Fields []Field
}

// EnumValue is a unit case of a simple enum, identified by its declared value
type EnumValue struct {
	Discriminant uint32
}

// UnionValue is a variant of a tagged union, identified by its ordinal and carrying the variant payload
type UnionValue struct {
	Discriminant uint32
	Items        []Value
}

func (VoidValue) Kind() Kind       { return KindVoid }
func (BoolValue) Kind() Kind       { return KindBool }
func (U32Value) Kind() Kind        { return KindU32 }
func (I32Value) Kind() Kind        { return KindI32 }
func (U64Value) Kind() Kind        { return KindU64 }
func (I64Value) Kind() Kind        { return KindI64 }
func (U128Value) Kind() Kind       { return KindU128 }
func (I128Value) Kind() Kind       { return KindI128 }
func (U256Value) Kind() Kind       { return KindU256 }
func (I256Value) Kind() Kind       { return KindI256 }
func (TimepointValue) Kind() Kind  { return KindTimepoint }
func (DurationValue) Kind() Kind   { return KindDuration }
func (SymbolValue) Kind() Kind     { return KindSymbol }
func (StringValue) Kind() Kind     { return KindString }
func (BytesValue) Kind() Kind      { return KindBytes }
func (FixedBytesValue) Kind() Kind { return KindFixedBytes }
func (AddressValue) Kind() Kind    { return KindAddress }
func (OptionValue) Kind() Kind     { return KindOption }
func (TupleValue) Kind() Kind      { return KindTuple }
func (ListValue) Kind() Kind       { return KindList }
func (MapValue) Kind() Kind        { return KindMap }
func (StructValue) Kind() Kind     { return KindStruct }
func (EnumValue) Kind() Kind       { return KindEnum }
func (UnionValue) Kind() Kind      { return KindUnion }

func (VoidValue) isValue()       {}
func (BoolValue) isValue()       {}
func (U32Value) isValue()        {}
func (I32Value) isValue()        {}
func (U64Value) isValue()        {}
func (I64Value) isValue()        {}
func (U128Value) isValue()       {}
func (I128Value) isValue()       {}
func (U256Value) isValue()       {}
func (I256Value) isValue()       {}
func (TimepointValue) isValue()  {}
func (DurationValue) isValue()   {}
func (SymbolValue) isValue()     {}
func (StringValue) isValue()     {}
func (BytesValue) isValue()      {}
func (FixedBytesValue) isValue() {}
func (AddressValue) isValue()    {}
func (OptionValue) isValue()     {}
func (TupleValue) isValue()      {}
func (ListValue) isValue()       {}
func (MapValue) isValue()        {}
func (StructValue) isValue()     {}
func (EnumValue) isValue()       {}
func (UnionValue) isValue()      {}

// BigInt returns the integer as a big.Int
func (v U128Value) BigInt() *big.Int {
	return limbsToBig(false, v.Hi, v.Lo)
}

// BigInt returns the integer as a big.Int
func (v I128Value) BigInt() *big.Int {
	return limbsToBig(true, uint64(v.Hi), v.Lo)
}

// BigInt returns the integer as a big.Int
func (v U256Value) BigInt() *big.Int {
	return limbsToBig(false, v.HiHi, v.HiLo, v.LoHi, v.LoLo)
}

// BigInt returns the integer as a big.Int
func (v I256Value) BigInt() *big.Int {
	return limbsToBig(true, uint64(v.HiHi), v.HiLo, v.LoHi, v.LoLo)
}

// NewU128Value creates an U128Value, failing if n does not fit in 128 unsigned bits
func NewU128Value(n *big.Int) (U128Value, error) {
	limbs, err := bigToLimbs(n, 2, false)
	if err != nil {
		return U128Value{}, err
	}

	return U128Value{Hi: limbs[0], Lo: limbs[1]}, nil
}

// NewI128Value creates an I128Value, failing if n does not fit in 128 signed bits
func NewI128Value(n *big.Int) (I128Value, error) {
	limbs, err := bigToLimbs(n, 2, true)
	if err != nil {
		return I128Value{}, err
	}

	return I128Value{Hi: int64(limbs[0]), Lo: limbs[1]}, nil
}

// NewU256Value creates an U256Value, failing if n does not fit in 256 unsigned bits
func NewU256Value(n *big.Int) (U256Value, error) {
	limbs, err := bigToLimbs(n, 4, false)
	if err != nil {
		return U256Value{}, err
	}

	return U256Value{HiHi: limbs[0], HiLo: limbs[1], LoHi: limbs[2], LoLo: limbs[3]}, nil
}

// NewI256Value creates an I256Value, failing if n does not fit in 256 signed bits
func NewI256Value(n *big.Int) (I256Value, error) {
	limbs, err := bigToLimbs(n, 4, true)
	if err != nil {
		return I256Value{}, err
	}

	return I256Value{HiHi: int64(limbs[0]), HiLo: limbs[1], LoHi: limbs[2], LoLo: limbs[3]}, nil
}
