package scval

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBigNumbers(t *testing.T) {
	t.Parallel()

	t.Run("i128 limbs should use two's complement", func(t *testing.T) {
		t.Parallel()

		value, err := NewI128Value(big.NewInt(-1))
		require.Nil(t, err)
		require.Equal(t, I128Value{Hi: -1, Lo: 0xffffffffffffffff}, value)
		require.Equal(t, "-1", value.BigInt().String())
	})
	t.Run("u128 with both limbs set should work", func(t *testing.T) {
		t.Parallel()

		n, _ := new(big.Int).SetString("18446744073709551617", 10)
		value, err := NewU128Value(n)
		require.Nil(t, err)
		require.Equal(t, U128Value{Hi: 1, Lo: 1}, value)
		require.Equal(t, n.String(), value.BigInt().String())
	})
	t.Run("out of range values should error", func(t *testing.T) {
		t.Parallel()

		_, err := NewU128Value(big.NewInt(-1))
		require.ErrorIs(t, err, ErrNumberOutOfRange)

		tooLarge := new(big.Int).Lsh(big.NewInt(1), 127)
		_, err = NewI128Value(tooLarge)
		require.ErrorIs(t, err, ErrNumberOutOfRange)

		_, err = NewI128Value(new(big.Int).Neg(tooLarge))
		require.Nil(t, err)

		_, err = NewU256Value(new(big.Int).Lsh(big.NewInt(1), 256))
		require.ErrorIs(t, err, ErrNumberOutOfRange)
	})
	t.Run("nil big int should error", func(t *testing.T) {
		t.Parallel()

		_, err := NewI256Value(nil)
		require.ErrorIs(t, err, ErrNilValue)
	})
	t.Run("i256 should round trip through big int", func(t *testing.T) {
		t.Parallel()

		n, _ := new(big.Int).SetString("-57896044618658097711785492504343953926634992332820282019728792003956564819968", 10)
		value, err := NewI256Value(n)
		require.Nil(t, err)
		require.Equal(t, I256Value{HiHi: -9223372036854775808}, value)
		require.Equal(t, n.String(), value.BigInt().String())
	})
}

func TestAddressValue_String(t *testing.T) {
	t.Parallel()

	account := AddressValue{Type: AddressTypeAccount, Value: make([]byte, addressLength)}
	require.Equal(t, "GAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAWHF", account.String())

	contract := AddressValue{Type: AddressTypeContract, Value: make([]byte, addressLength)}
	require.Equal(t, "CAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAABSC4", contract.String())
}

func TestTypeDescriptor_String(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Map<u32, bool>", MapOf(TypeU32(), TypeBool()).String())
	require.Equal(t, "BytesN<9>", FixedBytesOf(9).String())
	require.Equal(t, "(Symbol, u32)", TupleOf(TypeSymbol(), TypeU32()).String())
	require.Equal(t, "Option<Vec<SimpleStruct>>", OptionOf(ListOf(simpleStructType())).String())
	require.Equal(t, "()", TupleOf().String())
}

func TestCodec_Validate(t *testing.T) {
	t.Parallel()

	c := NewCodec()

	testCases := []struct {
		name  string
		value Value
		typ   *TypeDescriptor
	}{
		{"wrong scalar kind", U64Value{Value: 1}, TypeU32()},
		{"nil value", nil, TypeU32()},
		{"symbol too long", SymbolValue{Value: "abcdefghijklmnopqrstuvwxyz0123456"}, TypeSymbol()},
		{"symbol with spaces", SymbolValue{Value: "a b"}, TypeSymbol()},
		{"invalid utf8", StringValue{Value: string([]byte{0xc3, 0x28})}, TypeString()},
		{"short address", AddressValue{Type: AddressTypeAccount, Value: make([]byte, 31)}, TypeAddress()},
		{"unknown address type", AddressValue{Type: 2, Value: make([]byte, addressLength)}, TypeAddress()},
		{"wrong option content", OptionValue{Value: BoolValue{}}, OptionOf(TypeU32())},
		{"tuple arity", TupleValue{Items: []Value{U32Value{}}}, TupleOf(TypeU32(), TypeU32())},
		{"list item", ListValue{Items: []Value{U32Value{}, BoolValue{}}}, ListOf(TypeU32())},
		{"missing struct field", StructValue{Fields: simpleStructValue().Fields[:2]}, simpleStructType()},
		{"undeclared enum case", EnumValue{Discriminant: 3}, simpleEnumType()},
		{"union discriminant", UnionValue{Discriminant: 5}, complexEnumType()},
		{"union payload arity", UnionValue{Discriminant: 3, Items: []Value{testAddress()}}, complexEnumType()},
		{"val holding a composite", ListValue{}, TypeAny()},
		{"pointer to bool", &BoolValue{Value: true}, TypeBool()},
		{"pointer to bytes", &BytesValue{Value: []byte{1}}, TypeBytes()},
		{"pointer inside list", ListValue{Items: []Value{&U32Value{Value: 1}}}, ListOf(TypeU32())},
		{"pointer inside map", MapValue{Entries: []MapEntry{{Key: U32Value{}, Value: &BoolValue{}}}}, MapOf(TypeU32(), TypeBool())},
		{"pointer held by val", &U32Value{Value: 1}, TypeAny()},
		{"nil pointer to bool", (*BoolValue)(nil), TypeBool()},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name+" should error", func(t *testing.T) {
			t.Parallel()

			err := c.Validate(tc.value, tc.typ)
			require.ErrorIs(t, err, ErrTypeMismatch)

			encoded, err := c.Encode(tc.value, tc.typ)
			require.ErrorIs(t, err, ErrTypeMismatch)
			require.Nil(t, encoded)
		})
	}

	t.Run("nil type should error", func(t *testing.T) {
		t.Parallel()

		require.ErrorIs(t, c.Validate(U32Value{}, nil), ErrNilTypeDescriptor)
	})
	t.Run("symbol of maximum length should work", func(t *testing.T) {
		t.Parallel()

		require.Nil(t, c.Validate(SymbolValue{Value: "abcdefghijklmnopqrstuvwxyz012345"}, TypeSymbol()))
	})
}
