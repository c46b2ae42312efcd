package scval

import (
	"bytes"
	"encoding/hex"
	"math/big"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func simpleStructType() *TypeDescriptor {
	return StructOf("SimpleStruct",
		FieldDescriptor{Name: "a", Type: TypeU32()},
		FieldDescriptor{Name: "b", Type: TypeBool()},
		FieldDescriptor{Name: "c", Type: TypeSymbol()},
	)
}

func simpleEnumType() *TypeDescriptor {
	return EnumOf("SimpleEnum",
		EnumCase{Name: "First", Value: 0},
		EnumCase{Name: "Second", Value: 1},
		EnumCase{Name: "Third", Value: 2},
	)
}

func royalCardType() *TypeDescriptor {
	return EnumOf("RoyalCard",
		EnumCase{Name: "Jack", Value: 11},
		EnumCase{Name: "Queen", Value: 12},
		EnumCase{Name: "King", Value: 13},
	)
}

func tupleStructType() *TypeDescriptor {
	return StructOf("TupleStruct",
		FieldDescriptor{Name: "0", Type: simpleStructType()},
		FieldDescriptor{Name: "1", Type: simpleEnumType()},
	)
}

func complexEnumType() *TypeDescriptor {
	return UnionOf("ComplexEnum",
		VariantDescriptor{Name: "Struct", Items: []*TypeDescriptor{simpleStructType()}},
		VariantDescriptor{Name: "Tuple", Items: []*TypeDescriptor{tupleStructType()}},
		VariantDescriptor{Name: "Enum", Items: []*TypeDescriptor{simpleEnumType()}},
		VariantDescriptor{Name: "Asset", Items: []*TypeDescriptor{TypeAddress(), TypeI128()}},
		VariantDescriptor{Name: "Void"},
	)
}

func simpleStructValue() StructValue {
	return StructValue{
		Fields: []Field{
			{Name: "a", Value: U32Value{Value: 7}},
			{Name: "b", Value: BoolValue{Value: true}},
			{Name: "c", Value: SymbolValue{Value: "Hello"}},
		},
	}
}

func testAddress() AddressValue {
	data := make([]byte, addressLength)
	for i := range data {
		data[i] = byte(i)
	}

	return AddressValue{Type: AddressTypeAccount, Value: data}
}

func requireRoundTrip(t *testing.T, value Value, typ *TypeDescriptor) []byte {
	c := NewCodec()

	encoded, err := c.Encode(value, typ)
	require.Nil(t, err)

	decoded, err := c.Decode(encoded, typ)
	require.Nil(t, err)
	require.True(t, Equal(value, decoded), "expected %#v, got %#v", value, decoded)

	encodedAgain, err := c.Encode(decoded, typ)
	require.Nil(t, err)
	require.Equal(t, encoded, encodedAgain)

	return encoded
}

func TestCodec_EncodeDecodeScenarios(t *testing.T) {
	t.Parallel()

	t.Run("struct should round trip", func(t *testing.T) {
		t.Parallel()

		encoded := requireRoundTrip(t, simpleStructValue(), simpleStructType())
		require.Equal(t, "00000007010000000548656c6c6f", hex.EncodeToString(encoded))
	})
	t.Run("maps with different insertion order should encode identically", func(t *testing.T) {
		t.Parallel()

		typ := MapOf(TypeU32(), TypeBool())
		first := MapValue{Entries: []MapEntry{
			{Key: U32Value{Value: 1}, Value: BoolValue{Value: true}},
			{Key: U32Value{Value: 2}, Value: BoolValue{Value: false}},
		}}
		second := MapValue{Entries: []MapEntry{
			{Key: U32Value{Value: 2}, Value: BoolValue{Value: false}},
			{Key: U32Value{Value: 1}, Value: BoolValue{Value: true}},
		}}

		c := NewCodec()
		encodedFirst, err := c.Encode(first, typ)
		require.Nil(t, err)
		encodedSecond, err := c.Encode(second, typ)
		require.Nil(t, err)

		require.Equal(t, encodedFirst, encodedSecond)
		require.Equal(t, "00000002000000010100000002"+"00", hex.EncodeToString(encodedFirst))

		decoded, err := c.Decode(encodedSecond, typ)
		require.Nil(t, err)
		require.Equal(t, first, decoded)
	})
}

func TestCodec_RoundTrip(t *testing.T) {
	t.Parallel()

	bigI128, _ := new(big.Int).SetString("-170141183460469231731687303715884105728", 10)
	minI128, err := NewI128Value(bigI128)
	require.Nil(t, err)
	bigU256, _ := new(big.Int).SetString("115792089237316195423570985008687907853269984665640564039457584007913129639935", 10)
	maxU256, err := NewU256Value(bigU256)
	require.Nil(t, err)

	testCases := []struct {
		name  string
		value Value
		typ   *TypeDescriptor
	}{
		{"void", VoidValue{}, TypeVoid()},
		{"bool", BoolValue{Value: true}, TypeBool()},
		{"u32", U32Value{Value: 4294967295}, TypeU32()},
		{"i32", I32Value{Value: -2147483648}, TypeI32()},
		{"u64", U64Value{Value: 18446744073709551615}, TypeU64()},
		{"i64", I64Value{Value: -1}, TypeI64()},
		{"u128", U128Value{Hi: 1, Lo: 2}, TypeU128()},
		{"i128", minI128, TypeI128()},
		{"u256", maxU256, TypeU256()},
		{"i256", I256Value{HiHi: -1, HiLo: 0, LoHi: 5, LoLo: 6}, TypeI256()},
		{"timepoint", TimepointValue{Value: 1700000000}, TypeTimepoint()},
		{"duration", DurationValue{Value: 3600}, TypeDuration()},
		{"symbol", SymbolValue{Value: "finally"}, TypeSymbol()},
		{"string", StringValue{Value: "hello, world ✓"}, TypeString()},
		{"bytes", BytesValue{Value: []byte{1, 2, 3}}, TypeBytes()},
		{"bytes n", FixedBytesValue{Value: []byte("123456789")}, FixedBytesOf(9)},
		{"address", testAddress(), TypeAddress()},
		{"absent option", OptionValue{}, OptionOf(TypeU32())},
		{"present option", OptionValue{Value: U32Value{Value: 10}}, OptionOf(TypeU32())},
		{"tuple", TupleValue{Items: []Value{SymbolValue{Value: "abc"}, U32Value{Value: 3}}}, TupleOf(TypeSymbol(), TypeU32())},
		{"empty tuple", TupleValue{Items: []Value{}}, TupleOf()},
		{"list", ListValue{Items: []Value{U32Value{Value: 1}, U32Value{Value: 2}, U32Value{Value: 3}}}, ListOf(TypeU32())},
		{"empty list", ListValue{Items: []Value{}}, ListOf(TypeU32())},
		{"simple enum", EnumValue{Discriminant: 2}, simpleEnumType()},
		{"enum with explicit values", EnumValue{Discriminant: 12}, royalCardType()},
		{"tuple struct", StructValue{Fields: []Field{
			{Name: "0", Value: simpleStructValue()},
			{Name: "1", Value: EnumValue{Discriminant: 1}},
		}}, tupleStructType()},
		{"union with struct payload", UnionValue{Discriminant: 0, Items: []Value{simpleStructValue()}}, complexEnumType()},
		{"union with tuple payload", UnionValue{Discriminant: 3, Items: []Value{testAddress(), I128Value{Hi: 0, Lo: 1000}}}, complexEnumType()},
		{"unit union variant", UnionValue{Discriminant: 4, Items: []Value{}}, complexEnumType()},
		{"any holding u32", U32Value{Value: 123}, TypeAny()},
		{"any holding void", VoidValue{}, TypeAny()},
		{"nested containers", ListValue{Items: []Value{
			OptionValue{Value: MapValue{Entries: []MapEntry{
				{Key: SymbolValue{Value: "a"}, Value: ListValue{Items: []Value{BoolValue{Value: false}}}},
			}}},
			OptionValue{},
		}}, ListOf(OptionOf(MapOf(TypeSymbol(), ListOf(TypeBool()))))},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			requireRoundTrip(t, tc.value, tc.typ)
		})
	}
}

func TestCodec_EncodeWireFormat(t *testing.T) {
	t.Parallel()

	c := NewCodec()

	testCases := []struct {
		name     string
		value    Value
		typ      *TypeDescriptor
		expected string
	}{
		{"i32", I32Value{Value: -123}, TypeI32(), "ffffff85"},
		{"i128 minus one", I128Value{Hi: -1, Lo: 0xffffffffffffffff}, TypeI128(), "ffffffffffffffffffffffffffffffff"},
		{"u128 limbs are most significant first", U128Value{Hi: 1, Lo: 2}, TypeU128(), "00000000000000010000000000000002"},
		{"absent option", OptionValue{}, OptionOf(TypeU32()), "00"},
		{"present option", OptionValue{Value: U32Value{Value: 5}}, OptionOf(TypeU32()), "0100000005"},
		{"royal card", EnumValue{Discriminant: 13}, royalCardType(), "0000000d"},
		{"unit union variant", UnionValue{Discriminant: 4}, complexEnumType(), "00000004"},
		{"any bool", BoolValue{Value: true}, TypeAny(), "0101"},
		{"any i32", I32Value{Value: -123}, TypeAny(), "03ffffff85"},
		{"list", ListValue{Items: []Value{U32Value{Value: 1}, U32Value{Value: 2}}}, ListOf(TypeU32()), "000000020000000100000002"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			encoded, err := c.Encode(tc.value, tc.typ)
			require.Nil(t, err)
			require.Equal(t, tc.expected, hex.EncodeToString(encoded))
		})
	}
}

func TestCodec_DecodeTruncatedInput(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		value Value
		typ   *TypeDescriptor
	}{
		{"struct", simpleStructValue(), simpleStructType()},
		{"union", UnionValue{Discriminant: 3, Items: []Value{testAddress(), I128Value{Hi: -1, Lo: 7}}}, complexEnumType()},
		{"list", ListValue{Items: []Value{StringValue{Value: "a"}, StringValue{Value: "bc"}}}, ListOf(TypeString())},
		{"map", MapValue{Entries: []MapEntry{{Key: U32Value{Value: 1}, Value: BoolValue{Value: true}}}}, MapOf(TypeU32(), TypeBool())},
		{"option", OptionValue{Value: FixedBytesValue{Value: make([]byte, 9)}}, OptionOf(FixedBytesOf(9))},
		{"tuple", TupleValue{Items: []Value{U256Value{LoLo: 1}, DurationValue{Value: 2}}}, TupleOf(TypeU256(), TypeDuration())},
	}

	c := NewCodec()
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			encoded, err := c.Encode(tc.value, tc.typ)
			require.Nil(t, err)

			for length := 0; length < len(encoded); length++ {
				decoded, err := c.Decode(encoded[:length], tc.typ)
				require.ErrorIs(t, err, ErrTruncatedInput, "prefix of length %d", length)
				require.Nil(t, decoded)
			}
		})
	}
}

func TestCodec_DecodeInvalidDiscriminant(t *testing.T) {
	t.Parallel()

	c := NewCodec()

	t.Run("union ordinal equal to the variants count should error", func(t *testing.T) {
		t.Parallel()

		decoded, err := c.Decode([]byte{0, 0, 0, 5}, complexEnumType())
		require.ErrorIs(t, err, ErrInvalidDiscriminant)
		require.Nil(t, decoded)
	})
	t.Run("union ordinal minus one should error", func(t *testing.T) {
		t.Parallel()

		decoded, err := c.Decode([]byte{0xff, 0xff, 0xff, 0xff}, complexEnumType())
		require.ErrorIs(t, err, ErrInvalidDiscriminant)
		require.Nil(t, decoded)
	})
	t.Run("mutated ordinal of a valid encoding should error", func(t *testing.T) {
		t.Parallel()

		encoded, err := c.Encode(UnionValue{Discriminant: 2, Items: []Value{EnumValue{Discriminant: 0}}}, complexEnumType())
		require.Nil(t, err)

		mutated := bytes.Clone(encoded)
		mutated[3] = 5
		_, err = c.Decode(mutated, complexEnumType())
		require.ErrorIs(t, err, ErrInvalidDiscriminant)
	})
	t.Run("undeclared enum value should error", func(t *testing.T) {
		t.Parallel()

		_, err := c.Decode([]byte{0, 0, 0, 3}, royalCardType())
		require.ErrorIs(t, err, ErrInvalidDiscriminant)
	})
	t.Run("invalid bool flag should error", func(t *testing.T) {
		t.Parallel()

		_, err := c.Decode([]byte{2}, TypeBool())
		require.ErrorIs(t, err, ErrInvalidDiscriminant)
	})
	t.Run("invalid option marker should error", func(t *testing.T) {
		t.Parallel()

		_, err := c.Decode([]byte{2, 0, 0, 0, 1}, OptionOf(TypeU32()))
		require.ErrorIs(t, err, ErrInvalidDiscriminant)
	})
	t.Run("invalid address type should error", func(t *testing.T) {
		t.Parallel()

		data := append([]byte{7}, make([]byte, addressLength)...)
		_, err := c.Decode(data, TypeAddress())
		require.ErrorIs(t, err, ErrInvalidDiscriminant)
	})
	t.Run("non scalar tag of any should error", func(t *testing.T) {
		t.Parallel()

		_, err := c.Decode([]byte{byte(KindStruct)}, TypeAny())
		require.ErrorIs(t, err, ErrInvalidDiscriminant)
	})
}

func TestCodec_DecodeFixedBytesLength(t *testing.T) {
	t.Parallel()

	c := NewCodec()
	typ := FixedBytesOf(9)

	t.Run("declared length should work", func(t *testing.T) {
		t.Parallel()

		data := append([]byte{0, 0, 0, 9}, make([]byte, 9)...)
		decoded, err := c.Decode(data, typ)
		require.Nil(t, err)
		require.Equal(t, FixedBytesValue{Value: make([]byte, 9)}, decoded)
	})
	t.Run("shorter length should error", func(t *testing.T) {
		t.Parallel()

		data := append([]byte{0, 0, 0, 8}, make([]byte, 8)...)
		_, err := c.Decode(data, typ)
		require.ErrorIs(t, err, ErrLengthMismatch)
	})
	t.Run("longer length should error", func(t *testing.T) {
		t.Parallel()

		data := append([]byte{0, 0, 0, 10}, make([]byte, 10)...)
		_, err := c.Decode(data, typ)
		require.ErrorIs(t, err, ErrLengthMismatch)
	})
	t.Run("wrong length at encode time should error", func(t *testing.T) {
		t.Parallel()

		encoded, err := c.Encode(FixedBytesValue{Value: make([]byte, 8)}, typ)
		require.ErrorIs(t, err, ErrTypeMismatch)
		require.Nil(t, encoded)
	})
}

func TestCodec_DecodeMaps(t *testing.T) {
	t.Parallel()

	c := NewCodec()
	typ := MapOf(TypeU32(), TypeBool())

	t.Run("duplicate keys should error", func(t *testing.T) {
		t.Parallel()

		data, _ := hex.DecodeString("00000002" + "0000000101" + "0000000100")
		decoded, err := c.Decode(data, typ)
		require.ErrorIs(t, err, ErrDuplicateKey)
		require.Nil(t, decoded)
	})
	t.Run("unordered entries should be returned in canonical order", func(t *testing.T) {
		t.Parallel()

		data, _ := hex.DecodeString("00000002" + "0000000200" + "0000000101")
		decoded, err := c.Decode(data, typ)
		require.Nil(t, err)

		expected := MapValue{Entries: []MapEntry{
			{Key: U32Value{Value: 1}, Value: BoolValue{Value: true}},
			{Key: U32Value{Value: 2}, Value: BoolValue{Value: false}},
		}}
		require.Equal(t, expected, decoded)
	})
	t.Run("count larger than the input should error without allocating", func(t *testing.T) {
		t.Parallel()

		_, err := c.Decode([]byte{0xff, 0xff, 0xff, 0xff, 0, 0, 0, 1, 1}, typ)
		require.ErrorIs(t, err, ErrTruncatedInput)
	})
	t.Run("duplicate keys at encode time should error", func(t *testing.T) {
		t.Parallel()

		value := MapValue{Entries: []MapEntry{
			{Key: U32Value{Value: 1}, Value: BoolValue{Value: true}},
			{Key: U32Value{Value: 1}, Value: BoolValue{Value: false}},
		}}
		encoded, err := c.Encode(value, typ)
		require.ErrorIs(t, err, ErrDuplicateKey)
		require.ErrorIs(t, err, ErrTypeMismatch)
		require.Nil(t, encoded)
	})
}

func TestCodec_DecodeZeroSizeItems(t *testing.T) {
	t.Parallel()

	c := NewCodec()

	t.Run("huge count of empty tuples should error", func(t *testing.T) {
		t.Parallel()

		decoded, err := c.Decode([]byte{0x10, 0, 0, 0}, ListOf(TupleOf()))
		require.ErrorIs(t, err, ErrTooManyItems)
		require.Nil(t, decoded)
	})
	t.Run("huge count of voids should error", func(t *testing.T) {
		t.Parallel()

		_, err := c.Decode([]byte{0xff, 0xff, 0xff, 0xff}, ListOf(TypeVoid()))
		require.ErrorIs(t, err, ErrTooManyItems)
	})
	t.Run("count just above the limit should error", func(t *testing.T) {
		t.Parallel()

		_, err := c.Decode([]byte{0, 1, 0, 1}, ListOf(TypeVoid()))
		require.ErrorIs(t, err, ErrTooManyItems)
	})
	t.Run("huge count of empty entries should error", func(t *testing.T) {
		t.Parallel()

		_, err := c.Decode([]byte{0x10, 0, 0, 0}, MapOf(TupleOf(), TupleOf()))
		require.ErrorIs(t, err, ErrTooManyItems)
	})
	t.Run("two keys encoding to no bytes should error", func(t *testing.T) {
		t.Parallel()

		_, err := c.Decode([]byte{0, 0, 0, 2}, MapOf(TupleOf(), TypeVoid()))
		require.ErrorIs(t, err, ErrDuplicateKey)
	})
	t.Run("single empty entry should work", func(t *testing.T) {
		t.Parallel()

		decoded, err := c.Decode([]byte{0, 0, 0, 1}, MapOf(TypeVoid(), TypeVoid()))
		require.Nil(t, err)
		require.Equal(t, MapValue{Entries: []MapEntry{{Key: VoidValue{}, Value: VoidValue{}}}}, decoded)
	})
	t.Run("small count of empty tuples should work", func(t *testing.T) {
		t.Parallel()

		data := []byte{0, 0, 0, 3}
		decoded, err := c.Decode(data, ListOf(TupleOf()))
		require.Nil(t, err)

		list, ok := decoded.(ListValue)
		require.True(t, ok)
		require.Len(t, list.Items, 3)

		encoded, err := c.Encode(decoded, ListOf(TupleOf()))
		require.Nil(t, err)
		require.Equal(t, data, encoded)
	})
	t.Run("count at the limit should work", func(t *testing.T) {
		t.Parallel()

		decoded, err := c.Decode([]byte{0, 1, 0, 0}, ListOf(TypeVoid()))
		require.Nil(t, err)
		require.Len(t, decoded.(ListValue).Items, maxZeroSizeItems)
	})
}

func TestCodec_DecodeStrictness(t *testing.T) {
	t.Parallel()

	c := NewCodec()

	t.Run("trailing bytes should error", func(t *testing.T) {
		t.Parallel()

		_, err := c.Decode([]byte{0, 0, 0, 1, 0}, TypeU32())
		require.ErrorIs(t, err, ErrTrailingData)
	})
	t.Run("decode with remainder should return the rest", func(t *testing.T) {
		t.Parallel()

		first, err := c.Encode(simpleStructValue(), simpleStructType())
		require.Nil(t, err)
		second, err := c.Encode(U64Value{Value: 42}, TypeU64())
		require.Nil(t, err)

		value, rest, err := c.DecodeWithRemainder(append(bytes.Clone(first), second...), simpleStructType())
		require.Nil(t, err)
		require.Equal(t, simpleStructValue(), value)
		require.Equal(t, second, rest)

		value, rest, err = c.DecodeWithRemainder(rest, TypeU64())
		require.Nil(t, err)
		require.Equal(t, U64Value{Value: 42}, value)
		require.Empty(t, rest)
	})
	t.Run("invalid symbol characters should error", func(t *testing.T) {
		t.Parallel()

		_, err := c.Decode([]byte{0, 0, 0, 2, 'a', '-'}, TypeSymbol())
		require.ErrorIs(t, err, ErrTypeMismatch)
	})
	t.Run("invalid utf8 string should error", func(t *testing.T) {
		t.Parallel()

		_, err := c.Decode([]byte{0, 0, 0, 1, 0xff}, TypeString())
		require.ErrorIs(t, err, ErrTypeMismatch)
	})
	t.Run("nil type descriptor should error", func(t *testing.T) {
		t.Parallel()

		_, err := c.Decode([]byte{0}, nil)
		require.ErrorIs(t, err, ErrNilTypeDescriptor)
	})
}

func TestCodec_ConcurrentUsage(t *testing.T) {
	t.Parallel()

	c := NewCodec()
	typ := complexEnumType()
	value := UnionValue{Discriminant: 1, Items: []Value{StructValue{Fields: []Field{
		{Name: "0", Value: simpleStructValue()},
		{Name: "1", Value: EnumValue{Discriminant: 2}},
	}}}}

	expected, err := c.Encode(value, typ)
	require.Nil(t, err)

	numGoroutines := 50
	errs := make(chan error, numGoroutines)
	wg := sync.WaitGroup{}
	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func() {
			defer wg.Done()

			encoded, errEncode := c.Encode(value, typ)
			if errEncode != nil {
				errs <- errEncode
				return
			}
			if !bytes.Equal(expected, encoded) {
				errs <- ErrTypeMismatch
				return
			}

			_, errDecode := c.Decode(encoded, typ)
			if errDecode != nil {
				errs <- errDecode
			}
		}()
	}
	wg.Wait()
	close(errs)

	for errReceived := range errs {
		require.Nil(t, errReceived)
	}
}

func TestCodec_IsInterfaceNil(t *testing.T) {
	t.Parallel()

	var c *codec
	require.True(t, c.IsInterfaceNil())

	c = NewCodec()
	require.False(t, c.IsInterfaceNil())
}
