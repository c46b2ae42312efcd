package scval

import (
	"bytes"
	"fmt"
	"io"

	logger "github.com/multiversx/mx-chain-logger-go"
)

var log = logger.GetOrCreate("scval")

// codec is the default codec for encoding and decoding values against their declared types.
// It holds no state, so a single instance may be shared by any number of goroutines.
type codec struct {
}

// NewCodec creates a new default codec.
func NewCodec() *codec {
	return &codec{}
}

// Encode validates the value against the declared type, then returns its self-delimiting encoding.
// Nothing is encoded if the validation fails.
func (c *codec) Encode(value Value, typ *TypeDescriptor) ([]byte, error) {
	err := c.Validate(value, typ)
	if err != nil {
		return nil, err
	}

	buffer := bytes.NewBuffer(nil)
	err = c.doEncode(buffer, value, typ)
	if err != nil {
		return nil, err
	}

	return buffer.Bytes(), nil
}

func (c *codec) doEncode(writer io.Writer, value Value, typ *TypeDescriptor) error {
	switch typ.Kind {
	case KindVoid:
		return nil
	case KindBool:
		return c.encodeBool(writer, value.(BoolValue))
	case KindU32:
		return c.encodeNumber(writer, value.(U32Value).Value)
	case KindI32:
		return c.encodeNumber(writer, value.(I32Value).Value)
	case KindU64:
		return c.encodeNumber(writer, value.(U64Value).Value)
	case KindI64:
		return c.encodeNumber(writer, value.(I64Value).Value)
	case KindTimepoint:
		return c.encodeNumber(writer, value.(TimepointValue).Value)
	case KindDuration:
		return c.encodeNumber(writer, value.(DurationValue).Value)
	case KindU128:
		v := value.(U128Value)
		return c.encodeLimbs(writer, v.Hi, v.Lo)
	case KindI128:
		v := value.(I128Value)
		return c.encodeLimbs(writer, uint64(v.Hi), v.Lo)
	case KindU256:
		v := value.(U256Value)
		return c.encodeLimbs(writer, v.HiHi, v.HiLo, v.LoHi, v.LoLo)
	case KindI256:
		v := value.(I256Value)
		return c.encodeLimbs(writer, uint64(v.HiHi), v.HiLo, v.LoHi, v.LoLo)
	case KindSymbol:
		return c.encodeLengthPrefixed(writer, []byte(value.(SymbolValue).Value))
	case KindString:
		return c.encodeLengthPrefixed(writer, []byte(value.(StringValue).Value))
	case KindBytes:
		return c.encodeLengthPrefixed(writer, value.(BytesValue).Value)
	case KindFixedBytes:
		return c.encodeLengthPrefixed(writer, value.(FixedBytesValue).Value)
	case KindAddress:
		return c.encodeAddress(writer, value.(AddressValue))
	case KindOption:
		return c.encodeOption(writer, value.(OptionValue), typ)
	case KindTuple:
		return c.encodeTuple(writer, value.(TupleValue), typ)
	case KindList:
		return c.encodeList(writer, value.(ListValue), typ)
	case KindMap:
		return c.encodeMap(writer, value.(MapValue), typ)
	case KindStruct:
		return c.encodeStruct(writer, value.(StructValue), typ)
	case KindEnum:
		return c.encodeNumber(writer, value.(EnumValue).Discriminant)
	case KindUnion:
		return c.encodeUnion(writer, value.(UnionValue), typ)
	case KindAny:
		return c.encodeAny(writer, value)
	default:
		return fmt.Errorf("%w: unsupported kind %s", ErrTypeMismatch, typ.Kind)
	}
}

// Decode decodes a value of the declared type. All the provided bytes must be consumed.
func (c *codec) Decode(data []byte, typ *TypeDescriptor) (Value, error) {
	value, remainder, err := c.DecodeWithRemainder(data, typ)
	if err != nil {
		return nil, err
	}

	if len(remainder) > 0 {
		return nil, fmt.Errorf("cannot decode %s, because of: %w (%d bytes)", typ, ErrTrailingData, len(remainder))
	}

	return value, nil
}

// DecodeWithRemainder decodes a value of the declared type from the beginning of data and returns the bytes
// that follow it
func (c *codec) DecodeWithRemainder(data []byte, typ *TypeDescriptor) (Value, []byte, error) {
	if typ == nil {
		return nil, nil, ErrNilTypeDescriptor
	}

	reader := bytes.NewReader(data)
	value, err := c.doDecode(reader, typ)
	if err != nil {
		log.Trace("decode failed", "type", typ.String(), "data", data, "error", err)
		return nil, nil, fmt.Errorf("cannot decode %s, because of: %w", typ, err)
	}

	consumed := len(data) - reader.Len()

	return value, data[consumed:], nil
}

func (c *codec) doDecode(reader *bytes.Reader, typ *TypeDescriptor) (Value, error) {
	if typ == nil {
		return nil, ErrNilTypeDescriptor
	}

	switch typ.Kind {
	case KindVoid:
		return VoidValue{}, nil
	case KindBool:
		return c.decodeBool(reader)
	case KindU32:
		n, err := decodeNumber[uint32](reader)
		return U32Value{Value: n}, err
	case KindI32:
		n, err := decodeNumber[int32](reader)
		return I32Value{Value: n}, err
	case KindU64:
		n, err := decodeNumber[uint64](reader)
		return U64Value{Value: n}, err
	case KindI64:
		n, err := decodeNumber[int64](reader)
		return I64Value{Value: n}, err
	case KindTimepoint:
		n, err := decodeNumber[uint64](reader)
		return TimepointValue{Value: n}, err
	case KindDuration:
		n, err := decodeNumber[uint64](reader)
		return DurationValue{Value: n}, err
	case KindU128, KindI128, KindU256, KindI256:
		return c.decodeBigNumber(reader, typ.Kind)
	case KindSymbol:
		return c.decodeSymbol(reader)
	case KindString:
		return c.decodeString(reader)
	case KindBytes:
		data, err := c.decodeLengthPrefixed(reader)
		if err != nil {
			return nil, err
		}

		return BytesValue{Value: data}, nil
	case KindFixedBytes:
		return c.decodeFixedBytes(reader, typ)
	case KindAddress:
		return c.decodeAddress(reader)
	case KindOption:
		return c.decodeOption(reader, typ)
	case KindTuple:
		return c.decodeTuple(reader, typ)
	case KindList:
		return c.decodeList(reader, typ)
	case KindMap:
		return c.decodeMap(reader, typ)
	case KindStruct:
		return c.decodeStruct(reader, typ)
	case KindEnum:
		return c.decodeEnum(reader, typ)
	case KindUnion:
		return c.decodeUnion(reader, typ)
	case KindAny:
		return c.decodeAny(reader)
	default:
		return nil, fmt.Errorf("%w: unsupported kind %s", ErrTypeMismatch, typ.Kind)
	}
}

// IsInterfaceNil returns true if there is no value under the interface
func (c *codec) IsInterfaceNil() bool {
	return c == nil
}
