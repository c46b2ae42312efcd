package scval

import (
	"bytes"
	"fmt"
	"io"
)

func (c *codec) encodeTuple(writer io.Writer, value TupleValue, typ *TypeDescriptor) error {
	return c.encodeItems(writer, value.Items, typ.Items)
}

func (c *codec) encodeItems(writer io.Writer, items []Value, types []*TypeDescriptor) error {
	for i, item := range items {
		err := c.doEncode(writer, item, types[i])
		if err != nil {
			return err
		}
	}

	return nil
}

func (c *codec) decodeTuple(reader *bytes.Reader, typ *TypeDescriptor) (Value, error) {
	items, err := c.decodeItems(reader, typ.Items)
	if err != nil {
		return nil, err
	}

	return TupleValue{Items: items}, nil
}

func (c *codec) decodeItems(reader *bytes.Reader, types []*TypeDescriptor) ([]Value, error) {
	items := make([]Value, 0, len(types))
	for i, itemType := range types {
		item, err := c.doDecode(reader, itemType)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}

		items = append(items, item)
	}

	return items, nil
}

func (c *codec) encodeList(writer io.Writer, value ListValue, typ *TypeDescriptor) error {
	err := c.encodeLength(writer, len(value.Items))
	if err != nil {
		return err
	}

	for _, item := range value.Items {
		err = c.doEncode(writer, item, typ.Elem)
		if err != nil {
			return err
		}
	}

	return nil
}

func (c *codec) decodeList(reader *bytes.Reader, typ *TypeDescriptor) (Value, error) {
	count, err := c.decodeLength(reader)
	if err != nil {
		return nil, err
	}

	err = checkRemainingItems(reader, count, minEncodedSize(typ.Elem))
	if err != nil {
		return nil, err
	}

	items := make([]Value, 0, itemsCapacity(reader, count))
	for i := 0; i < count; i++ {
		item, err := c.doDecode(reader, typ.Elem)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}

		items = append(items, item)
	}

	return ListValue{Items: items}, nil
}

// minEncodedSize returns the least number of bytes any value of the type encodes to
func minEncodedSize(typ *TypeDescriptor) int {
	if typ == nil {
		return 0
	}

	switch typ.Kind {
	case KindBool, KindOption, KindAny:
		return 1
	case KindU32, KindI32, KindSymbol, KindString, KindBytes, KindList, KindMap, KindEnum, KindUnion:
		return 4
	case KindU64, KindI64, KindTimepoint, KindDuration:
		return 8
	case KindU128, KindI128:
		return 16
	case KindU256, KindI256:
		return 32
	case KindFixedBytes:
		return 4 + int(typ.Length)
	case KindAddress:
		return 1 + addressLength
	case KindTuple:
		size := 0
		for _, item := range typ.Items {
			size += minEncodedSize(item)
		}

		return size
	case KindStruct:
		size := 0
		for _, field := range typ.Fields {
			size += minEncodedSize(field.Type)
		}

		return size
	default:
		return 0
	}
}
