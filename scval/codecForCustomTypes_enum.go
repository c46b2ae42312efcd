package scval

import (
	"bytes"
	"fmt"
	"io"
)

func (c *codec) decodeEnum(reader *bytes.Reader, typ *TypeDescriptor) (Value, error) {
	discriminant, err := decodeNumber[uint32](reader)
	if err != nil {
		return nil, err
	}

	_, ok := typ.CaseByValue(discriminant)
	if !ok {
		return nil, fmt.Errorf("%w: %d is not a case of %s", ErrInvalidDiscriminant, discriminant, typ.Name)
	}

	return EnumValue{Discriminant: discriminant}, nil
}

func (c *codec) encodeUnion(writer io.Writer, value UnionValue, typ *TypeDescriptor) error {
	err := c.encodeNumber(writer, value.Discriminant)
	if err != nil {
		return err
	}

	variant := typ.Variants[value.Discriminant]

	return c.encodeItems(writer, value.Items, variant.Items)
}

func (c *codec) decodeUnion(reader *bytes.Reader, typ *TypeDescriptor) (Value, error) {
	discriminant, err := decodeNumber[uint32](reader)
	if err != nil {
		return nil, err
	}

	if int64(discriminant) >= int64(len(typ.Variants)) {
		return nil, fmt.Errorf("%w: %d, %s has %d variants", ErrInvalidDiscriminant, discriminant, typ.Name, len(typ.Variants))
	}

	variant := typ.Variants[discriminant]
	items, err := c.decodeItems(reader, variant.Items)
	if err != nil {
		return nil, fmt.Errorf("variant %s::%s: %w", typ.Name, variant.Name, err)
	}

	return UnionValue{Discriminant: discriminant, Items: items}, nil
}
