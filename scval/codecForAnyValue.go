package scval

import (
	"bytes"
	"fmt"
	"io"
)

// encodeAny writes the kind tag of the scalar value, followed by its encoding
func (c *codec) encodeAny(writer io.Writer, value Value) error {
	typ, err := TypeScalar(value.Kind())
	if err != nil {
		return err
	}

	_, err = writer.Write([]byte{byte(value.Kind())})
	if err != nil {
		return err
	}

	return c.doEncode(writer, value, typ)
}

func (c *codec) decodeAny(reader *bytes.Reader) (Value, error) {
	tag, err := decodeNumber[uint8](reader)
	if err != nil {
		return nil, err
	}

	kind := Kind(tag)
	if !kind.IsScalar() {
		return nil, fmt.Errorf("%w: %d is not the tag of a scalar kind", ErrInvalidDiscriminant, tag)
	}

	typ, err := TypeScalar(kind)
	if err != nil {
		return nil, err
	}

	return c.doDecode(reader, typ)
}
