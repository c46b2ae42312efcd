package scval

import (
	"bytes"
	"fmt"
	"io"
)

func (c *codec) encodeOption(writer io.Writer, value OptionValue, typ *TypeDescriptor) error {
	if !value.IsSet() {
		_, err := writer.Write([]byte{optionMarkerAbsent})
		return err
	}

	_, err := writer.Write([]byte{optionMarkerPresent})
	if err != nil {
		return err
	}

	return c.doEncode(writer, value.Value, typ.Elem)
}

func (c *codec) decodeOption(reader *bytes.Reader, typ *TypeDescriptor) (Value, error) {
	marker, err := decodeNumber[uint8](reader)
	if err != nil {
		return nil, err
	}

	switch marker {
	case optionMarkerAbsent:
		return OptionValue{}, nil
	case optionMarkerPresent:
		inner, err := c.doDecode(reader, typ.Elem)
		if err != nil {
			return nil, err
		}

		return OptionValue{Value: inner}, nil
	default:
		return nil, fmt.Errorf("%w: unexpected option marker %d", ErrInvalidDiscriminant, marker)
	}
}
