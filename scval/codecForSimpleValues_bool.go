package scval

import (
	"bytes"
	"fmt"
	"io"
)

func (c *codec) encodeBool(writer io.Writer, value BoolValue) error {
	data := byte(boolFalse)
	if value.Value {
		data = boolTrue
	}

	_, err := writer.Write([]byte{data})
	return err
}

func (c *codec) decodeBool(reader *bytes.Reader) (Value, error) {
	data, err := decodeNumber[uint8](reader)
	if err != nil {
		return nil, err
	}

	switch data {
	case boolFalse:
		return BoolValue{Value: false}, nil
	case boolTrue:
		return BoolValue{Value: true}, nil
	default:
		return nil, fmt.Errorf("%w: unexpected boolean flag %d", ErrInvalidDiscriminant, data)
	}
}
