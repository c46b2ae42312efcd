package scval

import (
	"bytes"
	"fmt"
	"unicode/utf8"
)

func (c *codec) decodeSymbol(reader *bytes.Reader) (Value, error) {
	data, err := c.decodeLengthPrefixed(reader)
	if err != nil {
		return nil, err
	}

	err = checkSymbol(string(data))
	if err != nil {
		return nil, err
	}

	return SymbolValue{Value: string(data)}, nil
}

func (c *codec) decodeString(reader *bytes.Reader) (Value, error) {
	data, err := c.decodeLengthPrefixed(reader)
	if err != nil {
		return nil, err
	}

	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: string is not valid UTF-8", ErrTypeMismatch)
	}

	return StringValue{Value: string(data)}, nil
}

func (c *codec) decodeFixedBytes(reader *bytes.Reader, typ *TypeDescriptor) (Value, error) {
	length, err := c.decodeLength(reader)
	if err != nil {
		return nil, err
	}

	if length != int(typ.Length) {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrLengthMismatch, typ.Length, length)
	}

	data, err := readBytesExactly(reader, length)
	if err != nil {
		return nil, err
	}

	return FixedBytesValue{Value: data}, nil
}

func checkSymbol(symbol string) error {
	if len(symbol) > maxSymbolLength {
		return fmt.Errorf("%w: symbol longer than %d characters", ErrTypeMismatch, maxSymbolLength)
	}

	for i := 0; i < len(symbol); i++ {
		if !isSymbolCharacter(symbol[i]) {
			return fmt.Errorf("%w: invalid symbol character %q", ErrTypeMismatch, symbol[i])
		}
	}

	return nil
}

func isSymbolCharacter(ch byte) bool {
	return ch == '_' ||
		(ch >= 'a' && ch <= 'z') ||
		(ch >= 'A' && ch <= 'Z') ||
		(ch >= '0' && ch <= '9')
}
