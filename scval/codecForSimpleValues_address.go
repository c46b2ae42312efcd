package scval

import (
	"bytes"
	"fmt"
	"io"
)

func (c *codec) encodeAddress(writer io.Writer, value AddressValue) error {
	_, err := writer.Write([]byte{byte(value.Type)})
	if err != nil {
		return err
	}

	_, err = writer.Write(value.Value)
	return err
}

func (c *codec) decodeAddress(reader *bytes.Reader) (Value, error) {
	addressType, err := decodeNumber[uint8](reader)
	if err != nil {
		return nil, err
	}

	err = checkAddressType(AddressType(addressType))
	if err != nil {
		return nil, err
	}

	data, err := readBytesExactly(reader, addressLength)
	if err != nil {
		return nil, err
	}

	return AddressValue{Type: AddressType(addressType), Value: data}, nil
}

func checkAddressType(addressType AddressType) error {
	switch addressType {
	case AddressTypeAccount, AddressTypeContract:
		return nil
	default:
		return fmt.Errorf("%w: unknown address type %d", ErrInvalidDiscriminant, addressType)
	}
}

func checkAddressLength(data []byte) error {
	if len(data) != addressLength {
		return fmt.Errorf("%w: address must have %d bytes, got %d", ErrTypeMismatch, addressLength, len(data))
	}

	return nil
}
