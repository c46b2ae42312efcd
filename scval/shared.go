package scval

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

type fixedWidthNumber interface {
	~uint8 | ~uint32 | ~int32 | ~uint64 | ~int64
}

func (c *codec) encodeNumber(writer io.Writer, value any) error {
	return binary.Write(writer, binary.BigEndian, value)
}

func decodeNumber[T fixedWidthNumber](reader *bytes.Reader) (T, error) {
	var n T

	data, err := readBytesExactly(reader, binary.Size(n))
	if err != nil {
		return n, err
	}

	err = binary.Read(bytes.NewReader(data), binary.BigEndian, &n)
	if err != nil {
		return n, err
	}

	return n, nil
}

func (c *codec) encodeLength(writer io.Writer, length int) error {
	if uint64(length) > math.MaxUint32 {
		return fmt.Errorf("%w: length %d does not fit the length prefix", ErrTypeMismatch, length)
	}

	return c.encodeNumber(writer, uint32(length))
}

func (c *codec) decodeLength(reader *bytes.Reader) (int, error) {
	length, err := decodeNumber[uint32](reader)
	if err != nil {
		return 0, err
	}

	return int(length), nil
}

func (c *codec) encodeLengthPrefixed(writer io.Writer, data []byte) error {
	err := c.encodeLength(writer, len(data))
	if err != nil {
		return err
	}

	_, err = writer.Write(data)
	return err
}

func (c *codec) decodeLengthPrefixed(reader *bytes.Reader) ([]byte, error) {
	length, err := c.decodeLength(reader)
	if err != nil {
		return nil, err
	}

	return readBytesExactly(reader, length)
}

// readBytesExactly never allocates more than what is left in the reader
func readBytesExactly(reader *bytes.Reader, numBytes int) ([]byte, error) {
	if numBytes == 0 {
		return []byte{}, nil
	}

	if numBytes < 0 || numBytes > reader.Len() {
		return nil, fmt.Errorf("%w: wanted %d bytes, only %d left", ErrTruncatedInput, numBytes, reader.Len())
	}

	data := make([]byte, numBytes)
	_, err := io.ReadFull(reader, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTruncatedInput, err)
	}

	return data, nil
}

// checkRemainingItems rejects counts that cannot possibly be satisfied by the bytes left, given that every
// item takes at least minItemSize bytes. Items that may take no bytes are capped at maxZeroSizeItems.
func checkRemainingItems(reader *bytes.Reader, count int, minItemSize int) error {
	if minItemSize == 0 {
		if count > maxZeroSizeItems {
			return fmt.Errorf("%w: %d zero-size items announced, at most %d allowed", ErrTooManyItems, count, maxZeroSizeItems)
		}

		return nil
	}

	if count > reader.Len()/minItemSize {
		return fmt.Errorf("%w: %d items announced, only %d bytes left", ErrTruncatedInput, count, reader.Len())
	}

	return nil
}

// itemsCapacity bounds the preallocation made for a decoded count by the bytes left in the reader
func itemsCapacity(reader *bytes.Reader, count int) int {
	return min(count, reader.Len())
}
