package scval

import (
	"bytes"
	"fmt"
	"io"

	"golang.org/x/exp/slices"
)

type encodedEntry struct {
	key   []byte
	entry MapEntry
}

func (c *codec) encodeMap(writer io.Writer, value MapValue, typ *TypeDescriptor) error {
	sorted, err := c.sortEntries(value.Entries, typ.Key)
	if err != nil {
		return err
	}

	err = c.encodeLength(writer, len(sorted))
	if err != nil {
		return err
	}

	for _, item := range sorted {
		_, err = writer.Write(item.key)
		if err != nil {
			return err
		}

		err = c.doEncode(writer, item.entry.Value, typ.Val)
		if err != nil {
			return err
		}
	}

	return nil
}

// sortEntries orders the entries by their encoded keys, whatever the input order was
func (c *codec) sortEntries(entries []MapEntry, keyType *TypeDescriptor) ([]encodedEntry, error) {
	sorted := make([]encodedEntry, 0, len(entries))
	for _, entry := range entries {
		buffer := bytes.NewBuffer(nil)
		err := c.doEncode(buffer, entry.Key, keyType)
		if err != nil {
			return nil, err
		}

		sorted = append(sorted, encodedEntry{key: buffer.Bytes(), entry: entry})
	}

	slices.SortStableFunc(sorted, compareEncodedKeys)

	for i := 1; i < len(sorted); i++ {
		if bytes.Equal(sorted[i-1].key, sorted[i].key) {
			return nil, fmt.Errorf("%w: key %x appears more than once", ErrDuplicateKey, sorted[i].key)
		}
	}

	return sorted, nil
}

func (c *codec) decodeMap(reader *bytes.Reader, typ *TypeDescriptor) (Value, error) {
	count, err := c.decodeLength(reader)
	if err != nil {
		return nil, err
	}

	err = checkRemainingItems(reader, count, minEncodedSize(typ.Key)+minEncodedSize(typ.Val))
	if err != nil {
		return nil, err
	}
	if count > 1 && minEncodedSize(typ.Key) == 0 {
		return nil, fmt.Errorf("%w: %d keys announced for a key type that encodes to no bytes", ErrDuplicateKey, count)
	}

	decoded := make([]encodedEntry, 0, itemsCapacity(reader, count))
	for i := 0; i < count; i++ {
		offset := reader.Size() - int64(reader.Len())
		key, err := c.doDecode(reader, typ.Key)
		if err != nil {
			return nil, fmt.Errorf("key %d: %w", i, err)
		}
		keyEnd := reader.Size() - int64(reader.Len())

		value, err := c.doDecode(reader, typ.Val)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i, err)
		}

		keyBytes, err := sliceOfReader(reader, offset, keyEnd)
		if err != nil {
			return nil, err
		}

		decoded = append(decoded, encodedEntry{key: keyBytes, entry: MapEntry{Key: key, Value: value}})
	}

	slices.SortStableFunc(decoded, compareEncodedKeys)

	entries := make([]MapEntry, 0, len(decoded))
	for i, item := range decoded {
		if i > 0 && bytes.Equal(decoded[i-1].key, item.key) {
			return nil, fmt.Errorf("%w: key %x appears more than once", ErrDuplicateKey, item.key)
		}

		entries = append(entries, item.entry)
	}

	return MapValue{Entries: entries}, nil
}

func compareEncodedKeys(a encodedEntry, b encodedEntry) int {
	return bytes.Compare(a.key, b.key)
}

// sliceOfReader returns a copy of the bytes found between two absolute offsets of the reader
func sliceOfReader(reader *bytes.Reader, start int64, end int64) ([]byte, error) {
	data := make([]byte, end-start)
	_, err := reader.ReadAt(data, start)
	if err != nil && len(data) > 0 {
		return nil, fmt.Errorf("%w: %v", ErrTruncatedInput, err)
	}

	return data, nil
}
