package scval

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/multiversx/mx-chain-core-go/core/check"
)

type serializer struct {
	codec ValuesCodec
}

// NewSerializer creates a serializer of argument lists: each value is encoded by the codec into one part,
// and the parts are joined as hex strings separated by "@"
func NewSerializer(codec ValuesCodec) (*serializer, error) {
	if check.IfNil(codec) {
		return nil, ErrNilCodec
	}

	return &serializer{
		codec: codec,
	}, nil
}

// Serialize encodes the values, each against its type, and joins the hex-encoded parts
func (s *serializer) Serialize(values []Value, types []*TypeDescriptor) (string, error) {
	parts, err := s.SerializeToParts(values, types)
	if err != nil {
		return "", err
	}

	return s.encodeParts(parts), nil
}

// SerializeToParts encodes the values, each against its type, into one part per value
func (s *serializer) SerializeToParts(values []Value, types []*TypeDescriptor) ([][]byte, error) {
	if len(values) != len(types) {
		return nil, fmt.Errorf("%w: %d values, %d types", ErrArgumentsCountMismatch, len(values), len(types))
	}

	parts := make([][]byte, 0, len(values))
	for i, value := range values {
		part, err := s.codec.Encode(value, types[i])
		if err != nil {
			return nil, fmt.Errorf("part %d: %w", i, err)
		}

		parts = append(parts, part)
	}

	return parts, nil
}

// Deserialize splits the hex-encoded parts and decodes each of them against its type
func (s *serializer) Deserialize(data string, types []*TypeDescriptor) ([]Value, error) {
	parts, err := s.decodeIntoParts(data)
	if err != nil {
		return nil, err
	}

	if len(types) == 0 && len(parts) == 1 && len(parts[0]) == 0 {
		parts = nil
	}

	return s.DeserializeParts(parts, types)
}

// DeserializeParts decodes each part against its type. Every part must be consumed entirely.
func (s *serializer) DeserializeParts(parts [][]byte, types []*TypeDescriptor) ([]Value, error) {
	if len(parts) != len(types) {
		return nil, fmt.Errorf("%w: %d parts, %d types", ErrArgumentsCountMismatch, len(parts), len(types))
	}

	values := make([]Value, 0, len(parts))
	for i, part := range parts {
		value, err := s.codec.Decode(part, types[i])
		if err != nil {
			return nil, fmt.Errorf("part %d: %w", i, err)
		}

		values = append(values, value)
	}

	return values, nil
}

func (s *serializer) encodeParts(parts [][]byte) string {
	partsHex := make([]string, len(parts))

	for i, part := range parts {
		partsHex[i] = hex.EncodeToString(part)
	}

	return strings.Join(partsHex, partsSeparator)
}

func (s *serializer) decodeIntoParts(encoded string) ([][]byte, error) {
	partsHex := strings.Split(encoded, partsSeparator)
	parts := make([][]byte, len(partsHex))

	for i, partHex := range partsHex {
		part, err := hex.DecodeString(partHex)
		if err != nil {
			return nil, err
		}

		parts[i] = part
	}

	return parts, nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (s *serializer) IsInterfaceNil() bool {
	return s == nil
}
