package strkey

import (
	"errors"
	"fmt"

	stellarstrkey "github.com/stellar/go/strkey"
)

// VersionByte is the first byte of a decoded strkey, selecting the leading character of its text form
type VersionByte byte

const (
	// VersionByteAccountID is the version of account addresses, rendered with a leading G
	VersionByteAccountID = VersionByte(stellarstrkey.VersionByteAccountID)
	// VersionByteContract is the version of contract addresses, rendered with a leading C
	VersionByteContract = VersionByte(stellarstrkey.VersionByteContract)
)

// PayloadLength is the number of bytes carried by an address strkey
const PayloadLength = 32

// ErrInvalidStrkey signals that the text is not a well formed strkey or that its checksum does not match
var ErrInvalidStrkey = errors.New("invalid strkey")

// ErrInvalidVersion signals that the strkey version byte is not an address version
var ErrInvalidVersion = errors.New("invalid strkey version byte")

// Encode renders the payload as an address strkey of the provided version
func Encode(version VersionByte, payload []byte) (string, error) {
	err := checkVersion(version)
	if err != nil {
		return "", err
	}
	err = checkPayloadLength(payload)
	if err != nil {
		return "", err
	}

	encoded, err := stellarstrkey.Encode(stellarstrkey.VersionByte(version), payload)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidStrkey, err)
	}

	return encoded, nil
}

// Decode parses an address strkey, returning its version and payload
func Decode(text string) (VersionByte, []byte, error) {
	stellarVersion, payload, err := stellarstrkey.DecodeAny(text)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %v", ErrInvalidStrkey, err)
	}

	version := VersionByte(stellarVersion)
	err = checkVersion(version)
	if err != nil {
		return 0, nil, err
	}
	err = checkPayloadLength(payload)
	if err != nil {
		return 0, nil, err
	}

	return version, payload, nil
}

func checkVersion(version VersionByte) error {
	switch version {
	case VersionByteAccountID, VersionByteContract:
		return nil
	default:
		return fmt.Errorf("%w: %d", ErrInvalidVersion, version)
	}
}

func checkPayloadLength(payload []byte) error {
	if len(payload) != PayloadLength {
		return fmt.Errorf("%w: payload must have %d bytes, got %d", ErrInvalidStrkey, PayloadLength, len(payload))
	}

	return nil
}
