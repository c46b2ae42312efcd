package strkey

import (
	"testing"

	stellarstrkey "github.com/stellar/go/strkey"
	"github.com/stretchr/testify/require"
)

func sequentialPayload() []byte {
	payload := make([]byte, PayloadLength)
	for i := range payload {
		payload[i] = byte(i)
	}

	return payload
}

func TestEncode(t *testing.T) {
	t.Parallel()

	t.Run("null account should work", func(t *testing.T) {
		t.Parallel()

		encoded, err := Encode(VersionByteAccountID, make([]byte, PayloadLength))
		require.Nil(t, err)
		require.Equal(t, "GAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAWHF", encoded)
	})
	t.Run("null contract should work", func(t *testing.T) {
		t.Parallel()

		encoded, err := Encode(VersionByteContract, make([]byte, PayloadLength))
		require.Nil(t, err)
		require.Equal(t, "CAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAABSC4", encoded)
	})
	t.Run("non-zero payload should work", func(t *testing.T) {
		t.Parallel()

		encoded, err := Encode(VersionByteAccountID, sequentialPayload())
		require.Nil(t, err)
		require.Equal(t, "GAAACAQDAQCQMBYIBEFAWDANBYHRAEISCMKBKFQXDAMRUGY4DUPB7JZX", encoded)
	})
	t.Run("wrong payload length should error", func(t *testing.T) {
		t.Parallel()

		encoded, err := Encode(VersionByteAccountID, make([]byte, 31))
		require.ErrorIs(t, err, ErrInvalidStrkey)
		require.Empty(t, encoded)
	})
	t.Run("unknown version should error", func(t *testing.T) {
		t.Parallel()

		encoded, err := Encode(VersionByte(18<<3), make([]byte, PayloadLength))
		require.ErrorIs(t, err, ErrInvalidVersion)
		require.Empty(t, encoded)
	})
}

func TestDecode(t *testing.T) {
	t.Parallel()

	t.Run("round trip should work", func(t *testing.T) {
		t.Parallel()

		version, payload, err := Decode("GAAACAQDAQCQMBYIBEFAWDANBYHRAEISCMKBKFQXDAMRUGY4DUPB7JZX")
		require.Nil(t, err)
		require.Equal(t, VersionByteAccountID, version)
		require.Equal(t, sequentialPayload(), payload)
	})
	t.Run("contract should work", func(t *testing.T) {
		t.Parallel()

		version, payload, err := Decode("CAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAABSC4")
		require.Nil(t, err)
		require.Equal(t, VersionByteContract, version)
		require.Equal(t, make([]byte, PayloadLength), payload)
	})
	t.Run("altered checksum should error", func(t *testing.T) {
		t.Parallel()

		_, _, err := Decode("GAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAWHG")
		require.ErrorIs(t, err, ErrInvalidStrkey)
	})
	t.Run("altered payload should error", func(t *testing.T) {
		t.Parallel()

		_, _, err := Decode("GAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAABAAAAAAAAAAAAWHF")
		require.ErrorIs(t, err, ErrInvalidStrkey)
	})
	t.Run("seed strkey should error", func(t *testing.T) {
		t.Parallel()

		seed, err := stellarstrkey.Encode(stellarstrkey.VersionByteSeed, make([]byte, PayloadLength))
		require.Nil(t, err)

		_, _, err = Decode(seed)
		require.ErrorIs(t, err, ErrInvalidVersion)
	})
	t.Run("not base32 should error", func(t *testing.T) {
		t.Parallel()

		_, _, err := Decode("not a strkey")
		require.ErrorIs(t, err, ErrInvalidStrkey)
	})
	t.Run("short text should error", func(t *testing.T) {
		t.Parallel()

		_, _, err := Decode("GAAAAAAA")
		require.ErrorIs(t, err, ErrInvalidStrkey)
	})
}
