package scval

const (
	// addressLength is the number of bytes of an account public key or of a contract hash
	addressLength = 32

	// maxSymbolLength is the maximum number of bytes of a Symbol
	maxSymbolLength = 32

	// maxZeroSizeItems bounds the count of a list or map whose items may encode to no bytes at all
	maxZeroSizeItems = 1 << 16

	// partsSeparator separates the hex-encoded parts of serialized arguments
	partsSeparator = "@"

	optionMarkerAbsent  = 0x00
	optionMarkerPresent = 0x01

	boolFalse = 0x00
	boolTrue  = 0x01
)
