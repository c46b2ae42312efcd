package scval

import "errors"

// ErrTypeMismatch signals that a value does not have the shape declared by its type
var ErrTypeMismatch = errors.New("type mismatch")

// ErrTruncatedInput signals that fewer bytes are available than the declared shape requires
var ErrTruncatedInput = errors.New("truncated input")

// ErrInvalidDiscriminant signals that a decoded flag, ordinal or enum value is not among the declared ones
var ErrInvalidDiscriminant = errors.New("invalid discriminant")

// ErrLengthMismatch signals that a fixed-length byte sequence has a length different from the declared one
var ErrLengthMismatch = errors.New("length mismatch")

// ErrTooManyItems signals that a decoded list or map announces more items than allowed for its item type
var ErrTooManyItems = errors.New("too many items")

// ErrDuplicateKey signals that a map holds two equal keys
var ErrDuplicateKey = errors.New("duplicate key")

// ErrTrailingData signals that bytes are left over after decoding a complete value
var ErrTrailingData = errors.New("trailing data after decoded value")

// ErrNilTypeDescriptor signals that a nil type descriptor has been provided
var ErrNilTypeDescriptor = errors.New("nil type descriptor")

// ErrNilValue signals that a nil value has been provided where a value is required
var ErrNilValue = errors.New("nil value")

// ErrNumberOutOfRange signals that a number does not fit the width of the requested integer kind
var ErrNumberOutOfRange = errors.New("number out of range")

// ErrArgumentsCountMismatch signals that the number of values differs from the number of types
var ErrArgumentsCountMismatch = errors.New("values count does not match types count")

// ErrNilCodec signals that a nil codec has been provided
var ErrNilCodec = errors.New("nil codec")
