package scval

// ValuesCodec defines the operations of a codec translating values to and from bytes, against declared types
type ValuesCodec interface {
	Encode(value Value, typ *TypeDescriptor) ([]byte, error)
	Decode(data []byte, typ *TypeDescriptor) (Value, error)
	DecodeWithRemainder(data []byte, typ *TypeDescriptor) (Value, []byte, error)
	Validate(value Value, typ *TypeDescriptor) error
	IsInterfaceNil() bool
}
