package scval

import (
	"bytes"
	"fmt"
	"io"
)

func (c *codec) encodeStruct(writer io.Writer, value StructValue, typ *TypeDescriptor) error {
	for i, field := range value.Fields {
		err := c.doEncode(writer, field.Value, typ.Fields[i].Type)
		if err != nil {
			return fmt.Errorf("field %s: %w", field.Name, err)
		}
	}

	return nil
}

func (c *codec) decodeStruct(reader *bytes.Reader, typ *TypeDescriptor) (Value, error) {
	fields := make([]Field, 0, len(typ.Fields))
	for _, fieldType := range typ.Fields {
		fieldValue, err := c.doDecode(reader, fieldType.Type)
		if err != nil {
			return nil, fmt.Errorf("field %s.%s: %w", typ.Name, fieldType.Name, err)
		}

		fields = append(fields, Field{Name: fieldType.Name, Value: fieldValue})
	}

	return StructValue{Fields: fields}, nil
}
