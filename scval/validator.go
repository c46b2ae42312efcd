package scval

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Validate checks that the value has exactly the shape declared by the type, without encoding it
func (c *codec) Validate(value Value, typ *TypeDescriptor) error {
	if typ == nil {
		return ErrNilTypeDescriptor
	}

	err := c.doValidate(value, typ)
	if err != nil {
		return fmt.Errorf("invalid %s value: %w", typ, err)
	}

	return nil
}

func (c *codec) doValidate(value Value, typ *TypeDescriptor) error {
	if typ == nil {
		return ErrNilTypeDescriptor
	}
	if value == nil {
		return fmt.Errorf("%w: %w", ErrTypeMismatch, ErrNilValue)
	}

	err := checkConcreteValue(value)
	if err != nil {
		return err
	}

	if typ.Kind == KindAny {
		if !value.Kind().IsScalar() {
			return fmt.Errorf("%w: Val cannot hold a %s", ErrTypeMismatch, value.Kind())
		}

		scalarType, err := TypeScalar(value.Kind())
		if err != nil {
			return err
		}

		typ = scalarType
	}

	if value.Kind() != typ.Kind {
		return fmt.Errorf("%w: expected %s, got %s", ErrTypeMismatch, typ.Kind, value.Kind())
	}

	switch v := value.(type) {
	case SymbolValue:
		return checkSymbol(v.Value)
	case StringValue:
		if !utf8.ValidString(v.Value) {
			return fmt.Errorf("%w: string is not valid UTF-8", ErrTypeMismatch)
		}
	case FixedBytesValue:
		if len(v.Value) != int(typ.Length) {
			return fmt.Errorf("%w: expected %d bytes, got %d", ErrTypeMismatch, typ.Length, len(v.Value))
		}
	case AddressValue:
		if checkAddressType(v.Type) != nil {
			return fmt.Errorf("%w: unknown address type %d", ErrTypeMismatch, v.Type)
		}

		return checkAddressLength(v.Value)
	case OptionValue:
		if v.IsSet() {
			return c.doValidate(v.Value, typ.Elem)
		}
	case TupleValue:
		return c.validateItems(v.Items, typ.Items)
	case ListValue:
		for i, item := range v.Items {
			err := c.doValidate(item, typ.Elem)
			if err != nil {
				return fmt.Errorf("item %d: %w", i, err)
			}
		}
	case MapValue:
		return c.validateMap(v, typ)
	case StructValue:
		return c.validateStruct(v, typ)
	case EnumValue:
		_, ok := typ.CaseByValue(v.Discriminant)
		if !ok {
			return fmt.Errorf("%w: %d is not a case of %s", ErrTypeMismatch, v.Discriminant, typ.Name)
		}
	case UnionValue:
		if int64(v.Discriminant) >= int64(len(typ.Variants)) {
			return fmt.Errorf("%w: %s has no variant %d", ErrTypeMismatch, typ.Name, v.Discriminant)
		}

		variant := typ.Variants[v.Discriminant]
		err := c.validateItems(v.Items, variant.Items)
		if err != nil {
			return fmt.Errorf("variant %s::%s: %w", typ.Name, variant.Name, err)
		}
	}

	return nil
}

func (c *codec) validateItems(items []Value, types []*TypeDescriptor) error {
	if len(items) != len(types) {
		return fmt.Errorf("%w: expected %d items, got %d", ErrTypeMismatch, len(types), len(items))
	}

	for i, item := range items {
		err := c.doValidate(item, types[i])
		if err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
	}

	return nil
}

func (c *codec) validateMap(value MapValue, typ *TypeDescriptor) error {
	for i, entry := range value.Entries {
		err := c.doValidate(entry.Key, typ.Key)
		if err != nil {
			return fmt.Errorf("key %d: %w", i, err)
		}

		err = c.doValidate(entry.Value, typ.Val)
		if err != nil {
			return fmt.Errorf("value %d: %w", i, err)
		}
	}

	_, err := c.sortEntries(value.Entries, typ.Key)
	if errors.Is(err, ErrDuplicateKey) {
		return fmt.Errorf("%w: %w", ErrTypeMismatch, err)
	}

	return err
}

func (c *codec) validateStruct(value StructValue, typ *TypeDescriptor) error {
	if len(value.Fields) != len(typ.Fields) {
		return fmt.Errorf("%w: %s has %d fields, got %d", ErrTypeMismatch, typ.Name, len(typ.Fields), len(value.Fields))
	}

	for i, field := range value.Fields {
		declared := typ.Fields[i]
		if field.Name != declared.Name {
			return fmt.Errorf("%w: field %d of %s is %s, got %s", ErrTypeMismatch, i, typ.Name, declared.Name, field.Name)
		}

		err := c.doValidate(field.Value, declared.Type)
		if err != nil {
			return fmt.Errorf("field %s.%s: %w", typ.Name, declared.Name, err)
		}
	}

	return nil
}

// checkConcreteValue rejects the pointer forms of the value types, which satisfy Value through their method sets
func checkConcreteValue(value Value) error {
	switch value.(type) {
	case VoidValue, BoolValue,
		U32Value, I32Value, U64Value, I64Value,
		U128Value, I128Value, U256Value, I256Value,
		TimepointValue, DurationValue,
		SymbolValue, StringValue, BytesValue, FixedBytesValue, AddressValue,
		OptionValue, TupleValue, ListValue, MapValue,
		StructValue, EnumValue, UnionValue:
		return nil
	default:
		return fmt.Errorf("%w: %T is not a value type", ErrTypeMismatch, value)
	}
}
