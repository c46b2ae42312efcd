package binding

import (
	"encoding/hex"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/multiversx/mx-contract-fixtures-go/scval"
	"github.com/multiversx/mx-contract-fixtures-go/strkey"
)

// FromNative builds a value of the provided type from JSON-shaped Go data. The result is validated against the type.
func FromNative(typ *scval.TypeDescriptor, native any) (scval.Value, error) {
	if typ == nil {
		return nil, scval.ErrNilTypeDescriptor
	}

	value, err := fromNative(typ, native)
	if err != nil {
		return nil, fmt.Errorf("cannot build %s from %T: %w", typ, native, err)
	}

	err = scval.NewCodec().Validate(value, typ)
	if err != nil {
		return nil, err
	}

	return value, nil
}

func fromNative(typ *scval.TypeDescriptor, native any) (scval.Value, error) {
	if value, ok := native.(scval.Value); ok {
		return value, nil
	}

	switch typ.Kind {
	case scval.KindVoid:
		if native != nil {
			return nil, fmt.Errorf("%w: void must be null", scval.ErrTypeMismatch)
		}

		return scval.VoidValue{}, nil
	case scval.KindBool:
		b, ok := native.(bool)
		if !ok {
			return nil, mismatch(typ, native)
		}

		return scval.BoolValue{Value: b}, nil
	case scval.KindU32, scval.KindI32, scval.KindU64, scval.KindI64,
		scval.KindTimepoint, scval.KindDuration,
		scval.KindU128, scval.KindI128, scval.KindU256, scval.KindI256:
		return numberToValue(typ.Kind, native)
	case scval.KindSymbol:
		text, ok := native.(string)
		if !ok {
			return nil, mismatch(typ, native)
		}

		return scval.SymbolValue{Value: text}, nil
	case scval.KindString:
		text, ok := native.(string)
		if !ok {
			return nil, mismatch(typ, native)
		}

		return scval.StringValue{Value: text}, nil
	case scval.KindBytes:
		data, err := bytesFromNative(typ, native)
		if err != nil {
			return nil, err
		}

		return scval.BytesValue{Value: data}, nil
	case scval.KindFixedBytes:
		data, err := bytesFromNative(typ, native)
		if err != nil {
			return nil, err
		}

		return scval.FixedBytesValue{Value: data}, nil
	case scval.KindAddress:
		return addressFromNative(typ, native)
	case scval.KindOption:
		if native == nil {
			return scval.OptionValue{}, nil
		}

		inner, err := fromNative(typ.Elem, native)
		if err != nil {
			return nil, err
		}

		return scval.OptionValue{Value: inner}, nil
	case scval.KindTuple:
		items, err := itemsFromNative(typ.Items, native)
		if err != nil {
			return nil, err
		}

		return scval.TupleValue{Items: items}, nil
	case scval.KindList:
		return listFromNative(typ, native)
	case scval.KindMap:
		return mapFromNative(typ, native)
	case scval.KindStruct:
		return structFromNative(typ, native)
	case scval.KindEnum:
		return enumFromNative(typ, native)
	case scval.KindUnion:
		return unionFromNative(typ, native)
	case scval.KindAny:
		return anyFromNative(native)
	default:
		return nil, fmt.Errorf("%w: unsupported kind %s", scval.ErrTypeMismatch, typ.Kind)
	}
}

func mismatch(typ *scval.TypeDescriptor, native any) error {
	return fmt.Errorf("%w: %s cannot be built from %T", scval.ErrTypeMismatch, typ, native)
}

func bytesFromNative(typ *scval.TypeDescriptor, native any) ([]byte, error) {
	switch data := native.(type) {
	case []byte:
		return data, nil
	case string:
		decoded, err := hex.DecodeString(strings.TrimPrefix(data, "0x"))
		if err != nil {
			return nil, fmt.Errorf("%w: %s expects hex: %v", scval.ErrTypeMismatch, typ, err)
		}

		return decoded, nil
	default:
		rv := reflect.ValueOf(native)
		if rv.IsValid() && rv.Kind() == reflect.Array && rv.Type().Elem().Kind() == reflect.Uint8 {
			data := make([]byte, rv.Len())
			reflect.Copy(reflect.ValueOf(data), rv)

			return data, nil
		}

		return nil, mismatch(typ, native)
	}
}

func addressFromNative(typ *scval.TypeDescriptor, native any) (scval.Value, error) {
	text, ok := native.(string)
	if !ok {
		return nil, mismatch(typ, native)
	}

	version, payload, err := strkey.Decode(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", scval.ErrTypeMismatch, err)
	}

	addressType := scval.AddressTypeAccount
	if version == strkey.VersionByteContract {
		addressType = scval.AddressTypeContract
	}

	return scval.AddressValue{Type: addressType, Value: payload}, nil
}

// asSlice accepts []any as well as any other slice or array, except byte slices
func asSlice(native any) ([]any, bool) {
	if items, ok := native.([]any); ok {
		return items, true
	}

	rv := reflect.ValueOf(native)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return nil, false
	}
	if rv.Type().Elem().Kind() == reflect.Uint8 {
		return nil, false
	}

	items := make([]any, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}

	return items, true
}

func itemsFromNative(types []*scval.TypeDescriptor, native any) ([]scval.Value, error) {
	natives, ok := asSlice(native)
	if !ok {
		return nil, fmt.Errorf("%w: expected %d items, got %T", scval.ErrTypeMismatch, len(types), native)
	}
	if len(natives) != len(types) {
		return nil, fmt.Errorf("%w: expected %d items, got %d", scval.ErrTypeMismatch, len(types), len(natives))
	}

	items := make([]scval.Value, 0, len(types))
	for i, itemType := range types {
		item, err := fromNative(itemType, natives[i])
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}

		items = append(items, item)
	}

	return items, nil
}

func listFromNative(typ *scval.TypeDescriptor, native any) (scval.Value, error) {
	natives, ok := asSlice(native)
	if !ok {
		return nil, mismatch(typ, native)
	}

	items := make([]scval.Value, 0, len(natives))
	for i, itemNative := range natives {
		item, err := fromNative(typ.Elem, itemNative)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}

		items = append(items, item)
	}

	return scval.ListValue{Items: items}, nil
}

// mapFromNative accepts a list of [key, value] pairs, or a JSON object when keys are textual
func mapFromNative(typ *scval.TypeDescriptor, native any) (scval.Value, error) {
	object, isObject := native.(map[string]any)
	if isObject {
		keys := make([]string, 0, len(object))
		for key := range object {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		pairs := make([]any, 0, len(keys))
		for _, key := range keys {
			pairs = append(pairs, []any{key, object[key]})
		}
		native = pairs
	} else if pairs, isGoMap := mapToPairs(native); isGoMap {
		native = pairs
	}

	natives, ok := asSlice(native)
	if !ok {
		return nil, mismatch(typ, native)
	}

	entries := make([]scval.MapEntry, 0, len(natives))
	for i, pairNative := range natives {
		pair, err := itemsFromNative([]*scval.TypeDescriptor{typ.Key, typ.Val}, pairNative)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}

		entries = append(entries, scval.MapEntry{Key: pair[0], Value: pair[1]})
	}

	return scval.CanonicalMap(entries, typ.Key)
}

func structFromNative(typ *scval.TypeDescriptor, native any) (scval.Value, error) {
	if _, isList := asSlice(native); isList {
		types := make([]*scval.TypeDescriptor, len(typ.Fields))
		for i, field := range typ.Fields {
			types[i] = field.Type
		}

		items, err := itemsFromNative(types, native)
		if err != nil {
			return nil, err
		}

		fields := make([]scval.Field, len(items))
		for i, item := range items {
			fields[i] = scval.Field{Name: typ.Fields[i].Name, Value: item}
		}

		return scval.StructValue{Fields: fields}, nil
	}

	object, ok := native.(map[string]any)
	if !ok {
		object, ok = structToObject(native)
	}
	if !ok {
		return nil, mismatch(typ, native)
	}
	if len(object) != len(typ.Fields) {
		return nil, fmt.Errorf("%w: %s has %d fields, got %d", scval.ErrTypeMismatch, typ.Name, len(typ.Fields), len(object))
	}

	fields := make([]scval.Field, 0, len(typ.Fields))
	for _, field := range typ.Fields {
		fieldNative, exists := object[field.Name]
		if !exists {
			return nil, fmt.Errorf("%w: missing field %s.%s", scval.ErrTypeMismatch, typ.Name, field.Name)
		}

		fieldValue, err := fromNative(field.Type, fieldNative)
		if err != nil {
			return nil, fmt.Errorf("field %s.%s: %w", typ.Name, field.Name, err)
		}

		fields = append(fields, scval.Field{Name: field.Name, Value: fieldValue})
	}

	return scval.StructValue{Fields: fields}, nil
}

func enumFromNative(typ *scval.TypeDescriptor, native any) (scval.Value, error) {
	if name, ok := native.(string); ok {
		enumCase, found := typ.CaseByName(name)
		if found {
			return scval.EnumValue{Discriminant: enumCase.Value}, nil
		}
	}

	value, err := numberToValue(scval.KindU32, native)
	if err != nil {
		return nil, fmt.Errorf("%w: %v of %s", ErrUnknownCase, native, typ.Name)
	}

	return scval.EnumValue{Discriminant: value.(scval.U32Value).Value}, nil
}

// unionFromNative accepts "Case" for cases without payload and {"Case": [payload...]} otherwise
func unionFromNative(typ *scval.TypeDescriptor, native any) (scval.Value, error) {
	var name string
	var payload any

	switch n := native.(type) {
	case string:
		name = n
	case map[string]any:
		if len(n) != 1 {
			return nil, fmt.Errorf("%w: %s expects an object with a single case", scval.ErrTypeMismatch, typ.Name)
		}
		for key, value := range n {
			name, payload = key, value
		}
	default:
		return nil, mismatch(typ, native)
	}

	discriminant, ok := typ.VariantByName(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s::%s", ErrUnknownCase, typ.Name, name)
	}

	variant := typ.Variants[discriminant]
	if payload == nil {
		payload = []any{}
	}
	if _, isList := asSlice(payload); !isList && len(variant.Items) == 1 {
		payload = []any{payload}
	}

	items, err := itemsFromNative(variant.Items, payload)
	if err != nil {
		return nil, fmt.Errorf("case %s::%s: %w", typ.Name, name, err)
	}

	return scval.UnionValue{Discriminant: discriminant, Items: items}, nil
}

// anyFromNative accepts null, booleans and {"<kind>": value} objects
func anyFromNative(native any) (scval.Value, error) {
	switch n := native.(type) {
	case nil:
		return scval.VoidValue{}, nil
	case bool:
		return scval.BoolValue{Value: n}, nil
	case map[string]any:
		if len(n) != 1 {
			return nil, fmt.Errorf("%w: Val expects an object with a single kind", scval.ErrTypeMismatch)
		}

		for kindName, inner := range n {
			kind, ok := scval.KindFromString(kindName)
			if !ok {
				return nil, fmt.Errorf("%w: %s cannot be held by a Val", scval.ErrTypeMismatch, kindName)
			}

			typ, err := scval.TypeScalar(kind)
			if err != nil {
				return nil, err
			}

			return fromNative(typ, inner)
		}
	}

	return nil, fmt.Errorf("%w: Val cannot be built from %T", scval.ErrTypeMismatch, native)
}
