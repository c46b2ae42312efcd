package binding

import (
	"encoding/hex"
	"fmt"

	"github.com/multiversx/mx-contract-fixtures-go/schema"
	"github.com/multiversx/mx-contract-fixtures-go/scval"
)

// ToNative converts a value of the provided type into JSON-friendly Go data: 128 and 256-bit integers become
// decimal strings, bytes become hex strings, maps become lists of [key, value] pairs and tuple structs become lists
func ToNative(value scval.Value, typ *scval.TypeDescriptor) (any, error) {
	if typ == nil {
		return nil, scval.ErrNilTypeDescriptor
	}

	err := scval.NewCodec().Validate(value, typ)
	if err != nil {
		return nil, err
	}

	return toNative(value, typ), nil
}

// toNative expects a value already validated against the type
func toNative(value scval.Value, typ *scval.TypeDescriptor) any {
	if typ.Kind == scval.KindAny {
		return anyToNative(value)
	}

	switch v := value.(type) {
	case scval.VoidValue:
		return nil
	case scval.BoolValue:
		return v.Value
	case scval.U32Value:
		return v.Value
	case scval.I32Value:
		return v.Value
	case scval.U64Value:
		return v.Value
	case scval.I64Value:
		return v.Value
	case scval.TimepointValue:
		return v.Value
	case scval.DurationValue:
		return v.Value
	case scval.U128Value:
		return v.BigInt().String()
	case scval.I128Value:
		return v.BigInt().String()
	case scval.U256Value:
		return v.BigInt().String()
	case scval.I256Value:
		return v.BigInt().String()
	case scval.SymbolValue:
		return v.Value
	case scval.StringValue:
		return v.Value
	case scval.BytesValue:
		return hex.EncodeToString(v.Value)
	case scval.FixedBytesValue:
		return hex.EncodeToString(v.Value)
	case scval.AddressValue:
		return v.String()
	case scval.OptionValue:
		if !v.IsSet() {
			return nil
		}

		return toNative(v.Value, typ.Elem)
	case scval.TupleValue:
		return itemsToNative(v.Items, typ.Items)
	case scval.ListValue:
		items := make([]any, len(v.Items))
		for i, item := range v.Items {
			items[i] = toNative(item, typ.Elem)
		}

		return items
	case scval.MapValue:
		pairs := make([]any, len(v.Entries))
		for i, entry := range v.Entries {
			pairs[i] = []any{toNative(entry.Key, typ.Key), toNative(entry.Value, typ.Val)}
		}

		return pairs
	case scval.StructValue:
		if schema.IsTupleStruct(typ) {
			items := make([]any, len(v.Fields))
			for i, field := range v.Fields {
				items[i] = toNative(field.Value, typ.Fields[i].Type)
			}

			return items
		}

		object := make(map[string]any, len(v.Fields))
		for i, field := range v.Fields {
			object[field.Name] = toNative(field.Value, typ.Fields[i].Type)
		}

		return object
	case scval.EnumValue:
		return v.Discriminant
	case scval.UnionValue:
		variant := typ.Variants[v.Discriminant]
		if len(variant.Items) == 0 {
			return variant.Name
		}

		return map[string]any{variant.Name: itemsToNative(v.Items, variant.Items)}
	default:
		return fmt.Sprintf("%v", value)
	}
}

func itemsToNative(items []scval.Value, types []*scval.TypeDescriptor) []any {
	natives := make([]any, len(items))
	for i, item := range items {
		natives[i] = toNative(item, types[i])
	}

	return natives
}

// anyToNative renders the value held by a Val, tagged with its kind unless it is void or a boolean
func anyToNative(value scval.Value) any {
	switch v := value.(type) {
	case scval.VoidValue:
		return nil
	case scval.BoolValue:
		return v.Value
	}

	typ, err := scval.TypeScalar(value.Kind())
	if err != nil {
		return nil
	}

	return map[string]any{value.Kind().String(): toNative(value, typ)}
}
