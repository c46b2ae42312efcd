package display

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/multiversx/mx-contract-fixtures-go/scval"
)

const (
	ellipsis          = "..."
	shortHexEdgeBytes = 4
)

// ShortHex renders the bytes as hex, keeping only the first and the last 4 bytes of long payloads
func ShortHex(data []byte) string {
	if len(data) <= 2*shortHexEdgeBytes+1 {
		return hex.EncodeToString(data)
	}

	prefix := hex.EncodeToString(data[:shortHexEdgeBytes])
	suffix := hex.EncodeToString(data[len(data)-shortHexEdgeBytes:])

	return prefix + ellipsis + suffix
}

// ValueString renders a value against its type in a compact, readable form such as
// SimpleStruct{a: 7, b: true, c: Hello} or ComplexEnum::Asset(GAAA..., 5)
func ValueString(value scval.Value, typ *scval.TypeDescriptor) string {
	if value == nil || typ == nil {
		return "<nil>"
	}

	switch v := value.(type) {
	case scval.VoidValue:
		return "void"
	case scval.BoolValue:
		return strconv.FormatBool(v.Value)
	case scval.U32Value:
		return strconv.FormatUint(uint64(v.Value), 10)
	case scval.I32Value:
		return strconv.FormatInt(int64(v.Value), 10)
	case scval.U64Value:
		return strconv.FormatUint(v.Value, 10)
	case scval.I64Value:
		return strconv.FormatInt(v.Value, 10)
	case scval.TimepointValue:
		return fmt.Sprintf("Timepoint(%d)", v.Value)
	case scval.DurationValue:
		return fmt.Sprintf("Duration(%d)", v.Value)
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
		return strconv.Quote(v.Value)
	case scval.BytesValue:
		return "0x" + ShortHex(v.Value)
	case scval.FixedBytesValue:
		return "0x" + ShortHex(v.Value)
	case scval.AddressValue:
		return v.String()
	case scval.OptionValue:
		if !v.IsSet() {
			return "None"
		}

		return "Some(" + ValueString(v.Value, elemOrSelf(typ, v.Value)) + ")"
	case scval.TupleValue:
		return "(" + itemsString(v.Items, typ.Items) + ")"
	case scval.ListValue:
		parts := make([]string, len(v.Items))
		for i, item := range v.Items {
			parts[i] = ValueString(item, elemOrSelf(typ, item))
		}

		return "[" + strings.Join(parts, ", ") + "]"
	case scval.MapValue:
		parts := make([]string, len(v.Entries))
		for i, entry := range v.Entries {
			parts[i] = ValueString(entry.Key, typ.Key) + ": " + ValueString(entry.Value, typ.Val)
		}

		return "{" + strings.Join(parts, ", ") + "}"
	case scval.StructValue:
		parts := make([]string, len(v.Fields))
		for i, field := range v.Fields {
			parts[i] = field.Name + ": " + ValueString(field.Value, fieldType(typ, i))
		}

		return typ.Name + "{" + strings.Join(parts, ", ") + "}"
	case scval.EnumValue:
		index, ok := typ.CaseByValue(v.Discriminant)
		if !ok {
			return fmt.Sprintf("%s(%d)", typ.Name, v.Discriminant)
		}

		return typ.Name + "::" + typ.Cases[index].Name
	case scval.UnionValue:
		if int(v.Discriminant) >= len(typ.Variants) {
			return fmt.Sprintf("%s(%d)", typ.Name, v.Discriminant)
		}

		variant := typ.Variants[v.Discriminant]
		name := typ.Name + "::" + variant.Name
		if len(v.Items) == 0 {
			return name
		}

		return name + "(" + itemsString(v.Items, variant.Items) + ")"
	default:
		return fmt.Sprintf("%v", value)
	}
}

// elemOrSelf returns the element type, or the scalar type of the value when the container holds Val items
func elemOrSelf(typ *scval.TypeDescriptor, value scval.Value) *scval.TypeDescriptor {
	if typ.Elem != nil && typ.Elem.Kind != scval.KindAny {
		return typ.Elem
	}

	scalar, err := scval.TypeScalar(value.Kind())
	if err != nil {
		return typ.Elem
	}

	return scalar
}

func fieldType(typ *scval.TypeDescriptor, index int) *scval.TypeDescriptor {
	if index >= len(typ.Fields) {
		return nil
	}

	return typ.Fields[index].Type
}

func itemsString(items []scval.Value, types []*scval.TypeDescriptor) string {
	parts := make([]string, len(items))
	for i, item := range items {
		var itemType *scval.TypeDescriptor
		if i < len(types) {
			itemType = types[i]
		}

		parts[i] = ValueString(item, itemType)
	}

	return strings.Join(parts, ", ")
}
