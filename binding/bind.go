package binding

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"reflect"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/multiversx/mx-contract-fixtures-go/scval"
)

const bindingTagName = "json"

var bigIntType = reflect.TypeOf(big.Int{})

// Bind decodes the native form of the value into out, which must be a pointer. Struct fields are matched by
// their json tags, tuple structs by tags holding the field positions ("0", "1", ...).
func Bind(value scval.Value, typ *scval.TypeDescriptor, out any) error {
	if out == nil {
		return ErrNilTarget
	}

	native, err := ToNative(value, typ)
	if err != nil {
		return err
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			hexToBytesHook,
			pairsToMapHook,
			listToStructHook,
			bigIntHook,
		),
		ErrorUnused: true,
		Result:      out,
		TagName:     bindingTagName,
	})
	if err != nil {
		return err
	}

	err = decoder.Decode(native)
	if err != nil {
		return fmt.Errorf("cannot bind %s: %w", typ, err)
	}

	return nil
}

// hexToBytesHook decodes the hex strings of byte sequences
func hexToBytesHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String {
		return data, nil
	}
	if to.Kind() != reflect.Slice && to.Kind() != reflect.Array {
		return data, nil
	}
	if to.Elem().Kind() != reflect.Uint8 {
		return data, nil
	}

	decoded, err := hex.DecodeString(data.(string))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", scval.ErrTypeMismatch, err)
	}

	return decoded, nil
}

// pairsToMapHook turns the [key, value] pairs of a native map into a Go map
func pairsToMapHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to.Kind() != reflect.Map || from.Kind() != reflect.Slice {
		return data, nil
	}

	pairs, ok := data.([]any)
	if !ok {
		return data, nil
	}

	result := make(map[any]any, len(pairs))
	for _, pairNative := range pairs {
		pair, isPair := pairNative.([]any)
		if !isPair || len(pair) != 2 {
			return nil, fmt.Errorf("%w: map entries must be [key, value] pairs", scval.ErrTypeMismatch)
		}

		result[pair[0]] = pair[1]
	}

	return result, nil
}

// listToStructHook turns the items of a native tuple struct into an object keyed by position
func listToStructHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to.Kind() != reflect.Struct || to == bigIntType || from.Kind() != reflect.Slice {
		return data, nil
	}

	items, ok := data.([]any)
	if !ok {
		return data, nil
	}

	object := make(map[string]any, len(items))
	for i, item := range items {
		object[strconv.Itoa(i)] = item
	}

	return object, nil
}

// bigIntHook parses the decimal strings of 128 and 256-bit integers
func bigIntHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String {
		return data, nil
	}
	if to != bigIntType && to != reflect.PointerTo(bigIntType) {
		return data, nil
	}

	n, err := parseBigInt(data.(string))
	if err != nil {
		return nil, err
	}
	if to == bigIntType {
		return *n, nil
	}

	return n, nil
}

// structToObject converts a Go struct into an object keyed by the json tags of its fields
func structToObject(native any) (map[string]any, bool) {
	rv := reflect.ValueOf(native)
	for rv.IsValid() && rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() || rv.Kind() != reflect.Struct || rv.Type() == bigIntType {
		return nil, false
	}

	structType := rv.Type()
	object := make(map[string]any, structType.NumField())
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		if !field.IsExported() {
			continue
		}

		name := strings.Split(field.Tag.Get(bindingTagName), ",")[0]
		if name == "-" {
			continue
		}
		if len(name) == 0 {
			name = field.Name
		}

		object[name] = rv.Field(i).Interface()
	}

	return object, true
}

// mapToPairs converts any Go map into a list of [key, value] pairs
func mapToPairs(native any) ([]any, bool) {
	rv := reflect.ValueOf(native)
	if !rv.IsValid() || rv.Kind() != reflect.Map {
		return nil, false
	}

	pairs := make([]any, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		pairs = append(pairs, []any{iter.Key().Interface(), iter.Value().Interface()})
	}

	return pairs, true
}
