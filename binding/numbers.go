package binding

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"reflect"
	"strings"

	"github.com/multiversx/mx-contract-fixtures-go/scval"
)

var (
	bigMaxUint32 = new(big.Int).SetUint64(math.MaxUint32)
	bigMinInt32  = big.NewInt(math.MinInt32)
	bigMaxInt32  = big.NewInt(math.MaxInt32)
)

// toBigInt accepts every native integer representation: Go integers, integral floats, json.Number,
// decimal strings (0x-prefixed hex is accepted too) and big integers
func toBigInt(native any) (*big.Int, error) {
	switch n := native.(type) {
	case int:
		return big.NewInt(int64(n)), nil
	case int8:
		return big.NewInt(int64(n)), nil
	case int16:
		return big.NewInt(int64(n)), nil
	case int32:
		return big.NewInt(int64(n)), nil
	case int64:
		return big.NewInt(n), nil
	case uint:
		return new(big.Int).SetUint64(uint64(n)), nil
	case uint8:
		return new(big.Int).SetUint64(uint64(n)), nil
	case uint16:
		return new(big.Int).SetUint64(uint64(n)), nil
	case uint32:
		return new(big.Int).SetUint64(uint64(n)), nil
	case uint64:
		return new(big.Int).SetUint64(n), nil
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) || math.IsNaN(n) {
			return nil, fmt.Errorf("%w: %v is not an integer", scval.ErrTypeMismatch, n)
		}

		result, _ := big.NewFloat(n).Int(nil)
		return result, nil
	case json.Number:
		return parseBigInt(n.String())
	case string:
		return parseBigInt(n)
	case *big.Int:
		if n == nil {
			return nil, scval.ErrNilValue
		}

		return new(big.Int).Set(n), nil
	case big.Int:
		return new(big.Int).Set(&n), nil
	default:
		return namedIntegerToBigInt(native)
	}
}

// namedIntegerToBigInt handles the named integer types, such as the Go counterparts of contract enums
func namedIntegerToBigInt(native any) (*big.Int, error) {
	rv := reflect.ValueOf(native)
	if !rv.IsValid() {
		return nil, fmt.Errorf("%w: null is not a number", scval.ErrTypeMismatch)
	}

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return big.NewInt(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return new(big.Int).SetUint64(rv.Uint()), nil
	default:
		return nil, fmt.Errorf("%w: %T is not a number", scval.ErrTypeMismatch, native)
	}
}

func parseBigInt(text string) (*big.Int, error) {
	text = strings.TrimSpace(text)
	base := 10

	digits := text
	negative := strings.HasPrefix(digits, "-")
	if negative {
		digits = digits[1:]
	}
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		digits = digits[2:]
		base = 16
	}

	n, ok := new(big.Int).SetString(digits, base)
	if !ok || strings.HasPrefix(digits, "-") || strings.HasPrefix(digits, "+") {
		return nil, fmt.Errorf("%w: %q is not an integer", scval.ErrTypeMismatch, text)
	}
	if negative {
		n.Neg(n)
	}

	return n, nil
}

func numberToValue(kind scval.Kind, native any) (scval.Value, error) {
	n, err := toBigInt(native)
	if err != nil {
		return nil, err
	}

	switch kind {
	case scval.KindU32:
		if n.Sign() < 0 || n.Cmp(bigMaxUint32) > 0 {
			return nil, outOfRange(n, kind)
		}

		return scval.U32Value{Value: uint32(n.Uint64())}, nil
	case scval.KindI32:
		if n.Cmp(bigMinInt32) < 0 || n.Cmp(bigMaxInt32) > 0 {
			return nil, outOfRange(n, kind)
		}

		return scval.I32Value{Value: int32(n.Int64())}, nil
	case scval.KindU64, scval.KindTimepoint, scval.KindDuration:
		if !n.IsUint64() {
			return nil, outOfRange(n, kind)
		}

		switch kind {
		case scval.KindTimepoint:
			return scval.TimepointValue{Value: n.Uint64()}, nil
		case scval.KindDuration:
			return scval.DurationValue{Value: n.Uint64()}, nil
		default:
			return scval.U64Value{Value: n.Uint64()}, nil
		}
	case scval.KindI64:
		if !n.IsInt64() {
			return nil, outOfRange(n, kind)
		}

		return scval.I64Value{Value: n.Int64()}, nil
	case scval.KindU128:
		return scval.NewU128Value(n)
	case scval.KindI128:
		return scval.NewI128Value(n)
	case scval.KindU256:
		return scval.NewU256Value(n)
	case scval.KindI256:
		return scval.NewI256Value(n)
	default:
		return nil, fmt.Errorf("%w: %s is not a numeric kind", scval.ErrTypeMismatch, kind)
	}
}

func outOfRange(n *big.Int, kind scval.Kind) error {
	return fmt.Errorf("%w: %s does not fit %s", scval.ErrNumberOutOfRange, n.String(), kind)
}
