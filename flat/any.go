package flat

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
)

var ErrUnsupported = errors.New("unsupported value")

// ToAny returns v as plain Go data: nil, bool, int64, float64, string,
// []any and map[string]any.
func ToAny(v Value) any {
	switch v.Kind {
	case BoolKind:
		return v.Bool
	case IntegerKind:
		return v.Int
	case DoubleKind:
		return v.Float
	case StringKind:
		return v.String
	case ArrayKind:
		res := make([]any, len(v.Array))
		for i := range v.Array {
			res[i] = ToAny(v.Array[i])
		}
		return res
	case ObjectKind:
		res := make(map[string]any, len(v.Object))
		for k, ov := range v.Object {
			res[k] = ToAny(ov)
		}
		return res
	default:
		return nil
	}
}

// FromAny converts decoded Go data to a Value. Integers of every width,
// json.Number, []any, map[string]any and map[any]any with string keys are
// accepted; anything else fails with ErrUnsupported.
func FromAny(x any) (Value, error) {
	switch d := x.(type) {
	case nil:
		return Null(), nil
	case Value:
		return d, nil
	case bool:
		return FromBool(d), nil
	case int:
		return FromInt(int64(d)), nil
	case int8:
		return FromInt(int64(d)), nil
	case int16:
		return FromInt(int64(d)), nil
	case int32:
		return FromInt(int64(d)), nil
	case int64:
		return FromInt(d), nil
	case uint:
		return fromUint(uint64(d))
	case uint8:
		return FromInt(int64(d)), nil
	case uint16:
		return FromInt(int64(d)), nil
	case uint32:
		return FromInt(int64(d)), nil
	case uint64:
		return fromUint(d)
	case float32:
		return FromFloat(float64(d)), nil
	case float64:
		return FromFloat(d), nil
	case json.Number:
		return fromNumber(string(d))
	case string:
		return FromString(d), nil
	case []any:
		res := make([]Value, len(d))
		for i, elt := range d {
			v, err := FromAny(elt)
			if err != nil {
				return Value{}, fmt.Errorf("[%d]: %w", i, err)
			}
			res[i] = v
		}
		return FromSlice(res), nil
	case map[string]any:
		res := make(map[string]Value, len(d))
		for k, elt := range d {
			v, err := FromAny(elt)
			if err != nil {
				return Value{}, fmt.Errorf("%q: %w", k, err)
			}
			res[k] = v
		}
		return FromMap(res), nil
	case map[any]any:
		res := make(map[string]Value, len(d))
		for k, elt := range d {
			ks, ok := k.(string)
			if !ok {
				return Value{}, fmt.Errorf("%w: object key %v (%T)", ErrUnsupported, k, k)
			}
			v, err := FromAny(elt)
			if err != nil {
				return Value{}, fmt.Errorf("%q: %w", ks, err)
			}
			res[ks] = v
		}
		return FromMap(res), nil
	default:
		return Value{}, fmt.Errorf("%w: %T", ErrUnsupported, x)
	}
}

func fromUint(u uint64) (Value, error) {
	if u > math.MaxInt64 {
		return Value{}, fmt.Errorf("%w: %d overflows int64", ErrUnsupported, u)
	}
	return FromInt(int64(u)), nil
}

func fromNumber(s string) (Value, error) {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return FromInt(i), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Value{}, fmt.Errorf("%w: number %q: %w", ErrUnsupported, s, err)
	}
	return FromFloat(f), nil
}
