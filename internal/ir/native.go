package ir

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"reflect"
	"slices"
)

// FromAny converts a Go value into a Value graph.
//
// Supported inputs are nil, Value, string, bool, all integer and float
// kinds, *big.Int, json.Number, map[string]any and []any. Maps and slices
// are converted once per identity, so a map that is reachable twice
// becomes one shared *Object, and a map that contains itself becomes a
// cyclic *Object. Map keys are emitted in sorted order.
//
// A *big.Int always becomes a *BigInt, whatever its magnitude.
func FromAny(x any) (Value, error) {
	c := &converter{seen: make(map[identity]Container)}
	return c.convert(x)
}

// MustFromAny is like FromAny but panics on error.
// Use only in tests or when inputs are known to be valid.
func MustFromAny(x any) Value {
	v, err := FromAny(x)
	if err != nil {
		panic(err)
	}
	return v
}

// identity locates a Go map or slice in memory.
type identity struct {
	kind reflect.Kind
	ptr  uintptr
	n    int
}

type converter struct {
	seen map[identity]Container
}

func (c *converter) convert(x any) (Value, error) {
	switch val := x.(type) {
	case nil:
		return Null{}, nil
	case Value:
		return val, nil
	case string:
		return String(val), nil
	case bool:
		return Bool(val), nil
	case int:
		return Int(val), nil
	case int8:
		return Int(val), nil
	case int16:
		return Int(val), nil
	case int32:
		return Int(val), nil
	case int64:
		return Int(val), nil
	case uint:
		return fromUint(uint64(val)), nil
	case uint8:
		return Int(val), nil
	case uint16:
		return Int(val), nil
	case uint32:
		return Int(val), nil
	case uint64:
		return fromUint(val), nil
	case float32:
		return Float(val), nil
	case float64:
		return Float(val), nil
	case *big.Int:
		if val == nil {
			return Null{}, nil
		}
		return NewBigInt(val), nil
	case json.Number:
		return parseNumber(string(val))
	case map[string]any:
		return c.convertMap(val)
	case []any:
		return c.convertSlice(val)
	default:
		return nil, fmt.Errorf("unsupported type: %T", x)
	}
}

func fromUint(n uint64) Value {
	if n > math.MaxInt64 {
		return NewBigInt(new(big.Int).SetUint64(n))
	}
	return Int(n)
}

func (c *converter) convertMap(m map[string]any) (Value, error) {
	if m == nil {
		return Null{}, nil
	}
	id := identity{kind: reflect.Map, ptr: reflect.ValueOf(m).Pointer()}
	if obj, ok := c.seen[id]; ok {
		return obj, nil
	}

	// Registered before the members are converted so self references resolve
	obj := NewObject()
	c.seen[id] = obj

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, k := range keys {
		v, err := c.convert(m[k])
		if err != nil {
			return nil, fmt.Errorf("object[%q]: %w", k, err)
		}
		obj.Set(k, v)
	}
	return obj, nil
}

func (c *converter) convertSlice(s []any) (Value, error) {
	if s == nil {
		return Null{}, nil
	}
	if len(s) == 0 {
		return NewArray(), nil
	}
	id := identity{kind: reflect.Slice, ptr: reflect.ValueOf(s).Pointer(), n: len(s)}
	if arr, ok := c.seen[id]; ok {
		return arr, nil
	}

	arr := &Array{elems: make([]Value, len(s))}
	c.seen[id] = arr

	for i, elem := range s {
		v, err := c.convert(elem)
		if err != nil {
			return nil, fmt.Errorf("array[%d]: %w", i, err)
		}
		arr.elems[i] = v
	}
	return arr, nil
}
