package jsonenc

import (
	"strconv"
	"strings"

	"github.com/roach88/cyclejson/internal/ir"
)

// frame is one container being rendered and the member it was reached by.
type frame struct {
	node  ir.Container
	key   string
	index bool // key is an array index
}

// encoder holds the state of one Encode call.
type encoder struct {
	Options
	stack  []frame
	indent string // indentation of the current nesting level
}

// Encode renders v as JSON text.
//
// The walk is depth-first pre-order. When a transform is installed it is
// called for every node, the root first (with key "" and a wrapper holder),
// and its result is rendered in place of the node. Members whose value is
// ir.Undefined are omitted, array elements render as null, and an omitted
// root yields "".
//
// Rendering a container that is already being rendered fails with a
// CIRCULAR_STRUCTURE error; rendering a *ir.BigInt fails with
// UNSUPPORTED_TYPE.
func Encode(v ir.Value, opts ...Option) (string, error) {
	e := &encoder{}
	for _, opt := range opts {
		opt(&e.Options)
	}

	wrapper := ir.NewObject(ir.O("", v))
	out, ok, err := e.property(wrapper, "", v)
	if err != nil || !ok {
		return "", err
	}
	return out, nil
}

// property renders the node stored under key in holder. ok is false when
// the node is omitted.
func (e *encoder) property(holder ir.Container, key string, v ir.Value) (out string, ok bool, err error) {
	if b, isBig := v.(*ir.BigInt); isBig && e.BigIntToJSON != nil {
		v = e.BigIntToJSON(key, b.Int())
	}

	if e.Transform != nil {
		v, err = e.Transform(holder, key, v)
		if err != nil {
			return "", false, err
		}
	}

	switch val := v.(type) {
	case nil, ir.Null:
		return "null", true, nil
	case ir.Undefined:
		return "", false, nil
	case ir.Bool:
		return strconv.FormatBool(bool(val)), true, nil
	case ir.Int:
		return formatInt(int64(val)), true, nil
	case ir.Float:
		return formatFloat(float64(val)), true, nil
	case ir.String:
		out, err = quote(string(val), e.NormalizeNFC)
		return out, err == nil, err
	case *ir.Object:
		out, err = e.object(key, val)
		return out, err == nil, err
	case *ir.Array:
		out, err = e.array(key, val)
		return out, err == nil, err
	default:
		return "", false, newUnsupportedTypeError(key, v)
	}
}

// enter pushes node onto the render stack, failing when it is already there.
func (e *encoder) enter(key string, node ir.Container) error {
	index := len(e.stack) > 0 && isArray(e.stack[len(e.stack)-1].node)
	for i, f := range e.stack {
		if ir.Same(f.node, node) {
			return newCycleError(e.stack[i:], key, index)
		}
	}
	e.stack = append(e.stack, frame{node: node, key: key, index: index})
	return nil
}

func (e *encoder) leave() {
	e.stack = e.stack[:len(e.stack)-1]
}

func (e *encoder) object(key string, obj *ir.Object) (string, error) {
	if err := e.enter(key, obj); err != nil {
		return "", err
	}
	defer e.leave()

	stepback := e.indent
	e.indent += e.Indent
	defer func() { e.indent = stepback }()

	keys := obj.Keys()
	if e.SortKeys {
		keys = obj.SortedKeys()
	}

	sep := ":"
	if e.Indent != "" {
		sep = ": "
	}

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		child, _ := obj.Get(k)
		out, ok, err := e.property(obj, k, child)
		if err != nil {
			return "", err
		}
		if !ok {
			continue
		}
		name, err := quote(k, e.NormalizeNFC)
		if err != nil {
			return "", err
		}
		parts = append(parts, name+sep+out)
	}

	return e.join("{", "}", parts, stepback), nil
}

func (e *encoder) array(key string, arr *ir.Array) (string, error) {
	if err := e.enter(key, arr); err != nil {
		return "", err
	}
	defer e.leave()

	stepback := e.indent
	e.indent += e.Indent
	defer func() { e.indent = stepback }()

	parts := make([]string, arr.Len())
	for i := range parts {
		out, ok, err := e.property(arr, strconv.Itoa(i), arr.At(i))
		if err != nil {
			return "", err
		}
		if !ok {
			out = "null"
		}
		parts[i] = out
	}

	return e.join("[", "]", parts, stepback), nil
}

// join lays out rendered members at the current nesting level.
func (e *encoder) join(lb, rb string, parts []string, stepback string) string {
	if len(parts) == 0 {
		return lb + rb
	}
	if e.Indent == "" {
		return lb + strings.Join(parts, ",") + rb
	}
	return lb + "\n" + e.indent + strings.Join(parts, ",\n"+e.indent) + "\n" + stepback + rb
}

func isArray(c ir.Container) bool {
	_, ok := c.(*ir.Array)
	return ok
}
