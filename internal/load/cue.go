package load

import (
	"encoding/base64"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"

	"github.com/roach88/cyclejson/internal/ir"
)

// parseCUE evaluates a single CUE file and exports its concrete value.
// Regular fields are kept in declaration order; definitions, hidden and
// optional fields are skipped. CUE values are always trees.
func parseCUE(data []byte, name string) (ir.Value, error) {
	ctx := cuecontext.New()
	v := ctx.CompileBytes(data, cue.Filename(name))
	if err := v.Err(); err != nil {
		return nil, err
	}
	return fromCUE(v)
}

func fromCUE(v cue.Value) (ir.Value, error) {
	switch v.Kind() {
	case cue.NullKind:
		return ir.Null{}, nil
	case cue.BoolKind:
		b, err := v.Bool()
		if err != nil {
			return nil, err
		}
		return ir.Bool(b), nil
	case cue.IntKind:
		if i, err := v.Int64(); err == nil {
			return ir.Int(i), nil
		}
		n, err := v.Int(nil)
		if err != nil {
			return nil, err
		}
		return ir.NewBigInt(n), nil
	case cue.FloatKind:
		f, err := v.Float64()
		if err != nil {
			return nil, err
		}
		return ir.Float(f), nil
	case cue.StringKind:
		s, err := v.String()
		if err != nil {
			return nil, err
		}
		return ir.String(s), nil
	case cue.BytesKind:
		b, err := v.Bytes()
		if err != nil {
			return nil, err
		}
		return ir.String(base64.StdEncoding.EncodeToString(b)), nil
	case cue.StructKind:
		iter, err := v.Fields()
		if err != nil {
			return nil, err
		}
		obj := ir.NewObject()
		for iter.Next() {
			val, err := fromCUE(iter.Value())
			if err != nil {
				return nil, err
			}
			obj.Set(iter.Label(), val)
		}
		return obj, nil
	case cue.ListKind:
		iter, err := v.List()
		if err != nil {
			return nil, err
		}
		arr := ir.NewArray()
		for iter.Next() {
			val, err := fromCUE(iter.Value())
			if err != nil {
				return nil, err
			}
			arr.Append(val)
		}
		return arr, nil
	}

	if err := v.Err(); err != nil {
		return nil, err
	}
	return nil, &Error{
		Code:    ErrCodeUnsupported,
		Message: fmt.Sprintf("%s: value at %q is not concrete", v.Pos(), v.Path()),
	}
}
