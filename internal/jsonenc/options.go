package jsonenc

import (
	"math/big"

	"github.com/roach88/cyclejson/internal/ir"
)

// TransformFunc is invoked for every node in pre-order, the root included.
// holder is the container the node is read from (a wrapper object for the
// root, whose key is ""). The returned value replaces the node; returning
// ir.Undefined omits it.
type TransformFunc func(holder ir.Container, key string, value ir.Value) (ir.Value, error)

// BigIntFunc converts an arbitrary-precision integer into a renderable
// value before the transform sees it.
type BigIntFunc func(key string, n *big.Int) ir.Value

// Options configures one Encode call.
type Options struct {
	Transform    TransformFunc
	Indent       string
	SortKeys     bool
	NormalizeNFC bool
	BigIntToJSON BigIntFunc
}

// Option modifies Options.
type Option func(*Options)

// WithTransform installs the per-node callback.
func WithTransform(fn TransformFunc) Option {
	return func(o *Options) { o.Transform = fn }
}

// WithIndent sets the indent unit. Use NormalizeIndent to derive it from
// a number or an arbitrary string.
func WithIndent(indent string) Option {
	return func(o *Options) { o.Indent = indent }
}

// WithSortKeys emits object members in RFC 8785 key order instead of
// insertion order.
func WithSortKeys() Option {
	return func(o *Options) { o.SortKeys = true }
}

// WithNormalizeNFC applies Unicode NFC normalization to keys and strings.
func WithNormalizeNFC() Option {
	return func(o *Options) { o.NormalizeNFC = true }
}

// WithBigIntToJSON installs the conversion used for every *ir.BigInt node.
// It runs before the transform, so the transform observes its result.
func WithBigIntToJSON(fn BigIntFunc) Option {
	return func(o *Options) { o.BigIntToJSON = fn }
}
