package decycle

import (
	"github.com/roach88/cyclejson/internal/ir"
	"github.com/roach88/cyclejson/internal/jsonenc"
)

// Cycle describes one detected re-entry.
type Cycle struct {
	Key   string `json:"key"`   // member that closes the cycle
	Path  string `json:"path"`  // label of the re-entered container, "~" or "~.a.b"
	Depth int    `json:"depth"` // containers on the path when it was found
}

// transform is the composed per-node callback of one encode call.
type transform struct {
	path    ancestors
	resolve EntryFunc
	replace EntryFunc
	onCycle func(Cycle)
}

func newTransform(replacer Replacer, resolver EntryFunc) *transform {
	t := &transform{
		replace: replacer.compile(),
		resolve: resolver,
	}
	if t.resolve == nil {
		t.resolve = t.marker
	}
	return t
}

// apply runs numeric coercion, the ancestor update, the resolver when the
// value closes a cycle, and the replacer, in that order.
func (t *transform) apply(holder ir.Container, key string, value ir.Value) (ir.Value, error) {
	value = coerce(value)

	if t.path.visit(holder, key, value) {
		if t.onCycle != nil {
			t.onCycle(Cycle{Key: key, Path: t.path.label(value), Depth: t.path.depth()})
		}
		var err error
		value, err = t.resolve(holder, key, value)
		if err != nil {
			return nil, err
		}
	}

	return t.replace(holder, key, value)
}

// MakeTransform returns the composed per-node callback for embedding in a
// caller-driven jsonenc.Encode call. The callback carries the ancestor path
// of a single walk: build a new one for every Encode call.
func MakeTransform(replacer Replacer, resolver EntryFunc) jsonenc.TransformFunc {
	return newTransform(replacer, resolver).apply
}

// Encode renders v as JSON text, replacing every reference that re-enters
// its own ancestor chain.
//
// indent is nil, a number of spaces or a literal indent string, as accepted
// by jsonenc.NormalizeIndent. A nil resolver substitutes "[Circular ~...]"
// markers. opts are passed to the encoder before the transform and indent,
// which always win.
//
// If a resolver returns a value that still closes the cycle, the encoder's
// own guard fails the call; IsUnresolvedCycle reports that case.
func Encode(v ir.Value, replacer Replacer, indent any, resolver EntryFunc, opts ...jsonenc.Option) (string, error) {
	return newTransform(replacer, resolver).encode(v, indent, opts)
}

// EncodeReport is Encode that also returns every cycle it replaced, in
// traversal order.
func EncodeReport(v ir.Value, replacer Replacer, indent any, resolver EntryFunc, opts ...jsonenc.Option) (string, []Cycle, error) {
	var cycles []Cycle
	t := newTransform(replacer, resolver)
	t.onCycle = func(c Cycle) { cycles = append(cycles, c) }

	out, err := t.encode(v, indent, opts)
	if err != nil {
		return "", nil, err
	}
	return out, cycles, nil
}

func (t *transform) encode(v ir.Value, indent any, opts []jsonenc.Option) (string, error) {
	gap, err := jsonenc.NormalizeIndent(indent)
	if err != nil {
		return "", err
	}

	opts = append(opts[:len(opts):len(opts)],
		jsonenc.WithTransform(t.apply),
		jsonenc.WithIndent(gap),
	)
	return jsonenc.Encode(v, opts...)
}

// EncodeAny converts a Go value with ir.FromAny and encodes it.
// Go maps and slices that contain themselves are encoded with markers.
func EncodeAny(x any, replacer Replacer, indent any, resolver EntryFunc, opts ...jsonenc.Option) (string, error) {
	v, err := ir.FromAny(x)
	if err != nil {
		return "", err
	}
	return Encode(v, replacer, indent, resolver, opts...)
}

// Inspect walks v with the default marker resolver and reports every
// detected cycle in traversal order.
func Inspect(v ir.Value, opts ...jsonenc.Option) ([]Cycle, error) {
	_, cycles, err := EncodeReport(v, Replacer{}, nil, nil, opts...)
	return cycles, err
}

// IsUnresolvedCycle reports whether err is the encoder's circular structure
// error, raised when a resolver failed to break a cycle.
func IsUnresolvedCycle(err error) bool {
	return jsonenc.IsCycleError(err)
}
