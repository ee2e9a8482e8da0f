package decycle

import (
	"fmt"

	"github.com/roach88/cyclejson/internal/ir"
)

// Built-in cycle resolvers. A nil resolver selects the "[Circular ~...]"
// marker.
var (
	// NullResolver replaces every cycle with null.
	NullResolver EntryFunc = func(ir.Container, string, ir.Value) (ir.Value, error) {
		return ir.Null{}, nil
	}

	// OmitResolver drops cyclic members; in arrays they render as null.
	OmitResolver EntryFunc = func(ir.Container, string, ir.Value) (ir.Value, error) {
		return ir.Undefined{}, nil
	}

	// KeepResolver leaves the cycle in place, so encoding fails with an
	// unresolved cycle error naming the closing key.
	KeepResolver EntryFunc = func(_ ir.Container, _ string, value ir.Value) (ir.Value, error) {
		return value, nil
	}
)

// ResolverNames lists the names accepted by ResolverByName.
var ResolverNames = []string{"marker", "null", "omit", "error"}

// ResolverByName returns the built-in resolver for a CLI or config name.
// "marker" (and "") yields nil, the default marker resolver.
func ResolverByName(name string) (EntryFunc, error) {
	switch name {
	case "", "marker":
		return nil, nil
	case "null":
		return NullResolver, nil
	case "omit":
		return OmitResolver, nil
	case "error":
		return KeepResolver, nil
	}
	return nil, fmt.Errorf("unknown cycle resolver %q: must be one of %v", name, ResolverNames)
}

// marker is the default resolver: "[Circular ~]" for the root, otherwise
// "[Circular ~.<path>]" with the keys leading to the re-entered container.
func (t *transform) marker(_ ir.Container, _ string, value ir.Value) (ir.Value, error) {
	return ir.String("[Circular " + t.path.label(value) + "]"), nil
}
