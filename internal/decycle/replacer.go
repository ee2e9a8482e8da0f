package decycle

import (
	"github.com/roach88/cyclejson/internal/ir"
)

// EntryFunc transforms one node. holder is the container the node is read
// from; the root is read from a wrapper object under key "".
type EntryFunc func(holder ir.Container, key string, value ir.Value) (ir.Value, error)

type replacerKind int

const (
	replaceNone replacerKind = iota
	replaceAllow
	replaceFunc
)

// Replacer is the per-node transform applied after cycle substitution.
// The zero value passes every node through unchanged.
type Replacer struct {
	kind  replacerKind
	allow map[string]struct{}
	fn    EntryFunc
}

// AllowKeys keeps only members whose key is listed. The allowlist is
// matched by name at every depth, array indices included; a dotted name
// only matches a key spelled the same way. The root always survives.
func AllowKeys(keys ...string) Replacer {
	allow := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		allow[k] = struct{}{}
	}
	return Replacer{kind: replaceAllow, allow: allow}
}

// ReplaceWith applies fn to every node, cycle markers included.
// A nil fn is the same as no replacer.
func ReplaceWith(fn EntryFunc) Replacer {
	if fn == nil {
		return Replacer{}
	}
	return Replacer{kind: replaceFunc, fn: fn}
}

// compile resolves the variant once so nodes are not re-inspected.
func (r Replacer) compile() EntryFunc {
	switch r.kind {
	case replaceAllow:
		allow := r.allow
		return func(_ ir.Container, key string, value ir.Value) (ir.Value, error) {
			if key == "" {
				return value, nil
			}
			if _, ok := allow[key]; ok {
				return value, nil
			}
			return ir.Undefined{}, nil
		}
	case replaceFunc:
		return r.fn
	default:
		return func(_ ir.Container, _ string, value ir.Value) (ir.Value, error) {
			return value, nil
		}
	}
}
