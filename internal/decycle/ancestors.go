package decycle

import (
	"strings"

	"github.com/roach88/cyclejson/internal/ir"
)

// ancestors is the live root-to-current-node path of one encode call.
//
// The base encoder owns the recursion and only reports (holder, key, value)
// per node, so the path is rebuilt from the sequence of holders. In a
// pre-order walk every holder is either the deepest known ancestor's child
// (a new level) or already on the stack (the walk backtracked to it).
//
// keys[i] is the member of stack[i] currently being visited. The stack
// never holds the same container twice, which is what makes membership a
// valid cycle test.
type ancestors struct {
	stack []ir.Value
	keys  []string
}

// visit records a callback made for key in holder and reports whether
// value is a live ancestor, i.e. whether emitting it would close a cycle.
// The first visit records the root and never reports a cycle.
func (a *ancestors) visit(holder ir.Container, key string, value ir.Value) bool {
	if len(a.stack) == 0 {
		a.stack = append(a.stack, value)
		return false
	}

	if pos := a.indexOf(holder); pos >= 0 {
		a.stack = a.stack[:pos+1]
		a.keys = append(a.keys[:pos], key)
	} else {
		a.stack = append(a.stack, holder)
		a.keys = append(a.keys, key)
	}

	return a.indexOf(value) >= 0
}

// indexOf locates v on the stack by identity. Scalars are never found.
func (a *ancestors) indexOf(v ir.Value) int {
	if _, ok := v.(ir.Container); !ok {
		return -1
	}
	for i, node := range a.stack {
		if ir.Same(node, v) {
			return i
		}
	}
	return -1
}

// depth returns the number of containers on the path.
func (a *ancestors) depth() int {
	return len(a.stack)
}

// label returns the path label of v: "~" for the root, otherwise "~." and
// the keys leading to v joined by ".".
func (a *ancestors) label(v ir.Value) string {
	pos := a.indexOf(v)
	if pos == 0 {
		return "~"
	}
	if pos < 0 {
		pos = len(a.keys)
	}
	return "~." + strings.Join(a.keys[:pos], ".")
}
