package ir

import (
	"math/big"
	"slices"
	"unicode/utf16"
)

// Value is a sealed interface over the node kinds of a value graph.
// Only Undefined, Null, String, Bool, Int, Float, *BigInt, *Array and
// *Object implement it.
type Value interface {
	value() // Sealed - only these types implement it
}

// Container is a Value that holds other values. Containers are compared
// by identity: two containers are the same node iff they are the same
// pointer, never by structural equality.
type Container interface {
	Value
	Len() int
	container()
}

// Undefined is the absent-value signal. An object member whose value is
// Undefined is omitted from output; an array element renders as null.
type Undefined struct{}

func (Undefined) value() {}

// Null represents a JSON null value.
type Null struct{}

func (Null) value() {}

// String represents a string value.
type String string

func (String) value() {}

// Bool represents a boolean value.
type Bool bool

func (Bool) value() {}

// Int represents an integer that fits in int64.
type Int int64

func (Int) value() {}

// Float represents a double precision number.
type Float float64

func (Float) value() {}

// BigInt is an arbitrary-precision integer. JSON encoders cannot render it
// directly; it has to be converted first.
type BigInt struct {
	n big.Int
}

func (*BigInt) value() {}

// NewBigInt creates a BigInt holding a copy of n.
func NewBigInt(n *big.Int) *BigInt {
	b := &BigInt{}
	b.n.Set(n)
	return b
}

// ParseBigInt parses a base-10 integer literal of any size.
func ParseBigInt(s string) (*BigInt, bool) {
	b := &BigInt{}
	if _, ok := b.n.SetString(s, 10); !ok {
		return nil, false
	}
	return b, true
}

// Int returns a copy of the underlying integer.
func (b *BigInt) Int() *big.Int {
	return new(big.Int).Set(&b.n)
}

// String returns the canonical decimal representation.
func (b *BigInt) String() string {
	return b.n.String()
}

// Array is an ordered list of values.
type Array struct {
	elems []Value
}

func (*Array) value()     {}
func (*Array) container() {}

// NewArray creates an Array from values.
func NewArray(vals ...Value) *Array {
	return &Array{elems: slices.Clone(vals)}
}

// Len returns the number of elements.
func (a *Array) Len() int { return len(a.elems) }

// At returns the element at index i.
func (a *Array) At(i int) Value { return a.elems[i] }

// Set replaces the element at index i.
func (a *Array) Set(i int, v Value) { a.elems[i] = v }

// Append adds values at the end of the array.
func (a *Array) Append(vals ...Value) { a.elems = append(a.elems, vals...) }

// Values returns the elements. The slice must not be modified.
func (a *Array) Values() []Value { return a.elems }

// Entry is a key/value pair of an Object.
type Entry struct {
	Key   string
	Value Value
}

// O is a shorthand for Entry for ergonomic construction.
// Example: NewObject(O("name", String("cart")), O("count", Int(5)))
func O(key string, value Value) Entry {
	return Entry{Key: key, Value: value}
}

// Object is an ordered mapping from string keys to values. Iteration
// follows insertion order; use SortedKeys for canonical order.
type Object struct {
	entries []Entry
	index   map[string]int
}

func (*Object) value()     {}
func (*Object) container() {}

// NewObject creates an Object from entries. Later duplicates replace
// earlier values without moving them.
func NewObject(entries ...Entry) *Object {
	obj := &Object{index: make(map[string]int, len(entries))}
	for _, e := range entries {
		obj.Set(e.Key, e.Value)
	}
	return obj
}

// Len returns the number of members.
func (o *Object) Len() int { return len(o.entries) }

// Set adds or replaces a member. A replaced member keeps its position.
func (o *Object) Set(key string, v Value) {
	if o.index == nil {
		o.index = make(map[string]int)
	}
	if i, ok := o.index[key]; ok {
		o.entries[i].Value = v
		return
	}
	o.index[key] = len(o.entries)
	o.entries = append(o.entries, Entry{Key: key, Value: v})
}

// Get returns the member stored under key.
func (o *Object) Get(key string) (Value, bool) {
	i, ok := o.index[key]
	if !ok {
		return nil, false
	}
	return o.entries[i].Value, true
}

// Keys returns the member keys in insertion order.
func (o *Object) Keys() []string {
	keys := make([]string, len(o.entries))
	for i, e := range o.entries {
		keys[i] = e.Key
	}
	return keys
}

// Entries returns the members in insertion order. The slice must not be
// modified.
func (o *Object) Entries() []Entry { return o.entries }

// SortedKeys returns keys in RFC 8785 canonical order (UTF-16 code units).
// CRITICAL: Go's sort.Strings uses UTF-8 which produces DIFFERENT order.
func (o *Object) SortedKeys() []string {
	keys := o.Keys()
	slices.SortFunc(keys, CompareKeys)
	return keys
}

// CompareKeys compares strings using UTF-16 code unit ordering
// as required by RFC 8785 (Canonical JSON).
func CompareKeys(a, b string) int {
	a16 := utf16.Encode([]rune(a))
	b16 := utf16.Encode([]rune(b))

	minLen := min(len(a16), len(b16))
	for i := 0; i < minLen; i++ {
		if a16[i] != b16[i] {
			if a16[i] < b16[i] {
				return -1
			}
			return 1
		}
	}

	// If all compared units are equal, shorter string comes first
	switch {
	case len(a16) < len(b16):
		return -1
	case len(a16) > len(b16):
		return 1
	}
	return 0
}

// Same reports whether a and b are the identical container. Scalars are
// never the same node, whatever their contents.
func Same(a, b Value) bool {
	ca, ok := a.(Container)
	if !ok {
		return false
	}
	cb, ok := b.(Container)
	return ok && ca == cb
}

// TypeName returns the constructor-style tag of v used in diagnostics.
func TypeName(v Value) string {
	switch v.(type) {
	case nil, Undefined:
		return "undefined"
	case Null:
		return "null"
	case String:
		return "String"
	case Bool:
		return "Boolean"
	case Int, Float:
		return "Number"
	case *BigInt:
		return "BigInt"
	case *Array:
		return "Array"
	case *Object:
		return "Object"
	default:
		return "unknown"
	}
}
