// Package jsonenc renders ir value graphs as JSON text.
//
// It is the base encoder: it owns the recursive walk, calls an optional
// transform for every node, and decides layout, escaping and number
// formatting. Output matches the conventions of a standard JSON
// serializer: members in insertion order (or RFC 8785 order with
// WithSortKeys), ": " after keys only when indenting, no HTML escaping.
//
// The encoder refuses what it cannot render. A *ir.BigInt without a
// conversion hook, or a container that contains itself, is an
// *EncodeError.
package jsonenc
