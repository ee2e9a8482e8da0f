// Package decycle renders value graphs that may contain cycles as JSON.
//
// The jsonenc encoder drives a depth-first pre-order walk and calls one
// transform per node. This package builds that transform:
//
//  1. Numeric coercion: *ir.BigInt becomes its decimal string.
//  2. Ancestor tracking: the live path from the root is rebuilt from the
//     sequence of holders, and the value is checked against it by identity.
//  3. Cycle resolution: when the value is an ancestor, the resolver replaces
//     it. The default yields "[Circular ~]" or "[Circular ~.a.b]".
//  4. Replacement: the caller's key allowlist or transform function.
//
// Only real cycles are substituted. A container reached twice along
// different branches is rendered twice.
//
// Every Encode call owns its ancestor path. Nothing is shared between
// calls, so encoding is safe from any number of goroutines.
package decycle
