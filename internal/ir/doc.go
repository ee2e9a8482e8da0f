// Package ir defines the value graph that cyclejson encodes.
//
// Values are a closed set of types. Scalars (Null, String, Bool, Int,
// Float, *BigInt) are plain data. Containers (*Array, *Object) are
// reference nodes: two containers are the same node only when they are
// the same pointer, so a graph may share nodes and may contain cycles.
// Undefined is not data; it marks a member that encoders leave out.
//
// ir imports nothing internal. Every other package builds on it.
package ir
