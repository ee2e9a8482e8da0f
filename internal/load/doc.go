// Package load decodes input documents into ir value graphs.
//
// JSON, CUE and TOML documents always decode to trees. YAML anchors are
// decoded once, so aliases share the anchored node and an alias nested
// inside its own anchor produces a cyclic graph.
package load
