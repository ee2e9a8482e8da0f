// Package store provides a SQLite-backed log of encoded snapshots.
//
// Each run of `cyclejson encode --db` appends one row holding the encoded
// text, its content hash, the input it came from and the cycles that were
// replaced. Rows are never updated.
//
// # Ordering
//
//   - seq INTEGER is the logical clock, assigned by SQLite on insert
//   - Every query orders by seq, so results are deterministic
//   - Snapshot IDs are UUIDv7 and sort by creation time as well
//
// # Database Configuration
//
// The log runs in WAL mode with synchronous=NORMAL and a 5 second busy
// timeout. Its schema version is kept in user_version and older logs are
// migrated on Open.
//
// Content hashes are computed by ir.ContentHash (SHA-256 with domain
// separation), so identical outputs share a hash across inputs.
package store
