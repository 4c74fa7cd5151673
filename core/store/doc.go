// Package store provides persistence for form submissions.
//
// The Store interface is deliberately small: LoadAll returns the whole
// collection in insertion order and AppendOne adds a record to the end.
// There is no update, delete or query operation; the collection is
// append-only.
//
// # Backends
//
//   - FileStore: a single JSON array document on disk, read in full on every
//     load and rewritten in full on every append. The default backend. It has
//     no concurrency control: concurrent appends can race and lose records.
//   - GormStore: a relational table via GORM, for deployments that need a
//     transactional store.
//   - MemoryStore: an in-memory slice, for tests and local experiments.
//
// # Identifiers
//
// Submission identifiers are derived from the creation timestamp
// (milliseconds since epoch), which makes them monotonically increasing for
// sequential appends without a coordination point.
package store
