// Package store persists the full collection of daily records.
//
// Every backend loads and saves the whole collection at once; there is no
// partial update and no locking between processes, so two concurrent runs
// resolve as last writer wins.
//
// Backends
//
//   - JSONStore: cali_data.json, written via a temp file and rename
//   - SQLiteStore: cali_data.db, schema managed by embedded goose migrations
//   - MemoryStore: in-process, for tests
package store
