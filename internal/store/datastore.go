package store

// DataStore is the write side used while rewriting. Both Store (direct
// SQLite) and BatchedStore (in-memory buffering for parallel rewriting)
// implement this interface.
type DataStore interface {
	RecordFile(rec *FileRecord) error
}

// Compile-time check: *Store satisfies DataStore.
var _ DataStore = (*Store)(nil)
