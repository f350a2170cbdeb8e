package store

import "sync"

// BatchedStore buffers file records in memory so parallel workers never
// touch SQLite. CommitBatch writes them in one transaction.
//
// Thread safety: the mutex protects the slice appends.
type BatchedStore struct {
	mu      sync.Mutex
	Records []FileRecord
}

// Compile-time check: *BatchedStore satisfies DataStore.
var _ DataStore = (*BatchedStore)(nil)

// NewBatchedStore creates an empty BatchedStore.
func NewBatchedStore() *BatchedStore {
	return &BatchedStore{}
}

// RecordFile buffers a copy of rec.
func (b *BatchedStore) RecordFile(rec *FileRecord) error {
	cp := FileRecord{File: rec.File, Discoveries: append([]Discovery(nil), rec.Discoveries...)}
	b.mu.Lock()
	b.Records = append(b.Records, cp)
	b.mu.Unlock()
	return nil
}

// Len returns the number of buffered records.
func (b *BatchedStore) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.Records)
}
