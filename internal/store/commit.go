package store

import "fmt"

// CommitBatch writes all buffered records from a BatchedStore within a
// single transaction. Records are applied in buffer order, so a path
// recorded twice keeps its last record.
func (s *Store) CommitBatch(batch *BatchedStore) error {
	batch.mu.Lock()
	records := batch.Records
	batch.mu.Unlock()
	if len(records) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("commit batch: begin: %w", err)
	}
	defer tx.Rollback()

	for i := range records {
		if err := recordFileTx(tx, &records[i]); err != nil {
			return fmt.Errorf("commit batch: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit batch: %w", err)
	}
	return nil
}
