package store

import (
	"database/sql"
	"fmt"
	"time"
)

// InsertRun records the start of a batch run.
func (s *Store) InsertRun(id string, startedAt time.Time) error {
	if _, err := s.db.Exec("INSERT INTO runs (id, started_at) VALUES (?, ?)", id, startedAt); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

// FinishRun records the end of a batch run and its counts.
func (s *Store) FinishRun(id string, finishedAt time.Time, fileCount, errorCount int) error {
	res, err := s.db.Exec(
		"UPDATE runs SET finished_at = ?, file_count = ?, error_count = ? WHERE id = ?",
		finishedAt, fileCount, errorCount, id,
	)
	if err != nil {
		return fmt.Errorf("finish run: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("finish run: unknown run %s", id)
	}
	return nil
}

// Runs returns up to limit runs, newest first. limit <= 0 returns all.
func (s *Store) Runs(limit int) ([]*Run, error) {
	q := "SELECT id, started_at, finished_at, file_count, error_count FROM runs ORDER BY started_at DESC, rowid DESC"
	var args []any
	if limit > 0 {
		q += " LIMIT ?"
		args = append(args, limit)
	}
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("runs: %w", err)
	}
	defer rows.Close()
	var runs []*Run
	for rows.Next() {
		r := &Run{}
		var finished sql.NullTime
		if err := rows.Scan(&r.ID, &r.StartedAt, &finished, &r.FileCount, &r.ErrorCount); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		if finished.Valid {
			t := finished.Time
			r.FinishedAt = &t
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
