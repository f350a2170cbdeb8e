package store

import (
	"database/sql"
	"fmt"
)

// querier is satisfied by *sql.DB and *sql.Tx.
type querier interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}

// --- File operations ---

// UpsertFile inserts f or updates the row with the same path, and sets f.ID.
func (s *Store) UpsertFile(f *File) (int64, error) {
	return upsertFileTx(s.db, f)
}

func upsertFileTx(q querier, f *File) (int64, error) {
	_, err := q.Exec(
		`INSERT INTO files (path, hash, options_hash, output_path, last_rewritten) VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(path) DO UPDATE SET
			hash = excluded.hash,
			options_hash = excluded.options_hash,
			output_path = excluded.output_path,
			last_rewritten = excluded.last_rewritten`,
		f.Path, f.Hash, f.OptionsHash, f.OutputPath, f.LastRewritten,
	)
	if err != nil {
		return 0, fmt.Errorf("upsert file %s: %w", f.Path, err)
	}
	if err := q.QueryRow("SELECT id FROM files WHERE path = ?", f.Path).Scan(&f.ID); err != nil {
		return 0, fmt.Errorf("upsert file %s: id: %w", f.Path, err)
	}
	return f.ID, nil
}

// FileByPath returns the file stored under path, or nil if there is none.
func (s *Store) FileByPath(path string) (*File, error) {
	f := &File{}
	var out sql.NullString
	var last sql.NullTime
	err := s.db.QueryRow(
		"SELECT id, path, hash, options_hash, output_path, last_rewritten FROM files WHERE path = ?", path,
	).Scan(&f.ID, &f.Path, &f.Hash, &f.OptionsHash, &out, &last)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("file by path: %w", err)
	}
	f.OutputPath = out.String
	f.LastRewritten = last.Time
	return f, nil
}

// Files returns every stored file ordered by path.
func (s *Store) Files() ([]*File, error) {
	rows, err := s.db.Query(
		"SELECT id, path, hash, options_hash, output_path, last_rewritten FROM files ORDER BY path",
	)
	if err != nil {
		return nil, fmt.Errorf("files: %w", err)
	}
	defer rows.Close()
	var files []*File
	for rows.Next() {
		f := &File{}
		var out sql.NullString
		var last sql.NullTime
		if err := rows.Scan(&f.ID, &f.Path, &f.Hash, &f.OptionsHash, &out, &last); err != nil {
			return nil, fmt.Errorf("scan file: %w", err)
		}
		f.OutputPath = out.String
		f.LastRewritten = last.Time
		files = append(files, f)
	}
	return files, rows.Err()
}

// --- Discovery operations ---

// ReplaceDiscoveries swaps the discoveries of fileID for ds in one
// transaction. FileID on each discovery is overwritten.
func (s *Store) ReplaceDiscoveries(fileID int64, ds []Discovery) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()
	if err := replaceDiscoveriesTx(tx, fileID, ds); err != nil {
		return err
	}
	return tx.Commit()
}

func replaceDiscoveriesTx(q querier, fileID int64, ds []Discovery) error {
	if _, err := q.Exec("DELETE FROM discoveries WHERE file_id = ?", fileID); err != nil {
		return fmt.Errorf("delete discoveries: %w", err)
	}
	for i := range ds {
		d := &ds[i]
		d.FileID = fileID
		res, err := q.Exec(
			"INSERT INTO discoveries (file_id, function_name, kind, name) VALUES (?, ?, ?, ?)",
			d.FileID, d.FunctionName, d.Kind, d.Name,
		)
		if err != nil {
			return fmt.Errorf("insert discovery %q: %w", d.Name, err)
		}
		if d.ID, err = res.LastInsertId(); err != nil {
			return fmt.Errorf("last insert id: %w", err)
		}
	}
	return nil
}

// DiscoveriesByFile returns the discoveries of one file in insertion order.
func (s *Store) DiscoveriesByFile(fileID int64) ([]*Discovery, error) {
	rows, err := s.db.Query(
		"SELECT id, file_id, function_name, kind, name FROM discoveries WHERE file_id = ? ORDER BY id", fileID,
	)
	if err != nil {
		return nil, fmt.Errorf("discoveries by file: %w", err)
	}
	defer rows.Close()
	var ds []*Discovery
	for rows.Next() {
		d := &Discovery{}
		if err := rows.Scan(&d.ID, &d.FileID, &d.FunctionName, &d.Kind, &d.Name); err != nil {
			return nil, fmt.Errorf("scan discovery: %w", err)
		}
		ds = append(ds, d)
	}
	return ds, rows.Err()
}

// RecordFile upserts a file and replaces its discoveries in one transaction.
func (s *Store) RecordFile(rec *FileRecord) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()
	if err := recordFileTx(tx, rec); err != nil {
		return err
	}
	return tx.Commit()
}

func recordFileTx(q querier, rec *FileRecord) error {
	id, err := upsertFileTx(q, &rec.File)
	if err != nil {
		return err
	}
	return replaceDiscoveriesTx(q, id, rec.Discoveries)
}
