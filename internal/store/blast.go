package store

import "fmt"

// MissingComponents returns every component name some file falls back on,
// with the files that use it, ordered by name. The layout component is
// excluded because it never receives a fallback.
func (s *Store) MissingComponents(layoutName string) ([]ComponentUse, error) {
	rows, err := s.db.Query(
		`SELECT DISTINCT d.name, f.path
		FROM discoveries d
		JOIN files f ON f.id = d.file_id
		WHERE d.kind = ? AND d.name != ?
		ORDER BY d.name, f.path`,
		KindComponent, layoutName,
	)
	if err != nil {
		return nil, fmt.Errorf("missing components: %w", err)
	}
	defer rows.Close()

	var uses []ComponentUse
	for rows.Next() {
		var name, path string
		if err := rows.Scan(&name, &path); err != nil {
			return nil, fmt.Errorf("scan component use: %w", err)
		}
		if n := len(uses); n > 0 && uses[n-1].Name == name {
			uses[n-1].Paths = append(uses[n-1].Paths, path)
			continue
		}
		uses = append(uses, ComponentUse{Name: name, Paths: []string{path}})
	}
	return uses, rows.Err()
}

// FilesUsing returns the paths of files with a discovery of the given kind
// and name. This is the set of outputs affected when that name starts or
// stops being provided.
func (s *Store) FilesUsing(kind, name string) ([]string, error) {
	rows, err := s.db.Query(
		`SELECT DISTINCT f.path
		FROM discoveries d
		JOIN files f ON f.id = d.file_id
		WHERE d.kind = ? AND d.name = ?
		ORDER BY f.path`,
		kind, name,
	)
	if err != nil {
		return nil, fmt.Errorf("files using %s %q: %w", kind, name, err)
	}
	defer rows.Close()
	var paths []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("scan file path: %w", err)
		}
		paths = append(paths, p)
	}
	return paths, rows.Err()
}
