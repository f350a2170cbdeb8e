package jsxrewrite

import (
	"errors"
	"fmt"
)

// ErrNotCached is returned by Report lookups for files the cache has never
// rewritten.
var ErrNotCached = errors.New("jsxrewrite: file not in cache")

// Report answers questions about a project from the rewrite cache.
type Report struct {
	store *Store
}

// MissingComponents lists every component some file falls back on unless a
// provider or the props supply it, with the files that use it.
func (r *Report) MissingComponents() ([]ComponentUse, error) {
	uses, err := r.store.MissingComponents(layoutName)
	if err != nil {
		return nil, fmt.Errorf("jsxrewrite: report: %w", err)
	}
	return uses, nil
}

// FileDiscoveries returns the names collected from one file, in the order
// they were recorded. Returns ErrNotCached for unknown paths.
func (r *Report) FileDiscoveries(path string) ([]*Discovery, error) {
	f, err := r.store.FileByPath(path)
	if err != nil {
		return nil, fmt.Errorf("jsxrewrite: report: %w", err)
	}
	if f == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotCached, path)
	}
	ds, err := r.store.DiscoveriesByFile(f.ID)
	if err != nil {
		return nil, fmt.Errorf("jsxrewrite: report: %w", err)
	}
	return ds, nil
}

// FilesUsing returns the files whose output refers to the given name as a
// component. Use it to find what changes when a component is added to or
// removed from the provider.
func (r *Report) FilesUsing(name string) ([]string, error) {
	kind := KindComponent
	if !isComponentName(name) {
		kind = KindTag
	}
	paths, err := r.store.FilesUsing(kind, name)
	if err != nil {
		return nil, fmt.Errorf("jsxrewrite: report: %w", err)
	}
	return paths, nil
}

// Files returns every cached file ordered by path.
func (r *Report) Files() ([]*File, error) {
	files, err := r.store.Files()
	if err != nil {
		return nil, fmt.Errorf("jsxrewrite: report: %w", err)
	}
	return files, nil
}

// Runs returns up to limit runs, newest first. limit <= 0 returns all.
func (r *Report) Runs(limit int) ([]*Run, error) {
	runs, err := r.store.Runs(limit)
	if err != nil {
		return nil, fmt.Errorf("jsxrewrite: report: %w", err)
	}
	return runs, nil
}
