package jsxrewrite

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jward/jsxrewrite/internal/store"
)

// rewriteParallel rewrites files using a three-phase pipeline:
//
//	Phase A (serial):   Read, hash check, skip unchanged files.
//	Phase B (parallel): Parse, rewrite, print and write outputs in a worker pool.
//	Phase C (serial):   Commit all file records to SQLite in one transaction.
func (e *Engine) rewriteParallel(ctx context.Context, base string, paths []string, sum *RunSummary) {
	// ---- Phase A: Serial file preparation ----
	var items []workItem
	for _, path := range paths {
		item, skip, err := e.prepareFile(base, path)
		if err != nil {
			sum.Errors = append(sum.Errors, fmt.Errorf("prepare %s: %w", path, err))
			continue
		}
		if skip {
			sum.Skipped++
			continue
		}
		items = append(items, item)
	}
	if len(items) == 0 {
		return
	}

	// ---- Phase B: Parallel rewriting ----
	batch := store.NewBatchedStore()
	var (
		mu       sync.Mutex
		outcomes = make([]*FileOutcome, len(items))
		errs     []error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(e.workers, len(items)))
	for i, item := range items {
		g.Go(func() error {
			// A cancelled run stops handing out work; per-file failures do not.
			if err := gctx.Err(); err != nil {
				return err
			}
			outcome, err := e.rewriteFile(gctx, item, batch)
			if err != nil {
				mu.Lock()
				errs = append(errs, fmt.Errorf("rewrite %s: %w", item.path, err))
				mu.Unlock()
				return nil
			}
			outcomes[i] = &outcome
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		errs = append(errs, err)
	}

	// ---- Phase C: Serial commit ----
	if err := e.store.CommitBatch(batch); err != nil {
		sum.Errors = append(sum.Errors, append(errs, fmt.Errorf("commit: %w", err))...)
		e.logger.Warn("commit failed; outputs were written but not recorded", zap.Int("files", batch.Len()))
		return
	}
	for _, o := range outcomes {
		if o != nil {
			sum.Rewritten = append(sum.Rewritten, *o)
		}
	}
	sum.Errors = append(sum.Errors, errs...)
}
