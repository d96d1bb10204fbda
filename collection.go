package propfilter

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/youdz/propfilter/codec"
)

// FilterItems filters items with p, preserving input order.
//
// workers controls parallelism; values below 2 evaluate sequentially. The
// first evaluation error, or a context cancellation, aborts the operation.
// A nil predicate means filtering is disabled: every item passes.
func FilterItems(ctx context.Context, items []Item, p Predicate, workers int) ([]Item, error) {
	return FilterSlice(ctx, items, func(it Item) Item { return it }, p, workers)
}

// FilterSlice filters an arbitrary record slice with p, using itemOf to
// project each record to the Item the predicate reads. Input order is
// preserved.
//
// workers controls parallelism; values below 2 evaluate sequentially. The
// first evaluation error, or a context cancellation, aborts the operation.
// A nil predicate means filtering is disabled: every record passes.
func FilterSlice[T any](ctx context.Context, records []T, itemOf func(T) Item, p Predicate, workers int) ([]T, error) {
	if p == nil {
		out := make([]T, len(records))
		copy(out, records)
		return out, nil
	}

	items := make([]Item, len(records))
	for i, rec := range records {
		items[i] = itemOf(rec)
	}

	marks, err := evalMarks(ctx, items, p, workers)
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, len(records))
	for i, rec := range records {
		if marks[i] {
			out = append(out, rec)
		}
	}
	return out, nil
}

// filterConverted converts records with c before filtering them with p.
// Conversion failures abort with the offending record's position.
func filterConverted(ctx context.Context, records []any, c codec.Codec, p Predicate, workers int) ([]any, error) {
	if p == nil {
		out := make([]any, len(records))
		copy(out, records)
		return out, nil
	}

	items := make([]Item, len(records))
	for i, rec := range records {
		item, err := itemFromAny(rec, c)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		items[i] = item
	}

	marks, err := evalMarks(ctx, items, p, workers)
	if err != nil {
		return nil, err
	}

	out := make([]any, 0, len(records))
	for i, rec := range records {
		if marks[i] {
			out = append(out, rec)
		}
	}
	return out, nil
}

// evalMarks evaluates p over items and returns one keep/drop mark per item.
//
// With workers > 1 the item range is split into contiguous chunks, one
// goroutine per chunk, on an errgroup whose context cancels the remaining
// chunks as soon as any evaluation fails. Marks are written by index, so no
// two goroutines touch the same element.
func evalMarks(ctx context.Context, items []Item, p Predicate, workers int) ([]bool, error) {
	marks := make([]bool, len(items))

	if workers < 2 || len(items) < 2 {
		for i, item := range items {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			matched, err := p(item)
			if err != nil {
				return nil, err
			}
			marks[i] = matched
		}
		return marks, nil
	}

	if workers > len(items) {
		workers = len(items)
	}
	chunk := (len(items) + workers - 1) / workers

	g, gctx := errgroup.WithContext(ctx)
	for start := 0; start < len(items); start += chunk {
		end := min(start+chunk, len(items))
		g.Go(func() error {
			for i := start; i < end; i++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				matched, err := p(items[i])
				if err != nil {
					return err
				}
				marks[i] = matched
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return marks, nil
}
