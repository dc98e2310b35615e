// Package scanner sweeps screenshots against the item catalog and
// feeds accepted matches into the grant ledger.
package scanner

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"sync"

	"github.com/lootgrid/lootgrid/internal/domain"
	"github.com/lootgrid/lootgrid/internal/grid"
	"github.com/lootgrid/lootgrid/internal/imaging"
	"github.com/lootgrid/lootgrid/internal/logger"
	"github.com/lootgrid/lootgrid/internal/metrics"
	"github.com/lootgrid/lootgrid/internal/pixeldiff"
)

// Engine matches screenshot slots against catalog reference images.
// Comparisons are independent and side-effect-free, so the sweep fans
// out across a bounded number of goroutines.
type Engine struct {
	refs      imaging.Loader
	layout    grid.Layout
	tolerance float64
	threshold int
	workers   int
}

// NewEngine creates a match engine.
// refs should be a caching loader: every incoming screenshot reads the
// whole catalog's reference images again.
func NewEngine(refs imaging.Loader, layout grid.Layout, tolerance float64, threshold, workers int) *Engine {
	if workers <= 0 {
		workers = DefaultMatchWorkers
	}
	return &Engine{
		refs:      refs,
		layout:    layout,
		tolerance: tolerance,
		threshold: threshold,
		workers:   workers,
	}
}

// FindMatches sweeps every catalog item across every slot and returns
// the (item, slot) pairs whose diff count clears the acceptance
// threshold, ordered by slot then item ID.
//
// Per-pair out-of-bounds and dimension errors are logged and treated
// as "no match" without aborting the sweep. The same item can match
// several slots and several items can match one slot; deduplication is
// the ledger's job.
func (e *Engine) FindMatches(ctx context.Context, screenshot *imaging.PixelBuffer, catalog []domain.Item) ([]domain.Match, error) {
	log := logger.FromContext(ctx)

	var (
		mu      sync.Mutex
		matches []domain.Match
		wg      sync.WaitGroup
	)
	sem := make(chan struct{}, e.workers)

	for _, item := range catalog {
		if ctx.Err() != nil {
			break
		}

		ref, err := e.refs.Load(ctx, item.ReferenceImage)
		if err != nil {
			log.Warn(LogMsgReferenceSkipped, "item", item.Name, "error", err)
			continue
		}

		for slot := range e.layout.Origins {
			wg.Add(1)
			go func(item domain.Item, ref *imaging.PixelBuffer, slot int) {
				defer wg.Done()
				sem <- struct{}{}
				defer func() { <-sem }()

				if ctx.Err() != nil {
					return
				}

				match, ok := e.compare(ctx, screenshot, item, ref, slot)
				if !ok {
					return
				}

				mu.Lock()
				matches = append(matches, match)
				mu.Unlock()
			}(item, ref, slot)
		}
	}

	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].SlotIndex != matches[j].SlotIndex {
			return matches[i].SlotIndex < matches[j].SlotIndex
		}
		return matches[i].Item.ID < matches[j].Item.ID
	})

	metrics.MatchesFound.Add(float64(len(matches)))
	return matches, nil
}

// compare diffs one slot region against one reference image.
func (e *Engine) compare(ctx context.Context, screenshot *imaging.PixelBuffer, item domain.Item, ref *imaging.PixelBuffer, slot int) (domain.Match, bool) {
	log := logger.FromContext(ctx)

	region, err := grid.ExtractSlot(screenshot, e.layout, slot, ref.Width, ref.Height)
	if err != nil {
		e.skip(log, item, slot, err)
		return domain.Match{}, false
	}

	diffCount, err := pixeldiff.Diff(region, ref, e.tolerance)
	if err != nil {
		e.skip(log, item, slot, err)
		return domain.Match{}, false
	}

	if diffCount > e.threshold {
		return domain.Match{}, false
	}

	log.Debug(LogMsgMatchAccepted, "item", item.Name, "slot", slot, "diff_pixels", diffCount)
	return domain.Match{Item: item, SlotIndex: slot, DiffCount: diffCount}, true
}

func (e *Engine) skip(log *slog.Logger, item domain.Item, slot int, err error) {
	if errors.Is(err, domain.ErrOutOfBounds) || errors.Is(err, domain.ErrDimensionMismatch) {
		metrics.ComparisonsSkipped.Inc()
		log.Debug(LogMsgComparisonSkipped, "item", item.Name, "slot", slot, "reason", err)
	}
}
