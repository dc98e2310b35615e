package scanner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lootgrid/lootgrid/internal/domain"
	"github.com/lootgrid/lootgrid/internal/imaging"
	"github.com/lootgrid/lootgrid/internal/ledger"
	"github.com/lootgrid/lootgrid/internal/logger"
	"github.com/lootgrid/lootgrid/internal/metrics"
)

// Submitter identifies the player who posted a screenshot.
type Submitter struct {
	DiscordID   string
	DisplayName string
}

// Service runs the full pipeline for one screenshot: fetch and decode,
// sweep the catalog, then push every accepted match through the grant
// ledger.
type Service interface {
	ProcessScreenshot(ctx context.Context, ref string, submitter Submitter) ([]domain.GrantResult, error)
}

type service struct {
	screenshots imaging.Loader
	engine      *Engine
	catalog     []domain.Item
	ledger      ledger.Service
}

// NewService creates the scan pipeline.
// catalog is the immutable snapshot loaded at startup; refreshing it
// means constructing a new service.
func NewService(screenshots imaging.Loader, engine *Engine, catalog []domain.Item, ledgerSvc ledger.Service) Service {
	return &service{
		screenshots: screenshots,
		engine:      engine,
		catalog:     catalog,
		ledger:      ledgerSvc,
	}
}

// ProcessScreenshot handles one attachment end to end and returns one
// grant result per distinct matched item. Fetch and decode failures
// abort this screenshot only. A grant that failed after retries is
// omitted from the results rather than misreported as success.
func (s *service) ProcessScreenshot(ctx context.Context, ref string, submitter Submitter) ([]domain.GrantResult, error) {
	ctx = logger.WithScanID(ctx, logger.GenerateScanID())
	log := logger.FromContext(ctx)

	start := time.Now()
	metrics.ScreenshotsProcessed.Inc()

	screenshot, err := s.screenshots.Load(ctx, ref)
	if err != nil {
		s.observeFailure(err)
		log.Warn(LogMsgScreenshotFailed, "ref", ref, "error", err)
		return nil, fmt.Errorf("failed to load screenshot: %w", err)
	}

	matches, err := s.engine.FindMatches(ctx, screenshot, s.catalog)
	if err != nil {
		return nil, fmt.Errorf("catalog sweep aborted: %w", err)
	}

	metrics.ScanDuration.Observe(time.Since(start).Seconds())

	if len(matches) == 0 {
		log.Info(LogMsgScanComplete, "matches", 0, "duration_ms", time.Since(start).Milliseconds())
		return nil, nil
	}

	if _, err := s.ledger.RegisterPlayer(ctx, submitter.DiscordID, submitter.DisplayName); err != nil {
		return nil, fmt.Errorf("failed to register player: %w", err)
	}

	// The engine does not deduplicate across slots; the ledger is
	// idempotent, so one grant attempt per distinct item is enough.
	results := make([]domain.GrantResult, 0, len(matches))
	attempted := make(map[int]bool, len(matches))
	for _, match := range matches {
		if attempted[match.Item.ID] {
			continue
		}
		attempted[match.Item.ID] = true

		result, err := s.ledger.Grant(ctx, submitter.DiscordID, match.Item)
		if err != nil {
			log.Error("Grant failed", "item", match.Item.Name, "error", err)
			continue
		}
		results = append(results, *result)
	}

	log.Info(LogMsgScanComplete,
		"matches", len(matches),
		"items_attempted", len(attempted),
		"duration_ms", time.Since(start).Milliseconds())

	return results, nil
}

func (s *service) observeFailure(err error) {
	switch {
	case errors.Is(err, domain.ErrImageDecode):
		metrics.ScreenshotFailures.WithLabelValues(metrics.FailureReasonDecode).Inc()
	case errors.Is(err, domain.ErrImageFetch):
		metrics.ScreenshotFailures.WithLabelValues(metrics.FailureReasonFetch).Inc()
	}
}
