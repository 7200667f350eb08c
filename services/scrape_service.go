package services

import (
	"context"
	"fmt"
	"time"

	"comparador_server/database"
	"comparador_server/lib"
	"comparador_server/reconcile"
	"comparador_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

// ScrapeService is the single write path into the observation store. It
// appends batches produced by the scraper; nothing here updates or deletes.
type ScrapeService struct {
	logger *gecho.Logger
	db     *database.DB
}

func NewScrapeService(logger *gecho.Logger, db *database.DB) *ScrapeService {
	return &ScrapeService{
		logger: logger,
		db:     db,
	}
}

// SaveBatch validates, normalizes and appends one scrape run's observations.
// Malformed rows are logged and skipped, never inserted and never fatal to
// the batch. Returns the number of rows persisted.
func (ss *ScrapeService) SaveBatch(ctx context.Context, runID uuid.UUID, observations []tables.PriceObservation) (int, error) {
	valid, rejected := reconcile.Clean(observations)
	for _, o := range rejected {
		ss.logger.Warn("Dropping malformed scraped observation",
			gecho.Field("run_id", runID),
			gecho.Field("product_key", o.ProductKey),
			gecho.Field("store", o.Store),
		)
	}

	if len(valid) == 0 {
		ss.logger.Warn("Scrape batch contained no valid observations", gecho.Field("run_id", runID))
		return 0, nil
	}

	for i := range valid {
		valid[i].RunID = runID
	}

	_, err := database.Query[tables.PriceObservation](ss.db).
		Timeout(30 * time.Second).
		InsertMany(ctx, valid)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", lib.ErrStoreUnavailable, err)
	}

	ss.logger.Info("Scrape batch persisted",
		gecho.Field("run_id", runID),
		gecho.Field("rows", len(valid)),
		gecho.Field("rejected", len(rejected)),
	)

	return len(valid), nil
}
