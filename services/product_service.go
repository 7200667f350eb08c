package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"comparador_server/database"
	"comparador_server/lib"
	"comparador_server/present"
	"comparador_server/reconcile"
	"comparador_server/structs"
	"comparador_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"golang.org/x/sync/singleflight"
)

// ObservationSource is the read boundary to the observation store. The
// scraper is the only writer; this side only loads immutable snapshots.
type ObservationSource interface {
	FetchAll(ctx context.Context) ([]tables.PriceObservation, error)
	FetchByProductKey(ctx context.Context, key string) ([]tables.PriceObservation, error)
}

type observationRepo struct {
	db *database.DB
}

// NewObservationRepo returns the Postgres-backed ObservationSource.
func NewObservationRepo(db *database.DB) ObservationSource {
	return &observationRepo{db: db}
}

// Rows come back ordered by (observed_at, id) so that equal-timestamp
// tie-breaks stay stable across invocations.
func (r *observationRepo) FetchAll(ctx context.Context) ([]tables.PriceObservation, error) {
	observations, err := database.Query[tables.PriceObservation](r.db).
		OrderBy("observed_at", database.ASC).
		OrderBy("id", database.ASC).
		Timeout(10 * time.Second).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", lib.ErrStoreUnavailable, err)
	}
	return observations, nil
}

func (r *observationRepo) FetchByProductKey(ctx context.Context, key string) ([]tables.PriceObservation, error) {
	observations, err := database.Query[tables.PriceObservation](r.db).
		Where("product_key", key).
		OrderBy("observed_at", database.ASC).
		OrderBy("id", database.ASC).
		Timeout(5 * time.Second).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", lib.ErrStoreUnavailable, err)
	}
	return observations, nil
}

type ProductService struct {
	logger       *gecho.Logger
	source       ObservationSource
	cacheService *CacheService
	catalog      *structs.CatalogConfig

	// flight collapses concurrent reconciliations of the same product key
	// into a single computation.
	flight singleflight.Group
}

func NewProductService(logger *gecho.Logger, source ObservationSource, cacheService *CacheService, catalog *structs.CatalogConfig) *ProductService {
	return &ProductService{
		logger:       logger,
		source:       source,
		cacheService: cacheService,
		catalog:      catalog,
	}
}

// ListOptions contains the listing mode flags.
type ListOptions struct {
	// IncludeHistory embeds the full price timeline per product. Off by
	// default to keep listing payloads small.
	IncludeHistory bool
}

// GetProduct returns the fully reconciled view for one product key,
// including its price history. Returns lib.ErrNotFound when the key has no
// usable observations and lib.ErrStoreUnavailable when loading fails.
func (ps *ProductService) GetProduct(ctx context.Context, key string) (*structs.ProductView, error) {
	startTime := time.Now()
	key = lib.NormalizeProductKey(key)

	observations, err := ps.source.FetchByProductKey(ctx, key)
	if err != nil {
		return nil, err
	}
	if len(observations) == 0 {
		return nil, lib.ErrNotFound
	}

	valid := ps.cleanAndLog(key, observations)
	if len(valid) == 0 {
		return nil, lib.ErrNotFound
	}

	// New observations move the max timestamp, which moves the cache key,
	// so stale entries are never served.
	cacheKey := productViewCacheKey(key, maxObservedAt(valid))

	if cached := ps.cachedView(cacheKey); cached != nil {
		ps.logger.Debug("Product view served from cache",
			gecho.Field("key", key),
			gecho.Field("duration", time.Since(startTime)),
		)
		return cached, nil
	}

	view, err, _ := ps.flight.Do(cacheKey, func() (any, error) {
		v, err := ps.buildView(key, valid, true)
		if err != nil {
			return nil, err
		}
		go ps.storeView(cacheKey, v)
		return v, nil
	})
	if err != nil {
		return nil, err
	}

	ps.logger.Debug("Product view reconciled",
		gecho.Field("key", key),
		gecho.Field("observations", len(valid)),
		gecho.Field("duration", time.Since(startTime)),
	)

	result := view.(structs.ProductView)
	return &result, nil
}

// ListProducts reconciles every product in the catalog. A group that cannot
// be reconciled is logged and omitted; the rest of the listing is always
// served. An empty catalog yields an empty slice, not an error.
func (ps *ProductService) ListProducts(ctx context.Context, opts *ListOptions) ([]structs.ProductView, error) {
	startTime := time.Now()
	if opts == nil {
		opts = &ListOptions{}
	}

	observations, err := ps.source.FetchAll(ctx)
	if err != nil {
		return nil, err
	}

	valid := ps.cleanAndLog("catalog", observations)
	groups := reconcile.GroupByProductKey(valid)

	views := make([]structs.ProductView, 0, len(groups))
	for _, group := range groups {
		view, err := ps.buildView(group.Key, group.Observations, opts.IncludeHistory)
		if err != nil {
			ps.logger.Warn("Skipping product group that failed reconciliation",
				gecho.Field("key", group.Key),
				gecho.Field("error", err),
			)
			continue
		}
		views = append(views, view)
	}

	ps.logger.Debug("Catalog listing reconciled",
		gecho.Field("products", len(views)),
		gecho.Field("observations", len(valid)),
		gecho.Field("duration", time.Since(startTime)),
	)

	return views, nil
}

// GetPriceHistory returns the deduplicated price timeline for one product.
func (ps *ProductService) GetPriceHistory(ctx context.Context, key string) ([]structs.PricePoint, error) {
	key = lib.NormalizeProductKey(key)

	observations, err := ps.source.FetchByProductKey(ctx, key)
	if err != nil {
		return nil, err
	}
	if len(observations) == 0 {
		return nil, lib.ErrNotFound
	}

	valid := ps.cleanAndLog(key, observations)
	if len(valid) == 0 {
		return nil, lib.ErrNotFound
	}

	return reconcile.PriceHistory(valid), nil
}

// buildView runs the reconcile pipeline for one product group and formats
// the result.
func (ps *ProductService) buildView(key string, observations []tables.PriceObservation, includeHistory bool) (structs.ProductView, error) {
	latest, err := reconcile.LatestByStore(observations)
	if err != nil {
		return structs.ProductView{}, err
	}

	representative, err := reconcile.PickRepresentative(latest)
	if err != nil {
		return structs.ProductView{}, err
	}

	var history []structs.PricePoint
	if includeHistory {
		history = reconcile.PriceHistory(observations)
	}

	stats := reconcile.ComputePriceStats(observations)

	description := reconcile.SelectDescription(latest, representative, reconcile.DescriptionPolicy{
		Priority:        ps.catalog.DescriptionPriority,
		MinLength:       ps.catalog.MinDescriptionLength,
		LastResortStore: ps.catalog.LastResortStore,
	})

	return present.Product(key, latest, representative, history, stats, description, present.Options{
		IncludeHistory:   includeHistory,
		DefaultCategory:  ps.catalog.DefaultCategory,
		PlaceholderImage: ps.catalog.PlaceholderImage,
	}), nil
}

// cleanAndLog applies the skip-and-log policy for malformed rows.
func (ps *ProductService) cleanAndLog(scope string, observations []tables.PriceObservation) []tables.PriceObservation {
	valid, rejected := reconcile.Clean(observations)
	for _, o := range rejected {
		ps.logger.Warn("Skipping malformed observation",
			gecho.Field("scope", scope),
			gecho.Field("id", o.ID),
			gecho.Field("store", o.Store),
		)
	}
	return valid
}

func (ps *ProductService) cachedView(cacheKey string) *structs.ProductView {
	if ps.cacheService == nil {
		return nil
	}

	raw, err := ps.cacheService.Get(cacheKey)
	if err != nil {
		ps.logger.Warn("Failed to read product view from cache", gecho.Field("error", err), gecho.Field("cache_key", cacheKey))
		return nil
	}
	if raw == "" {
		return nil
	}

	var view structs.ProductView
	if err := json.Unmarshal([]byte(raw), &view); err != nil {
		ps.logger.Warn("Discarding undecodable cached product view", gecho.Field("error", err), gecho.Field("cache_key", cacheKey))
		return nil
	}
	return &view
}

func (ps *ProductService) storeView(cacheKey string, view structs.ProductView) {
	if ps.cacheService == nil {
		return
	}

	payload, err := json.Marshal(view)
	if err != nil {
		ps.logger.Warn("Failed to encode product view for cache", gecho.Field("error", err))
		return
	}
	if err := ps.cacheService.SetProductView(cacheKey, payload); err != nil {
		ps.logger.Warn("Failed to cache product view", gecho.Field("error", err), gecho.Field("cache_key", cacheKey))
	}
}

func productViewCacheKey(key string, maxObserved time.Time) string {
	return fmt.Sprintf("product:view:%s:%d", key, maxObserved.Unix())
}

func maxObservedAt(observations []tables.PriceObservation) time.Time {
	var max time.Time
	for _, o := range observations {
		if o.ObservedAt.After(max) {
			max = o.ObservedAt
		}
	}
	return max
}
