// Package scraper collects price observations from the supported
// Brazilian hardware stores (Kabum, Pichau, Terabyte).
package scraper

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"time"

	"comparador_server/structs"
	"comparador_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

const acceptHeader = "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,image/apng,*/*;q=0.8"

type Scraper struct {
	logger  *gecho.Logger
	client  *resty.Client
	limiter *rate.Limiter
	cfg     *structs.ScraperConfig
}

func NewScraper(logger *gecho.Logger, cfg *structs.ScraperConfig) *Scraper {
	client := resty.New().
		SetTimeout(cfg.RequestTimeout).
		SetHeader("User-Agent", cfg.UserAgent).
		SetHeader("Accept", acceptHeader).
		SetHeader("Accept-Language", cfg.AcceptLanguage)

	// Stores throttle aggressive crawlers, so requests are paced.
	limiter := rate.NewLimiter(rate.Limit(float64(cfg.RequestsPerMin)/60.0), 1)

	return &Scraper{
		logger:  logger,
		client:  client,
		limiter: limiter,
		cfg:     cfg,
	}
}

// Run visits every target page and returns the rows that could be
// extracted. All rows of a run share one observed_at timestamp.
// Per-target failures are logged and skipped; a bad page never aborts
// the run.
func (s *Scraper) Run(ctx context.Context, targets []Target) []tables.PriceObservation {
	observedAt := time.Now().UTC()
	var results []tables.PriceObservation

	for _, target := range targets {
		stores := make([]string, 0, len(target.URLs))
		for store := range target.URLs {
			stores = append(stores, store)
		}
		sort.Strings(stores)

		for _, store := range stores {
			url := target.URLs[store]
			s.logger.Info("Scraping target",
				gecho.Field("product_key", target.ProductKey),
				gecho.Field("store", store),
			)

			extraction, err := s.scrapeStore(ctx, store, url)
			if err != nil {
				s.logger.Warn("Skipping target",
					gecho.Field("product_key", target.ProductKey),
					gecho.Field("store", store),
					gecho.Field("error", err),
				)
				continue
			}

			results = append(results, tables.PriceObservation{
				ProductKey:   target.ProductKey,
				Store:        store,
				ObservedAt:   observedAt,
				Price:        extraction.Price,
				RawName:      extraction.Name,
				ImageURL:     extraction.Image,
				AffiliateURL: url,
			})
		}
	}

	return results
}

func (s *Scraper) scrapeStore(ctx context.Context, store, url string) (Extraction, error) {
	extract, err := ExtractorFor(store)
	if err != nil {
		return Extraction{}, err
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return Extraction{}, err
	}

	res, err := s.client.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return Extraction{}, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	if res.IsError() {
		return Extraction{}, fmt.Errorf("%s returned status %d", store, res.StatusCode())
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
	if err != nil {
		return Extraction{}, fmt.Errorf("failed to parse %s page: %w", store, err)
	}

	return extract(doc)
}
