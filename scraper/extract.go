package scraper

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"
)

// Extraction is the data pulled from one product page. Price 0 means
// the store reported the product as out of stock.
type Extraction struct {
	Name  string
	Price float64
	Image string
}

// Extractor pulls product data out of a parsed store page.
type Extractor func(doc *goquery.Document) (Extraction, error)

var extractors = map[string]Extractor{
	"Kabum":    extractKabum,
	"Pichau":   extractPichau,
	"Terabyte": extractTerabyte,
}

// ExtractorFor returns the page extractor for a store.
func ExtractorFor(store string) (Extractor, error) {
	ext, ok := extractors[store]
	if !ok {
		return nil, fmt.Errorf("store %q is not supported", store)
	}
	return ext, nil
}
