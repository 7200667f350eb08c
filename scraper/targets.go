package scraper

import (
	"encoding/json"
	"fmt"
	"os"
)

// Target maps one tracked product to its page on each store.
type Target struct {
	ProductKey string            `json:"product_key"`
	URLs       map[string]string `json:"urls"`
}

// LoadTargets reads the scrape target list from a JSON file.
func LoadTargets(path string) ([]Target, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read targets file: %w", err)
	}

	var targets []Target
	if err := json.Unmarshal(raw, &targets); err != nil {
		return nil, fmt.Errorf("failed to parse targets file: %w", err)
	}

	for i, t := range targets {
		if t.ProductKey == "" {
			return nil, fmt.Errorf("target %d is missing product_key", i)
		}
		if len(t.URLs) == 0 {
			return nil, fmt.Errorf("target %q has no store urls", t.ProductKey)
		}
	}

	return targets, nil
}
