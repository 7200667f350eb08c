package scraper

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var nonPriceChars = regexp.MustCompile(`[^\d,]`)

// ParsePrice converts Brazilian storefront price text ("R$ 1.234,56")
// into a float. Thousands separators are dropped and the decimal comma
// becomes a dot.
func ParsePrice(text string) (float64, error) {
	cleaned := nonPriceChars.ReplaceAllString(text, "")
	cleaned = strings.ReplaceAll(cleaned, ",", ".")
	if cleaned == "" {
		return 0, fmt.Errorf("no digits in price text %q", text)
	}

	price, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("unparseable price text %q: %w", text, err)
	}
	return price, nil
}
