// Package reconcile derives the presentation-ready state of a product from
// its raw, append-only price observations: the current offer per store, the
// representative cover offer, the deduplicated price timeline, and the
// description to display. All functions are pure over their input.
package reconcile

import (
	"fmt"
	"math"
	"strings"

	"comparador_server/lib"
	"comparador_server/structs/tables"
)

// Validate checks the fields every observation must carry. Rows failing
// validation are skipped by callers, never served.
func Validate(o tables.PriceObservation) error {
	if strings.TrimSpace(o.ProductKey) == "" {
		return fmt.Errorf("%w: missing product_key", lib.ErrMalformedObservation)
	}
	if strings.TrimSpace(o.Store) == "" {
		return fmt.Errorf("%w: missing store", lib.ErrMalformedObservation)
	}
	if o.ObservedAt.IsZero() {
		return fmt.Errorf("%w: missing observed_at", lib.ErrMalformedObservation)
	}
	return nil
}

// Clean normalizes and validates a batch of observations. Valid rows come
// back normalized; rejected rows are returned separately so the caller can
// log them. A bad row never aborts the batch.
func Clean(observations []tables.PriceObservation) (valid, rejected []tables.PriceObservation) {
	valid = make([]tables.PriceObservation, 0, len(observations))

	for _, o := range observations {
		if err := Validate(o); err != nil {
			rejected = append(rejected, o)
			continue
		}
		valid = append(valid, Normalize(o))
	}

	return valid, rejected
}

// Normalize applies the defaulting rules: whitespace-normalized product key,
// trimmed store name, and price coerced to the out-of-stock sentinel 0 when
// negative or not a number.
func Normalize(o tables.PriceObservation) tables.PriceObservation {
	o.ProductKey = lib.NormalizeProductKey(o.ProductKey)
	o.Store = strings.TrimSpace(o.Store)

	if o.Price < 0 || math.IsNaN(o.Price) || math.IsInf(o.Price, 0) {
		o.Price = 0
	}

	return o
}

// Group is the observation set of one product key.
type Group struct {
	Key          string
	Observations []tables.PriceObservation
}

// GroupByProductKey partitions observations per product. Group order follows
// the first appearance of each key in the input, so identical input always
// yields identical ordering.
func GroupByProductKey(observations []tables.PriceObservation) []Group {
	index := make(map[string]int)
	groups := make([]Group, 0)

	for _, o := range observations {
		i, seen := index[o.ProductKey]
		if !seen {
			i = len(groups)
			index[o.ProductKey] = i
			groups = append(groups, Group{Key: o.ProductKey})
		}
		groups[i].Observations = append(groups[i].Observations, o)
	}

	return groups
}
