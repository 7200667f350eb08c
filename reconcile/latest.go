package reconcile

import (
	"sort"

	"comparador_server/lib"
	"comparador_server/structs/tables"
)

// LatestByStore reduces a product's observations to one row per store: the
// row with the greatest observed_at for that store. When two rows of the
// same store share the exact timestamp, the first one in input order wins
// (input is loaded ordered by observed_at, id, so the choice is stable).
// The result is sorted by store name.
func LatestByStore(observations []tables.PriceObservation) ([]tables.PriceObservation, error) {
	if len(observations) == 0 {
		return nil, lib.ErrNoObservations
	}

	byStore := make(map[string]tables.PriceObservation)
	for _, o := range observations {
		current, seen := byStore[o.Store]
		if !seen || o.ObservedAt.After(current.ObservedAt) {
			byStore[o.Store] = o
		}
	}

	latest := make([]tables.PriceObservation, 0, len(byStore))
	for _, o := range byStore {
		latest = append(latest, o)
	}
	sort.Slice(latest, func(i, j int) bool {
		return latest[i].Store < latest[j].Store
	})

	return latest, nil
}

// PickRepresentative chooses the single offer whose name, image and category
// become the product's cover. In-stock rows win on lowest price; when every
// store is out of stock the freshest report wins, so the cover is never
// empty. Ties fall to the lexicographically smallest store name.
func PickRepresentative(latest []tables.PriceObservation) (tables.PriceObservation, error) {
	if len(latest) == 0 {
		return tables.PriceObservation{}, lib.ErrNoObservations
	}

	var best *tables.PriceObservation
	for i := range latest {
		o := &latest[i]
		if !o.InStock() {
			continue
		}
		if best == nil || o.Price < best.Price ||
			(o.Price == best.Price && o.Store < best.Store) {
			best = o
		}
	}
	if best != nil {
		return *best, nil
	}

	// Everything out of stock: fall back to the most recent report.
	freshest := latest[0]
	for _, o := range latest[1:] {
		if o.ObservedAt.After(freshest.ObservedAt) ||
			(o.ObservedAt.Equal(freshest.ObservedAt) && o.Store < freshest.Store) {
			freshest = o
		}
	}

	return freshest, nil
}
