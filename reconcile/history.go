package reconcile

import (
	"fmt"
	"sort"

	"comparador_server/structs"
	"comparador_server/structs/tables"
)

const historyDateLayout = "2006-01-02"

// PriceHistory projects the full observation set (not just latest-per-store)
// into the product's price timeline: (date, price, store) triples sorted by
// time. A store re-reporting an unchanged price on the same day adds no
// point; a changed price always does, even same-day.
func PriceHistory(observations []tables.PriceObservation) []structs.PricePoint {
	sorted := make([]tables.PriceObservation, len(observations))
	copy(sorted, observations)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].ObservedAt.Equal(sorted[j].ObservedAt) {
			return sorted[i].ObservedAt.Before(sorted[j].ObservedAt)
		}
		return sorted[i].Store < sorted[j].Store
	})

	seen := make(map[string]struct{}, len(sorted))
	points := make([]structs.PricePoint, 0, len(sorted))

	for _, o := range sorted {
		point := structs.PricePoint{
			Date:  o.ObservedAt.UTC().Format(historyDateLayout),
			Price: o.Price,
			Store: o.Store,
		}

		key := fmt.Sprintf("%s|%s|%g", point.Date, point.Store, point.Price)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		points = append(points, point)
	}

	return points
}
