package reconcile

import (
	"comparador_server/structs"
	"comparador_server/structs/tables"
)

// ComputePriceStats aggregates min and mean over the in-stock prices of the
// full observation set. Zero prices are the out-of-stock sentinel and are
// excluded; with no priced observation at all both values are 0, which
// callers read as "no valid price data", not as an error.
func ComputePriceStats(observations []tables.PriceObservation) structs.PriceStats {
	var (
		min   float64
		sum   float64
		count int
	)

	for _, o := range observations {
		if !o.InStock() {
			continue
		}
		if count == 0 || o.Price < min {
			min = o.Price
		}
		sum += o.Price
		count++
	}

	if count == 0 {
		return structs.PriceStats{}
	}

	return structs.PriceStats{
		Min: min,
		Avg: sum / float64(count),
	}
}
