package reconcile

import (
	"testing"

	"comparador_server/structs/tables"

	"github.com/stretchr/testify/assert"
)

func TestComputePriceStatsExcludesOutOfStock(t *testing.T) {
	input := []tables.PriceObservation{
		obs("gpu", "A", baseTime, 0),
		obs("gpu", "B", baseTime, 0),
		obs("gpu", "C", baseTime, 200),
		obs("gpu", "D", baseTime, 400),
	}

	stats := ComputePriceStats(input)
	assert.Equal(t, 200.0, stats.Min)
	assert.Equal(t, 300.0, stats.Avg)
}

func TestComputePriceStatsAllOutOfStock(t *testing.T) {
	input := []tables.PriceObservation{
		obs("gpu", "A", baseTime, 0),
		obs("gpu", "B", baseTime, 0),
	}

	stats := ComputePriceStats(input)
	assert.Zero(t, stats.Min)
	assert.Zero(t, stats.Avg)
}

func TestComputePriceStatsEmptyInput(t *testing.T) {
	stats := ComputePriceStats(nil)
	assert.Zero(t, stats.Min)
	assert.Zero(t, stats.Avg)
}
