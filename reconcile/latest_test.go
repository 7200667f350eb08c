package reconcile

import (
	"testing"
	"time"

	"comparador_server/lib"
	"comparador_server/structs/tables"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func obs(key, store string, at time.Time, price float64) tables.PriceObservation {
	return tables.PriceObservation{
		ProductKey: key,
		Store:      store,
		ObservedAt: at,
		Price:      price,
	}
}

var baseTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestLatestByStorePicksGreatestTimestamp(t *testing.T) {
	input := []tables.PriceObservation{
		obs("gpu", "Kabum", baseTime, 1000),
		obs("gpu", "Kabum", baseTime.Add(24*time.Hour), 950),
		obs("gpu", "Pichau", baseTime.Add(48*time.Hour), 900),
		obs("gpu", "Pichau", baseTime, 990),
	}

	latest, err := LatestByStore(input)
	require.NoError(t, err)
	require.Len(t, latest, 2)

	assert.Equal(t, "Kabum", latest[0].Store)
	assert.Equal(t, 950.0, latest[0].Price)
	assert.Equal(t, baseTime.Add(24*time.Hour), latest[0].ObservedAt)

	assert.Equal(t, "Pichau", latest[1].Store)
	assert.Equal(t, 900.0, latest[1].Price)
}

func TestLatestByStoreEqualTimestampKeepsFirstInInputOrder(t *testing.T) {
	input := []tables.PriceObservation{
		obs("gpu", "Kabum", baseTime, 1000),
		obs("gpu", "Kabum", baseTime, 950),
	}

	latest, err := LatestByStore(input)
	require.NoError(t, err)
	require.Len(t, latest, 1)
	assert.Equal(t, 1000.0, latest[0].Price)
}

func TestLatestByStoreEmptyInput(t *testing.T) {
	_, err := LatestByStore(nil)
	assert.ErrorIs(t, err, lib.ErrNoObservations)
}

func TestPickRepresentativeLowestInStockPrice(t *testing.T) {
	latest := []tables.PriceObservation{
		obs("gpu", "Kabum", baseTime, 950),
		obs("gpu", "Pichau", baseTime, 900),
		obs("gpu", "Terabyte", baseTime, 0), // out of stock
	}

	rep, err := PickRepresentative(latest)
	require.NoError(t, err)
	assert.Equal(t, "Pichau", rep.Store)
	assert.Equal(t, 900.0, rep.Price)
}

func TestPickRepresentativeMinPriceTieBreaksOnStoreName(t *testing.T) {
	latest := []tables.PriceObservation{
		obs("gpu", "B", baseTime, 100),
		obs("gpu", "A", baseTime, 100),
	}

	for range 5 {
		rep, err := PickRepresentative(latest)
		require.NoError(t, err)
		assert.Equal(t, "A", rep.Store)
	}
}

func TestPickRepresentativeAllOutOfStockFallsToFreshest(t *testing.T) {
	latest := []tables.PriceObservation{
		obs("gpu", "A", baseTime, 0),
		obs("gpu", "B", baseTime.Add(time.Hour), 0),
	}

	rep, err := PickRepresentative(latest)
	require.NoError(t, err)
	assert.Equal(t, "B", rep.Store)
	assert.False(t, rep.InStock())
}

func TestPickRepresentativeMemberOfInput(t *testing.T) {
	latest := []tables.PriceObservation{
		obs("gpu", "A", baseTime, 120),
		obs("gpu", "B", baseTime, 80),
		obs("gpu", "C", baseTime, 0),
	}

	rep, err := PickRepresentative(latest)
	require.NoError(t, err)

	found := false
	for _, o := range latest {
		if o == rep {
			found = true
		}
	}
	assert.True(t, found, "representative must be a member of the input")
}

func TestPickRepresentativeEmptyInput(t *testing.T) {
	_, err := PickRepresentative(nil)
	assert.ErrorIs(t, err, lib.ErrNoObservations)
}
