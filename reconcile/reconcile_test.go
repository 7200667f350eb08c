package reconcile

import (
	"testing"
	"time"

	"comparador_server/structs/tables"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Full pipeline over one product: two Kabum reports and a cheaper,
// fresher Pichau report.
func TestReconciliationEndToEnd(t *testing.T) {
	t1 := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(24 * time.Hour)
	t3 := t2.Add(24 * time.Hour)

	observations := []tables.PriceObservation{
		obs("GPU-X", "Kabum", t1, 1000),
		obs("GPU-X", "Kabum", t2, 950),
		obs("GPU-X", "Pichau", t3, 900),
	}

	latest, err := LatestByStore(observations)
	require.NoError(t, err)
	require.Len(t, latest, 2)
	assert.Equal(t, 950.0, latest[0].Price)
	assert.Equal(t, t2, latest[0].ObservedAt)
	assert.Equal(t, 900.0, latest[1].Price)
	assert.Equal(t, t3, latest[1].ObservedAt)

	rep, err := PickRepresentative(latest)
	require.NoError(t, err)
	assert.Equal(t, "Pichau", rep.Store)
	assert.Equal(t, 900.0, rep.Price)

	points := PriceHistory(observations)
	require.Len(t, points, 3)
	assert.Equal(t, 1000.0, points[0].Price)
	assert.Equal(t, "Kabum", points[0].Store)
	assert.Equal(t, 950.0, points[1].Price)
	assert.Equal(t, 900.0, points[2].Price)
	assert.Equal(t, "Pichau", points[2].Store)
}
