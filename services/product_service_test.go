package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"comparador_server/lib"
	"comparador_server/structs"
	"comparador_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSource is an in-memory ObservationSource for exercising the service
// without a database.
type fakeSource struct {
	observations []tables.PriceObservation
	err          error
}

func (f *fakeSource) FetchAll(ctx context.Context) ([]tables.PriceObservation, error) {
	if f.err != nil {
		return nil, fmt.Errorf("%w: %v", lib.ErrStoreUnavailable, f.err)
	}
	return f.observations, nil
}

func (f *fakeSource) FetchByProductKey(ctx context.Context, key string) ([]tables.PriceObservation, error) {
	if f.err != nil {
		return nil, fmt.Errorf("%w: %v", lib.ErrStoreUnavailable, f.err)
	}
	var out []tables.PriceObservation
	for _, o := range f.observations {
		if o.ProductKey == key {
			out = append(out, o)
		}
	}
	return out, nil
}

var testCatalog = &structs.CatalogConfig{
	DescriptionPriority:  []string{"Pichau", "Terabyte", "Kabum"},
	MinDescriptionLength: 10,
	LastResortStore:      "Kabum",
	DefaultCategory:      "Eletrônicos",
	PlaceholderImage:     "/placeholder.svg",
}

func newTestService(source ObservationSource) *ProductService {
	return NewProductService(gecho.NewDefaultLogger(), source, nil, testCatalog)
}

func testObs(key, store string, at time.Time, price float64) tables.PriceObservation {
	return tables.PriceObservation{
		ProductKey: key,
		Store:      store,
		ObservedAt: at,
		Price:      price,
	}
}

var t0 = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestGetProductUnknownKey(t *testing.T) {
	svc := newTestService(&fakeSource{})

	_, err := svc.GetProduct(context.Background(), "nope")
	assert.ErrorIs(t, err, lib.ErrNotFound)
}

func TestGetProductStoreUnavailable(t *testing.T) {
	svc := newTestService(&fakeSource{err: fmt.Errorf("connection refused")})

	_, err := svc.GetProduct(context.Background(), "gpu")
	assert.ErrorIs(t, err, lib.ErrStoreUnavailable)
}

func TestGetProductReconcilesAcrossStores(t *testing.T) {
	svc := newTestService(&fakeSource{observations: []tables.PriceObservation{
		testObs("GPU-X", "Kabum", t0, 1000),
		testObs("GPU-X", "Kabum", t0.Add(24*time.Hour), 950),
		testObs("GPU-X", "Pichau", t0.Add(48*time.Hour), 900),
	}})

	view, err := svc.GetProduct(context.Background(), "GPU-X")
	require.NoError(t, err)

	assert.Equal(t, "GPU-X", view.ID)
	require.Len(t, view.Stores, 2)
	assert.Equal(t, "Kabum", view.Stores[0].Name)
	assert.Equal(t, 950.0, view.Stores[0].Price)
	assert.Equal(t, "Pichau", view.Stores[1].Name)
	assert.Equal(t, 900.0, view.Stores[1].Price)

	// Single product views always include the timeline.
	assert.Len(t, view.PriceHistory, 3)
	assert.Equal(t, 900.0, view.MinPrice)
	assert.InDelta(t, 950.0, view.AvgPrice, 0.001)
}

func TestGetProductNormalizesKey(t *testing.T) {
	svc := newTestService(&fakeSource{observations: []tables.PriceObservation{
		testObs("RX 6600", "Kabum", t0, 1500),
	}})

	view, err := svc.GetProduct(context.Background(), "  RX   6600 ")
	require.NoError(t, err)
	assert.Equal(t, "RX 6600", view.ID)
}

func TestGetProductAllRowsMalformed(t *testing.T) {
	svc := newTestService(&fakeSource{observations: []tables.PriceObservation{
		{ProductKey: "gpu", Store: "", ObservedAt: t0, Price: 100},
	}})

	_, err := svc.GetProduct(context.Background(), "gpu")
	assert.ErrorIs(t, err, lib.ErrNotFound)
}

func TestListProductsEmptyCatalog(t *testing.T) {
	svc := newTestService(&fakeSource{})

	views, err := svc.ListProducts(context.Background(), nil)
	require.NoError(t, err)
	assert.NotNil(t, views)
	assert.Empty(t, views)
}

func TestListProductsIsolatesBadGroups(t *testing.T) {
	svc := newTestService(&fakeSource{observations: []tables.PriceObservation{
		testObs("gpu", "Kabum", t0, 1000),
		// Every row of this key is malformed (no timestamp), so the whole
		// group drops out of the listing.
		{ProductKey: "broken", Store: "Kabum", Price: 50},
		{ProductKey: "broken", Store: "Pichau", Price: 60},
		testObs("mouse", "Pichau", t0, 80),
	}})

	views, err := svc.ListProducts(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "gpu", views[0].ID)
	assert.Equal(t, "mouse", views[1].ID)
}

func TestListProductsHistoryFlag(t *testing.T) {
	source := &fakeSource{observations: []tables.PriceObservation{
		testObs("gpu", "Kabum", t0, 1000),
		testObs("gpu", "Kabum", t0.Add(24*time.Hour), 900),
	}}
	svc := newTestService(source)

	views, err := svc.ListProducts(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Empty(t, views[0].PriceHistory, "listings omit history by default")
	assert.NotNil(t, views[0].PriceHistory)

	views, err = svc.ListProducts(context.Background(), &ListOptions{IncludeHistory: true})
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Len(t, views[0].PriceHistory, 2)
}

func TestGetPriceHistory(t *testing.T) {
	svc := newTestService(&fakeSource{observations: []tables.PriceObservation{
		testObs("gpu", "Kabum", t0, 1000),
		testObs("gpu", "Kabum", t0.Add(2*time.Hour), 1000), // same day, same price
		testObs("gpu", "Kabum", t0.Add(24*time.Hour), 950),
	}})

	points, err := svc.GetPriceHistory(context.Background(), "gpu")
	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.Equal(t, "2025-06-01", points[0].Date)
	assert.Equal(t, "2025-06-02", points[1].Date)
}

func TestGetPriceHistoryUnknownKey(t *testing.T) {
	svc := newTestService(&fakeSource{})

	_, err := svc.GetPriceHistory(context.Background(), "nope")
	assert.ErrorIs(t, err, lib.ErrNotFound)
}
