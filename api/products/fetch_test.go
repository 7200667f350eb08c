package products

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"comparador_server/services"
	"comparador_server/structs"
	"comparador_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	observations []tables.PriceObservation
}

func (s *stubSource) FetchAll(ctx context.Context) ([]tables.PriceObservation, error) {
	return s.observations, nil
}

func (s *stubSource) FetchByProductKey(ctx context.Context, key string) ([]tables.PriceObservation, error) {
	var out []tables.PriceObservation
	for _, o := range s.observations {
		if o.ProductKey == key {
			out = append(out, o)
		}
	}
	return out, nil
}

func newTestRouter(observations []tables.PriceObservation) chi.Router {
	logger := gecho.NewDefaultLogger()
	catalog := &structs.CatalogConfig{
		DescriptionPriority:  []string{"Pichau", "Terabyte", "Kabum"},
		MinDescriptionLength: 10,
		LastResortStore:      "Kabum",
		DefaultCategory:      "Eletrônicos",
		PlaceholderImage:     "/placeholder.svg",
	}
	svc := services.NewProductService(logger, &stubSource{observations: observations}, nil, catalog)

	r := chi.NewRouter()
	NewProductRoutesManager(logger, svc).RegisterRoutes(r)
	return r
}

func catalogFixture() []tables.PriceObservation {
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return []tables.PriceObservation{
		{ProductKey: "GPU-X", Store: "Kabum", ObservedAt: at, Price: 1000, RawName: "GPU X 8GB"},
		{ProductKey: "GPU-X", Store: "Pichau", ObservedAt: at.Add(time.Hour), Price: 950, RawName: "GPU X 8GB OC"},
		{ProductKey: "Mouse-Y", Store: "Kabum", ObservedAt: at, Price: 120, RawName: "Mouse Y"},
	}
}

func doRequest(t *testing.T, r chi.Router, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestFetchAllProducts(t *testing.T) {
	rec := doRequest(t, newTestRouter(catalogFixture()), "/products")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "GPU-X")
	assert.Contains(t, body, "Mouse-Y")
}

func TestFetchAllProductsEmptyCatalog(t *testing.T) {
	rec := doRequest(t, newTestRouter(nil), "/products")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestFetchAllProductsBadHistoryFlag(t *testing.T) {
	rec := doRequest(t, newTestRouter(nil), "/products?include_history=banana")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFetchProductByKey(t *testing.T) {
	rec := doRequest(t, newTestRouter(catalogFixture()), "/products/GPU-X")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "GPU X 8GB OC", "representative is the cheapest offer")
	assert.Contains(t, body, "priceHistory")
	assert.Contains(t, body, `"minPrice":950`)
	assert.Contains(t, body, `"avgPrice":975`)
}

func TestFetchProductLegacyAlias(t *testing.T) {
	rec := doRequest(t, newTestRouter(catalogFixture()), "/product/GPU-X")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestFetchProductNotFound(t *testing.T) {
	rec := doRequest(t, newTestRouter(catalogFixture()), "/products/absent")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFetchPriceHistory(t *testing.T) {
	rec := doRequest(t, newTestRouter(catalogFixture()), "/products/GPU-X/history")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "2025-06-01")
}

func TestFetchPriceHistoryNotFound(t *testing.T) {
	rec := doRequest(t, newTestRouter(catalogFixture()), "/products/absent/history")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
