package coupons

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"comparador_server/api/middleware"
	"comparador_server/structs"
	"comparador_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCoupons struct {
	coupons []tables.Coupon
	listErr error
	created *tables.Coupon
}

func (s *stubCoupons) ListCoupons(ctx context.Context) ([]tables.Coupon, error) {
	return s.coupons, s.listErr
}

func (s *stubCoupons) CreateCoupon(ctx context.Context, coupon *tables.Coupon) (*tables.Coupon, error) {
	s.created = coupon
	return coupon, nil
}

func newCouponRouter(svc CouponProvider, adminToken string) chi.Router {
	logger := gecho.NewDefaultLogger()
	cfg := &structs.Config{Admin: &structs.AdminConfig{Token: adminToken}}
	mw := middleware.NewMiddleware(cfg, logger, nil)

	r := chi.NewRouter()
	NewCouponRoutesManager(logger, svc, mw).RegisterRoutes(r)
	return r
}

func TestFetchCoupons(t *testing.T) {
	svc := &stubCoupons{coupons: []tables.Coupon{
		{Code: "KABUM10", Store: "Kabum", Description: "10% off"},
	}}
	rec := httptest.NewRecorder()
	newCouponRouter(svc, "").ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/coupons", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "KABUM10")
}

// The coupon listing is best-effort: backend failures degrade to an empty
// list, never an error status.
func TestFetchCouponsFailureDegradesToEmptyList(t *testing.T) {
	svc := &stubCoupons{listErr: errors.New("connection refused")}
	rec := httptest.NewRecorder()
	newCouponRouter(svc, "").ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/coupons", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"coupons":[]`)
}

func TestCreateCouponRequiresToken(t *testing.T) {
	svc := &stubCoupons{}
	router := newCouponRouter(svc, "secret")

	payload := `{"code":"TB15","description":"15% off em placas","store":"Terabyte"}`

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/coupons", strings.NewReader(payload)))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, svc.created)

	req := httptest.NewRequest(http.MethodPost, "/coupons", strings.NewReader(payload))
	req.Header.Set("X-Admin-Token", "secret")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.created)
	assert.Equal(t, "TB15", svc.created.Code)
}

func TestCreateCouponDisabledWithoutConfiguredToken(t *testing.T) {
	svc := &stubCoupons{}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/coupons", strings.NewReader(`{}`))
	newCouponRouter(svc, "").ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCreateCouponValidatesBody(t *testing.T) {
	svc := &stubCoupons{}
	router := newCouponRouter(svc, "secret")

	req := httptest.NewRequest(http.MethodPost, "/coupons", strings.NewReader(`{"code":"X"}`))
	req.Header.Set("X-Admin-Token", "secret")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, svc.created)
}
