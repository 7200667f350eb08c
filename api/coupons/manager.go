package coupons

import (
	"context"

	"comparador_server/api/middleware"
	"comparador_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

// CouponProvider is the service surface these routes need.
type CouponProvider interface {
	ListCoupons(ctx context.Context) ([]tables.Coupon, error)
	CreateCoupon(ctx context.Context, coupon *tables.Coupon) (*tables.Coupon, error)
}

type CouponRoutesManager struct {
	logger        *gecho.Logger
	couponService CouponProvider
	mw            *middleware.Middleware
}

func NewCouponRoutesManager(
	logger *gecho.Logger,
	couponService CouponProvider,
	mw *middleware.Middleware,
) *CouponRoutesManager {
	return &CouponRoutesManager{
		logger:        logger,
		couponService: couponService,
		mw:            mw,
	}
}

func (crm *CouponRoutesManager) RegisterRoutes(r chi.Router) {
	r.Get("/coupons", crm.FetchCoupons)

	// Manual coupon entry, guarded by the admin token
	r.Group(func(r chi.Router) {
		r.Use(crm.mw.RequireAdminToken())
		r.Post("/coupons", crm.CreateCoupon)
	})
}
