package services

import (
	"context"
	"fmt"
	"time"

	"comparador_server/database"
	"comparador_server/lib"
	"comparador_server/structs/tables"

	"github.com/MonkyMars/gecho"
)

type CouponService struct {
	logger *gecho.Logger
	db     *database.DB
}

func NewCouponService(logger *gecho.Logger, db *database.DB) *CouponService {
	return &CouponService{
		logger: logger,
		db:     db,
	}
}

// ListCoupons returns all coupons, newest first. Callers degrade any error
// to an empty list: the coupons surface never fails a page render.
func (cs *CouponService) ListCoupons(ctx context.Context) ([]tables.Coupon, error) {
	coupons, err := database.Query[tables.Coupon](cs.db).
		OrderBy("created_at", database.DESC).
		Timeout(5 * time.Second).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch coupons: %w", err)
	}
	return coupons, nil
}

// CreateCoupon inserts a manually curated coupon.
func (cs *CouponService) CreateCoupon(ctx context.Context, coupon *tables.Coupon) (*tables.Coupon, error) {
	if coupon.CreatedAt.IsZero() {
		coupon.CreatedAt = time.Now()
	}

	created, err := database.Query[tables.Coupon](cs.db).Insert(ctx, coupon)
	if err != nil {
		cs.logger.Error("Failed to insert coupon",
			gecho.Field("error", err),
			gecho.Field("code", coupon.Code),
		)
		return nil, lib.MapPgError(err)
	}

	cs.logger.Info("Coupon created",
		gecho.Field("code", created.Code),
		gecho.Field("store", created.Store),
	)
	return created, nil
}
