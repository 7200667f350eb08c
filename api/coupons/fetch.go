package coupons

import (
	"net/http"

	"comparador_server/structs/tables"

	"github.com/MonkyMars/gecho"
)

// FetchCoupons handles GET /coupons. The coupon listing is decorative
// for the storefront, so failures degrade to an empty list instead of
// surfacing an error to the client.
func (crm *CouponRoutesManager) FetchCoupons(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	coupons, err := crm.couponService.ListCoupons(ctx)
	if err != nil {
		crm.logger.Error("Failed to fetch coupons, serving empty list", "error", err)
		coupons = []tables.Coupon{}
	}
	if coupons == nil {
		coupons = []tables.Coupon{}
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"coupons": coupons,
			"meta": map[string]any{
				"count": len(coupons),
			},
		}),
		gecho.Send(),
	)
}
