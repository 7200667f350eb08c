package coupons

import (
	"errors"
	"net/http"

	"comparador_server/lib"
	"comparador_server/structs/tables"

	"github.com/MonkyMars/gecho"
)

// CreateCouponRequest is the admin payload for manual coupon entry.
type CreateCouponRequest struct {
	Code        string `json:"code" validate:"required,min=2,max=64"`
	Description string `json:"description" validate:"required,min=3"`
	ValidUntil  string `json:"valid_until" validate:"omitempty,max=32"`
	Store       string `json:"store" validate:"required"`
	Link        string `json:"link" validate:"omitempty,url"`
}

func (crm *CouponRoutesManager) CreateCoupon(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[CreateCouponRequest](r)
	if err != nil {
		crm.logger.Debug("Failed to extract and validate body", err)
		gecho.BadRequest(w,
			gecho.WithMessage("Please check the coupon information and try again"),
			gecho.Send(),
		)
		return
	}

	coupon := &tables.Coupon{
		Code:        body.Code,
		Description: body.Description,
		ValidUntil:  body.ValidUntil,
		Store:       body.Store,
		Link:        body.Link,
	}

	created, err := crm.couponService.CreateCoupon(r.Context(), coupon)
	if err != nil {
		if errors.Is(err, lib.ErrConflict) {
			gecho.Conflict(w,
				gecho.WithMessage("error.coupons.alreadyExists"),
				gecho.Send(),
			)
			return
		}

		crm.logger.Error("Failed to create coupon", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("Unable to create coupon. Please try again"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(created),
		gecho.WithMessage("Coupon created successfully"),
		gecho.Send(),
	)
}
