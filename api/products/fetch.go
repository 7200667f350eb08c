package products

import (
	"errors"
	"net/http"

	"comparador_server/handling"
	"comparador_server/lib"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

// FetchAllProducts handles GET /products. The listing never fails as a
// whole: product groups that cannot be reconciled are skipped by the
// service, and an empty catalog yields an empty array.
func (prm *ProductRoutesManager) FetchAllProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Parse query parameters into options
	opts, err := handling.ParseListOptions(r)
	if err != nil {
		prm.logger.Warn("Invalid query parameters", "error", err)
		gecho.BadRequest(w,
			gecho.WithMessage("error.invalidQueryParameters"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	prm.logger.Debug("Fetching product listing",
		gecho.Field("include_history", opts.IncludeHistory),
	)

	views, err := prm.productService.ListProducts(ctx, opts)
	if err != nil {
		handling.HandleError(err, "failed to fetch product listing", prm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"products": views,
			"meta": map[string]any{
				"count": len(views),
			},
		}),
		gecho.Send(),
	)
}

// FetchProductByKey handles GET /products/{key} and the legacy
// GET /product/{key} alias. The full view includes price history.
func (prm *ProductRoutesManager) FetchProductByKey(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	key := chi.URLParam(r, "key")
	if lib.NormalizeProductKey(key) == "" {
		prm.logger.Warn("Product key not provided")
		gecho.BadRequest(w,
			gecho.WithMessage("error.products.productKeyRequired"),
			gecho.Send(),
		)
		return
	}

	view, err := prm.productService.GetProduct(ctx, key)
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w,
				gecho.WithMessage("error.products.notFound"),
				gecho.Send(),
			)
			return
		}

		handling.HandleError(err, "failed to fetch product", prm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"product": view,
		}),
		gecho.Send(),
	)
}

// FetchPriceHistory handles GET /products/{key}/history.
func (prm *ProductRoutesManager) FetchPriceHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	key := chi.URLParam(r, "key")
	if lib.NormalizeProductKey(key) == "" {
		prm.logger.Warn("Product key not provided")
		gecho.BadRequest(w,
			gecho.WithMessage("error.products.productKeyRequired"),
			gecho.Send(),
		)
		return
	}

	history, err := prm.productService.GetPriceHistory(ctx, key)
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w,
				gecho.WithMessage("error.products.notFound"),
				gecho.Send(),
			)
			return
		}

		handling.HandleError(err, "failed to fetch price history", prm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"history": history,
			"meta": map[string]any{
				"count": len(history),
			},
		}),
		gecho.Send(),
	)
}
