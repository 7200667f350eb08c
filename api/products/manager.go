package products

import (
	"comparador_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type ProductRoutesManager struct {
	logger         *gecho.Logger
	productService *services.ProductService
}

func NewProductRoutesManager(
	logger *gecho.Logger,
	productService *services.ProductService,
) *ProductRoutesManager {
	return &ProductRoutesManager{
		logger:         logger,
		productService: productService,
	}
}

func (prm *ProductRoutesManager) RegisterRoutes(r chi.Router) {
	r.Get("/products", prm.FetchAllProducts)
	r.Get("/products/{key}", prm.FetchProductByKey)
	r.Get("/products/{key}/history", prm.FetchPriceHistory)
	// Legacy singular route kept for older frontend builds.
	r.Get("/product/{key}", prm.FetchProductByKey)
}
