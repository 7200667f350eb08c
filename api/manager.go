package api

import (
	"comparador_server/api/coupons"
	"comparador_server/api/debug"
	"comparador_server/api/health"
	"comparador_server/api/middleware"
	"comparador_server/api/products"
	"comparador_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type routerManager struct {
	productRoutes *products.ProductRoutesManager
	couponRoutes  *coupons.CouponRoutesManager
	healthRoutes  *health.HealthRoutesManager
	debugRoutes   *debug.DebugRoutesManager
}

func NewRouterManager(
	logger *gecho.Logger,
	svc *services.ServiceManager,
	mw *middleware.Middleware,
) *routerManager {
	return &routerManager{
		productRoutes: products.NewProductRoutesManager(logger, svc.ProductService),
		couponRoutes:  coupons.NewCouponRoutesManager(logger, svc.CouponService, mw),
		healthRoutes:  health.NewHealthRoutesManager(svc.HealthService),
		debugRoutes:   debug.NewDebugRoutesManager(svc.CacheService),
	}
}

func (rm *routerManager) RegisterRoutes(r chi.Router) {
	rm.productRoutes.RegisterRoutes(r)
	rm.couponRoutes.RegisterRoutes(r)
	rm.healthRoutes.RegisterRoutes(r)
	rm.debugRoutes.RegisterRoutes(r)
}
