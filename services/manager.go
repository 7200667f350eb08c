package services

import (
	"comparador_server/database"
	"comparador_server/structs"

	"github.com/MonkyMars/gecho"
)

type ServiceManager struct {
	CacheService   *CacheService
	HealthService  *HealthService
	ProductService *ProductService
	CouponService  *CouponService
	ScrapeService  *ScrapeService
}

func NewServiceManager(logger *gecho.Logger, cfg *structs.Config, db *database.DB) *ServiceManager {
	cacheService := NewCacheService(logger, cfg)
	healthService := NewHealthService(logger, db)
	productService := NewProductService(logger, NewObservationRepo(db), cacheService, cfg.Catalog)
	couponService := NewCouponService(logger, db)
	scrapeService := NewScrapeService(logger, db)

	return &ServiceManager{
		CacheService:   cacheService,
		HealthService:  healthService,
		ProductService: productService,
		CouponService:  couponService,
		ScrapeService:  scrapeService,
	}
}
