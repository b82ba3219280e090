package router

import (
	"time"

	"insurance/internal/config"
	"insurance/internal/handler"
	"insurance/internal/middleware"
	"insurance/internal/repository"
	"insurance/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB. rdb may be nil.
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.Metrics())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(rdb, cfg.RateLimitPerMinute, time.Minute))

	// ── Repositories ─────────────────────────────────────────────────────────
	productRepo := repository.NewProductRepository(db)
	holderRepo := repository.NewHolderRepository(db)
	historyRepo := repository.NewHolderHistoryRepository(db)
	vehicleRepo := repository.NewVehicleRepository(db)
	policyRepo := repository.NewPolicyRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	productSvc := service.NewProductService(productRepo)
	holderSvc := service.NewHolderService(holderRepo, historyRepo)
	vehicleSvc := service.NewVehicleService(vehicleRepo)
	policySvc := service.NewPolicyService(policyRepo, productRepo, holderRepo, vehicleRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	productsH := handler.NewProductsHandler(productSvc)
	holdersH := handler.NewHoldersHandler(holderSvc)
	vehiclesH := handler.NewVehiclesHandler(vehicleSvc)
	policiesH := handler.NewPoliciesHandler(policySvc)

	// ── Routes ───────────────────────────────────────────────────────────────
	r.GET("/health", handler.Health(db, rdb))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/api/v1")
	{
		products := v1.Group("/products")
		{
			products.GET("", productsH.List)
			products.POST("", productsH.Create)
			products.GET("/:productCode", productsH.Get)
			products.PATCH("/:productCode", productsH.Update)
		}

		holders := v1.Group("/holders")
		{
			holders.GET("", holdersH.List)
			holders.POST("", holdersH.Create)
			holders.GET("/:passportNumber", holdersH.Get)
			holders.PATCH("/:passportNumber", holdersH.Update)
			holders.GET("/:passportNumber/history", holdersH.History)
		}

		vehicles := v1.Group("/vehicles")
		{
			vehicles.GET("", vehiclesH.List)
			vehicles.POST("", vehiclesH.Create)
			vehicles.GET("/:licensePlate", vehiclesH.Get)
			vehicles.PATCH("/:licensePlate", vehiclesH.Update)
		}

		policies := v1.Group("/policies")
		{
			policies.GET("", policiesH.List)
			policies.POST("", policiesH.Create)
			policies.GET("/:policyCode", policiesH.Get)
			policies.PATCH("/:policyCode", policiesH.Update)
		}
	}

	return r
}
