// internal/router/router.go
package router

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"github.com/javajoker/catalog-service/internal/config"
	"github.com/javajoker/catalog-service/internal/database"
	"github.com/javajoker/catalog-service/internal/handlers"
	"github.com/javajoker/catalog-service/internal/middleware"
	"github.com/javajoker/catalog-service/internal/services"
	"github.com/javajoker/catalog-service/internal/utils"
)

// Handlers are the route targets registered by New.
type Handlers struct {
	Product *handlers.ProductHandler
	Cart    *handlers.CartHandler
	Health  *handlers.HealthHandler
}

// Initialize wires services and handlers over db. Background work started
// here stops when ctx is done.
func Initialize(ctx context.Context, db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	// Initialize services
	productService := services.NewProductService(db)
	cartService := services.NewCartService(db)
	storageService, err := services.NewStorageService(cfg.AWS)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	// Initialize handlers
	h := Handlers{
		Product: handlers.NewProductHandler(productService, storageService, cfg.Catalog),
		Cart:    handlers.NewCartHandler(cartService),
		Health: handlers.NewHealthHandler(func(pingCtx context.Context) error {
			return database.Ping(pingCtx, db)
		}),
	}

	r := New(ctx, cfg, h)
	if !storageService.UsesS3() {
		r.Static("/uploads", cfg.AWS.LocalUploadDir)
	}
	return r, nil
}

// New builds the engine with global middleware and the /v1 routes.
func New(ctx context.Context, cfg *config.Config, h Handlers) *gin.Engine {
	utils.SetJWTConfig(cfg.JWT.SecretKey, cfg.JWT.Issuer)
	utils.SetErrorExposure(!cfg.IsProduction())

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.Server.AllowOrigins))
	r.Use(middleware.I18nMiddleware())
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.Burst)
		go limiter.Cleanup(ctx)
		r.Use(limiter.Middleware())
	}

	// Health check
	r.GET("/health", h.Health.Check)

	auth := middleware.AuthRequired()
	admin := middleware.AdminRequired()

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Product routes. Fixed paths take precedence over /:slug.
		products := v1.Group("/products")
		{
			products.GET("", h.Product.GetProducts)
			products.GET("/search", h.Product.SearchProducts)
			products.GET("/category/:slug", h.Product.GetProductsByCategory)
			products.GET("/brand/:slug", h.Product.GetProductsByBrand)
			products.GET("/stats", auth, admin, h.Product.GetStatusCounts)
			products.GET("/id/:id", auth, admin, h.Product.GetProductByID)
			products.GET("/:slug", h.Product.GetProductBySlug)

			// Admin routes
			products.POST("", auth, admin, h.Product.CreateProduct)
			products.POST("/pictures", auth, admin, h.Product.UploadPictures)
			products.PUT("/:id", auth, admin, h.Product.UpdateProduct)
			products.PATCH("/:id/status", auth, admin, h.Product.SetStatus)
			products.DELETE("/:id", auth, admin, h.Product.DeleteProduct)
		}

		// Cart routes
		cart := v1.Group("/cart")
		cart.Use(auth)
		{
			cart.POST("", h.Cart.AddToCart)
			cart.GET("", h.Cart.GetCart)
			cart.DELETE("/:id", h.Cart.RemoveFromCart)
		}
	}

	return r
}
