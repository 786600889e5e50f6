package httpserver

import (
	"context"
	"log"

	"savage-storefront/internal/domain"
	catalogsvc "savage-storefront/internal/service/catalog"
	ordersvc "savage-storefront/internal/service/order"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CatalogService is the catalog surface the handlers consume.
type CatalogService interface {
	List(ctx context.Context) ([]domain.Product, error)
	ListFeatured(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, in catalogsvc.SaveInput) (*domain.Product, error)
	Update(ctx context.Context, id string, in catalogsvc.SaveInput) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}

// OrderService is the order surface the handlers consume.
type OrderService interface {
	Create(ctx context.Context, in ordersvc.CreateInput) (*domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
	ListByStatus(ctx context.Context, raw string) ([]domain.Order, error)
	ListByEmail(ctx context.Context, email string) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id, raw string) error
}

// SeedFunc bulk-loads the sample catalog and reports what happened.
type SeedFunc func(ctx context.Context) (string, error)

type Deps struct {
	CatalogSvc CatalogService
	OrderSvc   OrderService
	Seed       SeedFunc
}

// buildRouter wires the storefront (/api) and admin (/admin) surfaces.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps, corsOrigins []string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
	}))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	sessions := newSessionStore()

	api := router.Group("/api")
	{
		api.GET("/products", listProductsHandler(deps.CatalogSvc))
		api.GET("/products/grouped", groupedProductsHandler(deps.CatalogSvc))
		api.GET("/cart", getCartHandler(sessions))
		api.POST("/cart/items", addCartItemHandler(sessions))
		api.PATCH("/cart/items", updateCartItemHandler(sessions))
		api.DELETE("/cart", clearCartHandler(sessions))
		api.POST("/checkout", checkoutHandler(deps.OrderSvc, sessions))
		api.GET("/orders", ordersByEmailHandler(deps.OrderSvc))
	}

	// The admin surface carries no authentication gate, matching the
	// reviewed behavior; it is isolated under /admin so a gate can be
	// added as a single middleware.
	admin := router.Group("/admin")
	{
		admin.GET("/orders", adminListOrdersHandler(deps.OrderSvc))
		admin.PATCH("/orders/:id/status", updateOrderStatusHandler(deps.OrderSvc))
		admin.GET("/products", adminListProductsHandler(deps.CatalogSvc))
		admin.GET("/products/:id", getProductHandler(deps.CatalogSvc))
		admin.POST("/products", createProductHandler(deps.CatalogSvc))
		admin.PUT("/products/:id", updateProductHandler(deps.CatalogSvc))
		admin.DELETE("/products/:id", deleteProductHandler(deps.CatalogSvc))
		admin.POST("/seed", seedHandler(deps.Seed))
	}

	return router
}
