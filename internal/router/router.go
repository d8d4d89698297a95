package router

import (
	"time"

	"github.com/ShejanMahamud/pharmacy-pos-sub000/internal/cart"
	"github.com/ShejanMahamud/pharmacy-pos-sub000/internal/config"
	"github.com/ShejanMahamud/pharmacy-pos-sub000/internal/handler"
	"github.com/ShejanMahamud/pharmacy-pos-sub000/internal/middleware"
	"github.com/ShejanMahamud/pharmacy-pos-sub000/internal/rbac"
	"github.com/ShejanMahamud/pharmacy-pos-sub000/internal/repository"
	"github.com/ShejanMahamud/pharmacy-pos-sub000/internal/service"
	"github.com/ShejanMahamud/pharmacy-pos-sub000/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, carts *cart.Store) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	saleRepo := repository.NewSaleRepository(db)

	// Worker dispatcher — injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, cfg)
	userSvc := service.NewUserService(userRepo)
	productSvc := service.NewProductService(productRepo)
	customerSvc := service.NewCustomerService(customerRepo)
	cartSvc := service.NewCartService(carts, productRepo)
	checkoutSvc := service.NewCheckoutService(carts, saleRepo, productRepo, customerRepo, dispatcher, cfg.TaxRate(), cfg.EarnRate())
	saleSvc := service.NewSaleService(saleRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usersH := handler.NewUsersHandler(userSvc)
	productsH := handler.NewProductsHandler(productSvc)
	customersH := handler.NewCustomersHandler(customerSvc)
	cartH := handler.NewCartHandler(cartSvc)
	checkoutH := handler.NewCheckoutHandler(checkoutSvc)
	salesH := handler.NewSalesHandler(saleSvc)
	priceH := handler.NewPriceCheckHandler(productRepo, rdb)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Price check — no auth required, read only
	r.GET("/v1/price/:barcode", priceH.GetPriceByBarcode)

	// Protected routes — permission checks are declared per-group so the
	// route table reads as the authorization matrix.
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		cartG := v1.Group("/cart", middleware.RequirePermission(rbac.PermCreateSale))
		{
			cartG.GET("", cartH.Get)
			cartG.POST("/items", cartH.AddItem)
			cartG.PATCH("/items/:lineId/quantity", cartH.UpdateQuantity)
			cartG.PATCH("/items/:lineId/discount", cartH.UpdateDiscount)
			cartG.DELETE("/items/:lineId", cartH.RemoveItem)
			cartG.PUT("/customer", cartH.SetCustomer)
			cartG.DELETE("", cartH.Clear)
		}

		v1.POST("/checkout", middleware.RequirePermission(rbac.PermCreateSale), checkoutH.Checkout)

		v1.GET("/sales", middleware.RequirePermission(rbac.PermViewSales), salesH.List)
		v1.GET("/sales/:id", middleware.RequirePermission(rbac.PermViewSales), salesH.GetByID)

		v1.GET("/products", middleware.RequirePermission(rbac.PermViewProducts), productsH.List)
		v1.GET("/products/:id", middleware.RequirePermission(rbac.PermViewProducts), productsH.GetByID)
		products := v1.Group("/products", middleware.RequirePermission(rbac.PermManageProducts))
		{
			products.POST("", productsH.Create)
			products.PUT("/:id", productsH.Update)
			products.DELETE("/:id", productsH.Deactivate)
			products.PATCH("/:id/reactivate", productsH.Reactivate)
		}

		v1.GET("/customers", middleware.RequirePermission(rbac.PermViewCustomers), customersH.List)
		v1.GET("/customers/:id", middleware.RequirePermission(rbac.PermViewCustomers), customersH.GetByID)
		customers := v1.Group("/customers", middleware.RequirePermission(rbac.PermManageCustomers))
		{
			customers.POST("", customersH.Create)
			customers.PUT("/:id", customersH.Update)
			customers.DELETE("/:id", customersH.Deactivate)
		}

		users := v1.Group("/users", middleware.RequirePermission(rbac.PermManageUsers))
		{
			users.POST("", usersH.Create)
			users.GET("", usersH.List)
			users.GET("/assignable-roles", usersH.AssignableRoles)
			users.PATCH("/:id", usersH.Update)
			users.DELETE("/:id", usersH.Deactivate)
			users.PATCH("/:id/reactivate", usersH.Reactivate)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
