package router

import (
	"time"

	"github.com/spimentel1201/RepairServiceAPI/internal/config"
	"github.com/spimentel1201/RepairServiceAPI/internal/handler"
	"github.com/spimentel1201/RepairServiceAPI/internal/infra"
	"github.com/spimentel1201/RepairServiceAPI/internal/middleware"
	"github.com/spimentel1201/RepairServiceAPI/internal/model"
	"github.com/spimentel1201/RepairServiceAPI/internal/repository"
	"github.com/spimentel1201/RepairServiceAPI/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
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

	// ── Infrastructure ───────────────────────────────────────────────────────
	mailer := infra.NewMailer(cfg)

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	movementRepo := repository.NewStockMovementRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	quoteRepo := repository.NewQuoteRepository(db)
	repairRepo := repository.NewRepairOrderRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, rdb, cfg)
	inventorySvc := service.NewInventoryService(productRepo, movementRepo)
	productSvc := service.NewProductService(productRepo, inventorySvc)
	saleSvc := service.NewSaleService(saleRepo, inventorySvc, productRepo, customerRepo, userRepo)
	invoiceSvc := service.NewInvoiceService(saleRepo)
	customerSvc := service.NewCustomerService(customerRepo)
	categorySvc := service.NewCategoryService(categoryRepo)
	quoteSvc := service.NewQuoteService(quoteRepo, productRepo, customerRepo)
	repairSvc := service.NewRepairService(repairRepo, customerRepo, userRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usersH := handler.NewUsersHandler(authSvc)
	productsH := handler.NewProductsHandler(productSvc)
	inventoryH := handler.NewInventoryHandler(inventorySvc)
	salesH := handler.NewSalesHandler(saleSvc)
	invoicesH := handler.NewInvoicesHandler(invoiceSvc, mailer, cfg)
	customersH := handler.NewCustomersHandler(customerSvc)
	categoriesH := handler.NewCategoriesHandler(categorySvc)
	quotesH := handler.NewQuotesHandler(quoteSvc)
	repairsH := handler.NewRepairsHandler(repairSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
		auth.POST("/logout", authH.Logout)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	staff := middleware.RequireRole(model.RoleAdmin, model.RoleSeller, model.RoleTechnician)
	sellers := middleware.RequireRole(model.RoleAdmin, model.RoleSeller)
	admins := middleware.RequireRole(model.RoleAdmin)

	v1 := r.Group("/v1", jwtMW)
	{
		// Sales — sellers register and read; only admins mutate after the fact
		v1.POST("/sales", sellers, salesH.Create)
		v1.GET("/sales", sellers, salesH.List)
		v1.GET("/sales/:id", sellers, salesH.Get)
		v1.PUT("/sales/:id", admins, salesH.Update)
		v1.DELETE("/sales/:id", admins, salesH.Delete)

		// Invoices — read-only views derived from a sale
		v1.GET("/sales/:id/invoice", sellers, invoicesH.Get)
		v1.GET("/sales/:id/invoice/pdf", sellers, invoicesH.Download)
		v1.POST("/sales/:id/invoice/email", sellers, invoicesH.Email)

		// Products — all staff read, admins write
		v1.GET("/products", staff, productsH.List)
		v1.GET("/products/:id", staff, productsH.Get)
		v1.PATCH("/products/:id/stock", admins, productsH.AdjustStock)
		prods := v1.Group("/products", admins)
		{
			prods.POST("", productsH.Create)
			prods.PUT("/:id", productsH.Update)
			prods.DELETE("/:id", productsH.Deactivate)
			prods.PATCH("/:id/reactivate", productsH.Reactivate)
			prods.POST("/import", productsH.Import)
		}

		inv := v1.Group("/inventory", sellers)
		{
			inv.GET("/movements", inventoryH.Movements)
			inv.GET("/low-stock", inventoryH.LowStock)
		}

		// Customers — all staff
		customers := v1.Group("/customers", staff)
		{
			customers.POST("", customersH.Create)
			customers.GET("", customersH.List)
			customers.GET("/:id", customersH.Get)
			customers.PUT("/:id", customersH.Update)
			customers.DELETE("/:id", customersH.Deactivate)
		}

		// Quotes — sellers
		quotes := v1.Group("/quotes", sellers)
		{
			quotes.POST("", quotesH.Create)
			quotes.GET("", quotesH.List)
			quotes.GET("/:id", quotesH.Get)
			quotes.PATCH("/:id/status", quotesH.UpdateStatus)
			quotes.DELETE("/:id", quotesH.Delete)
		}

		// Repair orders — technicians work these, sellers open them
		v1.POST("/repairs", staff, repairsH.Create)
		v1.GET("/repairs", staff, repairsH.List)
		v1.GET("/repairs/:id", staff, repairsH.Get)
		v1.PUT("/repairs/:id", middleware.RequireRole(model.RoleAdmin, model.RoleTechnician), repairsH.Update)
		v1.PATCH("/repairs/:id/status", middleware.RequireRole(model.RoleAdmin, model.RoleTechnician), repairsH.UpdateStatus)

		// Users — admins only
		users := v1.Group("/users", admins)
		{
			users.POST("", usersH.Create)
			users.GET("", usersH.List)
			users.PUT("/:id", usersH.Update)
			users.DELETE("/:id", usersH.Deactivate)
			users.PATCH("/:id/reactivate", usersH.Reactivate)
		}

		// Categories — admins write, all staff read
		v1.GET("/categories", staff, categoriesH.List)
		categories := v1.Group("/categories", admins)
		{
			categories.POST("", categoriesH.Create)
			categories.PUT("/:id", categoriesH.Update)
			categories.DELETE("/:id", categoriesH.Deactivate)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
