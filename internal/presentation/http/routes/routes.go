package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/akosiano1/itpm-proj/internal/config"
	"github.com/akosiano1/itpm-proj/internal/domain/rbac"
	domainRepo "github.com/akosiano1/itpm-proj/internal/domain/repository"
	"github.com/akosiano1/itpm-proj/internal/presentation/http/handler"
	"github.com/akosiano1/itpm-proj/internal/presentation/http/middleware"
	"github.com/akosiano1/itpm-proj/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Pos       *handler.PosHandler
	Stall     *handler.StallHandler
	Menu      *handler.MenuHandler
	Stock     *handler.StockHandler
	Expense   *handler.ExpenseHandler
	Staff     *handler.StaffHandler
	Dashboard *handler.DashboardHandler
	Report    *handler.ReportHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
	Logger          *zap.Logger
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware(deps.Logger))
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.Refresh)
		}

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-user rate limiter
		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	idem := middleware.IdempotencyConfig{Repo: deps.IdempotencyRepo}

	// Auth/Profile
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/profile", h.Auth.Me)

	// Stalls are readable by any signed-in user; status changes are an
	// admin stock-management concern.
	protected.GET("/stalls", h.Stall.List)

	// Point of sale. Staff only; admins deliberately have no register
	// access even though they hold manage-sales.
	pos := protected.Group("/pos")
	pos.Use(middleware.RequireCapability(rbac.CapViewPOS))
	{
		pos.GET("/menu", h.Pos.Menu)
		pos.GET("/cart", h.Pos.GetCart)
		pos.POST("/cart/items", h.Pos.AddItem)
		pos.PUT("/cart/items/:item_id", h.Pos.SetQuantity)
		pos.DELETE("/cart/items/:item_id", h.Pos.RemoveItem)
		pos.DELETE("/cart", h.Pos.ClearCart)
		pos.POST("/checkout", middleware.IdempotencyRequired(idem), h.Pos.Checkout)
	}

	// Sales listing is shared by the register's transactions view and the
	// admin reports.
	sales := protected.Group("/sales")
	sales.Use(middleware.RequireCapability(rbac.CapManageSales))
	{
		sales.GET("", h.Pos.Transactions)
	}

	// Reporting views
	reports := protected.Group("")
	reports.Use(middleware.RequireCapability(rbac.CapViewReports))
	{
		reports.GET("/dashboard", h.Dashboard.Get)
		reports.GET("/reports", h.Report.Get)
	}

	// Admin mutation panels
	admin := protected.Group("")
	admin.Use(middleware.RequireCapability(rbac.CapManageStock))
	admin.Use(middleware.Idempotency(idem))
	{
		admin.PATCH("/stalls/:stall_id/status", h.Stall.SetStatus)

		admin.POST("/menu-items", h.Menu.Create)
		admin.PUT("/menu-items/:item_id", h.Menu.Update)
		admin.DELETE("/menu-items/:item_id", h.Menu.Delete)

		admin.GET("/stock", h.Stock.List)
		admin.GET("/stock/:stall_id", h.Stock.Get)
		admin.POST("/stock/:stall_id/delta", h.Stock.ApplyDelta)
		admin.PUT("/stock/:stall_id", h.Stock.Reset)

		admin.GET("/expenses", h.Expense.List)
		admin.POST("/expenses", h.Expense.Create)
		admin.DELETE("/expenses/:expense_id", h.Expense.Delete)
	}

	// Menu catalog is readable by anyone signed in so dashboards can name
	// items without manage-stock.
	protected.GET("/menu-items", h.Menu.List)

	// Staff management
	staff := protected.Group("/staff")
	staff.Use(middleware.RequireCapability(rbac.CapManageUsers))
	{
		staff.GET("", h.Staff.List)
		staff.POST("", h.Staff.Create)
		staff.DELETE("/:staff_id", h.Staff.Delete)
	}
}
