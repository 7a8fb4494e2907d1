package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/akosiano1/itpm-proj/internal/application/cart"
	"github.com/akosiano1/itpm-proj/internal/application/service"
	"github.com/akosiano1/itpm-proj/internal/config"
	"github.com/akosiano1/itpm-proj/internal/infrastructure/database"
	"github.com/akosiano1/itpm-proj/internal/infrastructure/repository"
	"github.com/akosiano1/itpm-proj/internal/presentation/http/handler"
	"github.com/akosiano1/itpm-proj/internal/presentation/http/routes"
	"github.com/akosiano1/itpm-proj/pkg/logger"
	"github.com/akosiano1/itpm-proj/pkg/mailer"
	"github.com/akosiano1/itpm-proj/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	zlog := logger.Must(logger.New(cfg.App.Name))
	defer zlog.Sync()

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed the stall roster and admin account
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.App.Name,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	stallRepo := repository.NewStallRepository(db)
	stockRepo := repository.NewStockRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize mailer
	accountMailer := mailer.New(mailer.Config{
		SMTPHost:     cfg.Email.SMTPHost,
		SMTPPort:     cfg.Email.SMTPPort,
		SMTPUsername: cfg.Email.SMTPUsername,
		SMTPPassword: cfg.Email.SMTPPassword,
		FromName:     cfg.Email.FromName,
		FromEmail:    cfg.Email.FromEmail,
	})

	// Per-user carts for the registers
	carts := cart.NewStore(cart.DefaultStoreConfig())

	// Initialize services
	authService := service.NewAuthService(userRepo, profileRepo, jwtManager)
	posService := service.NewPosService(menuRepo, carts)
	saleService := service.NewSaleService(saleRepo, profileRepo, carts)
	stallService := service.NewStallService(stallRepo)
	stockService := service.NewStockService(stockRepo, stallRepo)
	menuService := service.NewMenuService(menuRepo)
	expenseService := service.NewExpenseService(expenseRepo)
	staffService := service.NewStaffService(userRepo, profileRepo, stallRepo, accountMailer, logger.Named(zlog, "staff"))
	dashboardService := service.NewDashboardService(saleRepo, stallRepo, stockRepo)
	reportService := service.NewReportService(saleRepo, stallRepo, expenseRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Pos:       handler.NewPosHandler(posService, saleService),
		Stall:     handler.NewStallHandler(stallService),
		Menu:      handler.NewMenuHandler(menuService),
		Stock:     handler.NewStockHandler(stockService),
		Expense:   handler.NewExpenseHandler(expenseService),
		Staff:     handler.NewStaffHandler(staffService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
		Report:    handler.NewReportHandler(reportService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
		Logger:          logger.Named(zlog, "http"),
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	zlog.Info("starting server",
		zap.String("port", port),
		zap.String("env", cfg.App.Env),
	)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
