package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	catalogapp "github.com/DavidGarzon9580/lite-thinking/internal/application/catalog"
	deliveryapp "github.com/DavidGarzon9580/lite-thinking/internal/application/delivery"
	orderingapp "github.com/DavidGarzon9580/lite-thinking/internal/application/ordering"
	"github.com/DavidGarzon9580/lite-thinking/internal/infrastructure/auth"
	"github.com/DavidGarzon9580/lite-thinking/internal/infrastructure/config"
	"github.com/DavidGarzon9580/lite-thinking/internal/infrastructure/logger"
	"github.com/DavidGarzon9580/lite-thinking/internal/infrastructure/mail"
	"github.com/DavidGarzon9580/lite-thinking/internal/infrastructure/persistence"
	"github.com/DavidGarzon9580/lite-thinking/internal/infrastructure/storage"
	"github.com/DavidGarzon9580/lite-thinking/internal/interfaces/http/handler"
	"github.com/DavidGarzon9580/lite-thinking/internal/interfaces/http/middleware"
	"github.com/DavidGarzon9580/lite-thinking/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log := logger.New(&cfg.Log)
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting server",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Database
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabase(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		_ = db.Close()
	}()

	// Repositories and transaction scopes
	companyRepo := persistence.NewGormCompanyRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	catalogTxScope := persistence.NewGormCatalogTransactionScope(db.DB)
	orderingTxScope := persistence.NewGormOrderingTransactionScope(db.DB)

	// Delivery backends
	documentStorage, err := storage.New(&cfg.Storage)
	if err != nil {
		log.Fatal("Failed to initialize document storage", zap.Error(err))
	}
	mailer, err := mail.New(context.Background(), &cfg.Mail, log)
	if err != nil {
		log.Fatal("Failed to initialize mailer", zap.Error(err))
	}
	log.Info("Delivery backends ready",
		zap.String("storage", cfg.Storage.Driver),
		zap.String("mail", cfg.Mail.Provider),
	)

	// Application services
	companyService := catalogapp.NewCompanyService(companyRepo)
	productService := catalogapp.NewProductService(productRepo, catalogTxScope)
	categoryService := catalogapp.NewCategoryService(categoryRepo)
	customerService := orderingapp.NewCustomerService(customerRepo)
	orderService := orderingapp.NewOrderService(orderRepo, orderingTxScope)
	inventoryService := deliveryapp.NewInventoryService(companyRepo, productRepo, documentStorage, mailer, log)

	// Auth
	jwtService := auth.NewJWTService(cfg.JWT)
	adminGuard := []gin.HandlerFunc{
		middleware.RequireAuth(jwtService),
		middleware.RequireAdmin(),
	}

	// HTTP engine
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
		log.Fatal("Failed to set trusted proxies", zap.Error(err))
	}
	engine.Use(
		middleware.RequestID(),
		logger.GinMiddleware(log),
		logger.Recovery(log),
		middleware.CORS(middleware.CORSConfig{
			AllowOrigins: cfg.HTTP.CORSAllowOrigins,
			AllowMethods: cfg.HTTP.CORSAllowMethods,
			AllowHeaders: cfg.HTTP.CORSAllowHeaders,
		}),
	)

	r := router.NewRouter(engine, router.WithAPIVersion(cfg.HTTP.APIVersion))
	r.Register(handler.NewSystemHandler(db))
	r.Register(handler.NewAuthHandler(jwtService))
	r.Register(handler.NewCompanyHandler(companyService, adminGuard...))
	r.Register(handler.NewProductHandler(productService, adminGuard...))
	r.Register(handler.NewCategoryHandler(categoryService, adminGuard...))
	r.Register(handler.NewCustomerHandler(customerService, adminGuard...))
	r.Register(handler.NewOrderHandler(orderService, adminGuard...))
	r.Register(handler.NewInventoryHandler(inventoryService, adminGuard...))
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
