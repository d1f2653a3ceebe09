package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"myMarketHub/app/echo-server/router"
	activityService "myMarketHub/business/activity"
	productService "myMarketHub/business/product"
	"myMarketHub/business/recommend"
	userService "myMarketHub/business/user"
	"myMarketHub/internal/middleware"
	"myMarketHub/internal/repository/notification"
	psqlRepo "myMarketHub/internal/repository/postgres"
	redisRepo "myMarketHub/internal/repository/redis"
	"myMarketHub/internal/rest"
	"myMarketHub/pkg/config"
	"myMarketHub/pkg/database"
	redisdb "myMarketHub/pkg/database/redis"
	"myMarketHub/pkg/logger"
	"myMarketHub/pkg/metrics"
	"myMarketHub/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting MyMarketHub", "version", cfg.App.Version)

	utils.InitJWT(cfg.JWT.SecretKey)
	metrics.Init()

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	redisClient, err := redisdb.NewRedisClient(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to redis", "error", err)
	}
	defer func() {
		if err := redisdb.CloseRedisClient(redisClient); err != nil {
			logger.Error("Failed to close redis client", err)
		}
	}()

	// Init notification mailer
	mailerEmail := notification.NewMailerRepository(
		notification.MailerConfig{
			MailerBaseURL:           cfg.Mailer.MailerBaseUrl,
			MailerBasicAuthUsername: cfg.Mailer.MailerBasicAuthUsername,
			MailerBasicAuthPassword: cfg.Mailer.MailerBasicAuthPassword,
			MailerSenderEmail:       cfg.Mailer.MailerSenderEmail,
			MailerSenderName:        cfg.Mailer.MailerSenderName,
		},
	)

	// Init validate
	validate := validator.New()

	// Init repo
	userRepo := psqlRepo.NewUserRepository(db)
	productsRepo := psqlRepo.NewProductRepository(db)
	activityRepo := psqlRepo.NewActivityRepository(db)
	tokenRepo := redisRepo.NewTokenRepository(redisClient)

	// Init service
	userSvc := userService.NewUserService(userRepo, validate, mailerEmail, tokenRepo, cfg.App.AppEmailVerificationKey, cfg.App.AppDeploymentUrl)
	productSvc := productService.NewProductService(productsRepo)
	activitySvc := activityService.NewService(activityRepo)

	recoCfg := recommend.DefaultConfig()
	recoCfg.EmbeddingDim = cfg.Recommend.EmbeddingDim
	recoCfg.Epochs = cfg.Recommend.Epochs
	recoCfg.BatchSize = cfg.Recommend.BatchSize
	recoCfg.TopN = cfg.Recommend.TopN
	recoSvc := recommend.NewService(activityRepo, productsRepo, recoCfg)

	// Init handler
	userHandler := rest.NewUserHandler(userSvc)
	productHandler := rest.NewProductHandler(productSvc)
	activityHandler := rest.NewActivityHandler(activitySvc)
	recoHandler := rest.NewRecommendationHandler(recoSvc)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(middleware.RequestTrace())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	// Auth middleware
	authRequired := middleware.AuthMiddlewareWithRedis(userSvc)
	adminOnly := middleware.AdminOnly()
	sellerOrAdmin := middleware.SellerOrAdmin()
	selfOrAdmin := middleware.SelfOrAdmin()

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupUserRoutes(api, userHandler, authRequired, adminOnly, selfOrAdmin)
	router.SetupProductRoutes(api, productHandler, authRequired, sellerOrAdmin)
	router.SetupActivityRoutes(api, activityHandler, authRequired)
	router.SetupRecommendationRoutes(api, recoHandler, authRequired)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
