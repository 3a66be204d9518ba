package main

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/snehashetty510/adcraft-api/internal/generation"
	"github.com/snehashetty510/adcraft-api/internal/handler"
	"github.com/snehashetty510/adcraft-api/internal/middleware"
	"github.com/snehashetty510/adcraft-api/internal/model"
	"github.com/snehashetty510/adcraft-api/internal/seed"
	"github.com/snehashetty510/adcraft-api/pkg/config"
	"github.com/snehashetty510/adcraft-api/pkg/database"
	"github.com/snehashetty510/adcraft-api/pkg/jwtutil"
	"github.com/snehashetty510/adcraft-api/pkg/logger"
	"github.com/snehashetty510/adcraft-api/prometheus"
)

func main() {
	// Load configuration from .env file and environment variables
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger with config
	if err := logger.InitLogger(cfg); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	log := logger.GetLogger()
	log.Info("Starting AdCraft API...", zap.String("environment", cfg.Server.Env))

	// Initialize database
	if _, err := database.InitDB(&cfg.DB); err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	log.Info("Database connection established", zap.String("driver", cfg.DB.Driver))

	if err := database.MigrateModels(
		&model.Company{},
		&model.User{},
		&model.Campaign{},
		&model.BrandProfile{},
		&model.Template{},
	); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Seed the template catalog on first run
	if err := seed.Templates(database.GetDB()); err != nil {
		log.Fatal("Failed to seed templates", zap.Error(err))
	}

	// Initialize JWT utility
	jwtutil.Initialize(&cfg.JWT)

	// Initialize the generation gateway (image + copy providers, asset hosting)
	generation.Initialize(cfg, log)
	if !cfg.Cloudinary.Configured() {
		log.Info("Cloudinary not configured, generated images keep provider URLs")
	}

	// Initialize Echo framework
	e := echo.New()

	// Apply global middleware - order matters
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	e.Use(middleware.RequestIDMiddleware)
	e.Use(logger.Middleware())
	e.Use(prometheus.MetricsMiddleware())

	// Public routes
	e.GET("/", handler.Root)
	e.GET("/api/health", handler.HealthCheck)
	e.GET("/metrics", handler.MetricsHandler)

	// Authentication routes
	auth := e.Group("/api/auth")
	auth.POST("/signup", handler.Signup)
	auth.POST("/login", handler.Login)
	auth.POST("/logout", handler.Logout)
	auth.GET("/me", handler.Me, middleware.RequireAuth)
	auth.POST("/change-password", handler.ChangePassword, middleware.RequireAuth)

	// Company management - tenant scoped, auth required
	companies := e.Group("/api/companies")
	companies.Use(middleware.RequireAuth)
	companies.GET("/me", handler.GetMyCompany)
	companies.GET("/users", handler.ListCompanyUsers)
	companies.POST("/invite", handler.InviteUser)
	companies.PUT("/promote/:userId", handler.PromoteUser)

	// Campaigns - tenant scoped, auth required
	campaigns := e.Group("/api/campaigns")
	campaigns.Use(middleware.RequireAuth)
	campaigns.POST("", handler.CreateCampaign)
	campaigns.GET("", handler.GetCampaigns)
	campaigns.GET("/:id", handler.GetCampaign)
	campaigns.PUT("/:id", handler.UpdateCampaign)
	campaigns.DELETE("/:id", handler.DeleteCampaign)

	// Brand profile - tenant scoped singleton, auth required
	brand := e.Group("/api/brand")
	brand.Use(middleware.RequireAuth)
	brand.GET("", handler.GetBrandProfile)
	brand.POST("", handler.UpsertBrandProfile)
	brand.PUT("", handler.UpsertBrandProfile)

	// Templates - global catalog, public
	templates := e.Group("/api/templates")
	templates.GET("", handler.GetTemplates)
	templates.GET("/:id", handler.GetTemplate)

	// Generation gateway - public, no tenant context (matches the
	// original deployment; see DESIGN.md)
	images := e.Group("/api/images")
	images.POST("/generate", handler.GenerateCampaignImage)

	port := cfg.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Failed to start server", zap.Error(err))
	}
}
