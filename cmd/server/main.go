package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/namvu-dev/folioforge/adapters/event"
	httpAdapter "github.com/namvu-dev/folioforge/adapters/http"
	"github.com/namvu-dev/folioforge/adapters/media_storage"
	"github.com/namvu-dev/folioforge/adapters/persistence"
	"github.com/namvu-dev/folioforge/adapters/render"
	authUC "github.com/namvu-dev/folioforge/internal/application/usecase/auth"
	editorUC "github.com/namvu-dev/folioforge/internal/application/usecase/editor"
	mediaUC "github.com/namvu-dev/folioforge/internal/application/usecase/media"
	themesUC "github.com/namvu-dev/folioforge/internal/application/usecase/themes"
	viewUC "github.com/namvu-dev/folioforge/internal/application/usecase/view"
	"github.com/namvu-dev/folioforge/internal/config"
	"github.com/namvu-dev/folioforge/internal/domain/theme"
	"github.com/namvu-dev/folioforge/pkg/auth"
	"github.com/namvu-dev/folioforge/pkg/logger"
	"github.com/namvu-dev/folioforge/pkg/tracing"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	appLogger.Info("Starting FolioForge API Server...")

	// Tracing
	tp, err := tracing.NewTracerProvider(cfg, appLogger, "folioforge-api")
	if err != nil {
		appLogger.Fatal("cannot init tracer", err)
	}
	defer func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			appLogger.Error("tracer shutdown failed", err)
		}
	}()

	// Initialize dependencies
	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Postgres", err)
	}
	defer dbPool.Close()

	redisClient, err := persistence.NewRedisClient(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Redis", err)
	}
	defer redisClient.Close()

	kafkaClient, err := event.NewKafkaProducerClient(cfg)
	if err != nil {
		appLogger.Fatal("cannot init Kafka", err)
	}
	defer kafkaClient.Close()

	uploader, err := media_storage.NewCloudinaryAdapter(cfg)
	if err != nil {
		appLogger.Fatal("cannot initialize uploader", err)
	}

	// Theme registry
	registry := theme.NewRegistry("minimal")
	for _, t := range []theme.Theme{render.NewMinimalTheme(), render.NewModernTheme()} {
		if err := registry.Register(t); err != nil {
			appLogger.Fatal("cannot register theme", err)
		}
	}

	// Repositories
	userRepo := persistence.NewPostgresUserRepo(dbPool)
	portfolioRepo := persistence.NewPostgresPortfolioRepo(dbPool, appLogger)
	contentRepo := persistence.NewPostgresContentRepo(dbPool, appLogger)
	optionsRepo := persistence.NewPostgresOptionsRepo(dbPool, appLogger)
	experienceRepo := persistence.NewPostgresExperienceRepo(dbPool, appLogger)
	educationRepo := persistence.NewPostgresEducationRepo(dbPool, appLogger)
	projectRepo := persistence.NewPostgresProjectRepo(dbPool, appLogger)
	skillRepo := persistence.NewPostgresSkillRepo(dbPool, appLogger)
	socialRepo := persistence.NewPostgresSocialRepo(dbPool, appLogger)

	// Services
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)
	renderCache := persistence.NewRedisRenderCache(redisClient)
	viewCounter := persistence.NewViewCounter(redisClient)

	// Use Cases
	loginUseCase := authUC.NewLoginUseCase(userRepo, jwtSvc, appLogger)
	portfolioUseCase := editorUC.NewPortfolioUseCase(portfolioRepo, renderCache, kafkaClient, appLogger)
	contentUseCase := editorUC.NewContentUseCase(portfolioRepo, contentRepo, renderCache, appLogger)
	optionsUseCase := editorUC.NewOptionsUseCase(portfolioRepo, optionsRepo, registry, renderCache, appLogger)
	experienceUseCase := editorUC.NewExperienceUseCase(portfolioRepo, experienceRepo, renderCache, appLogger)
	educationUseCase := editorUC.NewEducationUseCase(portfolioRepo, educationRepo, renderCache, appLogger)
	projectUseCase := editorUC.NewProjectUseCase(portfolioRepo, projectRepo, renderCache, appLogger)
	skillUseCase := editorUC.NewSkillUseCase(portfolioRepo, skillRepo, renderCache, appLogger)
	socialUseCase := editorUC.NewSocialUseCase(portfolioRepo, socialRepo, renderCache, appLogger)
	statsUseCase := editorUC.NewStatsUseCase(portfolioRepo, viewCounter, appLogger)
	uploadUseCase := mediaUC.NewUploadMediaUseCase(uploader, appLogger)
	listThemesUseCase := themesUC.NewListThemesUseCase(registry)
	viewUseCase := viewUC.NewViewPortfolioUseCase(portfolioRepo, registry, renderCache, kafkaClient, cfg.View.CacheTTL, appLogger)
	metadataUseCase := viewUC.NewPortfolioMetadataUseCase(portfolioRepo, appLogger)

	// HTTP Handlers
	authHandler := httpAdapter.NewAuthHandler(loginUseCase, appLogger)
	portfolioHandler := httpAdapter.NewPortfolioHandler(portfolioUseCase, contentUseCase, optionsUseCase, statsUseCase, appLogger)
	experienceHandler := httpAdapter.NewExperienceHandler(experienceUseCase, appLogger)
	educationHandler := httpAdapter.NewEducationHandler(educationUseCase, appLogger)
	projectHandler := httpAdapter.NewProjectHandler(projectUseCase, appLogger)
	skillHandler := httpAdapter.NewSkillHandler(skillUseCase, appLogger)
	socialHandler := httpAdapter.NewSocialHandler(socialUseCase, appLogger)
	mediaHandler := httpAdapter.NewMediaHandler(uploadUseCase, appLogger)
	themeHandler := httpAdapter.NewThemeHandler(listThemesUseCase)
	viewHandler := httpAdapter.NewViewHandler(viewUseCase, metadataUseCase, appLogger)

	// Middleware
	authMiddleware := httpAdapter.AuthMiddleware(jwtSvc)

	// Setup Gin router
	router := gin.Default()
	router.Use(httpAdapter.ErrorMiddleware(appLogger))

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })

		authGroup := api.Group("/auth")
		authGroup.POST("/login", authHandler.Login)

		api.GET("/themes", themeHandler.List)

		dashboard := api.Group("/dashboard")
		dashboard.Use(authMiddleware)
		{
			dashboard.POST("/portfolio", portfolioHandler.Create)
			dashboard.GET("/portfolio", portfolioHandler.Get)
			dashboard.PUT("/portfolio/published", portfolioHandler.SetPublished)
			dashboard.GET("/stats", portfolioHandler.Stats)

			dashboard.GET("/content", portfolioHandler.GetContent)
			dashboard.PUT("/content", portfolioHandler.UpsertContent)

			dashboard.GET("/options", portfolioHandler.GetOptions)
			dashboard.PUT("/options", portfolioHandler.UpdateOptions)

			experiences := dashboard.Group("/experiences")
			{
				experiences.GET("", experienceHandler.List)
				experiences.POST("", experienceHandler.Add)
				experiences.PUT("/:id", experienceHandler.Update)
				experiences.DELETE("/:id", experienceHandler.Delete)
			}

			educations := dashboard.Group("/educations")
			{
				educations.GET("", educationHandler.List)
				educations.POST("", educationHandler.Add)
				educations.PUT("/:id", educationHandler.Update)
				educations.DELETE("/:id", educationHandler.Delete)
			}

			projects := dashboard.Group("/projects")
			{
				projects.GET("", projectHandler.List)
				projects.POST("", projectHandler.Add)
				projects.PUT("/:id", projectHandler.Update)
				projects.DELETE("/:id", projectHandler.Delete)
			}

			skills := dashboard.Group("/skills")
			{
				skills.GET("", skillHandler.List)
				skills.POST("", skillHandler.Add)
				skills.PUT("/:id", skillHandler.Update)
				skills.DELETE("/:id", skillHandler.Delete)
			}

			socials := dashboard.Group("/socials")
			{
				socials.GET("", socialHandler.List)
				socials.POST("", socialHandler.Add)
				socials.PUT("/:id", socialHandler.Update)
				socials.DELETE("/:id", socialHandler.Delete)
			}

			dashboard.POST("/media", mediaHandler.Upload)
		}

		// Public portfolio pages, addressable by username, id or tenant.
		public := api.Group("/p")
		{
			public.GET("/id/:id", viewHandler.ByID)
			public.GET("/id/:id/meta", viewHandler.MetaByID)
			public.GET("/t/:tenant", viewHandler.ByTenant)
			public.GET("/t/:tenant/meta", viewHandler.MetaByTenant)
			public.GET("/:username", viewHandler.ByUsername)
			public.GET("/:username/meta", viewHandler.MetaByUsername)
		}
	}

	appLogger.Info("Server running on port " + cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		appLogger.Fatal("cannot run server", err)
	}
}
