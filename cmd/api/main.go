package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/noah-isme/review360-api/api/swagger"
	"github.com/noah-isme/review360-api/internal/handler"
	"github.com/noah-isme/review360-api/internal/middleware"
	"github.com/noah-isme/review360-api/internal/repository"
	"github.com/noah-isme/review360-api/internal/service"
	"github.com/noah-isme/review360-api/pkg/cache"
	"github.com/noah-isme/review360-api/pkg/config"
	"github.com/noah-isme/review360-api/pkg/database"
	"github.com/noah-isme/review360-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/review360-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/review360-api/pkg/middleware/requestid"
)

// @title Review360 API
// @version 1.0.0
// @description 360-degree performance review collection and aggregation
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect database", "error", err)
	}
	defer db.Close()

	if err := database.EnsureSchema(context.Background(), db); err != nil {
		logr.Sugar().Fatalw("failed to ensure schema", "error", err)
	}

	metricsSvc := service.NewMetricsService()

	var cacheRepo service.CacheRepository
	if cfg.Catalog.CacheEnabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, catalog cache disabled", "error", err)
		} else {
			cacheRepo = repository.NewCacheRepository(redisClient, logr)
		}
	}
	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.Catalog.CacheTTL, logr, cfg.Catalog.CacheEnabled && cacheRepo != nil)

	questionRepo := repository.NewQuestionRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	reviewerRepo := repository.NewReviewerRepository(db)
	responseRepo := repository.NewResponseRepository(db)

	catalogSvc := service.NewCatalogService(questionRepo, cacheSvc, logr)
	reviewSvc := service.NewReviewService(reviewRepo, reviewerRepo, nil, logr)
	submissionSvc := service.NewSubmissionService(reviewerRepo, reviewRepo, catalogSvc, responseRepo, nil, logr)
	resultsSvc := service.NewResultsService(reviewRepo, reviewerRepo, responseRepo, catalogSvc, logr)
	exportSvc := service.NewExportService(resultsSvc, nil, nil, logr)

	reviewHandler := handler.NewReviewHandler(reviewSvc, resultsSvc, exportSvc)
	submissionHandler := handler.NewSubmissionHandler(submissionSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	{
		api.POST("/reviews", reviewHandler.Create)
		api.GET("/reviews/:reviewId", reviewHandler.Overview)
		api.GET("/reviews/:reviewId/results", reviewHandler.Results)
		if cfg.Exports.Enabled {
			api.GET("/reviews/:reviewId/results/export", reviewHandler.Export)
		}
		api.GET("/reviewers/:token", submissionHandler.Context)
		api.POST("/responses", submissionHandler.Submit)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
