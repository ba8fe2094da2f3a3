package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	appdiscovery "github.com/Unconfirmed2/nearbuy-sub000/internal/application/discovery"
	"github.com/Unconfirmed2/nearbuy-sub000/internal/domain/discovery"
	"github.com/Unconfirmed2/nearbuy-sub000/internal/infrastructure/cache"
	"github.com/Unconfirmed2/nearbuy-sub000/internal/infrastructure/config"
	"github.com/Unconfirmed2/nearbuy-sub000/internal/infrastructure/geo"
	"github.com/Unconfirmed2/nearbuy-sub000/internal/infrastructure/logger"
	"github.com/Unconfirmed2/nearbuy-sub000/internal/infrastructure/persistence"
	"github.com/Unconfirmed2/nearbuy-sub000/internal/interfaces/http/dto"
	"github.com/Unconfirmed2/nearbuy-sub000/internal/interfaces/http/handler"
	"github.com/Unconfirmed2/nearbuy-sub000/internal/interfaces/http/middleware"
	"github.com/Unconfirmed2/nearbuy-sub000/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

var version = "dev"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting discovery service",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("version", version),
	)

	// Database connection with zap-backed GORM logger
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	// Redis backs the session stores and the travel metric cache
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing redis client", zap.Error(err))
		}
	}()
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to redis", zap.Error(err))
	}
	log.Info("Redis connected", zap.String("addr", cfg.Redis.Addr()))

	// Repositories and catalog sources
	productRepo := persistence.NewGormProductRepository(db.DB)
	sellerRepo := persistence.NewGormSellerRepository(db.DB)
	offerRepo := persistence.NewGormOfferRepository(db.DB)
	productSource := persistence.NewProductCatalogSource(productRepo, offerRepo)
	storeSource := persistence.NewStoreCatalogSource(sellerRepo)

	// Travel metric provider, optionally wrapped in a Redis read-through cache
	var provider discovery.DistanceProvider = geo.NewRoutingClient(&cfg.Geo)
	if !cfg.Geo.CacheDisabled {
		provider = geo.NewCachedProvider(provider, redisClient, cfg.Geo.CacheTTL, log)
	}

	// Ranking pipeline
	collatorTag, err := language.Parse(cfg.Discovery.CollatorLocale)
	if err != nil {
		log.Warn("Invalid collator locale, falling back to English",
			zap.String("locale", cfg.Discovery.CollatorLocale), zap.Error(err))
		collatorTag = language.English
	}
	enricher := appdiscovery.NewOfferEnricher(provider, log,
		appdiscovery.WithConcurrency(cfg.Discovery.LookupConcurrent),
		appdiscovery.WithLookupTimeout(cfg.Discovery.LookupTimeout),
	)
	orderer := discovery.NewOrderer(collatorTag)
	productEngine := appdiscovery.NewEngine(productSource, enricher, orderer, cfg.Discovery.PageSize, log)
	storeEngine := appdiscovery.NewEngine(storeSource, enricher, orderer, cfg.Discovery.PageSize, log)

	// Session-scoped stores
	locationStore := cache.NewRedisLocationStore(redisClient, cfg.Discovery.SessionTTL)
	basketStore := cache.NewRedisBasketStore(redisClient, cfg.Discovery.SessionTTL)

	searchService := appdiscovery.NewSearchService(productEngine, storeEngine, locationStore, basketStore, log)

	// HTTP layer
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	dto.RegisterCustomValidators()

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	engine.Use(middleware.CORSWithConfig(corsConfig))

	router.NewRouter(engine).
		Register(handler.NewDiscoveryHandler(searchService)).
		Register(handler.NewSystemHandler(db, version)).
		Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
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
