package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/y-smart/service-tripplan/internal/adapter/gbis"
	"github.com/y-smart/service-tripplan/internal/adapter/googlemaps"
	"github.com/y-smart/service-tripplan/internal/adapter/kakao"
	"github.com/y-smart/service-tripplan/internal/application"
	"github.com/y-smart/service-tripplan/internal/config"
	"github.com/y-smart/service-tripplan/internal/handler"
	"github.com/y-smart/service-tripplan/internal/logger"
	"github.com/y-smart/service-tripplan/internal/metrics"
	"github.com/y-smart/service-tripplan/internal/middleware"
	"github.com/y-smart/service-tripplan/internal/repository"
	"go.uber.org/zap"
)

const serviceName = "service-tripplan"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.NewNamed(cfg.AppEnv, serviceName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting "+serviceName,
		zap.String("port", cfg.Port),
		zap.String("map_provider", cfg.MapProvider),
		zap.Bool("demo_mode", cfg.DemoMode),
	)

	// Missing API keys are a warning in development only, never fatal.
	if missing := cfg.MissingKeys(); len(missing) > 0 && cfg.IsDevelopment() {
		log.Warn("missing API keys, providers will fail and degrade to mock data",
			zap.String("keys", strings.Join(missing, ", ")),
		)
	}

	// Initialize metrics
	collector := metrics.NewCollector()

	// Initialize the map capability for the selected provider
	mapService, err := buildMapService(cfg, log)
	if err != nil {
		log.Fatal("failed to create map service", zap.Error(err))
	}

	// Initialize provider adapters
	directionsClient := kakao.NewDirectionsClient(cfg.KakaoRESTAPIKey, cfg.UpstreamTimeout, log)
	gbisClient := gbis.NewClient(cfg.GBISAPIKey, cfg.UpstreamTimeout, log)

	// Initialize the search-session store and its janitor
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := repository.NewTripStore(cfg.SessionTTL)
	store.StartJanitor(ctx, time.Minute)

	// Initialize application services
	tripService := application.NewTripService(
		mapService,
		directionsClient,
		store,
		cfg.DemoMode,
		cfg.UpstreamTimeout,
		collector,
		log,
	)
	placeService := application.NewPlaceService(mapService, collector, log)
	transitService := application.NewTransitService(gbisClient, collector, log)
	paymentService := application.NewPaymentService(store, cfg.PaymentDelay, collector, log)

	// Initialize HTTP handlers
	tripHandler := handler.NewTripHandler(tripService)
	placeHandler := handler.NewPlaceHandler(placeService)
	transitHandler := handler.NewTransitHandler(transitService)
	paymentHandler := handler.NewPaymentHandler(paymentService)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	// Apply global middleware
	router.Use(middleware.RecoveryMiddleware(log))
	router.Use(middleware.LoggerMiddleware(log))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())

	// Register health check routes
	healthHandler := handler.NewHealthHandler(serviceName)
	healthHandler.RegisterRoutes(router)

	// Register routes
	tripHandler.RegisterRoutes(&router.RouterGroup)
	placeHandler.RegisterRoutes(&router.RouterGroup)
	transitHandler.RegisterRoutes(&router.RouterGroup)
	paymentHandler.RegisterRoutes(&router.RouterGroup)

	if cfg.MetricsEnabled {
		router.GET("/metrics", gin.WrapH(collector.Handler()))
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("HTTP server starting", zap.String("addr", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down " + serviceName + "...")

	// Stop the store janitor
	cancel()

	// Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server forced shutdown", zap.Error(err))
	}

	log.Info(serviceName + " stopped")
}

// buildMapService selects the mapping provider from configuration.
func buildMapService(cfg *config.ServiceConfig, log *zap.Logger) (application.MapService, error) {
	switch cfg.MapProvider {
	case config.ProviderGoogle:
		return googlemaps.New(cfg.GoogleMapsAPIKey, log)
	case config.ProviderKakao:
		return kakao.NewLocalClient(cfg.KakaoRESTAPIKey, cfg.UpstreamTimeout, log), nil
	default:
		return nil, fmt.Errorf("unknown map provider: %s", cfg.MapProvider)
	}
}
