package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/savdoai/console-api/config"
	"github.com/savdoai/console-api/internal/cache"
	"github.com/savdoai/console-api/internal/gateway"
	"github.com/savdoai/console-api/internal/handlers"
	"github.com/savdoai/console-api/internal/middleware"
	"github.com/savdoai/console-api/internal/models"
	"github.com/savdoai/console-api/internal/services"
	"github.com/savdoai/console-api/pkg/httpclient"
	"github.com/savdoai/console-api/pkg/logger"
	"github.com/savdoai/console-api/pkg/metrics"
	"github.com/savdoai/console-api/pkg/profiling"
	"github.com/savdoai/console-api/pkg/tracing"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

// registerAPIRoutes registers the public API surface
func registerAPIRoutes(
	group *gin.RouterGroup,
	cfg *config.Config,
	generalRateLimiter, authRateLimiter *middleware.RateLimiter,
	registrationHandler *handlers.RegistrationHandler,
	loginHandler *handlers.LoginHandler,
	aiConfigHandler *handlers.AIConfigHandler,
	tariffsHandler *handlers.TariffsHandler,
) {
	group.GET("/tariffs", generalRateLimiter.Middleware(), tariffsHandler.List)
	group.POST("/register", authRateLimiter.Middleware(), middleware.BodySizeLimitMiddleware(100*1024), registrationHandler.Register)
	group.POST("/login", authRateLimiter.Middleware(), middleware.BodySizeLimitMiddleware(100*1024), loginHandler.Login)
	group.POST("/logout", generalRateLimiter.Middleware(), loginHandler.Logout)

	// AI assistant configuration (requires the backend session token)
	aiConfig := group.Group("/ai-config")
	aiConfig.Use(middleware.RequireAuthToken(cfg.AuthCookie.Name))
	aiConfig.GET("", generalRateLimiter.Middleware(), aiConfigHandler.GetConfig)
	aiConfig.POST("", generalRateLimiter.Middleware(), middleware.BodySizeLimitMiddleware(1*1024*1024), aiConfigHandler.SaveConfig)
}

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	err = logger.Initialize(logger.Config{
		Level:       cfg.Logging.Level,
		LogDir:      cfg.Logging.Dir,
		Environment: cfg.Server.AppEnv,
		ServiceName: cfg.Observability.ServiceName,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting console API",
		zap.String("version", cfg.Observability.ServiceVersion),
		zap.String("environment", cfg.Server.AppEnv),
		zap.String("backend", cfg.Backend.BaseURL),
	)

	// Initialize distributed tracing
	tracerShutdown, err := tracing.InitTracer(
		cfg.Observability.ServiceName,
		cfg.Observability.ServiceNamespace,
		cfg.Observability.ServiceVersion,
		cfg.Observability.ServiceInstanceID,
		cfg.Server.AppEnv,
		cfg.Observability.AlloyEndpoint,
	)
	if err != nil {
		logger.Fatal("Failed to initialize tracer", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tracerShutdown(ctx); shutdownErr != nil {
			logger.Error("Failed to shutdown tracer", zap.Error(shutdownErr))
		}
	}()

	// Initialize metrics with service name from config
	metrics.Init(cfg.Observability.ServiceName)
	metrics.RecordInfrastructureMetrics()

	// Initialize continuous profiling
	profilerStop, err := profiling.InitProfiler(
		cfg.Profiling,
		cfg.Observability.ServiceName,
		cfg.Observability.ServiceNamespace,
		cfg.Observability.ServiceVersion,
		cfg.Observability.ServiceInstanceID,
		cfg.Server.AppEnv,
	)
	if err != nil {
		logger.Fatal("Failed to initialize profiler", zap.Error(err))
	}
	defer profilerStop()

	// Outbound HTTP client for the backend gateway
	httpClient := httpclient.NewStandardClientWithTimeout(
		time.Duration(cfg.Backend.TimeoutSeconds) * time.Second,
	)
	backendGateway := gateway.NewClient(cfg.Backend, httpClient)

	// Tariff list cache
	tariffsCache := cache.NewTariffsCache(cfg.Cache.TariffsTTLSeconds)

	// Initialize services
	registrationService := services.NewRegistrationService(backendGateway)
	loginService := services.NewLoginService(backendGateway)
	aiConfigService := services.NewAIConfigService(backendGateway)
	tariffsService := services.NewTariffsService(backendGateway, tariffsCache)

	// Initialize handlers
	registrationHandler := handlers.NewRegistrationHandler(registrationService, cfg.AuthCookie)
	loginHandler := handlers.NewLoginHandler(loginService, cfg.AuthCookie)
	aiConfigHandler := handlers.NewAIConfigHandler(aiConfigService)
	tariffsHandler := handlers.NewTariffsHandler(tariffsService)
	healthHandler := handlers.NewHealthHandler()

	// Set up Gin router
	gin.SetMode(cfg.Server.GinMode)
	router := gin.New()

	// Global middleware. Panics surface as the generic localized 500 body,
	// never as stack traces or raw error text.
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("Panic recovered in handler",
			zap.Any("panic", recovered),
			zap.String("path", c.Request.URL.Path),
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorBody{
			Success: false,
			Error:   models.MsgInternalError,
		})
	}))
	router.Use(otelgin.Middleware(cfg.Observability.ServiceName))
	router.Use(middleware.ObservabilityMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())

	// CORS configuration - only allow specific origins
	allowedOrigins := cfg.Server.AllowedOrigins
	if cfg.IsDevelopment() {
		allowedOrigins = append(allowedOrigins, "http://localhost:3000", "http://127.0.0.1:3000")
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "traceparent", "tracestate"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true, // Required for the auth cookie
		MaxAge:           12 * time.Hour,
	}))

	// Rate limiters: the auth endpoints get a tight budget to slow down
	// credential stuffing and registration spam
	generalRateLimiter := middleware.NewRateLimiter(100, 200) // 100 req/sec, burst of 200
	authRateLimiter := middleware.NewRateLimiter(0.5, 5)      // 1 req/2sec, burst of 5

	// API routes
	api := router.Group("/api")
	api.GET("/healthcheck", generalRateLimiter.Middleware(), healthHandler.Healthcheck)
	api.GET("/metrics", generalRateLimiter.Middleware(), gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	registerAPIRoutes(api, cfg, generalRateLimiter, authRateLimiter,
		registrationHandler, loginHandler, aiConfigHandler, tariffsHandler)

	// Create HTTP server with hardened timeouts
	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 15 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Server started", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
