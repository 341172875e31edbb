package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	financeapp "github.com/praveenjayakumarramesh/st-joseph-church/internal/application/finance"
	identityapp "github.com/praveenjayakumarramesh/st-joseph-church/internal/application/identity"
	parishapp "github.com/praveenjayakumarramesh/st-joseph-church/internal/application/parish"
	"github.com/praveenjayakumarramesh/st-joseph-church/internal/infrastructure/auth"
	"github.com/praveenjayakumarramesh/st-joseph-church/internal/infrastructure/config"
	"github.com/praveenjayakumarramesh/st-joseph-church/internal/infrastructure/logger"
	"github.com/praveenjayakumarramesh/st-joseph-church/internal/infrastructure/migration"
	"github.com/praveenjayakumarramesh/st-joseph-church/internal/infrastructure/persistence"
	"github.com/praveenjayakumarramesh/st-joseph-church/internal/infrastructure/storage"
	"github.com/praveenjayakumarramesh/st-joseph-church/internal/infrastructure/telemetry"
	"github.com/praveenjayakumarramesh/st-joseph-church/internal/interfaces/http/handler"
	"github.com/praveenjayakumarramesh/st-joseph-church/internal/interfaces/http/middleware"
	"github.com/praveenjayakumarramesh/st-joseph-church/internal/interfaces/http/router"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

//	@title			St. Joseph Church API
//	@version		1.0
//	@description	Parish administration API: offerings, donations, expenses, designations and the photo gallery.

//	@license.name	MIT

//	@host		localhost:5001
//	@BasePath	/api

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token authentication. Format: "Bearer {token}"

// shutdownTimeout bounds how long in-flight requests may drain
const shutdownTimeout = 30 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

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
		_ = logger.Sync(log)
	}()

	ctx := context.Background()

	tracingCfg, metricsCfg, logsCfg, profilerCfg := telemetry.FromConfig(cfg.Telemetry)

	// OTLP log export first so every later line reaches the collector
	loggerProvider, err := telemetry.NewLoggerProvider(ctx, logsCfg, log)
	if err != nil {
		log.Fatal("Failed to initialize logger provider", zap.Error(err))
	}
	log = loggerProvider.Bridge(log, zapcore.InfoLevel)

	log.Info("Starting parish API",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("timezone", cfg.App.Location().String()),
	)

	tracerProvider, err := telemetry.NewTracerProvider(ctx, tracingCfg, log)
	if err != nil {
		log.Fatal("Failed to initialize tracer provider", zap.Error(err))
	}

	meterProvider, err := telemetry.NewMeterProvider(ctx, metricsCfg, log)
	if err != nil {
		log.Fatal("Failed to initialize meter provider", zap.Error(err))
	}
	meterProvider.SetGlobal()

	profiler, err := telemetry.NewProfiler(profilerCfg, log)
	if err != nil {
		log.Fatal("Failed to start profiler", zap.Error(err))
	}
	if profiler.IsEnabled() && profilerCfg.SpanLabels {
		tracerProvider.EnableSpanProfiles()
	}

	db, err := persistence.NewDatabase(ctx, &cfg.Database, persistence.Options{
		Logger:          log,
		LogLevel:        logger.MapGormLogLevel(cfg.Log.DatabaseLevel),
		SlowThreshold:   cfg.Log.SlowThreshold,
		RedactSQLParams: cfg.App.IsProduction(),
	})
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully", zap.String("driver", db.Driver()))

	if err := telemetry.RegisterDBTracing(db.DB, telemetry.DBTracingConfig{
		Enabled:          cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled,
		Driver:           cfg.Database.Driver,
		IncludeVariables: !cfg.App.IsProduction(),
	}, log); err != nil {
		log.Warn("Failed to register database tracing", zap.Error(err))
	}

	if cfg.Database.AutoMigrate {
		if err := migrate(db, log); err != nil {
			log.Fatal("Failed to apply migrations", zap.Error(err))
		}
	}

	var blacklist auth.TokenBlacklist
	if cfg.Redis.Enabled {
		redisBlacklist, err := auth.NewRedisTokenBlacklist(ctx, cfg.Redis)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() {
			_ = redisBlacklist.Close()
		}()
		blacklist = redisBlacklist
		log.Info("Token blacklist backed by Redis", zap.String("addr", cfg.Redis.Addr()))
	} else {
		blacklist = auth.NewInMemoryTokenBlacklist()
		log.Info("Token blacklist kept in memory")
	}

	objectStorage, err := storage.New(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal("Failed to initialize object storage", zap.Error(err))
	}

	ledgerMetrics, err := telemetry.NewLedgerMetrics(meterProvider)
	if err != nil {
		log.Fatal("Failed to create ledger metrics", zap.Error(err))
	}
	poolMetrics, err := telemetry.RegisterDBPoolMetrics(meterProvider, db.Stats, log)
	if err != nil {
		log.Fatal("Failed to register database pool metrics", zap.Error(err))
	}
	defer func() { _ = poolMetrics.Unregister() }()

	loc := cfg.App.Location()
	jwtService := auth.NewJWTService(cfg.JWT)

	// Repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	recordRepo := persistence.NewGormRecordRepository(db.DB, loc)
	donationRepo := persistence.NewGormDonationRepository(db.DB, loc)
	expenseRepo := persistence.NewGormExpenseRepository(db.DB, loc)
	designationRepo := persistence.NewGormDesignationRepository(db.DB)
	galleryRepo := persistence.NewGormGalleryRepository(db.DB, loc)

	// Application services
	financeOpts := financeapp.Options{Location: loc, Metrics: ledgerMetrics, Logger: log}
	parishOpts := parishapp.Options{Location: loc, Metrics: ledgerMetrics, Logger: log}

	authService := identityapp.NewAuthService(userRepo, jwtService, blacklist, log)
	recordService := financeapp.NewRecordService(recordRepo, financeOpts)
	donationService := financeapp.NewDonationService(donationRepo, financeOpts)
	expenseService := financeapp.NewExpenseService(expenseRepo, financeOpts)
	designationService := parishapp.NewDesignationService(designationRepo, parishOpts)
	galleryService := parishapp.NewGalleryService(galleryRepo, objectStorage, parishOpts)

	// HTTP handlers
	base := handler.NewBaseHandler(cfg.App.IsProduction())
	handlers := router.Handlers{
		Health:       handler.NewHealthHandler(db),
		Auth:         handler.NewAuthHandler(base, authService),
		Records:      handler.NewRecordHandler(base, recordService),
		Donations:    handler.NewDonationHandler(base, donationService),
		Expenses:     handler.NewExpenseHandler(base, expenseService),
		Designations: handler.NewDesignationHandler(base, designationService),
		Gallery:      handler.NewGalleryHandler(base, galleryService),
	}

	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// the limiters' sweepers stop with the server
	limiterCtx, stopLimiters := context.WithCancel(ctx)
	defer stopLimiters()

	var rateLimiter *middleware.RateLimiter
	if cfg.HTTP.RateLimitEnabled {
		rateLimiter = middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		go rateLimiter.Run(limiterCtx)
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}
	authLimiter := middleware.NewRateLimiter(cfg.HTTP.AuthRateLimitRequests, cfg.HTTP.AuthRateLimitWindow)
	go authLimiter.Run(limiterCtx)

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}

	securityConfig := middleware.DefaultSecurityConfig()
	securityConfig.HSTSEnabled = cfg.App.IsProduction()

	profilingConfig := middleware.DefaultProfilingConfig()
	profilingConfig.Enabled = profiler.IsEnabled()

	engine := router.NewEngine(router.EngineConfig{
		Logger:          log,
		TrustedProxies:  cfg.HTTP.TrustedProxies,
		CORS:            corsConfig,
		Security:        securityConfig,
		MaxBodySize:     cfg.HTTP.MaxBodySize,
		RateLimiter:     rateLimiter,
		AuthRateLimiter: authLimiter,
		JWT: middleware.JWTMiddlewareConfig{
			JWTService:     jwtService,
			TokenBlacklist: blacklist,
		},
		Tracing: middleware.TracingConfig{
			ServiceName: cfg.Telemetry.ServiceName,
			Enabled:     tracerProvider.IsEnabled(),
		},
		MeterProvider: meterProvider,
		Profiling:     profilingConfig,
		Swagger: middleware.SwaggerConfig{
			Enabled:    !cfg.App.IsProduction(),
			AllowedIPs: cfg.HTTP.SwaggerAllowedIPs,
		},
	}, handlers)

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
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	stopLimiters()

	if err := profiler.Stop(); err != nil {
		log.Error("Error stopping profiler", zap.Error(err))
	}
	if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
		log.Error("Error shutting down tracer provider", zap.Error(err))
	}
	if err := meterProvider.Shutdown(shutdownCtx); err != nil {
		log.Error("Error shutting down meter provider", zap.Error(err))
	}
	if err := loggerProvider.Shutdown(shutdownCtx); err != nil {
		log.Error("Error shutting down logger provider", zap.Error(err))
	}

	log.Info("Server exited")
}

// migrate applies pending schema migrations on the server's own pool
func migrate(db *persistence.Database, log *zap.Logger) error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	m, err := migration.New(sqlDB, db.Driver(), log)
	if err != nil {
		return err
	}
	defer func() {
		if err := m.Close(); err != nil {
			log.Warn("Failed to close migrator", zap.Error(err))
		}
	}()
	return m.Up()
}
