package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	_ "github.com/praveenjayakumarramesh/st-joseph-church/docs"
	"github.com/praveenjayakumarramesh/st-joseph-church/internal/domain/shared"
	"github.com/praveenjayakumarramesh/st-joseph-church/internal/infrastructure/logger"
	"github.com/praveenjayakumarramesh/st-joseph-church/internal/infrastructure/telemetry"
	"github.com/praveenjayakumarramesh/st-joseph-church/internal/interfaces/http/dto"
	"github.com/praveenjayakumarramesh/st-joseph-church/internal/interfaces/http/handler"
	"github.com/praveenjayakumarramesh/st-joseph-church/internal/interfaces/http/middleware"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Handlers groups the HTTP handlers mounted by NewEngine
type Handlers struct {
	Health       *handler.HealthHandler
	Auth         *handler.AuthHandler
	Records      *handler.RecordHandler
	Donations    *handler.DonationHandler
	Expenses     *handler.ExpenseHandler
	Designations *handler.DesignationHandler
	Gallery      *handler.GalleryHandler
}

// EngineConfig carries the middleware settings of the HTTP surface
type EngineConfig struct {
	Logger         *zap.Logger
	TrustedProxies []string
	CORS           middleware.CORSConfig
	Security       middleware.SecurityConfig
	MaxBodySize    int64
	// RateLimiter and AuthRateLimiter are optional; nil disables the bucket
	RateLimiter     *middleware.RateLimiter
	AuthRateLimiter *middleware.RateLimiter
	// JWT guards mutating requests; its Methods and SkipPaths are filled in
	// from DefaultJWTConfig when empty
	JWT           middleware.JWTMiddlewareConfig
	Tracing       middleware.TracingConfig
	MeterProvider *telemetry.MeterProvider
	Profiling     middleware.ProfilingConfig
	Swagger       middleware.SwaggerConfig
}

// NewEngine builds the gin engine with the full middleware stack, the
// health check, the API docs and every /api route.
func NewEngine(cfg EngineConfig, h Handlers) *gin.Engine {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	middleware.SetupValidator()

	engine := gin.New()
	if len(cfg.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Order matters:
	// 1. RequestID before the logger so every line carries it
	// 2. Recovery wraps everything after it
	// 3. Tracing before SpanAttributes, metrics and profiling labels
	engine.Use(middleware.RequestID())
	engine.Use(logger.GinMiddleware(log))
	engine.Use(logger.Recovery(log))
	engine.Use(middleware.SecureWithConfig(cfg.Security))
	engine.Use(middleware.CORSWithConfig(cfg.CORS))
	if cfg.MaxBodySize > 0 {
		engine.Use(middleware.BodyLimit(cfg.MaxBodySize))
	}
	if cfg.RateLimiter != nil {
		engine.Use(middleware.RateLimit(cfg.RateLimiter))
	}
	engine.Use(middleware.TracingWithConfig(cfg.Tracing))
	engine.Use(middleware.SpanAttributes())
	engine.Use(middleware.HTTPMetrics(cfg.MeterProvider, log))
	engine.Use(middleware.ProfilingWithConfig(cfg.Profiling))

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(shared.CodeNotFound, "Route not found"))
	})

	engine.GET("/health", h.Health.Health)
	engine.GET("/swagger/*any", middleware.SwaggerProtection(cfg.Swagger), ginSwagger.WrapHandler(swaggerFiles.Handler))

	jwtCfg := cfg.JWT
	if jwtCfg.Logger == nil {
		jwtCfg.Logger = log
	}
	defaults := middleware.DefaultJWTConfig(jwtCfg.JWTService)
	if len(jwtCfg.Methods) == 0 {
		jwtCfg.Methods = defaults.Methods
	}
	if len(jwtCfg.SkipPaths) == 0 {
		jwtCfg.SkipPaths = defaults.SkipPaths
	}

	// /me is a read, so the method-scoped guard above lets it through
	requireAuth := middleware.JWTAuthMiddlewareWithConfig(middleware.JWTMiddlewareConfig{
		JWTService:     jwtCfg.JWTService,
		TokenBlacklist: jwtCfg.TokenBlacklist,
		Logger:         jwtCfg.Logger,
	})

	authRoutes := NewDomainGroup("auth", "/auth")
	if cfg.AuthRateLimiter != nil {
		authRoutes.POST("/login", middleware.AuthRateLimit(cfg.AuthRateLimiter), h.Auth.Login)
	} else {
		authRoutes.POST("/login", h.Auth.Login)
	}
	authRoutes.POST("/logout", h.Auth.Logout)
	authRoutes.GET("/me", requireAuth, h.Auth.Me)

	recordRoutes := NewDomainGroup("records", "/records").Ledger(h.Records)
	donationRoutes := NewDomainGroup("donations", "/donations").Ledger(h.Donations)
	expenseRoutes := NewDomainGroup("expenses", "/expenses").Ledger(h.Expenses)
	designationRoutes := NewDomainGroup("designations", "/designations").Resource(h.Designations)
	galleryRoutes := NewDomainGroup("gallery", "/gallery").
		POST("/upload-url", h.Gallery.UploadURL).
		Catalog(h.Gallery)

	NewRouter(engine).
		Use(middleware.JWTAuthMiddlewareWithConfig(jwtCfg)).
		Register(authRoutes, recordRoutes, donationRoutes, expenseRoutes, designationRoutes, galleryRoutes).
		Setup()

	return engine
}
