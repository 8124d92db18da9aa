package handlers

import (
	"github.com/JonnyWalker81/workwell/backend/internal/apierror"
	"github.com/JonnyWalker81/workwell/backend/internal/cache"
	"github.com/JonnyWalker81/workwell/backend/internal/logger"
	"github.com/JonnyWalker81/workwell/backend/internal/metrics"
	"github.com/JonnyWalker81/workwell/backend/internal/middleware"
	"github.com/JonnyWalker81/workwell/backend/internal/service"
	"github.com/gin-gonic/gin"
)

// RouterConfig carries everything NewRouter wires together. Metrics,
// RateLimiter, IdempotencyStore and DB are optional.
type RouterConfig struct {
	Env            string
	Logger         logger.Logger
	Metrics        *metrics.Manager
	MetricsPath    string
	AllowedOrigins []string

	Verifier         middleware.TokenVerifier
	RateLimiter      *middleware.RateLimiter
	IdempotencyStore cache.Store
	DB               Pinger

	Checkins       service.CheckinService
	CachedCheckins service.CheckinService
	Burnout        service.BurnoutService
	Alerts         service.AlertService
}

// NewRouter builds the gin engine with the full middleware chain and routes
func NewRouter(cfg RouterConfig) *gin.Engine {
	apierror.RegisterJSONFieldNames()

	log := cfg.Logger
	if log == nil {
		log = logger.Default()
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(log, cfg.Metrics))
	router.Use(middleware.SecurityHeaders(cfg.Env))
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	health := NewHealthHandler(cfg.Env, cfg.DB)
	router.GET("/health", health.Health)
	router.GET("/health/live", health.Live)
	router.GET("/health/ready", health.Ready)

	if cfg.Metrics != nil && cfg.MetricsPath != "" {
		router.GET(cfg.MetricsPath, gin.WrapH(cfg.Metrics.Handler()))
	}

	protected := []gin.HandlerFunc{middleware.Auth(cfg.Verifier)}
	if cfg.RateLimiter != nil {
		protected = append(protected, middleware.RateLimit(cfg.RateLimiter))
	}

	var idempotent []gin.HandlerFunc
	if cfg.IdempotencyStore != nil {
		idempotent = append(idempotent, middleware.Idempotency(cfg.IdempotencyStore, middleware.IdempotencyTTL))
	}

	checkins := NewCheckinHandler(cfg.Checkins)
	burnout := NewBurnoutHandler(cfg.Burnout)
	alerts := NewAlertHandler(cfg.Alerts)

	v1 := router.Group("/api/v1")
	v1.Use(protected...)
	{
		v1.POST("/checkins", append(idempotent, checkins.CreateCheckin)...)
		v1.GET("/checkins/me", checkins.ListMyCheckins)
		v1.GET("/checkins/me/statistics", checkins.GetMyStatistics)
		v1.GET("/checkins/:id", checkins.GetCheckin)

		v1.GET("/burnout/predict/me", burnout.PredictMine)
		v1.GET("/burnout/predict/:user_id", middleware.RequireRole(middleware.RoleAdmin), burnout.PredictForUser)

		v1.GET("/alerts/me", alerts.ListMyAlerts)
		v1.PATCH("/alerts/:id/read", alerts.MarkRead)
	}

	cached := cfg.CachedCheckins
	if cached == nil {
		cached = cfg.Checkins
	}
	checkinsV2 := NewCheckinV2Handler(cached)

	v2 := router.Group("/api/v2")
	v2.Use(protected...)
	{
		v2.GET("/checkins/me", checkinsV2.ListMyCheckins)
		v2.GET("/checkins/me/advanced-analytics", checkinsV2.GetAdvancedAnalytics)
	}

	return router
}
