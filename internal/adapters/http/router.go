package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/feeling-quotes/internal/adapters/http/handlers"
	"github.com/jsamuelsen/feeling-quotes/internal/adapters/http/middleware"
	"github.com/jsamuelsen/feeling-quotes/internal/platform/config"
	"github.com/jsamuelsen/feeling-quotes/internal/platform/telemetry"
)

// DefaultRequestTimeout is the deadline applied to quote requests when none is configured.
const DefaultRequestTimeout = 5 * time.Second

// defaultServiceName names spans when no app config is supplied.
const defaultServiceName = "feeling-quotes"

// operationalPrefix groups the probe and metrics endpoints.
const operationalPrefix = "/-/"

// RouterConfig contains configuration for setting up the router.
type RouterConfig struct {
	// Logger is the base logger stored in every request context.
	Logger *slog.Logger

	// AppConfig names the service for tracing.
	AppConfig *config.AppConfig

	// HealthHandler serves /-/ endpoints. Optional.
	HealthHandler *handlers.HealthHandler

	// QuoteHandler serves the /quotes API. Optional.
	QuoteHandler *handlers.QuoteHandler

	// StaticHandler serves the front-end. Optional.
	StaticHandler *handlers.StaticHandler

	// Timeout is the deadline for each /quotes request. Zero disables it.
	Timeout time.Duration
}

// SetupRouter configures all routes and middleware on the Gin engine.
// Middleware is applied in the following order (first to last):
//  1. Context logger - base logger for the request
//  2. Recovery - catch panics
//  3. Request ID, then Correlation ID
//  4. OpenTelemetry - tracing span, then HTTP metrics
//  5. Logging - request logging (skips /-/ endpoints)
//
// Routes:
//   - /-/ (internal): health, build info and metrics, no timeout
//   - /quotes: the quote API, with the request timeout
//   - / and any other GET: static front-end files
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	serviceName := defaultServiceName
	if cfg.AppConfig != nil && cfg.AppConfig.Name != "" {
		serviceName = cfg.AppConfig.Name
	}

	engine.Use(
		middleware.ContextLogger(cfg.Logger),
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.CorrelationID(),
		telemetry.TracingMiddleware(serviceName),
		telemetry.Middleware(),
		middleware.Logging(operationalPrefix),
	)

	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutesOnEngine(engine)
	}

	if cfg.QuoteHandler != nil {
		api := engine.Group("")
		api.Use(middleware.Timeout(cfg.Timeout))
		cfg.QuoteHandler.RegisterQuoteRoutes(api)
	}

	if cfg.StaticHandler != nil {
		cfg.StaticHandler.RegisterStaticRoutes(engine)
	}
}

// NewDefaultRouterConfig creates a RouterConfig with the default request timeout.
func NewDefaultRouterConfig(
	logger *slog.Logger,
	appCfg *config.AppConfig,
	healthHandler *handlers.HealthHandler,
	quoteHandler *handlers.QuoteHandler,
	staticHandler *handlers.StaticHandler,
) RouterConfig {
	return RouterConfig{
		Logger:        logger,
		AppConfig:     appCfg,
		HealthHandler: healthHandler,
		QuoteHandler:  quoteHandler,
		StaticHandler: staticHandler,
		Timeout:       DefaultRequestTimeout,
	}
}
