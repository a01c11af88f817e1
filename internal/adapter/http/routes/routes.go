package routes

import (
	"net/http"

	_ "fukuro_studio/docs"
	"fukuro_studio/internal/adapter/http/handlers"
	"fukuro_studio/internal/adapter/http/middleware"
	"fukuro_studio/internal/infrastructure/auth"
	"fukuro_studio/internal/infrastructure/observability"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const (
	PathQuotes   = "/quotes"
	PathIntake   = "/intake/sessions"
	PathProjects = "/projects"
	PathAuth     = "/auth"
	PathPayments = "/payments"
)

// Handlers groups the HTTP handlers mounted under /v1.
type Handlers struct {
	Quote   *handlers.QuoteHandler
	Intake  *handlers.IntakeHandler
	Project *handlers.ProjectHandler
	Auth    *handlers.AuthHandler
	Payment *handlers.BillingPaymentHandler
}

// Options configures the cross-cutting middleware.
type Options struct {
	CORSOrigins    []string
	ChatRateLimit  float64
	ChatBurst      int
	MaxConcurrency int
}

// NewRouter builds the gin engine with middleware, /v1 routes, /metrics and /swagger.
func NewRouter(h Handlers, tokens *auth.TokenManager, metrics *observability.Metrics, opts Options, log *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Recovery(log))
	router.Use(middleware.RequestLogger(log, metrics))
	router.Use(cors.New(corsConfig(opts.CORSOrigins)))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if metrics != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))
	}

	admin := middleware.RequireAdmin(tokens)
	chatLimiter := middleware.NewIPRateLimiter(opts.ChatRateLimit, opts.ChatBurst, log)
	chatSlots := middleware.ConcurrencyLimit(opts.MaxConcurrency)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAuthRoutes(v1, h.Auth)
	addQuoteRoutes(v1, h.Quote, admin)
	addIntakeRoutes(v1, h.Intake, chatLimiter.RateLimit(), chatSlots)
	addProjectRoutes(v1, h.Project, admin)
	addPaymentRoutes(v1, h.Payment, admin)

	router.NoRoute(func(c *gin.Context) {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"code": "NOT_FOUND", "message": "Route not found"})
	})
	return router
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders: []string{"X-Request-ID"},
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}
