package router

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/medicore/hospital-api/internal/config"
	"github.com/medicore/hospital-api/internal/handler"
	"github.com/medicore/hospital-api/internal/middleware"
)

// ResourceHandler registers a resource's routes, receiving the admin gate
// to apply to its protected subset.
type ResourceHandler interface {
	RegisterRoutes(r *gin.RouterGroup, requireAdmin gin.HandlerFunc)
}

// AuthHandler registers the identity endpoints, which manage their own
// token handling.
type AuthHandler interface {
	RegisterRoutes(r *gin.RouterGroup)
}

type Router struct {
	engine    *gin.Engine
	cfg       *config.Config
	auth      *middleware.AuthMiddleware
	authH     AuthHandler
	resources []ResourceHandler
	registry  *prometheus.Registry
	metrics   *routerMetrics
}

type routerMetrics struct {
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	errorTotal      *prometheus.CounterVec
}

func New(
	cfg *config.Config,
	log zerolog.Logger,
	auth *middleware.AuthMiddleware,
	authH AuthHandler,
	resources ...ResourceHandler,
) *Router {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	// A per-router registry keeps metric registration local; the global
	// registry would panic on re-registration under tests.
	registry := prometheus.NewRegistry()

	r := &Router{
		engine:    engine,
		cfg:       cfg,
		auth:      auth,
		authH:     authH,
		resources: resources,
		registry:  registry,
		metrics:   newRouterMetrics(registry),
	}

	rateLimiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
		RPS:   cfg.RateLimit.RPS,
		Burst: cfg.RateLimit.Burst,
	})

	engine.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.Logger(log),
		r.metricsMiddleware(),
		middleware.CORS(middleware.DefaultCORSConfig()),
		rateLimiter.RateLimit(),
	)

	return r
}

func (r *Router) Setup() {
	base := r.engine.Group(r.cfg.Server.BasePath)

	base.GET("/health", handler.HealthCheck)
	base.GET("/metrics", gin.WrapH(promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})))

	r.authH.RegisterRoutes(base)

	requireAdmin := r.auth.RequireAdmin()
	for _, h := range r.resources {
		h.RegisterRoutes(base, requireAdmin)
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}

func newRouterMetrics(registry *prometheus.Registry) *routerMetrics {
	factory := promauto.With(registry)
	return &routerMetrics{
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "hospital_api_request_duration_seconds",
				Help: "Duration of HTTP requests in seconds",
			},
			[]string{"method", "path", "status"},
		),
		requestTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hospital_api_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		errorTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hospital_api_errors_total",
				Help: "Total number of HTTP error responses",
			},
			[]string{"method", "path"},
		),
	}
}

func (r *Router) metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		duration := time.Since(start).Seconds()

		r.metrics.requestDuration.WithLabelValues(c.Request.Method, path, status).Observe(duration)
		r.metrics.requestTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		if c.Writer.Status() >= 400 {
			r.metrics.errorTotal.WithLabelValues(c.Request.Method, path).Inc()
		}
	}
}
