package handler

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"

	"github.com/mlachapelle/creatorlens/internal/service"
)

// Metrics holds all Prometheus collectors for the CreatorLens backend.
var Metrics = struct {
	RequestDuration         *prometheus.HistogramVec
	RequestsInFlight        prometheus.Gauge
	CacheHits               prometheus.Counter
	CacheMisses             prometheus.Counter
	SnapshotRefreshDuration prometheus.Histogram
	SnapshotRefreshesTotal  *prometheus.CounterVec
	SnapshotAge             prometheus.GaugeFunc
	DBPoolActive            prometheus.GaugeFunc
	DBPoolIdle              prometheus.GaugeFunc
}{}

// InitMetrics registers all Prometheus metrics. Call once at startup.
func InitMetrics(pool *pgxpool.Pool, dashboard *service.DashboardService) {
	Metrics.RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "creatorlens_api_request_duration_seconds",
			Help:    "HTTP request duration in seconds, by endpoint and method.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint", "method", "status"},
	)

	Metrics.RequestsInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "creatorlens_requests_in_flight",
			Help: "Number of HTTP requests currently being served.",
		},
	)

	Metrics.CacheHits = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "creatorlens_cache_hits_total",
			Help: "Total Redis cache hits for dashboard sections.",
		},
	)

	Metrics.CacheMisses = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "creatorlens_cache_misses_total",
			Help: "Total Redis cache misses for dashboard sections.",
		},
	)

	Metrics.SnapshotRefreshDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "creatorlens_snapshot_refresh_duration_seconds",
			Help:    "Duration of full snapshot load and recompute passes.",
			Buckets: prometheus.DefBuckets,
		},
	)

	Metrics.SnapshotRefreshesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "creatorlens_snapshot_refreshes_total",
			Help: "Completed refresh passes, by outcome (published or stale).",
		},
		[]string{"outcome"},
	)

	// Snapshot age: how far behind the store the served data is
	if dashboard != nil {
		Metrics.SnapshotAge = prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name: "creatorlens_snapshot_age_seconds",
				Help: "Age of the currently served snapshot.",
			},
			func() float64 {
				d, err := dashboard.Current()
				if err != nil {
					return -1
				}
				return time.Since(d.SnapshotAt).Seconds()
			},
		)
		prometheus.MustRegister(Metrics.SnapshotAge)
	}

	// DB pool gauges read live stats from pgxpool
	if pool != nil {
		Metrics.DBPoolActive = prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name: "creatorlens_db_connection_pool_active",
				Help: "Number of active database connections.",
			},
			func() float64 {
				return float64(pool.Stat().AcquiredConns())
			},
		)

		Metrics.DBPoolIdle = prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name: "creatorlens_db_connection_pool_idle",
				Help: "Number of idle database connections.",
			},
			func() float64 {
				return float64(pool.Stat().IdleConns())
			},
		)

		prometheus.MustRegister(Metrics.DBPoolActive)
		prometheus.MustRegister(Metrics.DBPoolIdle)
	}

	prometheus.MustRegister(
		Metrics.RequestDuration,
		Metrics.RequestsInFlight,
		Metrics.CacheHits,
		Metrics.CacheMisses,
		Metrics.SnapshotRefreshDuration,
		Metrics.SnapshotRefreshesTotal,
	)
}

// ObserveRefresh records one completed refresh pass.
func ObserveRefresh(duration time.Duration, published bool) {
	if Metrics.SnapshotRefreshDuration == nil {
		return
	}
	Metrics.SnapshotRefreshDuration.Observe(duration.Seconds())
	outcome := "published"
	if !published {
		outcome = "stale"
	}
	Metrics.SnapshotRefreshesTotal.WithLabelValues(outcome).Inc()
}

// MetricsMiddleware records request duration and in-flight count for Prometheus.
func MetricsMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		// Don't instrument the /metrics endpoint itself
		if c.Path() == "/metrics" {
			return c.Next()
		}

		// Copy path and method into owned strings BEFORE c.Next(). Fiber
		// returns slices backed by the fasthttp buffer which can be reused
		// or overwritten by handlers (especially fasthttpadaptor).
		path := string([]byte(c.Path()))
		method := string([]byte(c.Method()))
		endpoint := sanitizeEndpoint(path)

		Metrics.RequestsInFlight.Inc()
		start := time.Now()

		err := c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Response().StatusCode())

		Metrics.RequestDuration.WithLabelValues(endpoint, method, status).Observe(duration)
		Metrics.RequestsInFlight.Dec()

		return err
	}
}

// sanitizeEndpoint normalizes paths to avoid cardinality explosion.
func sanitizeEndpoint(path string) string {
	switch {
	case strings.HasPrefix(path, "/api/creators/"):
		return "/api/creators/:channelId/stats"
	case strings.HasPrefix(path, "/api/groups/"):
		return "/api/groups/:dimension"
	default:
		return path
	}
}

// MetricsHandler serves the Prometheus /metrics endpoint via Fiber.
func MetricsHandler() fiber.Handler {
	httpHandler := fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())
	return func(c fiber.Ctx) error {
		httpHandler(c.RequestCtx())
		return nil
	}
}
