// Package api configures and exposes the HTTP server, routes,
// metrics, docs and related middleware of the studio platform.
package api

import (
	_ "embed"
	"net/http"
	"studiohub/internal/api/handler/v1handler"
	"studiohub/internal/config"
	"studiohub/pkg/controller"
	"studiohub/pkg/logger"
	"studiohub/pkg/metrics"
	"studiohub/pkg/serrors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
	"go.uber.org/zap"
)

// v1Spec contains the embedded OpenAPI specification for version 1 of the API.
//
//go:embed specs/v1.yaml
var v1Spec []byte

// Options holds configuration for the HTTP server and its dependencies.
// It is typically created from a config.Config via NewOptions.
// All durations are used to configure server timeouts, and zero values
// should be considered as using the defaults provided by net/http where applicable.
type Options struct {
	// HandlerOptions configures the v1 endpoints.
	HandlerOptions v1handler.Options

	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// RequestTimeout is the global timeout applied via http.TimeoutHandler for handling requests.
	RequestTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
	// Pprof mounts the runtime profiles.
	Pprof bool
}

// NewOptions constructs an Options value from the provided application configuration.
// It maps HTTP server-related settings from config.Config to the Options used by the API server.
func NewOptions(cfg *config.Config) Options {
	return Options{
		HandlerOptions: v1handler.NewOptions(cfg),

		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
		Pprof:             cfg.HTTP.Pprof,
	}
}

type Deps struct {
	v1handler.Deps

	// HTTPMetrics observes the v1 routes when set.
	HTTPMetrics *metrics.HTTP
	// Gatherer is scraped at MetricsPath. Defaults to the global registry.
	Gatherer prometheus.Gatherer
}

// NewRouter builds the gin engine serving the v1 API under /v1.
func NewRouter(deps Deps, opts Options) *gin.Engine {
	engine := gin.New()
	engine.HandleMethodNotAllowed = true
	engine.Use(gin.CustomRecovery(func(c *gin.Context, p any) {
		logger.Error(c.Request.Context(), "captured panic in handler", zap.Any("panic", p))
		c.AbortWithStatusJSON(http.StatusInternalServerError, v1handler.ErrorResponse{
			Code:    serrors.ErrInternal.Error(),
			Message: "internal error",
		})
	}))
	if deps.HTTPMetrics != nil {
		engine.Use(deps.HTTPMetrics.Middleware())
	}

	v1handler.New(deps.Deps, opts.HandlerOptions).Register(engine.Group("/v1"))

	return engine
}

// NewServer wires up and returns a configured *http.Server using the provided Options.
// It sets up:
// - Prometheus metrics endpoint (MetricsPath)
// - Embedded OpenAPI v1 document and Swagger UI
// - v1 API routes served by gin
// - pprof endpoints for profiling, when enabled
// It also wraps the mux with CORS and logging middlewares and applies a request timeout.
func NewServer(deps Deps, opts Options) (*http.Server, error) {
	mux := http.NewServeMux()

	// prometheus metrics server
	gatherer := deps.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	if opts.MetricsPath == "" {
		opts.MetricsPath = "/metrics"
	}
	mux.Handle(opts.MetricsPath, promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	// v1 specs file
	mux.HandleFunc("/specs/v1.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	// v1 api swagger playground
	mux.Handle("/v1/docs/", v5emb.New(
		"Studio Hub API",
		"/specs/v1.yaml",
		"/v1/docs/",
	))
	// v1 api
	mux.Handle("/v1/", NewRouter(deps, opts))

	if opts.Pprof {
		mux.Handle(controller.PprofPrefix, controller.PprofMux())
	}

	// cors
	handler := controller.WithCORS(mux)

	// logger
	handler = controller.WithLogger(handler)

	if opts.RequestTimeout > 0 {
		handler = http.TimeoutHandler(handler, opts.RequestTimeout, `{"code":"TIMEOUT","message":"request timed out"}`)
	}

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}
