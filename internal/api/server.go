package api

import (
	"log/slog"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/terra-clan/attrition-engine/internal/config"
)

// defaultRouteTimeout applies when the server write timeout is unset
const defaultRouteTimeout = 60 * time.Second

// Server represents the HTTP API server
type Server struct {
	config *config.Config
	router *chi.Mux
	ready  atomic.Bool
}

// NewServer creates a new API server
func NewServer(cfg *config.Config) *Server {
	s := &Server{config: cfg}
	s.setupRouter()
	s.ready.Store(true)
	return s
}

// Router returns the configured router
func (s *Server) Router() http.Handler {
	return s.router
}

// SetReady toggles the readiness probe, e.g. while draining on shutdown
func (s *Server) SetReady(ready bool) {
	s.ready.Store(ready)
}

// routeTimeout bounds handler time by the http.Server write timeout
func (s *Server) routeTimeout() time.Duration {
	if s.config.Server.WriteTimeout > 0 {
		return s.config.Server.WriteTimeout
	}
	return defaultRouteTimeout
}

// setupRouter configures all routes and middleware
func (s *Server) setupRouter() {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(requestIDMiddleware)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.loggingMiddleware)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.config.CORS.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	timeout := middleware.Timeout(s.routeTimeout())

	r.Group(func(r chi.Router) {
		r.Use(timeout)

		r.Get("/", s.handleIndex)
		r.Get("/health", s.handleHealth)
		r.Get("/ready", s.handleReady)

		if s.config.Metrics.IsEnabled() {
			r.Handle("/metrics", promhttp.Handler())
		}

		// Routes served by the original web form
		r.Post("/predict", s.handlePredict)
		r.Get("/model-info", s.handleModelInfo)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.With(timeout).Post("/predict", s.handlePredict)
		r.With(timeout).Get("/model-info", s.handleModelInfo)

		// Websocket connections outlive the request timeout
		if s.config.Stream.IsEnabled() {
			r.Get("/predict/stream", s.handlePredictStream)
		}
	})

	s.router = r
}

// requestIDMiddleware assigns a UUID request id when the client sent none
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(middleware.RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
			r.Header.Set(middleware.RequestIDHeader, id)
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r)
	})
}

// loggingMiddleware logs HTTP requests using slog and records their duration
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			duration := time.Since(start)

			route := "unmatched"
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				route = rctx.RoutePattern()
			}
			HTTPRequestDuration.WithLabelValues(r.Method, route, strconv.Itoa(ww.Status())).Observe(duration.Seconds())

			slog.Info("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration_ms", duration.Milliseconds(),
				"request_id", middleware.GetReqID(r.Context()),
				"remote_addr", r.RemoteAddr,
			)
		}()

		next.ServeHTTP(ww, r)
	})
}
