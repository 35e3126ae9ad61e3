package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/CraftMarket_Go/internal/bank"
	"github.com/osse101/CraftMarket_Go/internal/catalog"
	"github.com/osse101/CraftMarket_Go/internal/crafting"
	"github.com/osse101/CraftMarket_Go/internal/database"
	"github.com/osse101/CraftMarket_Go/internal/handler"
	"github.com/osse101/CraftMarket_Go/internal/job"
	"github.com/osse101/CraftMarket_Go/internal/logger"
	"github.com/osse101/CraftMarket_Go/internal/metrics"
	"github.com/osse101/CraftMarket_Go/internal/pricing"
)

// Options configures the HTTP server
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	RequestTimeout time.Duration
	RateLimitRPS   float64
	RateLimitBurst int
	ServiceName    string
	Version        string
}

// Services bundles the domain services exposed over HTTP
type Services struct {
	Crafting crafting.Service
	Bank     bank.Service
	Jobs     job.Service
	Catalog  catalog.Service
	Pricing  pricing.Service
}

type Server struct {
	httpServer *http.Server
	limiter    *RateLimiter
}

// NewServer creates a new Server instance
func NewServer(opts Options, dbPool database.Pool, svcs Services) *Server {
	limiter := NewRateLimiter(opts.RateLimitRPS, opts.RateLimitBurst)
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           newRouter(opts, dbPool, svcs, limiter),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
		limiter: limiter,
	}
}

// Handler returns the root HTTP handler
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func newRouter(opts Options, dbPool database.Pool, svcs Services, limiter *RateLimiter) http.Handler {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(loggingMiddleware)
	r.Use(metrics.Middleware)
	r.Use(middleware.Recoverer)
	r.Use(SecurityHeadersMiddleware())
	r.Use(RateLimitMiddleware(limiter, opts.TrustedProxies))
	r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))
	r.Get("/version", handler.HandleVersion(opts.ServiceName, opts.Version))

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		if opts.RequestTimeout > 0 {
			r.Use(middleware.Timeout(opts.RequestTimeout))
		}

		r.Get("/recipes/profitability", handler.HandleGetProfitability(svcs.Crafting))

		r.Route("/bank", func(r chi.Router) {
			r.Get("/opportunities", handler.HandleGetBankOpportunities(svcs.Bank))
			r.Post("/sync", handler.HandleSyncBank(svcs.Bank))
		})

		jobHandler := handler.NewJobHandler(svcs.Jobs)
		r.Route("/jobs", func(r chi.Router) {
			r.Get("/", jobHandler.HandleListJobs)
			r.Get("/{jobID}", jobHandler.HandleGetJob)
			r.Get("/{jobID}/leveling-plan", jobHandler.HandleGetLevelingPlan)
		})

		r.Get("/prices/latest", handler.HandleGetLatestPrice(svcs.Pricing))

		r.Post("/observations", handler.HandleRecordObservations(svcs.Catalog))
		r.Route("/catalog", func(r chi.Router) {
			r.Post("/items", handler.HandleSyncItems(svcs.Catalog))
			r.Post("/recipes", handler.HandleSyncRecipes(svcs.Catalog))
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" || len(requestID) > 64 {
			requestID = logger.GenerateRequestID()
		}
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		w.Header().Set(HeaderRequestID, requestID)

		// Probes and scrapes are too frequent to log
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromContext(ctx)
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		log.Debug(LogMsgRequestHeaders, "headers", sanitizeHeaders(r.Header))

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

func sanitizeHeaders(h http.Header) http.Header {
	sanitized := make(http.Header, len(h))
	for k, v := range h {
		if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
			sanitized[k] = []string{RedactedValue}
		} else {
			sanitized[k] = v
		}
	}
	return sanitized
}

// Start starts the server and the rate limiter cleanup loop
func (s *Server) Start() error {
	go s.limiter.StartCleanup(LimiterCleanupPeriod, LimiterIdleExpiry)
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	slog.Default().Info(LogMsgServerStopping)
	s.limiter.Stop()
	return s.httpServer.Shutdown(ctx)
}
