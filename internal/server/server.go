package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/osse101/GameCatalog_Go/internal/auth"
	"github.com/osse101/GameCatalog_Go/internal/catalog"
	"github.com/osse101/GameCatalog_Go/internal/category"
	"github.com/osse101/GameCatalog_Go/internal/database"
	"github.com/osse101/GameCatalog_Go/internal/handler"
	"github.com/osse101/GameCatalog_Go/internal/item"
	"github.com/osse101/GameCatalog_Go/internal/logger"
	"github.com/osse101/GameCatalog_Go/internal/metrics"
	"github.com/osse101/GameCatalog_Go/internal/middleware"
	"github.com/osse101/GameCatalog_Go/internal/repository"
)

// Options bundles the services and infrastructure the router depends on
type Options struct {
	Port           int
	Version        string
	Environment    string
	TrustedProxies []string

	DBPool          database.Pool
	Tokens          *auth.TokenManager
	AuthService     auth.Service
	CategoryService category.Service
	ItemService     item.Service
	CatalogService  catalog.Service
	RarityRepo      repository.Rarity
}

type Server struct {
	httpServer *http.Server
	dbPool     database.Pool
}

// NewServer creates a new Server instance
func NewServer(opts Options) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	monitor := NewRateMonitor()

	r.Use(SecurityHeadersMiddleware())
	r.Use(RateLimitMiddleware(opts.TrustedProxies, monitor))
	r.Use(RequestSizeLimitMiddleware(maxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	authenticated := middleware.Authenticate(opts.Tokens)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(opts.DBPool))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion(opts.Version, opts.Environment))

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", handler.HandleRegister(opts.AuthService))
			r.Post("/login", handler.HandleLogin(opts.AuthService))
		})

		// Category routes: reads are public, writes are admin-only
		r.Route("/categories", func(r chi.Router) {
			r.Get("/", handler.HandleListCategories(opts.CategoryService))
			r.Get("/{id}", handler.HandleGetCategory(opts.CategoryService))

			r.Group(func(r chi.Router) {
				r.Use(authenticated, middleware.RequireAdmin)
				r.Post("/", handler.HandleCreateCategory(opts.CategoryService))
				r.Put("/{id}", handler.HandleUpdateCategory(opts.CategoryService))
				r.Delete("/{id}", handler.HandleDeleteCategory(opts.CategoryService))
			})
		})

		// Rarity reference data (read-only)
		r.Route("/rarities", func(r chi.Router) {
			r.Get("/", handler.HandleListRarities(opts.RarityRepo))
			r.Get("/{id}", handler.HandleGetRarity(opts.RarityRepo))
		})

		// Item routes: reads are public, writes are admin-only
		r.Route("/items", func(r chi.Router) {
			r.Get("/", handler.HandleListItems(opts.CatalogService))
			r.Get("/search", handler.HandleSearchItems(opts.CatalogService))
			r.Get("/{id}", handler.HandleGetItem(opts.ItemService))

			r.Group(func(r chi.Router) {
				r.Use(authenticated, middleware.RequireAdmin)
				r.Post("/", handler.HandleCreateItem(opts.ItemService))
				r.Put("/{id}", handler.HandleUpdateItem(opts.ItemService))
				r.Delete("/{id}", handler.HandleDeleteItem(opts.ItemService))
			})
		})

		// Inventory routes: authenticated, owner-or-admin enforced in the
		// catalog service
		r.Route("/users/{userID}/inventory", func(r chi.Router) {
			r.Use(authenticated)
			r.Get("/", handler.HandleGetInventory(opts.CatalogService))
			r.Post("/", handler.HandleAddInventoryItem(opts.CatalogService))
			r.Put("/{itemID}", handler.HandleSetInventoryQuantity(opts.CatalogService))
			r.Delete("/{itemID}", handler.HandleRemoveInventoryItem(opts.CatalogService))
		})
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		dbPool: opts.DBPool,
	}
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
		statusCode:     http.StatusOK, // default status
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

		// Skip logging for health check endpoints and metrics
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		// Sanitize headers for logging
		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)

		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
