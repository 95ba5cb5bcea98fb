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

	"github.com/tindwyr/crafthall/internal/catalog"
	"github.com/tindwyr/crafthall/internal/crafting"
	"github.com/tindwyr/crafthall/internal/guild"
	"github.com/tindwyr/crafthall/internal/handler"
	"github.com/tindwyr/crafthall/internal/inventory"
	"github.com/tindwyr/crafthall/internal/logger"
	"github.com/tindwyr/crafthall/internal/metrics"
	"github.com/tindwyr/crafthall/internal/recipebook"
)

// Server hosts the HTTP surface over the crafting services
type Server struct {
	httpServer *http.Server
}

// Options carries everything the router needs
type Options struct {
	Port    int
	APIKey  string
	Recipes *catalog.RecipeCatalog
	Skills  *catalog.SkillCatalog
	Crafter crafting.Service
	Bag     inventory.Service
	Book    recipebook.Service
	Guild   guild.Service
	Pinger  handler.Pinger // nil for file-backed saves
}

// NewServer creates a new Server instance
func NewServer(opts Options) *Server {
	r := chi.NewRouter()

	// Chi middleware executes in order defined, outermost first
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)
	r.Use(apiKeyMiddleware(opts.APIKey))

	// Health and metrics routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(opts.Pinger))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/craft", func(r chi.Router) {
			r.Post("/start", handler.HandleStartCraft(opts.Crafter, opts.Recipes))
			r.Post("/skill", handler.HandleUseSkill(opts.Crafter))
			r.Post("/stop", handler.HandleStopCraft(opts.Crafter))
			r.Get("/session", handler.HandleGetSession(opts.Crafter))
		})

		r.Route("/bag", func(r chi.Router) {
			r.Get("/", handler.HandleGetBag(opts.Bag))
			r.Post("/sort", handler.HandleSortBag(opts.Bag))
			r.Get("/stats", handler.HandleGetBagStats(opts.Bag))
		})

		r.Route("/guild", func(r chi.Router) {
			r.Post("/sell", handler.HandleSellItem(opts.Guild, opts.Bag))
			r.Get("/prices", handler.HandleGetPrices(opts.Guild))
		})

		r.Route("/book", func(r chi.Router) {
			r.Get("/", handler.HandleGetBook(opts.Book))
			r.Post("/favorite", handler.HandleToggleFavorite(opts.Book))
		})

		r.Route("/catalog", func(r chi.Router) {
			r.Get("/recipes", handler.HandleGetRecipes(opts.Recipes))
			r.Get("/skills", handler.HandleGetSkills(opts.Skills))
		})
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
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

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
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

// isOperationalPath reports whether a path is probe traffic not worth logging
func isOperationalPath(path string) bool {
	return strings.HasPrefix(path, "/healthz") ||
		strings.HasPrefix(path, "/readyz") ||
		strings.HasPrefix(path, "/metrics")
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isOperationalPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength)

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

// apiKeyMiddleware enforces the X-API-Key header when a key is configured.
// Health and metrics endpoints stay open for probes and scrapers.
func apiKeyMiddleware(apiKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if apiKey == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isOperationalPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}
			if r.Header.Get(APIKeyHeader) != apiKey {
				logger.FromContext(r.Context()).Warn(LogMsgUnauthorized, "path", r.URL.Path, "remote_addr", r.RemoteAddr)
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
