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
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/Foodgram_Go/internal/catalog"
	"github.com/osse101/Foodgram_Go/internal/database"
	"github.com/osse101/Foodgram_Go/internal/domain"
	"github.com/osse101/Foodgram_Go/internal/eventlog"
	"github.com/osse101/Foodgram_Go/internal/follow"
	"github.com/osse101/Foodgram_Go/internal/handler"
	"github.com/osse101/Foodgram_Go/internal/logger"
	"github.com/osse101/Foodgram_Go/internal/membership"
	"github.com/osse101/Foodgram_Go/internal/metrics"
	"github.com/osse101/Foodgram_Go/internal/middleware"
	"github.com/osse101/Foodgram_Go/internal/recipe"
	"github.com/osse101/Foodgram_Go/internal/shopping"
	"github.com/osse101/Foodgram_Go/internal/user"
)

// Options configures the HTTP surface
type Options struct {
	Port           int
	TrustedProxies []string
	CORSOrigins    []string
	RateLimitRPS   float64
	RateLimitBurst int
	MaxBodyBytes   int64
	PageSize       int
}

// Dependencies are the services and infrastructure the routes call into
type Dependencies struct {
	DBPool        database.Pool
	Authenticator *middleware.Authenticator
	Catalog       catalog.Service
	Recipes       recipe.Service
	Memberships   membership.Service
	Shopping      shopping.Service
	Users         user.Service
	Follows       follow.Service
	EventLog      eventlog.Service
}

type Server struct {
	httpServer *http.Server
	dbPool     database.Pool
}

// NewServer creates a new Server instance
func NewServer(opts Options, deps Dependencies) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts, deps),
			ReadHeaderTimeout: DefaultReadHeaderTimeout,
		},
		dbPool: deps.DBPool,
	}
}

// NewRouter builds the full route tree with its middleware stack
func NewRouter(opts Options, deps Dependencies) http.Handler {
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if opts.PageSize <= 0 {
		opts.PageSize = domain.DefaultPageLimit
	}

	detector := NewSuspiciousActivityDetector(opts.RateLimitRPS, opts.RateLimitBurst)
	deps.Authenticator.OnRejected(func(r *http.Request) {
		detector.RecordFailedAuth(extractIP(r, opts.TrustedProxies))
	})

	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(SecurityHeadersMiddleware())
	r.Use(CORSMiddleware(opts.CORSOrigins))
	r.Use(loggingMiddleware)
	r.Use(RateLimitMiddleware(opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(opts.MaxBodyBytes))
	r.Use(metrics.Middleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(deps.DBPool))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	recipes := handler.NewRecipeHandler(deps.Recipes, deps.Memberships, deps.Shopping, opts.PageSize)
	users := handler.NewUserHandler(deps.Users, deps.Follows, opts.PageSize)

	r.Route("/api", func(r chi.Router) {
		r.Use(deps.Authenticator.Identify)

		r.Route("/tags", func(r chi.Router) {
			r.Get("/", handler.HandleListTags(deps.Catalog))
			r.Get("/{id}", handler.HandleGetTag(deps.Catalog))
		})

		r.Route("/ingredients", func(r chi.Router) {
			r.Get("/", handler.HandleListIngredients(deps.Catalog))
			r.Get("/{id}", handler.HandleGetIngredient(deps.Catalog))
		})

		r.Route("/recipes", func(r chi.Router) {
			r.Get("/", recipes.HandleList)
			r.Get("/{id}", recipes.HandleGet)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAuth)
				r.Post("/", recipes.HandleCreate)
				r.Patch("/{id}", recipes.HandleUpdate)
				r.Delete("/{id}", recipes.HandleDelete)
				r.Get("/download_shopping_cart", recipes.HandleDownloadShoppingCart)

				r.Post("/{id}/favorite", recipes.HandleAddMembership(domain.MembershipFavorite))
				r.Delete("/{id}/favorite", recipes.HandleRemoveMembership(domain.MembershipFavorite))
				r.Post("/{id}/shopping_cart", recipes.HandleAddMembership(domain.MembershipShoppingCart))
				r.Delete("/{id}/shopping_cart", recipes.HandleRemoveMembership(domain.MembershipShoppingCart))
			})
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/", users.HandleList)
			r.Get("/{id}", users.HandleGet)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAuth)
				r.Get("/me", users.HandleMe)
				r.Get("/me/activity", handler.HandleListActivity(deps.EventLog))
				r.Get("/subscriptions", users.HandleSubscriptions)
				r.Post("/{id}/subscribe", users.HandleSubscribe)
				r.Delete("/{id}/subscribe", users.HandleUnsubscribe)
			})
		})
	})

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
		if isOpsPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"query", r.URL.RawQuery,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header, len(r.Header))
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAuthorization) || strings.EqualFold(k, "Cookie") {
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
			"duration_ms", duration.Milliseconds())
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
