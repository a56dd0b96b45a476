package router

import (
	"net/http"
	"time"

	"customer-service/internal/config"
	"customer-service/internal/handler"
	"customer-service/pkg/cache"
	"customer-service/pkg/response"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

func SetupRoutes(
	customerHandler *handler.CustomerHandler,
	store *cache.Cache,
	cfg *config.AppConfig,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(RequestID)
	r.Use(middleware.RealIP)
	r.Use(LoggerMiddleware(logger))
	r.Use(middleware.Recoverer)
	r.Use(Timeout(cfg.RequestTimeout))
	r.Use(RateLimit(store, logger, cfg.RateLimitMax, cfg.RateLimitWindow))

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/", customerHandler.Root)

	// Health check
	r.Get("/api/v1/usercustomers/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// API routes
	r.Route("/api/v1/usercustomers", func(r chi.Router) {
		r.Post("/", customerHandler.Create)
		r.Get("/", customerHandler.Get)
		r.Get("/{email}", customerHandler.GetByEmail)
		r.Delete("/{email}", customerHandler.Delete)
	})

	// Anything else is an unknown API
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.RouteNotFound(w)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		response.RouteNotFound(w)
	})

	return r
}

// LoggerMiddleware logs HTTP requests
func LoggerMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			logger.Info("http request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
				zap.String("request_id", RequestIDFrom(r.Context())),
				zap.String("remote_addr", r.RemoteAddr))
		})
	}
}
