package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"golang.org/x/time/rate"

	"github.com/amslabs/ams/internal/config"
	_ "github.com/amslabs/ams/internal/docs"
)

// SecurityHeaders middleware adds essential security headers to all responses.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		w.Header().Set("Permissions-Policy", "geolocation=(), microphone=(), camera=()")
		next.ServeHTTP(w, r)
	})
}

// NewRouter builds the HTTP router serving the AMS JSON API.
func NewRouter(cfg *config.Config) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// SECURITY: Only trust X-Forwarded-For headers when behind a trusted
	// reverse proxy. Otherwise the direct connection IP is used, so clients
	// cannot spoof their address and bypass rate limiting.
	if cfg.TrustProxy {
		r.Use(middleware.RealIP)
	}

	r.Use(SecurityHeaders)

	// Wide-open CORS for frontend integration: any origin, method and header,
	// credentials included. Echoing the request origin keeps the policy
	// permissive without emitting the invalid "*"-with-credentials combination.
	r.Use(cors.Handler(cors.Options{
		AllowOriginFunc:  func(r *http.Request, origin string) bool { return true },
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// System endpoints (no rate limiting)
	r.Get("/", Root)
	r.Get("/health", Health)
	r.Get("/healthz", Healthz)

	// Rate limiter for API requests (100 requests/second with burst of 200).
	// High enough to not interfere with normal usage but prevents abuse.
	apiLimiter := NewIPRateLimiter(rate.Limit(100), 200)

	r.Route("/api", func(api chi.Router) {
		api.Use(RateLimitMiddleware(apiLimiter))

		// API Documentation (Swagger UI)
		api.Get("/docs", http.RedirectHandler("/api/docs/index.html", http.StatusMovedPermanently).ServeHTTP)
		api.Get("/docs/*", httpSwagger.Handler(
			httpSwagger.URL("/api/docs/doc.json"),
		))

		api.Route("/v1", func(v1 chi.Router) {
			v1.Get("/status", Status)
			v1.Get("/agents", ListAgents)
			v1.Get("/metrics", GetMetrics)
		})
	})

	return r
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
