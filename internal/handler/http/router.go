package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sweetmoments/storefront/internal/auth"
	"github.com/sweetmoments/storefront/pkg/health"
	"github.com/sweetmoments/storefront/pkg/middleware"
)

// RouterConfig bundles everything the router mounts.
type RouterConfig struct {
	Logger      *slog.Logger
	JWTManager  *auth.JWTManager
	Health      *health.Handler
	ServiceName string
	CORS        middleware.CORSConfig

	Cart      *CartHandler
	Wishlist  *WishlistHandler
	Catalog   *CatalogHandler
	Assistant *AssistantHandler
	Auth      *AuthHandler
}

// NewRouter builds the chi router with the full middleware chain and all
// storefront routes.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.RequestLogging(cfg.Logger))
	r.Use(middleware.Tracing(cfg.ServiceName))
	r.Use(middleware.RequestLogger(cfg.Logger))
	r.Use(middleware.PrometheusMetrics(cfg.ServiceName))
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))

	r.Get("/health/live", cfg.Health.LivenessHandler())
	r.Get("/health/ready", cfg.Health.ReadinessHandler())
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(Authenticate(cfg.JWTManager))
		r.Use(ResolveSession)

		r.Get("/products", cfg.Catalog.ListProducts)
		r.Get("/products/{productID}", cfg.Catalog.GetProduct)
		r.Get("/categories", cfg.Catalog.ListCategories)
		r.With(RequireIdentity).Post("/products", cfg.Catalog.CreateProduct)

		r.Route("/cart", func(r chi.Router) {
			r.Use(RequireSession)
			r.Get("/", cfg.Cart.Get)
			r.Delete("/", cfg.Cart.Clear)
			r.Post("/items", cfg.Cart.AddItem)
			r.Put("/items/{productID}", cfg.Cart.UpdateItem)
			r.Delete("/items/{productID}", cfg.Cart.RemoveItem)
		})

		r.Route("/wishlist", func(r chi.Router) {
			r.Use(RequireSession)
			r.Get("/", cfg.Wishlist.Get)
			r.Post("/toggle", cfg.Wishlist.Toggle)
			r.Get("/{productID}", cfg.Wishlist.Contains)
		})

		r.Post("/assistant/recommend", cfg.Assistant.Recommend)

		r.Post("/auth/demo-session", cfg.Auth.DemoSession)
		r.Post("/auth/signout", cfg.Auth.SignOut)
		r.Get("/auth/me", cfg.Auth.Me)
	})

	return r
}
