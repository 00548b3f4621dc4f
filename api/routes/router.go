package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aselbek/bazar-backend/api/controllers"
	"github.com/aselbek/bazar-backend/api/middleware"
	"github.com/aselbek/bazar-backend/internal/auth"
	"github.com/aselbek/bazar-backend/internal/basket"
	"github.com/aselbek/bazar-backend/internal/catalog"
	"github.com/aselbek/bazar-backend/internal/products"
	"github.com/aselbek/bazar-backend/internal/reviews"
	"github.com/aselbek/bazar-backend/internal/users"
	"github.com/aselbek/bazar-backend/pkg/config"
	"github.com/aselbek/bazar-backend/pkg/i18n"
	"github.com/aselbek/bazar-backend/pkg/logger"
	"github.com/aselbek/bazar-backend/pkg/metrics"
	"github.com/aselbek/bazar-backend/pkg/redis"
)

// Params carries everything the router needs. Pingers may be nil in tests;
// the ready probe then skips them.
type Params struct {
	Config      *config.Config
	Logger      *logger.Logger
	DB          controllers.Pinger
	Redis       *redis.Client
	Gatherer    prometheus.Gatherer
	HTTPMetrics *metrics.HTTPMetrics
	Locales     *i18n.Matcher

	AuthService    auth.Service
	UserService    users.Service
	CatalogService catalog.Service
	ProductService products.Service
	ReviewService  reviews.Service
	BasketService  basket.Service
}

func NewRouter(p Params) http.Handler {
	cfg, logg := p.Config, p.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
		middleware.Metrics(p.HTTPMetrics),
		middleware.Locale(p.Locales, logg),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginUsernameLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterUsernameLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, map[string]controllers.Pinger{
			"database": p.DB,
			"redis":    pingerOrNil(p.Redis),
		}))
	})

	if p.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(p.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.With(middleware.AuthRateLimit(registerPolicy, p.Redis, logg)).Post("/register", controllers.AuthRegister(p.AuthService, logg))
			r.With(middleware.AuthRateLimit(loginPolicy, p.Redis, logg)).Post("/login", controllers.AuthLogin(p.AuthService, logg))
			r.Post("/refresh", controllers.AuthRefresh(p.AuthService, logg))
			r.With(middleware.Auth(cfg.JWT, logg)).Post("/logout", controllers.AuthLogout(p.AuthService, logg))
		})

		// Public catalog surface.
		r.Get("/categories", controllers.CategoryList(p.CatalogService, logg))
		r.Get("/categories/{categoryId}", controllers.CategoryDetail(p.CatalogService, logg))
		r.Get("/subcategories", controllers.SubCategoryList(p.CatalogService, logg))
		r.Get("/subcategories/{subCategoryId}", controllers.SubCategoryDetail(p.CatalogService, logg))
		r.Get("/products", controllers.ProductList(p.ProductService, logg))
		r.Get("/products/{productId}", controllers.ProductDetail(p.ProductService, logg))
		r.Get("/products/{productId}/reviews", controllers.ProductReviews(p.ReviewService, logg))
		r.Get("/reviews/{reviewId}", controllers.ReviewDetail(p.ReviewService, logg))

		// Authenticated surface.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, logg))

			r.Get("/me", controllers.MeGet(p.UserService, logg))
			r.Patch("/me", controllers.MeUpdate(p.UserService, logg))

			r.Post("/reviews", controllers.ReviewCreate(p.ReviewService, logg))
			r.Patch("/reviews/{reviewId}", controllers.ReviewUpdate(p.ReviewService, logg))
			r.Delete("/reviews/{reviewId}", controllers.ReviewDelete(p.ReviewService, logg))

			r.Route("/basket", func(r chi.Router) {
				r.Get("/", controllers.BasketGet(p.BasketService, logg))
				r.Post("/items", controllers.BasketAddItem(p.BasketService, logg))
				r.Patch("/items/{itemId}", controllers.BasketUpdateItem(p.BasketService, logg))
				r.Delete("/items/{itemId}", controllers.BasketDeleteItem(p.BasketService, logg))
			})
		})
	})

	return r
}

func pingerOrNil(c *redis.Client) controllers.Pinger {
	if c == nil {
		return nil
	}
	return c
}
