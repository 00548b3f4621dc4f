package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/multierr"

	"github.com/aselbek/bazar-backend/api/routes"
	"github.com/aselbek/bazar-backend/internal/auth"
	"github.com/aselbek/bazar-backend/internal/basket"
	"github.com/aselbek/bazar-backend/internal/catalog"
	"github.com/aselbek/bazar-backend/internal/products"
	"github.com/aselbek/bazar-backend/internal/reviews"
	"github.com/aselbek/bazar-backend/internal/translations"
	"github.com/aselbek/bazar-backend/internal/users"
	"github.com/aselbek/bazar-backend/pkg/auth/revocation"
	"github.com/aselbek/bazar-backend/pkg/config"
	"github.com/aselbek/bazar-backend/pkg/db"
	"github.com/aselbek/bazar-backend/pkg/i18n"
	"github.com/aselbek/bazar-backend/pkg/logger"
	"github.com/aselbek/bazar-backend/pkg/metrics"
	"github.com/aselbek/bazar-backend/pkg/migrate"
	"github.com/aselbek/bazar-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}

	revocationStore, err := revocation.NewStore(redisClient)
	if err != nil {
		logg.Error(context.Background(), "failed to create revocation store", err)
		os.Exit(1)
	}

	gormDB := dbClient.DB()
	userRepo := users.NewRepository(gormDB)
	productRepo := products.NewRepository(gormDB)
	translationRepo := translations.NewRepository(gormDB)

	authService, err := auth.NewService(auth.ServiceParams{
		UserRepo:        userRepo,
		RevocationStore: revocationStore,
		JWTConfig:       cfg.JWT,
		PasswordConfig:  cfg.Password,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	userService, err := users.NewService(users.ServiceParams{
		UserRepo:       userRepo,
		PasswordConfig: cfg.Password,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create user service", err)
		os.Exit(1)
	}

	productService, err := products.NewService(products.ServiceParams{
		ProductRepo:      productRepo,
		TranslationsRepo: translationRepo,
		DefaultLocale:    cfg.I18n.DefaultLocale,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create product service", err)
		os.Exit(1)
	}

	catalogService, err := catalog.NewService(catalog.ServiceParams{
		CatalogRepo:      catalog.NewRepository(gormDB),
		ProductService:   productService,
		TranslationsRepo: translationRepo,
		DefaultLocale:    cfg.I18n.DefaultLocale,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog service", err)
		os.Exit(1)
	}

	reviewService, err := reviews.NewService(reviews.ServiceParams{
		ReviewRepo:  reviews.NewRepository(gormDB),
		ProductRepo: productRepo,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create review service", err)
		os.Exit(1)
	}

	basketService, err := basket.NewService(basket.ServiceParams{
		BasketRepo:  basket.NewRepository(gormDB),
		ProductRepo: productRepo,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create basket service", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	httpMetrics := metrics.NewHTTPMetrics(registry)

	router := routes.NewRouter(routes.Params{
		Config:      cfg,
		Logger:      logg,
		DB:          dbClient,
		Redis:       redisClient,
		Gatherer:    registry,
		HTTPMetrics: httpMetrics,
		Locales:     i18n.NewMatcher(cfg.I18n.DefaultLocale, cfg.I18n.SupportedLocales),

		AuthService:    authService,
		UserService:    userService,
		CatalogService: catalogService,
		ProductService: productService,
		ReviewService:  reviewService,
		BasketService:  basketService,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port

	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.App.RequestTimeout,
		WriteTimeout:      cfg.App.RequestTimeout,
		IdleTimeout:       2 * cfg.App.RequestTimeout,
	}

	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	stopCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case <-stopCtx.Done():
		logg.Info(ctx, "shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var shutdownErr error
	if err := server.Shutdown(shutdownCtx); err != nil {
		shutdownErr = multierr.Append(shutdownErr, err)
	}
	if err := redisClient.Close(); err != nil {
		shutdownErr = multierr.Append(shutdownErr, err)
	}
	if err := dbClient.Close(); err != nil {
		shutdownErr = multierr.Append(shutdownErr, err)
	}
	if shutdownErr != nil {
		logg.Error(ctx, "shutdown finished with errors", shutdownErr)
		os.Exit(1)
	}

	logg.Info(ctx, "api server stopped")
}
