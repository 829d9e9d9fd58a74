package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/imakhan79/Grocery-Mart/api/routes"
	"github.com/imakhan79/Grocery-Mart/internal/assistant"
	"github.com/imakhan79/Grocery-Mart/internal/audit"
	"github.com/imakhan79/Grocery-Mart/internal/cart"
	"github.com/imakhan79/Grocery-Mart/internal/catalog"
	"github.com/imakhan79/Grocery-Mart/internal/coupons"
	"github.com/imakhan79/Grocery-Mart/internal/notifications"
	"github.com/imakhan79/Grocery-Mart/internal/orders"
	"github.com/imakhan79/Grocery-Mart/internal/seed"
	"github.com/imakhan79/Grocery-Mart/internal/session"
	"github.com/imakhan79/Grocery-Mart/internal/tickets"
	"github.com/imakhan79/Grocery-Mart/internal/users"
	"github.com/imakhan79/Grocery-Mart/internal/wishlist"
	"github.com/imakhan79/Grocery-Mart/pkg/config"
	"github.com/imakhan79/Grocery-Mart/pkg/db"
	"github.com/imakhan79/Grocery-Mart/pkg/logger"
	"github.com/imakhan79/Grocery-Mart/pkg/metrics"
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

	ctx := context.Background()

	dbClient, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(ctx, "error closing database", err)
		}
	}()

	if err := dbClient.Migrate(); err != nil {
		logg.Error(ctx, "failed to migrate schema", err)
		os.Exit(1)
	}
	if err := seed.Run(ctx, dbClient.DB()); err != nil {
		logg.Error(ctx, "failed to seed demo data", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	apiMetrics := metrics.NewAPIMetrics(registry)

	usersRepo := users.NewRepository(dbClient.DB())
	catalogRepo := catalog.NewRepository(dbClient.DB())
	cartRepo := cart.NewRepository(dbClient.DB())
	couponsRepo := coupons.NewRepository(dbClient.DB())
	ordersRepo := orders.NewRepository(dbClient.DB())
	notificationsRepo := notifications.NewRepository(dbClient.DB())
	ticketsRepo := tickets.NewRepository(dbClient.DB())
	wishlistRepo := wishlist.NewRepository(dbClient.DB())
	auditRepo := audit.NewRepository(dbClient.DB())

	auditService, err := audit.NewService(auditRepo)
	if err != nil {
		fatal(logg, ctx, "audit service", err)
	}
	notificationsService, err := notifications.NewService(notificationsRepo)
	if err != nil {
		fatal(logg, ctx, "notifications service", err)
	}
	catalogService, err := catalog.NewService(catalogRepo, auditService)
	if err != nil {
		fatal(logg, ctx, "catalog service", err)
	}
	cartService, err := cart.NewService(cartRepo, catalogRepo, couponsRepo, notificationsService)
	if err != nil {
		fatal(logg, ctx, "cart service", err)
	}
	couponsService, err := coupons.NewService(couponsRepo, cartService, auditService)
	if err != nil {
		fatal(logg, ctx, "coupons service", err)
	}
	ordersService, err := orders.NewService(ordersRepo, cartService, couponsService, usersRepo, notificationsService, auditService, apiMetrics)
	if err != nil {
		fatal(logg, ctx, "orders service", err)
	}
	ticketsService, err := tickets.NewService(ticketsRepo)
	if err != nil {
		fatal(logg, ctx, "tickets service", err)
	}
	wishlistService, err := wishlist.NewService(wishlistRepo, catalogRepo)
	if err != nil {
		fatal(logg, ctx, "wishlist service", err)
	}
	sessionService, err := session.NewService(usersRepo, cartService, cfg.JWT)
	if err != nil {
		fatal(logg, ctx, "session service", err)
	}
	assistantService, err := assistant.NewService(assistant.NewGeminiClient(cfg.Gemini), catalogRepo, logg, apiMetrics)
	if err != nil {
		fatal(logg, ctx, "assistant service", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port

	ctx = logg.WithFields(ctx, map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg,
			logg,
			dbClient,
			registry,
			apiMetrics,
			sessionService,
			catalogService,
			cartService,
			couponsService,
			ordersService,
			notificationsService,
			ticketsService,
			wishlistService,
			auditService,
			assistantService,
		),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}

func fatal(logg *logger.Logger, ctx context.Context, what string, err error) {
	logg.Error(ctx, "failed to create "+what, err)
	os.Exit(1)
}
