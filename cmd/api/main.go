package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/sunstateclean/sunstate-backend/api/routes"
	"github.com/sunstateclean/sunstate-backend/internal/catalog"
	contactsvc "github.com/sunstateclean/sunstate-backend/internal/contact"
	quotesvc "github.com/sunstateclean/sunstate-backend/internal/quote"
	"github.com/sunstateclean/sunstate-backend/pkg/bookings"
	"github.com/sunstateclean/sunstate-backend/pkg/config"
	"github.com/sunstateclean/sunstate-backend/pkg/logger"
	"github.com/sunstateclean/sunstate-backend/pkg/metrics"
	"github.com/sunstateclean/sunstate-backend/pkg/redis"
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

	redisClient, err := redis.New(context.Background(), cfg.Redis)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	bookingsClient, err := bookings.NewClient(cfg.Bookings)
	if err != nil {
		logg.Error(context.Background(), "failed to create bookings client", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	quoteMetrics := metrics.NewQuoteMetrics(registry)

	cat := catalog.Default()

	draftStore, err := quotesvc.NewRedisDraftStore(redisClient, cfg.Quotes.DraftTTL)
	if err != nil {
		logg.Error(context.Background(), "failed to create draft store", err)
		os.Exit(1)
	}

	quoteService, err := quotesvc.NewService(quotesvc.ServiceParams{
		Catalog:   cat,
		Store:     draftStore,
		Submitter: bookingsClient,
		Locks:     redisClient,
		Metrics:   quoteMetrics,
		LockTTL:   cfg.Quotes.SubmitLockTTL,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create quote service", err)
		os.Exit(1)
	}

	contactService, err := contactsvc.NewService(contactsvc.ServiceParams{
		Sender:  bookingsClient,
		Metrics: quoteMetrics,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create contact service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, redisClient, cat, quoteService, contactService, registry),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
