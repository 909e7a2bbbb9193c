package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/aarohi-store/storefront/internal/api"
	"github.com/aarohi-store/storefront/internal/api/handlers"
	"github.com/aarohi-store/storefront/internal/cache"
	"github.com/aarohi-store/storefront/internal/cart"
	"github.com/aarohi-store/storefront/internal/catalog"
	"github.com/aarohi-store/storefront/internal/checkout"
	"github.com/aarohi-store/storefront/internal/config"
	"github.com/aarohi-store/storefront/internal/logging"
	"github.com/aarohi-store/storefront/internal/payment"
	"github.com/aarohi-store/storefront/internal/repository"
	"github.com/aarohi-store/storefront/pkg/db"
)

func main() {
	logging.Init()
	cfg := config.Load()

	// catalog database
	dbCfg := db.LoadPostgresConfig()
	conn, err := db.NewPostgresConnection(dbCfg)
	if err != nil {
		slog.Error("db connect", "error", err)
		os.Exit(1)
	}
	defer conn.Close()

	if err := db.RunMigrations(conn, dbCfg); err != nil {
		slog.Error("db migrations", "error", err)
		os.Exit(1)
	}

	// cart snapshot persistence is optional: without redis, carts live only
	// in process memory for the session's lifetime.
	var snapshots cart.SnapshotCache
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := client.Ping(pingCtx).Err(); err != nil {
			slog.Warn("redis unavailable, cart snapshots disabled", "addr", cfg.RedisAddr, "error", err)
		} else {
			snapshots = cache.NewCartSnapshots(client)
		}
		cancel()
	}

	catalogSvc := catalog.NewService(repository.NewProductRepo(conn))
	carts := cart.NewManager(snapshots)
	payments := payment.NewClient(cfg.PaymentServiceURL, cfg.PaymentTimeout)
	checkoutSvc := checkout.NewService(payments, checkout.Config{
		FreeShippingThreshold: cfg.FreeShippingThreshold,
		FlatShippingFee:       cfg.FlatShippingFee,
		PublicOrigin:          cfg.PublicOrigin,
	})

	handler := api.NewRouter(
		handlers.NewProductHandler(catalogSvc, cfg.CurrencySymbol),
		handlers.NewCartHandler(carts, catalogSvc, cfg.CurrencySymbol),
		handlers.NewCheckoutHandler(carts, checkoutSvc, cfg.CurrencySymbol),
	)

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// graceful shutdown
	idleConnsClosed := make(chan struct{})
	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt)
		<-c
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			slog.Error("HTTP server shutdown", "error", err)
		}
		close(idleConnsClosed)
	}()

	slog.Info("starting storefront", "addr", cfg.HTTPAddr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("listen", "error", err)
		os.Exit(1)
	}

	<-idleConnsClosed
	slog.Info("server stopped")
}
