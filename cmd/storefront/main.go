package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	adminapp "github.com/dwikikusuma/storefront/internal/admin/app"

	cartapp "github.com/dwikikusuma/storefront/internal/cart/app"
	cartadapter "github.com/dwikikusuma/storefront/internal/cart/infra/adapter"

	catalogapp "github.com/dwikikusuma/storefront/internal/catalog/app"
	catalogadapter "github.com/dwikikusuma/storefront/internal/catalog/infra/adapter"

	identityapp "github.com/dwikikusuma/storefront/internal/identity/app"
	identityadapter "github.com/dwikikusuma/storefront/internal/identity/infra/adapter"

	orderapp "github.com/dwikikusuma/storefront/internal/order/app"
	orderadapter "github.com/dwikikusuma/storefront/internal/order/infra/adapter"

	"github.com/dwikikusuma/storefront/internal/session"
	"github.com/dwikikusuma/storefront/internal/session/memstore"
	"github.com/dwikikusuma/storefront/internal/session/redisstore"
	"github.com/dwikikusuma/storefront/internal/web"

	"github.com/dwikikusuma/storefront/pkg/config"
	"github.com/dwikikusuma/storefront/pkg/logger"
	"github.com/dwikikusuma/storefront/pkg/shutdown"
	"github.com/dwikikusuma/storefront/pkg/storeapi"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg := config.Load()
	log := logger.New(logger.Options{
		Service:   "storefront",
		Env:       cfg.AppEnv,
		Level:     cfg.LogLevel,
		AddSource: true,
	})

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	var wg sync.WaitGroup

	store, ready, closeStore := mustSessionStore(ctx, cfg, log, &wg)
	defer closeStore()

	api := storeapi.New(cfg.StoreAPIURL, cfg.StoreAPITimeout, storeapi.WithLogger(log))

	// Catalog
	catalogSvc := catalogapp.NewService(catalogadapter.NewProductGateway(api, log))

	// Orders
	orderSvc := orderapp.NewService(orderadapter.NewOrderGateway(api))

	// Identity
	identityGW := identityadapter.NewGateway(api)
	identitySvc := identityapp.NewService(identityGW, identityGW)

	// Cart
	cartSvc := cartapp.NewService(cartadapter.NewOrderServicePlacer(api), cfg.StoreAPITimeout, log)

	srv := web.NewServer(web.Deps{
		Catalog:  catalogSvc,
		Cart:     cartSvc,
		Orders:   orderSvc,
		Identity: identitySvc,
		Admin:    adminapp.NewService(catalogSvc, orderSvc, identitySvc),
		Sessions: session.NewManager(store, cfg.SessionTTL, log),
		Ready:    ready,
		Cookie: web.CookieConfig{
			Name:   cfg.SessionCookie,
			TTL:    cfg.SessionTTL,
			Secure: cfg.SecureCookies(),
		},
		RequestTimeout: 2 * cfg.StoreAPITimeout,
		Log:            log,
	})

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	server := &http.Server{
		Addr:              addr,
		Handler:           srv.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      2*cfg.StoreAPITimeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Info("http server starting", slog.String("addr", addr), slog.String("store_api", cfg.StoreAPIURL))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http server error", slog.Any("err", err))
			cancel()
		}
	}()

	<-ctx.Done()
	log.Info("shutdown requested")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown error", slog.Any("err", err))
	}

	wg.Wait()
	log.Info("bye")
}

// mustSessionStore builds the configured session backend, its readiness
// probe and its cleanup.
func mustSessionStore(ctx context.Context, cfg config.Config, log *slog.Logger, wg *sync.WaitGroup) (session.Store, func(context.Context) error, func()) {
	switch cfg.SessionBackend {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		store := redisstore.New(client)

		pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
		defer pingCancel()
		if err := store.Ping(pingCtx); err != nil {
			log.Error("redis ping failed", slog.Any("err", err), slog.String("addr", cfg.RedisAddr))
			os.Exit(1)
		}
		log.Info("session store ready", slog.String("backend", "redis"), slog.String("addr", cfg.RedisAddr))

		return store, store.Ping, func() {
			if err := client.Close(); err != nil {
				log.Warn("redis close error", slog.Any("err", err))
			}
		}

	case "memory":
		store := memstore.New()
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Run(ctx, time.Minute)
		}()
		log.Info("session store ready", slog.String("backend", "memory"))
		return store, nil, func() {}

	default:
		log.Error("unknown session backend", slog.String("backend", cfg.SessionBackend))
		os.Exit(1)
		return nil, nil, nil
	}
}
