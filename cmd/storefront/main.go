package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	assistantapp "github.com/dwikikusuma/storefront-llm/internal/assistant/app"
	assistantadapter "github.com/dwikikusuma/storefront-llm/internal/assistant/infra/adapter"
	cartapp "github.com/dwikikusuma/storefront-llm/internal/cart/app"
	catalogapp "github.com/dwikikusuma/storefront-llm/internal/catalog/app"
	catalogfile "github.com/dwikikusuma/storefront-llm/internal/catalog/infra/file"
	checkoutapp "github.com/dwikikusuma/storefront-llm/internal/checkout/app"
	checkoutadapter "github.com/dwikikusuma/storefront-llm/internal/checkout/infra/adapter"
	"github.com/dwikikusuma/storefront-llm/internal/httpapi"
	"github.com/dwikikusuma/storefront-llm/internal/notify"
	"github.com/dwikikusuma/storefront-llm/pkg/config"
	"github.com/dwikikusuma/storefront-llm/pkg/kv"
	"github.com/dwikikusuma/storefront-llm/pkg/logger"
	"github.com/dwikikusuma/storefront-llm/pkg/shutdown"
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

	snapshots := mustSnapshots(ctx, log, cfg)

	catalogSvc, err := catalogapp.NewService(catalogfile.NewSource(cfg.CatalogPath))
	if err != nil {
		log.Error("catalog load failed", slog.Any("err", err), slog.String("path", cfg.CatalogPath))
		os.Exit(1)
	}

	cartSvc := cartapp.NewService(log, snapshots)

	toasts := notify.NewService(cfg.ToastTTL)
	defer toasts.Close()
	toasts.Subscribe(func(toast notify.Toast) {
		log.Info("toast",
			slog.Int64("id", toast.ID),
			slog.String("severity", string(toast.Severity)),
			slog.String("message", toast.Message),
		)
	})

	dispatcher := assistantapp.NewDispatcher(
		log,
		assistantadapter.NewCatalogResolver(catalogSvc),
		assistantadapter.NewCartWriter(cartSvc),
		assistantadapter.NewToaster(toasts),
	)

	checkoutSvc := checkoutapp.NewService(
		checkoutadapter.NewCartServiceReader(cartSvc),
		checkoutadapter.NewCatalogServiceReader(catalogSvc),
		10,
	)

	api := httpapi.NewServer(log, catalogSvc, cartSvc, checkoutSvc, toasts, dispatcher)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	server := &http.Server{
		Addr:              addr,
		Handler:           api.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Info("http server starting", slog.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http server error", slog.Any("err", err))
			cancel()
		}
	}()

	<-ctx.Done()
	log.Info("shutdown requested")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown error", slog.Any("err", err))
	}

	wg.Wait()
	log.Info("bye")
}

func mustSnapshots(ctx context.Context, log *slog.Logger, cfg config.Config) kv.Store {
	switch cfg.StorageBackend {
	case "memory":
		return kv.NewMemory()
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr: cfg.RedisAddr,
			DB:   cfg.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			log.Error("redis unreachable", slog.Any("err", err), slog.String("addr", cfg.RedisAddr))
			os.Exit(1)
		}
		return kv.NewRedis(client)
	case "file":
		store, err := kv.NewFile(cfg.StorageDir)
		if err != nil {
			log.Error("storage dir unusable", slog.Any("err", err), slog.String("dir", cfg.StorageDir))
			os.Exit(1)
		}
		return store
	default:
		log.Error("unknown storage backend", slog.String("backend", cfg.StorageBackend))
		os.Exit(1)
		return nil
	}
}
