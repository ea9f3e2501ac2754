package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/osse101/Armory_Go/docs"
	"github.com/osse101/Armory_Go/internal/auth"
	"github.com/osse101/Armory_Go/internal/bootstrap"
	"github.com/osse101/Armory_Go/internal/catalog"
	"github.com/osse101/Armory_Go/internal/character"
	"github.com/osse101/Armory_Go/internal/config"
	"github.com/osse101/Armory_Go/internal/economy"
	"github.com/osse101/Armory_Go/internal/equipment"
	"github.com/osse101/Armory_Go/internal/inventory"
	"github.com/osse101/Armory_Go/internal/server"
	"github.com/osse101/Armory_Go/internal/user"
)

const shutdownTimeout = 30 * time.Second

// @title Armory API
// @version 1.0
// @description Characters, inventory, equipment and item trading.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to setup logger: %v", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	ctx := context.Background()

	stores, err := bootstrap.InitializeStores(ctx, cfg)
	if err != nil {
		slog.Error("Failed to initialize store", "error", err)
		os.Exit(1)
	}

	if _, err := bootstrap.SeedCatalog(ctx, stores.Items, cfg.CatalogSeedPath); err != nil {
		slog.Error("Failed to seed catalog", "error", err)
		stores.Pool.Close()
		os.Exit(1)
	}

	bus, err := bootstrap.InitializeEventSystem()
	if err != nil {
		slog.Error("Failed to initialize event system", "error", err)
		stores.Pool.Close()
		os.Exit(1)
	}

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTRefreshSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	catalogService := catalog.NewService(stores.Items, catalog.Config{
		CacheSize: cfg.CatalogCacheSize,
		CacheTTL:  cfg.CatalogCacheTTL,
	})

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		AdminAPIKey:    cfg.AdminAPIKey,
		TrustedProxies: cfg.TrustedProxies,
	}, server.Services{
		Pool:      stores.Pool,
		Verifier:  tokens,
		User:      user.NewService(stores.Users, tokens),
		Character: character.NewService(stores.Characters, bus),
		Catalog:   catalogService,
		Inventory: inventory.NewService(stores.Characters, bus),
		Equipment: equipment.NewService(stores.Characters, bus),
		Economy:   economy.NewService(stores.Characters, catalogService, bus),
	})

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server: srv,
		Pool:   stores.Pool,
	})
}
