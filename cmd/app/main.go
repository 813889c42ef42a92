package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/GameCatalog_Go/internal/access"
	"github.com/osse101/GameCatalog_Go/internal/auth"
	"github.com/osse101/GameCatalog_Go/internal/catalog"
	"github.com/osse101/GameCatalog_Go/internal/category"
	"github.com/osse101/GameCatalog_Go/internal/config"
	"github.com/osse101/GameCatalog_Go/internal/database"
	"github.com/osse101/GameCatalog_Go/internal/database/postgres"
	"github.com/osse101/GameCatalog_Go/internal/handler"
	"github.com/osse101/GameCatalog_Go/internal/inventory"
	"github.com/osse101/GameCatalog_Go/internal/item"
	"github.com/osse101/GameCatalog_Go/internal/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)
	handler.InitValidator()

	connString := cfg.GetDBConnString()

	if err := database.Migrate(connString); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	pool, err := database.NewPool(connString)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Repositories
	categoryRepo := postgres.NewCategoryRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	rarityRepo := postgres.NewRarityRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)

	// Services
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenExpiry)
	authService := auth.NewService(userRepo, tokens)
	categoryService := category.NewService(categoryRepo)
	itemService := item.NewService(itemRepo)
	inventoryService := inventory.NewService(inventoryRepo, itemRepo)
	catalogService := catalog.NewService(itemService, inventoryService, access.NewPolicy())

	srv := server.NewServer(server.Options{
		Port:            cfg.Port,
		Version:         cfg.Version,
		Environment:     cfg.Environment,
		TrustedProxies:  cfg.TrustedProxies,
		DBPool:          pool,
		Tokens:          tokens,
		AuthService:     authService,
		CategoryService: categoryService,
		ItemService:     itemService,
		CatalogService:  catalogService,
		RarityRepo:      rarityRepo,
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	case sig := <-stop:
		slog.Info("Shutting down", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Stop(ctx); err != nil {
			slog.Error("Graceful shutdown failed", "error", err)
			os.Exit(1)
		}
	}
}
