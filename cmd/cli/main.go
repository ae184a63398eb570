package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/mvkeep/mediavault/internal/cli"
	"github.com/mvkeep/mediavault/internal/config"
	"github.com/mvkeep/mediavault/internal/logging"
	"github.com/mvkeep/mediavault/internal/session"
	"github.com/mvkeep/mediavault/internal/storage"
	"github.com/mvkeep/mediavault/internal/users"
	"github.com/mvkeep/mediavault/internal/vault"
)

func main() {
	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	store, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatalf("error opening store: %v", err)
	}
	defer store.Close()

	dir := users.NewDirectory(store, logger)
	sessions, err := session.NewManager(ctx, store, dir, logger)
	if err != nil {
		log.Fatalf("error restoring session: %v", err)
	}
	v := vault.New(store, sessions, logger)

	app := cli.NewApp(cfg, sessions, v, logger)
	app.Run(ctx)
}

func openStore(ctx context.Context, cfg *config.Config) (storage.Store, error) {
	switch cfg.StoreBackend {
	case config.BackendFile:
		return storage.NewFileStore(cfg.StorePath)
	case config.BackendSQLite:
		return storage.NewSQLiteStore(ctx, cfg.StorePath)
	case config.BackendRedis:
		return storage.NewRedisStore(cfg.RedisAddr, cfg.RedisPrefix)
	case config.BackendMemory:
		return storage.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}
