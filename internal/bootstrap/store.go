package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/osse101/SpinSurvive_Go/internal/config"
	"github.com/osse101/SpinSurvive_Go/internal/database"
	"github.com/osse101/SpinSurvive_Go/internal/database/postgres"
	"github.com/osse101/SpinSurvive_Go/internal/store"
)

// InitializeStore opens the configured state store backend and, when a
// cache size is configured, decorates it with the LRU cache.
// The caller owns the returned store and must Close it.
func InitializeStore(ctx context.Context, cfg *config.Config) (store.Store, error) {
	base, err := openBackend(ctx, cfg)
	if err != nil {
		return nil, err
	}

	slog.Info(LogMsgStoreInitialized, "backend", cfg.StoreBackend)

	if cfg.CacheSize <= 0 || cfg.StoreBackend == store.BackendMemory {
		return base, nil
	}

	slog.Info(LogMsgStoreCacheEnabled, "size", cfg.CacheSize, "ttl", cfg.CacheTTL)
	return store.NewCachedStore(base, cfg.CacheSize, cfg.CacheTTL), nil
}

func openBackend(ctx context.Context, cfg *config.Config) (store.Store, error) {
	switch cfg.StoreBackend {
	case store.BackendMemory:
		return store.NewMemoryStore(), nil

	case store.BackendFile:
		if err := os.MkdirAll(filepath.Dir(cfg.StoreFile), DirPermission); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateDataDir, err)
		}
		return store.NewFileStore(cfg.StoreFile), nil

	case store.BackendRedis:
		rs := store.NewRedisStore(store.RedisConfig{
			Addr:      cfg.RedisAddr,
			Password:  cfg.RedisPassword,
			DB:        cfg.RedisDB,
			KeyPrefix: cfg.RedisKeyPrefix,
		})
		pingCtx, cancel := context.WithTimeout(ctx, StoreConnectTimeout)
		defer cancel()
		if err := rs.Ping(pingCtx); err != nil {
			_ = rs.Close()
			return nil, fmt.Errorf(ErrMsgFailedConnectStore+": %w", cfg.StoreBackend, err)
		}
		return rs, nil

	case store.BackendPostgres:
		return openPostgres(ctx, cfg)
	}

	return nil, fmt.Errorf(ErrMsgUnknownStoreBackend, cfg.StoreBackend)
}

func openPostgres(ctx context.Context, cfg *config.Config) (store.Store, error) {
	connectCtx, cancel := context.WithTimeout(ctx, StoreConnectTimeout)
	defer cancel()

	pool, err := database.NewPool(connectCtx, cfg.GetDBConnString(), cfg.DBMaxConns, DBMaxConnIdleTime, DBMaxConnLifetime)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgFailedConnectStore+": %w", cfg.StoreBackend, err)
	}

	if _, err := database.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
	}

	kv, err := postgres.NewKVStore(pool)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateKVStore, err)
	}
	return kv.OwnPool(), nil
}
