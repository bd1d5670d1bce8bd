package store

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/JonMunkholm/csvview/internal/config"
)

// Open builds the Store selected by cfg. The returned close function
// releases any resources held by the backend and is never nil.
func Open(ctx context.Context, cfg config.StorageConfig) (Store, func(), error) {
	noop := func() {}

	switch strings.ToLower(cfg.Backend) {
	case config.BackendMemory, "":
		slog.Info("using in-memory storage; data is lost on restart")
		return NewMemory(), noop, nil

	case config.BackendFile:
		s, err := NewFile(cfg.Dir)
		if err != nil {
			return nil, noop, err
		}
		slog.Info("using file storage", "dir", s.Dir())
		return s, noop, nil

	case config.BackendPostgres:
		pool, err := OpenPool(ctx, cfg.DatabaseURL, PoolOptions{
			MaxConns:        cfg.MaxConns,
			MinConns:        cfg.MinConns,
			MaxConnLifetime: cfg.MaxConnLifetime,
			MaxConnIdleTime: cfg.MaxConnIdleTime,
		})
		if err != nil {
			return nil, noop, err
		}
		s := NewPostgres(pool)
		if err := s.Migrate(ctx); err != nil {
			pool.Close()
			return nil, noop, err
		}
		slog.Info("using postgres storage", "database", pool.Config().ConnConfig.Database)
		return s, pool.Close, nil

	default:
		return nil, noop, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
