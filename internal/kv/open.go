package kv

import (
	"context"
	"fmt"

	"github.com/iliyamo/renttrack/internal/config"
	"github.com/iliyamo/renttrack/internal/database"
)

// Open builds the backend named by cfg.KVBackend.  The returned close
// function releases any connection the backend holds.
func Open(ctx context.Context, cfg config.Config) (Store, func() error, error) {
	noop := func() error { return nil }
	switch cfg.KVBackend {
	case "", config.KVMemory:
		return NewMemory(), noop, nil
	case config.KVFile:
		return NewFile(cfg.KVFile), noop, nil
	case config.KVRedis:
		rdb, err := config.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		return NewRedis(rdb, cfg.Redis.Prefix), rdb.Close, nil
	case config.KVMySQL:
		db, err := database.Open(ctx, cfg.DB)
		if err != nil {
			return nil, nil, fmt.Errorf("kv: mysql: %w", err)
		}
		s := NewMySQL(db, cfg.DB.Table)
		if err := s.EnsureSchema(ctx); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("kv: mysql schema: %w", err)
		}
		return s, db.Close, nil
	}
	return nil, nil, fmt.Errorf("kv: unknown backend %q", cfg.KVBackend)
}
