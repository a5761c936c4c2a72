package storage

import (
	"context"
	"fmt"

	"petcare-marketplace/internal/adapters/storage/file"
	mem "petcare-marketplace/internal/adapters/storage/memory"
	pg "petcare-marketplace/internal/adapters/storage/postgres"
	rds "petcare-marketplace/internal/adapters/storage/redis"
	"petcare-marketplace/internal/adapters/storage/sqlite"
	"petcare-marketplace/internal/config"
	"petcare-marketplace/internal/ports/kv"
)

// Open elige el backend según config. El close devuelto nunca es nil.
func Open(ctx context.Context, cfg config.StorageConfig) (kv.Store, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Driver {
	case config.StorageMemory, "":
		return mem.NewKVStore(), noop, nil

	case config.StorageFile:
		s, err := file.NewStore(cfg.FileDir)
		if err != nil {
			return nil, noop, err
		}
		return s, noop, nil

	case config.StoragePostgres:
		db, err := pg.Open(ctx, cfg.DSN)
		if err != nil {
			return nil, noop, err
		}
		return pg.NewKVStore(db), db.Close, nil

	case config.StorageRedis:
		s, err := rds.Open(ctx, cfg.RedisURL, cfg.RedisPrefix)
		if err != nil {
			return nil, noop, err
		}
		return s, s.Close, nil

	case config.StorageSQLite:
		s, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, noop, err
		}
		return s, s.Close, nil
	}

	return nil, noop, fmt.Errorf("unknown storage driver %q", cfg.Driver)
}
