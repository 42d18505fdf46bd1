package bootstrap

import (
	"context"

	"np-reserve/internal/infra/db"
	"np-reserve/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	sqlDB, err := db.OpenSQL(cfg.DB)
	if err != nil {
		return nil, err
	}
	if err := db.RunMigrations(sqlDB); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	if err := sqlDB.Close(); err != nil {
		return nil, err
	}

	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}
