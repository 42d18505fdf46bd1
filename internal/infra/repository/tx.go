package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"np-reserve/internal/infra"
	"np-reserve/internal/usecase/commands"
)

// NewStores binds every store to the shared pool.
func NewStores(pool *pgxpool.Pool) commands.Stores {
	return storesOn(pool)
}

func storesOn(db DBTX) commands.Stores {
	return commands.Stores{
		Boutiques:     NewBoutiqueRepository(db),
		Produits:      NewProduitRepository(db),
		Reservations:  NewReservationRepository(db),
		Users:         NewUserRepository(db),
		Notifications: NewNotificationJobRepository(db),
	}
}

type TxManager struct {
	pool *pgxpool.Pool
}

func NewTxManager(pool *pgxpool.Pool) *TxManager {
	return &TxManager{pool: pool}
}

func (m *TxManager) WithinTx(ctx context.Context, fn func(ctx context.Context, s commands.Stores) error) error {
	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to begin transaction", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	if err := fn(ctx, storesOn(tx)); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to commit transaction", err)
	}
	return nil
}
