package components

import (
	repo_impl "np-reserve/internal/infra/repository"
	"np-reserve/internal/kiosk"
	"np-reserve/internal/usecase/commands"
	"np-reserve/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		repo_impl.NewStores,
		fx.Annotate(
			repo_impl.NewTxManager,
			fx.As(new(commands.TxRunner)),
		),
		fx.Annotate(
			repo_impl.NewBoutiqueRepository,
			fx.As(new(queries.BoutiqueReader)),
		),
		fx.Annotate(
			repo_impl.NewProduitRepository,
			fx.As(new(queries.ProduitReader)),
			fx.As(new(kiosk.ProduitSource)),
		),
		fx.Annotate(
			repo_impl.NewReservationRepository,
			fx.As(new(queries.ReservationReader)),
		),
		fx.Annotate(
			repo_impl.NewUserRepository,
			fx.As(new(queries.UserReader)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) repo_impl.DBTX {
	return pool
}
