package components

import (
	"np-reserve/internal/pkg/clock"
	"np-reserve/internal/usecase/commands"
	"np-reserve/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewBoutiqueCommands,
		commands.NewProduitCommands,
		commands.NewReservationCommands,
		commands.NewShipmentCommands,
		commands.NewGerantCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBoutiqueQueries,
		queries.NewProduitQueries,
		queries.NewReservationQueries,
		queries.NewUserQueries,
	),
)
