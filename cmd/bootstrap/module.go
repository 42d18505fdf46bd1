package bootstrap

import (
	"np-reserve/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	WatchModule,
	components.RepositoryModule,
	components.UseCaseModule,
	KioskModule,
	components.HandlerModule,
)
