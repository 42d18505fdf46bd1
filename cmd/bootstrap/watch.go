package bootstrap

import (
	"context"

	"np-reserve/internal/infra/watch"

	"go.uber.org/fx"
)

var WatchModule = fx.Module("watch",
	fx.Provide(
		NewHub,
	),
)

func NewHub(lc fx.Lifecycle) *watch.Hub {
	hub := watch.NewHub()
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			hub.Close()
			return nil
		},
	})
	return hub
}
