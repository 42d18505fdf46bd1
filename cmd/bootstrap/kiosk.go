package bootstrap

import (
	"context"

	"np-reserve/internal/infra/watch"
	"np-reserve/internal/kiosk"
	"np-reserve/internal/pkg/config"

	"go.uber.org/fx"
)

var KioskModule = fx.Module("kiosk",
	fx.Provide(
		NewKioskManager,
	),
	fx.Invoke(runKioskManager),
)

func NewKioskManager(cfg config.Config, produits kiosk.ProduitSource, hub *watch.Hub) *kiosk.Manager {
	return kiosk.NewManager(kiosk.ManagerConfig{
		SlideInterval: cfg.Kiosk.SlideInterval,
		QRSize:        cfg.Kiosk.QRSize,
		PublicOrigin:  cfg.Server.PublicOrigin,
	}, produits, hub)
}

func runKioskManager(lc fx.Lifecycle, manager *kiosk.Manager) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				manager.Run(ctx)
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			<-done
			return nil
		},
	})
}
