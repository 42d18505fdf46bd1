package components

import (
	"np-reserve/internal/handler"
	"np-reserve/internal/handler/api"
	"np-reserve/internal/handler/middleware"
	"np-reserve/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewBoutiqueHandler,
		api.NewProduitHandler,
		api.NewReservationHandler,
		api.NewKioskHandler,
		api.NewGerantHandler,
		NewUploadHandler,
		NewHandlers,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

func NewUploadHandler(cfg config.Config) *api.UploadHandler {
	return api.NewUploadHandler(cfg.Upload)
}

func NewHandlers(
	auth *api.AuthHandler,
	boutique *api.BoutiqueHandler,
	produit *api.ProduitHandler,
	reservation *api.ReservationHandler,
	kiosk *api.KioskHandler,
	gerant *api.GerantHandler,
	upload *api.UploadHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:        auth,
		Boutique:    boutique,
		Produit:     produit,
		Reservation: reservation,
		Kiosk:       kiosk,
		Gerant:      gerant,
		Upload:      upload,
	}
}
