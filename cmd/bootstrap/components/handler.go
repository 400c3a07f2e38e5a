package components

import (
	"beach-reserve/internal/handler"
	"beach-reserve/internal/handler/api"
	"beach-reserve/internal/handler/middleware"
	"beach-reserve/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		func(cfg config.Config) config.CookieConfig { return cfg.Cookie },
		api.NewAuthHandler,
		api.NewCatalogHandler,
		api.NewReservationHandler,
		api.NewVendorHandler,
		api.NewProfileHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	catalog *api.CatalogHandler,
	reservation *api.ReservationHandler,
	vendor *api.VendorHandler,
	profile *api.ProfileHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:        auth,
		Catalog:     catalog,
		Reservation: reservation,
		Vendor:      vendor,
		Profile:     profile,
	}
}
