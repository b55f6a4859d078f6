package components

import (
	"cinepass/internal/handler"
	"cinepass/internal/handler/api"
	"cinepass/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewShowtimeHandler,
		api.NewHoldHandler,
		api.NewBookingHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
