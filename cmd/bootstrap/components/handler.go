package components

import (
	"venue-booking-api/internal/handler"
	"venue-booking-api/internal/handler/api"
	"venue-booking-api/internal/handler/middleware"
	"venue-booking-api/internal/pkg/jwt"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewHoldHandler,
		api.NewBookingHandler,
		api.NewAdminHandler,
		func(svc *jwt.Service) middleware.TokenValidator { return svc },
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
