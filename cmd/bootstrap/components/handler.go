package components

import (
	"barber-booking/internal/handler"
	"barber-booking/internal/handler/api"
	"barber-booking/internal/handler/middleware"
	"barber-booking/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAvailabilityHandler,
		api.NewAppointmentHandler,
		api.NewAdminHandler,
		api.NewAuthHandler,
		middleware.NewAuthMiddleware,
		func(rdb *redis.Client, cfg config.Config) *middleware.RateLimiter {
			return middleware.NewRateLimiter(rdb, cfg.Redis)
		},
	),
	fx.Invoke(handler.NewRouter),
)
