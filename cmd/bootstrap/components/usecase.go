package components

import (
	"barber-booking/internal/pkg/clock"
	"barber-booking/internal/pkg/jwt"
	"barber-booking/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		func(s *jwt.Service) usecase.TokenValidator { return s },
		usecase.NewAvailabilityQueries,
		usecase.NewBookingCommands,
		usecase.NewCatalogCommands,
		usecase.NewAuthCommands,
		usecase.NewReminderCommands,
	),
)
