package components

import (
	"barber-booking/internal/infra/repository"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		repository.NewServiceRepository,
		repository.NewWorkHourRepository,
		repository.NewVacationRepository,
		repository.NewAppointmentRepository,
		repository.NewPushSubscriptionRepository,
		repository.NewNotificationRepository,
		repository.NewAdminRepository,
	),
)
