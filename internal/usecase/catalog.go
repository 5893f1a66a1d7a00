package usecase

import (
	"context"
	"time"

	"barber-booking/internal/domain/appointment"
	"barber-booking/internal/infra"
	"barber-booking/internal/infra/db"
	"barber-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CatalogCommands is the admin-facing management surface: services,
// weekly work hours, vacation blackouts and appointment oversight.
type CatalogCommands interface {
	ListServices(ctx context.Context, activeOnly bool) ([]*ServiceView, error)
	CreateService(ctx context.Context, params CreateServiceParams) (*ServiceView, error)
	UpdateService(ctx context.Context, id uuid.UUID, params CreateServiceParams) (*ServiceView, error)
	DeleteService(ctx context.Context, id uuid.UUID) error

	ListWorkHours(ctx context.Context) ([]*WorkHourView, error)
	CreateWorkHour(ctx context.Context, params CreateWorkHourParams) (*WorkHourView, error)
	UpdateWorkHour(ctx context.Context, id uuid.UUID, params CreateWorkHourParams) (*WorkHourView, error)
	DeleteWorkHour(ctx context.Context, id uuid.UUID) error

	ListVacations(ctx context.Context) ([]*VacationView, error)
	CreateVacation(ctx context.Context, params CreateVacationParams) (*VacationView, error)
	UpdateVacation(ctx context.Context, id uuid.UUID, params CreateVacationParams) (*VacationView, error)
	DeleteVacation(ctx context.Context, id uuid.UUID) error

	ListAppointments(ctx context.Context, filter AppointmentFilter) ([]*AppointmentView, error)
	UpdateAppointmentStatus(ctx context.Context, id uuid.UUID, status string) (*AppointmentView, error)
}

type catalogCommandsImpl struct {
	services     ServiceRepository
	workHours    WorkHourRepository
	vacations    VacationRepository
	appointments AppointmentRepository
	pool         *pgxpool.Pool
}

func NewCatalogCommands(
	services ServiceRepository,
	workHours WorkHourRepository,
	vacations VacationRepository,
	appointments AppointmentRepository,
	pool *pgxpool.Pool,
) CatalogCommands {
	return &catalogCommandsImpl{
		services:     services,
		workHours:    workHours,
		vacations:    vacations,
		appointments: appointments,
		pool:         pool,
	}
}

func (c *catalogCommandsImpl) ListServices(ctx context.Context, activeOnly bool) ([]*ServiceView, error) {
	views, err := c.services.List(ctx, activeOnly)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return views, nil
}

func (c *catalogCommandsImpl) CreateService(ctx context.Context, params CreateServiceParams) (*ServiceView, error) {
	if err := validateServiceParams(params); err != nil {
		return nil, err
	}
	view, err := c.services.Create(ctx, params)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (c *catalogCommandsImpl) UpdateService(ctx context.Context, id uuid.UUID, params CreateServiceParams) (*ServiceView, error) {
	if err := validateServiceParams(params); err != nil {
		return nil, err
	}
	view, err := c.services.Update(ctx, id, params)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (c *catalogCommandsImpl) DeleteService(ctx context.Context, id uuid.UUID) error {
	if err := c.services.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrServiceNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *catalogCommandsImpl) ListWorkHours(ctx context.Context) ([]*WorkHourView, error) {
	views, err := c.workHours.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return views, nil
}

func (c *catalogCommandsImpl) CreateWorkHour(ctx context.Context, params CreateWorkHourParams) (*WorkHourView, error) {
	if err := validateWorkHourParams(params); err != nil {
		return nil, err
	}
	view, err := c.workHours.Create(ctx, params)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (c *catalogCommandsImpl) UpdateWorkHour(ctx context.Context, id uuid.UUID, params CreateWorkHourParams) (*WorkHourView, error) {
	if err := validateWorkHourParams(params); err != nil {
		return nil, err
	}
	view, err := c.workHours.Update(ctx, id, params)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrWorkHourNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (c *catalogCommandsImpl) DeleteWorkHour(ctx context.Context, id uuid.UUID) error {
	if err := c.workHours.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrWorkHourNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *catalogCommandsImpl) ListVacations(ctx context.Context) ([]*VacationView, error) {
	views, err := c.vacations.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return views, nil
}

func (c *catalogCommandsImpl) CreateVacation(ctx context.Context, params CreateVacationParams) (*VacationView, error) {
	if err := validateVacationParams(params); err != nil {
		return nil, err
	}
	view, err := c.vacations.Create(ctx, params)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (c *catalogCommandsImpl) UpdateVacation(ctx context.Context, id uuid.UUID, params CreateVacationParams) (*VacationView, error) {
	if err := validateVacationParams(params); err != nil {
		return nil, err
	}
	view, err := c.vacations.Update(ctx, id, params)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrVacationNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (c *catalogCommandsImpl) DeleteVacation(ctx context.Context, id uuid.UUID) error {
	if err := c.vacations.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrVacationNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *catalogCommandsImpl) ListAppointments(ctx context.Context, filter AppointmentFilter) ([]*AppointmentView, error) {
	views, err := c.appointments.List(ctx, filter)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return views, nil
}

func (c *catalogCommandsImpl) UpdateAppointmentStatus(ctx context.Context, id uuid.UUID, status string) (*AppointmentView, error) {
	next, err := appointment.ParseStatus(status)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	appt, err := c.appointments.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := appt.TransitionTo(next); err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	_, err = db.RunInTx(ctx, c.pool, func(tx pgx.Tx) (struct{}, error) {
		return struct{}{}, c.appointments.Update(ctx, tx, appt)
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return c.appointments.ViewByID(ctx, id)
}

func validateServiceParams(params CreateServiceParams) error {
	if params.Name == "" || params.DurationMin <= 0 {
		return ErrDomainValidation
	}
	if params.PriceCents != nil && *params.PriceCents < 0 {
		return ErrDomainValidation
	}
	return nil
}

func validateWorkHourParams(params CreateWorkHourParams) error {
	if params.Weekday < 0 || params.Weekday > 6 {
		return ErrDomainValidation
	}
	if params.StartTime >= params.EndTime {
		// Wall-clock strings compare lexicographically when zero-padded.
		return ErrDomainValidation
	}
	return nil
}

func validateVacationParams(params CreateVacationParams) error {
	start, err := time.Parse(time.DateOnly, params.StartsOn)
	if err != nil {
		return ErrInvalidDateRange
	}
	end, err := time.Parse(time.DateOnly, params.EndsOn)
	if err != nil {
		return ErrInvalidDateRange
	}
	if start.After(end) {
		return ErrInvalidDateRange
	}
	return nil
}
