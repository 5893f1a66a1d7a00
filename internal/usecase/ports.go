package usecase

import (
	"context"
	"time"

	"barber-booking/internal/domain/appointment"
	"barber-booking/internal/domain/availability"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Repository ports implemented by internal/infra/repository. Write methods
// that participate in the booking transaction take an explicit pgx.Tx.

type ServiceRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ServiceView, error)
	FindActiveByID(ctx context.Context, id uuid.UUID) (*ServiceView, error)
	List(ctx context.Context, activeOnly bool) ([]*ServiceView, error)
	Create(ctx context.Context, params CreateServiceParams) (*ServiceView, error)
	Update(ctx context.Context, id uuid.UUID, params CreateServiceParams) (*ServiceView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type WorkHourRepository interface {
	ListActiveWindows(ctx context.Context) ([]availability.WorkWindow, error)
	List(ctx context.Context) ([]*WorkHourView, error)
	Create(ctx context.Context, params CreateWorkHourParams) (*WorkHourView, error)
	Update(ctx context.Context, id uuid.UUID, params CreateWorkHourParams) (*WorkHourView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type VacationRepository interface {
	ListOverlapping(ctx context.Context, startsOn, endsOn string) ([]availability.BlackoutRange, error)
	List(ctx context.Context) ([]*VacationView, error)
	Create(ctx context.Context, params CreateVacationParams) (*VacationView, error)
	Update(ctx context.Context, id uuid.UUID, params CreateVacationParams) (*VacationView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type AppointmentRepository interface {
	Create(ctx context.Context, tx pgx.Tx, appt *appointment.Appointment) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*appointment.Appointment, error)
	FindByPublicToken(ctx context.Context, token string) (*appointment.Appointment, error)
	ViewByID(ctx context.Context, id uuid.UUID) (*AppointmentView, error)
	ViewByPublicToken(ctx context.Context, token string) (*AppointmentView, error)
	List(ctx context.Context, filter AppointmentFilter) ([]*AppointmentView, error)
	// FindBlocking returns blocking-status appointments whose start falls in
	// [from, to], optionally restricted to one service, in the slim shape
	// the slot generator consumes.
	FindBlocking(ctx context.Context, statuses []availability.AppointmentStatus, from, to time.Time, serviceID *uuid.UUID) ([]availability.Appointment, error)
	Update(ctx context.Context, tx pgx.Tx, appt *appointment.Appointment) error
	FindDueReminders(ctx context.Context, from, to time.Time) ([]*ReminderCandidate, error)
	MarkRemindersSent(ctx context.Context, tx pgx.Tx, ids []uuid.UUID) error
}

type PushSubscriptionRepository interface {
	Create(ctx context.Context, tx pgx.Tx, sub PushSubscription) error
	DeleteByPublicToken(ctx context.Context, tx pgx.Tx, token string) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx pgx.Tx, kind, topic string, payload []byte, runAt time.Time) error
}

type AdminRepository interface {
	FindByEmail(ctx context.Context, email string) (*AdminRecord, error)
	FindByID(ctx context.Context, id uuid.UUID) (*AdminRecord, error)
}

type CreateServiceParams struct {
	Name        string
	DurationMin int32
	PriceCents  *int32
	Active      bool
}

type CreateWorkHourParams struct {
	Weekday   int32
	StartTime string
	EndTime   string
	Active    bool
}

type CreateVacationParams struct {
	StartsOn string
	EndsOn   string
	Reason   *string
}

type AppointmentFilter struct {
	Status *availability.AppointmentStatus
	From   *time.Time
	To     *time.Time
}

type PushSubscription struct {
	PublicToken   string
	CustomerPhone string
	Endpoint      string
	P256DH        string
	Auth          string
}

type AdminRecord struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
}
