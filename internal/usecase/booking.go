package usecase

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"barber-booking/internal/domain/appointment"
	"barber-booking/internal/domain/availability"
	"barber-booking/internal/infra"
	"barber-booking/internal/infra/db"
	"barber-booking/internal/pkg/clock"
	"barber-booking/internal/pkg/config"
	"barber-booking/internal/pkg/errs"
	"barber-booking/internal/pkg/phone"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CreateAppointmentInput struct {
	ServiceID        uuid.UUID
	StartsAt         time.Time
	CustomerName     *string
	CustomerPhone    string
	ConsentGranted   bool
	PushSubscription *PushSubscriptionInput
}

type PushSubscriptionInput struct {
	Endpoint string
	P256DH   string
	Auth     string
}

type BookingCommands interface {
	CreateAppointment(ctx context.Context, input CreateAppointmentInput) (*AppointmentView, error)
	CancelAppointment(ctx context.Context, publicToken string, reason *string) error
	GetAppointment(ctx context.Context, publicToken string) (*AppointmentView, error)
}

type bookingCommandsImpl struct {
	services      ServiceRepository
	workHours     WorkHourRepository
	vacations     VacationRepository
	appointments  AppointmentRepository
	pushSubs      PushSubscriptionRepository
	notifications NotificationRepository
	pool          *pgxpool.Pool
	cfg           config.BookingConfig
	clock         clock.Clock
}

func NewBookingCommands(
	services ServiceRepository,
	workHours WorkHourRepository,
	vacations VacationRepository,
	appointments AppointmentRepository,
	pushSubs PushSubscriptionRepository,
	notifications NotificationRepository,
	pool *pgxpool.Pool,
	cfg config.BookingConfig,
	clk clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		services:      services,
		workHours:     workHours,
		vacations:     vacations,
		appointments:  appointments,
		pushSubs:      pushSubs,
		notifications: notifications,
		pool:          pool,
		cfg:           cfg,
		clock:         clk,
	}
}

// CreateAppointment re-validates availability at commit time. The client's
// earlier preview is never trusted: the context is re-fetched and the
// generator re-run here, and the storage overlap constraint backstops the
// remaining race window.
func (b *bookingCommandsImpl) CreateAppointment(ctx context.Context, input CreateAppointmentInput) (*AppointmentView, error) {
	normalizedPhone, err := phone.Normalize(input.CustomerPhone)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidPhone)
	}

	service, err := b.services.FindActiveByID(ctx, input.ServiceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if input.StartsAt.IsZero() {
		return nil, ErrInvalidStartTime
	}

	if err := b.validateSlot(ctx, service, input.StartsAt); err != nil {
		return nil, err
	}

	appt, err := appointment.New(
		service.ID,
		input.StartsAt,
		int(service.DurationMin),
		input.CustomerName,
		normalizedPhone,
		input.ConsentGranted,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	apptID, err := db.RunInTx(ctx, b.pool, func(tx pgx.Tx) (uuid.UUID, error) {
		id, err := b.appointments.Create(ctx, tx, appt)
		if err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return uuid.Nil, errs.Mark(&SlotConflictError{Reason: string(availability.ReasonAppointment)}, ErrSlotUnavailable)
			}
			return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if input.PushSubscription != nil {
			sub := PushSubscription{
				PublicToken:   appt.PublicToken(),
				CustomerPhone: normalizedPhone,
				Endpoint:      input.PushSubscription.Endpoint,
				P256DH:        input.PushSubscription.P256DH,
				Auth:          input.PushSubscription.Auth,
			}
			if err := b.pushSubs.Create(ctx, tx, sub); err != nil {
				return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}

		payload, err := json.Marshal(map[string]any{
			"appointment_id": id,
			"public_token":   appt.PublicToken(),
			"type":           "appointment_created",
		})
		if err != nil {
			return uuid.Nil, err
		}
		if err := b.notifications.CreateJob(ctx, tx, "push", "appointment_created", payload, b.clock.Now()); err != nil {
			return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		return id, nil
	})
	if err != nil {
		return nil, err
	}

	view, err := b.appointments.ViewByID(ctx, apptID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

// validateSlot recomputes availability for the appointment's local
// calendar day and requires an exact-start available slot.
func (b *bookingCommandsImpl) validateSlot(ctx context.Context, service *ServiceView, startsAt time.Time) error {
	loc, err := time.LoadLocation(b.cfg.Timezone)
	if err != nil {
		return errs.Mark(err, ErrInvalidTimezone)
	}

	dayStart := startOfDay(startsAt, loc)
	dayEnd := endOfDay(startsAt, loc)

	data, err := loadAvailabilityContext(ctx, b.workHours, b.vacations, b.appointments, dayStart, dayEnd, loc, nil)
	if err != nil {
		return err
	}

	slots := availability.Generate(
		availability.Service{ID: service.ID, DurationMin: int(service.DurationMin), Active: service.Active},
		data.windows,
		data.appointments,
		data.blackouts,
		availability.DateRange{Start: dayStart, End: dayEnd},
		rulesFor(b.cfg, loc),
		b.clock.Now(),
	)

	slot := availability.FindSlot(slots, startsAt)
	if slot == nil {
		return errs.Mark(&SlotConflictError{Reason: "outside-working-hours"}, ErrSlotUnavailable)
	}
	if slot.Status != availability.SlotAvailable {
		return errs.Mark(&SlotConflictError{Reason: string(slot.Reason)}, ErrSlotUnavailable)
	}
	return nil
}

func (b *bookingCommandsImpl) CancelAppointment(ctx context.Context, publicToken string, reason *string) error {
	appt, err := b.appointments.FindByPublicToken(ctx, publicToken)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrAppointmentNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := appt.Cancel(b.clock.Now()); err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}

	_, err = db.RunInTx(ctx, b.pool, func(tx pgx.Tx) (struct{}, error) {
		if err := b.appointments.Update(ctx, tx, appt); err != nil {
			return struct{}{}, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		// Stop any future pushes for the canceled appointment.
		if err := b.pushSubs.DeleteByPublicToken(ctx, tx, publicToken); err != nil {
			return struct{}{}, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return struct{}{}, nil
	})
	if err != nil {
		return err
	}

	cancelReason := "no-reason"
	if reason != nil {
		cancelReason = *reason
	}
	slog.Info("appointment canceled", "public_token", publicToken, "reason", cancelReason)
	return nil
}

func (b *bookingCommandsImpl) GetAppointment(ctx context.Context, publicToken string) (*AppointmentView, error) {
	view, err := b.appointments.ViewByPublicToken(ctx, publicToken)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}
