package usecase

import (
	"context"
	"encoding/json"
	"time"

	"barber-booking/internal/infra/db"
	"barber-booking/internal/pkg/clock"
	"barber-booking/internal/pkg/config"
	"barber-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReminderCommands interface {
	// ProcessDueReminders enqueues a notification job for every appointment
	// starting within the reminder offset that has not been reminded yet,
	// and marks them sent in the same transaction. Returns the number of
	// appointments processed.
	ProcessDueReminders(ctx context.Context) (int, error)
}

type reminderCommandsImpl struct {
	appointments  AppointmentRepository
	notifications NotificationRepository
	pool          *pgxpool.Pool
	cfg           config.WorkerConfig
	clock         clock.Clock
}

func NewReminderCommands(
	appointments AppointmentRepository,
	notifications NotificationRepository,
	pool *pgxpool.Pool,
	cfg config.WorkerConfig,
	clk clock.Clock,
) ReminderCommands {
	return &reminderCommandsImpl{
		appointments:  appointments,
		notifications: notifications,
		pool:          pool,
		cfg:           cfg,
		clock:         clk,
	}
}

type reminderPayload struct {
	AppointmentID uuid.UUID `json:"appointment_id"`
	ServiceName   string    `json:"service_name"`
	CustomerPhone string    `json:"customer_phone"`
	PublicToken   string    `json:"public_token"`
	StartsAt      time.Time `json:"starts_at"`
}

func (r *reminderCommandsImpl) ProcessDueReminders(ctx context.Context) (int, error) {
	now := r.clock.Now()
	candidates, err := r.appointments.FindDueReminders(ctx, now, now.Add(r.cfg.ReminderOffset))
	if err != nil {
		return 0, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if len(candidates) == 0 {
		return 0, nil
	}

	count, err := db.RunInTx(ctx, r.pool, func(tx pgx.Tx) (int, error) {
		ids := make([]uuid.UUID, 0, len(candidates))
		for _, c := range candidates {
			payload, err := json.Marshal(reminderPayload{
				AppointmentID: c.AppointmentID,
				ServiceName:   c.ServiceName,
				CustomerPhone: c.CustomerPhone,
				PublicToken:   c.PublicToken,
				StartsAt:      c.StartsAt,
			})
			if err != nil {
				return 0, errs.Wrap(err, "failed to marshal reminder payload")
			}
			if err := r.notifications.CreateJob(ctx, tx, "push", "appointment_reminder", payload, now); err != nil {
				return 0, err
			}
			ids = append(ids, c.AppointmentID)
		}
		if err := r.appointments.MarkRemindersSent(ctx, tx, ids); err != nil {
			return 0, err
		}
		return len(ids), nil
	})
	if err != nil {
		return 0, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return count, nil
}
