package repository

import (
	"context"
	"time"

	"barber-booking/internal/domain/appointment"
	"barber-booking/internal/domain/availability"
	"barber-booking/internal/usecase"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type appointmentRepository struct {
	pool *pgxpool.Pool
}

func NewAppointmentRepository(pool *pgxpool.Pool) usecase.AppointmentRepository {
	return &appointmentRepository{pool: pool}
}

const appointmentColumns = `id, service_id, starts_at, ends_at, customer_name, customer_phone, status, public_token, reminder_sent, created_at`

func scanAppointmentEntity(row pgx.Row) (*appointment.Appointment, error) {
	var (
		id, serviceID    uuid.UUID
		startsAt, endsAt time.Time
		customerName     *string
		customerPhone    string
		status           string
		publicToken      string
		reminderSent     bool
		createdAt        time.Time
	)
	if err := row.Scan(&id, &serviceID, &startsAt, &endsAt, &customerName, &customerPhone,
		&status, &publicToken, &reminderSent, &createdAt); err != nil {
		return nil, err
	}
	parsed, err := appointment.ParseStatus(status)
	if err != nil {
		return nil, err
	}
	return appointment.Reconstruct(id, serviceID, startsAt, endsAt, customerName,
		customerPhone, parsed, publicToken, reminderSent, createdAt), nil
}

const appointmentViewQuery = `
	SELECT a.id, a.service_id, s.name, a.starts_at, a.ends_at,
	       a.customer_name, a.customer_phone, a.status, a.public_token,
	       a.reminder_sent, a.created_at
	FROM appointments a
	JOIN services s ON s.id = a.service_id`

func scanAppointmentView(row pgx.Row) (*usecase.AppointmentView, error) {
	var v usecase.AppointmentView
	if err := row.Scan(&v.ID, &v.ServiceID, &v.ServiceName, &v.StartsAt, &v.EndsAt,
		&v.CustomerName, &v.CustomerPhone, &v.Status, &v.PublicToken,
		&v.ReminderSent, &v.CreatedAt); err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *appointmentRepository) Create(ctx context.Context, tx pgx.Tx, appt *appointment.Appointment) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, `
		INSERT INTO appointments (id, service_id, starts_at, ends_at, customer_name, customer_phone, status, public_token, reminder_sent)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`,
		appt.ID(), appt.ServiceID(), appt.StartsAt(), appt.EndsAt(),
		appt.CustomerName(), appt.CustomerPhone(), string(appt.Status()),
		appt.PublicToken(), appt.ReminderSent(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapQueryErr("failed to create appointment", err)
	}
	return id, nil
}

func (r *appointmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*appointment.Appointment, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+appointmentColumns+` FROM appointments WHERE id = $1`, id)
	appt, err := scanAppointmentEntity(row)
	if err != nil {
		return nil, wrapQueryErr("failed to find appointment", err)
	}
	return appt, nil
}

func (r *appointmentRepository) FindByPublicToken(ctx context.Context, token string) (*appointment.Appointment, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+appointmentColumns+` FROM appointments WHERE public_token = $1`, token)
	appt, err := scanAppointmentEntity(row)
	if err != nil {
		return nil, wrapQueryErr("failed to find appointment by token", err)
	}
	return appt, nil
}

func (r *appointmentRepository) ViewByID(ctx context.Context, id uuid.UUID) (*usecase.AppointmentView, error) {
	row := r.pool.QueryRow(ctx, appointmentViewQuery+` WHERE a.id = $1`, id)
	v, err := scanAppointmentView(row)
	if err != nil {
		return nil, wrapQueryErr("failed to load appointment view", err)
	}
	return v, nil
}

func (r *appointmentRepository) ViewByPublicToken(ctx context.Context, token string) (*usecase.AppointmentView, error) {
	row := r.pool.QueryRow(ctx, appointmentViewQuery+` WHERE a.public_token = $1`, token)
	v, err := scanAppointmentView(row)
	if err != nil {
		return nil, wrapQueryErr("failed to load appointment view by token", err)
	}
	return v, nil
}

func (r *appointmentRepository) List(ctx context.Context, filter usecase.AppointmentFilter) ([]*usecase.AppointmentView, error) {
	query := appointmentViewQuery + `
	WHERE ($1::appointment_status IS NULL OR a.status = $1)
	  AND ($2::timestamptz IS NULL OR a.starts_at >= $2)
	  AND ($3::timestamptz IS NULL OR a.starts_at <= $3)
	ORDER BY a.starts_at`

	var status *string
	if filter.Status != nil {
		s := string(*filter.Status)
		status = &s
	}
	rows, err := r.pool.Query(ctx, query, status, filter.From, filter.To)
	if err != nil {
		return nil, wrapQueryErr("failed to list appointments", err)
	}
	defer rows.Close()

	views := make([]*usecase.AppointmentView, 0)
	for rows.Next() {
		v, err := scanAppointmentView(rows)
		if err != nil {
			return nil, wrapQueryErr("failed to scan appointment", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryErr("failed to list appointments", err)
	}
	return views, nil
}

func (r *appointmentRepository) FindBlocking(
	ctx context.Context,
	statuses []availability.AppointmentStatus,
	from, to time.Time,
	serviceID *uuid.UUID,
) ([]availability.Appointment, error) {
	names := make([]string, 0, len(statuses))
	for _, s := range statuses {
		names = append(names, string(s))
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id, service_id, starts_at, ends_at, status
		FROM appointments
		WHERE status = ANY($1)
		  AND starts_at >= $2 AND starts_at <= $3
		  AND ($4::uuid IS NULL OR service_id = $4)
		ORDER BY starts_at`, names, from, to, serviceID)
	if err != nil {
		return nil, wrapQueryErr("failed to find blocking appointments", err)
	}
	defer rows.Close()

	appts := make([]availability.Appointment, 0)
	for rows.Next() {
		var (
			a      availability.Appointment
			status string
		)
		if err := rows.Scan(&a.ID, &a.ServiceID, &a.StartsAt, &a.EndsAt, &status); err != nil {
			return nil, wrapQueryErr("failed to scan blocking appointment", err)
		}
		a.Status = availability.AppointmentStatus(status)
		appts = append(appts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryErr("failed to find blocking appointments", err)
	}
	return appts, nil
}

func (r *appointmentRepository) Update(ctx context.Context, tx pgx.Tx, appt *appointment.Appointment) error {
	tag, err := tx.Exec(ctx, `
		UPDATE appointments
		SET status = $2, reminder_sent = $3
		WHERE id = $1`,
		appt.ID(), string(appt.Status()), appt.ReminderSent())
	if err != nil {
		return wrapQueryErr("failed to update appointment", err)
	}
	if tag.RowsAffected() == 0 {
		return wrapQueryErr("appointment not found", pgx.ErrNoRows)
	}
	return nil
}

func (r *appointmentRepository) FindDueReminders(ctx context.Context, from, to time.Time) ([]*usecase.ReminderCandidate, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT a.id, s.name, a.starts_at, a.public_token, a.customer_phone
		FROM appointments a
		JOIN services s ON s.id = a.service_id
		WHERE a.status IN ('scheduled', 'confirmed')
		  AND NOT a.reminder_sent
		  AND a.starts_at >= $1 AND a.starts_at <= $2
		ORDER BY a.starts_at`, from, to)
	if err != nil {
		return nil, wrapQueryErr("failed to find due reminders", err)
	}
	defer rows.Close()

	candidates := make([]*usecase.ReminderCandidate, 0)
	for rows.Next() {
		var c usecase.ReminderCandidate
		if err := rows.Scan(&c.AppointmentID, &c.ServiceName, &c.StartsAt, &c.PublicToken, &c.CustomerPhone); err != nil {
			return nil, wrapQueryErr("failed to scan reminder candidate", err)
		}
		candidates = append(candidates, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryErr("failed to find due reminders", err)
	}
	return candidates, nil
}

func (r *appointmentRepository) MarkRemindersSent(ctx context.Context, tx pgx.Tx, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := tx.Exec(ctx, `UPDATE appointments SET reminder_sent = true WHERE id = ANY($1)`, ids)
	if err != nil {
		return wrapQueryErr("failed to mark reminders sent", err)
	}
	return nil
}
