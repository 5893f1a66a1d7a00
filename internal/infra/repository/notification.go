package repository

import (
	"context"
	"time"

	"barber-booking/internal/usecase"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type notificationRepository struct {
	pool *pgxpool.Pool
}

func NewNotificationRepository(pool *pgxpool.Pool) usecase.NotificationRepository {
	return &notificationRepository{pool: pool}
}

func (r *notificationRepository) CreateJob(ctx context.Context, tx pgx.Tx, kind, topic string, payload []byte, runAt time.Time) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO notification_jobs (kind, topic, payload, run_at)
		VALUES ($1, $2, $3, $4)`,
		kind, topic, payload, runAt)
	if err != nil {
		return wrapQueryErr("failed to enqueue notification job", err)
	}
	return nil
}
