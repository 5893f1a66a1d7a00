package repository

import (
	"context"

	"barber-booking/internal/usecase"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type pushSubscriptionRepository struct {
	pool *pgxpool.Pool
}

func NewPushSubscriptionRepository(pool *pgxpool.Pool) usecase.PushSubscriptionRepository {
	return &pushSubscriptionRepository{pool: pool}
}

func (r *pushSubscriptionRepository) Create(ctx context.Context, tx pgx.Tx, sub usecase.PushSubscription) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO push_subscriptions (public_token, customer_phone, endpoint, p256dh, auth)
		VALUES ($1, $2, $3, $4, $5)`,
		sub.PublicToken, sub.CustomerPhone, sub.Endpoint, sub.P256DH, sub.Auth)
	if err != nil {
		return wrapQueryErr("failed to create push subscription", err)
	}
	return nil
}

func (r *pushSubscriptionRepository) DeleteByPublicToken(ctx context.Context, tx pgx.Tx, token string) error {
	_, err := tx.Exec(ctx, `DELETE FROM push_subscriptions WHERE public_token = $1`, token)
	if err != nil {
		return wrapQueryErr("failed to delete push subscriptions", err)
	}
	return nil
}
