package repository

import (
	"context"

	"barber-booking/internal/usecase"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type adminRepository struct {
	pool *pgxpool.Pool
}

func NewAdminRepository(pool *pgxpool.Pool) usecase.AdminRepository {
	return &adminRepository{pool: pool}
}

func (r *adminRepository) FindByEmail(ctx context.Context, email string) (*usecase.AdminRecord, error) {
	var rec usecase.AdminRecord
	err := r.pool.QueryRow(ctx,
		`SELECT id, email, password_hash FROM admins WHERE email = $1`, email,
	).Scan(&rec.ID, &rec.Email, &rec.PasswordHash)
	if err != nil {
		return nil, wrapQueryErr("failed to find admin by email", err)
	}
	return &rec, nil
}

func (r *adminRepository) FindByID(ctx context.Context, id uuid.UUID) (*usecase.AdminRecord, error) {
	var rec usecase.AdminRecord
	err := r.pool.QueryRow(ctx,
		`SELECT id, email, password_hash FROM admins WHERE id = $1`, id,
	).Scan(&rec.ID, &rec.Email, &rec.PasswordHash)
	if err != nil {
		return nil, wrapQueryErr("failed to find admin", err)
	}
	return &rec, nil
}
