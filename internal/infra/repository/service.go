package repository

import (
	"context"

	"barber-booking/internal/infra"
	"barber-booking/internal/usecase"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type serviceRepository struct {
	pool *pgxpool.Pool
}

func NewServiceRepository(pool *pgxpool.Pool) usecase.ServiceRepository {
	return &serviceRepository{pool: pool}
}

const serviceColumns = `id, name, duration_min, price_cents, active, created_at`

func scanService(row pgx.Row) (*usecase.ServiceView, error) {
	var v usecase.ServiceView
	if err := row.Scan(&v.ID, &v.Name, &v.DurationMin, &v.PriceCents, &v.Active, &v.CreatedAt); err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *serviceRepository) FindByID(ctx context.Context, id uuid.UUID) (*usecase.ServiceView, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+serviceColumns+` FROM services WHERE id = $1`, id)
	v, err := scanService(row)
	if err != nil {
		return nil, wrapQueryErr("failed to find service", err)
	}
	return v, nil
}

func (r *serviceRepository) FindActiveByID(ctx context.Context, id uuid.UUID) (*usecase.ServiceView, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+serviceColumns+` FROM services WHERE id = $1 AND active`, id)
	v, err := scanService(row)
	if err != nil {
		return nil, wrapQueryErr("failed to find active service", err)
	}
	return v, nil
}

func (r *serviceRepository) List(ctx context.Context, activeOnly bool) ([]*usecase.ServiceView, error) {
	query := `SELECT ` + serviceColumns + ` FROM services ORDER BY name`
	if activeOnly {
		query = `SELECT ` + serviceColumns + ` FROM services WHERE active ORDER BY name`
	}
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, wrapQueryErr("failed to list services", err)
	}
	defer rows.Close()

	views := make([]*usecase.ServiceView, 0)
	for rows.Next() {
		v, err := scanService(rows)
		if err != nil {
			return nil, wrapQueryErr("failed to scan service", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryErr("failed to list services", err)
	}
	return views, nil
}

func (r *serviceRepository) Create(ctx context.Context, params usecase.CreateServiceParams) (*usecase.ServiceView, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO services (name, duration_min, price_cents, active)
		VALUES ($1, $2, $3, $4)
		RETURNING `+serviceColumns,
		params.Name, params.DurationMin, params.PriceCents, params.Active)
	v, err := scanService(row)
	if err != nil {
		return nil, wrapQueryErr("failed to create service", err)
	}
	return v, nil
}

func (r *serviceRepository) Update(ctx context.Context, id uuid.UUID, params usecase.CreateServiceParams) (*usecase.ServiceView, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE services
		SET name = $2, duration_min = $3, price_cents = $4, active = $5
		WHERE id = $1
		RETURNING `+serviceColumns,
		id, params.Name, params.DurationMin, params.PriceCents, params.Active)
	v, err := scanService(row)
	if err != nil {
		return nil, wrapQueryErr("failed to update service", err)
	}
	return v, nil
}

func (r *serviceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return wrapQueryErr("failed to delete service", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("service not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}
