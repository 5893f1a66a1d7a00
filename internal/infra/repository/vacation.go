package repository

import (
	"context"

	"barber-booking/internal/domain/availability"
	"barber-booking/internal/infra"
	"barber-booking/internal/usecase"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type vacationRepository struct {
	pool *pgxpool.Pool
}

func NewVacationRepository(pool *pgxpool.Pool) usecase.VacationRepository {
	return &vacationRepository{pool: pool}
}

const vacationColumns = `id, to_char(starts_on, 'YYYY-MM-DD'), to_char(ends_on, 'YYYY-MM-DD'), reason, created_at`

func scanVacation(row pgx.Row) (*usecase.VacationView, error) {
	var v usecase.VacationView
	if err := row.Scan(&v.ID, &v.StartsOn, &v.EndsOn, &v.Reason, &v.CreatedAt); err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *vacationRepository) ListOverlapping(ctx context.Context, startsOn, endsOn string) ([]availability.BlackoutRange, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, to_char(starts_on, 'YYYY-MM-DD'), to_char(ends_on, 'YYYY-MM-DD'), reason
		FROM vacations
		WHERE starts_on <= $2::date AND ends_on >= $1::date
		ORDER BY starts_on`, startsOn, endsOn)
	if err != nil {
		return nil, wrapQueryErr("failed to list overlapping vacations", err)
	}
	defer rows.Close()

	ranges := make([]availability.BlackoutRange, 0)
	for rows.Next() {
		var b availability.BlackoutRange
		if err := rows.Scan(&b.ID, &b.StartsOn, &b.EndsOn, &b.Reason); err != nil {
			return nil, wrapQueryErr("failed to scan vacation", err)
		}
		ranges = append(ranges, b)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryErr("failed to list overlapping vacations", err)
	}
	return ranges, nil
}

func (r *vacationRepository) List(ctx context.Context) ([]*usecase.VacationView, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+vacationColumns+` FROM vacations ORDER BY starts_on`)
	if err != nil {
		return nil, wrapQueryErr("failed to list vacations", err)
	}
	defer rows.Close()

	views := make([]*usecase.VacationView, 0)
	for rows.Next() {
		v, err := scanVacation(rows)
		if err != nil {
			return nil, wrapQueryErr("failed to scan vacation", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryErr("failed to list vacations", err)
	}
	return views, nil
}

func (r *vacationRepository) Create(ctx context.Context, params usecase.CreateVacationParams) (*usecase.VacationView, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO vacations (starts_on, ends_on, reason)
		VALUES ($1::date, $2::date, $3)
		RETURNING `+vacationColumns,
		params.StartsOn, params.EndsOn, params.Reason)
	v, err := scanVacation(row)
	if err != nil {
		return nil, wrapQueryErr("failed to create vacation", err)
	}
	return v, nil
}

func (r *vacationRepository) Update(ctx context.Context, id uuid.UUID, params usecase.CreateVacationParams) (*usecase.VacationView, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE vacations
		SET starts_on = $2::date, ends_on = $3::date, reason = $4
		WHERE id = $1
		RETURNING `+vacationColumns,
		id, params.StartsOn, params.EndsOn, params.Reason)
	v, err := scanVacation(row)
	if err != nil {
		return nil, wrapQueryErr("failed to update vacation", err)
	}
	return v, nil
}

func (r *vacationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM vacations WHERE id = $1`, id)
	if err != nil {
		return wrapQueryErr("failed to delete vacation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("vacation not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}
