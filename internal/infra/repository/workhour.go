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

type workHourRepository struct {
	pool *pgxpool.Pool
}

func NewWorkHourRepository(pool *pgxpool.Pool) usecase.WorkHourRepository {
	return &workHourRepository{pool: pool}
}

const workHourColumns = `id, weekday, to_char(start_time, 'HH24:MI:SS'), to_char(end_time, 'HH24:MI:SS'), active, created_at`

func scanWorkHour(row pgx.Row) (*usecase.WorkHourView, error) {
	var v usecase.WorkHourView
	if err := row.Scan(&v.ID, &v.Weekday, &v.StartTime, &v.EndTime, &v.Active, &v.CreatedAt); err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *workHourRepository) ListActiveWindows(ctx context.Context) ([]availability.WorkWindow, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT weekday, to_char(start_time, 'HH24:MI:SS'), to_char(end_time, 'HH24:MI:SS')
		FROM work_hours
		WHERE active
		ORDER BY weekday, start_time`)
	if err != nil {
		return nil, wrapQueryErr("failed to list active work windows", err)
	}
	defer rows.Close()

	windows := make([]availability.WorkWindow, 0)
	for rows.Next() {
		var w availability.WorkWindow
		if err := rows.Scan(&w.Weekday, &w.Start, &w.End); err != nil {
			return nil, wrapQueryErr("failed to scan work window", err)
		}
		w.Active = true
		windows = append(windows, w)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryErr("failed to list active work windows", err)
	}
	return windows, nil
}

func (r *workHourRepository) List(ctx context.Context) ([]*usecase.WorkHourView, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+workHourColumns+` FROM work_hours ORDER BY weekday, start_time`)
	if err != nil {
		return nil, wrapQueryErr("failed to list work hours", err)
	}
	defer rows.Close()

	views := make([]*usecase.WorkHourView, 0)
	for rows.Next() {
		v, err := scanWorkHour(rows)
		if err != nil {
			return nil, wrapQueryErr("failed to scan work hour", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryErr("failed to list work hours", err)
	}
	return views, nil
}

func (r *workHourRepository) Create(ctx context.Context, params usecase.CreateWorkHourParams) (*usecase.WorkHourView, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO work_hours (weekday, start_time, end_time, active)
		VALUES ($1, $2::time, $3::time, $4)
		RETURNING `+workHourColumns,
		params.Weekday, params.StartTime, params.EndTime, params.Active)
	v, err := scanWorkHour(row)
	if err != nil {
		return nil, wrapQueryErr("failed to create work hour", err)
	}
	return v, nil
}

func (r *workHourRepository) Update(ctx context.Context, id uuid.UUID, params usecase.CreateWorkHourParams) (*usecase.WorkHourView, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE work_hours
		SET weekday = $2, start_time = $3::time, end_time = $4::time, active = $5
		WHERE id = $1
		RETURNING `+workHourColumns,
		id, params.Weekday, params.StartTime, params.EndTime, params.Active)
	v, err := scanWorkHour(row)
	if err != nil {
		return nil, wrapQueryErr("failed to update work hour", err)
	}
	return v, nil
}

func (r *workHourRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM work_hours WHERE id = $1`, id)
	if err != nil {
		return wrapQueryErr("failed to delete work hour", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("work hour not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}
