package usecase

import (
	"context"
	"time"

	"barber-booking/internal/domain/availability"
	"barber-booking/internal/infra"
	"barber-booking/internal/pkg/clock"
	"barber-booking/internal/pkg/config"
	"barber-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidTimezone = errs.New("invalid timezone")

type GetAvailabilityInput struct {
	ServiceID uuid.UUID
	StartDate *string // "2006-01-02", defaults to today
	Days      int     // defaults to config, clamped to the query limit
	Timezone  *string // IANA name, defaults to the booking timezone
}

type AvailabilityQueries interface {
	GetAvailability(ctx context.Context, input GetAvailabilityInput) ([]availability.Slot, error)
}

type availabilityQueriesImpl struct {
	services     ServiceRepository
	workHours    WorkHourRepository
	vacations    VacationRepository
	appointments AppointmentRepository
	cfg          config.BookingConfig
	clock        clock.Clock
}

func NewAvailabilityQueries(
	services ServiceRepository,
	workHours WorkHourRepository,
	vacations VacationRepository,
	appointments AppointmentRepository,
	cfg config.BookingConfig,
	clk clock.Clock,
) AvailabilityQueries {
	return &availabilityQueriesImpl{
		services:     services,
		workHours:    workHours,
		vacations:    vacations,
		appointments: appointments,
		cfg:          cfg,
		clock:        clk,
	}
}

func (q *availabilityQueriesImpl) GetAvailability(ctx context.Context, input GetAvailabilityInput) ([]availability.Slot, error) {
	service, err := q.services.FindActiveByID(ctx, input.ServiceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	loc, err := resolveLocation(input.Timezone, q.cfg)
	if err != nil {
		return nil, err
	}

	days := input.Days
	if days <= 0 {
		days = q.cfg.DefaultDays
	}
	if days > q.cfg.MaxQueryDays {
		days = q.cfg.MaxQueryDays
	}

	now := q.clock.Now()
	base := now.In(loc)
	if input.StartDate != nil {
		base, err = time.ParseInLocation(time.DateOnly, *input.StartDate, loc)
		if err != nil {
			return nil, errs.Mark(err, ErrInvalidDateRange)
		}
	}

	rangeStart := startOfDay(base, loc)
	rangeEnd := endOfDay(rangeStart.AddDate(0, 0, days-1), loc)

	serviceID := service.ID
	data, err := loadAvailabilityContext(ctx, q.workHours, q.vacations, q.appointments, rangeStart, rangeEnd, loc, &serviceID)
	if err != nil {
		return nil, err
	}

	slots := availability.Generate(
		availability.Service{ID: service.ID, DurationMin: int(service.DurationMin), Active: service.Active},
		data.windows,
		data.appointments,
		data.blackouts,
		availability.DateRange{Start: rangeStart, End: rangeEnd},
		rulesFor(q.cfg, loc),
		now,
	)
	return slots, nil
}

type availabilityContext struct {
	windows      []availability.WorkWindow
	appointments []availability.Appointment
	blackouts    []availability.BlackoutRange
}

// loadAvailabilityContext fetches everything the generator consumes for
// the absolute range. A nil serviceID loads blocking appointments across
// all services; the booking path uses that because a single chair serves
// every service.
func loadAvailabilityContext(
	ctx context.Context,
	workHours WorkHourRepository,
	vacations VacationRepository,
	appointmentRepo AppointmentRepository,
	rangeStart, rangeEnd time.Time,
	loc *time.Location,
	serviceID *uuid.UUID,
) (*availabilityContext, error) {
	windows, err := workHours.ListActiveWindows(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	blackouts, err := vacations.ListOverlapping(ctx,
		rangeStart.In(loc).Format(time.DateOnly),
		rangeEnd.In(loc).Format(time.DateOnly),
	)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	appointments, err := appointmentRepo.FindBlocking(ctx, availability.DefaultBlockingStatuses, rangeStart, rangeEnd, serviceID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &availabilityContext{
		windows:      windows,
		appointments: appointments,
		blackouts:    blackouts,
	}, nil
}

func rulesFor(cfg config.BookingConfig, loc *time.Location) availability.Rules {
	return availability.Rules{
		Location:         loc,
		MinLeadMinutes:   cfg.MinLeadMinutes,
		MaxAdvanceDays:   cfg.MaxAdvanceDays,
		IntervalMinutes:  cfg.IntervalMinutes,
		BlockingStatuses: availability.DefaultBlockingStatuses,
	}
}

func resolveLocation(override *string, cfg config.BookingConfig) (*time.Location, error) {
	name := cfg.Timezone
	if override != nil && *override != "" {
		name = *override
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidTimezone)
	}
	return loc, nil
}

func startOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

func endOfDay(t time.Time, loc *time.Location) time.Time {
	return startOfDay(t, loc).Add(24*time.Hour - time.Millisecond)
}
