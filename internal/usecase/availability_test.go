//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"barber-booking/internal/domain/appointment"
	"barber-booking/internal/domain/availability"
	"barber-booking/internal/infra"
	"barber-booking/internal/pkg/clock"
	"barber-booking/internal/pkg/config"
	"barber-booking/internal/usecase"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeServiceRepo struct {
	view *usecase.ServiceView
}

func (f *fakeServiceRepo) FindByID(_ context.Context, _ uuid.UUID) (*usecase.ServiceView, error) {
	return f.FindActiveByID(context.Background(), uuid.Nil)
}

func (f *fakeServiceRepo) FindActiveByID(_ context.Context, _ uuid.UUID) (*usecase.ServiceView, error) {
	if f.view == nil {
		return nil, infra.WrapRepoErr("service not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return f.view, nil
}

func (f *fakeServiceRepo) List(_ context.Context, _ bool) ([]*usecase.ServiceView, error) {
	panic("not implemented")
}

func (f *fakeServiceRepo) Create(_ context.Context, _ usecase.CreateServiceParams) (*usecase.ServiceView, error) {
	panic("not implemented")
}

func (f *fakeServiceRepo) Update(_ context.Context, _ uuid.UUID, _ usecase.CreateServiceParams) (*usecase.ServiceView, error) {
	panic("not implemented")
}

func (f *fakeServiceRepo) Delete(_ context.Context, _ uuid.UUID) error {
	panic("not implemented")
}

type fakeWorkHourRepo struct {
	windows []availability.WorkWindow
}

func (f *fakeWorkHourRepo) ListActiveWindows(_ context.Context) ([]availability.WorkWindow, error) {
	return f.windows, nil
}

func (f *fakeWorkHourRepo) List(_ context.Context) ([]*usecase.WorkHourView, error) {
	panic("not implemented")
}

func (f *fakeWorkHourRepo) Create(_ context.Context, _ usecase.CreateWorkHourParams) (*usecase.WorkHourView, error) {
	panic("not implemented")
}

func (f *fakeWorkHourRepo) Update(_ context.Context, _ uuid.UUID, _ usecase.CreateWorkHourParams) (*usecase.WorkHourView, error) {
	panic("not implemented")
}

func (f *fakeWorkHourRepo) Delete(_ context.Context, _ uuid.UUID) error {
	panic("not implemented")
}

type fakeVacationRepo struct {
	ranges []availability.BlackoutRange

	gotStartsOn string
	gotEndsOn   string
}

func (f *fakeVacationRepo) ListOverlapping(_ context.Context, startsOn, endsOn string) ([]availability.BlackoutRange, error) {
	f.gotStartsOn = startsOn
	f.gotEndsOn = endsOn
	return f.ranges, nil
}

func (f *fakeVacationRepo) List(_ context.Context) ([]*usecase.VacationView, error) {
	panic("not implemented")
}

func (f *fakeVacationRepo) Create(_ context.Context, _ usecase.CreateVacationParams) (*usecase.VacationView, error) {
	panic("not implemented")
}

func (f *fakeVacationRepo) Update(_ context.Context, _ uuid.UUID, _ usecase.CreateVacationParams) (*usecase.VacationView, error) {
	panic("not implemented")
}

func (f *fakeVacationRepo) Delete(_ context.Context, _ uuid.UUID) error {
	panic("not implemented")
}

type fakeAppointmentRepo struct {
	blocking []availability.Appointment

	gotFrom      time.Time
	gotTo        time.Time
	gotServiceID *uuid.UUID
}

func (f *fakeAppointmentRepo) FindBlocking(_ context.Context, _ []availability.AppointmentStatus, from, to time.Time, serviceID *uuid.UUID) ([]availability.Appointment, error) {
	f.gotFrom = from
	f.gotTo = to
	f.gotServiceID = serviceID
	return f.blocking, nil
}

func (f *fakeAppointmentRepo) Create(_ context.Context, _ pgx.Tx, _ *appointment.Appointment) (uuid.UUID, error) {
	panic("not implemented")
}

func (f *fakeAppointmentRepo) FindByID(_ context.Context, _ uuid.UUID) (*appointment.Appointment, error) {
	panic("not implemented")
}

func (f *fakeAppointmentRepo) FindByPublicToken(_ context.Context, _ string) (*appointment.Appointment, error) {
	panic("not implemented")
}

func (f *fakeAppointmentRepo) ViewByID(_ context.Context, _ uuid.UUID) (*usecase.AppointmentView, error) {
	panic("not implemented")
}

func (f *fakeAppointmentRepo) ViewByPublicToken(_ context.Context, _ string) (*usecase.AppointmentView, error) {
	panic("not implemented")
}

func (f *fakeAppointmentRepo) List(_ context.Context, _ usecase.AppointmentFilter) ([]*usecase.AppointmentView, error) {
	panic("not implemented")
}

func (f *fakeAppointmentRepo) Update(_ context.Context, _ pgx.Tx, _ *appointment.Appointment) error {
	panic("not implemented")
}

func (f *fakeAppointmentRepo) FindDueReminders(_ context.Context, _, _ time.Time) ([]*usecase.ReminderCandidate, error) {
	panic("not implemented")
}

func (f *fakeAppointmentRepo) MarkRemindersSent(_ context.Context, _ pgx.Tx, _ []uuid.UUID) error {
	panic("not implemented")
}

type availabilityFixture struct {
	services     *fakeServiceRepo
	workHours    *fakeWorkHourRepo
	vacations    *fakeVacationRepo
	appointments *fakeAppointmentRepo
	cfg          config.BookingConfig
	clock        *clock.MockClock
	queries      usecase.AvailabilityQueries
}

func newAvailabilityFixture(t *testing.T, now time.Time) *availabilityFixture {
	t.Helper()

	f := &availabilityFixture{
		services: &fakeServiceRepo{view: &usecase.ServiceView{
			ID:          uuid.New(),
			Name:        "Corte",
			DurationMin: 30,
			Active:      true,
		}},
		workHours:    &fakeWorkHourRepo{},
		vacations:    &fakeVacationRepo{},
		appointments: &fakeAppointmentRepo{},
		cfg:          config.NewTestConfig().Booking,
		clock:        clock.NewMockClock(now),
	}
	f.queries = usecase.NewAvailabilityQueries(
		f.services, f.workHours, f.vacations, f.appointments, f.cfg, f.clock,
	)
	return f
}

func TestGetAvailability_ServiceNotFound(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	f := newAvailabilityFixture(t, now)
	f.services.view = nil

	_, err := f.queries.GetAvailability(context.Background(), usecase.GetAvailabilityInput{
		ServiceID: uuid.New(),
	})

	assert.ErrorIs(t, err, usecase.ErrServiceNotFound)
}

func TestGetAvailability_InvalidStartDate(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	f := newAvailabilityFixture(t, now)

	bad := "06/10/2025"
	_, err := f.queries.GetAvailability(context.Background(), usecase.GetAvailabilityInput{
		ServiceID: f.services.view.ID,
		StartDate: &bad,
	})

	assert.ErrorIs(t, err, usecase.ErrInvalidDateRange)
}

func TestGetAvailability_InvalidTimezone(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	f := newAvailabilityFixture(t, now)

	bad := "Mars/Olympus_Mons"
	_, err := f.queries.GetAvailability(context.Background(), usecase.GetAvailabilityInput{
		ServiceID: f.services.view.ID,
		Timezone:  &bad,
	})

	assert.ErrorIs(t, err, usecase.ErrInvalidTimezone)
}

func TestGetAvailability_GeneratesSlotsForWindow(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	// 2025-06-10 is a Tuesday; now is the evening before so lead time
	// never interferes.
	now := time.Date(2025, 6, 9, 18, 0, 0, 0, loc)
	f := newAvailabilityFixture(t, now)
	f.workHours.windows = []availability.WorkWindow{
		{ID: uuid.New(), Weekday: 2, Start: "09:00", End: "12:00", Active: true},
	}

	startDate := "2025-06-10"
	slots, err := f.queries.GetAvailability(context.Background(), usecase.GetAvailabilityInput{
		ServiceID: f.services.view.ID,
		StartDate: &startDate,
		Days:      1,
	})
	require.NoError(t, err)

	require.Len(t, slots, 6)
	for _, slot := range slots {
		assert.Equal(t, availability.SlotAvailable, slot.Status)
	}
	assert.Equal(t, time.Date(2025, 6, 10, 9, 0, 0, 0, loc).UTC(), slots[0].StartsAt.UTC())

	// Read path restricts blocking appointments to the requested service.
	require.NotNil(t, f.appointments.gotServiceID)
	assert.Equal(t, f.services.view.ID, *f.appointments.gotServiceID)
}

func TestGetAvailability_DaysDefaultAndClamp(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, loc)

	t.Run("zero days falls back to the configured default", func(t *testing.T) {
		f := newAvailabilityFixture(t, now)

		_, err := f.queries.GetAvailability(context.Background(), usecase.GetAvailabilityInput{
			ServiceID: f.services.view.ID,
		})
		require.NoError(t, err)

		wantEnd := time.Date(2025, 6, 1+f.cfg.DefaultDays-1, 23, 59, 59, 999000000, loc)
		assert.Equal(t, wantEnd.UTC(), f.appointments.gotTo.UTC())
	})

	t.Run("oversized days is clamped to the query limit", func(t *testing.T) {
		f := newAvailabilityFixture(t, now)

		_, err := f.queries.GetAvailability(context.Background(), usecase.GetAvailabilityInput{
			ServiceID: f.services.view.ID,
			Days:      365,
		})
		require.NoError(t, err)

		wantEnd := time.Date(2025, 6, f.cfg.MaxQueryDays, 23, 59, 59, 999000000, loc)
		assert.Equal(t, wantEnd.UTC(), f.appointments.gotTo.UTC())
	})
}

func TestGetAvailability_VacationDatesPassedAsLocalDays(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, loc)
	f := newAvailabilityFixture(t, now)

	startDate := "2025-06-10"
	_, err = f.queries.GetAvailability(context.Background(), usecase.GetAvailabilityInput{
		ServiceID: f.services.view.ID,
		StartDate: &startDate,
		Days:      3,
	})
	require.NoError(t, err)

	assert.Equal(t, "2025-06-10", f.vacations.gotStartsOn)
	assert.Equal(t, "2025-06-12", f.vacations.gotEndsOn)
}
