//go:build unit

package availability_test

import (
	"testing"
	"time"

	"barber-booking/internal/domain/availability"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var saoPaulo = mustLoadLocation("America/Sao_Paulo")

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

func fixedService() availability.Service {
	return availability.Service{
		ID:          uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8"),
		DurationMin: 30,
		Active:      true,
	}
}

// Tuesday 2025-06-10 in America/Sao_Paulo (UTC-3, no DST).
func tuesday() time.Time {
	return time.Date(2025, 6, 10, 0, 0, 0, 0, saoPaulo)
}

func window(weekday int, start, end string) availability.WorkWindow {
	return availability.WorkWindow{
		ID:      uuid.New(),
		Weekday: weekday,
		Start:   start,
		End:     end,
		Active:  true,
	}
}

func dayRange(day time.Time) availability.DateRange {
	return availability.DateRange{
		Start: day,
		End:   day.Add(24*time.Hour - time.Millisecond),
	}
}

func localTime(day time.Time, hour, minute int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, saoPaulo)
}

func TestGenerate_Coverage(t *testing.T) {
	day := tuesday()
	slots := availability.Generate(
		fixedService(),
		[]availability.WorkWindow{window(2, "09:00", "12:00")},
		nil, nil,
		dayRange(day),
		availability.Rules{Location: saoPaulo},
		localTime(day, 8, 0),
	)

	require.Len(t, slots, 6)
	assert.True(t, slots[0].StartsAt.Equal(localTime(day, 9, 0)))
	for _, s := range slots {
		assert.Equal(t, availability.SlotAvailable, s.Status)
		assert.Empty(t, s.Reason)
		assert.Equal(t, 30*time.Minute, s.EndsAt.Sub(s.StartsAt))
	}
}

func TestGenerate_Idempotence(t *testing.T) {
	day := tuesday()
	svc := fixedService()
	windows := []availability.WorkWindow{window(2, "09:00", "12:00"), window(2, "14:00", "17:00")}
	appts := []availability.Appointment{{
		ID:        uuid.New(),
		ServiceID: svc.ID,
		StartsAt:  localTime(day, 10, 0),
		EndsAt:    localTime(day, 10, 30),
		Status:    availability.StatusConfirmed,
	}}
	rules := availability.Rules{Location: saoPaulo, MinLeadMinutes: 60, MaxAdvanceDays: 60}
	now := localTime(day, 7, 0)

	first := availability.Generate(svc, windows, appts, nil, dayRange(day), rules, now)
	second := availability.Generate(svc, windows, appts, nil, dayRange(day), rules, now)

	assert.Equal(t, first, second)
}

func TestGenerate_OrderingAcrossWindowsAndDays(t *testing.T) {
	day := tuesday()
	rng := availability.DateRange{Start: day, End: day.AddDate(0, 0, 1).Add(24*time.Hour - time.Millisecond)}
	// Afternoon window listed before the morning one; Wednesday opens too.
	windows := []availability.WorkWindow{
		window(2, "14:00", "16:00"),
		window(2, "09:00", "11:00"),
		window(3, "09:00", "11:00"),
	}

	slots := availability.Generate(fixedService(), windows, nil, nil, rng, availability.Rules{Location: saoPaulo}, localTime(day, 7, 0))

	require.NotEmpty(t, slots)
	for i := 1; i < len(slots); i++ {
		assert.False(t, slots[i].StartsAt.Before(slots[i-1].StartsAt), "slots out of order at %d", i)
	}
}

func TestGenerate_AppointmentBlocking(t *testing.T) {
	day := tuesday()
	svc := fixedService()
	apptID := uuid.New()
	appts := []availability.Appointment{{
		ID:        apptID,
		ServiceID: svc.ID,
		StartsAt:  localTime(day, 10, 0),
		EndsAt:    localTime(day, 10, 30),
		Status:    availability.StatusScheduled,
	}}

	slots := availability.Generate(svc, []availability.WorkWindow{window(2, "09:00", "12:00")}, appts, nil, dayRange(day), availability.Rules{Location: saoPaulo}, localTime(day, 7, 0))

	require.Len(t, slots, 6)
	for _, s := range slots {
		if s.StartsAt.Equal(localTime(day, 10, 0)) {
			assert.Equal(t, availability.SlotBooked, s.Status)
			assert.Equal(t, availability.ReasonAppointment, s.Reason)
			require.NotNil(t, s.AppointmentID)
			assert.Equal(t, apptID, *s.AppointmentID)
			continue
		}
		assert.Equal(t, availability.SlotAvailable, s.Status, "slot %s", s.StartsAt)
	}
}

func TestGenerate_AppointmentBoundaryIsExclusive(t *testing.T) {
	day := tuesday()
	svc := fixedService()
	// Ends exactly when the 09:30 slot begins.
	appts := []availability.Appointment{{
		ID:        uuid.New(),
		ServiceID: svc.ID,
		StartsAt:  localTime(day, 9, 0),
		EndsAt:    localTime(day, 9, 30),
		Status:    availability.StatusConfirmed,
	}}

	slots := availability.Generate(svc, []availability.WorkWindow{window(2, "09:00", "12:00")}, appts, nil, dayRange(day), availability.Rules{Location: saoPaulo}, localTime(day, 7, 0))

	require.Len(t, slots, 6)
	assert.Equal(t, availability.SlotBooked, slots[0].Status)
	assert.Equal(t, availability.SlotAvailable, slots[1].Status)
}

func TestGenerate_NonBlockingStatusesIgnored(t *testing.T) {
	day := tuesday()
	svc := fixedService()
	appts := []availability.Appointment{
		{ID: uuid.New(), ServiceID: svc.ID, StartsAt: localTime(day, 9, 0), EndsAt: localTime(day, 9, 30), Status: availability.StatusCanceled},
		{ID: uuid.New(), ServiceID: svc.ID, StartsAt: localTime(day, 9, 30), EndsAt: localTime(day, 10, 0), Status: availability.StatusCompleted},
	}

	slots := availability.Generate(svc, []availability.WorkWindow{window(2, "09:00", "10:00")}, appts, nil, dayRange(day), availability.Rules{Location: saoPaulo}, localTime(day, 7, 0))

	require.Len(t, slots, 2)
	for _, s := range slots {
		assert.Equal(t, availability.SlotAvailable, s.Status)
	}
}

func TestGenerate_VacationBlocksWholeDay(t *testing.T) {
	day := tuesday()
	blackouts := []availability.BlackoutRange{{
		ID:       uuid.New(),
		StartsOn: day.Format(time.DateOnly),
		EndsOn:   day.Format(time.DateOnly),
	}}

	slots := availability.Generate(fixedService(), []availability.WorkWindow{window(2, "09:00", "11:00")}, nil, blackouts, dayRange(day), availability.Rules{Location: saoPaulo}, localTime(day, 7, 0))

	require.Len(t, slots, 4)
	for _, s := range slots {
		assert.Equal(t, availability.SlotBlocked, s.Status)
		assert.Equal(t, availability.ReasonVacation, s.Reason)
	}
}

func TestGenerate_VacationBoundaryIsInclusive(t *testing.T) {
	day := tuesday()
	windows := []availability.WorkWindow{window(2, "23:00", "23:59")}
	rules := availability.Rules{Location: saoPaulo}
	now := localTime(day, 7, 0)

	// Vacation covering the day: the 23:00 slot touches its expanded end
	// (23:59:59.999) and is blocked.
	blackouts := []availability.BlackoutRange{{
		ID:       uuid.New(),
		StartsOn: day.Format(time.DateOnly),
		EndsOn:   day.Format(time.DateOnly),
	}}
	slots := availability.Generate(fixedService(), windows, nil, blackouts, dayRange(day), rules, now)
	require.Len(t, slots, 1)
	assert.Equal(t, availability.SlotBlocked, slots[0].Status)
	assert.Equal(t, availability.ReasonVacation, slots[0].Reason)

	// Vacation ending the previous day no longer reaches Tuesday's slots.
	prevDay := day.AddDate(0, 0, -1)
	blackouts[0].StartsOn = prevDay.Format(time.DateOnly)
	blackouts[0].EndsOn = prevDay.Format(time.DateOnly)
	slots = availability.Generate(fixedService(), windows, nil, blackouts, dayRange(day), rules, now)
	require.Len(t, slots, 1)
	assert.Equal(t, availability.SlotAvailable, slots[0].Status)
}

func TestGenerate_LeadTimeGating(t *testing.T) {
	day := tuesday()
	now := localTime(day, 8, 30)
	rules := availability.Rules{Location: saoPaulo, MinLeadMinutes: 90}

	slots := availability.Generate(fixedService(), []availability.WorkWindow{window(2, "09:00", "12:00")}, nil, nil, dayRange(day), rules, now)

	require.Len(t, slots, 6)
	for _, s := range slots {
		if s.StartsAt.Before(localTime(day, 10, 0)) {
			assert.Equal(t, availability.SlotBlocked, s.Status, "slot %s", s.StartsAt)
			assert.Equal(t, availability.ReasonLeadTime, s.Reason)
		} else {
			assert.Equal(t, availability.SlotAvailable, s.Status, "slot %s", s.StartsAt)
		}
	}
}

func TestGenerate_MaxAdvanceGating(t *testing.T) {
	day := tuesday()
	now := localTime(day, 7, 0)
	rng := availability.DateRange{Start: day, End: day.AddDate(0, 0, 20)}
	// All seven weekdays open so every day in range produces slots.
	windows := make([]availability.WorkWindow, 0, 7)
	for wd := 0; wd < 7; wd++ {
		windows = append(windows, window(wd, "09:00", "10:00"))
	}
	rules := availability.Rules{Location: saoPaulo, MaxAdvanceDays: 14}

	slots := availability.Generate(fixedService(), windows, nil, nil, rng, rules, now)

	require.NotEmpty(t, slots)
	horizon := now.AddDate(0, 0, 14)
	var beyond int
	for _, s := range slots {
		if s.StartsAt.After(horizon) {
			beyond++
			assert.Equal(t, availability.SlotBlocked, s.Status)
			assert.Equal(t, availability.ReasonMaxAdvance, s.Reason)
		} else {
			assert.Equal(t, availability.SlotAvailable, s.Status)
		}
	}
	assert.NotZero(t, beyond)
}

func TestGenerate_EarlyExits(t *testing.T) {
	day := tuesday()
	svc := fixedService()
	windows := []availability.WorkWindow{window(2, "09:00", "12:00")}
	rules := availability.Rules{Location: saoPaulo}
	now := localTime(day, 7, 0)

	tests := []struct {
		name     string
		generate func() []availability.Slot
	}{
		{
			name: "inactive service",
			generate: func() []availability.Slot {
				inactive := svc
				inactive.Active = false
				return availability.Generate(inactive, windows, nil, nil, dayRange(day), rules, now)
			},
		},
		{
			name: "non-positive duration",
			generate: func() []availability.Slot {
				broken := svc
				broken.DurationMin = 0
				return availability.Generate(broken, windows, nil, nil, dayRange(day), rules, now)
			},
		},
		{
			name: "inverted date range",
			generate: func() []availability.Slot {
				rng := availability.DateRange{Start: day.AddDate(0, 0, 1), End: day}
				return availability.Generate(svc, windows, nil, nil, rng, rules, now)
			},
		},
		{
			name: "zero date range",
			generate: func() []availability.Slot {
				return availability.Generate(svc, windows, nil, nil, availability.DateRange{}, rules, now)
			},
		},
		{
			name: "no active windows",
			generate: func() []availability.Slot {
				inactive := windows[0]
				inactive.Active = false
				return availability.Generate(svc, []availability.WorkWindow{inactive}, nil, nil, dayRange(day), rules, now)
			},
		},
		{
			name: "degenerate window",
			generate: func() []availability.Slot {
				return availability.Generate(svc, []availability.WorkWindow{window(2, "12:00", "09:00")}, nil, nil, dayRange(day), rules, now)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, tt.generate())
		})
	}
}

func TestGenerate_IntervalGap(t *testing.T) {
	day := tuesday()
	rules := availability.Rules{Location: saoPaulo, IntervalMinutes: 15}

	slots := availability.Generate(fixedService(), []availability.WorkWindow{window(2, "09:00", "10:30")}, nil, nil, dayRange(day), rules, localTime(day, 7, 0))

	require.Len(t, slots, 2)
	assert.True(t, slots[0].StartsAt.Equal(localTime(day, 9, 0)))
	assert.True(t, slots[1].StartsAt.Equal(localTime(day, 9, 45)))
}

func TestGenerate_SlotIDDeterministic(t *testing.T) {
	day := tuesday()
	svc := fixedService()

	slots := availability.Generate(svc, []availability.WorkWindow{window(2, "09:00", "09:30")}, nil, nil, dayRange(day), availability.Rules{Location: saoPaulo}, localTime(day, 7, 0))

	require.Len(t, slots, 1)
	assert.Equal(t, svc.ID.String()+"-2025-06-10T12:00:00Z", slots[0].ID)
}

func TestFindSlot(t *testing.T) {
	day := tuesday()
	slots := availability.Generate(fixedService(), []availability.WorkWindow{window(2, "09:00", "12:00")}, nil, nil, dayRange(day), availability.Rules{Location: saoPaulo}, localTime(day, 7, 0))

	found := availability.FindSlot(slots, localTime(day, 10, 30))
	require.NotNil(t, found)
	assert.True(t, found.StartsAt.Equal(localTime(day, 10, 30)))

	assert.Nil(t, availability.FindSlot(slots, localTime(day, 10, 15)))
}
