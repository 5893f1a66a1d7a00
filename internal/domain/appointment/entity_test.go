//go:build unit

package appointment_test

import (
	"testing"
	"time"

	"barber-booking/internal/domain/appointment"
	"barber-booking/internal/domain/availability"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAppointment(t *testing.T) *appointment.Appointment {
	t.Helper()
	startsAt := time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)
	a, err := appointment.New(uuid.New(), startsAt, 30, nil, "+5511999990000", true)
	require.NoError(t, err)
	return a
}

func TestNew(t *testing.T) {
	a := newAppointment(t)

	assert.NotEqual(t, uuid.Nil, a.ID())
	assert.Equal(t, availability.StatusScheduled, a.Status())
	assert.Equal(t, 30*time.Minute, a.EndsAt().Sub(a.StartsAt()))
	assert.NotEmpty(t, a.PublicToken())
	assert.False(t, a.ReminderSent())

	other := newAppointment(t)
	assert.NotEqual(t, a.PublicToken(), other.PublicToken())
}

func TestNew_Validation(t *testing.T) {
	startsAt := time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		build   func() (*appointment.Appointment, error)
		wantErr error
	}{
		{
			name: "zero duration",
			build: func() (*appointment.Appointment, error) {
				return appointment.New(uuid.New(), startsAt, 0, nil, "+5511999990000", true)
			},
			wantErr: appointment.ErrInvalidDuration,
		},
		{
			name: "missing phone",
			build: func() (*appointment.Appointment, error) {
				return appointment.New(uuid.New(), startsAt, 30, nil, "", true)
			},
			wantErr: appointment.ErrMissingPhone,
		},
		{
			name: "missing consent",
			build: func() (*appointment.Appointment, error) {
				return appointment.New(uuid.New(), startsAt, 30, nil, "+5511999990000", false)
			},
			wantErr: appointment.ErrConsentRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.build()
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCancel(t *testing.T) {
	a := newAppointment(t)
	before := a.StartsAt().Add(-time.Hour)

	require.NoError(t, a.Cancel(before))
	assert.Equal(t, availability.StatusCanceled, a.Status())
	assert.False(t, a.ReminderSent())

	// Already canceled.
	assert.ErrorIs(t, a.Cancel(before), appointment.ErrNotCancelable)
}

func TestCancel_AlreadyStarted(t *testing.T) {
	a := newAppointment(t)
	assert.ErrorIs(t, a.Cancel(a.StartsAt().Add(time.Minute)), appointment.ErrAlreadyStarted)
	assert.Equal(t, availability.StatusScheduled, a.Status())
}

func TestTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    availability.AppointmentStatus
		to      availability.AppointmentStatus
		wantErr error
	}{
		{name: "scheduled to confirmed", from: availability.StatusScheduled, to: availability.StatusConfirmed},
		{name: "scheduled to completed", from: availability.StatusScheduled, to: availability.StatusCompleted},
		{name: "confirmed to canceled", from: availability.StatusConfirmed, to: availability.StatusCanceled},
		{name: "completed is terminal", from: availability.StatusCompleted, to: availability.StatusScheduled, wantErr: appointment.ErrInvalidTransition},
		{name: "canceled is terminal", from: availability.StatusCanceled, to: availability.StatusConfirmed, wantErr: appointment.ErrInvalidTransition},
		{name: "confirmed cannot revert", from: availability.StatusConfirmed, to: availability.StatusScheduled, wantErr: appointment.ErrInvalidTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := appointment.Reconstruct(
				uuid.New(), uuid.New(),
				time.Now(), time.Now().Add(30*time.Minute),
				nil, "+5511999990000",
				tt.from, "token-abc", false, time.Now(),
			)

			err := a.TransitionTo(tt.to)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.from, a.Status())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.to, a.Status())
		})
	}
}

func TestParseStatus(t *testing.T) {
	for _, valid := range []string{"scheduled", "confirmed", "canceled", "completed"} {
		s, err := appointment.ParseStatus(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, string(s))
	}

	_, err := appointment.ParseStatus("archived")
	assert.ErrorIs(t, err, appointment.ErrUnknownStatus)
}
