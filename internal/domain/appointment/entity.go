package appointment

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"barber-booking/internal/domain/availability"

	"github.com/google/uuid"
)

var (
	ErrInvalidDuration   = errors.New("service duration must be positive")
	ErrMissingPhone      = errors.New("customer phone is required")
	ErrConsentRequired   = errors.New("customer consent is required")
	ErrNotCancelable     = errors.New("appointment is not eligible for cancellation")
	ErrAlreadyStarted    = errors.New("appointment has already started")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrUnknownStatus     = errors.New("unknown appointment status")
)

// cancelableStatuses mirror the public cancellation policy: only upcoming
// scheduled or confirmed appointments may be canceled.
var cancelableStatuses = map[availability.AppointmentStatus]bool{
	availability.StatusScheduled: true,
	availability.StatusConfirmed: true,
}

var validTransitions = map[availability.AppointmentStatus][]availability.AppointmentStatus{
	availability.StatusScheduled: {availability.StatusConfirmed, availability.StatusCanceled, availability.StatusCompleted},
	availability.StatusConfirmed: {availability.StatusCanceled, availability.StatusCompleted},
	availability.StatusCanceled:  {},
	availability.StatusCompleted: {},
}

type Appointment struct {
	id            uuid.UUID
	serviceID     uuid.UUID
	startsAt      time.Time
	endsAt        time.Time
	customerName  *string
	customerPhone string
	status        availability.AppointmentStatus
	publicToken   string
	reminderSent  bool
	createdAt     time.Time
}

// New builds a scheduled appointment with a freshly minted public token.
// The phone must already be normalized to E.164 by the caller.
func New(serviceID uuid.UUID, startsAt time.Time, durationMin int, customerName *string, customerPhone string, consentGranted bool) (*Appointment, error) {
	if durationMin <= 0 {
		return nil, ErrInvalidDuration
	}
	if customerPhone == "" {
		return nil, ErrMissingPhone
	}
	if !consentGranted {
		return nil, ErrConsentRequired
	}

	return &Appointment{
		id:            uuid.New(),
		serviceID:     serviceID,
		startsAt:      startsAt,
		endsAt:        startsAt.Add(time.Duration(durationMin) * time.Minute),
		customerName:  customerName,
		customerPhone: customerPhone,
		status:        availability.StatusScheduled,
		publicToken:   newPublicToken(),
	}, nil
}

func Reconstruct(
	id, serviceID uuid.UUID,
	startsAt, endsAt time.Time,
	customerName *string,
	customerPhone string,
	status availability.AppointmentStatus,
	publicToken string,
	reminderSent bool,
	createdAt time.Time,
) *Appointment {
	return &Appointment{
		id:            id,
		serviceID:     serviceID,
		startsAt:      startsAt,
		endsAt:        endsAt,
		customerName:  customerName,
		customerPhone: customerPhone,
		status:        status,
		publicToken:   publicToken,
		reminderSent:  reminderSent,
		createdAt:     createdAt,
	}
}

// Cancel applies the public cancellation policy at the given instant.
func (a *Appointment) Cancel(now time.Time) error {
	if !cancelableStatuses[a.status] {
		return ErrNotCancelable
	}
	if a.startsAt.Before(now) {
		return ErrAlreadyStarted
	}
	a.status = availability.StatusCanceled
	a.reminderSent = false
	return nil
}

// TransitionTo applies an admin-driven status change.
func (a *Appointment) TransitionTo(next availability.AppointmentStatus) error {
	allowed, known := validTransitions[a.status]
	if !known {
		return ErrUnknownStatus
	}
	for _, s := range allowed {
		if s == next {
			a.status = next
			return nil
		}
	}
	return ErrInvalidTransition
}

func (a *Appointment) MarkReminderSent() { a.reminderSent = true }

func (a *Appointment) ID() uuid.UUID                          { return a.id }
func (a *Appointment) ServiceID() uuid.UUID                   { return a.serviceID }
func (a *Appointment) StartsAt() time.Time                    { return a.startsAt }
func (a *Appointment) EndsAt() time.Time                      { return a.endsAt }
func (a *Appointment) CustomerName() *string                  { return a.customerName }
func (a *Appointment) CustomerPhone() string                  { return a.customerPhone }
func (a *Appointment) Status() availability.AppointmentStatus { return a.status }
func (a *Appointment) PublicToken() string                    { return a.publicToken }
func (a *Appointment) ReminderSent() bool                     { return a.reminderSent }
func (a *Appointment) CreatedAt() time.Time                   { return a.createdAt }

// ParseStatus validates an incoming status string.
func ParseStatus(v string) (availability.AppointmentStatus, error) {
	switch s := availability.AppointmentStatus(v); s {
	case availability.StatusScheduled, availability.StatusConfirmed, availability.StatusCanceled, availability.StatusCompleted:
		return s, nil
	default:
		return "", ErrUnknownStatus
	}
}

func newPublicToken() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms; fall back to a
		// UUID-derived token rather than panicking in the booking path.
		return hex.EncodeToString(uuid.New().NodeID()) + uuid.New().String()
	}
	return hex.EncodeToString(buf)
}
