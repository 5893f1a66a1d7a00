package availability

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus mirrors the persisted appointment lifecycle. Only
// statuses in the blocking set occupy time on the calendar.
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCanceled  AppointmentStatus = "canceled"
	StatusCompleted AppointmentStatus = "completed"
)

type SlotStatus string

const (
	SlotAvailable SlotStatus = "available"
	SlotBooked    SlotStatus = "booked"
	SlotBlocked   SlotStatus = "blocked"
)

type SlotReason string

const (
	ReasonAppointment SlotReason = "appointment"
	ReasonVacation    SlotReason = "vacation"
	ReasonLeadTime    SlotReason = "lead-time"
	ReasonMaxAdvance  SlotReason = "max-advance"
)

// Service is the generator's view of a bookable service.
type Service struct {
	ID          uuid.UUID
	DurationMin int
	Active      bool
}

// WorkWindow is a weekly recurring working window. Weekday uses the
// 0=Sunday..6=Saturday convention. Start and End are wall-clock times of
/// day ("HH:MM" or "HH:MM:SS") with no date attached.
type WorkWindow struct {
	ID      uuid.UUID
	Weekday int
	Start   string
	End     string
	Active  bool
}

// Appointment carries the subset of appointment fields the generator needs
// to detect occupied time.
type Appointment struct {
	ID        uuid.UUID
	ServiceID uuid.UUID
	StartsAt  time.Time
	EndsAt    time.Time
	Status    AppointmentStatus
}

// BlackoutRange is a vacation period. StartsOn and EndsOn are inclusive
// calendar dates ("2006-01-02"); whole days are blocked regardless of
// working hours.
type BlackoutRange struct {
	ID       uuid.UUID
	StartsOn string
	EndsOn   string
	Reason   *string
}

type DateRange struct {
	Start time.Time
	End   time.Time
}

// Rules carries the booking policy. Zero values mean "no constraint":
// MinLeadMinutes/MaxAdvanceDays of 0 disable the respective gate,
// IntervalMinutes of 0 packs slots back to back, a nil Location falls back
// to DefaultTimezone and empty BlockingStatuses fall back to
// DefaultBlockingStatuses.
type Rules struct {
	Location         *time.Location
	MinLeadMinutes   int
	MaxAdvanceDays   int
	IntervalMinutes  int
	BlockingStatuses []AppointmentStatus
}

// Slot is a generated availability candidate. It exists only for the
// lifetime of one request and is never persisted.
type Slot struct {
	ID            string     `json:"id"`
	ServiceID     uuid.UUID  `json:"serviceId"`
	StartsAt      time.Time  `json:"startsAt"`
	EndsAt        time.Time  `json:"endsAt"`
	Status        SlotStatus `json:"status"`
	Reason        SlotReason `json:"reason,omitempty"`
	AppointmentID *uuid.UUID `json:"appointmentId,omitempty"`
}
