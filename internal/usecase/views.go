package usecase

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type ServiceView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	DurationMin int32     `json:"duration_min"`
	PriceCents  *int32    `json:"price_cents,omitempty"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}

type WorkHourView struct {
	ID        uuid.UUID `json:"id"`
	Weekday   int32     `json:"weekday"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

type VacationView struct {
	ID        uuid.UUID `json:"id"`
	StartsOn  string    `json:"starts_on"`
	EndsOn    string    `json:"ends_on"`
	Reason    *string   `json:"reason,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type AppointmentView struct {
	ID            uuid.UUID `json:"id"`
	ServiceID     uuid.UUID `json:"service_id"`
	ServiceName   string    `json:"service_name"`
	StartsAt      time.Time `json:"starts_at"`
	EndsAt        time.Time `json:"ends_at"`
	CustomerName  *string   `json:"customer_name,omitempty"`
	CustomerPhone string    `json:"customer_phone"`
	Status        string    `json:"status"`
	PublicToken   string    `json:"public_token"`
	ReminderSent  bool      `json:"reminder_sent"`
	CreatedAt     time.Time `json:"created_at"`
}

type ReminderCandidate struct {
	AppointmentID uuid.UUID
	ServiceName   string
	StartsAt      time.Time
	PublicToken   string
	CustomerPhone string
}

type AdminView struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}
