package response

import (
	"time"

	"barber-booking/internal/usecase"

	"github.com/google/uuid"
)

type AppointmentResponse struct {
	ID            uuid.UUID `json:"id"`
	ServiceID     uuid.UUID `json:"service_id"`
	ServiceName   string    `json:"service_name"`
	StartsAt      time.Time `json:"starts_at"`
	EndsAt        time.Time `json:"ends_at"`
	CustomerName  *string   `json:"customer_name,omitempty"`
	CustomerPhone string    `json:"customer_phone"`
	Status        string    `json:"status"`
	PublicToken   string    `json:"public_token"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromAppointmentView(v *usecase.AppointmentView) *AppointmentResponse {
	return &AppointmentResponse{
		ID:            v.ID,
		ServiceID:     v.ServiceID,
		ServiceName:   v.ServiceName,
		StartsAt:      v.StartsAt,
		EndsAt:        v.EndsAt,
		CustomerName:  v.CustomerName,
		CustomerPhone: v.CustomerPhone,
		Status:        v.Status,
		PublicToken:   v.PublicToken,
		CreatedAt:     v.CreatedAt,
	}
}
