package request

import (
	"barber-booking/internal/usecase"

	"github.com/google/uuid"
)

type AvailabilityRequest struct {
	ServiceID uuid.UUID `json:"service_id" binding:"required"`
	StartDate *string   `json:"start_date,omitempty"`
	Days      int       `json:"days" binding:"omitempty,min=1"`
	Timezone  *string   `json:"timezone,omitempty"`
}

func (r AvailabilityRequest) ToInput() usecase.GetAvailabilityInput {
	return usecase.GetAvailabilityInput{
		ServiceID: r.ServiceID,
		StartDate: r.StartDate,
		Days:      r.Days,
		Timezone:  r.Timezone,
	}
}
