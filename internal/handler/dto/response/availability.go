package response

import (
	"barber-booking/internal/domain/availability"

	"github.com/google/uuid"
)

type AvailabilityResponse struct {
	ServiceID uuid.UUID           `json:"service_id"`
	Slots     []availability.Slot `json:"slots"`
}

func FromSlots(serviceID uuid.UUID, slots []availability.Slot) *AvailabilityResponse {
	return &AvailabilityResponse{
		ServiceID: serviceID,
		Slots:     slots,
	}
}
