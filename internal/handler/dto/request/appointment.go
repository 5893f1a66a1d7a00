package request

import (
	"strings"
	"time"

	"barber-booking/internal/usecase"

	"github.com/google/uuid"
)

type CreateAppointmentRequest struct {
	ServiceID        uuid.UUID                `json:"service_id" binding:"required"`
	StartsAt         time.Time                `json:"starts_at" binding:"required"`
	CustomerName     *string                  `json:"customer_name,omitempty"`
	CustomerPhone    string                   `json:"customer_phone" binding:"required"`
	ConsentGranted   bool                     `json:"consent_granted"`
	PushSubscription *PushSubscriptionRequest `json:"push_subscription,omitempty"`
}

type PushSubscriptionRequest struct {
	Endpoint string `json:"endpoint" binding:"required"`
	Keys     struct {
		P256DH string `json:"p256dh" binding:"required"`
		Auth   string `json:"auth" binding:"required"`
	} `json:"keys" binding:"required"`
}

func (r CreateAppointmentRequest) ToInput() usecase.CreateAppointmentInput {
	input := usecase.CreateAppointmentInput{
		ServiceID:      r.ServiceID,
		StartsAt:       r.StartsAt,
		CustomerName:   r.GetCustomerName(),
		CustomerPhone:  strings.TrimSpace(r.CustomerPhone),
		ConsentGranted: r.ConsentGranted,
	}
	if r.PushSubscription != nil {
		input.PushSubscription = &usecase.PushSubscriptionInput{
			Endpoint: r.PushSubscription.Endpoint,
			P256DH:   r.PushSubscription.Keys.P256DH,
			Auth:     r.PushSubscription.Keys.Auth,
		}
	}
	return input
}

func (r CreateAppointmentRequest) GetCustomerName() *string {
	if r.CustomerName == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.CustomerName)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

type CancelAppointmentRequest struct {
	Reason *string `json:"reason,omitempty"`
}
