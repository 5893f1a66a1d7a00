package request

import (
	"barber-booking/internal/usecase"
)

type ServiceRequest struct {
	Name        string `json:"name" binding:"required"`
	DurationMin int32  `json:"duration_min" binding:"required,gt=0"`
	PriceCents  *int32 `json:"price_cents,omitempty"`
	Active      bool   `json:"active"`
}

func (r ServiceRequest) ToParams() usecase.CreateServiceParams {
	return usecase.CreateServiceParams{
		Name:        r.Name,
		DurationMin: r.DurationMin,
		PriceCents:  r.PriceCents,
		Active:      r.Active,
	}
}

type WorkHourRequest struct {
	Weekday   int32  `json:"weekday" binding:"min=0,max=6"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
	Active    bool   `json:"active"`
}

func (r WorkHourRequest) ToParams() usecase.CreateWorkHourParams {
	return usecase.CreateWorkHourParams{
		Weekday:   r.Weekday,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Active:    r.Active,
	}
}

type VacationRequest struct {
	StartsOn string  `json:"starts_on" binding:"required"`
	EndsOn   string  `json:"ends_on" binding:"required"`
	Reason   *string `json:"reason,omitempty"`
}

func (r VacationRequest) ToParams() usecase.CreateVacationParams {
	return usecase.CreateVacationParams{
		StartsOn: r.StartsOn,
		EndsOn:   r.EndsOn,
		Reason:   r.Reason,
	}
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
