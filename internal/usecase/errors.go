package usecase

import "barber-booking/internal/pkg/errs"

var (
	ErrServiceNotFound     = errs.New("service not found")
	ErrWorkHourNotFound    = errs.New("work hour not found")
	ErrVacationNotFound    = errs.New("vacation not found")
	ErrAppointmentNotFound = errs.New("appointment not found")

	ErrSlotUnavailable  = errs.New("slot unavailable")
	ErrInvalidStartTime = errs.New("invalid start time")
	ErrInvalidDateRange = errs.New("invalid date range")
	ErrInvalidPhone     = errs.New("invalid phone number")

	ErrInvalidCredentials = errs.New("invalid credentials")

	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// SlotConflictError reports why the requested slot is not bookable so the
// handler can return a conflict body the client can act on.
type SlotConflictError struct {
	Reason string
}

func (e *SlotConflictError) Error() string {
	return "slot unavailable: " + e.Reason
}
