package api

import (
	"errors"
	"net/http"

	reqdto "barber-booking/internal/handler/dto/request"
	resdto "barber-booking/internal/handler/dto/response"
	"barber-booking/internal/pkg/metrics"
	"barber-booking/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AppointmentHandler struct {
	bookingCommands usecase.BookingCommands
}

func NewAppointmentHandler(bookingCommands usecase.BookingCommands) *AppointmentHandler {
	return &AppointmentHandler{
		bookingCommands: bookingCommands,
	}
}

// @Summary Create appointment
// @Description Book an available slot
// @Tags appointments
// @Accept json
// @Produce json
// @Param request body reqdto.CreateAppointmentRequest true "Appointment request"
// @Success 201 {object} resdto.AppointmentResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /appointments [post]
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var req reqdto.CreateAppointmentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.bookingCommands.CreateAppointment(c.Request.Context(), req.ToInput())
	if err != nil {
		var conflict *usecase.SlotConflictError
		switch {
		case errors.Is(err, usecase.ErrServiceNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Service not found",
			})
		case errors.Is(err, usecase.ErrInvalidPhone):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid phone number",
			})
		case errors.Is(err, usecase.ErrInvalidStartTime):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid start time",
			})
		case errors.As(err, &conflict):
			metrics.SlotConflicts.Inc()
			c.JSON(http.StatusConflict, gin.H{
				"error":  "Slot is not available",
				"reason": conflict.Reason,
			})
		case errors.Is(err, usecase.ErrSlotUnavailable):
			metrics.SlotConflicts.Inc()
			c.JSON(http.StatusConflict, gin.H{
				"error": "Slot is not available",
			})
		case errors.Is(err, usecase.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Domain validation failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	metrics.AppointmentsCreated.Inc()
	c.JSON(http.StatusCreated, resdto.FromAppointmentView(view))
}

// @Summary Get appointment
// @Description Look up an appointment by its public token
// @Tags appointments
// @Produce json
// @Param token path string true "Public token"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 404 {object} map[string]string
// @Router /appointments/{token} [get]
func (h *AppointmentHandler) GetAppointment(c *gin.Context) {
	view, err := h.bookingCommands.GetAppointment(c.Request.Context(), c.Param("token"))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrAppointmentNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Appointment not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAppointmentView(view))
}

// @Summary Cancel appointment
// @Description Cancel an appointment by its public token
// @Tags appointments
// @Accept json
// @Produce json
// @Param token path string true "Public token"
// @Param request body reqdto.CancelAppointmentRequest false "Cancellation reason"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /appointments/{token}/cancel [post]
func (h *AppointmentHandler) CancelAppointment(c *gin.Context) {
	var req reqdto.CancelAppointmentRequest
	if c.Request.ContentLength > 0 {
		if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid request format",
			})
			return
		}
	}

	err := h.bookingCommands.CancelAppointment(c.Request.Context(), c.Param("token"), req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrAppointmentNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Appointment not found",
			})
		case errors.Is(err, usecase.ErrDomainValidation):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Appointment can no longer be canceled",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	metrics.AppointmentsCanceled.Inc()
	c.Status(http.StatusNoContent)
}
