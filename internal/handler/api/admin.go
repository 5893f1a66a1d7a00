package api

import (
	"errors"
	"net/http"
	"time"

	"barber-booking/internal/domain/availability"
	reqdto "barber-booking/internal/handler/dto/request"
	"barber-booking/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminHandler struct {
	catalogCommands usecase.CatalogCommands
}

func NewAdminHandler(catalogCommands usecase.CatalogCommands) *AdminHandler {
	return &AdminHandler{
		catalogCommands: catalogCommands,
	}
}

func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}

func respondCatalogError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrServiceNotFound),
		errors.Is(err, usecase.ErrWorkHourNotFound),
		errors.Is(err, usecase.ErrVacationNotFound),
		errors.Is(err, usecase.ErrAppointmentNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Not found",
		})
	case errors.Is(err, usecase.ErrDomainValidation),
		errors.Is(err, usecase.ErrInvalidDateRange):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Validation failed",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

// @Summary List services
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param active query bool false "Only active services"
// @Success 200 {array} usecase.ServiceView
// @Router /admin/services [get]
func (h *AdminHandler) ListServices(c *gin.Context) {
	activeOnly := c.Query("active") == "true"
	views, err := h.catalogCommands.ListServices(c.Request.Context(), activeOnly)
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Create service
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.ServiceRequest true "Service"
// @Success 201 {object} usecase.ServiceView
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/services [post]
func (h *AdminHandler) CreateService(c *gin.Context) {
	var req reqdto.ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.catalogCommands.CreateService(c.Request.Context(), req.ToParams())
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// @Summary Update service
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Service ID"
// @Param request body reqdto.ServiceRequest true "Service"
// @Success 200 {object} usecase.ServiceView
// @Failure 404 {object} map[string]string
// @Router /admin/services/{id} [put]
func (h *AdminHandler) UpdateService(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req reqdto.ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.catalogCommands.UpdateService(c.Request.Context(), id, req.ToParams())
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Delete service
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Service ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /admin/services/{id} [delete]
func (h *AdminHandler) DeleteService(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.catalogCommands.DeleteService(c.Request.Context(), id); err != nil {
		respondCatalogError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List work hours
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} usecase.WorkHourView
// @Router /admin/work-hours [get]
func (h *AdminHandler) ListWorkHours(c *gin.Context) {
	views, err := h.catalogCommands.ListWorkHours(c.Request.Context())
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Create work hour
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.WorkHourRequest true "Work hour"
// @Success 201 {object} usecase.WorkHourView
// @Failure 422 {object} map[string]string
// @Router /admin/work-hours [post]
func (h *AdminHandler) CreateWorkHour(c *gin.Context) {
	var req reqdto.WorkHourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.catalogCommands.CreateWorkHour(c.Request.Context(), req.ToParams())
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// @Summary Update work hour
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Work hour ID"
// @Param request body reqdto.WorkHourRequest true "Work hour"
// @Success 200 {object} usecase.WorkHourView
// @Failure 404 {object} map[string]string
// @Router /admin/work-hours/{id} [put]
func (h *AdminHandler) UpdateWorkHour(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req reqdto.WorkHourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.catalogCommands.UpdateWorkHour(c.Request.Context(), id, req.ToParams())
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Delete work hour
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Work hour ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /admin/work-hours/{id} [delete]
func (h *AdminHandler) DeleteWorkHour(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.catalogCommands.DeleteWorkHour(c.Request.Context(), id); err != nil {
		respondCatalogError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List vacations
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} usecase.VacationView
// @Router /admin/vacations [get]
func (h *AdminHandler) ListVacations(c *gin.Context) {
	views, err := h.catalogCommands.ListVacations(c.Request.Context())
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Create vacation
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.VacationRequest true "Vacation"
// @Success 201 {object} usecase.VacationView
// @Failure 422 {object} map[string]string
// @Router /admin/vacations [post]
func (h *AdminHandler) CreateVacation(c *gin.Context) {
	var req reqdto.VacationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.catalogCommands.CreateVacation(c.Request.Context(), req.ToParams())
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// @Summary Update vacation
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Vacation ID"
// @Param request body reqdto.VacationRequest true "Vacation"
// @Success 200 {object} usecase.VacationView
// @Failure 404 {object} map[string]string
// @Router /admin/vacations/{id} [put]
func (h *AdminHandler) UpdateVacation(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req reqdto.VacationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.catalogCommands.UpdateVacation(c.Request.Context(), id, req.ToParams())
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Delete vacation
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Vacation ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /admin/vacations/{id} [delete]
func (h *AdminHandler) DeleteVacation(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.catalogCommands.DeleteVacation(c.Request.Context(), id); err != nil {
		respondCatalogError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List appointments
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param status query string false "Filter by status"
// @Param from query string false "Start of range (RFC3339)"
// @Param to query string false "End of range (RFC3339)"
// @Success 200 {array} usecase.AppointmentView
// @Router /admin/appointments [get]
func (h *AdminHandler) ListAppointments(c *gin.Context) {
	var filter usecase.AppointmentFilter

	if status := c.Query("status"); status != "" {
		s := availability.AppointmentStatus(status)
		filter.Status = &s
	}
	if fromStr := c.Query("from"); fromStr != "" {
		from, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid from parameter",
			})
			return
		}
		filter.From = &from
	}
	if toStr := c.Query("to"); toStr != "" {
		to, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid to parameter",
			})
			return
		}
		filter.To = &to
	}

	views, err := h.catalogCommands.ListAppointments(c.Request.Context(), filter)
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Update appointment status
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Param request body reqdto.UpdateAppointmentStatusRequest true "New status"
// @Success 200 {object} usecase.AppointmentView
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/appointments/{id}/status [patch]
func (h *AdminHandler) UpdateAppointmentStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req reqdto.UpdateAppointmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.catalogCommands.UpdateAppointmentStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
