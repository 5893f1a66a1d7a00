//go:build unit

package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"barber-booking/internal/handler/api"
	"barber-booking/internal/pkg/errs"
	"barber-booking/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type fakeBookingCommands struct {
	createView *usecase.AppointmentView
	createErr  error
	getView    *usecase.AppointmentView
	getErr     error
	cancelErr  error

	gotInput usecase.CreateAppointmentInput
	gotToken string
}

func (f *fakeBookingCommands) CreateAppointment(_ context.Context, input usecase.CreateAppointmentInput) (*usecase.AppointmentView, error) {
	f.gotInput = input
	return f.createView, f.createErr
}

func (f *fakeBookingCommands) CancelAppointment(_ context.Context, publicToken string, _ *string) error {
	f.gotToken = publicToken
	return f.cancelErr
}

func (f *fakeBookingCommands) GetAppointment(_ context.Context, publicToken string) (*usecase.AppointmentView, error) {
	f.gotToken = publicToken
	return f.getView, f.getErr
}

type AppointmentHandlerTestSuite struct {
	suite.Suite
	router  *gin.Engine
	booking *fakeBookingCommands
}

func (s *AppointmentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.booking = &fakeBookingCommands{}
	handler := api.NewAppointmentHandler(s.booking)

	s.router.POST("/appointments", handler.CreateAppointment)
	s.router.GET("/appointments/:token", handler.GetAppointment)
	s.router.POST("/appointments/:token/cancel", handler.CancelAppointment)
}

func TestAppointmentHandlerSuite(t *testing.T) {
	suite.Run(t, new(AppointmentHandlerTestSuite))
}

func (s *AppointmentHandlerTestSuite) perform(method, url string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func sampleView() *usecase.AppointmentView {
	return &usecase.AppointmentView{
		ID:            uuid.New(),
		ServiceID:     uuid.New(),
		ServiceName:   "Corte",
		StartsAt:      time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC),
		EndsAt:        time.Date(2025, 6, 10, 12, 30, 0, 0, time.UTC),
		CustomerPhone: "+5511999999999",
		Status:        "scheduled",
		PublicToken:   "abc123",
	}
}

func (s *AppointmentHandlerTestSuite) TestCreateAppointment() {
	body := map[string]any{
		"service_id":      uuid.New().String(),
		"starts_at":       "2025-06-10T12:00:00Z",
		"customer_phone":  "+55 11 99999-9999",
		"consent_granted": true,
	}

	s.Run("success: returns 201 with the booked appointment", func() {
		s.booking.createView = sampleView()
		s.booking.createErr = nil

		rec := s.perform(http.MethodPost, "/appointments", body)

		s.Equal(http.StatusCreated, rec.Code)
		s.Contains(rec.Body.String(), "public_token")
		s.Equal("+55 11 99999-9999", s.booking.gotInput.CustomerPhone)
	})

	s.Run("error: 409 with reason when the slot is taken", func() {
		s.booking.createView = nil
		s.booking.createErr = errs.Mark(
			&usecase.SlotConflictError{Reason: "appointment"},
			usecase.ErrSlotUnavailable,
		)

		rec := s.perform(http.MethodPost, "/appointments", body)

		s.Equal(http.StatusConflict, rec.Code)
		s.Contains(rec.Body.String(), "appointment")
	})

	s.Run("error: 404 when the service does not exist", func() {
		s.booking.createErr = usecase.ErrServiceNotFound

		rec := s.perform(http.MethodPost, "/appointments", body)

		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("error: 400 when the phone is invalid", func() {
		s.booking.createErr = usecase.ErrInvalidPhone

		rec := s.perform(http.MethodPost, "/appointments", body)

		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 400 on malformed body", func() {
		rec := s.perform(http.MethodPost, "/appointments", map[string]any{
			"service_id": "not-a-uuid",
		})

		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *AppointmentHandlerTestSuite) TestGetAppointment() {
	s.Run("success: returns the appointment for its token", func() {
		s.booking.getView = sampleView()
		s.booking.getErr = nil

		rec := s.perform(http.MethodGet, "/appointments/abc123", nil)

		s.Equal(http.StatusOK, rec.Code)
		s.Equal("abc123", s.booking.gotToken)
	})

	s.Run("error: 404 for an unknown token", func() {
		s.booking.getView = nil
		s.booking.getErr = usecase.ErrAppointmentNotFound

		rec := s.perform(http.MethodGet, "/appointments/missing", nil)

		s.Equal(http.StatusNotFound, rec.Code)
	})
}

func (s *AppointmentHandlerTestSuite) TestCancelAppointment() {
	s.Run("success: returns 204", func() {
		s.booking.cancelErr = nil

		rec := s.perform(http.MethodPost, "/appointments/abc123/cancel", nil)

		s.Equal(http.StatusNoContent, rec.Code)
		s.Equal("abc123", s.booking.gotToken)
	})

	s.Run("error: 409 when the appointment can no longer be canceled", func() {
		s.booking.cancelErr = errs.Mark(errs.New("already started"), usecase.ErrDomainValidation)

		rec := s.perform(http.MethodPost, "/appointments/abc123/cancel", nil)

		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("error: 404 for an unknown token", func() {
		s.booking.cancelErr = usecase.ErrAppointmentNotFound

		rec := s.perform(http.MethodPost, "/appointments/missing/cancel", nil)

		s.Equal(http.StatusNotFound, rec.Code)
	})
}
