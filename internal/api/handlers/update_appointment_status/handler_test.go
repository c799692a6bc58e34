package update_appointment_status

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-LuxeBook/internal/service/appointments"
	"github.com/m04kA/SMC-LuxeBook/internal/service/appointments/models"
	"github.com/m04kA/SMC-LuxeBook/pkg/logger"
)

type stubService struct {
	calls []string
	err   error
}

func (s *stubService) Confirm(_ context.Context, id string) (*models.AppointmentListResponse, error) {
	s.calls = append(s.calls, "confirm:"+id)
	return &models.AppointmentListResponse{}, s.err
}

func (s *stubService) Cancel(_ context.Context, id string) (*models.AppointmentListResponse, error) {
	s.calls = append(s.calls, "cancel:"+id)
	return &models.AppointmentListResponse{}, s.err
}

func route(svc *stubService) *mux.Router {
	h := NewHandler(svc, logger.NewNop())
	r := mux.NewRouter()
	r.HandleFunc("/admin/appointments/{appointmentId}/confirm", h.Confirm).Methods(http.MethodPatch)
	r.HandleFunc("/admin/appointments/{appointmentId}/cancel", h.Cancel).Methods(http.MethodPatch)
	return r
}

func TestConfirmAndCancel(t *testing.T) {
	svc := &stubService{}
	r := route(svc)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/admin/appointments/a-1/confirm", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/admin/appointments/a-2/cancel", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, []string{"confirm:a-1", "cancel:a-2"}, svc.calls)
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{err: appointments.ErrAppointmentNotFound, status: http.StatusNotFound},
		{err: appointments.ErrInvalidTransition, status: http.StatusConflict},
		{err: appointments.ErrInternal, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			svc := &stubService{err: fmt.Errorf("%w: wrapped", tt.err)}
			rec := httptest.NewRecorder()
			route(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/admin/appointments/a-1/confirm", nil))
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
