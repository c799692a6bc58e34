package delete_appointment

import (
	"context"
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
	id        string
	confirmed bool
}

func (s *stubService) Delete(_ context.Context, id string, confirmed bool) (*models.AppointmentListResponse, error) {
	s.id = id
	s.confirmed = confirmed
	if !confirmed {
		return nil, appointments.ErrConfirmationRequired
	}
	return &models.AppointmentListResponse{Appointments: []models.AppointmentResponse{}}, nil
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		status    int
		confirmed bool
	}{
		{name: "confirmed", target: "/admin/appointments/a-1?confirm=true", status: http.StatusOK, confirmed: true},
		{name: "not confirmed", target: "/admin/appointments/a-1", status: http.StatusPreconditionRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubService{}
			h := NewHandler(svc, logger.NewNop())
			r := mux.NewRouter()
			r.HandleFunc("/admin/appointments/{appointmentId}", h.Handle).Methods(http.MethodDelete)

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, tt.target, nil))

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "a-1", svc.id)
			assert.Equal(t, tt.confirmed, svc.confirmed)
		})
	}
}
