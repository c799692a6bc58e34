package save_service

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-LuxeBook/internal/service/services"
	"github.com/m04kA/SMC-LuxeBook/internal/service/services/models"
	"github.com/m04kA/SMC-LuxeBook/pkg/logger"
)

type stubService struct {
	updatedID string
	req       *models.ServiceRequest
	err       error
}

func (s *stubService) Create(_ context.Context, req *models.ServiceRequest) (*models.ServiceResponse, error) {
	s.req = req
	if s.err != nil {
		return nil, s.err
	}
	return &models.ServiceResponse{ID: "new", Name: req.Name}, nil
}

func (s *stubService) Update(_ context.Context, id string, req *models.ServiceRequest) (*models.ServiceResponse, error) {
	s.updatedID = id
	s.req = req
	if s.err != nil {
		return nil, s.err
	}
	return &models.ServiceResponse{ID: id, Name: req.Name}, nil
}

func route(svc *stubService) *mux.Router {
	h := NewHandler(svc, logger.NewNop())
	r := mux.NewRouter()
	r.HandleFunc("/admin/services", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/admin/services/{serviceId}", h.Update).Methods(http.MethodPut)
	return r
}

const body = `{"name":"Hot Stone","description":"d","durationMinutes":60,"price":99.5,"category":"Massage"}`

func TestCreate(t *testing.T) {
	svc := &stubService{}
	rec := httptest.NewRecorder()

	route(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/admin/services", strings.NewReader(body)))

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, svc.req)
	assert.Equal(t, "Hot Stone", svc.req.Name)
	assert.Equal(t, 99.5, svc.req.Price)
}

func TestUpdate(t *testing.T) {
	svc := &stubService{}
	rec := httptest.NewRecorder()

	route(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/admin/services/3", strings.NewReader(body)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "3", svc.updatedID)
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{err: services.ErrInvalidInput, status: http.StatusBadRequest},
		{err: services.ErrServiceNotFound, status: http.StatusNotFound},
		{err: services.ErrInternal, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			svc := &stubService{err: fmt.Errorf("%w: wrapped", tt.err)}
			rec := httptest.NewRecorder()
			route(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/admin/services/3", strings.NewReader(body)))
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
