package create_booking

import (
	createBooking "github.com/m04kA/SMC-LuxeBook/internal/usecase/create_booking"
	"github.com/m04kA/SMC-LuxeBook/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ServiceID     string `json:"serviceId"`
	Date          string `json:"date"` // "2026-10-15"
	Time          string `json:"time"` // "10:00"
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	Notes         string `json:"notes,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID            string  `json:"id"`
	ServiceID     string  `json:"serviceId"`
	ServiceName   string  `json:"serviceName"`
	ServicePrice  float64 `json:"servicePrice"`
	CustomerName  string  `json:"customerName"`
	CustomerPhone string  `json:"customerPhone"`
	Date          string  `json:"date"`
	Time          string  `json:"time"`
	Status        string  `json:"status"`
	Notes         string  `json:"notes,omitempty"`
	CreatedAt     int64   `json:"createdAt"` // unix millis
}

// parseError хранит имя поля, которое не удалось разобрать
type parseError struct {
	field string
	err   error
}

func (e *parseError) Error() string {
	return e.field + ": " + e.err.Error()
}

func (e *parseError) Unwrap() error {
	return e.err
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case (с парсингом даты и времени)
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	date, err := types.NewDateStringFromString(r.Date)
	if err != nil {
		return nil, &parseError{field: "date", err: err}
	}

	slotTime, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, &parseError{field: "time", err: err}
	}

	return &createBooking.Request{
		ServiceID:     r.ServiceID,
		Date:          date,
		Time:          slotTime,
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		Notes:         r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:            resp.ID,
		ServiceID:     resp.ServiceID,
		ServiceName:   resp.ServiceName,
		ServicePrice:  resp.ServicePrice,
		CustomerName:  resp.CustomerName,
		CustomerPhone: resp.CustomerPhone,
		Date:          resp.Date.String(),
		Time:          resp.Time.String(),
		Status:        resp.Status,
		Notes:         resp.Notes,
		CreatedAt:     resp.CreatedAt.UnixMilli(),
	}
}
