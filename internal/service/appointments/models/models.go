package models

import (
	"cmp"
	"slices"
	"time"

	"github.com/m04kA/SMC-LuxeBook/internal/domain"
)

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID            string  `json:"id"`
	ServiceID     string  `json:"serviceId"`
	ServiceName   string  `json:"serviceName"`  // Снимок на момент записи
	ServicePrice  float64 `json:"servicePrice"` // Снимок на момент записи
	CustomerName  string  `json:"customerName"`
	CustomerPhone string  `json:"customerPhone"`
	Date          string  `json:"date"` // "2026-10-15"
	Time          string  `json:"time"` // "10:00"
	Status        string  `json:"status"`
	Notes         string  `json:"notes,omitempty"`
	CreatedAt     int64   `json:"createdAt"` // unix millis
}

// AppointmentListResponse ответ со списком записей (новые сверху)
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	return &AppointmentResponse{
		ID:            a.ID,
		ServiceID:     a.ServiceID,
		ServiceName:   a.ServiceName,
		ServicePrice:  a.ServicePrice,
		CustomerName:  a.CustomerName,
		CustomerPhone: a.CustomerPhone,
		Date:          a.Date.String(),
		Time:          a.Time.String(),
		Status:        string(a.Status),
		Notes:         a.Notes,
		CreatedAt:     a.CreatedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO, сохраняя порядок
func FromDomainAppointmentList(appointments []domain.Appointment) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(appointments)),
	}

	for i := range appointments {
		resp.Appointments = append(resp.Appointments, *FromDomainAppointment(&appointments[i]))
	}

	return resp
}

// SortNewestFirst сортирует копию списка по времени создания, новые сверху.
// Сортировка стабильная: при равном createdAt сохраняется порядок хранения.
func SortNewestFirst(appointments []domain.Appointment) []domain.Appointment {
	sorted := slices.Clone(appointments)
	slices.SortStableFunc(sorted, func(a, b domain.Appointment) int {
		return cmp.Compare(b.CreatedAt, a.CreatedAt)
	})
	return sorted
}

// CreatedAtTime возвращает время создания записи
func (r *AppointmentResponse) CreatedAtTime() time.Time {
	return time.UnixMilli(r.CreatedAt)
}
